// SPDX-License-Identifier: MIT

package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/katalvlaran/mixrate/matrix"
)

const (
	defaultTimeout  = 2 * time.Minute
	defaultAttempts = 3
	defaultDelay    = 500 * time.Millisecond
	maxErrorBody    = 4 << 10
)

// HTTPClient is a Session talking to a remote engine over HTTP.
type HTTPClient struct {
	base     string
	http     *http.Client
	attempts int
	delay    time.Duration
}

// ClientOption configures an HTTPClient.
type ClientOption func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client. Panics on nil.
func WithHTTPClient(c *http.Client) ClientOption {
	if c == nil {
		panic("engine: WithHTTPClient(nil)")
	}
	return func(h *HTTPClient) { h.http = c }
}

// WithRetry sets how often transient failures are retried and the initial
// backoff delay. attempts < 1 is treated as 1.
func WithRetry(attempts int, delay time.Duration) ClientOption {
	return func(h *HTTPClient) {
		h.attempts = attempts
		h.delay = delay
	}
}

// NewHTTPClient returns a client for the engine at baseURL
// (e.g. "http://127.0.0.1:8750").
func NewHTTPClient(baseURL string, opts ...ClientOption) *HTTPClient {
	c := &HTTPClient{
		base:     strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: defaultTimeout},
		attempts: defaultAttempts,
		delay:    defaultDelay,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Dial returns a StartFunc that health-checks the engine at baseURL and
// hands out an HTTPClient for it.
func Dial(baseURL string, opts ...ClientOption) StartFunc {
	return func(ctx context.Context) (Session, error) {
		c := NewHTTPClient(baseURL, opts...)
		if err := c.Ping(ctx); err != nil {
			return nil, err
		}

		return c, nil
	}
}

// Ping checks GET /healthz.
func (c *HTTPClient) Ping(ctx context.Context) error {
	return retry(ctx, c.attempts, c.delay, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+HealthPath, nil)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return &retryableError{fmt.Errorf("%w: %v", ErrUnavailable, err)}
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)

		return checkStatus(resp.StatusCode, "")
	})
}

// GlobalOpt posts a and v and decodes the transition matrix.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDistributionShape,
//     matrix.ErrNaNInf for inputs that cannot be sent.
//   - ErrInfeasible on 422.
//   - ErrUnavailable on transport failures, other statuses and malformed
//     responses.
func (c *HTTPClient) GlobalOpt(ctx context.Context, a matrix.Matrix, v []float64) (*matrix.Dense, error) {
	d, err := encodable(a, v)
	if err != nil {
		return nil, fmt.Errorf("GlobalOpt: %w", err)
	}
	body, err := json.Marshal(GlobalOptRequest{Adjacency: d.RowsCopy(), Distribution: v})
	if err != nil {
		return nil, fmt.Errorf("GlobalOpt: %w", err)
	}

	var out GlobalOptResponse
	err = retry(ctx, c.attempts, c.delay, func() error {
		return c.post(ctx, body, &out)
	})
	if err != nil {
		return nil, fmt.Errorf("GlobalOpt: %w", err)
	}

	t, err := matrix.NewFromRows(out.Transition)
	if err != nil {
		return nil, fmt.Errorf("GlobalOpt: %w: malformed transition: %v", ErrUnavailable, err)
	}
	if t.Rows() != d.Rows() || t.Cols() != d.Cols() {
		return nil, fmt.Errorf("GlobalOpt: %w: transition is %dx%d, want %dx%d",
			ErrUnavailable, t.Rows(), t.Cols(), d.Rows(), d.Cols())
	}

	return t, nil
}

// Close implements Session. The client holds no resources.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) post(ctx context.Context, body []byte, out *GlobalOptResponse) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+GlobalOptPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &retryableError{fmt.Errorf("%w: %v", ErrUnavailable, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var msg GlobalOptResponse
		_ = json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&msg)
		return checkStatus(resp.StatusCode, msg.Error)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}
	if out.Error != "" {
		return fmt.Errorf("%w: %s", ErrUnavailable, out.Error)
	}

	return nil
}

func checkStatus(code int, msg string) error {
	if msg == "" {
		msg = http.StatusText(code)
	}
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrInfeasible, msg)
	case code >= 500:
		return &retryableError{fmt.Errorf("%w: status %d: %s", ErrUnavailable, code, msg)}
	default:
		return fmt.Errorf("%w: status %d: %s", ErrUnavailable, code, msg)
	}
}

// encodable validates inputs that must cross the wire as JSON.
func encodable(a matrix.Matrix, v []float64) (*matrix.Dense, error) {
	if err := matrix.ValidateDistribution(v, a); err != nil {
		return nil, err
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, err
	}
	if err := matrix.ValidateFinite(a); err != nil {
		return nil, err
	}
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("distribution[%d]=%g: %w", i, x, matrix.ErrNaNInf)
		}
	}

	return matrix.ToDense(a)
}
