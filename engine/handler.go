// SPDX-License-Identifier: MIT

package engine

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/mixrate/markov"
	"github.com/katalvlaran/mixrate/matrix"
)

const maxRequestBody = 8 << 20

// RequestObserver is notified once per GlobalOpt request with the HTTP
// status code sent back.
type RequestObserver interface {
	ObserveEngineRequest(status string)
}

// HandlerOption configures NewHandler.
type HandlerOption func(*handler)

// WithRequestObserver reports every GlobalOpt response status to o.
// Panics on nil.
func WithRequestObserver(o RequestObserver) HandlerOption {
	if o == nil {
		panic("engine: WithRequestObserver(nil)")
	}
	return func(h *handler) { h.observer = o }
}

// WithRoute mounts an extra handler (e.g. /metrics) next to the protocol
// routes. Panics on nil.
func WithRoute(pattern string, hh http.Handler) HandlerOption {
	if hh == nil {
		panic("engine: WithRoute(nil)")
	}
	return func(h *handler) { h.extra = append(h.extra, route{pattern, hh}) }
}

type route struct {
	pattern string
	handler http.Handler
}

type handler struct {
	engine   Engine
	logger   *log.Logger
	observer RequestObserver
	extra    []route
}

// NewHandler serves the engine protocol for e. A nil logger discards output.
// Panics on a nil engine.
func NewHandler(e Engine, logger *log.Logger, opts ...HandlerOption) http.Handler {
	if e == nil {
		panic("engine: NewHandler(nil engine)")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := &handler{engine: e, logger: logger}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get(HealthPath, h.health)
	r.Post(GlobalOptPath, h.globalOpt)
	for _, x := range h.extra {
		r.Handle(x.pattern, x.handler)
	}

	return r
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

func (h *handler) globalOpt(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	reqID := middleware.GetReqID(r.Context())

	var req GlobalOptRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		h.fail(w, reqID, http.StatusBadRequest, err)
		return
	}
	a, err := matrix.NewFromRows(req.Adjacency)
	if err != nil {
		h.fail(w, reqID, http.StatusBadRequest, err)
		return
	}

	t, err := h.engine.GlobalOpt(r.Context(), a, req.Distribution)
	if err != nil {
		h.fail(w, reqID, statusFor(err), err)
		return
	}

	h.logger.Debug("global-opt", "id", reqID, "n", a.Rows(), "elapsed", time.Since(start).Round(time.Millisecond))
	h.write(w, http.StatusOK, GlobalOptResponse{Transition: t.RowsCopy()})
}

func (h *handler) fail(w http.ResponseWriter, reqID string, code int, err error) {
	if code >= http.StatusInternalServerError {
		h.logger.Error("global-opt", "id", reqID, "status", code, "err", err)
	} else {
		h.logger.Warn("global-opt", "id", reqID, "status", code, "err", err)
	}
	h.write(w, code, GlobalOptResponse{Error: err.Error()})
}

func (h *handler) write(w http.ResponseWriter, code int, body GlobalOptResponse) {
	if h.observer != nil {
		h.observer.ObserveEngineRequest(strconv.Itoa(code))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrInfeasible):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, matrix.ErrNonSquare),
		errors.Is(err, matrix.ErrDistributionShape),
		errors.Is(err, matrix.ErrNilMatrix),
		errors.Is(err, matrix.ErrNaNInf),
		errors.Is(err, markov.ErrZeroDegree):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
