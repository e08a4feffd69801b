// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/katalvlaran/mixrate/matrix"
)

// Bridge shares one lazily started Session among reference-counted handles.
// All operations on the session are serialized; the zero value is not usable,
// construct with NewBridge.
type Bridge struct {
	start StartFunc

	mu      sync.Mutex // guards the fields below and serializes session calls
	session Session
	refs    int
	starts  int
}

// NewBridge returns a Bridge that starts sessions with start. Panics on nil.
func NewBridge(start StartFunc) *Bridge {
	if start == nil {
		panic("engine: NewBridge(nil)")
	}

	return &Bridge{start: start}
}

// Acquire registers a new user and returns its Handle. Acquiring never
// starts the engine.
func (b *Bridge) Acquire() *Handle {
	b.mu.Lock()
	b.refs++
	b.mu.Unlock()

	return &Handle{bridge: b}
}

// Refs returns the number of unreleased handles.
func (b *Bridge) Refs() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.refs
}

// Started reports whether a session is currently running.
func (b *Bridge) Started() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.session != nil
}

// Starts returns how many sessions have been started successfully.
func (b *Bridge) Starts() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.starts
}

func (b *Bridge) submit(ctx context.Context, a matrix.Matrix, v []float64) (*matrix.Dense, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.session == nil {
		s, err := b.start(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: start: %w", ErrUnavailable, err)
		}
		b.session = s
		b.starts++
	}

	return b.session.GlobalOpt(ctx, a, v)
}

func (b *Bridge) release() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refs--
	if b.refs > 0 || b.session == nil {
		return nil
	}
	err := b.session.Close()
	b.session = nil
	if err != nil {
		return fmt.Errorf("engine: close: %w", err)
	}

	return nil
}

// Handle is one user's reference to a Bridge. It implements Engine.
type Handle struct {
	bridge *Bridge

	once     sync.Once
	mu       sync.Mutex
	released bool
}

// Submit runs GlobalOpt on the shared session, starting it if needed.
//
// Errors: ErrReleased after Release; ErrUnavailable when the session cannot
// be started; otherwise whatever the session returns.
func (h *Handle) Submit(ctx context.Context, a matrix.Matrix, v []float64) (*matrix.Dense, error) {
	h.mu.Lock()
	released := h.released
	h.mu.Unlock()
	if released {
		return nil, ErrReleased
	}

	return h.bridge.submit(ctx, a, v)
}

// GlobalOpt is Submit.
func (h *Handle) GlobalOpt(ctx context.Context, a matrix.Matrix, v []float64) (*matrix.Dense, error) {
	return h.Submit(ctx, a, v)
}

// Release drops this handle's reference. The last release closes the
// session. Calling Release more than once is a no-op.
func (h *Handle) Release() error {
	var err error
	h.once.Do(func() {
		h.mu.Lock()
		h.released = true
		h.mu.Unlock()
		err = h.bridge.release()
	})

	return err
}

// Close is Release, so a Handle can be used as a Session.
func (h *Handle) Close() error { return h.Release() }
