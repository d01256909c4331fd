package testutil

import (
	"context"
	"net/http"
	"sync"
)

// FakeServer stands in for an *http.Server in lifecycle tests. ListenAndServe
// returns ListenErr immediately; use http.ErrServerClosed to mimic a clean
// stop. When Hold is set, Shutdown waits for it to close or ctx to expire.
type FakeServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	ListenErr   error
	ShutdownErr error
	Hold        chan struct{}

	mu        sync.Mutex
	listens   int
	shutdowns int
}

func (f *FakeServer) ListenAndServe() error {
	f.mu.Lock()
	f.listens++
	f.mu.Unlock()
	return f.ListenErr
}

func (f *FakeServer) Shutdown(ctx context.Context) error {
	f.mu.Lock()
	f.shutdowns++
	f.mu.Unlock()
	if f.Hold == nil {
		return f.ShutdownErr
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-f.Hold:
		return f.ShutdownErr
	}
}

func (f *FakeServer) Addr() string {
	if f.AddrVal == "" {
		return ":0"
	}
	return f.AddrVal
}

func (f *FakeServer) Handler() http.Handler {
	if f.HandlerVal == nil {
		return http.NotFoundHandler()
	}
	return f.HandlerVal
}

// Listens reports how many times ListenAndServe ran.
func (f *FakeServer) Listens() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listens
}

// Shutdowns reports how many times Shutdown ran.
func (f *FakeServer) Shutdowns() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shutdowns
}
