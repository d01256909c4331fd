package server

import (
	"context"
	"net/http"

	"github.com/preston-bernstein/nba-data-client/internal/config"
)

// httpServer is the slice of *http.Server the lifecycle code depends on.
type httpServer interface {
	ListenAndServe() error
	Shutdown(context.Context) error
	Addr() string
	Handler() http.Handler
}

type stdServer struct {
	srv *http.Server
}

// newAPIServer binds the REST surface. The write deadline tracks the
// upstream timeout so a slow provider call can still be reported.
func newAPIServer(cfg config.Config, h http.Handler) stdServer {
	return stdServer{srv: &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout(cfg),
		IdleTimeout:  idleTimeout,
	}}
}

// newMetricsServer binds the Prometheus scrape endpoint.
func newMetricsServer(port string, h http.Handler) stdServer {
	return stdServer{srv: &http.Server{
		Addr:              ":" + port,
		Handler:           h,
		ReadHeaderTimeout: readTimeout,
	}}
}

func (s stdServer) ListenAndServe() error { return s.srv.ListenAndServe() }

func (s stdServer) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }

func (s stdServer) Addr() string { return s.srv.Addr }

func (s stdServer) Handler() http.Handler { return s.srv.Handler }
