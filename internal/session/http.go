package session

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
)

// HTTPServer hosts an http.Handler as a session Resource. Start binds the
// listener synchronously so that bind failures surface immediately, then
// serves in the background; Stop drains in-flight requests.
type HTTPServer struct {
	srv    *http.Server
	logger *slog.Logger

	addr string
}

// NewHTTPServer creates an HTTP resource listening on addr.
func NewHTTPServer(addr string, handler http.Handler, logger *slog.Logger) *HTTPServer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &HTTPServer{
		srv:    &http.Server{Addr: addr, Handler: handler},
		logger: logger,
	}
}

// Addr returns the bound listen address. Empty until Start succeeds.
func (s *HTTPServer) Addr() string {
	return s.addr
}

// Start implements Resource.
func (s *HTTPServer) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	s.addr = ln.Addr().String()
	s.logger.Info("listening", "addr", s.addr)

	go func() {
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Error("http server error", "error", err)
		}
	}()
	return nil
}

// Stop implements Resource.
func (s *HTTPServer) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Endpoint mounts the streaming handler under prefix, both with and without
// a trailing slash to avoid client-visible redirects, alongside liveness
// probes at / and /health. Everything under the prefix is forwarded to h
// unmodified.
func Endpoint(prefix string, h http.Handler) http.Handler {
	p := strings.TrimSuffix(prefix, "/")
	if p == "" {
		p = "/mcp"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("healthy"))
	})
	mux.Handle(p, h)
	mux.Handle(p+"/", h)
	return mux
}
