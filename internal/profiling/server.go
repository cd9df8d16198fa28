// Package profiling runs an optional internal ops listener exposing
// pprof and a liveness probe, separate from the public API port.
package profiling

import (
	"net/http"
	"net/http/pprof"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"govalue/internal"
)

// Server is the internal ops HTTP server
type Server struct {
	router *chi.Mux
	logger *internal.Logger
}

// NewServer creates the ops server with pprof and health routes
func NewServer(logger *internal.Logger) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/debug/pprof/", pprof.Index)
	r.Get("/debug/pprof/cmdline", pprof.Cmdline)
	r.Get("/debug/pprof/profile", pprof.Profile)
	r.Get("/debug/pprof/symbol", pprof.Symbol)
	r.Get("/debug/pprof/trace", pprof.Trace)
	r.Handle("/debug/pprof/{name}", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		pprof.Handler(chi.URLParam(req, "name")).ServeHTTP(w, req)
	}))

	return &Server{router: r, logger: logger}
}

// Start runs the ops listener. Intended to be called on its own
// goroutine; errors are logged, not fatal.
func (s *Server) Start(port string) {
	addr := ":" + port
	s.logger.Info("profiling server listening on %s", addr)
	if err := http.ListenAndServe(addr, s.router); err != nil {
		s.logger.Error("profiling server stopped: %v", err)
	}
}
