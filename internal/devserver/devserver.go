package devserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/vk/plugkit/internal/ctxlog"
)

// shutdownTimeout bounds graceful shutdown on Close.
const shutdownTimeout = 5 * time.Second

// AssetHost is the slice of the plugin container the dev server needs.
type AssetHost interface {
	// Asset resolves a relative asset path to its public URL.
	Asset(ctx context.Context, relativePath string) string
	// Path joins the installation root with an optional relative file.
	Path(file ...string) string
}

// Server is the development HTTP server for a single plugin.
type Server struct {
	host       AssetHost
	httpServer *http.Server
}

// New creates a dev server bound to addr, serving the plugin's public
// directory and resolver diagnostics.
func New(addr string, host AssetHost) *Server {
	s := &Server{host: host}
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.router(),
	}
	return s
}

// router builds the route table. Split out so tests can exercise handlers
// without binding a socket.
func (s *Server) router() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.healthHandler).Methods(http.MethodGet)
	r.HandleFunc("/resolve", s.resolveHandler).Methods(http.MethodGet)
	r.PathPrefix("/public/").Handler(
		http.StripPrefix("/public/", http.FileServer(http.Dir(s.host.Path("public")))),
	).Methods(http.MethodGet)
	return r
}

// Handler exposes the route table for httptest-based tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// healthHandler answers liveness probes.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// resolveHandler reports the resolved URL for a relative asset path, for
// inspecting manifest substitution during development.
func (s *Server) resolveHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		http.Error(w, "missing 'path' query parameter", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"path": path,
		"url":  s.host.Asset(r.Context(), path),
	})
}

// Start runs the server in a goroutine so it doesn't block the caller.
func (s *Server) Start(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)
	go func() {
		logger.Info("Dev server starting.", "address", fmt.Sprintf("http://localhost%s/", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Dev server failed unexpectedly.", "error", err)
		}
	}()
}

// Close shuts the server down gracefully within shutdownTimeout.
func (s *Server) Close(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Shutting down dev server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Dev server shutdown failed.", "error", err)
		return err
	}
	logger.Debug("Dev server shut down gracefully.")
	return nil
}
