package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/custodia-labs/docspace/internal/core/domain"
	"github.com/custodia-labs/docspace/internal/logger"
)

// Config holds the HTTP-level limits of the API.
type Config struct {
	// AllowedOrigins lists the browser origins allowed to call the API.
	AllowedOrigins []string

	// RateLimit is the number of /api requests a client may make per RateWindow.
	// Zero disables rate limiting.
	RateLimit  int
	RateWindow time.Duration

	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64
}

// ConfigFromSettings builds a Config from the server settings.
func ConfigFromSettings(s domain.ServerSettings) Config {
	return Config{
		AllowedOrigins: s.AllowedOrigins,
		RateLimit:      s.RateLimit,
		RateWindow:     s.RateWindow,
		MaxBodyBytes:   s.MaxBodyBytes,
	}
}

// Server is the docspace HTTP API.
type Server struct {
	ports      *Ports
	identities IdentityResolver
	handler    http.Handler
}

// NewServer creates the API server.
func NewServer(ports *Ports, cfg Config, identities IdentityResolver) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}
	if identities == nil {
		identities = HeaderIdentityResolver{}
	}

	s := &Server{
		ports:      ports,
		identities: identities,
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	var handler http.Handler = mux
	if cfg.MaxBodyBytes > 0 {
		handler = withBodyLimit(cfg.MaxBodyBytes, handler)
	}
	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		handler = withRateLimit(newClientLimiter(cfg.RateLimit, cfg.RateWindow), handler)
	}
	handler = withCORS(cfg.AllowedOrigins, handler)
	handler = withRequestID(handler)
	s.handler = handler

	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves the API on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	logger.Info("HTTP API listening on %s", addr)
	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/auth/me", s.authorize(accessRead, s.handleMe))

	mux.HandleFunc("GET /api/documents", s.authorize(accessRead, s.handleListDocuments))
	mux.HandleFunc("POST /api/documents", s.authorize(accessWrite, s.handleCreateDocument))
	mux.HandleFunc("GET /api/documents/export", s.authorize(accessWrite, s.handleExport))
	mux.HandleFunc("POST /api/documents/import-bulk", s.authorize(accessWrite, s.handleImport))
	mux.HandleFunc("GET /api/documents/{id}", s.authorize(accessRead, s.handleGetDocument))
	mux.HandleFunc("PUT /api/documents/{id}", s.authorize(accessWrite, s.handleUpdateDocument))
	mux.HandleFunc("DELETE /api/documents/{id}", s.authorize(accessWrite, s.handleDeleteDocument))

	mux.HandleFunc("GET /api/search", s.authorize(accessRead, s.handleSearch))
	mux.HandleFunc("POST /api/chat", s.authorize(accessRead, s.handleChat))
	mux.HandleFunc("POST /api/ai/chat", s.authorize(accessRead, s.handleChat))
}

// writeJSON writes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("Writing response: %v", err)
	}
}
