// ABOUTME: HTTP server assembly for the sweetshop API
// ABOUTME: Wires routes, auth middleware, and graceful shutdown

package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/katasweets/sweetshop/internal/auth"
	"github.com/katasweets/sweetshop/internal/store"
)

// Server holds the handler dependencies for the sweetshop API.
type Server struct {
	users    store.UserStore
	sweets   store.SweetStore
	tokens   *auth.TokenService
	verifier *auth.CredentialVerifier
	resolver *auth.PrincipalResolver
	logger   *slog.Logger
}

// NewServer creates the API server over its collaborators.
func NewServer(
	users store.UserStore,
	sweets store.SweetStore,
	tokens *auth.TokenService,
	verifier *auth.CredentialVerifier,
	resolver *auth.PrincipalResolver,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		users:    users,
		sweets:   sweets,
		tokens:   tokens,
		verifier: verifier,
		resolver: resolver,
		logger:   logger.With("component", "api"),
	}
}

// Handler returns the complete route table wrapped in the authentication
// middleware. Authentication runs before dispatch on every request; the
// role guard inside each protected handler runs after.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Public endpoints (also on the middleware allow-list)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/users/create", s.handleCreateUser)

	// Catalog endpoints, role-gated inside each handler
	mux.HandleFunc("POST /api/sweets/create", s.handleCreateSweet)
	mux.HandleFunc("GET /api/sweets/getall", s.handleListSweets)
	mux.HandleFunc("GET /api/sweets/getbyid/{id}", s.handleGetSweet)
	mux.HandleFunc("PUT /api/sweets/updateByid/{id}", s.handleUpdateSweet)
	mux.HandleFunc("DELETE /api/sweets/deletebyid/{id}", s.handleDeleteSweet)

	return auth.Middleware(s.tokens, s.resolver, s.logger)(mux)
}

// Run serves the API on addr until the context is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("HTTP server listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
