// ABOUTME: Login endpoint exchanging credentials for a bearer token
// ABOUTME: Failure is a single 401 with no cause disclosure

package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/katasweets/sweetshop/internal/auth"
)

// LoginRequest is the JSON request body for POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleLogin verifies credentials and returns the signed token as a plain
// string body, the shape existing clients expect.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	principal, err := s.verifier.Authenticate(r.Context(), auth.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		// Single coarse rejection: unknown email and wrong password are
		// indistinguishable to the caller
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := s.tokens.Issue(principal)
	if err != nil {
		s.logger.Error("issuing token", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.logger.Info("login successful", "email", principal.Email, "role", string(principal.Role))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, token)
}
