// ABOUTME: Public user registration endpoint
// ABOUTME: Persists a USER-role account with a bcrypt-hashed secret

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/katasweets/sweetshop/internal/store"
)

// CreateUserRequest is the JSON request body for POST /api/users/create.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// CreateUserResponse is the JSON response for a successful registration.
type CreateUserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// handleCreateUser registers a new USER-role account. The endpoint is on
// the public allow-list; no guard runs here.
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hashing password", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	user := &store.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			writeError(w, http.StatusConflict, "email already registered")
			return
		}
		s.logger.Error("creating user", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.logger.Info("user registered", "email", user.Email)
	writeJSON(w, http.StatusCreated, CreateUserResponse{ID: user.ID, Email: user.Email})
}
