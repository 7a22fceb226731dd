// ABOUTME: Shared JSON response helpers and guard-to-status mapping
// ABOUTME: Keeps handler bodies focused on their operation

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/katasweets/sweetshop/internal/auth"
)

// ErrorResponse is the JSON body for all error statuses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is the JSON body for simple confirmations.
type StatusResponse struct {
	Status string `json:"status"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// guard runs the role check and writes the rejection when it fails.
// Anonymous requests get 401, insufficient roles get 403. Returns true when
// the handler may proceed.
func (s *Server) guard(w http.ResponseWriter, r *http.Request, allowed ...auth.Role) bool {
	err := auth.Require(r.Context(), allowed...)
	if err == nil {
		return true
	}

	if errors.Is(err, auth.ErrAuthenticationRequired) {
		writeError(w, http.StatusUnauthorized, "authentication required")
	} else {
		writeError(w, http.StatusForbidden, "insufficient role")
	}
	return false
}
