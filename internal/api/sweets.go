// ABOUTME: Catalog CRUD endpoints with explicit role guards
// ABOUTME: Writes are ADMIN-only, reads allow USER and ADMIN

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/katasweets/sweetshop/internal/auth"
	"github.com/katasweets/sweetshop/internal/store"
)

// SweetRequest is the JSON request body for create and update operations.
type SweetRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
}

// SweetResponse is the JSON representation of a catalog item.
type SweetResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
}

func sweetResponse(sweet *store.Sweet) SweetResponse {
	return SweetResponse{
		ID:       sweet.ID,
		Name:     sweet.Name,
		Category: sweet.Category,
		Price:    sweet.Price,
		Stock:    sweet.Stock,
	}
}

// handleCreateSweet creates a catalog item. ADMIN only.
func (s *Server) handleCreateSweet(w http.ResponseWriter, r *http.Request) {
	if !s.guard(w, r, auth.RoleAdmin) {
		return
	}

	var req SweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	now := time.Now().UTC()
	sweet := &store.Sweet{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Category:  req.Category,
		Price:     req.Price,
		Stock:     req.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.sweets.CreateSweet(r.Context(), sweet); err != nil {
		s.logger.Error("creating sweet", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, sweetResponse(sweet))
}

// handleListSweets returns the full catalog. USER or ADMIN.
func (s *Server) handleListSweets(w http.ResponseWriter, r *http.Request) {
	if !s.guard(w, r, auth.RoleUser, auth.RoleAdmin) {
		return
	}

	sweets, err := s.sweets.ListSweets(r.Context())
	if err != nil {
		s.logger.Error("listing sweets", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := make([]SweetResponse, 0, len(sweets))
	for _, sweet := range sweets {
		resp = append(resp, sweetResponse(sweet))
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleGetSweet returns one catalog item by ID. USER or ADMIN.
func (s *Server) handleGetSweet(w http.ResponseWriter, r *http.Request) {
	if !s.guard(w, r, auth.RoleUser, auth.RoleAdmin) {
		return
	}

	sweet, err := s.sweets.GetSweet(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrSweetNotFound) {
			writeError(w, http.StatusNotFound, "sweet not found")
			return
		}
		s.logger.Error("getting sweet", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, sweetResponse(sweet))
}

// handleUpdateSweet overwrites a catalog item's fields. ADMIN only.
func (s *Server) handleUpdateSweet(w http.ResponseWriter, r *http.Request) {
	if !s.guard(w, r, auth.RoleAdmin) {
		return
	}

	var req SweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sweet, err := s.sweets.GetSweet(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrSweetNotFound) {
			writeError(w, http.StatusNotFound, "sweet not found")
			return
		}
		s.logger.Error("getting sweet", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	sweet.Name = req.Name
	sweet.Category = req.Category
	sweet.Price = req.Price
	sweet.Stock = req.Stock
	sweet.UpdatedAt = time.Now().UTC()

	if err := s.sweets.UpdateSweet(r.Context(), sweet); err != nil {
		if errors.Is(err, store.ErrSweetNotFound) {
			writeError(w, http.StatusNotFound, "sweet not found")
			return
		}
		s.logger.Error("updating sweet", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, sweetResponse(sweet))
}

// handleDeleteSweet removes a catalog item. ADMIN only.
func (s *Server) handleDeleteSweet(w http.ResponseWriter, r *http.Request) {
	if !s.guard(w, r, auth.RoleAdmin) {
		return
	}

	if err := s.sweets.DeleteSweet(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, store.ErrSweetNotFound) {
			writeError(w, http.StatusNotFound, "sweet not found")
			return
		}
		s.logger.Error("deleting sweet", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{Status: "deleted"})
}
