// ABOUTME: Handler tests for the sweetshop API over a real SQLite store
// ABOUTME: Shared fixtures plus per-endpoint request/response checks

package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katasweets/sweetshop/internal/auth"
	"github.com/katasweets/sweetshop/internal/store"
)

const (
	testAdminEmail    = "admin@gmail.com"
	testAdminPassword = "admin123"
)

// newTestHandler builds a full server over a temp SQLite store.
func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	admin, err := auth.NewAdminRecord(testAdminEmail, testAdminPassword)
	require.NoError(t, err)

	tokens := auth.NewTokenService([]byte("test-secret"))
	verifier := auth.NewCredentialVerifier(admin, st)
	resolver := auth.NewPrincipalResolver(admin, st)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := NewServer(st, st, tokens, verifier, resolver, logger)
	return srv.Handler()
}

// doRequest sends a JSON request through the full middleware + handler chain.
func doRequest(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// registerUser creates an account through the public endpoint.
func registerUser(t *testing.T, h http.Handler, email, password string) {
	t.Helper()

	rec := doRequest(t, h, http.MethodPost, "/api/users/create", "", CreateUserRequest{
		Email:    email,
		Password: password,
	})
	require.Equal(t, http.StatusCreated, rec.Code, "registration failed: %s", rec.Body.String())
}

// loginAs logs in and returns the raw token string.
func loginAs(t *testing.T, h http.Handler, email, password string) string {
	t.Helper()

	rec := doRequest(t, h, http.MethodPost, "/api/login", "", LoginRequest{
		Email:    email,
		Password: password,
	})
	require.Equal(t, http.StatusOK, rec.Code, "login failed: %s", rec.Body.String())

	token := rec.Body.String()
	require.NotEmpty(t, token)
	return token
}

// createSweet inserts a catalog item as admin and returns its ID.
func createSweet(t *testing.T, h http.Handler, adminToken string, req SweetRequest) string {
	t.Helper()

	rec := doRequest(t, h, http.MethodPost, "/api/sweets/create", adminToken, req)
	require.Equal(t, http.StatusCreated, rec.Code, "create failed: %s", rec.Body.String())

	var resp SweetResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.ID)
	return resp.ID
}

func TestCreateUser_Duplicate(t *testing.T) {
	h := newTestHandler(t)

	registerUser(t, h, "alice@example.com", "pw1")

	rec := doRequest(t, h, http.MethodPost, "/api/users/create", "", CreateUserRequest{
		Email:    "alice@example.com",
		Password: "other",
	})
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestCreateUser_MissingFields(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodPost, "/api/users/create", "", CreateUserRequest{Email: "x@example.com"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestLogin_BadBody(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCreateSweet_MissingName(t *testing.T) {
	h := newTestHandler(t)
	adminToken := loginAs(t, h, testAdminEmail, testAdminPassword)

	rec := doRequest(t, h, http.MethodPost, "/api/sweets/create", adminToken, SweetRequest{Category: "barfi"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetSweet_NotFound(t *testing.T) {
	h := newTestHandler(t)
	registerUser(t, h, "alice@example.com", "pw1")
	token := loginAs(t, h, "alice@example.com", "pw1")

	rec := doRequest(t, h, http.MethodGet, "/api/sweets/getbyid/no-such-id", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestUpdateSweet_FullFlow(t *testing.T) {
	h := newTestHandler(t)
	adminToken := loginAs(t, h, testAdminEmail, testAdminPassword)

	id := createSweet(t, h, adminToken, SweetRequest{Name: "Barfi", Category: "barfi", Price: 12, Stock: 20})

	rec := doRequest(t, h, http.MethodPut, "/api/sweets/updateByid/"+id, adminToken, SweetRequest{
		Name: "Pista Barfi", Category: "barfi", Price: 15, Stock: 5,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated SweetResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
	if updated.Name != "Pista Barfi" || updated.Price != 15 || updated.Stock != 5 {
		t.Errorf("updated = %+v", updated)
	}

	// Read back through the API
	rec = doRequest(t, h, http.MethodGet, "/api/sweets/getbyid/"+id, adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got SweetResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	if got.Name != "Pista Barfi" {
		t.Errorf("Name = %q after update", got.Name)
	}
}

func TestUpdateSweet_NotFound(t *testing.T) {
	h := newTestHandler(t)
	adminToken := loginAs(t, h, testAdminEmail, testAdminPassword)

	rec := doRequest(t, h, http.MethodPut, "/api/sweets/updateByid/missing", adminToken, SweetRequest{Name: "X"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteSweet_FullFlow(t *testing.T) {
	h := newTestHandler(t)
	adminToken := loginAs(t, h, testAdminEmail, testAdminPassword)

	id := createSweet(t, h, adminToken, SweetRequest{Name: "Rasgulla", Category: "syrup", Price: 6, Stock: 40})

	rec := doRequest(t, h, http.MethodDelete, "/api/sweets/deletebyid/"+id, adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doRequest(t, h, http.MethodGet, "/api/sweets/getbyid/"+id, adminToken, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status after delete = %d, want 404", rec.Code)
	}
}

func TestDeleteSweet_NotFound(t *testing.T) {
	h := newTestHandler(t)
	adminToken := loginAs(t, h, testAdminEmail, testAdminPassword)

	rec := doRequest(t, h, http.MethodDelete, "/api/sweets/deletebyid/missing", adminToken, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestListSweets_Empty(t *testing.T) {
	h := newTestHandler(t)
	registerUser(t, h, "alice@example.com", "pw1")
	token := loginAs(t, h, "alice@example.com", "pw1")

	rec := doRequest(t, h, http.MethodGet, "/api/sweets/getall", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var sweets []SweetResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&sweets))
	if len(sweets) != 0 {
		t.Errorf("got %d sweets, want 0", len(sweets))
	}
}
