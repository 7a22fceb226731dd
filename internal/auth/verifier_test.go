// ABOUTME: Unit tests for credential verification and principal resolution
// ABOUTME: Covers the fixed admin record, persisted users, and coarse failures

package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/katasweets/sweetshop/internal/store"
)

// fakeUserSource is an in-memory UserSource keyed by email.
type fakeUserSource struct {
	users map[string]*store.User
}

func (f *fakeUserSource) GetUserByEmail(_ context.Context, email string) (*store.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, store.ErrUserNotFound
}

func newFakeUserSource(t *testing.T, email, password string) *fakeUserSource {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("GenerateFromPassword() error = %v", err)
	}
	return &fakeUserSource{users: map[string]*store.User{
		email: {ID: "user-1", Email: email, PasswordHash: string(hash)},
	}}
}

func newTestAdmin(t *testing.T) *AdminRecord {
	t.Helper()
	admin, err := NewAdminRecord("admin@gmail.com", "admin123")
	if err != nil {
		t.Fatalf("NewAdminRecord() error = %v", err)
	}
	return admin
}

func TestAuthenticate_AdminRecord(t *testing.T) {
	verifier := NewCredentialVerifier(newTestAdmin(t), &fakeUserSource{users: map[string]*store.User{}})
	ctx := context.Background()

	p, err := verifier.Authenticate(ctx, Credentials{Email: "admin@gmail.com", Password: "admin123"})
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if p.Role != RoleAdmin {
		t.Errorf("Role = %q, want ADMIN", p.Role)
	}
	if p.Email != "admin@gmail.com" {
		t.Errorf("Email = %q, want admin@gmail.com", p.Email)
	}
}

func TestAuthenticate_AdminWrongPassword(t *testing.T) {
	verifier := NewCredentialVerifier(newTestAdmin(t), &fakeUserSource{users: map[string]*store.User{}})

	_, err := verifier.Authenticate(context.Background(), Credentials{Email: "admin@gmail.com", Password: "wrong"})
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("Authenticate() error = %v, want ErrAuthenticationFailed", err)
	}
}

func TestAuthenticate_RegisteredUser(t *testing.T) {
	users := newFakeUserSource(t, "alice@example.com", "pw1")
	verifier := NewCredentialVerifier(newTestAdmin(t), users)

	p, err := verifier.Authenticate(context.Background(), Credentials{Email: "alice@example.com", Password: "pw1"})
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if p.Role != RoleUser {
		t.Errorf("Role = %q, want USER", p.Role)
	}
}

func TestAuthenticate_UserWrongPassword(t *testing.T) {
	users := newFakeUserSource(t, "alice@example.com", "pw1")
	verifier := NewCredentialVerifier(newTestAdmin(t), users)

	_, err := verifier.Authenticate(context.Background(), Credentials{Email: "alice@example.com", Password: "pw2"})
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("Authenticate() error = %v, want ErrAuthenticationFailed", err)
	}
}

func TestAuthenticate_UnknownIdentity(t *testing.T) {
	verifier := NewCredentialVerifier(newTestAdmin(t), &fakeUserSource{users: map[string]*store.User{}})

	_, err := verifier.Authenticate(context.Background(), Credentials{Email: "nobody@example.com", Password: "anything"})
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("Authenticate() error = %v, want ErrAuthenticationFailed", err)
	}
}

func TestResolve_Admin(t *testing.T) {
	resolver := NewPrincipalResolver(newTestAdmin(t), &fakeUserSource{users: map[string]*store.User{}})

	p, err := resolver.Resolve(context.Background(), "admin@gmail.com")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if p.Role != RoleAdmin {
		t.Errorf("Role = %q, want ADMIN", p.Role)
	}
}

func TestResolve_User(t *testing.T) {
	users := newFakeUserSource(t, "alice@example.com", "pw1")
	resolver := NewPrincipalResolver(newTestAdmin(t), users)

	p, err := resolver.Resolve(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if p.Role != RoleUser {
		t.Errorf("Role = %q, want USER", p.Role)
	}
}

func TestResolve_NotFound(t *testing.T) {
	resolver := NewPrincipalResolver(newTestAdmin(t), &fakeUserSource{users: map[string]*store.User{}})

	_, err := resolver.Resolve(context.Background(), "gone@example.com")
	if !errors.Is(err, ErrPrincipalNotFound) {
		t.Errorf("Resolve() error = %v, want ErrPrincipalNotFound", err)
	}
}
