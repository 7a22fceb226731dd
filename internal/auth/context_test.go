// ABOUTME: Unit tests for principal context propagation
// ABOUTME: Tests WithPrincipal/FromContext and per-request isolation

package auth

import (
	"context"
	"testing"
)

func TestFromContext_Empty(t *testing.T) {
	if p := FromContext(context.Background()); p != nil {
		t.Errorf("FromContext() = %v, want nil for empty context", p)
	}
}

func TestWithPrincipal_RoundTrip(t *testing.T) {
	principal := &Principal{Email: "alice@example.com", Role: RoleUser}
	ctx := WithPrincipal(context.Background(), principal)

	got := FromContext(ctx)
	if got == nil {
		t.Fatal("FromContext() = nil, want principal")
	}
	if got.Email != "alice@example.com" || got.Role != RoleUser {
		t.Errorf("FromContext() = %+v, want %+v", got, principal)
	}
}

func TestWithPrincipal_DoesNotLeakAcrossContexts(t *testing.T) {
	base := context.Background()
	_ = WithPrincipal(base, &Principal{Email: "alice@example.com", Role: RoleUser})

	// The original context stays anonymous
	if p := FromContext(base); p != nil {
		t.Errorf("FromContext(base) = %v, want nil", p)
	}
}

func TestHasRole(t *testing.T) {
	tests := []struct {
		name    string
		role    Role
		allowed []Role
		want    bool
	}{
		{"user in user+admin set", RoleUser, []Role{RoleUser, RoleAdmin}, true},
		{"admin in admin-only set", RoleAdmin, []Role{RoleAdmin}, true},
		{"user against admin-only set", RoleUser, []Role{RoleAdmin}, false},
		{"empty allowed set", RoleUser, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Principal{Email: "x@example.com", Role: tt.role}
			if got := p.HasRole(tt.allowed...); got != tt.want {
				t.Errorf("HasRole(%v) = %v, want %v", tt.allowed, got, tt.want)
			}
		})
	}
}
