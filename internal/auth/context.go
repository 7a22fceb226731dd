// ABOUTME: Authenticated principal type and request-scoped context propagation
// ABOUTME: Provides WithPrincipal/FromContext for carrying identity through handlers

package auth

import (
	"context"
)

// Role is the authorization level attached to a principal.
type Role string

// The two roles known to the system. Collaborators declare which roles may
// invoke which operation.
const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Principal is an authenticated identity plus its role, valid for the
// current request. It is immutable once constructed; a role change requires
// re-authentication.
type Principal struct {
	Email string
	Role  Role
}

// HasRole reports whether the principal's role is in the allowed set.
func (p *Principal) HasRole(allowed ...Role) bool {
	for _, r := range allowed {
		if p.Role == r {
			return true
		}
	}
	return false
}

// principalKey is the key type for storing a Principal in context.Context.
type principalKey struct{}

// WithPrincipal returns a new context with the Principal attached.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext retrieves the Principal from the context, returning nil if the
// request is anonymous.
func FromContext(ctx context.Context) *Principal {
	val := ctx.Value(principalKey{})
	if val == nil {
		return nil
	}
	p, ok := val.(*Principal)
	if !ok {
		return nil
	}
	return p
}
