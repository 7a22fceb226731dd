// ABOUTME: Principal resolution from a token subject during request authentication
// ABOUTME: Maps an email to the fixed admin record or a persisted user account

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/katasweets/sweetshop/internal/store"
)

// ErrPrincipalNotFound is returned when a token subject no longer resolves
// to any account.
var ErrPrincipalNotFound = errors.New("principal not found")

// PrincipalResolver maps a verified token subject back to a principal. It is
// only used during request-time token validation; login goes through
// CredentialVerifier, which performs its own resolution.
type PrincipalResolver struct {
	admin *AdminRecord
	users UserSource
}

// NewPrincipalResolver creates a resolver over the two identity spaces.
func NewPrincipalResolver(admin *AdminRecord, users UserSource) *PrincipalResolver {
	return &PrincipalResolver{admin: admin, users: users}
}

// Resolve returns the principal for the email, with the role of the identity
// space it belongs to. Returns ErrPrincipalNotFound when neither space
// contains the email.
func (r *PrincipalResolver) Resolve(ctx context.Context, email string) (*Principal, error) {
	if r.admin != nil && email == r.admin.email {
		return &Principal{Email: r.admin.email, Role: RoleAdmin}, nil
	}

	user, err := r.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrPrincipalNotFound
		}
		return nil, fmt.Errorf("looking up principal: %w", err)
	}

	return &Principal{Email: user.Email, Role: RoleUser}, nil
}
