// ABOUTME: Role guard evaluated at the top of each protected operation
// ABOUTME: Denies anonymous requests and principals outside the allowed role set

package auth

import (
	"context"
	"errors"
)

// Guard errors
var (
	// ErrAuthenticationRequired is returned when the request carries no
	// principal. Anonymous requests reach the guard because the middleware
	// degrades token failures instead of rejecting them.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrAccessDenied is returned when the principal's role is not in the
	// allowed set. It is always surfaced to the caller, never downgraded.
	ErrAccessDenied = errors.New("access denied")
)

// Require checks the request principal against the allowed role set.
// Handlers call it before performing any side effect; a non-nil return
// short-circuits the operation entirely.
func Require(ctx context.Context, allowed ...Role) error {
	p := FromContext(ctx)
	if p == nil {
		return ErrAuthenticationRequired
	}
	if !p.HasRole(allowed...) {
		return ErrAccessDenied
	}
	return nil
}
