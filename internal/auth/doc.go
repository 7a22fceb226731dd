// Package auth provides authentication and authorization for sweetshop.
//
// # Login
//
// Credentials are checked by CredentialVerifier against an ordered list of
// identity providers:
//
//   - The fixed in-memory administrator record (role ADMIN)
//   - The persisted-user store (role USER)
//
// The identity spaces are disjoint and the first matching provider wins.
// Secrets are compared only through bcrypt; login failure is a single coarse
// ErrAuthenticationFailed that never reveals which check failed.
//
// # Tokens
//
// Successful login yields an HS256-signed JWT with claims sub, role, iat and
// exp. Validity is fixed at seven days from issuance. TokenService.Verify
// checks signature and expiry in one pass; IsValid additionally re-checks
// that the subject matches a given identity.
//
// # Request Authentication
//
// Middleware runs once per request. Paths on the public allow-list
// (/api/login, /api/users/create) skip authentication. Otherwise the bearer
// token is verified, the subject resolved through PrincipalResolver, and the
// resulting Principal published into the request context with WithPrincipal.
// A missing, malformed, expired or orphaned token degrades the request to
// anonymous instead of rejecting it; the distinct failure kind is logged for
// observability.
//
// # Authorization
//
// Protected handlers call Require(ctx, roles...) before doing any work:
//
//	if err := auth.Require(r.Context(), auth.RoleAdmin); err != nil { ... }
//
// Anonymous requests get ErrAuthenticationRequired, authenticated requests
// outside the allowed role set get ErrAccessDenied.
package auth
