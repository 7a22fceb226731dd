// ABOUTME: Login credential verification against the ordered identity providers
// ABOUTME: Fixed in-memory admin record first, persisted users second, bcrypt only

package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/katasweets/sweetshop/internal/store"
)

// ErrAuthenticationFailed is the single failure kind for login. It never
// discloses whether the identity was unknown or the secret was wrong.
var ErrAuthenticationFailed = errors.New("authentication failed")

// dummyHash is compared when the email matches no identity provider so that
// unknown identities cost the same as a wrong password. Prevents timing
// attacks that could enumerate registered emails.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Credentials is the transient login input. It is discarded after
// verification and never persisted or logged.
type Credentials struct {
	Email    string
	Password string
}

// UserSource is the subset of the user store needed during authentication.
type UserSource interface {
	GetUserByEmail(ctx context.Context, email string) (*store.User, error)
}

// AdminRecord is the fixed in-memory administrator account. It is built once
// at startup and immutable afterwards; concurrent reads need no locking.
type AdminRecord struct {
	email string
	hash  []byte
}

// NewAdminRecord hashes the configured admin password and returns the fixed
// record. The plaintext is not retained.
func NewAdminRecord(email, password string) (*AdminRecord, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing admin password: %w", err)
	}
	return &AdminRecord{email: email, hash: hash}, nil
}

// Email returns the administrator identity.
func (a *AdminRecord) Email() string {
	return a.email
}

// CredentialVerifier checks a submitted email/password pair against the
// ordered identity providers: the fixed administrator record first, the
// persisted-user store second. The identity spaces are disjoint; first
// match wins.
type CredentialVerifier struct {
	admin *AdminRecord
	users UserSource
}

// NewCredentialVerifier creates a verifier over the two identity providers.
func NewCredentialVerifier(admin *AdminRecord, users UserSource) *CredentialVerifier {
	return &CredentialVerifier{admin: admin, users: users}
}

// Authenticate verifies the credentials and returns the principal with the
// role of the matching provider: ADMIN for the fixed record, USER for
// persisted accounts. Every failure is ErrAuthenticationFailed.
func (v *CredentialVerifier) Authenticate(ctx context.Context, creds Credentials) (*Principal, error) {
	if v.admin != nil && creds.Email == v.admin.email {
		if bcrypt.CompareHashAndPassword(v.admin.hash, []byte(creds.Password)) != nil {
			return nil, ErrAuthenticationFailed
		}
		return &Principal{Email: v.admin.email, Role: RoleAdmin}, nil
	}

	user, err := v.users.GetUserByEmail(ctx, creds.Email)
	if err != nil {
		// Burn a bcrypt comparison to keep unknown emails constant-time
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(creds.Password))
		return nil, ErrAuthenticationFailed
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		return nil, ErrAuthenticationFailed
	}

	return &Principal{Email: user.Email, Role: RoleUser}, nil
}
