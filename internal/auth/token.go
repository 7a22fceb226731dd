// ABOUTME: JWT token issuance and verification for API authentication
// ABOUTME: Uses HS256 signing with a process-wide secret and a fixed validity window

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenValidity is the fixed lifetime of every issued token. Expiry is set
// at issuance and never extended; an expired token requires a new login.
const TokenValidity = 7 * 24 * time.Hour

// Token errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrMissingClaim = errors.New("missing required claim")
)

// TokenService signs and verifies bearer tokens. The signing secret is
// immutable for the process lifetime; rotating it invalidates all
// outstanding tokens.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a new token service with the given secret
func NewTokenService(secret []byte) *TokenService {
	return &TokenService{secret: secret}
}

// Issue creates a signed token for the principal, valid for TokenValidity
// from now. The role is embedded as a claim so the caller can inspect it,
// but authorization always re-resolves the role from storage.
func (s *TokenService) Issue(p *Principal) (string, error) {
	return s.issue(p, TokenValidity)
}

func (s *TokenService) issue(p *Principal, validity time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  p.Email,
		"role": string(p.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(validity).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates the signature and expiry in one pass and extracts the
// subject email. Signature and expiry are never checked separately, so no
// code path can observe an expired-but-signed claim set.
func (s *TokenService) Verify(tokenString string) (email string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method is HS256
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		// Check if it's specifically an expiration error
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("%w: sub", ErrMissingClaim)
	}

	return sub, nil
}

// IsValid reports whether the token verifies and its subject is exactly the
// given email. Guards against a token whose subject was rebound to a
// different account than the one resolved by lookup.
func (s *TokenService) IsValid(tokenString, email string) bool {
	sub, err := s.Verify(tokenString)
	return err == nil && sub == email
}
