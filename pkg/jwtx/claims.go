package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default token TTL constants. Short lifetimes bound the blast radius of a
// leaked bearer credential; both can be overridden per-service.
const (
	// DefaultSessionTokenTTL is the default lifetime for login session tokens.
	DefaultSessionTokenTTL = 12 * time.Hour

	// DefaultChatTokenTTL is the default lifetime for chat connection
	// tokens. These are single-purpose and minted on demand, so they stay
	// very short.
	DefaultChatTokenTTL = 15 * time.Minute
)

// Claims are the token claims used across the portal. Keep changes additive
// to preserve compatibility with tokens already in flight.
type Claims struct {
	jwt.RegisteredClaims

	/* Custom fields */

	// Role of the authenticated user ("patient" or "psychologist").
	Role string `json:"role,omitempty"`

	// Email of the authenticated user. Only present on session tokens.
	Email string `json:"email,omitempty"`

	// Name is the display name for the user. Only present on session tokens.
	Name string `json:"name,omitempty"`
}

// NewClaims builds minimally-correct claims for a token bound to subject.
func NewClaims(subject, role, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Role: role,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used
// before it is valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && !now.Before(c.ExpiresAt.Time) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}
