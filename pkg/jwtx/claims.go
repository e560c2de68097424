package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is used by the development token minter.
const DefaultAccessTokenTTL = 15 * time.Minute

// Claims are the access-token claims the teams service understands. Tokens
// are issued by the identity provider; this service only verifies them and
// trusts the subject as the acting user id.
type Claims struct {
	jwt.RegisteredClaims

	// Email and Name are informational; the membership core reads its own
	// user rows rather than trusting these.
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// NewAccessClaims builds minimally-correct claims.
func NewAccessClaims(subject, issuer string, audience []string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			Audience:  jwt.ClaimStrings(audience),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
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
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateAudience checks if at least one expected audience is present.
func (c *Claims) ValidateAudience(expected []string) error {
	if len(expected) == 0 {
		return nil
	}
	for _, want := range expected {
		if slices.Contains(c.Audience, want) {
			return nil
		}
	}
	return ErrAudience
}

// ValidateExpiryWithLeeway checks exp and nbf allowing for clock skew.
func (c *Claims) ValidateExpiryWithLeeway(now time.Time, leeway time.Duration) error {
	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}
	return nil
}
