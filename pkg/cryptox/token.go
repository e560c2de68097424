// Package cryptox generates the random tokens carried in invite links.
package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// TokenSizeInvite is the raw size of an invite token: 192 bits, which
// encodes to 32 URL-safe characters.
const TokenSizeInvite = 24

var tokenEncoding = base64.RawURLEncoding

// GenerateToken returns size random bytes, base64url-encoded without padding.
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return tokenEncoding.EncodeToString(buf), nil
}

// NewInviteToken returns a fresh invite token.
func NewInviteToken() (string, error) {
	return GenerateToken(TokenSizeInvite)
}

// WellFormed reports whether s has the shape of a token of size raw bytes.
// It lets callers reject garbage without a database round trip.
func WellFormed(s string, size int) bool {
	if size <= 0 || len(s) != tokenEncoding.EncodedLen(size) {
		return false
	}
	_, err := tokenEncoding.DecodeString(s)
	return err == nil
}
