package jwtx

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrAlgMismatch  = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig   = errors.New("jwtx: invalid signature")
	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrAudience     = errors.New("jwtx: audience mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
	ErrWeakSecret   = errors.New("jwtx: hmac secret must be at least 32 bytes")
)

// MinSecretSize is the shortest HMAC secret accepted by NewHS256.
const MinSecretSize = 32

// HS256 verifies (and, for tooling and tests, signs) tokens with a shared
// HMAC-SHA256 secret.
type HS256 struct {
	secret   []byte
	issuer   string
	audience []string
	leeway   time.Duration
	now      func() time.Time
}

// NewHS256 builds an HS256 verifier. Empty issuer or audience disables the
// corresponding check.
func NewHS256(secret []byte, issuer string, audience []string) (*HS256, error) {
	if len(secret) < MinSecretSize {
		return nil, ErrWeakSecret
	}
	return &HS256{
		secret:   secret,
		issuer:   issuer,
		audience: audience,
		leeway:   30 * time.Second,
		now:      time.Now,
	}, nil
}

// Verify parses the token, checks the signature and validates the standard
// claims. A token without a subject is rejected.
func (h *HS256) Verify(raw string) (Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Claims{}, ErrMalformed
	}

	var claims Claims
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	_, err := parser.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return h.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		case errors.Is(err, jwt.ErrTokenUnverifiable):
			return Claims{}, ErrAlgMismatch
		default:
			return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}

	if err := claims.ValidateIssuer(h.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateAudience(h.audience); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiryWithLeeway(h.now().UTC(), h.leeway); err != nil {
		return Claims{}, err
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return Claims{}, ErrInvalidClaim
	}

	return claims, nil
}

// Sign produces a compact HS256 token for the given claims.
func (h *HS256) Sign(c Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(h.secret)
}
