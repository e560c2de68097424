package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestNewHS256RejectsWeakSecret(t *testing.T) {
	_, err := NewHS256([]byte("short"), "", nil)
	require.ErrorIs(t, err, ErrWeakSecret)
}

func TestHS256RoundTrip(t *testing.T) {
	h, err := NewHS256(testSecret, "bartab-auth", []string{"teams"})
	require.NoError(t, err)

	claims := NewAccessClaims("01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", "bartab-auth", []string{"teams"}, time.Minute, time.Now())
	claims.Email = "alice@example.com"

	token, err := h.Sign(claims)
	require.NoError(t, err)

	got, err := h.Verify(token)
	require.NoError(t, err)
	require.Equal(t, claims.Subject, got.Subject)
	require.Equal(t, "alice@example.com", got.Email)
}

func TestHS256VerifyFailures(t *testing.T) {
	h, err := NewHS256(testSecret, "bartab-auth", []string{"teams"})
	require.NoError(t, err)

	other, err := NewHS256([]byte(strings.Repeat("x", 32)), "bartab-auth", []string{"teams"})
	require.NoError(t, err)

	now := time.Now()
	sign := func(signer *HS256, c Claims) string {
		tok, err := signer.Sign(c)
		require.NoError(t, err)
		return tok
	}

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"empty", "", ErrMalformed},
		{"garbage", "not.a.jwt", ErrMalformed},
		{"wrong secret", sign(other, NewAccessClaims("u1", "bartab-auth", []string{"teams"}, time.Minute, now)), ErrInvalidSig},
		{"wrong issuer", sign(h, NewAccessClaims("u1", "someone-else", []string{"teams"}, time.Minute, now)), ErrIssuer},
		{"wrong audience", sign(h, NewAccessClaims("u1", "bartab-auth", []string{"chat"}, time.Minute, now)), ErrAudience},
		{"expired", sign(h, NewAccessClaims("u1", "bartab-auth", []string{"teams"}, time.Minute, now.Add(-time.Hour))), ErrExpired},
		{"no subject", sign(h, NewAccessClaims("", "bartab-auth", []string{"teams"}, time.Minute, now)), ErrInvalidClaim},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Verify(tt.token)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHS256RejectsOtherAlgorithms(t *testing.T) {
	h, err := NewHS256(testSecret, "", nil)
	require.NoError(t, err)

	c := NewAccessClaims("u1", "", nil, time.Minute, time.Now())
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, c).SignedString(testSecret)
	require.NoError(t, err)

	_, err = h.Verify(tok)
	require.Error(t, err)
}
