//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// the engine never verifies signatures, so any key works
const testSigningKey = "storefront-test-key"

type JWTHelper struct {
	now func() time.Time
}

func NewJWTHelper(now func() time.Time) *JWTHelper {
	return &JWTHelper{now: now}
}

func (h *JWTHelper) GenerateToken(t *testing.T, subject string, roles []string, ttl time.Duration) string {
	t.Helper()
	claims := gojwt.MapClaims{
		"sub":   subject,
		"roles": roles,
		"iat":   h.now().Unix(),
		"exp":   h.now().Add(ttl).Unix(),
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSigningKey))
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, subject string) string {
	t.Helper()
	return h.GenerateToken(t, subject, []string{"USER"}, -time.Minute)
}

func (h *JWTHelper) GenerateTokenWithoutExpiry(t *testing.T, subject string) string {
	t.Helper()
	claims := gojwt.MapClaims{"sub": subject}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSigningKey))
	require.NoError(t, err)
	return token
}
