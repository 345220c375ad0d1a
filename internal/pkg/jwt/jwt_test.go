//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"storefront-engine/internal/pkg/jwt"
	"storefront-engine/tests/common/authtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeek(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	helper := authtest.NewJWTHelper(func() time.Time { return now })

	t.Run("reads subject roles and expiry without verifying", func(t *testing.T) {
		claims, err := jwt.Peek(helper.GenerateToken(t, "user-1", []string{"customer"}, time.Hour))
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.Subject)
		assert.Equal(t, []string{"customer"}, claims.Roles)
		require.NotNil(t, claims.ExpiresAt)
		assert.True(t, now.Add(time.Hour).Equal(*claims.ExpiresAt))
		assert.False(t, claims.ExpiredAt(now))
		assert.True(t, claims.ExpiredAt(now.Add(time.Hour)))
	})

	t.Run("expired tokens are still readable", func(t *testing.T) {
		claims, err := jwt.Peek(helper.CreateExpiredToken(t, "user-1"))
		require.NoError(t, err)
		assert.True(t, claims.ExpiredAt(now))
	})

	t.Run("no exp never expires", func(t *testing.T) {
		claims, err := jwt.Peek(helper.GenerateTokenWithoutExpiry(t, "user-2"))
		require.NoError(t, err)
		assert.Nil(t, claims.ExpiresAt)
		assert.False(t, claims.ExpiredAt(now.Add(24*365*time.Hour)))
	})

	t.Run("opaque tokens are not JWTs", func(t *testing.T) {
		for _, token := range []string{"opaque-token-123", "a.b.c", ""} {
			_, err := jwt.Peek(token)
			assert.ErrorIs(t, err, jwt.ErrNotJWT, token)
		}
	})
}
