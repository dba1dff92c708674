package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillnest/skillnest/internal/api"
)

func signToken(t *testing.T, claims *Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestDecodeAccessToken(t *testing.T) {
	t.Run("valid token yields claims", func(t *testing.T) {
		token := signToken(t, &Claims{
			UserID: 42,
			Role:   api.RoleInstructor,
			Email:  "t@example.com",
		})

		claims, err := DecodeAccessToken(token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, api.RoleInstructor, claims.Role)
		assert.Equal(t, "t@example.com", claims.Email)
	})

	t.Run("signature is not verified", func(t *testing.T) {
		token := signToken(t, &Claims{UserID: 7})
		// Corrupt the signature segment only; the payload still decodes.
		tampered := token[:len(token)-4] + "AAAA"

		claims, err := DecodeAccessToken(tampered)
		require.NoError(t, err)
		assert.Equal(t, int64(7), claims.UserID)
	})

	t.Run("malformed tokens", func(t *testing.T) {
		for _, token := range []string{
			"",
			"garbage",
			"one.two",
			"a.b.c.d",
			"!!!.???.###",
		} {
			_, err := DecodeAccessToken(token)
			require.Error(t, err, "token %q", token)
			assert.ErrorIs(t, err, ErrDecodeToken)
		}
	})
}

func TestClaims_Expired(t *testing.T) {
	now := time.Now()

	t.Run("zero expiry never expires", func(t *testing.T) {
		assert.False(t, (&Claims{}).Expired(now))
	})

	t.Run("future expiry", func(t *testing.T) {
		c := &Claims{RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}}
		assert.False(t, c.Expired(now))
	})

	t.Run("past expiry", func(t *testing.T) {
		c := &Claims{RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		}}
		assert.True(t, c.Expired(now))
	})
}

func TestClaims_MergeUser(t *testing.T) {
	t.Run("claims win for identity and role", func(t *testing.T) {
		claims := &Claims{UserID: 1, Role: api.RoleAdmin}
		cached := &api.User{ID: 99, Role: api.RoleStudent, FirstName: "Amara"}

		user := claims.MergeUser(cached)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, api.RoleAdmin, user.Role)
		assert.Equal(t, "Amara", user.FirstName)
	})

	t.Run("cached profile wins for display fields", func(t *testing.T) {
		claims := &Claims{UserID: 1, FirstName: "FromToken", Email: "token@example.com"}
		cached := &api.User{FirstName: "Amara", Email: "amara@example.com"}

		user := claims.MergeUser(cached)
		assert.Equal(t, "Amara", user.FirstName)
		assert.Equal(t, "amara@example.com", user.Email)
	})

	t.Run("claims fill blank display fields", func(t *testing.T) {
		claims := &Claims{UserID: 1, FirstName: "FromToken", LastName: "Okafor"}

		user := claims.MergeUser(&api.User{})
		assert.Equal(t, "FromToken", user.FirstName)
		assert.Equal(t, "Okafor", user.LastName)
	})

	t.Run("nil cached profile", func(t *testing.T) {
		claims := &Claims{UserID: 5, Role: api.RoleStudent, Email: "s@example.com"}

		user := claims.MergeUser(nil)
		require.NotNil(t, user)
		assert.Equal(t, int64(5), user.ID)
		assert.Equal(t, api.RoleStudent, user.Role)
		assert.Equal(t, "s@example.com", user.Email)
	})
}
