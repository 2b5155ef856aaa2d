package serverutils

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type stubRevocations struct {
	revoked map[string]bool
}

func (s *stubRevocations) Revoke(ctx context.Context, tokenHash string, ttl time.Duration) error {
	if s.revoked == nil {
		s.revoked = make(map[string]bool)
	}
	s.revoked[tokenHash] = true
	return nil
}

func (s *stubRevocations) IsRevoked(ctx context.Context, tokenHash string) (bool, error) {
	return s.revoked[tokenHash], nil
}

func signToken(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": "6f1c8bb0-94a2-4a4e-9d3f-0a1d6f0b8a11",
		"exp":     exp.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newProtectedApp(revocations *stubRevocations) *fiber.App {
	app := fiber.New()
	app.Get("/protected", NewJwtMiddleware(testSecret, revocations), func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"user_id": ctx.Locals("user_id")})
	})
	return app
}

func TestJwtMiddleware(t *testing.T) {
	revocations := &stubRevocations{}
	app := newProtectedApp(revocations)

	t.Run("valid token passes", func(t *testing.T) {
		token := signToken(t, testSecret, time.Now().Add(time.Hour))

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, res.StatusCode)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)

		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token := signToken(t, testSecret, time.Now().Add(-time.Hour))

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		token := signToken(t, "other-secret", time.Now().Add(time.Hour))

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
	})

	t.Run("revoked token is rejected", func(t *testing.T) {
		token := signToken(t, testSecret, time.Now().Add(time.Hour))
		require.NoError(t, revocations.Revoke(context.Background(), TokenHash(token), time.Hour))

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
	})
}

func TestTokenHash(t *testing.T) {
	// Hashing is stable and never stores the raw token.
	a := TokenHash("some-token")
	b := TokenHash("some-token")
	c := TokenHash("another-token")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
