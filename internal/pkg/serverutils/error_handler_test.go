package serverutils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"notekeeper-be/internal/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFailingApp(handlerErr error) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/fail", func(ctx *fiber.Ctx) error {
		return handlerErr
	})
	return app
}

func TestErrorHandlerMiddleware(t *testing.T) {
	t.Run("domain error carries its machine code", func(t *testing.T) {
		app := newFailingApp(apperror.Conflict("Email already registered"))

		res, err := app.Test(httptest.NewRequest("GET", "/fail", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, res.StatusCode)

		var body ErrorBody
		require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
		assert.False(t, body.Success)
		assert.Equal(t, apperror.CodeConflict, body.Code)
		assert.Equal(t, "Email already registered", body.Message)
	})

	t.Run("validation error carries field messages", func(t *testing.T) {
		app := newFailingApp(apperror.Validation("Validation failed", map[string]string{"email": "email is invalid"}))

		res, err := app.Test(httptest.NewRequest("GET", "/fail", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

		var body ErrorBody
		require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
		assert.Equal(t, apperror.CodeValidation, body.Code)
		assert.Equal(t, "email is invalid", body.Fields["email"])
	})

	t.Run("unknown error is an opaque internal error", func(t *testing.T) {
		app := newFailingApp(errors.New("pq: connection refused"))

		res, err := app.Test(httptest.NewRequest("GET", "/fail", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, res.StatusCode)

		var body ErrorBody
		require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
		assert.Equal(t, apperror.CodeInternal, body.Code)
		assert.Equal(t, "Internal server error", body.Message)
		assert.NotContains(t, body.Message, "pq:")
	})

	t.Run("router error maps onto the closest code", func(t *testing.T) {
		app := newFailingApp(fiber.ErrNotFound)

		res, err := app.Test(httptest.NewRequest("GET", "/fail", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, res.StatusCode)

		var body ErrorBody
		require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
		assert.Equal(t, apperror.CodeNotFound, body.Code)
	})
}
