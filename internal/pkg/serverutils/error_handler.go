package serverutils

import (
	"errors"

	"notekeeper-be/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps errors bubbling out of the handlers onto
// HTTP responses. Domain errors carry their own status and client-safe
// message; everything else becomes an opaque 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			body := ErrorResponse(appErr.Code, appErr.Message)
			body.Fields = appErr.Fields
			return ctx.Status(appErr.Status).JSON(body)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(statusCode(fiberErr.Code), fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(apperror.CodeInternal, "Internal server error"))
	}
}

// statusCode maps a bare HTTP status from the router (unknown route,
// oversized body) onto the closest machine code.
func statusCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return apperror.CodeValidation
	case fiber.StatusUnauthorized:
		return apperror.CodeAuth
	case fiber.StatusNotFound:
		return apperror.CodeNotFound
	case fiber.StatusConflict:
		return apperror.CodeConflict
	default:
		return apperror.CodeInternal
	}
}
