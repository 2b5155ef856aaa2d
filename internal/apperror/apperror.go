// Package apperror carries the request-level error taxonomy. Services
// return *AppError for domain failures; the server's error handler maps
// them onto HTTP responses. Anything that is not an *AppError surfaces
// as a generic 500 without internal detail.
package apperror

import "errors"

const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeAuth          = "AUTH_ERROR"
	CodeNotFound      = "NOT_FOUND"
	CodeConflict      = "CONFLICT"
	CodeInvalidColour = "INVALID_COLOUR"
	CodeInternal      = "INTERNAL_ERROR"
)

type AppError struct {
	Code    string
	Status  int
	Message string
	// Fields holds per-field validation messages (validation errors only).
	Fields map[string]string
}

func (e *AppError) Error() string {
	return e.Message
}

func Validation(message string, fields map[string]string) *AppError {
	return &AppError{Code: CodeValidation, Status: 400, Message: message, Fields: fields}
}

func Auth(message string) *AppError {
	return &AppError{Code: CodeAuth, Status: 401, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Code: CodeNotFound, Status: 404, Message: message}
}

func Conflict(message string) *AppError {
	return &AppError{Code: CodeConflict, Status: 409, Message: message}
}

func InvalidColour(message string) *AppError {
	return &AppError{Code: CodeInvalidColour, Status: 400, Message: message}
}

func Internal(message string) *AppError {
	return &AppError{Code: CodeInternal, Status: 500, Message: message}
}

// From extracts the *AppError from err, or wraps err as a generic
// internal error with the original message hidden from the client.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("Internal server error")
}
