package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{name: "validation", err: Validation("bad input", nil), wantCode: CodeValidation, wantStatus: 400},
		{name: "auth", err: Auth("nope"), wantCode: CodeAuth, wantStatus: 401},
		{name: "not found", err: NotFound("missing"), wantCode: CodeNotFound, wantStatus: 404},
		{name: "conflict", err: Conflict("duplicate"), wantCode: CodeConflict, wantStatus: 409},
		{name: "invalid colour", err: InvalidColour("neon"), wantCode: CodeInvalidColour, wantStatus: 400},
		{name: "internal", err: Internal("boom"), wantCode: CodeInternal, wantStatus: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.Status)
			assert.Equal(t, tt.err.Message, tt.err.Error())
		})
	}
}

func TestFrom(t *testing.T) {
	t.Run("unwraps an AppError", func(t *testing.T) {
		src := NotFound("gone")
		got := From(fmt.Errorf("service: %w", src))
		assert.Equal(t, src, got)
	})

	t.Run("hides unknown errors behind a 500", func(t *testing.T) {
		got := From(errors.New("pq: connection refused"))
		assert.Equal(t, CodeInternal, got.Code)
		assert.Equal(t, 500, got.Status)
		assert.NotContains(t, got.Message, "pq:")
	})
}
