package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/safespace-labs/SafeSpace_Backend/internal/moderation"
)

func TestAppErrorInterface(t *testing.T) {
	err := NewBadRequestError("bad input")

	assert.Equal(t, "bad input", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.True(t, errors.Is(err, ErrBadRequest))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		statusCode int
		sentinel   error
	}{
		{"NotFound", NewNotFoundError("missing"), http.StatusNotFound, ErrNotFound},
		{"NotFoundDefault", NewNotFoundError(""), http.StatusNotFound, ErrNotFound},
		{"BadRequest", NewBadRequestError("nope"), http.StatusBadRequest, ErrBadRequest},
		{"Internal", NewInternalServerError(fmt.Errorf("boom")), http.StatusInternalServerError, ErrInternalServer},
		{"Unavailable", NewServiceUnavailableError("down"), http.StatusServiceUnavailable, ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.statusCode, tt.err.StatusCode)
			assert.True(t, errors.Is(tt.err, tt.sentinel))
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestParseError(t *testing.T) {
	t.Run("PassesThroughAppError", func(t *testing.T) {
		original := NewNotFoundError("gone")
		assert.Same(t, original, ParseError(original))
	})

	t.Run("WrappedAppError", func(t *testing.T) {
		original := NewBadRequestError("nope")
		wrapped := fmt.Errorf("handling request: %w", original)
		assert.Same(t, original, ParseError(wrapped))
	})

	t.Run("ModerationUnavailableBecomes503", func(t *testing.T) {
		parsed := ParseError(moderation.ErrUnavailable)
		assert.Equal(t, http.StatusServiceUnavailable, parsed.StatusCode)
	})

	t.Run("WrappedModerationUnavailable", func(t *testing.T) {
		parsed := ParseError(fmt.Errorf("checking message: %w", moderation.ErrUnavailable))
		assert.Equal(t, http.StatusServiceUnavailable, parsed.StatusCode)
	})

	t.Run("UnknownErrorBecomes500", func(t *testing.T) {
		parsed := ParseError(errors.New("mystery"))
		assert.Equal(t, http.StatusInternalServerError, parsed.StatusCode)
	})
}
