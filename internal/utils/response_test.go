package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSON(t *testing.T) {
	t.Run("SerializesPayloadUnwrapped", func(t *testing.T) {
		rec := httptest.NewRecorder()
		JSON(rec, http.StatusOK, map[string]string{"status": "ok"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("PropagatesStatusCode", func(t *testing.T) {
		rec := httptest.NewRecorder()
		JSON(rec, http.StatusCreated, []string{"a", "b"})

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `["a","b"]`, rec.Body.String())
	})

	t.Run("UnserializablePayload", func(t *testing.T) {
		rec := httptest.NewRecorder()
		JSON(rec, http.StatusOK, make(chan int))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "error")
	})
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusServiceUnavailable, "moderation service unavailable")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"moderation service unavailable"}`, rec.Body.String())
}

func TestErrorFromAppError(t *testing.T) {
	rec := httptest.NewRecorder()
	ErrorFromAppError(rec, NewServiceUnavailableError("checker down"))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"checker down"}`, rec.Body.String())
}

func TestNotFound(t *testing.T) {
	t.Run("WithMessage", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NotFound(rec, "asset not found")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"asset not found"}`, rec.Body.String())
	})

	t.Run("DefaultMessage", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NotFound(rec, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
	})
}
