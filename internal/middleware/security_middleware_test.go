package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecurityHeaders(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := SecurityHeaders()(next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
}

func TestRequestLogger(t *testing.T) {
	t.Run("PassesThrough", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
			_, _ = w.Write([]byte("done"))
		})

		handler := RequestLogger()(next)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, "done", rec.Body.String())
	})

	t.Run("SkipsWebSocketPath", func(t *testing.T) {
		// The handler must receive the original writer on /ws so the
		// connection can be hijacked for the upgrade.
		var got http.ResponseWriter
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = w
			w.WriteHeader(http.StatusOK)
		})

		handler := RequestLogger()(next)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws", nil))

		assert.Equal(t, http.ResponseWriter(rec), got)
	})
}
