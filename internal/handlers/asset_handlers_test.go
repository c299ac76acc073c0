package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAssetRouter mounts the asset handler the same way the server does, so
// chi's wildcard parameter is populated.
func newAssetRouter(h *AssetHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/dashboard/", h.DashboardIndex)
	r.Get("/dashboard/*", h.DashboardAsset)
	r.Get("/extension/*", h.ExtensionAsset)
	return r
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestDashboardServing(t *testing.T) {
	dashboardDir := t.TempDir()
	extensionDir := t.TempDir()
	writeFile(t, dashboardDir, "index.html", "<h1>dashboard</h1>")
	writeFile(t, dashboardDir, "app.js", "console.log('hi')")

	router := newAssetRouter(NewAssetHandler(dashboardDir, extensionDir))

	t.Run("Index", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "dashboard")
	})

	t.Run("Asset", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/app.js", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "console.log")
	})

	t.Run("MissingAsset", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/missing.css", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDashboardDirectoryMissing(t *testing.T) {
	router := newAssetRouter(NewAssetHandler(filepath.Join(t.TempDir(), "gone"), t.TempDir()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExtensionServing(t *testing.T) {
	dashboardDir := t.TempDir()
	extensionDir := t.TempDir()
	writeFile(t, extensionDir, "logo.png", "png-bytes")
	writeFile(t, extensionDir, "assets/icon.svg", "<svg/>")

	// A file outside the extension root that traversal must never reach.
	outside := filepath.Join(filepath.Dir(extensionDir), "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0o600))

	router := newAssetRouter(NewAssetHandler(dashboardDir, extensionDir))

	t.Run("ServesFile", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/extension/logo.png", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "png-bytes", rec.Body.String())
	})

	t.Run("ServesNestedFile", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/extension/assets/icon.svg", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("MissingFile", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/extension/nope.png", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("DirectoryRejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/extension/assets", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

// TestExtensionTraversalRejected verifies path containment directly against
// the resolver, since HTTP clients normalize ../ segments before they reach
// the router.
func TestExtensionTraversalRejected(t *testing.T) {
	extensionDir := t.TempDir()
	writeFile(t, extensionDir, "logo.png", "png-bytes")

	tests := []struct {
		name     string
		resource string
	}{
		{"ParentEscape", "../secret.txt"},
		{"DeepEscape", "../../etc/passwd"},
		{"EmbeddedEscape", "assets/../../secret.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := resolveWithin(extensionDir, tt.resource)
			assert.False(t, ok, "resource %q must not resolve inside the root", tt.resource)
		})
	}

	t.Run("InsideRootStillResolves", func(t *testing.T) {
		target, ok := resolveWithin(extensionDir, "assets/../logo.png")
		require.True(t, ok)
		assert.Equal(t, filepath.Join(extensionDir, "logo.png"), target)
	})

	// End to end: a traversal URL answers 404 and never leaks content.
	router := newAssetRouter(NewAssetHandler(t.TempDir(), extensionDir))
	req := httptest.NewRequest(http.MethodGet, "/extension/..%2f..%2fetc%2fpasswd", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
