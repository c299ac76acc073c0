package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/safespace-labs/SafeSpace_Backend/internal/constants"
	"github.com/safespace-labs/SafeSpace_Backend/internal/utils"
)

// AssetHandler serves the static dashboard and extension directories.
//
// The extension route confines requests to the extension root: the resolved
// target must be a descendant of the root or the request is rejected.
// Rejections are plain 404s, indistinguishable from a miss, so probing the
// filesystem layout reveals nothing.
type AssetHandler struct {
	dashboardDir string
	extensionDir string
}

// NewAssetHandler creates a new AssetHandler serving the given directories.
func NewAssetHandler(dashboardDir, extensionDir string) *AssetHandler {
	return &AssetHandler{
		dashboardDir: dashboardDir,
		extensionDir: extensionDir,
	}
}

// DashboardIndex serves the dashboard landing page.
func (h *AssetHandler) DashboardIndex(w http.ResponseWriter, r *http.Request) {
	if _, err := os.Stat(h.dashboardDir); err != nil {
		utils.NotFound(w, constants.MsgDashboardMissing)
		return
	}
	h.serveConfined(w, r, h.dashboardDir, "index.html")
}

// DashboardAsset serves static dashboard assets (CSS, JS).
func (h *AssetHandler) DashboardAsset(w http.ResponseWriter, r *http.Request) {
	if _, err := os.Stat(h.dashboardDir); err != nil {
		utils.NotFound(w, constants.MsgDashboardMissing)
		return
	}
	h.serveConfined(w, r, h.dashboardDir, chi.URLParam(r, "*"))
}

// ExtensionAsset serves extension assets referenced by the dashboard (for
// example the logo).
func (h *AssetHandler) ExtensionAsset(w http.ResponseWriter, r *http.Request) {
	h.serveConfined(w, r, h.extensionDir, chi.URLParam(r, "*"))
}

// serveConfined serves a single file from root, rejecting any request whose
// resolved path escapes it.
func (h *AssetHandler) serveConfined(w http.ResponseWriter, r *http.Request, root, resource string) {
	target, ok := resolveWithin(root, resource)
	if !ok {
		log.Warn().
			Str("root", root).
			Str("resource", resource).
			Str("remote_addr", r.RemoteAddr).
			Msg("Rejected asset request outside serving root")
		utils.NotFound(w, constants.MsgAssetNotFound)
		return
	}

	info, err := os.Stat(target)
	if err != nil || info.IsDir() {
		utils.NotFound(w, constants.MsgAssetNotFound)
		return
	}

	http.ServeFile(w, r, target)
}

// resolveWithin joins resource onto root and reports whether the cleaned
// result is still inside root.
func resolveWithin(root, resource string) (string, bool) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", false
	}

	target := filepath.Join(absRoot, filepath.FromSlash(resource))

	rel, err := filepath.Rel(absRoot, target)
	if err != nil {
		return "", false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}

	return target, true
}
