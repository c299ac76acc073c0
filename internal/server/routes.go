// Package server provides the HTTP server implementation for the SafeSpace
// moderation backend.
//
// This file builds the route tree. Routes are flat and unauthenticated by
// design: the API is consumed by a local browser extension and dashboard,
// and path stability matters more than hierarchy. CORS stays permissive for
// the same reason — chrome-extension:// origins are not enumerable ahead of
// time.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/safespace-labs/SafeSpace_Backend/internal/constants"
	"github.com/safespace-labs/SafeSpace_Backend/internal/middleware"
	"github.com/safespace-labs/SafeSpace_Backend/internal/utils"
)

// SetupRoutes configures the routes for the application.
//
// The configured routes include:
// - Liveness probes for the dashboard and extension popup
// - The moderation endpoint and keyword listing
// - Stats, flagged-message, and history reporting
// - Focus-mode control and status
// - Static dashboard and extension asset serving
// - The realtime WebSocket channel
func (s *Server) SetupRoutes() {
	// Create router
	r := chi.NewRouter()

	// Custom CORS middleware that applies to all routes
	r.Use(corsMiddleware(s.Config.CORS.AllowedOrigins))

	// Base middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Recovery())
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.SecurityHeaders())
	if s.Config.Logging.RequestLog {
		r.Use(middleware.RequestLogger())
	}

	// Probes and build info
	r.Get(constants.HealthPath, s.Handlers.ModerationHandler.HealthCheck)
	r.Get(constants.TestPath, s.Handlers.ModerationHandler.TestProbe)
	r.Get(constants.VersionPath, func(w http.ResponseWriter, r *http.Request) {
		utils.JSON(w, http.StatusOK, map[string]string{
			"version":     s.Config.App.Version,
			"environment": s.Config.App.Environment,
		})
	})

	// Moderation
	r.Post(constants.ModeratePath, s.Handlers.ModerationHandler.Moderate)
	r.Get(constants.KeywordsPath, s.Handlers.ModerationHandler.Keywords)

	// Reporting
	r.Group(func(r chi.Router) {
		r.Use(chimiddleware.NoCache)
		r.Get(constants.StatsPath, s.Handlers.ModerationHandler.Stats)
		r.Get(constants.FlaggedPath, s.Handlers.ModerationHandler.Flagged)
		r.Get(constants.HistoryPath, s.Handlers.ModerationHandler.History)
	})

	// Focus mode
	r.Post(constants.FocusStartPath, s.Handlers.FocusHandler.Start)
	r.Post(constants.FocusStopPath, s.Handlers.FocusHandler.Stop)
	r.Get(constants.FocusStatusPath, s.Handlers.FocusHandler.Status)

	// Static assets
	r.Route(constants.DashboardPrefix, func(r chi.Router) {
		r.Get("/", s.Handlers.AssetHandler.DashboardIndex)
		r.Get("/*", s.Handlers.AssetHandler.DashboardAsset)
	})
	r.Get(constants.ExtensionAssetPath, s.Handlers.AssetHandler.ExtensionAsset)

	// Realtime channel
	r.Get(constants.WebSocketPath, s.hub.HandleConnection)

	s.router = r
}

// corsMiddleware applies CORS headers for allowed origins and answers
// preflight requests.
//
// Parameters:
//   - allowedOrigins: origins granted access; "*" grants every origin
//
// Returns:
//   - A middleware function that can be used with an HTTP handler
func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			// Check if the request's origin is in our allowed list
			for _, allowedOrigin := range allowedOrigins {
				if allowedOrigin == "*" || allowedOrigin == origin {
					if origin != "" {
						w.Header().Set("Access-Control-Allow-Origin", origin)
					} else {
						w.Header().Set("Access-Control-Allow-Origin", "*")
					}

					// For non-OPTIONS requests, just set these headers and continue
					if r.Method != http.MethodOptions {
						next.ServeHTTP(w, r)
						return
					}

					// Handle OPTIONS preflight requests
					w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
					w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, X-Request-ID")
					w.Header().Set("Access-Control-Max-Age", "300")

					// Respond to preflight request
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}

			// If origin is not allowed, continue without setting CORS headers
			next.ServeHTTP(w, r)
		})
	}
}
