// Package server provides the HTTP server implementation for the SafeSpace
// moderation backend. It handles routing, middleware configuration, and
// server lifecycle management.
//
// The server follows a structured initialization approach with dependency
// injection: taxonomy → checker → state store → realtime hub → handlers →
// routes. It handles graceful shutdown and is designed so every component
// behind it can be unit tested in isolation.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/safespace-labs/SafeSpace_Backend/internal/config"
	"github.com/safespace-labs/SafeSpace_Backend/internal/constants"
	"github.com/safespace-labs/SafeSpace_Backend/internal/handlers"
	"github.com/safespace-labs/SafeSpace_Backend/internal/moderation"
	"github.com/safespace-labs/SafeSpace_Backend/internal/realtime"
	"github.com/safespace-labs/SafeSpace_Backend/internal/state"
	"github.com/safespace-labs/SafeSpace_Backend/internal/taxonomy"
)

// Handlers contains all HTTP handlers for the application.
// It centralizes handler management for consistent request processing
// and simplifies dependency injection throughout the application.
type Handlers struct {
	// ModerationHandler manages moderation, keyword, and reporting endpoints
	ModerationHandler *handlers.ModerationHandler

	// FocusHandler manages focus-mode endpoints
	FocusHandler *handlers.FocusHandler

	// AssetHandler serves the static dashboard and extension assets
	AssetHandler *handlers.AssetHandler
}

// Server represents the API server for the moderation backend.
// It encapsulates all server components and handles server lifecycle
// management, including initialization, startup, and graceful shutdown.
type Server struct {
	// Config contains application configuration
	Config *config.AppConfig

	// Store owns all mutable moderation state
	Store *state.Store

	// router handles HTTP routing
	router chi.Router

	// Handlers contains all HTTP request handlers
	Handlers *Handlers

	// hub manages realtime WebSocket clients
	hub *realtime.Hub

	// httpServer is the underlying HTTP server
	httpServer *http.Server
}

// NewServer creates a new server instance with all required components.
//
// Parameters:
//   - cfg: application configuration
//
// Returns:
//   - A fully initialized Server instance ready to start
//   - An error if the keyword taxonomy fails to load
func NewServer(cfg *config.AppConfig) (*Server, error) {
	tax, err := taxonomy.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load keyword taxonomy: %w", err)
	}
	log.Info().Int("categories", tax.Len()).Msg("Keyword taxonomy loaded")

	checker := moderation.NewChecker(tax)
	store := state.NewStore()
	hub := realtime.NewHub(checker, store)

	s := &Server{
		Config: cfg,
		Store:  store,
		hub:    hub,
		Handlers: &Handlers{
			ModerationHandler: handlers.NewModerationHandler(checker, store, tax),
			FocusHandler:      handlers.NewFocusHandler(store, hub),
			AssetHandler:      handlers.NewAssetHandler(cfg.Assets.DashboardDir, cfg.Assets.ExtensionDir),
		},
	}

	s.SetupRoutes()

	s.httpServer = &http.Server{
		Addr:         cfg.Server.ServerAddress(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  constants.DefaultIdleTimeout,
	}

	return s, nil
}

// Router returns the configured HTTP handler. Exposed for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start runs the server until it fails or a shutdown signal arrives.
//
// Returns:
//   - An error if the listener fails or graceful shutdown cannot complete
//
// This is a blocking call.
func (s *Server) Start() error {
	// Create a channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start the server in a separate goroutine
	go func() {
		log.Info().
			Str("address", s.Config.Server.ServerAddress()).
			Msg("Starting server")

		serverErrors <- s.httpServer.ListenAndServe()
	}()

	// Create a channel to listen for OS signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until an OS signal or an error is received
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info().
			Str("signal", sig.String()).
			Msg("Shutdown signal received")

		// Create a context with a timeout for graceful shutdown
		ctx, cancel := context.WithTimeout(context.Background(), s.Config.Server.ShutdownTimeout)
		defer cancel()

		// Shutdown the server
		if err := s.Shutdown(ctx); err != nil {
			// Shutdown the server immediately if graceful shutdown fails
			if closeErr := s.httpServer.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the server, waiting for in-flight requests
// to complete and disconnecting realtime clients.
//
// Parameters:
//   - ctx: Context with timeout for the shutdown operation
//
// Returns:
//   - An error if shutdown fails within the context timeout
func (s *Server) Shutdown(ctx context.Context) error {
	// Disconnect realtime clients first; their handlers are long-lived and
	// would otherwise hold the HTTP shutdown open until the timeout.
	s.hub.Close()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}

	log.Info().Msg("Server stopped")
	return nil
}
