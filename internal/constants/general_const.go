// Package constants provides shared constant values used throughout the application.
//
// The general_const.go file defines general-purpose constants related to routing
// and realtime event names. These constants ensure consistent API patterns and URL
// structure throughout the application, making the API more predictable and easier
// to maintain.
package constants

// Base Routes define the root URL paths for the moderation API.
// The paths are flat (no version prefix) because the browser extension
// and dashboard reference them directly.
const (
	// HealthPath is the liveness probe used by the dashboard.
	HealthPath = "/"

	// TestPath is the legacy probe used by the extension popup.
	TestPath = "/test"

	// ModeratePath accepts messages for keyword moderation.
	ModeratePath = "/moderate"

	// KeywordsPath exposes the flattened keyword list.
	KeywordsPath = "/moderation/keywords"

	// StatsPath exposes aggregate usage statistics.
	StatsPath = "/stats"

	// FlaggedPath exposes the retained flagged-message log.
	FlaggedPath = "/flagged"

	// HistoryPath exposes the retained message history.
	HistoryPath = "/history"

	// VersionPath exposes build information.
	VersionPath = "/version"

	// FocusStartPath starts or updates focus mode.
	FocusStartPath = "/focus/start"

	// FocusStopPath stops focus mode.
	FocusStopPath = "/focus/stop"

	// FocusStatusPath returns the current focus snapshot.
	FocusStatusPath = "/focus/status"

	// DashboardPrefix is the route prefix for dashboard pages and assets.
	DashboardPrefix = "/dashboard"

	// ExtensionAssetPath serves extension assets referenced by the dashboard.
	ExtensionAssetPath = "/extension/*"

	// WebSocketPath is the realtime chat channel endpoint.
	WebSocketPath = "/ws"
)

// Realtime event names exchanged over the WebSocket channel.
// These mirror the event vocabulary the extension and dashboard listen for.
const (
	// EventSendMessage is the inbound chat message event.
	EventSendMessage = "send_message"

	// EventMessageResponse is the moderated chat message broadcast.
	EventMessageResponse = "message_response"

	// EventFocusStatus is the focus state broadcast.
	EventFocusStatus = "focus_status"
)

// Fallback identities applied when a request omits the user field.
const (
	// DefaultAPIUser is attributed to HTTP moderation requests without a user.
	DefaultAPIUser = "api"

	// DefaultSocketUser is attributed to socket messages without a user.
	DefaultSocketUser = "anonymous"

	// UnknownUser is recorded in history entries when no identity is available.
	UnknownUser = "unknown"
)
