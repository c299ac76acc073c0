// Package constants provides shared constant values used throughout the application.
//
// The messages.go file defines user-facing message strings and machine-readable
// error codes returned by the API. Centralizing them keeps the wire contract
// with the extension and dashboard stable.
package constants

// Status messages returned by probe endpoints.
const (
	// StatusOK is the generic success status value.
	StatusOK = "ok"

	// MsgBackendRunning is the liveness probe message.
	MsgBackendRunning = "Backend is running"
)

// Error messages returned by the API.
const (
	// MsgModerationUnavailable is returned when the safety checker cannot
	// evaluate a message.
	MsgModerationUnavailable = "moderation service unavailable"

	// MsgAssetNotFound is returned for missing or out-of-root asset requests.
	MsgAssetNotFound = "asset not found"

	// MsgDashboardMissing is returned when the dashboard directory is absent.
	MsgDashboardMissing = "dashboard directory not found"

	// MsgInternalError is the generic 500 message.
	MsgInternalError = "An unexpected error occurred while processing your request"
)
