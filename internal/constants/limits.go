// Package constants provides shared constant values used throughout the application.
//
// The limits.go file defines retention bounds and transport limits. Keeping the
// bounds in one place makes the memory ceiling of the process easy to audit:
// every retained collection in the state store is trimmed against a constant
// defined here.
package constants

import "time"

// Retention bounds for in-memory logs.
const (
	// FlaggedHistoryLimit is the maximum number of flagged messages retained
	// for the dashboard. Oldest entries are evicted first.
	FlaggedHistoryLimit = 200

	// MessageHistoryLimit is the maximum number of moderated-message records
	// retained. Oldest entries are evicted first.
	MessageHistoryLimit = 1000
)

// HTTP transport limits.
const (
	// MaxRequestBodySize caps request bodies at 1 MiB. Moderation payloads
	// are short chat messages; anything larger is not a legitimate request.
	MaxRequestBodySize = 1 << 20

	// DefaultIdleTimeout is the keep-alive idle timeout for the HTTP server.
	DefaultIdleTimeout = 120 * time.Second
)

// Realtime channel limits.
const (
	// SocketSendBuffer is the per-client outbound queue length. Broadcasts
	// are fire-and-forget: a client that cannot drain its queue has events
	// dropped rather than stalling the hub.
	SocketSendBuffer = 32

	// SocketReadLimit caps inbound socket frames. Same rationale as
	// MaxRequestBodySize.
	SocketReadLimit = 1 << 20

	// SocketWriteTimeout bounds a single frame write to a client.
	SocketWriteTimeout = 10 * time.Second

	// SocketPongTimeout is how long a connection may stay silent before it
	// is considered dead. Pings are sent at a fraction of this interval.
	SocketPongTimeout = 60 * time.Second
)
