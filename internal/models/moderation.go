// Package models defines the data structures exchanged between the moderation
// pipeline, the state store, and the API layer.
//
// All types here are plain data carriers with JSON tags matching the wire
// contract consumed by the browser extension and the dashboard. None of them
// hold behavior beyond trivial helpers; business rules live in the moderation
// and state packages.
package models

import "time"

// ModerationRequest is the body accepted by the moderate endpoint and the
// realtime send_message event. Every field is optional: an absent body is
// treated as an empty message from an anonymous user rather than an error.
type ModerationRequest struct {
	// Text is the message to check.
	Text string `json:"text"`

	// Message is an alias for Text used by the chat client. When both are
	// set, Message wins.
	Message string `json:"message,omitempty"`

	// User identifies the sender. Empty means anonymous.
	User string `json:"user,omitempty"`
}

// Body returns the message text, preferring the chat alias over the
// moderation field.
func (r *ModerationRequest) Body() string {
	if r.Message != "" {
		return r.Message
	}
	return r.Text
}

// FlaggedMessage is one entry in the retained flagged-message log.
type FlaggedMessage struct {
	// User is the sender identity, or "unknown" when absent.
	User string `json:"user"`

	// Text is the original message text.
	Text string `json:"text"`

	// Categories is the per-category breakdown that caused the flag.
	Categories map[string]bool `json:"categories"`

	// Timestamp is the UTC time the message was recorded.
	Timestamp time.Time `json:"timestamp"`
}

// MessageRecord is one entry in the retained message history. It carries no
// message text; only the outcome is kept for trend reporting.
type MessageRecord struct {
	User      string    `json:"user"`
	Flagged   bool      `json:"flagged"`
	Timestamp time.Time `json:"timestamp"`
}

// UsageStats is the aggregate snapshot served by the stats endpoint.
type UsageStats struct {
	// TotalMessages counts every moderated message since process start.
	TotalMessages int64 `json:"total_messages"`

	// FlaggedMessages counts moderated messages that were flagged.
	// Always <= TotalMessages.
	FlaggedMessages int64 `json:"flagged_messages"`

	// ActiveUsers is the number of distinct senders seen so far.
	ActiveUsers int `json:"active_users"`

	// FlaggedRecent is the current length of the flagged-message log.
	FlaggedRecent int `json:"flagged_recent"`

	// FocusActive reports whether focus mode is currently running.
	FocusActive bool `json:"focus_active"`

	// FocusDurationSeconds is the accumulated focus time in whole seconds,
	// including the in-progress session if one is active.
	FocusDurationSeconds int64 `json:"focus_duration_seconds"`
}

// FocusStatus is the snapshot served by the focus endpoints and broadcast to
// realtime clients on every focus state change.
type FocusStatus struct {
	// Active reports whether a focus session is running.
	Active bool `json:"active"`

	// StartedAt is the UTC start of the running session, or null when
	// inactive.
	StartedAt *time.Time `json:"started_at"`

	// DurationSeconds is accumulated focus time in whole seconds, including
	// elapsed time of the running session.
	DurationSeconds int64 `json:"duration_seconds"`

	// BlockedSites is the normalized blocked-site list for the session.
	BlockedSites []string `json:"blocked_sites"`
}

// FocusRequest is the body accepted by the focus start endpoint. The chat
// client sends "sites" while the extension sends "blocked_sites"; both are
// accepted.
type FocusRequest struct {
	BlockedSites []string `json:"blocked_sites,omitempty"`
	Sites        []string `json:"sites,omitempty"`
}

// SiteList returns whichever blocked-site field was provided.
func (r *FocusRequest) SiteList() []string {
	if len(r.BlockedSites) > 0 {
		return r.BlockedSites
	}
	return r.Sites
}

// MessageResponse is the moderated chat message broadcast over the realtime
// channel. Error is set only on the private reply sent back to a sender when
// the checker itself failed.
type MessageResponse struct {
	User       string          `json:"user"`
	Text       string          `json:"text"`
	Flagged    bool            `json:"flagged"`
	Categories map[string]bool `json:"categories"`
	Error      string          `json:"error,omitempty"`
}
