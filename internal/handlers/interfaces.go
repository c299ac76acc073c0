package handlers

import (
	"github.com/safespace-labs/SafeSpace_Backend/internal/models"
	"github.com/safespace-labs/SafeSpace_Backend/internal/moderation"
)

// SafetyChecker evaluates message text against the keyword taxonomy.
type SafetyChecker interface {
	Check(text string) (moderation.Result, error)
}

// KeywordProvider exposes the flattened keyword list.
type KeywordProvider interface {
	AllKeywords() []string
}

// ModerationStore is the slice of the state store the moderation endpoints
// need.
type ModerationStore interface {
	RecordMessage(user string, flagged bool)
	RecordFlagged(user, text string, categories map[string]bool)
	FlaggedMessages() []models.FlaggedMessage
	MessageHistory() []models.MessageRecord
	StatsSnapshot() models.UsageStats
}

// FocusStore is the slice of the state store the focus endpoints need.
type FocusStore interface {
	FocusStart(sites []string) models.FocusStatus
	FocusStop() models.FocusStatus
	FocusSnapshot() models.FocusStatus
}

// Broadcaster pushes an event to every connected realtime client. Delivery
// is fire-and-forget.
type Broadcaster interface {
	Broadcast(event string, payload interface{})
}
