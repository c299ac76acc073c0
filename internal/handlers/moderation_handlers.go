// Package handlers implements the HTTP handlers for the moderation API.
//
// Handlers are thin: they decode the request, delegate to the safety checker
// and the state store, and serialize the documented wire shape. All of them
// are stateless and safe for concurrent use.
package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/safespace-labs/SafeSpace_Backend/internal/constants"
	"github.com/safespace-labs/SafeSpace_Backend/internal/models"
	"github.com/safespace-labs/SafeSpace_Backend/internal/utils"
)

// ModerationHandler handles the moderation, keyword, and reporting routes.
type ModerationHandler struct {
	checker  SafetyChecker
	store    ModerationStore
	keywords KeywordProvider
}

// NewModerationHandler creates a new ModerationHandler
func NewModerationHandler(checker SafetyChecker, store ModerationStore, keywords KeywordProvider) *ModerationHandler {
	return &ModerationHandler{
		checker:  checker,
		store:    store,
		keywords: keywords,
	}
}

// statusBody is the wire shape of the probe endpoints.
type statusBody struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// messagesBody wraps list responses for the flagged and history endpoints.
type messagesBody struct {
	Messages interface{} `json:"messages"`
}

// HealthCheck is the liveness probe used by the dashboard.
func (h *ModerationHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, statusBody{
		Status:  constants.StatusOK,
		Message: constants.MsgBackendRunning,
	})
}

// TestProbe is the legacy probe used by the extension popup.
func (h *ModerationHandler) TestProbe(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, statusBody{Status: constants.StatusOK})
}

// Moderate checks a message against the keyword taxonomy and records the
// outcome.
//
// Request body: {"text": "...", "user": "..."} — both fields optional, an
// absent or malformed body is treated as an empty message.
//
// Responses:
//   - 200 with the moderation result (flagged + per-category breakdown)
//   - 503 with {"error": ...} if the checker is unavailable
func (h *ModerationHandler) Moderate(w http.ResponseWriter, r *http.Request) {
	var req models.ModerationRequest
	utils.DecodeJSONLenient(r, &req)

	text := req.Body()
	result, err := h.checker.Check(text)
	if err != nil {
		log.Error().Err(err).Msg("Safety check failed")
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	user := req.User
	if user == "" {
		user = constants.DefaultAPIUser
	}

	if result.Flagged {
		h.store.RecordFlagged(user, text, result.Categories)
	}
	h.store.RecordMessage(user, result.Flagged)

	utils.JSON(w, http.StatusOK, result)
}

// Keywords returns the flattened keyword list so the extension can keep
// client-side blurring in sync with the backend.
func (h *ModerationHandler) Keywords(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string][]string{
		"keywords": h.keywords.AllKeywords(),
	})
}

// Stats returns aggregate usage statistics for the dashboard.
func (h *ModerationHandler) Stats(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.store.StatsSnapshot())
}

// Flagged returns the retained flagged-message log, oldest first.
func (h *ModerationHandler) Flagged(w http.ResponseWriter, r *http.Request) {
	messages := h.store.FlaggedMessages()
	if messages == nil {
		messages = []models.FlaggedMessage{}
	}
	utils.JSON(w, http.StatusOK, messagesBody{Messages: messages})
}

// History returns the retained message history, oldest first. Entries carry
// only the sender, outcome, and timestamp; message text is not retained
// here.
func (h *ModerationHandler) History(w http.ResponseWriter, r *http.Request) {
	records := h.store.MessageHistory()
	if records == nil {
		records = []models.MessageRecord{}
	}
	utils.JSON(w, http.StatusOK, messagesBody{Messages: records})
}
