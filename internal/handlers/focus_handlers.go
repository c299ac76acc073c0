package handlers

import (
	"net/http"

	"github.com/safespace-labs/SafeSpace_Backend/internal/constants"
	"github.com/safespace-labs/SafeSpace_Backend/internal/models"
	"github.com/safespace-labs/SafeSpace_Backend/internal/utils"
)

// FocusHandler handles the focus-mode routes. Every state change is
// broadcast to realtime clients so open dashboards stay in sync.
type FocusHandler struct {
	store       FocusStore
	broadcaster Broadcaster
}

// NewFocusHandler creates a new FocusHandler
func NewFocusHandler(store FocusStore, broadcaster Broadcaster) *FocusHandler {
	return &FocusHandler{
		store:       store,
		broadcaster: broadcaster,
	}
}

// Start begins focus mode, or updates the blocked-site list of a running
// session.
//
// Request body: {"blocked_sites": [...]} or {"sites": [...]} — optional.
// Starting while active keeps the original start time but replaces the
// blocked-site list.
func (h *FocusHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req models.FocusRequest
	utils.DecodeJSONLenient(r, &req)

	status := h.store.FocusStart(req.SiteList())
	h.broadcaster.Broadcast(constants.EventFocusStatus, status)

	utils.JSON(w, http.StatusOK, status)
}

// Stop ends focus mode, folding the session's elapsed time into the
// accumulated total. Stopping while inactive is a no-op.
func (h *FocusHandler) Stop(w http.ResponseWriter, r *http.Request) {
	status := h.store.FocusStop()
	h.broadcaster.Broadcast(constants.EventFocusStatus, status)

	utils.JSON(w, http.StatusOK, status)
}

// Status returns the current focus snapshot without changing state.
func (h *FocusHandler) Status(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.store.FocusSnapshot())
}
