// Package realtime implements the WebSocket chat channel.
//
// Clients connect to a single endpoint and exchange JSON envelopes of the
// form {"event": string, "data": object}. The only inbound event is
// send_message; the hub moderates it and broadcasts the outcome to every
// connected client. Focus state changes made over HTTP are also pushed
// through the hub so open dashboards update without polling.
//
// Delivery is fire-and-forget: each client has a bounded outbound queue and
// events are dropped for clients that cannot drain it. A slow dashboard tab
// must never stall moderation.
package realtime

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/safespace-labs/SafeSpace_Backend/internal/constants"
	"github.com/safespace-labs/SafeSpace_Backend/internal/models"
	"github.com/safespace-labs/SafeSpace_Backend/internal/moderation"
)

// Checker evaluates message text against the keyword taxonomy.
type Checker interface {
	Check(text string) (moderation.Result, error)
}

// Recorder records moderation outcomes in the state store.
type Recorder interface {
	RecordMessage(user string, flagged bool)
	RecordFlagged(user, text string, categories map[string]bool)
}

// envelope is the wire format of every frame on the channel.
type envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub owns the set of connected clients and the moderation flow for chat
// messages.
type Hub struct {
	checker  Checker
	recorder Recorder
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[string]*client
}

// NewHub creates a hub using the given checker and recorder.
func NewHub(checker Checker, recorder Recorder) *Hub {
	return &Hub{
		checker:  checker,
		recorder: recorder,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The extension connects from chrome-extension:// origins and
			// the dashboard from arbitrary hosts; origin checks stay open
			// like the rest of the API.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[string]*client),
	}
}

// HandleConnection upgrades an HTTP request to a WebSocket connection and
// services it until the peer disconnects. It blocks for the lifetime of the
// connection, which is fine under net/http's per-request goroutine model.
func (h *Hub) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote an HTTP error to the client.
		log.Warn().Err(err).Str("remote_addr", r.RemoteAddr).Msg("WebSocket upgrade failed")
		return
	}

	c := newClient(uuid.NewString(), conn)
	h.register(c)
	defer h.unregister(c)

	log.Info().Str("client_id", c.id).Str("remote_addr", r.RemoteAddr).Msg("Realtime client connected")

	go c.writePump()
	h.readPump(c)

	log.Info().Str("client_id", c.id).Msg("Realtime client disconnected")
}

// Broadcast pushes an event to every connected client. Clients with a full
// queue have the event dropped.
func (h *Hub) Broadcast(event string, payload interface{}) {
	frame := envelope{Event: event, Data: payload}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients {
		if !c.enqueue(frame) {
			log.Debug().Str("client_id", c.id).Str("event", event).Msg("Dropped event for slow client")
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client. Called during server shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.clients = make(map[string]*client)
	h.mu.Unlock()

	for _, c := range clients {
		c.close()
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.id] = c
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	delete(h.clients, c.id)
	h.mu.Unlock()
	c.close()
}

// readPump reads frames from a client until the connection drops and
// dispatches the events it understands.
func (h *Hub) readPump(c *client) {
	c.conn.SetReadLimit(constants.SocketReadLimit)
	c.resetReadDeadline()
	c.conn.SetPongHandler(func(string) error {
		c.resetReadDeadline()
		return nil
	})

	for {
		var frame struct {
			Event string          `json:"event"`
			Data  json.RawMessage `json:"data"`
		}
		if err := c.conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Str("client_id", c.id).Msg("Realtime read error")
			}
			return
		}

		switch frame.Event {
		case constants.EventSendMessage:
			// A malformed or missing payload degrades to an empty message,
			// mirroring the HTTP endpoints.
			var req models.ModerationRequest
			if len(frame.Data) > 0 {
				if err := json.Unmarshal(frame.Data, &req); err != nil {
					log.Debug().Err(err).Str("client_id", c.id).Msg("Ignoring malformed send_message payload")
					req = models.ModerationRequest{}
				}
			}
			h.handleSendMessage(c, req)
		default:
			log.Debug().Str("client_id", c.id).Str("event", frame.Event).Msg("Ignoring unknown realtime event")
		}
	}
}

// handleSendMessage moderates one chat message. Checker failures are
// answered privately to the sender; successful checks are recorded and
// broadcast to every client.
func (h *Hub) handleSendMessage(sender *client, req models.ModerationRequest) {
	text := req.Body()
	user := req.User
	if user == "" {
		user = constants.DefaultSocketUser
	}

	result, err := h.checker.Check(text)
	if err != nil {
		log.Error().Err(err).Str("client_id", sender.id).Msg("Safety check failed for realtime message")
		sender.enqueue(envelope{
			Event: constants.EventMessageResponse,
			Data: models.MessageResponse{
				User:       user,
				Text:       text,
				Flagged:    false,
				Categories: map[string]bool{},
				Error:      err.Error(),
			},
		})
		return
	}

	h.recorder.RecordMessage(user, result.Flagged)
	if result.Flagged {
		h.recorder.RecordFlagged(user, text, result.Categories)
	}

	h.Broadcast(constants.EventMessageResponse, models.MessageResponse{
		User:       user,
		Text:       text,
		Flagged:    result.Flagged,
		Categories: result.Categories,
	})
}
