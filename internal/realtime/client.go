package realtime

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/safespace-labs/SafeSpace_Backend/internal/constants"
)

// pingPeriod is how often pings are sent. It must be shorter than the pong
// timeout or healthy connections would be dropped between pings.
const pingPeriod = constants.SocketPongTimeout * 9 / 10

// client is one connected WebSocket peer. All writes to the connection go
// through the send queue and are performed by writePump, which is the only
// goroutine allowed to write — gorilla/websocket connections do not support
// concurrent writers.
type client struct {
	id   string
	conn *websocket.Conn

	send chan envelope

	closeOnce sync.Once
	done      chan struct{}
}

func newClient(id string, conn *websocket.Conn) *client {
	return &client{
		id:   id,
		conn: conn,
		send: make(chan envelope, constants.SocketSendBuffer),
		done: make(chan struct{}),
	}
}

// enqueue queues a frame for delivery. It never blocks; the return value
// reports whether the frame was accepted.
func (c *client) enqueue(frame envelope) bool {
	select {
	case <-c.done:
		return false
	case c.send <- frame:
		return true
	default:
		return false
	}
}

// close tears the client down. Safe to call more than once.
func (c *client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		if err := c.conn.Close(); err != nil {
			log.Debug().Err(err).Str("client_id", c.id).Msg("Closing realtime connection")
		}
	})
}

// resetReadDeadline pushes the read deadline out by the pong timeout.
func (c *client) resetReadDeadline() {
	if err := c.conn.SetReadDeadline(time.Now().Add(constants.SocketPongTimeout)); err != nil {
		log.Debug().Err(err).Str("client_id", c.id).Msg("Failed to set read deadline")
	}
}

// writePump drains the send queue onto the connection and keeps the
// connection alive with periodic pings. It exits when the client is closed
// or a write fails.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return

		case frame := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(constants.SocketWriteTimeout)); err != nil {
				c.close()
				return
			}
			if err := c.conn.WriteJSON(frame); err != nil {
				log.Debug().Err(err).Str("client_id", c.id).Msg("Realtime write failed")
				c.close()
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(constants.SocketWriteTimeout)); err != nil {
				c.close()
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.close()
				return
			}
		}
	}
}
