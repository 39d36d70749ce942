package ws

import (
	"time"

	"github.com/gorilla/websocket"
)

// Connection parameters.
const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = 54 * time.Second
	// Maximum message size allowed from peer.
	maxMessageSize = 4096
)

// client binds one WebSocket connection to a session handle. The send
// channel exists because the Gorilla WebSocket library allows only one
// concurrent writer to a connection at a time: every outbound event goes
// through it and the write pump drains it sequentially.
type client struct {
	sessionID     string
	participantID string
	conn          *websocket.Conn
	send          chan []byte
}

func newClient(sessionID, participantID string, conn *websocket.Conn, sendBufferSize int) *client {
	c := &client{
		sessionID:     sessionID,
		participantID: participantID,
		conn:          conn,
		send:          make(chan []byte, sendBufferSize),
	}

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	return c
}

// write drains the send channel into the connection sequentially and keeps
// the heartbeat alive. Exits when the send channel is closed or a write
// fails; the read side notices through the broken connection.
func (c *client) write() {
	pingTicker := time.NewTicker(pingPeriod)
	defer func() {
		pingTicker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case raw, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, raw); err != nil {
				return
			}

		case <-pingTicker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
