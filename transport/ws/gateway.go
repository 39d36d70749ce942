package ws

import (
	"log/slog"
	"net/http"

	"pairchat/auth"
	"pairchat/contract"
	"pairchat/domain/event"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Gateway upgrades HTTP requests to WebSocket sessions and bridges them to
// the orchestrator: one session per connection, one read loop per session.
type Gateway struct {
	log            *slog.Logger
	hub            *Hub
	orchestrator   contract.IOrchestrator
	upgrader       websocket.Upgrader
	sendBufferSize int
}

func NewGateway(log *slog.Logger, hub *Hub, orchestrator contract.IOrchestrator, sendBufferSize int) *Gateway {
	return &Gateway{
		log:          log,
		hub:          hub,
		orchestrator: orchestrator,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		sendBufferSize: sendBufferSize,
	}
}

// Handle runs the whole session lifecycle on the request goroutine:
// identity resolution, registration, the read loop, then cleanup.
func (g *Gateway) Handle(w http.ResponseWriter, r *http.Request) {
	participantID := g.resolveIdentity(r)

	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Warn("WebSocket upgrade failed", "error", err)
		return
	}

	sessionID := uuid.NewString()
	c := newClient(sessionID, participantID, conn, g.sendBufferSize)

	g.hub.add(c)
	go c.write()

	g.orchestrator.OnSessionConnected(participantID, sessionID)
	g.read(c)

	// The read loop returned: the connection is gone. Transport state is
	// dropped first so no further event can be queued to this session.
	g.hub.remove(sessionID)
	g.orchestrator.OnSessionDisconnected(participantID, sessionID)
	conn.Close()
}

// resolveIdentity recovers the participant identity from the login token.
// Anonymous connections fall back to a fresh opaque identity, so a client
// without a token still gets matched.
func (g *Gateway) resolveIdentity(r *http.Request) string {
	token := r.URL.Query().Get("token")
	if token == "" {
		if cookie, err := r.Cookie("token"); err == nil {
			token = cookie.Value
		}
	}
	if token != "" {
		if claims, err := auth.ValidateToken(token); err == nil && claims.UserID != "" {
			return claims.UserID
		}
		g.log.Warn("Rejecting invalid token, connecting as anonymous")
	}
	return "anon-" + uuid.NewString()
}

// read handles inbound client actions sequentially until the connection
// breaks. Malformed frames close the session.
func (g *Gateway) read(c *client) {
	for {
		var msg clientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Action {
		case "send":
			g.sendToPartner(c, msg.Content)

		case "sendTo":
			sessions := g.orchestrator.SendToUser(msg.To)
			g.hub.NotifySessions(sessions, event.ReceiveMessage{
				From:    c.participantID,
				Content: msg.Content,
			})

		case "who":
			g.hub.NotifySessions([]string{c.sessionID}, event.UserListUpdated{
				Users: g.orchestrator.ListOnlineUsers(),
			})

		default:
			g.log.Warn("Unknown action, closing session",
				"action", msg.Action, "session", c.sessionID)
			return
		}
	}
}

func (g *Gateway) sendToPartner(c *client, content string) {
	_, sessions, err := g.orchestrator.SendToPartner(c.participantID)
	if err != nil {
		// The only user-visible rejection: messaging without a partner.
		g.hub.NotifySessions([]string{c.sessionID}, event.Error{Reason: err.Error()})
		return
	}

	// An empty session list means the partner raced offline; the message is
	// silently dropped, matching best-effort delivery.
	g.hub.NotifySessions(sessions, event.ReceiveMessage{
		From:    c.participantID,
		Content: content,
	})
}
