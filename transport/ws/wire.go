// Package ws is the WebSocket gateway. It owns the live connections and
// implements the Broadcaster capability the orchestrator consumes: group
// membership bookkeeping plus best-effort event delivery to sessions.
package ws

import "encoding/json"

// clientMessage is the inbound wire format.
//
// Actions:
//   - "send":   deliver Content to the current partner's sessions
//   - "sendTo": deliver Content to an explicit participant's sessions
//   - "who":    reply with the online participant list
type clientMessage struct {
	Action  string `json:"action"`
	To      string `json:"to,omitempty"`
	Content string `json:"content,omitempty"`
}

// serverMessage is the outbound wire format: the event name plus its payload.
type serverMessage struct {
	Event   string `json:"event"`
	Payload any    `json:"payload,omitempty"`
}

func encode(name string, payload any) ([]byte, error) {
	return json.Marshal(serverMessage{Event: name, Payload: payload})
}
