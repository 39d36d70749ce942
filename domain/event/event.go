package event

// Event is a notification delivered to sessions through the Broadcaster.
// Name is the wire-level event identifier; the struct itself is the payload.
type Event interface {
	Name() string
}

// PairedWith tells a participant's sessions who their partner is.
type PairedWith struct {
	Partner string `json:"partner"`
}

func (e PairedWith) Name() string { return "PairedWith" }

// Unpaired tells a participant's sessions that their partner left.
type Unpaired struct {
	Peer string `json:"peer"`
}

func (e Unpaired) Name() string { return "Unpaired" }

// Waiting tells a session that no partner is available yet.
type Waiting struct{}

func (e Waiting) Name() string { return "Waiting" }

// UserListUpdated carries the current online participant list.
type UserListUpdated struct {
	Users []string `json:"users"`
}

func (e UserListUpdated) Name() string { return "UserListUpdated" }

// ReceiveMessage carries a chat message to the target sessions.
// The coordinator routes by identity only; Content is opaque to it.
type ReceiveMessage struct {
	From    string `json:"from"`
	Content string `json:"content"`
}

func (e ReceiveMessage) Name() string { return "ReceiveMessage" }

// Error reports a rejected client action back to the emitting session.
type Error struct {
	Reason string `json:"reason"`
}

func (e Error) Name() string { return "Error" }
