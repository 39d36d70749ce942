//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"pairchat/domain/event"
	"reflect"
)

// Broadcaster is the external delivery capability consumed by the
// orchestrator. All calls are fire-and-forget: a failed delivery never
// rolls back coordinator state.
type Broadcaster interface {
	JoinGroup(sessionID, groupKey string)
	LeaveGroup(sessionID, groupKey string)
	NotifySessions(sessionIDs []string, e event.Event)
	NotifyAll(e event.Event)
}

// Presence is the narrow registry view the pairing coordinator needs to
// validate waiting-pool candidates.
type Presence interface {
	IsOnline(participantID string) bool
}

type IRegistry interface {
	// AddSession returns true iff this call brings the participant online.
	AddSession(participantID, sessionID string) bool
	// RemoveSession returns true iff this call takes the participant offline.
	// Removing an unknown session is a no-op returning false.
	RemoveSession(participantID, sessionID string) bool
	Sessions(participantID string) []string
	AllOnlineUsers() []string
	IsOnline(participantID string) bool
}

type ICoordinator interface {
	GetPartner(participantID string) (string, bool)
	GroupKey(a, b string) string
	TryAutoPair(participantID string) (string, bool)
	Unpair(participantID string) (string, bool)
	TryRePair(participantID string) (string, bool)
	// DropWaiting is the offline cleanup hook: a participant whose last
	// session closed must not linger in the waiting pool.
	DropWaiting(participantID string)
}

type IOrchestrator interface {
	OnSessionConnected(participantID, sessionID string)
	OnSessionDisconnected(participantID, sessionID string)
	// SendToPartner resolves the partner's current sessions for delivery.
	// Fails with errors.ErrNotPaired when the caller has no partner; an
	// empty session list is not an error (the partner may have just
	// disconnected).
	SendToPartner(participantID string) (partner string, sessionIDs []string, err error)
	SendToUser(participantID string) []string
	ListOnlineUsers() []string
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
