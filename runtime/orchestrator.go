package runtime

import (
	"log/slog"
	"pairchat/contract"
	"pairchat/domain/event"
	"pairchat/errors"
)

// Orchestrator reacts to session lifecycle events: it drives the registry and
// the pairing coordinator first, then issues Broadcaster calls, so routing
// groups and notifications always trail a consistent internal state. No
// coordinator lock is ever held while a Broadcaster call is in flight.
type Orchestrator struct {
	log         *slog.Logger
	registry    contract.IRegistry
	pairing     contract.ICoordinator
	broadcaster contract.Broadcaster
}

func NewOrchestrator(log *slog.Logger, registry contract.IRegistry,
	pairing contract.ICoordinator, broadcaster contract.Broadcaster) *Orchestrator {
	return &Orchestrator{
		log:         log,
		registry:    registry,
		pairing:     pairing,
		broadcaster: broadcaster,
	}
}

// OnSessionConnected registers the session, attempts auto-pairing on the
// participant's online transition, and fans the outcome out to the affected
// sessions. A second tab of an already-paired participant only joins the
// existing group; topology does not change.
func (o *Orchestrator) OnSessionConnected(participantID, sessionID string) {
	first := o.registry.AddSession(participantID, sessionID)

	if partner, ok := o.pairing.GetPartner(participantID); ok {
		group := o.pairing.GroupKey(participantID, partner)
		o.broadcaster.JoinGroup(sessionID, group)
		o.broadcaster.NotifySessions([]string{sessionID}, event.PairedWith{Partner: partner})
	} else if first {
		if partner, matched := o.pairing.TryAutoPair(participantID); matched {
			o.announcePair(participantID, partner)
		} else {
			o.broadcaster.NotifySessions([]string{sessionID}, event.Waiting{})
		}
	}

	o.log.Debug("Session connected", "participant", participantID, "session", sessionID, "first", first)
	o.broadcastUserList()
}

// OnSessionDisconnected deregisters the session. Pairing state changes only
// when this was the participant's last session: the stale group is torn down,
// the old partner is told, and an immediate re-pair is attempted.
func (o *Orchestrator) OnSessionDisconnected(participantID, sessionID string) {
	last := o.registry.RemoveSession(participantID, sessionID)

	if last {
		if old, ok := o.pairing.Unpair(participantID); ok {
			o.dissolvePair(participantID, sessionID, old)
		} else {
			o.pairing.DropWaiting(participantID)
		}
	}

	o.log.Debug("Session disconnected", "participant", participantID, "session", sessionID, "last", last)
	o.broadcastUserList()
}

// dissolvePair removes every session of both sides from the now-stale group,
// notifies the remaining partner, and tries to re-match it right away.
func (o *Orchestrator) dissolvePair(departed, departedSession, old string) {
	group := o.pairing.GroupKey(departed, old)

	// The departed participant has no registered sessions left, but its
	// final session may still sit in the transport's group map.
	o.broadcaster.LeaveGroup(departedSession, group)
	oldSessions := o.registry.Sessions(old)
	for _, s := range oldSessions {
		o.broadcaster.LeaveGroup(s, group)
	}

	o.broadcaster.NotifySessions(oldSessions, event.Unpaired{Peer: departed})

	if mate, matched := o.pairing.TryRePair(old); matched {
		o.announcePair(old, mate)
	} else {
		o.broadcaster.NotifySessions(o.registry.Sessions(old), event.Waiting{})
	}
}

// announcePair joins every session of both participants to the new group and
// notifies both sides.
func (o *Orchestrator) announcePair(a, b string) {
	group := o.pairing.GroupKey(a, b)
	aSessions := o.registry.Sessions(a)
	bSessions := o.registry.Sessions(b)

	for _, s := range aSessions {
		o.broadcaster.JoinGroup(s, group)
	}
	for _, s := range bSessions {
		o.broadcaster.JoinGroup(s, group)
	}

	o.broadcaster.NotifySessions(aSessions, event.PairedWith{Partner: b})
	o.broadcaster.NotifySessions(bSessions, event.PairedWith{Partner: a})
}

func (o *Orchestrator) broadcastUserList() {
	o.broadcaster.NotifyAll(event.UserListUpdated{Users: o.registry.AllOnlineUsers()})
}

// SendToPartner resolves the caller's partner and that partner's current
// sessions for the transport to deliver to. An unpaired caller gets
// errors.ErrNotPaired; a partner with zero sessions (it just disconnected)
// yields an empty list, not an error.
func (o *Orchestrator) SendToPartner(participantID string) (string, []string, error) {
	partner, ok := o.pairing.GetPartner(participantID)
	if !ok {
		return "", nil, errors.ErrNotPaired
	}
	return partner, o.registry.Sessions(partner), nil
}

// SendToUser resolves a participant's current sessions for explicit
// targeting; empty if offline.
func (o *Orchestrator) SendToUser(participantID string) []string {
	return o.registry.Sessions(participantID)
}

func (o *Orchestrator) ListOnlineUsers() []string {
	return o.registry.AllOnlineUsers()
}
