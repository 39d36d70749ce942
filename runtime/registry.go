// Package runtime hosts the connection and pairing coordination core.
// It tracks live sessions, forms and dissolves partnerships, and keeps
// message-routing scope consistent, without containing transport or UI logic.
package runtime

import (
	"sort"
	"sync"
)

// userEntry holds the live sessions of a single participant behind its own
// lock, so connect/disconnect bursts for unrelated participants never
// contend with each other.
//
// gone marks an entry whose last session has been removed but whose map slot
// may not be deleted yet. An AddSession racing that removal retries instead
// of resurrecting a dead entry, which keeps the first/last transition
// booleans exact.
type userEntry struct {
	mu       sync.Mutex
	sessions map[string]struct{}
	gone     bool
}

// Registry owns the participant -> session-set mapping. A participant is
// online iff its session set is non-empty; entries with no sessions are
// removed immediately so the key set doubles as the online set.
type Registry struct {
	mu    sync.RWMutex
	users map[string]*userEntry
}

func NewRegistry() *Registry {
	return &Registry{users: make(map[string]*userEntry)}
}

// AddSession registers a session and reports whether this call brought the
// participant online (first session).
func (r *Registry) AddSession(participantID, sessionID string) bool {
	for {
		r.mu.Lock()
		e, ok := r.users[participantID]
		if !ok {
			e = &userEntry{sessions: make(map[string]struct{}, 1)}
			r.users[participantID] = e
		}
		r.mu.Unlock()

		e.mu.Lock()
		if e.gone {
			// Entry is being torn down by a concurrent RemoveSession.
			e.mu.Unlock()
			continue
		}
		first := len(e.sessions) == 0
		e.sessions[sessionID] = struct{}{}
		e.mu.Unlock()
		return first
	}
}

// RemoveSession deregisters a session and reports whether this call took the
// participant offline (last session). Removing an unknown session is a no-op.
func (r *Registry) RemoveSession(participantID, sessionID string) bool {
	r.mu.RLock()
	e, ok := r.users[participantID]
	r.mu.RUnlock()
	if !ok {
		return false
	}

	e.mu.Lock()
	if e.gone {
		e.mu.Unlock()
		return false
	}
	if _, known := e.sessions[sessionID]; !known {
		e.mu.Unlock()
		return false
	}
	delete(e.sessions, sessionID)
	if len(e.sessions) > 0 {
		e.mu.Unlock()
		return false
	}
	e.gone = true
	e.mu.Unlock()

	r.mu.Lock()
	if r.users[participantID] == e {
		delete(r.users, participantID)
	}
	r.mu.Unlock()
	return true
}

// Sessions returns a snapshot of the participant's current sessions,
// empty if the participant is unknown or offline.
func (r *Registry) Sessions(participantID string) []string {
	r.mu.RLock()
	e, ok := r.users[participantID]
	r.mu.RUnlock()
	if !ok {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gone {
		return nil
	}
	ids := make([]string, 0, len(e.sessions))
	for id := range e.sessions {
		ids = append(ids, id)
	}
	return ids
}

// AllOnlineUsers returns a sorted snapshot of currently online participants.
func (r *Registry) AllOnlineUsers() []string {
	r.mu.RLock()
	users := make([]string, 0, len(r.users))
	for id := range r.users {
		users = append(users, id)
	}
	r.mu.RUnlock()

	sort.Strings(users)
	return users
}

func (r *Registry) IsOnline(participantID string) bool {
	r.mu.RLock()
	e, ok := r.users[participantID]
	r.mu.RUnlock()
	if !ok {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.gone && len(e.sessions) > 0
}

// SessionCount reports sessions per online participant, for status snapshots.
func (r *Registry) SessionCount() map[string]int {
	r.mu.RLock()
	entries := make(map[string]*userEntry, len(r.users))
	for id, e := range r.users {
		entries[id] = e
	}
	r.mu.RUnlock()

	counts := make(map[string]int, len(entries))
	for id, e := range entries {
		e.mu.Lock()
		if !e.gone && len(e.sessions) > 0 {
			counts[id] = len(e.sessions)
		}
		e.mu.Unlock()
	}
	return counts
}
