package ws

import (
	"log/slog"
	"sort"
	"sync"

	"pairchat/domain/event"
)

// Hub maintains two mappings under one lock: session id -> client, and
// routing group -> member session ids. Both are mutated together so a
// removed client never lingers in a group.
//
// Hub implements contract.Broadcaster. Delivery is best-effort: a session
// with a full send buffer drops the event rather than blocking the caller.
type Hub struct {
	mu      sync.RWMutex
	log     *slog.Logger
	clients map[string]*client
	groups  map[string]map[string]struct{}
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		log:     log,
		clients: make(map[string]*client),
		groups:  make(map[string]map[string]struct{}),
	}
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.sessionID] = c
}

// remove detaches a session and sweeps it out of every group it still
// belongs to, then closes its send channel so the write pump exits.
func (h *Hub) remove(sessionID string) {
	h.mu.Lock()
	c, ok := h.clients[sessionID]
	if ok {
		delete(h.clients, sessionID)
	}
	for groupKey, members := range h.groups {
		delete(members, sessionID)
		if len(members) == 0 {
			delete(h.groups, groupKey)
		}
	}
	h.mu.Unlock()

	if ok {
		close(c.send)
	}
}

func (h *Hub) JoinGroup(sessionID, groupKey string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[sessionID]; !ok {
		// The session closed between the coordinator decision and this
		// call; joining would leak a dead membership.
		return
	}
	members, ok := h.groups[groupKey]
	if !ok {
		members = make(map[string]struct{}, 2)
		h.groups[groupKey] = members
	}
	members[sessionID] = struct{}{}
}

func (h *Hub) LeaveGroup(sessionID, groupKey string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.groups[groupKey]
	if !ok {
		return
	}
	delete(members, sessionID)
	if len(members) == 0 {
		delete(h.groups, groupKey)
	}
}

// GroupMembers returns a sorted snapshot of a group's member sessions.
func (h *Hub) GroupMembers(groupKey string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	members := make([]string, 0, len(h.groups[groupKey]))
	for id := range h.groups[groupKey] {
		members = append(members, id)
	}
	sort.Strings(members)
	return members
}

func (h *Hub) NotifySessions(sessionIDs []string, e event.Event) {
	raw, err := encode(e.Name(), e)
	if err != nil {
		h.log.Error("Failed to encode event", "event", e.Name(), "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, id := range sessionIDs {
		if c, ok := h.clients[id]; ok {
			h.push(c, raw, e.Name())
		}
	}
}

func (h *Hub) NotifyAll(e event.Event) {
	raw, err := encode(e.Name(), e)
	if err != nil {
		h.log.Error("Failed to encode event", "event", e.Name(), "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		h.push(c, raw, e.Name())
	}
}

func (h *Hub) push(c *client, raw []byte, name string) {
	select {
	case c.send <- raw:
	default:
		h.log.Warn("Send buffer full, dropping event",
			"session", c.sessionID, "participant", c.participantID, "event", name)
	}
}
