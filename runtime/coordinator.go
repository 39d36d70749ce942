package runtime

import (
	"fmt"
	"log/slog"
	"pairchat/contract"
	"sort"
	"sync"
)

// Coordinator owns the partner relation and the waiting pool behind a single
// mutex. "Find a match or enqueue" is a check-then-act sequence, so every
// read that decides and every write to either structure goes through the same
// critical section. Pairing decisions are therefore globally serialized: this
// is the system's sole throughput bottleneck, acceptable because matchmaking
// is O(pool size) and pools stay small.
type Coordinator struct {
	mu        sync.Mutex
	log       *slog.Logger
	presence  contract.Presence
	partnerOf map[string]string
	waiting   map[string]struct{}
}

func NewCoordinator(log *slog.Logger, presence contract.Presence) *Coordinator {
	return &Coordinator{
		log:       log,
		presence:  presence,
		partnerOf: make(map[string]string),
		waiting:   make(map[string]struct{}),
	}
}

// GetPartner returns the current partner of a participant, if any.
func (c *Coordinator) GetPartner(participantID string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.partnerOf[participantID]
	return p, ok
}

// GroupKey computes the canonical routing-group identifier for a pair.
// Both sides compute the same key without coordination: the lexicographically
// smaller participant comes first.
func (c *Coordinator) GroupKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("pair:%s|%s", a, b)
}

// TryAutoPair is called once per online transition. If the participant is
// already paired it returns the existing partner and mutates nothing.
// Otherwise it either claims a waiting candidate and installs the symmetric
// partnership, or inserts the participant into the waiting pool.
func (c *Coordinator) TryAutoPair(participantID string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pairLocked(participantID)
}

// TryRePair behaves as TryAutoPair; the separate name documents the re-match
// attempt after an unpair, where a racing call may already have re-paired
// the participant.
func (c *Coordinator) TryRePair(participantID string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pairLocked(participantID)
}

// pairLocked holds the whole "check partnership, scan pool, claim candidate
// or enqueue" sequence under c.mu, so two participants can never claim the
// same candidate and a participant can never be matched while a racing call
// enqueues it.
func (c *Coordinator) pairLocked(participantID string) (string, bool) {
	if p, ok := c.partnerOf[participantID]; ok {
		return p, true
	}

	delete(c.waiting, participantID)

	// A re-pair subject may have gone fully offline since the unpair that
	// triggered it. Pairing or enqueueing an offline participant would
	// leave a dead entry, so lose this race silently instead.
	if !c.presence.IsOnline(participantID) {
		return "", false
	}

	for candidate := range c.waiting {
		if candidate == participantID {
			continue
		}
		// Stale entries lose the race silently: a candidate that got
		// paired or went offline since enqueueing is dropped, never
		// surfaced to the caller.
		if _, paired := c.partnerOf[candidate]; paired {
			delete(c.waiting, candidate)
			continue
		}
		if !c.presence.IsOnline(candidate) {
			delete(c.waiting, candidate)
			continue
		}

		delete(c.waiting, candidate)
		c.partnerOf[participantID] = candidate
		c.partnerOf[candidate] = participantID
		c.log.Debug("Participants paired", "a", participantID, "b", candidate)
		return candidate, true
	}

	c.waiting[participantID] = struct{}{}
	c.log.Debug("Participant enqueued for matching", "participant", participantID)
	return "", false
}

// Unpair removes the participant's partnership, if any, and re-enqueues the
// old partner when it is still online and not already re-paired. Returns the
// old partner.
func (c *Coordinator) Unpair(participantID string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	old, ok := c.partnerOf[participantID]
	if !ok {
		return "", false
	}
	if back := c.partnerOf[old]; back != participantID {
		// Asymmetry here is a programming error, not a runtime condition.
		panic(fmt.Sprintf("pairing: partner relation asymmetry: partnerOf[%q]=%q but partnerOf[%q]=%q",
			participantID, old, old, back))
	}

	delete(c.partnerOf, participantID)
	delete(c.partnerOf, old)

	if c.presence.IsOnline(old) {
		c.waiting[old] = struct{}{}
	}
	c.log.Debug("Partnership dissolved", "participant", participantID, "partner", old)
	return old, true
}

// DropWaiting removes a participant from the waiting pool, used when the
// participant goes fully offline while unmatched.
func (c *Coordinator) DropWaiting(participantID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.waiting, participantID)
}

// Pairs returns each active partnership once, both snapshots sorted for
// stable output.
func (c *Coordinator) Pairs() [][2]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var pairs [][2]string
	for a, b := range c.partnerOf {
		if a < b {
			pairs = append(pairs, [2]string{a, b})
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })
	return pairs
}

// Waiting returns a sorted snapshot of the waiting pool.
func (c *Coordinator) Waiting() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	pool := make([]string, 0, len(c.waiting))
	for id := range c.waiting {
		pool = append(pool, id)
	}
	sort.Strings(pool)
	return pool
}
