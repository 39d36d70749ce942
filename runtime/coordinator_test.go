package runtime

import (
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newTestCoordinator() (*Coordinator, *Registry) {
	log := logs.GetLoggerFromLevel(slog.LevelError)
	registry := NewRegistry()
	return NewCoordinator(log, registry), registry
}

func TestCoordinator_First_Arrival_Waits_Second_Gets_Paired(t *testing.T) {
	req := require.New(t)
	pairing, registry := newTestCoordinator()

	registry.AddSession("alice", "s1")
	registry.AddSession("bob", "s2")

	// Given alice found nobody and was enqueued
	partner, ok := pairing.TryAutoPair("alice")
	req.False(ok)
	req.Empty(partner)
	req.Equal([]string{"alice"}, pairing.Waiting())

	// When bob comes online
	partner, ok = pairing.TryAutoPair("bob")

	// Then the pair forms and the pool is drained
	req.True(ok)
	req.Equal("alice", partner)
	req.Empty(pairing.Waiting())

	p, ok := pairing.GetPartner("alice")
	req.True(ok)
	req.Equal("bob", p)
}

func TestCoordinator_Partner_Relation_Is_Symmetric(t *testing.T) {
	req := require.New(t)
	pairing, registry := newTestCoordinator()

	registry.AddSession("alice", "s1")
	registry.AddSession("bob", "s2")
	pairing.TryAutoPair("alice")
	pairing.TryAutoPair("bob")

	a, okA := pairing.GetPartner("alice")
	b, okB := pairing.GetPartner("bob")
	req.True(okA)
	req.True(okB)
	req.Equal("bob", a)
	req.Equal("alice", b)
}

func TestCoordinator_TryAutoPair_Is_Idempotent_When_Already_Paired(t *testing.T) {
	req := require.New(t)
	pairing, registry := newTestCoordinator()

	registry.AddSession("alice", "s1")
	registry.AddSession("bob", "s2")
	pairing.TryAutoPair("alice")
	pairing.TryAutoPair("bob")

	// When a paired participant re-enters matchmaking (second tab, race)
	partner, ok := pairing.TryAutoPair("bob")

	// Then the existing partner is returned and nothing changed
	req.True(ok)
	req.Equal("alice", partner)
	req.Empty(pairing.Waiting())
	req.Len(pairing.Pairs(), 1)
}

func TestCoordinator_Never_Pairs_With_Self(t *testing.T) {
	req := require.New(t)
	pairing, registry := newTestCoordinator()

	registry.AddSession("alice", "s1")

	// Repeated attempts with only oneself online must keep waiting
	for i := 0; i < 3; i++ {
		partner, ok := pairing.TryAutoPair("alice")
		req.False(ok)
		req.Empty(partner)
	}
	req.Equal([]string{"alice"}, pairing.Waiting())
}

func TestCoordinator_GroupKey_Is_Order_Independent(t *testing.T) {
	req := require.New(t)
	pairing, _ := newTestCoordinator()

	req.Equal(pairing.GroupKey("alice", "bob"), pairing.GroupKey("bob", "alice"))
	req.Equal("pair:alice|bob", pairing.GroupKey("bob", "alice"))
}

func TestCoordinator_Skips_Stale_Offline_Candidates(t *testing.T) {
	req := require.New(t)
	pairing, registry := newTestCoordinator()

	// Given alice enqueued and then fully disconnected without cleanup
	registry.AddSession("alice", "s1")
	pairing.TryAutoPair("alice")
	registry.RemoveSession("alice", "s1")

	// When bob looks for a partner
	registry.AddSession("bob", "s2")
	partner, ok := pairing.TryAutoPair("bob")

	// Then the stale entry is dropped, bob waits
	req.False(ok)
	req.Empty(partner)
	req.Equal([]string{"bob"}, pairing.Waiting())
}

func TestCoordinator_Unpair_ReEnqueues_Online_Partner(t *testing.T) {
	req := require.New(t)
	pairing, registry := newTestCoordinator()

	registry.AddSession("alice", "s1")
	registry.AddSession("bob", "s2")
	pairing.TryAutoPair("alice")
	pairing.TryAutoPair("bob")

	// When alice goes away
	registry.RemoveSession("alice", "s1")
	old, ok := pairing.Unpair("alice")

	// Then bob is free again and back in the pool
	req.True(ok)
	req.Equal("bob", old)
	_, stillPaired := pairing.GetPartner("bob")
	req.False(stillPaired)
	req.Equal([]string{"bob"}, pairing.Waiting())
}

func TestCoordinator_Unpair_Without_Partner_Is_A_NoOp(t *testing.T) {
	req := require.New(t)
	pairing, registry := newTestCoordinator()

	registry.AddSession("alice", "s1")
	old, ok := pairing.Unpair("alice")
	req.False(ok)
	req.Empty(old)
}

func TestCoordinator_TryRePair_Matches_A_Waiting_Third(t *testing.T) {
	req := require.New(t)
	pairing, registry := newTestCoordinator()

	// Given alice and bob are paired, carol is waiting
	registry.AddSession("alice", "s1")
	registry.AddSession("bob", "s2")
	registry.AddSession("carol", "s3")
	pairing.TryAutoPair("alice")
	pairing.TryAutoPair("bob")
	pairing.TryAutoPair("carol")
	req.Equal([]string{"carol"}, pairing.Waiting())

	// When alice fully disconnects and bob is unpaired
	registry.RemoveSession("alice", "s1")
	old, ok := pairing.Unpair("alice")
	req.True(ok)
	req.Equal("bob", old)

	// Then the instant re-pair matches bob with carol
	mate, ok := pairing.TryRePair("bob")
	req.True(ok)
	req.Equal("carol", mate)
	req.Empty(pairing.Waiting())
}

func TestCoordinator_TryRePair_Returns_Existing_Partner_After_Race(t *testing.T) {
	req := require.New(t)
	pairing, registry := newTestCoordinator()

	registry.AddSession("bob", "s1")
	registry.AddSession("carol", "s2")
	pairing.TryAutoPair("carol")

	// A racing call already re-paired bob before TryRePair runs
	pairing.TryAutoPair("bob")

	mate, ok := pairing.TryRePair("bob")
	req.True(ok)
	req.Equal("carol", mate)
}

func TestCoordinator_DropWaiting_Cleans_The_Pool(t *testing.T) {
	req := require.New(t)
	pairing, registry := newTestCoordinator()

	registry.AddSession("alice", "s1")
	pairing.TryAutoPair("alice")
	req.Equal([]string{"alice"}, pairing.Waiting())

	registry.RemoveSession("alice", "s1")
	pairing.DropWaiting("alice")
	req.Empty(pairing.Waiting())
}

func TestCoordinator_Waiting_Members_Are_Online_And_Unpaired(t *testing.T) {
	req := require.New(t)
	pairing, registry := newTestCoordinator()

	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("user-%d", i)
		registry.AddSession(id, fmt.Sprintf("s-%d", i))
		pairing.TryAutoPair(id)
	}

	for _, id := range pairing.Waiting() {
		req.True(registry.IsOnline(id))
		_, paired := pairing.GetPartner(id)
		req.False(paired)
	}
}

func TestCoordinator_Concurrent_Arrivals_Form_Valid_Pairs(t *testing.T) {
	req := require.New(t)
	pairing, registry := newTestCoordinator()

	// Three participants connect concurrently with no pre-existing pairs.
	ids := []string{"alice", "bob", "carol"}
	var wg sync.WaitGroup
	for i, id := range ids {
		registry.AddSession(id, fmt.Sprintf("s-%d", i))
	}
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			pairing.TryAutoPair(id)
		}(id)
	}
	wg.Wait()

	// Exactly one pair forms, one participant keeps waiting.
	req.Len(pairing.Pairs(), 1)
	req.Len(pairing.Waiting(), 1)

	paired := 0
	for _, id := range ids {
		partner, ok := pairing.GetPartner(id)
		if !ok {
			continue
		}
		paired++
		req.NotEqual(id, partner, "no self-pairing")
		back, ok := pairing.GetPartner(partner)
		req.True(ok)
		req.Equal(id, back, "symmetry")
	}
	req.Equal(2, paired)
}

func TestCoordinator_Concurrent_Churn_Keeps_Invariants(t *testing.T) {
	req := require.New(t)
	pairing, registry := newTestCoordinator()

	const participants = 20
	const rounds = 50

	var wg sync.WaitGroup
	for p := 0; p < participants; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			id := fmt.Sprintf("user-%d", p)
			for r := 0; r < rounds; r++ {
				session := fmt.Sprintf("s-%d-%d", p, r)
				registry.AddSession(id, session)
				pairing.TryAutoPair(id)
				registry.RemoveSession(id, session)
				if old, ok := pairing.Unpair(id); ok {
					pairing.TryRePair(old)
				} else {
					pairing.DropWaiting(id)
				}
			}
		}(p)
	}
	wg.Wait()

	// Symmetry and no self-pairing hold for every surviving partnership.
	for _, pair := range pairing.Pairs() {
		a, b := pair[0], pair[1]
		req.NotEqual(a, b)
		pa, okA := pairing.GetPartner(a)
		pb, okB := pairing.GetPartner(b)
		req.True(okA)
		req.True(okB)
		req.Equal(b, pa)
		req.Equal(a, pb)
	}
	req.Empty(registry.AllOnlineUsers())
}
