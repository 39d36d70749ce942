package runtime

import (
	"pairchat/domain"

	"github.com/samber/lo"
)

// StatusSource aggregates registry and coordinator snapshots for the debug
// server and the telemetry worker. Reads only; each snapshot is internally
// consistent per component, not across components.
type StatusSource struct {
	registry *Registry
	pairing  *Coordinator
}

func NewStatusSource(registry *Registry, pairing *Coordinator) *StatusSource {
	return &StatusSource{registry: registry, pairing: pairing}
}

func (s *StatusSource) Snapshot() domain.StatusSnapshot {
	return domain.StatusSnapshot{
		OnlineUsers:  s.registry.AllOnlineUsers(),
		SessionCount: s.registry.SessionCount(),
		Pairs: lo.Map(s.pairing.Pairs(), func(p [2]string, _ int) domain.Pair {
			return domain.Pair{A: p[0], B: p[1]}
		}),
		Waiting: s.pairing.Waiting(),
	}
}

func (s *StatusSource) OnlineCount() int {
	return len(s.registry.AllOnlineUsers())
}

func (s *StatusSource) PairCount() int {
	return len(s.pairing.Pairs())
}

func (s *StatusSource) WaitingCount() int {
	return len(s.pairing.Waiting())
}
