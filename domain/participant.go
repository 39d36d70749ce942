// Package domain contains core concepts of the pairing system.
// This file defines Participant entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

// A participant is identified by an opaque stable string supplied by the
// transport layer. A participant owns zero or more concurrent sessions
// (tabs, devices); it is online iff its session set is non-empty.
//
// At most one partner per participant at any instant, and the relation is
// symmetric: partner(a) = b implies partner(b) = a.

// PairStatus is the simplified per-participant state machine:
// Offline -> Waiting -> Paired -> Waiting -> ... -> Offline.
type PairStatus string

const (
	StatusOffline PairStatus = "offline"
	StatusWaiting PairStatus = "waiting"
	StatusPaired  PairStatus = "paired"
)

// Pair is a symmetric partnership between two online participants,
// reported in status snapshots.
type Pair struct {
	A string `json:"a"`
	B string `json:"b"`
}

// StatusSnapshot is a point-in-time view of the coordinator state,
// exposed by the debug server and consumed by pairctl.
type StatusSnapshot struct {
	OnlineUsers  []string       `json:"online_users"`
	SessionCount map[string]int `json:"session_count"`
	Pairs        []Pair         `json:"pairs"`
	Waiting      []string       `json:"waiting"`
}
