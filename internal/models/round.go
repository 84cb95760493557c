package models

import (
	"time"
)

// Round identifies which round of the hunt is running. Zero means no round is active.
type Round int

const (
	// RoundInactive indicates no round is currently running
	RoundInactive Round = 0

	// RoundOne is the admission-controlled scavenger round
	RoundOne Round = 1

	// RoundTwo is the second round, open only to qualified participants
	RoundTwo Round = 2

	// RoundThree is the final round
	RoundThree Round = 3
)

// Valid reports whether r is one of the four defined rounds.
func (r Round) Valid() bool {
	return r >= RoundInactive && r <= RoundThree
}

// RoundSettings is the singleton record describing the authoritative round state
type RoundSettings struct {
	// ActiveRound is the round currently running
	ActiveRound Round `json:"activeRound"`

	// LastUpdated is when an admin last changed the round
	LastUpdated time.Time `json:"lastUpdated"`
}
