package rounds

import (
	"github.com/huntlabs/treasurehunt/internal/common/clock"
	"github.com/huntlabs/treasurehunt/internal/eventbus"
	"github.com/huntlabs/treasurehunt/internal/models"
	roundRepo "github.com/huntlabs/treasurehunt/internal/repositories/round"
)

// Config holds configuration for the rounds service
type Config struct {
	// Repository dependencies
	RoundRepo roundRepo.Repository

	// Service dependencies
	Clock    clock.Clock
	EventBus eventbus.Bus
}

// GetRoundStateInput contains parameters for reading the round state
type GetRoundStateInput struct{}

// GetRoundStateOutput contains the authoritative round settings
type GetRoundStateOutput struct {
	// Settings is the current singleton round settings record
	Settings *models.RoundSettings
}

// SetActiveRoundInput contains parameters for changing the active round
type SetActiveRoundInput struct {
	// Round is the round to activate; zero deactivates all rounds
	Round models.Round
}

// SetActiveRoundOutput contains the result of changing the active round
type SetActiveRoundOutput struct {
	// Settings is the round settings record after the change
	Settings *models.RoundSettings
}
