// Package rounds owns the authoritative round state: which round of the hunt
// is running right now. Only admin actions mutate it; transitions between any
// two rounds are allowed so an operator can pause, resume or skip freely.
package rounds

import (
	"context"
	"fmt"

	"github.com/huntlabs/treasurehunt/internal/common/clock"
	"github.com/huntlabs/treasurehunt/internal/eventbus"
	"github.com/huntlabs/treasurehunt/internal/models"
	roundRepo "github.com/huntlabs/treasurehunt/internal/repositories/round"
)

// service implements the Service interface
type service struct {
	roundRepo roundRepo.Repository
	clock     clock.Clock
	eventBus  eventbus.Bus
}

// New creates a new rounds service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RoundRepo == nil {
		return nil, ErrNilRoundRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.EventBus == nil {
		return nil, ErrNilEventBus
	}

	return &service{
		roundRepo: cfg.RoundRepo,
		clock:     cfg.Clock,
		eventBus:  cfg.EventBus,
	}, nil
}

// GetRoundState returns the authoritative round settings
func (s *service) GetRoundState(ctx context.Context, input *GetRoundStateInput) (*GetRoundStateOutput, error) {
	settings, err := s.roundRepo.GetSettings(ctx, &roundRepo.GetSettingsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get round settings: %w", err)
	}

	return &GetRoundStateOutput{
		Settings: settings,
	}, nil
}

// SetActiveRound changes the active round, persists it, then notifies every
// connected client. Setting round 0 pauses the game but keeps participant
// state; resetting the game is a separate, destructive operation.
func (s *service) SetActiveRound(ctx context.Context, input *SetActiveRoundInput) (*SetActiveRoundOutput, error) {
	if input == nil {
		return nil, ErrNilConfig
	}

	if !input.Round.Valid() {
		return nil, ErrInvalidRound
	}

	settings := &models.RoundSettings{
		ActiveRound: input.Round,
		LastUpdated: s.clock.Now(),
	}

	err := s.roundRepo.SaveSettings(ctx, &roundRepo.SaveSettingsInput{
		Settings: settings,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save round settings: %w", err)
	}

	// Persist first, then publish
	s.eventBus.Publish(eventbus.RoomBroadcast, eventbus.Event{
		Type: eventbus.EventTypeGameStateUpdate,
		Payload: eventbus.GameStateUpdatePayload{
			ActiveRound: input.Round,
		},
	})

	return &SetActiveRoundOutput{
		Settings: settings,
	}, nil
}
