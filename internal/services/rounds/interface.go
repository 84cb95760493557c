package rounds

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/huntlabs/treasurehunt/internal/services/rounds Service

// Service defines the interface for round state operations
type Service interface {
	// GetRoundState returns the authoritative round settings
	GetRoundState(ctx context.Context, input *GetRoundStateInput) (*GetRoundStateOutput, error)

	// SetActiveRound changes the active round and notifies all observers
	SetActiveRound(ctx context.Context, input *SetActiveRoundInput) (*SetActiveRoundOutput, error)
}
