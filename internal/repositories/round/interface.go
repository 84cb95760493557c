package round

import (
	"context"

	"github.com/huntlabs/treasurehunt/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/huntlabs/treasurehunt/internal/repositories/round Repository

// Repository defines the interface for round settings persistence
type Repository interface {
	// GetSettings retrieves the singleton round settings record, creating a
	// default inactive record when none exists
	GetSettings(ctx context.Context, input *GetSettingsInput) (*models.RoundSettings, error)

	// SaveSettings persists the singleton round settings record
	SaveSettings(ctx context.Context, input *SaveSettingsInput) error
}
