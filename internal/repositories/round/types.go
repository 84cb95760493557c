package round

import "github.com/huntlabs/treasurehunt/internal/models"

// GetSettingsInput contains parameters for retrieving the round settings
type GetSettingsInput struct{}

// SaveSettingsInput contains parameters for saving the round settings
type SaveSettingsInput struct {
	Settings *models.RoundSettings
}
