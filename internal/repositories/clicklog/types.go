package clicklog

import "github.com/huntlabs/treasurehunt/internal/models"

// AddClickInput contains parameters for appending a click record
type AddClickInput struct {
	Record *models.ClickRecord
}

// GetClicksForParticipantInput contains parameters for retrieving a participant's clicks
type GetClicksForParticipantInput struct {
	ParticipantID string
}

// GetClicksForParticipantOutput contains a participant's click records, newest first
type GetClicksForParticipantOutput struct {
	Records []*models.ClickRecord
}
