package participant

import "github.com/huntlabs/treasurehunt/internal/models"

// SaveParticipantInput contains parameters for saving a participant
type SaveParticipantInput struct {
	Participant *models.Participant
}

// GetParticipantInput contains parameters for retrieving a participant
type GetParticipantInput struct {
	ParticipantID string
}

// ListParticipantsInput contains parameters for listing participants
type ListParticipantsInput struct{}

// ListParticipantsOutput contains the result of listing participants
type ListParticipantsOutput struct {
	Participants []*models.Participant
}

// GetQuotaUsedInput contains parameters for reading the consumed quota
type GetQuotaUsedInput struct{}

// GetQuotaUsedOutput contains the number of qualification slots consumed
type GetQuotaUsedOutput struct {
	Count int
}

// QualifyParticipantInput contains the participant to persist as qualified
type QualifyParticipantInput struct {
	Participant *models.Participant
}

// QualifyParticipantOutput contains the quota total after the admission
type QualifyParticipantOutput struct {
	Count int
}

// DeleteAllParticipantsInput contains parameters for deleting all participants
type DeleteAllParticipantsInput struct{}
