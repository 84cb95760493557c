package participant

import (
	"context"

	"github.com/huntlabs/treasurehunt/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/huntlabs/treasurehunt/internal/repositories/participant Repository

// Repository defines the interface for participant data persistence
type Repository interface {
	// SaveParticipant persists a participant
	SaveParticipant(ctx context.Context, input *SaveParticipantInput) error

	// GetParticipant retrieves a participant by ID
	GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error)

	// ListParticipants retrieves all participants, newest registration first
	ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error)

	// GetQuotaUsed reads the number of qualification slots consumed so far
	GetQuotaUsed(ctx context.Context, input *GetQuotaUsedInput) (*GetQuotaUsedOutput, error)

	// QualifyParticipant persists a qualified participant and consumes one
	// qualification slot as a single atomic unit, returning the new total.
	// Either both land or neither does; a partial write can never leave the
	// counter out of step with the stored statuses. Slots are never returned;
	// disqualification is punitive, not quota-neutral.
	QualifyParticipant(ctx context.Context, input *QualifyParticipantInput) (*QualifyParticipantOutput, error)

	// DeleteAllParticipants removes every participant record and releases the
	// consumed quota
	DeleteAllParticipants(ctx context.Context, input *DeleteAllParticipantsInput) error
}
