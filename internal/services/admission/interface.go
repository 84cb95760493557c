package admission

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/huntlabs/treasurehunt/internal/services/admission Service

// Service defines the interface for qualification admission control
type Service interface {
	// Register creates or updates a participant record; idempotent upsert
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// GetParticipant retrieves one participant
	GetParticipant(ctx context.Context, input *GetParticipantInput) (*GetParticipantOutput, error)

	// GetAssignmentsForPage computes a participant's link plan for one page
	GetAssignmentsForPage(ctx context.Context, input *GetAssignmentsForPageInput) (*GetAssignmentsForPageOutput, error)

	// AttemptQualify processes a participant's claim of having reached their
	// genuine link, enforcing the qualification quota
	AttemptQualify(ctx context.Context, input *AttemptQualifyInput) (*AttemptQualifyOutput, error)

	// SetParticipantStatus force-sets a participant's status (admin path)
	SetParticipantStatus(ctx context.Context, input *SetParticipantStatusInput) (*SetParticipantStatusOutput, error)

	// Disqualify removes a participant from the game without returning their
	// quota slot
	Disqualify(ctx context.Context, input *DisqualifyInput) (*DisqualifyOutput, error)

	// ListParticipants returns all participants with round settings and stats
	ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error)

	// ResetGame wipes all participants and deactivates every round
	ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error)

	// RecordClick appends a link click to the audit log; failures never
	// propagate to gameplay
	RecordClick(ctx context.Context, input *RecordClickInput) (*RecordClickOutput, error)

	// GetClicksForParticipant returns a participant's click history
	GetClicksForParticipant(ctx context.Context, input *GetClicksForParticipantInput) (*GetClicksForParticipantOutput, error)
}
