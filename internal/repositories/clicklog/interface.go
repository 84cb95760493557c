package clicklog

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/huntlabs/treasurehunt/internal/repositories/clicklog Repository

// Repository defines the interface for the append-only link click audit log
type Repository interface {
	// AddClick appends a click record to the log
	AddClick(ctx context.Context, input *AddClickInput) error

	// GetClicksForParticipant retrieves a participant's clicks, newest first
	GetClicksForParticipant(ctx context.Context, input *GetClicksForParticipantInput) (*GetClicksForParticipantOutput, error)
}
