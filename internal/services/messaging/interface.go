package messaging

import "context"

// Service provides participant-facing message text for game outcomes
type Service interface {
	// GetOutcomeMessage returns the plain-language message for an outcome
	GetOutcomeMessage(ctx context.Context, input *GetOutcomeMessageInput) (*GetOutcomeMessageOutput, error)
}
