package messaging

import (
	"context"
	"errors"
)

// Participant-facing copy. Admins see raw error kinds instead; players only
// ever see these.
var outcomeMessages = map[Outcome]string{
	OutcomeQualified:        "Congratulations! You have qualified for Round 2.",
	OutcomeAlreadyQualified: "You have already qualified for Round 2.",
	OutcomeQuotaFull:        "Better luck next time! 15 players have already qualified.",
	OutcomeRoundInactive:    "Round 1 is not currently active. Please wait for the admin to start the round.",
	OutcomeInvalidLink:      "Invalid link. Please try again.",
	OutcomeGameReset:        "The game has been reset. Please register again.",
}

// service implements the Service interface
type service struct{}

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct{}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	return &service{}, nil
}

// GetOutcomeMessage returns the plain-language message for an outcome
func (s *service) GetOutcomeMessage(ctx context.Context, input *GetOutcomeMessageInput) (*GetOutcomeMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	message, ok := outcomeMessages[input.Outcome]
	if !ok {
		return nil, errors.New("unknown outcome")
	}

	return &GetOutcomeMessageOutput{
		Message: message,
	}, nil
}
