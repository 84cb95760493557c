package messaging

// Outcome identifies a participant-facing result of a game operation
type Outcome string

const (
	// OutcomeQualified means the participant made the quota
	OutcomeQualified Outcome = "qualified"

	// OutcomeAlreadyQualified means the participant had already qualified
	OutcomeAlreadyQualified Outcome = "already_qualified"

	// OutcomeQuotaFull means the participant was too late; the quota is full
	OutcomeQuotaFull Outcome = "quota_full"

	// OutcomeRoundInactive means round 1 is not running
	OutcomeRoundInactive Outcome = "round_inactive"

	// OutcomeInvalidLink means the submitted destination was not genuine
	OutcomeInvalidLink Outcome = "invalid_link"

	// OutcomeGameReset means the game was reset and re-registration is required
	OutcomeGameReset Outcome = "game_reset"
)

// GetOutcomeMessageInput contains parameters for fetching an outcome message
type GetOutcomeMessageInput struct {
	// Outcome is the result to describe
	Outcome Outcome
}

// GetOutcomeMessageOutput contains the participant-facing message
type GetOutcomeMessageOutput struct {
	// Message is plain language suitable for showing to a player
	Message string
}
