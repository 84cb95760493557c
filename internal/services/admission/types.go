package admission

import (
	"github.com/huntlabs/treasurehunt/internal/common/clock"
	"github.com/huntlabs/treasurehunt/internal/common/uuid"
	"github.com/huntlabs/treasurehunt/internal/eventbus"
	"github.com/huntlabs/treasurehunt/internal/models"
	clickRepo "github.com/huntlabs/treasurehunt/internal/repositories/clicklog"
	participantRepo "github.com/huntlabs/treasurehunt/internal/repositories/participant"
	roundRepo "github.com/huntlabs/treasurehunt/internal/repositories/round"
)

// DefaultMaxQualified is the round-one qualification quota
const DefaultMaxQualified = 15

// Config holds configuration for the admission service
type Config struct {
	// MaxQualified is the qualification quota; DefaultMaxQualified when zero
	MaxQualified int

	// Repository dependencies
	ParticipantRepo participantRepo.Repository
	RoundRepo       roundRepo.Repository
	ClickLogRepo    clickRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	EventBus      eventbus.Bus
}

// RegisterInput contains parameters for registering a participant
type RegisterInput struct {
	// ParticipantID is the client-generated stable identifier
	ParticipantID string

	// DisplayName is the participant's label on the dashboard
	DisplayName string
}

// RegisterOutput contains the result of registering a participant
type RegisterOutput struct {
	// Participant is the record after the upsert
	Participant *models.Participant

	// AlreadyRegistered indicates the participant existed before this call
	AlreadyRegistered bool
}

// GetParticipantInput contains parameters for retrieving a participant
type GetParticipantInput struct {
	// ParticipantID is the participant to fetch
	ParticipantID string
}

// GetParticipantOutput contains the retrieved participant
type GetParticipantOutput struct {
	Participant *models.Participant
}

// GetAssignmentsForPageInput contains parameters for computing a page's link plan
type GetAssignmentsForPageInput struct {
	// ParticipantID determines the deterministic layout
	ParticipantID string

	// Page restricts the plan to one page's slots
	Page string
}

// GetAssignmentsForPageOutput contains the computed link plan
type GetAssignmentsForPageOutput struct {
	Assignments []models.AssignmentResult
}

// AttemptQualifyInput contains parameters for a qualification attempt
type AttemptQualifyInput struct {
	// ParticipantID is who claims to have reached their genuine link
	ParticipantID string

	// DisplayName allows create-on-demand for unregistered participants;
	// optional
	DisplayName string

	// ClaimedDestination is the path the participant says they reached;
	// verified server-side, never trusted blindly
	ClaimedDestination string

	// ElapsedMs is client-reported timing telemetry; cosmetic, never a
	// security boundary
	ElapsedMs int64
}

// AttemptQualifyOutput contains the result of a qualification attempt
type AttemptQualifyOutput struct {
	// Qualified indicates whether the participant holds a quota slot
	Qualified bool

	// AlreadyQualified indicates an idempotent replay of an earlier success
	AlreadyQualified bool

	// Participant is the record after the attempt
	Participant *models.Participant
}

// SetParticipantStatusInput contains parameters for force-setting a status
type SetParticipantStatusInput struct {
	// ParticipantID is the participant to update
	ParticipantID string

	// DisplayName allows create-on-demand when the participant is unknown;
	// optional
	DisplayName string

	// Status is the status to apply
	Status models.ParticipantStatus
}

// SetParticipantStatusOutput contains the result of force-setting a status
type SetParticipantStatusOutput struct {
	Participant *models.Participant
}

// DisqualifyInput contains parameters for disqualifying a participant
type DisqualifyInput struct {
	// ParticipantID is the participant to disqualify
	ParticipantID string
}

// DisqualifyOutput contains the result of a disqualification
type DisqualifyOutput struct {
	Participant *models.Participant
}

// ListParticipantsInput contains parameters for the admin standings view
type ListParticipantsInput struct{}

// ListParticipantsOutput contains the admin standings view
type ListParticipantsOutput struct {
	// Participants is every registered participant, newest first
	Participants []*models.Participant

	// Settings is the current round state
	Settings *models.RoundSettings

	// Stats summarizes the standings
	Stats *models.GameStats
}

// ResetGameInput contains parameters for resetting the game
type ResetGameInput struct{}

// ResetGameOutput contains the result of resetting the game
type ResetGameOutput struct{}

// RecordClickInput contains parameters for logging a link click
type RecordClickInput struct {
	// ParticipantID is who clicked
	ParticipantID string

	// LinkID identifies the clicked slot
	LinkID string

	// WasGenuine indicates whether the clicked link was the genuine one
	WasGenuine bool
}

// RecordClickOutput contains the result of logging a link click
type RecordClickOutput struct{}

// GetClicksForParticipantInput contains parameters for reading click history
type GetClicksForParticipantInput struct {
	// ParticipantID is whose history to read
	ParticipantID string
}

// GetClicksForParticipantOutput contains a participant's click history, newest first
type GetClicksForParticipantOutput struct {
	Records []*models.ClickRecord
}
