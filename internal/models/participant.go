package models

import (
	"time"
)

// ParticipantStatus represents where a participant is in the hunt
type ParticipantStatus string

const (
	// ParticipantStatusPlaying indicates a participant is still hunting for their link
	ParticipantStatusPlaying ParticipantStatus = "Playing"

	// ParticipantStatusQualified indicates a participant claimed a genuine link inside the quota
	ParticipantStatusQualified ParticipantStatus = "Qualified"

	// ParticipantStatusFailed indicates a participant reached their link after the quota filled
	ParticipantStatusFailed ParticipantStatus = "Failed"

	// ParticipantStatusDisqualified indicates an admin removed the participant from the game
	ParticipantStatusDisqualified ParticipantStatus = "Disqualified"
)

// QualificationMethod records how a participant earned their Qualified status
type QualificationMethod string

const (
	// QualificationMethodTimed indicates the participant qualified through normal play
	QualificationMethodTimed QualificationMethod = "timed"

	// QualificationMethodManual indicates an admin qualified the participant by hand
	QualificationMethodManual QualificationMethod = "manual"
)

// Participant represents a registered player in the scavenger hunt
type Participant struct {
	// ID is the opaque client-generated identifier, unique across the game
	ID string `json:"playerId"`

	// DisplayName is the human label shown on the dashboard; mutable, non-unique
	DisplayName string `json:"username"`

	// Status is the participant's current state in the hunt
	Status ParticipantStatus `json:"status"`

	// ElapsedMs is the client-reported time to reach the genuine link.
	// Zero means no time was recorded; see QualificationMethod for the
	// manual-qualification case that zero used to stand in for.
	ElapsedMs int64 `json:"timeTaken"`

	// QualificationMethod is set when the participant qualifies
	QualificationMethod QualificationMethod `json:"qualificationMethod,omitempty"`

	// RegisteredAt is when the participant first registered
	RegisteredAt time.Time `json:"timestamp"`
}
