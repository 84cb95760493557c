package eventbus

import (
	"github.com/huntlabs/treasurehunt/internal/models"
)

// Room is a logical delivery scope for events
type Room string

const (
	// RoomAdmin delivers only to admin dashboard subscribers
	RoomAdmin Room = "admin"

	// RoomBroadcast delivers to every connected subscriber, players and admins alike
	RoomBroadcast Room = "broadcast"
)

// EventType identifies the kind of state change an event carries. The values
// double as the wire-level message types consumed by the web clients.
type EventType string

const (
	// EventTypePlayerUpdate carries a participant registration, qualification
	// or generic status change
	EventTypePlayerUpdate EventType = "playerUpdate"

	// EventTypePlayerDisqualified announces an admin disqualification; player
	// clients freeze their UI on receipt
	EventTypePlayerDisqualified EventType = "playerDisqualified"

	// EventTypeGameReset announces a full game reset; clients must re-register
	EventTypeGameReset EventType = "gameReset"

	// EventTypeGameStateUpdate announces a round change
	EventTypeGameStateUpdate EventType = "gameStateUpdate"
)

// UpdateType distinguishes the flavors of a playerUpdate event
type UpdateType string

const (
	// UpdateTypeRegistration indicates a participant registered or renamed
	UpdateTypeRegistration UpdateType = "registration"

	// UpdateTypeQualification indicates a participant qualified
	UpdateTypeQualification UpdateType = "qualification"

	// UpdateTypeStatus indicates a generic status change
	UpdateTypeStatus UpdateType = "statusUpdate"
)

// Event is one state-change notification fanned out to subscribers
type Event struct {
	// Type identifies the kind of change
	Type EventType `json:"type"`

	// Payload carries the event-specific data
	Payload interface{} `json:"payload,omitempty"`
}

// PlayerUpdatePayload is the payload for playerUpdate events
type PlayerUpdatePayload struct {
	// UpdateType distinguishes registration, qualification and status changes
	UpdateType UpdateType `json:"type"`

	// Participant is the participant's state after the change
	Participant *models.Participant `json:"player"`
}

// PlayerDisqualifiedPayload is the payload for playerDisqualified events
type PlayerDisqualifiedPayload struct {
	// ParticipantID is who was disqualified
	ParticipantID string `json:"playerId"`

	// DisplayName is the disqualified participant's label
	DisplayName string `json:"username"`
}

// GameResetPayload is the payload for gameReset events
type GameResetPayload struct {
	// ForceNewRegistration tells clients their participant record is gone
	ForceNewRegistration bool `json:"forceNewRegistration"`
}

// GameStateUpdatePayload is the payload for gameStateUpdate events
type GameStateUpdatePayload struct {
	// ActiveRound is the round now running
	ActiveRound models.Round `json:"activeRound"`
}
