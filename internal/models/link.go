package models

import (
	"time"
)

// LinkLocation identifies a fixed slot in the content surface where a hidden
// link may be rendered. The catalogue of locations is static and identical
// for every participant.
type LinkLocation struct {
	// Page is the public page the slot lives on
	Page string `json:"page"`

	// Section is the region of the page
	Section string `json:"section"`

	// Position is the slot within the section
	Position string `json:"position"`
}

// AssignmentResult describes one catalogue slot as seen by one participant.
// It is derived, never persisted: a pure function of the participant id and
// the fixed catalogue.
type AssignmentResult struct {
	// Location is the catalogue slot this result describes
	Location LinkLocation `json:"location"`

	// Visible indicates whether this participant sees a link in this slot
	Visible bool `json:"visible"`

	// IsReal indicates whether this is the participant's genuine next-round link
	IsReal bool `json:"isReal"`

	// Destination is the path the link points at (genuine target or a decoy)
	Destination string `json:"destination"`

	// LinkID is the stable per-participant tracking id for click auditing
	LinkID string `json:"linkId"`
}

// ClickRecord is one append-only audit entry for a link click
type ClickRecord struct {
	// ID is the unique identifier for the click record
	ID string `json:"id"`

	// ParticipantID is who clicked
	ParticipantID string `json:"playerId"`

	// LinkID identifies the clicked link slot
	LinkID string `json:"linkId"`

	// WasGenuine indicates whether the clicked link was the genuine one
	WasGenuine bool `json:"isRealLink"`

	// Timestamp is when the click happened
	Timestamp time.Time `json:"timestamp"`
}
