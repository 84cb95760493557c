package admission

// AdmissionError is a custom error type for admission control errors
type AdmissionError string

// Error implements the error interface
func (e AdmissionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrRoundNotActive          AdmissionError = "round 1 is not currently active"
	ErrParticipantNotFound     AdmissionError = "participant not found"
	ErrInvalidDestination      AdmissionError = "submitted link is not a genuine destination"
	ErrParticipantDisqualified AdmissionError = "participant has been disqualified"
	ErrInvalidStatus           AdmissionError = "invalid participant status"
	ErrMissingParticipantID    AdmissionError = "participant ID is required"
	ErrMissingDisplayName      AdmissionError = "display name is required"
	ErrMissingDestination      AdmissionError = "destination is required"
	ErrNilConfig               AdmissionError = "config cannot be nil"
	ErrNilParticipantRepo      AdmissionError = "participant repository cannot be nil"
	ErrNilRoundRepo            AdmissionError = "round repository cannot be nil"
	ErrNilClickLogRepo         AdmissionError = "click log repository cannot be nil"
	ErrNilClock                AdmissionError = "clock cannot be nil"
	ErrNilUUIDGenerator        AdmissionError = "UUID generator cannot be nil"
	ErrNilEventBus             AdmissionError = "event bus cannot be nil"
)
