package rounds

// RoundError is a custom error type for round state errors
type RoundError string

// Error implements the error interface
func (e RoundError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidRound RoundError = "invalid round number, must be 0, 1, 2 or 3"
	ErrNilConfig    RoundError = "config cannot be nil"
	ErrNilRoundRepo RoundError = "round repository cannot be nil"
	ErrNilClock     RoundError = "clock cannot be nil"
	ErrNilEventBus  RoundError = "event bus cannot be nil"
)
