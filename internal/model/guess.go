package model

// Guess is a player's parsed guess, and also the type of the secret number
type Guess uint32

// Secret number bounds (inclusive)
const (
	MinSecret Guess = 1
	MaxSecret Guess = 100
)

// Ordering is the result of comparing a guess against the secret
type Ordering int

const (
	OrderingLess Ordering = iota - 1
	OrderingEqual
	OrderingGreater
)

// String returns a lowercase name for the ordering
func (o Ordering) String() string {
	switch o {
	case OrderingLess:
		return "less"
	case OrderingEqual:
		return "equal"
	case OrderingGreater:
		return "greater"
	default:
		return "unknown"
	}
}

// State is a step of the guess loop
type State string

const (
	StatePrompting  State = "prompting"
	StateReading    State = "reading"
	StateParsing    State = "parsing"
	StateComparing  State = "comparing"
	StateTerminated State = "terminated"
)

// IsTerminal returns true if the loop has finished
func (s State) IsTerminal() bool {
	return s == StateTerminated
}
