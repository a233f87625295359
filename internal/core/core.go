package core

type State int

const (
	StateOngoing State = iota
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StateOngoing:
		return "ongoing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// ParseState is the inverse of State.String
func ParseState(s string) (State, bool) {
	switch s {
	case "ongoing":
		return StateOngoing, true
	case "won":
		return StateWon, true
	case "lost":
		return StateLost, true
	default:
		return StateOngoing, false
	}
}

func (s State) Finished() bool {
	return s == StateWon || s == StateLost
}

// Error codes
const (
	ErrGameNotFound      = "GAME_NOT_FOUND"
	ErrInvalidRequest    = "INVALID_REQUEST"
	ErrInvalidContent    = "INVALID_CONTENT_TYPE"
	ErrRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrInternalError     = "INTERNAL_ERROR"
)
