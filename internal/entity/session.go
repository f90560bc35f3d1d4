package entity

// Mode says who plays O in a session: a second human or the computer.
type Mode string

const (
	ModeHuman Mode = "human"
	ModeAI    Mode = "ai"
)

// IsValid reports whether the mode is one of the known values.
func (that Mode) IsValid() bool {
	return that == ModeHuman || that == ModeAI
}

// Difficulty selects the AI move strategy for a session.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// IsValid reports whether the difficulty is one of the known levels.
func (that Difficulty) IsValid() bool {
	switch that {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// Session is one web game: an opaque id mapped to its own Board plus the
// settings it was created with. In AI sessions the human plays X and the
// computer plays O.
type Session struct {
	ID         string     `json:"id"`
	Board      *Board     `json:"board"`
	Mode       Mode       `json:"mode"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
}

// NewSession returns a session with a fresh board, X to move.
func NewSession(id string, mode Mode, difficulty Difficulty) *Session {
	return &Session{
		ID:         id,
		Board:      NewBoard(),
		Mode:       mode,
		Difficulty: difficulty,
	}
}

// WithAI reports whether the computer plays O in this session.
func (that *Session) WithAI() bool {
	return that.Mode == ModeAI
}

// Clone returns a deep copy; the boards never alias, so a clone handed out
// by a store can be mutated freely without touching the stored state.
func (that *Session) Clone() *Session {
	clone := *that
	if that.Board != nil {
		clone.Board = that.Board.Clone()
	}

	return &clone
}
