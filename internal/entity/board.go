package entity

// Mark is a single cell occupant.
type Mark string

const (
	MarkX Mark = "X"
	MarkO Mark = "O"

	Empty Mark = ""
)

// Opponent returns the other player's mark. Empty is its own opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}

// Outcome is the result of a board position. It is always derived from the
// grid contents, never stored, so it can't go stale.
type Outcome string

const (
	OutcomeOngoing Outcome = "ongoing"
	OutcomeXWins   Outcome = "x_wins"
	OutcomeOWins   Outcome = "o_wins"
	OutcomeDraw    Outcome = "draw"
)

// IsTerminal reports whether no further moves are legal or meaningful.
func (that Outcome) IsTerminal() bool {
	return that != OutcomeOngoing
}

// Winner returns the winning mark, or Empty for ongoing and drawn positions.
func (that Outcome) Winner() Mark {
	switch that {
	case OutcomeXWins:
		return MarkX
	case OutcomeOWins:
		return MarkO
	default:
		return Empty
	}
}

// Move addresses a board cell; Row and Col are both in [0,2].
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

const gridSize = 3

// WinLines lists every three-in-a-row combination as flat grid indexes:
// three rows, three columns, two diagonals.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board holds a 3x3 grid in row-major order and tracks whose turn it is.
// The zero grid is all Empty; mutate it through ApplyMove only, except for
// the AI probing hypothetical placements on clones via Place.
type Board struct {
	Grid          [9]Mark `json:"grid"`
	CurrentPlayer Mark    `json:"current_player"`
}

// NewBoard returns an empty board with X to move.
func NewBoard() *Board {
	return &Board{CurrentPlayer: MarkX}
}

func cellIndex(row, col int) int {
	return row*gridSize + col
}

// Cell returns the mark at (row, col). The coordinates must be in range.
func (that *Board) Cell(row, col int) Mark {
	return that.Grid[cellIndex(row, col)]
}

// IsValidMove reports whether (row, col) is in range and the cell is empty.
// Out-of-range coordinates are a rejection, not an error.
func (that *Board) IsValidMove(row, col int) bool {
	if row < 0 || row >= gridSize || col < 0 || col >= gridSize {
		return false
	}
	return that.Grid[cellIndex(row, col)] == Empty
}

// Place writes mark at (row, col) without advancing the turn. It backs both
// ApplyMove and the AI's what-if placements for either side on cloned boards.
func (that *Board) Place(row, col int, mark Mark) bool {
	if !that.IsValidMove(row, col) {
		return false
	}

	that.Grid[cellIndex(row, col)] = mark

	return true
}

// ApplyMove plays the current player's mark at (row, col) and hands the turn
// to the other player. An invalid target leaves the board untouched and
// returns false.
func (that *Board) ApplyMove(row, col int) bool {
	if !that.Place(row, col, that.CurrentPlayer) {
		return false
	}

	that.CurrentPlayer = that.CurrentPlayer.Opponent()

	return true
}

// EmptyCells returns every empty cell in row-major order. The order is part
// of the contract: the AI's win/block scans and minimax tie-breaking both
// take the first match.
func (that *Board) EmptyCells() []Move {
	cells := make([]Move, 0, len(that.Grid))
	for i, mark := range that.Grid {
		if mark == Empty {
			cells = append(cells, Move{Row: i / gridSize, Col: i % gridSize})
		}
	}

	return cells
}

// Outcome scans the eight win lines for three equal non-empty marks; with no
// winner it is a draw once the grid is full, otherwise the game is ongoing.
func (that *Board) Outcome() Outcome {
	for _, line := range WinLines {
		a, b, c := that.Grid[line[0]], that.Grid[line[1]], that.Grid[line[2]]
		if a != Empty && a == b && b == c {
			if a == MarkX {
				return OutcomeXWins
			}
			return OutcomeOWins
		}
	}

	for _, mark := range that.Grid {
		if mark == Empty {
			return OutcomeOngoing
		}
	}

	return OutcomeDraw
}

// Clone returns an independent deep copy. Mutating the clone never affects
// the original, which lets the AI explore futures off the live board.
func (that *Board) Clone() *Board {
	clone := *that
	return &clone
}

// Reset restores the empty grid with X to move, ready for another game.
func (that *Board) Reset() {
	*that = Board{CurrentPlayer: MarkX}
}
