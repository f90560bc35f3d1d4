package ai

import (
	"math"
	"math/rand"

	"github.com/shaqnxtgen/tic-tac-toe-web/internal/entity"
)

// Player picks moves for one side of a board.
type Player interface {
	ChooseMove(board *entity.Board) (entity.Move, bool)
	Mark() entity.Mark
}

type player struct {
	difficulty entity.Difficulty
	mark       entity.Mark
}

// NewPlayer creates a player for the given mark. Unknown difficulties play
// like easy.
func NewPlayer(difficulty entity.Difficulty, mark entity.Mark) Player {
	return &player{difficulty: difficulty, mark: mark}
}

func (that *player) Mark() entity.Mark {
	return that.mark
}

// ChooseMove returns the player's next move. The second return value is
// false when the board has no empty cells.
func (that *player) ChooseMove(board *entity.Board) (entity.Move, bool) {
	switch that.difficulty {
	case entity.DifficultyHard:
		return that.minimaxMove(board)
	case entity.DifficultyMedium:
		return that.heuristicMove(board)
	default:
		return that.randomMove(board)
	}
}

func (that *player) randomMove(board *entity.Board) (entity.Move, bool) {
	cells := board.EmptyCells()
	if len(cells) == 0 {
		return entity.Move{}, false
	}

	return cells[rand.Intn(len(cells))], true //nolint: gosec // it's ok
}

// heuristicMove picks the first rule that applies: win now, block the
// opponent's win, take the center, play a random cell.
func (that *player) heuristicMove(board *entity.Board) (entity.Move, bool) {
	if move, ok := findWinningMove(board, that.mark); ok {
		return move, true
	}

	if move, ok := findWinningMove(board, that.mark.Opponent()); ok {
		return move, true
	}

	if board.IsValidMove(1, 1) {
		return entity.Move{Row: 1, Col: 1}, true
	}

	return that.randomMove(board)
}

// findWinningMove scans the empty cells in row-major order and returns the
// first one that completes a line for mark.
func findWinningMove(board *entity.Board, mark entity.Mark) (entity.Move, bool) {
	for _, move := range board.EmptyCells() {
		probe := board.Clone()
		probe.Place(move.Row, move.Col, mark)

		if probe.Outcome().Winner() == mark {
			return move, true
		}
	}

	return entity.Move{}, false
}

// minimaxMove searches the full game tree and keeps the first best-scoring
// move in row-major order.
func (that *player) minimaxMove(board *entity.Board) (entity.Move, bool) {
	cells := board.EmptyCells()
	if len(cells) == 0 {
		return entity.Move{}, false
	}

	best := cells[0]
	bestScore := math.MinInt

	for _, move := range cells {
		probe := board.Clone()
		probe.Place(move.Row, move.Col, that.mark)

		if score := that.minimax(probe, false); score > bestScore {
			bestScore = score
			best = move
		}
	}

	return best, true
}

// minimax scores a position from this player's perspective: +1 for a win,
// -1 for a loss, 0 for a draw.
func (that *player) minimax(board *entity.Board, ownTurn bool) int {
	outcome := board.Outcome()
	if outcome.IsTerminal() {
		switch outcome.Winner() {
		case that.mark:
			return 1
		case that.mark.Opponent():
			return -1
		default:
			return 0
		}
	}

	if ownTurn {
		bestScore := math.MinInt

		for _, move := range board.EmptyCells() {
			probe := board.Clone()
			probe.Place(move.Row, move.Col, that.mark)

			if score := that.minimax(probe, false); score > bestScore {
				bestScore = score
			}
		}

		return bestScore
	}

	worstScore := math.MaxInt

	for _, move := range board.EmptyCells() {
		probe := board.Clone()
		probe.Place(move.Row, move.Col, that.mark.Opponent())

		if score := that.minimax(probe, true); score < worstScore {
			worstScore = score
		}
	}

	return worstScore
}
