package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// applyMoves plays a sequence of (row, col) moves and fails the test on the
// first rejected one.
func applyMoves(t *testing.T, board *Board, moves []Move) {
	t.Helper()

	for i, move := range moves {
		require.Truef(t, board.ApplyMove(move.Row, move.Col), "move %d (%d,%d) rejected", i, move.Row, move.Col)
	}
}

func TestNewBoard(t *testing.T) {
	// Given: a fresh board
	board := NewBoard()

	// Then: X moves first on an empty, ongoing 3x3 grid
	assert.Equal(t, MarkX, board.CurrentPlayer)
	assert.Equal(t, OutcomeOngoing, board.Outcome())
	assert.Len(t, board.EmptyCells(), 9)
	for _, mark := range board.Grid {
		assert.Equal(t, Empty, mark)
	}
}

func TestBoard_IsValidMove(t *testing.T) {
	t.Run("Accepts an empty in-range cell", func(t *testing.T) {
		board := NewBoard()

		assert.True(t, board.IsValidMove(0, 0))
		assert.True(t, board.IsValidMove(2, 2))
	})

	t.Run("Rejects an occupied cell", func(t *testing.T) {
		// Given: a board with X on (1,1)
		board := NewBoard()
		require.True(t, board.ApplyMove(1, 1))

		// Then: the occupied cell is rejected, its neighbors are not
		assert.False(t, board.IsValidMove(1, 1))
		assert.True(t, board.IsValidMove(1, 0))
	})

	t.Run("Rejects out-of-range coordinates", func(t *testing.T) {
		board := NewBoard()

		for _, move := range []Move{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}, {-2, -2}} {
			assert.Falsef(t, board.IsValidMove(move.Row, move.Col), "(%d,%d) should be invalid", move.Row, move.Col)
		}
	})
}

func TestBoard_ApplyMove(t *testing.T) {
	t.Run("Places the current player's mark and flips the turn", func(t *testing.T) {
		// Given: a fresh board with X to move
		board := NewBoard()

		// When: X plays (0,0)
		ok := board.ApplyMove(0, 0)

		// Then: the cell holds X and it is O's turn
		require.True(t, ok)
		assert.Equal(t, MarkX, board.Cell(0, 0))
		assert.Equal(t, MarkO, board.CurrentPlayer)

		// When: O plays (1,1)
		ok = board.ApplyMove(1, 1)

		// Then: the cell holds O and the turn is back with X
		require.True(t, ok)
		assert.Equal(t, MarkO, board.Cell(1, 1))
		assert.Equal(t, MarkX, board.CurrentPlayer)
	})

	t.Run("Rejects an occupied target and leaves the board unchanged", func(t *testing.T) {
		// Given: a board with X on (0,0), O to move
		board := NewBoard()
		require.True(t, board.ApplyMove(0, 0))
		before := *board

		// When: O tries the same cell
		ok := board.ApplyMove(0, 0)

		// Then: the move is rejected and grid and turn are untouched
		assert.False(t, ok)
		assert.Equal(t, before, *board)
	})

	t.Run("Rejects out-of-range targets and leaves the board unchanged", func(t *testing.T) {
		board := NewBoard()
		before := *board

		for _, move := range []Move{{-1, 0}, {3, 0}, {0, 3}} {
			assert.Falsef(t, board.ApplyMove(move.Row, move.Col), "(%d,%d) should be rejected", move.Row, move.Col)
		}
		assert.Equal(t, before, *board)
	})
}

func TestBoard_Place(t *testing.T) {
	// Given: a fresh board with X to move
	board := NewBoard()

	// When: O is placed speculatively
	ok := board.Place(2, 0, MarkO)

	// Then: the cell holds O but the turn did not advance
	require.True(t, ok)
	assert.Equal(t, MarkO, board.Cell(2, 0))
	assert.Equal(t, MarkX, board.CurrentPlayer)

	// When: the same cell is probed again
	// Then: the placement is rejected
	assert.False(t, board.Place(2, 0, MarkX))
	assert.Equal(t, MarkO, board.Cell(2, 0))
}

func TestBoard_EmptyCells(t *testing.T) {
	t.Run("Lists all nine cells of a fresh board in row-major order", func(t *testing.T) {
		board := NewBoard()

		cells := board.EmptyCells()

		require.Len(t, cells, 9)
		assert.Equal(t, Move{Row: 0, Col: 0}, cells[0])
		assert.Equal(t, Move{Row: 0, Col: 1}, cells[1])
		assert.Equal(t, Move{Row: 1, Col: 0}, cells[3])
		assert.Equal(t, Move{Row: 2, Col: 2}, cells[8])
	})

	t.Run("Skips occupied cells while keeping the order", func(t *testing.T) {
		// Given: X on (0,0) and O on (1,1)
		board := NewBoard()
		applyMoves(t, board, []Move{{0, 0}, {1, 1}})

		// When: listing the empty cells
		cells := board.EmptyCells()

		// Then: the remaining seven come back in row-major order
		expected := []Move{{0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
		assert.Equal(t, expected, cells)
	})
}

func TestBoard_Outcome(t *testing.T) {
	t.Run("Fresh board is ongoing", func(t *testing.T) {
		assert.Equal(t, OutcomeOngoing, NewBoard().Outcome())
	})

	t.Run("Top row of X wins", func(t *testing.T) {
		// Given: X takes the top row while O fills the middle row
		board := NewBoard()
		applyMoves(t, board, []Move{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}})

		// Then: X wins
		assert.Equal(t, OutcomeXWins, board.Outcome())
	})

	t.Run("Column of O wins", func(t *testing.T) {
		board := &Board{
			Grid: [9]Mark{
				MarkX, MarkO, Empty,
				MarkX, MarkO, Empty,
				Empty, MarkO, MarkX,
			},
			CurrentPlayer: MarkX,
		}

		assert.Equal(t, OutcomeOWins, board.Outcome())
	})

	t.Run("Main diagonal wins", func(t *testing.T) {
		board := &Board{
			Grid: [9]Mark{
				MarkX, MarkO, Empty,
				MarkO, MarkX, Empty,
				Empty, Empty, MarkX,
			},
			CurrentPlayer: MarkO,
		}

		assert.Equal(t, OutcomeXWins, board.Outcome())
	})

	t.Run("Anti-diagonal wins", func(t *testing.T) {
		board := &Board{
			Grid: [9]Mark{
				MarkX, MarkX, MarkO,
				MarkX, MarkO, Empty,
				MarkO, Empty, Empty,
			},
			CurrentPlayer: MarkX,
		}

		assert.Equal(t, OutcomeOWins, board.Outcome())
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: the alternating sequence that fills the grid with no winner
		board := NewBoard()
		applyMoves(t, board, []Move{
			{0, 0}, {0, 1}, {0, 2},
			{1, 1}, {1, 0}, {1, 2},
			{2, 1}, {2, 0}, {2, 2},
		})

		// Then: the game is drawn with no empty cells left
		assert.Equal(t, OutcomeDraw, board.Outcome())
		assert.Empty(t, board.EmptyCells())
	})
}

func TestBoard_Clone(t *testing.T) {
	// Given: a board mid-game and its clone
	board := NewBoard()
	applyMoves(t, board, []Move{{0, 0}, {1, 1}})
	clone := board.Clone()

	require.Equal(t, board.Grid, clone.Grid)
	require.Equal(t, board.CurrentPlayer, clone.CurrentPlayer)

	// When: the clone keeps playing
	require.True(t, clone.ApplyMove(2, 2))

	// Then: the original is unaffected
	assert.Equal(t, Empty, board.Cell(2, 2))
	assert.Equal(t, MarkX, board.CurrentPlayer)
	assert.Equal(t, MarkX, clone.Cell(2, 2))

	// When: the original keeps playing
	require.True(t, board.ApplyMove(0, 1))

	// Then: the clone is unaffected
	assert.Equal(t, Empty, clone.Cell(0, 1))
}

func TestBoard_Reset(t *testing.T) {
	// Given: a board mid-game
	board := NewBoard()
	applyMoves(t, board, []Move{{0, 0}, {1, 1}, {2, 2}})

	// When: resetting it
	board.Reset()

	// Then: the board is back to the initial state
	assert.Equal(t, MarkX, board.CurrentPlayer)
	assert.Len(t, board.EmptyCells(), 9)
	assert.Equal(t, OutcomeOngoing, board.Outcome())
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, MarkO, MarkX.Opponent())
	assert.Equal(t, MarkX, MarkO.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
}

func TestOutcome_Helpers(t *testing.T) {
	t.Run("IsTerminal", func(t *testing.T) {
		assert.False(t, OutcomeOngoing.IsTerminal())
		assert.True(t, OutcomeXWins.IsTerminal())
		assert.True(t, OutcomeOWins.IsTerminal())
		assert.True(t, OutcomeDraw.IsTerminal())
	})

	t.Run("Winner", func(t *testing.T) {
		assert.Equal(t, MarkX, OutcomeXWins.Winner())
		assert.Equal(t, MarkO, OutcomeOWins.Winner())
		assert.Equal(t, Empty, OutcomeDraw.Winner())
		assert.Equal(t, Empty, OutcomeOngoing.Winner())
	})
}
