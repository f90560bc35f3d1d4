package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	t.Run("Creates an AI session with a fresh board", func(t *testing.T) {
		// Given: a new AI session on hard difficulty
		session := NewSession("session-1", ModeAI, DifficultyHard)

		// Then: the session carries an empty board with X to move
		assert.Equal(t, "session-1", session.ID)
		assert.Equal(t, ModeAI, session.Mode)
		assert.Equal(t, DifficultyHard, session.Difficulty)
		assert.True(t, session.WithAI())
		require.NotNil(t, session.Board)
		assert.Equal(t, MarkX, session.Board.CurrentPlayer)
		assert.Len(t, session.Board.EmptyCells(), 9)
	})

	t.Run("Creates a two-player session without a difficulty", func(t *testing.T) {
		session := NewSession("session-2", ModeHuman, "")

		assert.Equal(t, ModeHuman, session.Mode)
		assert.Empty(t, session.Difficulty)
		assert.False(t, session.WithAI())
	})
}

func TestSession_Clone(t *testing.T) {
	// Given: a session mid-game and its clone
	session := NewSession("session-3", ModeHuman, "")
	require.True(t, session.Board.ApplyMove(0, 0))

	clone := session.Clone()
	require.Equal(t, session.ID, clone.ID)
	require.Equal(t, session.Board.Grid, clone.Board.Grid)

	// When: the clone's board advances
	require.True(t, clone.Board.ApplyMove(1, 1))

	// Then: the original board is unaffected
	assert.Equal(t, Empty, session.Board.Cell(1, 1))
	assert.Equal(t, MarkO, session.Board.CurrentPlayer)
}

func TestMode_IsValid(t *testing.T) {
	assert.True(t, ModeHuman.IsValid())
	assert.True(t, ModeAI.IsValid())
	assert.False(t, Mode("tournament").IsValid())
	assert.False(t, Mode("").IsValid())
}

func TestDifficulty_IsValid(t *testing.T) {
	assert.True(t, DifficultyEasy.IsValid())
	assert.True(t, DifficultyMedium.IsValid())
	assert.True(t, DifficultyHard.IsValid())
	assert.False(t, Difficulty("impossible").IsValid())
	assert.False(t, Difficulty("").IsValid())
}
