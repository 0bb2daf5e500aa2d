package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayGameAlternatesPlayers(t *testing.T) {
	g, err := ReplayGame(7, []int{3, 3, 4})
	require.NoError(t, err)

	assert.Equal(t, Red, g.Board.ColorAt(6, 3))
	assert.Equal(t, Yellow, g.Board.ColorAt(5, 3))
	assert.Equal(t, Red, g.Board.ColorAt(6, 4))
	assert.Equal(t, Yellow, g.CurrentPlayer)
	assert.Equal(t, 3, g.MoveCount)
	assert.Equal(t, StatusActive, g.Status)
}

func TestReplayGameDetectsWin(t *testing.T) {
	g, err := ReplayGame(7, []int{0, 1, 0, 1, 0, 1, 0})
	require.NoError(t, err)

	assert.True(t, g.IsFinished())
	assert.Equal(t, StatusWon, g.Status)
	assert.Equal(t, Red, g.Winner)

	_, err = g.MakeMove(2)
	assert.ErrorIs(t, err, ErrGameFinished)
}

func TestReplayGameRejectsMovesAfterWin(t *testing.T) {
	_, err := ReplayGame(7, []int{0, 1, 0, 1, 0, 1, 0, 2})
	assert.ErrorIs(t, err, ErrGameFinished)
}

func TestReplayGameRejectsFullColumn(t *testing.T) {
	_, err := ReplayGame(4, []int{0, 0, 0, 0, 0})
	assert.ErrorIs(t, err, ErrColumnFull)

	_, err = ReplayGame(4, []int{9})
	assert.ErrorIs(t, err, ErrInvalidMove)
}

func TestReplayGameDraw(t *testing.T) {
	// ends as rows RRYY / YYRR / RRYY / YYRR
	moves := []int{2, 0, 3, 1, 0, 2, 1, 3, 2, 0, 3, 1, 0, 2, 1, 3}
	g, err := ReplayGame(4, moves)
	require.NoError(t, err)

	assert.Equal(t, StatusDraw, g.Status)
	assert.Equal(t, Empty, g.Winner)
}

func TestCheckWinDirections(t *testing.T) {
	tests := []struct {
		name  string
		moves []int
	}{
		{name: "horizontal", moves: []int{0, 0, 1, 1, 2, 2, 3}},
		{name: "vertical", moves: []int{5, 0, 5, 0, 5, 0, 5}},
		{name: "diagonal /", moves: []int{0, 1, 1, 2, 2, 3, 2, 3, 3, 6, 3}},
		{name: "diagonal \\", moves: []int{6, 5, 5, 4, 4, 3, 4, 3, 3, 0, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ReplayGame(7, tt.moves)
			require.NoError(t, err)
			assert.Equal(t, StatusWon, g.Status)
			assert.Equal(t, Red, g.Winner)
		})
	}
}
