package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

func TestNewPlayer(t *testing.T) {
	tests := []struct {
		kind     string
		wantName string
	}{
		{kind: "easy", wantName: "FirstLegal"},
		{kind: "first", wantName: "FirstLegal"},
		{kind: KindFirstLegal, wantName: "FirstLegal"},
		{kind: "hard", wantName: "Minimax"},
		{kind: KindMinimax, wantName: "Minimax"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			player, err := NewPlayer(tt.kind, DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, player.Name())
		})
	}
}

func TestNewPlayerErrors(t *testing.T) {
	_, err := NewPlayer("medium", DefaultOptions())
	assert.ErrorIs(t, err, ErrUnknownPlayer)

	opts := DefaultOptions()
	opts.MaxDepth = 0
	_, err = NewPlayer("hard", opts)
	assert.ErrorIs(t, err, ErrInvalidDepth)

	// the baseline never searches, so depth does not matter to it
	_, err = NewPlayer("easy", opts)
	assert.NoError(t, err)
}

func TestCanonicalKind(t *testing.T) {
	kind, ok := CanonicalKind("hard")
	assert.True(t, ok)
	assert.Equal(t, KindMinimax, kind)

	_, ok = CanonicalKind("nope")
	assert.False(t, ok)

	assert.Contains(t, Kinds(), "easy")
	assert.Contains(t, Kinds(), KindMinimax)
}

func TestFirstLegalPlayer(t *testing.T) {
	board, err := domain.BoardFromRows([][]int{
		{1, 0, 0, 0},
		{-1, 0, 0, 0},
		{1, 0, 0, 0},
		{-1, 1, 0, 0},
	})
	require.NoError(t, err)

	col, err := FirstLegalPlayer{}.Decide(board, domain.Red)
	require.NoError(t, err)
	assert.Equal(t, 1, col)
}

func TestFirstLegalPlayerFullBoard(t *testing.T) {
	board, err := domain.BoardFromRows([][]int{
		{1, 1, -1, -1},
		{-1, -1, 1, 1},
		{1, 1, -1, -1},
		{-1, -1, 1, 1},
	})
	require.NoError(t, err)

	_, err = FirstLegalPlayer{}.Decide(board, domain.Yellow)
	assert.ErrorIs(t, err, ErrNoLegalMove)
}

func TestMinimaxPlayerCountsNodes(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxDepth = 3
	player, err := NewMinimaxPlayer(opts)
	require.NoError(t, err)

	board := replay(t, 7, 3, 3)
	first, err := player.Analyze(board, domain.Red, nil)
	require.NoError(t, err)
	assert.Equal(t, first.Stats.Nodes, player.TotalNodes())

	col, err := player.Decide(board, domain.Red)
	require.NoError(t, err)
	assert.Equal(t, first.Column, col)
	assert.Equal(t, 2*first.Stats.Nodes, player.TotalNodes())
}

func TestPlayersSatisfyInterfaces(t *testing.T) {
	var _ Player = FirstLegalPlayer{}
	var _ Player = (*MinimaxPlayer)(nil)
	var _ Analyzer = (*MinimaxPlayer)(nil)
	var _ Board = (*domain.Board)(nil)
}
