package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

// grid is a bare cell matrix with no gravity rules, handy for placing
// diagonals directly.
type grid [][]domain.Color

func (g grid) Size() int                            { return len(g) }
func (g grid) ColorAt(row, column int) domain.Color { return g[row][column] }

const (
	R = domain.Red
	Y = domain.Yellow
	E = domain.Empty
)

func TestHasFourInARow(t *testing.T) {
	tests := []struct {
		name  string
		grid  grid
		color domain.Color
		want  bool
	}{
		{
			name: "horizontal",
			grid: grid{
				{E, E, E, E, E},
				{E, E, E, E, E},
				{E, E, E, E, E},
				{E, E, E, E, E},
				{E, R, R, R, R},
			},
			color: R, want: true,
		},
		{
			name: "vertical",
			grid: grid{
				{E, E, E, E, E},
				{E, E, Y, E, E},
				{E, E, Y, E, E},
				{E, E, Y, E, E},
				{E, E, Y, E, E},
			},
			color: Y, want: true,
		},
		{
			name: "diagonal down-right",
			grid: grid{
				{R, E, E, E, E},
				{E, R, E, E, E},
				{E, E, R, E, E},
				{E, E, E, R, E},
				{E, E, E, E, E},
			},
			color: R, want: true,
		},
		{
			name: "diagonal up-right",
			grid: grid{
				{E, E, E, E, E},
				{E, E, E, E, R},
				{E, E, E, R, E},
				{E, E, R, E, E},
				{E, R, E, E, E},
			},
			color: R, want: true,
		},
		{
			name: "threes in every direction",
			grid: grid{
				{R, E, E, E, R},
				{E, R, E, R, E},
				{E, E, R, E, E},
				{R, E, E, E, E},
				{R, E, R, R, R},
			},
			color: R, want: false,
		},
		{
			name: "run broken by opponent",
			grid: grid{
				{E, E, E, E, E},
				{E, E, E, E, E},
				{E, E, E, E, E},
				{E, E, E, E, E},
				{R, R, Y, R, R},
			},
			color: R, want: false,
		},
		{
			name: "no wraparound across rows",
			grid: grid{
				{E, E, E, E, E},
				{E, E, E, E, E},
				{E, E, E, E, E},
				{R, R, E, E, E},
				{E, E, E, R, R},
			},
			color: R, want: false,
		},
		{
			name: "other color's run does not count",
			grid: grid{
				{E, E, E, E},
				{E, E, E, E},
				{E, E, E, E},
				{Y, Y, Y, Y},
			},
			color: R, want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasFourInARow(tt.grid, tt.color))
		})
	}
}

func TestEvaluateWinIsAntisymmetric(t *testing.T) {
	e := NewEvaluator(DefaultWeights())
	win := DefaultWeights().Win

	boards := map[string]grid{
		"red row": {
			{E, E, E, E},
			{E, E, E, E},
			{Y, Y, Y, E},
			{R, R, R, R},
		},
		"yellow column": {
			{E, Y, E, E},
			{R, Y, E, E},
			{R, Y, E, E},
			{R, Y, E, E},
		},
	}

	for name, g := range boards {
		t.Run(name, func(t *testing.T) {
			winner := R
			if HasFourInARow(g, Y) {
				winner = Y
			}
			assert.Equal(t, win, e.Evaluate(g, winner))
			assert.Equal(t, -win, e.Evaluate(g, winner.Opponent()))
		})
	}
}

func TestEvaluatePositionalIsAsymmetric(t *testing.T) {
	e := NewEvaluator(DefaultWeights())

	g := make(grid, 7)
	for i := range g {
		g[i] = make([]domain.Color, 7)
	}
	g[6][3] = R

	red := e.Evaluate(g, R)
	yellow := e.Evaluate(g, Y)

	assert.Equal(t, 6, red)
	assert.Equal(t, 0, yellow)
	assert.NotEqual(t, red, -yellow)
}

func TestEvaluateWindows(t *testing.T) {
	e := NewEvaluator(DefaultWeights())

	tests := []struct {
		name  string
		grid  grid
		color domain.Color
		want  int
	}{
		{
			name: "empty board",
			grid: grid{
				{E, E, E, E},
				{E, E, E, E},
				{E, E, E, E},
				{E, E, E, E},
			},
			color: R, want: 0,
		},
		{
			name: "open three including center",
			grid: grid{
				{E, E, E, E},
				{E, E, E, E},
				{E, E, E, E},
				{R, R, R, E},
			},
			color: R, want: 6 + 100,
		},
		{
			name: "opponent open three",
			grid: grid{
				{E, E, E, E},
				{E, E, E, E},
				{E, E, E, E},
				{R, R, R, E},
			},
			color: Y, want: -80,
		},
		{
			name: "open two",
			grid: grid{
				{E, E, E, E},
				{E, E, E, E},
				{E, E, E, E},
				{R, R, E, E},
			},
			color: R, want: 10,
		},
		{
			name: "blocked three scores nothing",
			grid: grid{
				{E, E, E, E},
				{E, E, E, E},
				{E, E, E, E},
				{R, R, R, Y},
			},
			color: R, want: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Evaluate(tt.grid, tt.color))
		})
	}
}

func TestFourWindowWeightIsCounted(t *testing.T) {
	weights := DefaultWeights()
	e := NewEvaluator(weights)

	g := grid{
		{E, E, E, E},
		{E, E, E, E},
		{E, E, E, E},
		{R, R, R, R},
	}

	assert.Equal(t, weights.Win, e.Evaluate(g, R))
	assert.Equal(t, weights.Center+weights.FourWindow, e.positional(g, R))
}

func TestEvaluateDoesNotMutate(t *testing.T) {
	game, err := domain.ReplayGame(7, []int{3, 3, 2, 4, 4, 2})
	assert.NoError(t, err)
	before := game.Board.Rows()

	NewEvaluator(DefaultWeights()).Evaluate(game.Board, R)

	assert.Equal(t, before, game.Board.Rows())
}
