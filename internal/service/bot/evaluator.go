package bot

import (
	"github.com/iamasit07/connect4-engine/internal/domain"
)

// Weights are the heuristic constants. Win doubles as the threshold above
// which the search treats a position as decided.
type Weights struct {
	Win           int // somebody has four in a row
	FourWindow    int // window fully owned
	ThreeOpen     int // three own + one empty
	TwoOpen       int // two own + two empty
	OpponentThree int // subtracted for three opponent + one empty
	Center        int // per own disk in the middle column
}

func DefaultWeights() Weights {
	return Weights{
		Win:           1000000,
		FourWindow:    100000,
		ThreeOpen:     100,
		TwoOpen:       10,
		OpponentThree: 80,
		Center:        6,
	}
}

// PositionalBound is the largest score positional can give an undecided
// size×size board: every window open-three plus a full center column. Win
// must exceed it or the search would mistake a good position for a won one.
func (w Weights) PositionalBound(size int) int {
	span := max(size-domain.ToWin+1, 0)
	windows := 2*size*span + 2*span*span
	return windows*max(w.ThreeOpen, w.TwoOpen, 0) + size*max(w.Center, 0)
}

var windowDirections = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{-1, 1}, // diagonal /
}

type Evaluator struct {
	weights Weights
}

func NewEvaluator(weights Weights) *Evaluator {
	return &Evaluator{weights: weights}
}

func (e *Evaluator) WinThreshold() int {
	return e.weights.Win
}

// Evaluate scores grid from color's point of view. Only the decided case is
// antisymmetric; the positional part is computed for color alone.
func (e *Evaluator) Evaluate(grid Grid, color domain.Color) int {
	if HasFourInARow(grid, color) {
		return e.weights.Win
	}
	if HasFourInARow(grid, color.Opponent()) {
		return -e.weights.Win
	}
	return e.positional(grid, color)
}

func (e *Evaluator) positional(grid Grid, color domain.Color) int {
	size := grid.Size()
	score := 0

	center := size / 2
	for row := 0; row < size; row++ {
		if grid.ColorAt(row, center) == color {
			score += e.weights.Center
		}
	}

	for _, dir := range windowDirections {
		dRow, dCol := dir[0], dir[1]
		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				endRow, endCol := row+3*dRow, col+3*dCol
				if endRow < 0 || endRow >= size || endCol < 0 || endCol >= size {
					continue
				}
				score += e.window(grid, row, col, dRow, dCol, color)
			}
		}
	}

	return score
}

func (e *Evaluator) window(grid Grid, row, col, dRow, dCol int, color domain.Color) int {
	own, opp, empty := 0, 0, 0
	for i := 0; i < domain.ToWin; i++ {
		switch grid.ColorAt(row+i*dRow, col+i*dCol) {
		case color:
			own++
		case domain.Empty:
			empty++
		default:
			opp++
		}
	}

	score := 0
	switch {
	case own == 4:
		score += e.weights.FourWindow
	case own == 3 && empty == 1:
		score += e.weights.ThreeOpen
	case own == 2 && empty == 2:
		score += e.weights.TwoOpen
	}
	if opp == 3 && empty == 1 {
		score -= e.weights.OpponentThree
	}
	return score
}

// HasFourInARow scans every disk of color for a run of four starting there.
func HasFourInARow(grid Grid, color domain.Color) bool {
	size := grid.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if grid.ColorAt(row, col) != color {
				continue
			}
			if runFrom(grid, row, col, 0, 1, color) || // horizontal
				runFrom(grid, row, col, 1, 0, color) || // vertical
				runFrom(grid, row, col, 1, 1, color) || // diagonal \
				runFrom(grid, row, col, -1, 1, color) { // diagonal /
				return true
			}
		}
	}
	return false
}

func runFrom(grid Grid, row, col, dRow, dCol int, color domain.Color) bool {
	size := grid.Size()
	for i := 0; i < domain.ToWin; i++ {
		r, c := row+i*dRow, col+i*dCol
		if r < 0 || r >= size || c < 0 || c >= size || grid.ColorAt(r, c) != color {
			return false
		}
	}
	return true
}
