package bot

import (
	"github.com/iamasit07/connect4-engine/internal/domain"
)

// FirstLegalPlayer is the baseline opponent: it plays the lowest-numbered
// column that still has room.
type FirstLegalPlayer struct{}

func (FirstLegalPlayer) Decide(board Board, color domain.Color) (int, error) {
	if !color.IsPlayer() {
		return -1, domain.ErrInvalidColor
	}
	for col := 0; col < board.Size(); col++ {
		if board.IsMovePossible(col) {
			return col, nil
		}
	}
	return -1, ErrNoLegalMove
}

func (FirstLegalPlayer) Name() string {
	return "FirstLegal"
}
