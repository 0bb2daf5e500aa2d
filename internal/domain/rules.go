package domain

var directions = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{1, -1}, // diagonal /
}

// CheckWin only looks at lines through (row, column), which is all that can
// change after a single drop.
func CheckWin(board *Board, row, column int, player Color) bool {
	if board.ColorAt(row, column) != player {
		return false
	}

	for _, dir := range directions {
		dRow, dCol := dir[0], dir[1]
		total := 1 +
			board.CountDiskInDirection(row, column, dRow, dCol, player) +
			board.CountDiskInDirection(row, column, -dRow, -dCol, player)
		if total >= ToWin {
			return true
		}
	}

	return false
}
