package domain

import (
	"fmt"
	"strings"
)

// Board is a square size x size grid. Row 0 is the top row, so a dropped
// disk settles on the highest free row index of its column.
type Board struct {
	size    int
	cells   []Color
	heights []int // disks per column
	history []int // columns in the order ApplyMove filled them
}

func NewBoard(size int) (*Board, error) {
	if size < MinSize {
		return nil, ErrInvalidSize
	}
	return &Board{
		size:    size,
		cells:   make([]Color, size*size),
		heights: make([]int, size),
	}, nil
}

// BoardFromRows builds a board from top-first rows of 0, 1 and -1.
// Floating disks (a disk above an empty cell) are rejected.
func BoardFromRows(rows [][]int) (*Board, error) {
	board, err := NewBoard(len(rows))
	if err != nil {
		return nil, err
	}

	for r, row := range rows {
		if len(row) != board.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, r, len(row), board.size)
		}
		for c, v := range row {
			color := Color(v)
			if color != Empty && !color.IsPlayer() {
				return nil, fmt.Errorf("%w: cell (%d,%d) holds %d", ErrInvalidBoard, r, c, v)
			}
			board.cells[r*board.size+c] = color
		}
	}

	// walk each column bottom-up; once an empty cell is seen nothing above may be filled
	for c := 0; c < board.size; c++ {
		height := 0
		for r := board.size - 1; r >= 0; r-- {
			if board.ColorAt(r, c) == Empty {
				break
			}
			height++
		}
		for r := board.size - 1 - height; r >= 0; r-- {
			if board.ColorAt(r, c) != Empty {
				return nil, fmt.Errorf("%w: floating disk at (%d,%d)", ErrInvalidBoard, r, c)
			}
		}
		board.heights[c] = height
	}

	return board, nil
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) ColorAt(row, column int) Color {
	return b.cells[row*b.size+column]
}

func (b *Board) IsMovePossible(column int) bool {
	return column >= 0 && column < b.size && b.heights[column] < b.size
}

func (b *Board) HasAnyLegalMove() bool {
	for c := 0; c < b.size; c++ {
		if b.heights[c] < b.size {
			return true
		}
	}
	return false
}

// LegalMoves returns the non-full columns in ascending order.
func (b *Board) LegalMoves() []int {
	moves := make([]int, 0, b.size)
	for c := 0; c < b.size; c++ {
		if b.heights[c] < b.size {
			moves = append(moves, c)
		}
	}
	return moves
}

// ApplyMove drops a disk of the given color and returns the row it landed on.
func (b *Board) ApplyMove(column int, color Color) (int, error) {
	if column < 0 || column >= b.size {
		return -1, ErrInvalidMove
	}
	if !color.IsPlayer() {
		return -1, ErrInvalidColor
	}
	if b.heights[column] == b.size {
		return -1, ErrColumnFull
	}

	row := b.size - 1 - b.heights[column]
	b.cells[row*b.size+column] = color
	b.heights[column]++
	b.history = append(b.history, column)
	return row, nil
}

// UndoMove removes the disk placed by the most recent ApplyMove.
func (b *Board) UndoMove() error {
	if len(b.history) == 0 {
		return ErrNothingToUndo
	}
	column := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]

	row := b.size - b.heights[column]
	b.cells[row*b.size+column] = Empty
	b.heights[column]--
	return nil
}

// Clone creates a deep copy of the board, undo history included.
func (b *Board) Clone() *Board {
	clone := &Board{
		size:    b.size,
		cells:   make([]Color, len(b.cells)),
		heights: make([]int, len(b.heights)),
		history: make([]int, len(b.history)),
	}
	copy(clone.cells, b.cells)
	copy(clone.heights, b.heights)
	copy(clone.history, b.history)
	return clone
}

func (b *Board) IsFull() bool {
	return !b.HasAnyLegalMove()
}

func (b *Board) MoveCount() int {
	count := 0
	for _, h := range b.heights {
		count += h
	}
	return count
}

// Rows returns the grid as top-first rows of ints, the wire format.
func (b *Board) Rows() [][]int {
	rows := make([][]int, b.size)
	for r := range rows {
		rows[r] = make([]int, b.size)
		for c := range rows[r] {
			rows[r][c] = int(b.ColorAt(r, c))
		}
	}
	return rows
}

// Key is a compact, stable encoding of the cells used for cache keys.
func (b *Board) Key() string {
	var sb strings.Builder
	sb.Grow(len(b.cells) + 4)
	fmt.Fprintf(&sb, "%d:", b.size)
	for _, cell := range b.cells {
		switch cell {
		case Red:
			sb.WriteByte('x')
		case Yellow:
			sb.WriteByte('o')
		default:
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// CountDiskInDirection counts consecutive disks of player starting one step
// away from (row, column) in the given direction.
func (b *Board) CountDiskInDirection(row, column, deltaRow, deltaCol int, player Color) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for r >= 0 && r < b.size && c >= 0 && c < b.size && b.ColorAt(r, c) == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}
