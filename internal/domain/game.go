package domain

import "fmt"

type Game struct {
	Board         *Board
	CurrentPlayer Color
	Status        GameStatus
	Winner        Color
	MoveCount     int
}

// NewGame starts an empty game; Red always moves first.
func NewGame(size int) (*Game, error) {
	board, err := NewBoard(size)
	if err != nil {
		return nil, err
	}
	return &Game{
		Board:         board,
		CurrentPlayer: Red,
		Status:        StatusActive,
		Winner:        Empty,
	}, nil
}

// ReplayGame plays a column sequence from an empty board.
func ReplayGame(size int, moves []int) (*Game, error) {
	g, err := NewGame(size)
	if err != nil {
		return nil, err
	}
	for i, column := range moves {
		if _, err := g.MakeMove(column); err != nil {
			return nil, fmt.Errorf("move %d (column %d): %w", i+1, column, err)
		}
	}
	return g, nil
}

func (g *Game) MakeMove(column int) (int, error) {
	if g.Status != StatusActive {
		return -1, ErrGameFinished
	}

	if !g.Board.IsMovePossible(column) {
		if column >= 0 && column < g.Board.Size() {
			return -1, ErrColumnFull
		}
		return -1, ErrInvalidMove
	}

	row, err := g.Board.ApplyMove(column, g.CurrentPlayer)
	if err != nil {
		return -1, err
	}

	g.MoveCount++

	if CheckWin(g.Board, row, column, g.CurrentPlayer) {
		g.Status = StatusWon
		g.Winner = g.CurrentPlayer
		return row, nil
	}

	if g.Board.IsFull() {
		g.Status = StatusDraw
		return row, nil
	}

	g.CurrentPlayer = g.CurrentPlayer.Opponent()
	return row, nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
