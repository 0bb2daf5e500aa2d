package domain

// Color is the content of a single cell. The two players are numeric
// negations of each other so the opponent of c is always -c.
type Color int

const (
	Empty  Color = 0
	Red    Color = 1
	Yellow Color = -1
)

const (
	ToWin       = 4
	MinSize     = ToWin
	MaxSize     = 16
	DefaultSize = 7
)

// Opponent returns the other player's color.
func (c Color) Opponent() Color {
	return -c
}

// IsPlayer reports whether c is one of the two player colors.
func (c Color) IsPlayer() bool {
	return c == Red || c == Yellow
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	default:
		return "empty"
	}
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove   Error = "invalid move"
	ErrColumnFull    Error = "column is full"
	ErrInvalidSize   Error = "board size must be at least 4"
	ErrInvalidBoard  Error = "invalid board state"
	ErrInvalidColor  Error = "color must be 1 or -1"
	ErrNothingToUndo Error = "no move to undo"
	ErrGameFinished  Error = "game is already finished"
)
