package bot

import (
	"errors"
	"fmt"
	"sort"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

var (
	ErrNoLegalMove   = errors.New("no legal move available")
	ErrInvalidDepth  = errors.New("search depth must be positive")
	ErrUnknownPlayer = errors.New("unknown player kind")
)

// Grid is the read-only view of a board the evaluator needs.
type Grid interface {
	Size() int
	ColorAt(row, column int) domain.Color
}

// Board is the collaborator the search drives. ApplyMove and UndoMove must be
// exact inverses so one board can be shared across the whole search.
type Board interface {
	Grid
	IsMovePossible(column int) bool
	HasAnyLegalMove() bool
	ApplyMove(column int, color domain.Color) (int, error)
	UndoMove() error
}

// Player picks a column for color on board. Implementations may mutate the
// board while deciding but must hand it back unchanged.
type Player interface {
	Decide(board Board, color domain.Color) (int, error)
	Name() string
}

// Analyzer is implemented by players that can report how they scored a move.
type Analyzer interface {
	Analyze(board Board, color domain.Color, onCandidate func(CandidateScore)) (Result, error)
}

const (
	KindFirstLegal = "first-legal"
	KindMinimax    = "minimax"
)

var kindAliases = map[string]string{
	"easy":         KindFirstLegal,
	"first":        KindFirstLegal,
	KindFirstLegal: KindFirstLegal,
	"hard":         KindMinimax,
	KindMinimax:    KindMinimax,
}

// NewPlayer selects a player implementation by name, the same difficulty
// names the game driver uses ("easy", "hard") are accepted as aliases.
func NewPlayer(kind string, opts Options) (Player, error) {
	switch kindAliases[kind] {
	case KindFirstLegal:
		return FirstLegalPlayer{}, nil
	case KindMinimax:
		return NewMinimaxPlayer(opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, kind)
	}
}

// CanonicalKind maps an alias onto its player kind.
func CanonicalKind(kind string) (string, bool) {
	canonical, ok := kindAliases[kind]
	return canonical, ok
}

// Kinds lists every accepted player name, aliases included.
func Kinds() []string {
	kinds := make([]string, 0, len(kindAliases))
	for k := range kindAliases {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func legalMoves(board Board) []int {
	size := board.Size()
	moves := make([]int, 0, size)
	for col := 0; col < size; col++ {
		if board.IsMovePossible(col) {
			moves = append(moves, col)
		}
	}
	return moves
}
