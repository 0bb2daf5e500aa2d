package bot

import (
	"fmt"
	"math"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

const DefaultDepth = 6

// Options configure a Searcher. Pruning and Ordering only change how much of
// the tree is visited, never the chosen column or its score.
type Options struct {
	MaxDepth int
	Pruning  bool
	Ordering bool
	Weights  Weights
}

func DefaultOptions() Options {
	return Options{
		MaxDepth: DefaultDepth,
		Pruning:  true,
		Ordering: true,
		Weights:  DefaultWeights(),
	}
}

// Stats counts the work done by one SelectMove call.
type Stats struct {
	Nodes   int64 `json:"nodes"`
	Cutoffs int64 `json:"cutoffs"`
}

type CandidateScore struct {
	Column int   `json:"column"`
	Score  int   `json:"score"`
	Nodes  int64 `json:"nodes"`
}

type Result struct {
	Column     int              `json:"column"`
	Score      int              `json:"score"`
	Stats      Stats            `json:"stats"`
	Candidates []CandidateScore `json:"candidates"`
}

// Searcher runs depth-limited minimax with alpha-beta pruning. It holds no
// per-search state, so one Searcher can serve concurrent callers as long as
// each passes its own board.
type Searcher struct {
	opts      Options
	evaluator *Evaluator
}

func NewSearcher(opts Options) (*Searcher, error) {
	if opts.MaxDepth <= 0 {
		return nil, ErrInvalidDepth
	}
	return &Searcher{
		opts:      opts,
		evaluator: NewEvaluator(opts.Weights),
	}, nil
}

func (s *Searcher) Options() Options {
	return s.opts
}

// SelectMove returns the best column for color. The board is mutated while
// searching and restored before returning.
func (s *Searcher) SelectMove(board Board, color domain.Color) (Result, error) {
	return s.SelectMoveWithProgress(board, color, nil)
}

// SelectMoveWithProgress is SelectMove with a callback invoked after each root
// candidate has been scored, in visiting order.
func (s *Searcher) SelectMoveWithProgress(board Board, color domain.Color, onCandidate func(CandidateScore)) (Result, error) {
	if !color.IsPlayer() {
		return Result{Column: -1}, domain.ErrInvalidColor
	}

	columns := legalMoves(board)
	if len(columns) == 0 {
		return Result{Column: -1}, ErrNoLegalMove
	}
	if s.opts.Ordering {
		columns = OrderMoves(columns, board.Size())
	}

	run := &searchRun{
		Searcher:  s,
		board:     board,
		rootColor: color,
	}

	center := board.Size() / 2
	result := Result{
		Column:     -1,
		Score:      math.MinInt,
		Candidates: make([]CandidateScore, 0, len(columns)),
	}

	bestWins := false
	for _, col := range columns {
		if _, err := board.ApplyMove(col, color); err != nil {
			return Result{Column: -1}, err
		}
		wins := HasFourInARow(board, color)
		before := run.stats.Nodes
		score := run.search(s.opts.MaxDepth-1, false, math.MinInt, math.MaxInt)
		if err := board.UndoMove(); err != nil {
			return Result{Column: -1}, err
		}
		if run.err != nil {
			return Result{Column: -1}, run.err
		}

		candidate := CandidateScore{Column: col, Score: score, Nodes: run.stats.Nodes - before}
		result.Candidates = append(result.Candidates, candidate)
		if onCandidate != nil {
			onCandidate(candidate)
		}

		// A plain "strictly greater score" rule would keep the first of several
		// columns that all score Win, which may be a forced win found deeper
		// rather than the win available now. An immediate win therefore ranks
		// above any equal score; remaining ties go to the most central column
		// whatever the visiting order.
		better := result.Column == -1 || (wins && !bestWins)
		if wins == bestWins && !better {
			better = score > result.Score ||
				(score == result.Score && centerDistance(col, center) < centerDistance(result.Column, center))
		}
		if better {
			result.Score = score
			result.Column = col
			bestWins = wins
		}
	}

	result.Stats = run.stats
	return result, nil
}

// searchRun carries the mutable state of a single SelectMove call.
type searchRun struct {
	*Searcher
	board     Board
	rootColor domain.Color
	stats     Stats
	err       error // first board failure; aborts the search
}

func (r *searchRun) search(depth int, maximizing bool, alpha, beta int) int {
	r.stats.Nodes++

	heuristic := r.evaluator.Evaluate(r.board, r.rootColor)
	if depth == 0 || abs(heuristic) >= r.evaluator.WinThreshold() || !r.board.HasAnyLegalMove() {
		return heuristic
	}

	columns := legalMoves(r.board)
	if r.opts.Ordering {
		columns = OrderMoves(columns, r.board.Size())
	}

	if maximizing {
		best := math.MinInt
		for _, col := range columns {
			if !r.play(col, r.rootColor) {
				return heuristic
			}
			value := r.search(depth-1, false, alpha, beta)
			if !r.undo() || r.err != nil {
				return heuristic
			}

			best = max(best, value)
			alpha = max(alpha, value)
			if r.opts.Pruning && beta <= alpha {
				r.stats.Cutoffs++
				break // beta cutoff
			}
		}
		return best
	}

	best := math.MaxInt
	opponent := r.rootColor.Opponent()
	for _, col := range columns {
		if !r.play(col, opponent) {
			return heuristic
		}
		value := r.search(depth-1, true, alpha, beta)
		if !r.undo() || r.err != nil {
			return heuristic
		}

		best = min(best, value)
		beta = min(beta, value)
		if r.opts.Pruning && beta <= alpha {
			r.stats.Cutoffs++
			break // alpha cutoff
		}
	}
	return best
}

// play applies a move the caller already knows is legal. A failure is
// recorded on the run and ends the search.
func (r *searchRun) play(col int, color domain.Color) bool {
	if _, err := r.board.ApplyMove(col, color); err != nil {
		r.fail(fmt.Errorf("apply column %d: %w", col, err))
		return false
	}
	return true
}

func (r *searchRun) undo() bool {
	if err := r.board.UndoMove(); err != nil {
		r.fail(fmt.Errorf("undo: %w", err))
		return false
	}
	return true
}

func (r *searchRun) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
