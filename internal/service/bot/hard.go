package bot

import (
	"log"
	"sync/atomic"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

// MinimaxPlayer chooses moves with a Searcher and keeps a running count of
// the nodes it has explored across all of its moves.
type MinimaxPlayer struct {
	searcher   *Searcher
	totalNodes atomic.Int64
}

func NewMinimaxPlayer(opts Options) (*MinimaxPlayer, error) {
	searcher, err := NewSearcher(opts)
	if err != nil {
		return nil, err
	}
	return &MinimaxPlayer{searcher: searcher}, nil
}

func (p *MinimaxPlayer) Name() string {
	return "Minimax"
}

func (p *MinimaxPlayer) Decide(board Board, color domain.Color) (int, error) {
	result, err := p.Analyze(board, color, nil)
	if err != nil {
		return -1, err
	}
	return result.Column, nil
}

func (p *MinimaxPlayer) Analyze(board Board, color domain.Color, onCandidate func(CandidateScore)) (Result, error) {
	result, err := p.searcher.SelectMoveWithProgress(board, color, onCandidate)
	if err != nil {
		return result, err
	}

	total := p.totalNodes.Add(result.Stats.Nodes)
	log.Printf("[BOT] %s played column %d (score %d): explored %d nodes, total %d",
		p.Name(), result.Column, result.Score, result.Stats.Nodes, total)
	return result, nil
}

// TotalNodes is the number of nodes explored over the player's lifetime.
func (p *MinimaxPlayer) TotalNodes() int64 {
	return p.totalNodes.Load()
}

func (p *MinimaxPlayer) Options() Options {
	return p.searcher.Options()
}
