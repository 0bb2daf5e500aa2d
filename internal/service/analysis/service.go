package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
	"github.com/iamasit07/connect4-engine/pkg/uid"
)

const (
	DefaultRecentLimit = 20
	MaxRecentLimit     = 100
)

var (
	ErrInvalidRequest      = errors.New("invalid analysis request")
	ErrNotFound            = errors.New("analysis not found")
	ErrPersistenceDisabled = errors.New("analysis log is not configured")
)

// Request describes a position either as explicit top-first rows or as a
// move list replayed from an empty board of Size.
type Request struct {
	Board  [][]int `json:"board"`
	Moves  []int   `json:"moves"`
	Size   int     `json:"size"`
	Color  int     `json:"color"`
	Player string  `json:"player"`
	Depth  int     `json:"depth"`
}

type ResultCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
}

type Repository interface {
	Save(ctx context.Context, a *domain.Analysis) error
	GetByID(ctx context.Context, id string) (*domain.Analysis, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Analysis, error)
}

type Settings struct {
	Search        bot.Options
	MaxDepth      int
	BoardSize     int
	CacheTTL      time.Duration
	DefaultPlayer string
}

// Service answers move requests with the configured players, fronted by an
// optional result cache and backed by an optional analysis log.
type Service struct {
	settings Settings
	cache    ResultCache // Optional, can be nil
	repo     Repository  // Optional, can be nil

	mu      sync.Mutex
	players map[string]bot.Player // "kind/depth" -> player
}

func NewService(settings Settings, cache ResultCache, repo Repository) *Service {
	if settings.DefaultPlayer == "" {
		settings.DefaultPlayer = bot.KindMinimax
	}
	return &Service{
		settings: settings,
		cache:    cache,
		repo:     repo,
		players:  make(map[string]bot.Player),
	}
}

// Analyze picks a move for the requested position, serving repeats from the
// cache when one is configured.
func (s *Service) Analyze(ctx context.Context, req Request) (*domain.Analysis, error) {
	return s.analyze(ctx, req, nil, true)
}

// Stream is Analyze without the cache read, reporting each root candidate as
// soon as it is scored.
func (s *Service) Stream(ctx context.Context, req Request, onCandidate func(bot.CandidateScore)) (*domain.Analysis, error) {
	return s.analyze(ctx, req, onCandidate, false)
}

func (s *Service) analyze(ctx context.Context, req Request, onCandidate func(bot.CandidateScore), useCache bool) (*domain.Analysis, error) {
	board, color, err := s.position(req)
	if err != nil {
		return nil, err
	}

	kind, depth, err := s.resolvePlayer(req)
	if err != nil {
		return nil, err
	}

	key := s.cacheKey(board, color, kind, depth)
	if useCache {
		if cached := s.lookup(ctx, key); cached != nil {
			return cached, nil
		}
	}

	player, err := s.player(kind, depth)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	analysis := &domain.Analysis{
		ID:         uid.GenerateAnalysisID(),
		BoardState: board.Rows(),
		Color:      color,
		Player:     kind,
		Depth:      depth,
		CreatedAt:  start.UTC(),
	}

	if analyzer, ok := player.(bot.Analyzer); ok {
		result, err := analyzer.Analyze(board, color, onCandidate)
		if err != nil {
			return nil, err
		}
		analysis.Column = result.Column
		analysis.Score = result.Score
		analysis.Nodes = result.Stats.Nodes
		analysis.Cutoffs = result.Stats.Cutoffs
	} else {
		col, err := player.Decide(board, color)
		if err != nil {
			return nil, err
		}
		analysis.Column = col
	}
	analysis.DurationMs = time.Since(start).Milliseconds()

	s.store(ctx, key, analysis)
	return analysis, nil
}

func (s *Service) position(req Request) (*domain.Board, domain.Color, error) {
	if req.Board != nil && req.Moves != nil {
		return nil, domain.Empty, fmt.Errorf("%w: give either board or moves, not both", ErrInvalidRequest)
	}

	if req.Board != nil {
		if len(req.Board) > domain.MaxSize {
			return nil, domain.Empty, fmt.Errorf("%w: board has %d rows, limit is %d", ErrInvalidRequest, len(req.Board), domain.MaxSize)
		}
		board, err := domain.BoardFromRows(req.Board)
		if err != nil {
			return nil, domain.Empty, err
		}
		color := domain.Color(req.Color)
		if !color.IsPlayer() {
			return nil, domain.Empty, domain.ErrInvalidColor
		}
		return board, color, nil
	}

	size := req.Size
	if size == 0 {
		size = s.settings.BoardSize
	}
	if size > domain.MaxSize {
		return nil, domain.Empty, fmt.Errorf("%w: size %d exceeds limit %d", ErrInvalidRequest, size, domain.MaxSize)
	}
	game, err := domain.ReplayGame(size, req.Moves)
	if err != nil {
		return nil, domain.Empty, err
	}
	if game.IsFinished() {
		return nil, domain.Empty, fmt.Errorf("%w: %s", domain.ErrGameFinished, game.Status)
	}

	color := game.CurrentPlayer
	if req.Color != 0 {
		color = domain.Color(req.Color)
		if !color.IsPlayer() {
			return nil, domain.Empty, domain.ErrInvalidColor
		}
	}
	return game.Board, color, nil
}

func (s *Service) resolvePlayer(req Request) (string, int, error) {
	name := req.Player
	if name == "" {
		name = s.settings.DefaultPlayer
	}
	kind, ok := bot.CanonicalKind(name)
	if !ok {
		return "", 0, fmt.Errorf("%w: %q", bot.ErrUnknownPlayer, name)
	}
	if kind != bot.KindMinimax {
		return kind, 0, nil
	}

	depth := req.Depth
	switch {
	case depth == 0:
		depth = s.settings.Search.MaxDepth
	case depth < 0:
		return "", 0, bot.ErrInvalidDepth
	case depth > s.settings.MaxDepth:
		return "", 0, fmt.Errorf("%w: depth %d exceeds limit %d", ErrInvalidRequest, depth, s.settings.MaxDepth)
	}
	return kind, depth, nil
}

// player returns a shared player per kind and depth so node totals accumulate.
func (s *Service) player(kind string, depth int) (bot.Player, error) {
	id := fmt.Sprintf("%s/%d", kind, depth)

	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.players[id]; ok {
		return p, nil
	}

	opts := s.settings.Search
	opts.MaxDepth = depth
	p, err := bot.NewPlayer(kind, opts)
	if err != nil {
		return nil, err
	}
	s.players[id] = p
	return p, nil
}

func (s *Service) cacheKey(board *domain.Board, color domain.Color, kind string, depth int) string {
	o := s.settings.Search
	return fmt.Sprintf("%s|%d|%s|%d|%t|%t|%d|%d", board.Key(), color, kind, depth, o.Pruning, o.Ordering, o.Weights.Win, o.Weights.FourWindow)
}

func (s *Service) lookup(ctx context.Context, key string) *domain.Analysis {
	if s.cache == nil {
		return nil
	}

	value, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Printf("[ANALYSIS] Cache read failed: %v", err)
		return nil
	}
	if !ok {
		return nil
	}

	var cached domain.Analysis
	if err := json.Unmarshal([]byte(value), &cached); err != nil {
		log.Printf("[ANALYSIS] Dropping unreadable cache entry: %v", err)
		return nil
	}
	cached.Cached = true
	return &cached
}

// store writes to the cache and the log; neither failure fails the request.
func (s *Service) store(ctx context.Context, key string, analysis *domain.Analysis) {
	if s.cache != nil {
		if value, err := json.Marshal(analysis); err == nil {
			if err := s.cache.Set(ctx, key, string(value), s.settings.CacheTTL); err != nil {
				log.Printf("[ANALYSIS] Cache write failed: %v", err)
			}
		}
	}

	if s.repo != nil {
		if err := s.repo.Save(ctx, analysis); err != nil {
			log.Printf("[ANALYSIS] Failed to save analysis %s: %v", analysis.ID, err)
		}
	}
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Analysis, error) {
	if s.repo == nil {
		return nil, ErrPersistenceDisabled
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}

func (s *Service) Recent(ctx context.Context, limit int) ([]domain.Analysis, error) {
	if s.repo == nil {
		return nil, ErrPersistenceDisabled
	}
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	limit = min(limit, MaxRecentLimit)
	return s.repo.ListRecent(ctx, limit)
}

// Players lists the accepted player names.
func (s *Service) Players() []string {
	return bot.Kinds()
}
