package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

type AnalysisRepo struct {
	DB *sql.DB
}

func NewAnalysisRepo(db *sql.DB) *AnalysisRepo {
	return &AnalysisRepo{DB: db}
}

const analysisColumns = `id, board_state, color, player, depth, move_column, score, nodes, cutoffs, duration_ms, created_at`

// Save appends an analysis. Re-saving an ID overwrites the earlier row.
func (r *AnalysisRepo) Save(ctx context.Context, a *domain.Analysis) error {
	boardJSON, err := json.Marshal(a.BoardState)
	if err != nil {
		return fmt.Errorf("failed to marshal board state: %w", err)
	}

	query := `
	INSERT INTO analysis (` + analysisColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (id) DO UPDATE SET
		move_column = EXCLUDED.move_column,
		score = EXCLUDED.score,
		nodes = EXCLUDED.nodes,
		cutoffs = EXCLUDED.cutoffs,
		duration_ms = EXCLUDED.duration_ms;
	`

	_, err = r.DB.ExecContext(ctx, query, a.ID, boardJSON, int(a.Color), a.Player, a.Depth, a.Column, a.Score, a.Nodes, a.Cutoffs, a.DurationMs, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert analysis record: %w", err)
	}
	return nil
}

// GetByID returns nil, nil when no row matches.
func (r *AnalysisRepo) GetByID(ctx context.Context, id string) (*domain.Analysis, error) {
	query := `SELECT ` + analysisColumns + ` FROM analysis WHERE id = $1;`

	a, err := scanAnalysis(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis by ID: %w", err)
	}
	return a, nil
}

// ListRecent returns up to limit analyses, newest first.
func (r *AnalysisRepo) ListRecent(ctx context.Context, limit int) ([]domain.Analysis, error) {
	query := `SELECT ` + analysisColumns + ` FROM analysis ORDER BY created_at DESC LIMIT $1;`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	analyses := []domain.Analysis{}
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		analyses = append(analyses, *a)
	}
	return analyses, rows.Err()
}

// DeleteOlderThan removes analyses created before now minus days.
func (r *AnalysisRepo) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	result, err := r.DB.ExecContext(ctx, `DELETE FROM analysis WHERE created_at < $1;`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old analyses: %w", err)
	}
	return result.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (*domain.Analysis, error) {
	var a domain.Analysis
	var boardJSON []byte
	var color int

	err := row.Scan(
		&a.ID,
		&boardJSON,
		&color,
		&a.Player,
		&a.Depth,
		&a.Column,
		&a.Score,
		&a.Nodes,
		&a.Cutoffs,
		&a.DurationMs,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Color = domain.Color(color)
	if err := json.Unmarshal(boardJSON, &a.BoardState); err != nil {
		return nil, fmt.Errorf("failed to unmarshal board state: %w", err)
	}
	return &a, nil
}
