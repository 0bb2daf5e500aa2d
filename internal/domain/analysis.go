package domain

import "time"

// Analysis is one answered move request, as returned to clients and kept in
// the analysis log.
type Analysis struct {
	ID         string    `json:"id"`
	BoardState [][]int   `json:"board_state"`
	Color      Color     `json:"color"`
	Player     string    `json:"player"`
	Depth      int       `json:"depth"`
	Column     int       `json:"column"`
	Score      int       `json:"score"`
	Nodes      int64     `json:"nodes"`
	Cutoffs    int64     `json:"cutoffs"`
	DurationMs int64     `json:"duration_ms"`
	Cached     bool      `json:"cached"`
	CreatedAt  time.Time `json:"created_at"`
}
