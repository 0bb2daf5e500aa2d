package cleanup

import (
	"context"
	"log"
	"time"
)

const DefaultInterval = 1 * time.Hour

type Pruner interface {
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

// Worker drops analysis log rows past the retention window.
type Worker struct {
	Repository    Pruner
	RetentionDays int
	Interval      time.Duration
}

func NewWorker(repo Pruner, retentionDays int) *Worker {
	return &Worker{Repository: repo, RetentionDays: retentionDays, Interval: DefaultInterval}
}

// Start runs one cleanup immediately and then every Interval until ctx is done.
func (w *Worker) Start(ctx context.Context) {
	go func() {
		w.runCleanup(ctx)

		ticker := time.NewTicker(w.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Println("[CLEANUP] Background worker stopped")
				return
			case <-ticker.C:
				w.runCleanup(ctx)
			}
		}
	}()
	log.Println("[CLEANUP] Background worker started")
}

func (w *Worker) runCleanup(ctx context.Context) {
	if w.RetentionDays <= 0 {
		return
	}

	deletedCount, err := w.Repository.DeleteOlderThan(ctx, w.RetentionDays)
	if err != nil {
		log.Printf("[CLEANUP] Error cleaning up analysis log: %v", err)
		return
	}
	if deletedCount > 0 {
		log.Printf("[CLEANUP] Removed %d analyses older than %d days", deletedCount, w.RetentionDays)
	}
}
