// Package worker runs background jobs next to the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application"
)

// maxBatchesPerTick bounds one sweep so a large backlog cannot starve the
// database; the rest is picked up on the next tick.
const maxBatchesPerTick = 20

// SessionSweeper deletes expired sessions from backends that keep them until
// told otherwise.
type SessionSweeper struct {
	remover   application.ExpiredSessionRemover
	interval  time.Duration
	batchSize int
	now       func() time.Time
	logger    *slog.Logger
}

func NewSessionSweeper(
	remover application.ExpiredSessionRemover,
	interval time.Duration,
	batchSize int,
	logger *slog.Logger,
) *SessionSweeper {
	return &SessionSweeper{
		remover:   remover,
		interval:  interval,
		batchSize: batchSize,
		now:       time.Now,
		logger:    logger,
	}
}

// Start sweeps once, then on every tick until ctx is cancelled.
func (w *SessionSweeper) Start(ctx context.Context) {
	w.logger.Info("session sweeper started", "interval", w.interval, "batch_size", w.batchSize)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	if _, err := w.Sweep(ctx); err != nil {
		w.logger.Error("session sweep failed", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("session sweeper stopping")
			return
		case <-ticker.C:
			if _, err := w.Sweep(ctx); err != nil {
				w.logger.Error("session sweep failed", "error", err)
			}
		}
	}
}

// Sweep deletes batches until one comes back short.
func (w *SessionSweeper) Sweep(ctx context.Context) (int64, error) {
	cutoff := w.now()

	var total int64
	for i := 0; i < maxBatchesPerTick; i++ {
		deleted, err := w.remover.DeleteExpired(ctx, cutoff, w.batchSize)
		if err != nil {
			return total, err
		}
		total += deleted
		if deleted < int64(w.batchSize) {
			break
		}
	}

	if total > 0 {
		w.logger.Info("swept expired sessions", "deleted", total)
	}
	return total, nil
}
