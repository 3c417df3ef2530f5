package worker

import (
	"context"
	"sync"
	"time"
	"token-arena/internal/service"

	"github.com/rs/zerolog"
)

// SweepWorker runs the reconciliation sweep once at start, to clear what piled
// up while the service was down, and then on every tick.
type SweepWorker struct {
	service  service.ReconciliationService
	interval time.Duration
	logger   zerolog.Logger
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewSweepWorker(svc service.ReconciliationService, interval time.Duration, logger zerolog.Logger) *SweepWorker {
	return &SweepWorker{
		service:  svc,
		interval: interval,
		logger:   logger.With().Str("worker", "sweep").Logger(),
		stopChan: make(chan struct{}),
	}
}

func (w *SweepWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.logger.Info().Dur("interval", w.interval).Msg("Sweep worker started")

		w.sweep(ctx)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				w.sweep(ctx)
			case <-w.stopChan:
				w.logger.Info().Msg("Sweep worker stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Sweep worker stopping (context done)")
				return
			}
		}
	}()
}

func (w *SweepWorker) sweep(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	result, err := w.service.RunSweep(ctx)
	if err != nil {
		w.logger.Error().Err(err).Msg("Reconciliation sweep failed, retrying next tick")
		return
	}
	if result.ExpiredQueues+result.DeletedQueues > 0 || result.PairedQueues+result.CancelledMatches > 0 {
		w.logger.Info().
			Int64("expired_queues", result.ExpiredQueues).
			Int("paired_queues", result.PairedQueues).
			Int64("deleted_queues", result.DeletedQueues).
			Int("cancelled_matches", result.CancelledMatches).
			Msg("Sweep reclaimed stale state")
	}
}

// Stop is safe to call more than once
func (w *SweepWorker) Stop() {
	w.stopOnce.Do(func() { close(w.stopChan) })
	w.wg.Wait()
}
