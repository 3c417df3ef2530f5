package worker

import (
	"context"
	"fmt"
	"time"
	"token-arena/internal/service"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
)

// AuditScheduler runs the ledger audit on a gocron duration job
type AuditScheduler struct {
	service   service.AuditService
	interval  time.Duration
	logger    zerolog.Logger
	scheduler gocron.Scheduler
}

func NewAuditScheduler(svc service.AuditService, interval time.Duration, logger zerolog.Logger) (*AuditScheduler, error) {
	sched, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	return &AuditScheduler{
		service:   svc,
		interval:  interval,
		logger:    logger,
		scheduler: sched,
	}, nil
}

func (a *AuditScheduler) Start(ctx context.Context) error {
	_, err := a.scheduler.NewJob(
		gocron.DurationJob(a.interval),
		gocron.NewTask(func() {
			drifts, err := a.service.AuditLedger(ctx)
			if err != nil {
				a.logger.Error().Err(err).Msg("Ledger audit failed")
				return
			}
			a.logger.Info().Int("drifted_users", len(drifts)).Msg("Ledger audit completed")
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("schedule ledger audit: %w", err)
	}

	a.scheduler.Start()
	a.logger.Info().Dur("interval", a.interval).Msg("Audit scheduler started")
	return nil
}

func (a *AuditScheduler) Stop() error {
	a.logger.Info().Msg("Audit scheduler stopping")
	return a.scheduler.Shutdown()
}
