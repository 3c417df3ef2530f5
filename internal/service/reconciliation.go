package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"token-arena/internal/model"
	"token-arena/internal/repository"

	"github.com/rs/zerolog"
)

type SweepConfig struct {
	QueueRetention    time.Duration
	StaleMatchTimeout time.Duration
	BatchSize         int
}

type ReconciliationServiceImpl struct {
	queueRepo    repository.QueueRepository
	matchRepo    repository.MatchRepository
	matchService MatchService
	matchmaking  MatchmakingService
	cfg          SweepConfig
	logger       zerolog.Logger
	now          func() time.Time
}

func NewReconciliationService(
	queueRepo repository.QueueRepository,
	matchRepo repository.MatchRepository,
	matchService MatchService,
	matchmaking MatchmakingService,
	cfg SweepConfig,
	logger zerolog.Logger,
) ReconciliationService {
	return &ReconciliationServiceImpl{
		queueRepo:    queueRepo,
		matchRepo:    matchRepo,
		matchService: matchService,
		matchmaking:  matchmaking,
		cfg:          cfg,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// RunSweep expires lapsed queue entries, pairs parked compatible ones, purges
// old finished ones and refunds abandoned single-seat matches. A failing step is logged and the remaining
// steps still run; the joined error is returned alongside partial counts.
func (s *ReconciliationServiceImpl) RunSweep(ctx context.Context) (*model.SweepResult, error) {
	result := &model.SweepResult{}
	now := s.now()
	var errs []error

	expired, err := s.queueRepo.ExpireDue(ctx, now)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to expire queue entries")
		errs = append(errs, fmt.Errorf("expire queue entries: %w", err))
	}
	result.ExpiredQueues = expired

	paired, err := s.matchmaking.PairWaiting(ctx, s.cfg.BatchSize)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to pair waiting queue entries")
		errs = append(errs, fmt.Errorf("pair queue entries: %w", err))
	}
	result.PairedQueues = paired

	deleted, err := s.queueRepo.DeleteFinishedBefore(ctx, now.Add(-s.cfg.QueueRetention))
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to delete finished queue entries")
		errs = append(errs, fmt.Errorf("delete queue entries: %w", err))
	}
	result.DeletedQueues = deleted

	stale, err := s.matchRepo.GetStaleWaitingMatches(ctx, now.Add(-s.cfg.StaleMatchTimeout), s.cfg.BatchSize)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list stale matches")
		errs = append(errs, fmt.Errorf("list stale matches: %w", err))
	}

	for _, m := range stale {
		// Stop quickly on shutdown
		select {
		case <-ctx.Done():
			errs = append(errs, ctx.Err())
			return result, errors.Join(errs...)
		default:
		}

		cancelled, err := s.matchService.ExpireMatch(ctx, m.ID)
		if err != nil {
			s.logger.Error().Err(err).Int64("match_id", m.ID).Msg("failed to expire stale match")
			errs = append(errs, fmt.Errorf("expire match %d: %w", m.ID, err))
			continue
		}
		if cancelled {
			result.CancelledMatches++
		}
	}

	s.logger.Info().
		Int64("expired_queues", result.ExpiredQueues).
		Int("paired_queues", result.PairedQueues).
		Int64("deleted_queues", result.DeletedQueues).
		Int("stale_matches", len(stale)).
		Int("cancelled_matches", result.CancelledMatches).
		Msg("reconciliation sweep completed")

	return result, errors.Join(errs...)
}
