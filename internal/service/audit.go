package service

import (
	"context"
	"fmt"
	"token-arena/internal/model"
	"token-arena/internal/repository"

	"github.com/rs/zerolog"
)

const auditReportLimit = 100

type AuditServiceImpl struct {
	transactionRepo repository.TransactionRepository
	logger          zerolog.Logger
}

func NewAuditService(transactionRepo repository.TransactionRepository, logger zerolog.Logger) AuditService {
	return &AuditServiceImpl{
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// AuditLedger reports users whose cached balance differs from their transaction sum
func (s *AuditServiceImpl) AuditLedger(ctx context.Context) ([]*model.BalanceDrift, error) {
	drifts, err := s.transactionRepo.FindBalanceDrift(ctx, auditReportLimit)
	if err != nil {
		return nil, fmt.Errorf("find balance drift: %w", err)
	}

	for _, d := range drifts {
		s.logger.Error().
			Int64("user_id", d.UserID).
			Int64("balance", d.Balance).
			Int64("ledger_balance", d.LedgerBalance).
			Msg("balance does not match transaction log")
	}
	if len(drifts) == 0 {
		s.logger.Debug().Msg("ledger audit found no drift")
	}

	return drifts, nil
}
