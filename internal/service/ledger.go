package service

import (
	"context"
	"fmt"
	"token-arena/internal/model"
	"token-arena/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type LedgerServiceImpl struct {
	userRepo        repository.UserRepository
	transactionRepo repository.TransactionRepository
	dbManager       repository.DBManager
	logger          zerolog.Logger
}

func NewLedgerService(
	userRepo repository.UserRepository,
	transactionRepo repository.TransactionRepository,
	dbManager repository.DBManager,
	logger zerolog.Logger,
) TokenLedger {
	return &LedgerServiceImpl{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		dbManager:       dbManager,
		logger:          logger,
	}
}

func (s *LedgerServiceImpl) Debit(ctx context.Context, entry *model.LedgerEntry) (int64, error) {
	var balance int64
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		balance, err = s.DebitTx(ctx, entry, tx)
		return err
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (s *LedgerServiceImpl) Credit(ctx context.Context, entry *model.LedgerEntry) (int64, error) {
	var balance int64
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		balance, err = s.CreditTx(ctx, entry, tx)
		return err
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (s *LedgerServiceImpl) DebitTx(ctx context.Context, entry *model.LedgerEntry, tx pgx.Tx) (int64, error) {
	return s.apply(ctx, entry, -entry.Amount, tx)
}

func (s *LedgerServiceImpl) CreditTx(ctx context.Context, entry *model.LedgerEntry, tx pgx.Tx) (int64, error) {
	return s.apply(ctx, entry, entry.Amount, tx)
}

// apply locks the user, moves the balance by delta and appends the record
func (s *LedgerServiceImpl) apply(ctx context.Context, entry *model.LedgerEntry, delta int64, tx pgx.Tx) (int64, error) {
	if entry.Amount <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive", model.ErrInvalidAmount)
	}

	user, err := s.userRepo.GetUserForUpdate(ctx, entry.UserID, tx)
	if err != nil {
		return 0, fmt.Errorf("get user for update: %w", err)
	}

	newBalance := user.Balance + delta
	if newBalance < 0 {
		return 0, model.ErrInsufficientFunds
	}

	if err := s.userRepo.UpdateBalance(ctx, entry.UserID, newBalance, tx); err != nil {
		return 0, fmt.Errorf("update balance: %w", err)
	}

	err = s.transactionRepo.InsertTransaction(ctx, &model.Transaction{
		UserID:      entry.UserID,
		MatchID:     entry.MatchID,
		Type:        entry.Type,
		Amount:      delta,
		Description: entry.Description,
	}, tx)
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}

	s.logger.Debug().
		Int64("user_id", entry.UserID).
		Str("type", entry.Type.String()).
		Int64("amount", delta).
		Int64("new_balance", newBalance).
		Msg("ledger entry applied")

	return newBalance, nil
}

func (s *LedgerServiceImpl) TransferAtomic(ctx context.Context, fromID, toID, amount int64, description string) (*model.TransferBalances, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", model.ErrInvalidAmount)
	}
	if fromID == toID {
		return nil, model.ErrSelfTransfer
	}

	result := &model.TransferBalances{}
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		// Lock both rows in ascending id order so opposite transfers cannot deadlock
		first, second := fromID, toID
		if first > second {
			first, second = second, first
		}
		for _, id := range []int64{first, second} {
			if _, err := s.userRepo.GetUserForUpdate(ctx, id, tx); err != nil {
				return fmt.Errorf("lock user %d: %w", id, err)
			}
		}

		senderBalance, err := s.DebitTx(ctx, &model.LedgerEntry{
			UserID:      fromID,
			Amount:      amount,
			Type:        model.TransactionTransferOut,
			Description: description,
		}, tx)
		if err != nil {
			return err
		}

		recipientBalance, err := s.CreditTx(ctx, &model.LedgerEntry{
			UserID:      toID,
			Amount:      amount,
			Type:        model.TransactionTransferIn,
			Description: description,
		}, tx)
		if err != nil {
			return err
		}

		result.SenderBalance = senderBalance
		result.RecipientBalance = recipientBalance
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("from_user_id", fromID).
		Int64("to_user_id", toID).
		Int64("amount", amount).
		Msg("transfer completed")

	return result, nil
}

func (s *LedgerServiceImpl) GetBalance(ctx context.Context, userID int64) (*model.BalanceResponse, error) {
	balance, err := s.userRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}

	return &model.BalanceResponse{
		UserID:  userID,
		Balance: balance,
	}, nil
}

func (s *LedgerServiceImpl) GetTransactionsByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error) {
	transactions, err := s.transactionRepo.GetTransactionsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get user transactions: %w", err)
	}

	return transactions, nil
}
