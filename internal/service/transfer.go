package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"token-arena/internal/model"
	"token-arena/internal/repository"

	"github.com/rs/zerolog"
)

type TransferServiceImpl struct {
	userRepo repository.UserRepository
	ledger   TokenLedger
	logger   zerolog.Logger
}

func NewTransferService(userRepo repository.UserRepository, ledger TokenLedger, logger zerolog.Logger) TransferService {
	return &TransferServiceImpl{
		userRepo: userRepo,
		ledger:   ledger,
		logger:   logger,
	}
}

func (s *TransferServiceImpl) Transfer(ctx context.Context, senderID int64, req *model.TransferRequest) (*model.TransferResponse, error) {
	username := strings.TrimSpace(req.RecipientUsername)
	if username == "" {
		return nil, model.ErrRecipientNotFound
	}

	amount, err := model.ParseTokenAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	recipient, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrRecipientNotFound
		}
		return nil, fmt.Errorf("get recipient: %w", err)
	}
	if recipient.ID == senderID {
		return nil, model.ErrSelfTransfer
	}

	balances, err := s.ledger.TransferAtomic(ctx, senderID, recipient.ID, amount,
		fmt.Sprintf("transfer to %s", recipient.Username))
	if err != nil {
		return nil, err
	}

	return &model.TransferResponse{
		SenderBalance:    balances.SenderBalance,
		RecipientBalance: balances.RecipientBalance,
	}, nil
}

// GrantBonus credits tokens issued by the operator
func (s *TransferServiceImpl) GrantBonus(ctx context.Context, userID int64, req *model.BonusRequest) (*model.BalanceResponse, error) {
	amount, err := model.ParseTokenAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = "bonus"
	}

	balance, err := s.ledger.Credit(ctx, &model.LedgerEntry{
		UserID:      userID,
		Amount:      amount,
		Type:        model.TransactionBonus,
		Description: description,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", userID).Int64("amount", amount).Msg("bonus granted")

	return &model.BalanceResponse{UserID: userID, Balance: balance}, nil
}
