package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"token-arena/internal/model"
	"token-arena/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

const purchaseTimeout = 30 * time.Second

// rollback and check for duplicate outside tx
var errDuplicateInsertRace = errors.New("duplicate purchase insert race")

// PriceTable maps a purchasable token pack to its price
type PriceTable map[int64]decimal.Decimal

// NewPriceTable pairs denominations with prices by position
func NewPriceTable(denominations []int64, prices []string) (PriceTable, error) {
	if len(denominations) != len(prices) {
		return nil, fmt.Errorf("got %d prices for %d denominations", len(prices), len(denominations))
	}
	table := make(PriceTable, len(denominations))
	for i, amount := range denominations {
		price, err := decimal.NewFromString(prices[i])
		if err != nil {
			return nil, fmt.Errorf("price for %d tokens: %w", amount, err)
		}
		table[amount] = price
	}
	return table, nil
}

type PurchaseServiceImpl struct {
	purchaseRepo repository.PurchaseRepository
	userRepo     repository.UserRepository
	ledger       TokenLedger
	dbManager    repository.DBManager
	prices       PriceTable
	inflight     singleflight.Group
	logger       zerolog.Logger
}

func NewPurchaseService(
	purchaseRepo repository.PurchaseRepository,
	userRepo repository.UserRepository,
	ledger TokenLedger,
	dbManager repository.DBManager,
	prices PriceTable,
	logger zerolog.Logger,
) PurchaseService {
	return &PurchaseServiceImpl{
		purchaseRepo: purchaseRepo,
		userRepo:     userRepo,
		ledger:       ledger,
		dbManager:    dbManager,
		prices:       prices,
		logger:       logger,
	}
}

// Buy credits a token pack. Identical in-flight requests share one execution;
// a replayed idempotency key returns the current balance without crediting.
func (s *PurchaseServiceImpl) Buy(ctx context.Context, userID int64, req *model.PurchaseRequest, idempotencyKey string) (*model.PurchaseResponse, error) {
	amount, err := model.ParseTokenAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	price, ok := s.prices[amount]
	if !ok {
		return nil, fmt.Errorf("%w: %d tokens is not an offered pack", model.ErrInvalidDenomination, amount)
	}

	flightKey := fmt.Sprintf("%d:%d:%s", userID, amount, idempotencyKey)
	key := idempotencyKey
	if key == "" {
		key = uuid.NewString()
	}

	flight := s.inflight.DoChan(flightKey, func() (any, error) {
		// Coalesced callers share this run, so one of them going away must
		// not abort it for the rest.
		workCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), purchaseTimeout)
		defer cancel()
		return s.buy(workCtx, userID, amount, price, key)
	})

	var res singleflight.Result
	select {
	case res = <-flight:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if res.Err != nil {
		return nil, res.Err
	}

	resp := *res.Val.(*model.PurchaseResponse)
	if res.Shared {
		s.logger.Debug().Int64("user_id", userID).Int64("amount", amount).Msg("purchase coalesced with in-flight request")
	}
	return &resp, nil
}

func (s *PurchaseServiceImpl) buy(ctx context.Context, userID, amount int64, price decimal.Decimal, key string) (*model.PurchaseResponse, error) {
	var result *model.PurchaseResponse

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		existing, err := s.purchaseRepo.GetPurchase(ctx, userID, key, tx)
		if err != nil && !errors.Is(err, model.ErrPurchaseNotFound) {
			return fmt.Errorf("get purchase: %w", err)
		}
		if existing != nil {
			result, err = s.replay(ctx, existing, amount, tx)
			return err
		}

		purchase := &model.Purchase{
			UserID:         userID,
			IdempotencyKey: key,
			Amount:         amount,
			Price:          price,
		}
		if err := s.purchaseRepo.InsertPurchase(ctx, purchase, tx); err != nil {
			if errors.Is(err, model.ErrDuplicateTransaction) {
				// Another request inserted the same key, rollback tx
				return errDuplicateInsertRace
			}
			return fmt.Errorf("insert purchase: %w", err)
		}

		balance, err := s.ledger.CreditTx(ctx, &model.LedgerEntry{
			UserID:      userID,
			Amount:      amount,
			Type:        model.TransactionPurchase,
			Description: fmt.Sprintf("purchased %d tokens for %s", amount, price.StringFixed(2)),
		}, tx)
		if err != nil {
			return err
		}

		s.logger.Info().
			Int64("user_id", userID).
			Int64("amount", amount).
			Str("price", price.StringFixed(2)).
			Int64("new_balance", balance).
			Msg("purchase processed successfully")

		result = &model.PurchaseResponse{
			Status:  "success",
			Balance: balance,
			Amount:  amount,
			Price:   price.StringFixed(2),
		}
		return nil
	})

	if errors.Is(err, errDuplicateInsertRace) {
		existing, getErr := s.purchaseRepo.GetPurchase(ctx, userID, key)
		if getErr != nil {
			return nil, fmt.Errorf("get purchase after duplicate: %w", getErr)
		}
		return s.replay(ctx, existing, amount)
	}
	if err != nil {
		return nil, err
	}

	return result, nil
}

// replay answers a repeated key with the stored purchase and current balance
func (s *PurchaseServiceImpl) replay(ctx context.Context, existing *model.Purchase, amount int64, tx ...pgx.Tx) (*model.PurchaseResponse, error) {
	if existing.Amount != amount {
		return nil, fmt.Errorf("%w: key already used for %d tokens", model.ErrDuplicateRequest, existing.Amount)
	}

	balance, err := s.userRepo.GetBalance(ctx, existing.UserID, tx...)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}

	s.logger.Info().
		Int64("user_id", existing.UserID).
		Str("idempotency_key", existing.IdempotencyKey).
		Msg("purchase already processed")

	return &model.PurchaseResponse{
		Status:  "already_processed",
		Balance: balance,
		Amount:  existing.Amount,
		Price:   existing.Price.StringFixed(2),
	}, nil
}
