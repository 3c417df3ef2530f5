package postgres

import (
	"context"
	"errors"
	"fmt"
	"token-arena/internal/model"
	"token-arena/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.PurchaseRepository = (*PurchaseRepositoryImpl)(nil)

type PurchaseRepositoryImpl struct {
	*TransactionManager
}

func NewPurchaseRepository(pool *pgxpool.Pool) repository.PurchaseRepository {
	return &PurchaseRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func (r *PurchaseRepositoryImpl) GetPurchase(ctx context.Context, userID int64, idempotencyKey string, tx ...pgx.Tx) (*model.Purchase, error) {
	query := `
        SELECT id, user_id, idempotency_key, amount, price::TEXT, created_at
        FROM purchases
        WHERE user_id = $1 AND idempotency_key = $2`

	p := &model.Purchase{}
	var price string
	err := r.getExecutor(tx...).QueryRow(ctx, query, userID, idempotencyKey).
		Scan(&p.ID, &p.UserID, &p.IdempotencyKey, &p.Amount, &price, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("failed to get purchase: %w", err)
	}
	if err := p.Price.UnmarshalText([]byte(price)); err != nil {
		return nil, fmt.Errorf("failed to parse purchase price %q: %w", price, err)
	}
	return p, nil
}

func (r *PurchaseRepositoryImpl) InsertPurchase(ctx context.Context, purchase *model.Purchase, tx pgx.Tx) error {
	query := `
        INSERT INTO purchases (user_id, idempotency_key, amount, price)
        VALUES ($1, $2, $3, $4::NUMERIC)
        RETURNING id, created_at`

	err := tx.QueryRow(ctx, query, purchase.UserID, purchase.IdempotencyKey, purchase.Amount,
		purchase.Price.StringFixed(2)).Scan(&purchase.ID, &purchase.CreatedAt)
	if err != nil {
		// uq_purchases_user_key
		if isUniqueViolation(err) {
			return model.ErrDuplicateTransaction
		}
		return fmt.Errorf("failed to insert purchase: %w", err)
	}
	return nil
}
