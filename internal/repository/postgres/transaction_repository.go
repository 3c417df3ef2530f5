package postgres

import (
	"context"
	"fmt"
	"token-arena/internal/model"
	"token-arena/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.TransactionRepository = (*TransactionRepositoryImpl)(nil)

const transactionColumns = `id, user_id, match_id, type, amount, description, created_at`

// TransactionRepositoryImpl is the PostgreSQL implementation of TransactionRepository
type TransactionRepositoryImpl struct {
	*TransactionManager
}

func NewTransactionRepository(pool *pgxpool.Pool) repository.TransactionRepository {
	return &TransactionRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// InsertTransaction appends a transaction record
func (r *TransactionRepositoryImpl) InsertTransaction(ctx context.Context, trans *model.Transaction, tx pgx.Tx) error {
	query := `
        INSERT INTO transactions (user_id, match_id, type, amount, description)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	err := tx.QueryRow(ctx, query, trans.UserID, trans.MatchID, trans.Type, trans.Amount, trans.Description).
		Scan(&trans.ID, &trans.CreatedAt)

	if err != nil {
		// uq_transactions_match_bet / uq_transactions_match_settlement
		if isUniqueViolation(err) {
			return model.ErrDuplicateTransaction
		}
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// GetTransactionsByUser retrieves paginated transactions for a user
func (r *TransactionRepositoryImpl) GetTransactionsByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions WHERE user_id = $1
        ORDER BY created_at DESC, id DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	return collectTransactions(rows)
}

// GetTransactionsByMatch retrieves the escrow and settlement rows of a match
func (r *TransactionRepositoryImpl) GetTransactionsByMatch(ctx context.Context, matchID int64, tx ...pgx.Tx) ([]*model.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions WHERE match_id = $1
        ORDER BY id`

	rows, err := r.getExecutor(tx...).Query(ctx, query, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query match transactions: %w", err)
	}
	return collectTransactions(rows)
}

// FindBalanceDrift compares every cached balance against its transaction sum
func (r *TransactionRepositoryImpl) FindBalanceDrift(ctx context.Context, limit int) ([]*model.BalanceDrift, error) {
	query := `
        SELECT u.id, u.balance, COALESCE(SUM(t.amount), 0)::BIGINT AS ledger_balance
        FROM users u
        LEFT JOIN transactions t ON t.user_id = u.id
        GROUP BY u.id, u.balance
        HAVING u.balance <> COALESCE(SUM(t.amount), 0)
        ORDER BY u.id
        LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query balance drift: %w", err)
	}
	defer rows.Close()

	var drifts []*model.BalanceDrift
	for rows.Next() {
		d := &model.BalanceDrift{}
		if err := rows.Scan(&d.UserID, &d.Balance, &d.LedgerBalance); err != nil {
			return nil, fmt.Errorf("failed to scan balance drift: %w", err)
		}
		drifts = append(drifts, d)
	}
	return drifts, rows.Err()
}

func collectTransactions(rows pgx.Rows) ([]*model.Transaction, error) {
	defer rows.Close()

	var transactions []*model.Transaction
	for rows.Next() {
		trans := &model.Transaction{}
		if err := rows.Scan(&trans.ID, &trans.UserID, &trans.MatchID, &trans.Type, &trans.Amount, &trans.Description, &trans.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, trans)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return transactions, nil
}
