package postgres

import (
	"context"
	"errors"
	"fmt"
	"token-arena/internal/model"
	"token-arena/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.UserRepository = (*UserRepositoryImpl)(nil)

const userColumns = `id, username, balance, version, games_played, games_won, created_at, updated_at`

// UserRepositoryImpl is the PostgreSQL implementation of UserRepository
type UserRepositoryImpl struct {
	*TransactionManager
}

func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &UserRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Username, &user.Balance, &user.Version,
		&user.GamesPlayed, &user.GamesWon, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetUserForUpdate retrieves a user with row-level lock
func (r *UserRepositoryImpl) GetUserForUpdate(ctx context.Context, userID int64, tx pgx.Tx) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`

	user, err := scanUser(tx.QueryRow(ctx, query, userID))
	if err != nil && !errors.Is(err, model.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to get user for update: %w", err)
	}
	return user, err
}

// GetUser retrieves a user without locking
func (r *UserRepositoryImpl) GetUser(ctx context.Context, userID int64, tx ...pgx.Tx) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.getExecutor(tx...).QueryRow(ctx, query, userID))
	if err != nil && !errors.Is(err, model.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, err
}

// GetUserByUsername resolves a username (case-insensitive) to a user
func (r *UserRepositoryImpl) GetUserByUsername(ctx context.Context, username string, tx ...pgx.Tx) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(username) = LOWER($1)`

	user, err := scanUser(r.getExecutor(tx...).QueryRow(ctx, query, username))
	if err != nil && !errors.Is(err, model.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, err
}

// GetBalance get the current balance for a user
func (r *UserRepositoryImpl) GetBalance(ctx context.Context, userID int64, tx ...pgx.Tx) (int64, error) {
	query := `SELECT balance FROM users WHERE id = $1`
	var balance int64
	executor := r.getExecutor(tx...)
	err := executor.QueryRow(ctx, query, userID).Scan(&balance)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, model.ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

// UpdateBalance update user balance
func (r *UserRepositoryImpl) UpdateBalance(ctx context.Context, userID int64, balance int64, tx pgx.Tx) error {
	query := `
        UPDATE users
        SET balance = $1, version = version + 1, updated_at = NOW()
        WHERE id = $2`

	commandTag, err := tx.Exec(ctx, query, balance, userID)
	if err != nil {
		// CONSTRAINT balance_non_negative CHECK (balance >= 0)
		if isPgError(err, pgerrcode.CheckViolation) {
			return model.ErrInsufficientFunds
		}
		return fmt.Errorf("failed to update balance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

// RecordMatchResult bumps the player's aggregate stats
func (r *UserRepositoryImpl) RecordMatchResult(ctx context.Context, userID int64, won bool, tx pgx.Tx) error {
	query := `
        UPDATE users
        SET games_played = games_played + 1,
            games_won = games_won + CASE WHEN $2 THEN 1 ELSE 0 END,
            updated_at = NOW()
        WHERE id = $1`

	commandTag, err := tx.Exec(ctx, query, userID, won)
	if err != nil {
		return fmt.Errorf("failed to record match result: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}
