package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"
	"token-arena/internal/model"
	"token-arena/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.QueueRepository = (*QueueRepositoryImpl)(nil)

const queueColumns = `id, user_id, game_id, bet_amount, match_type, status, match_id, created_at, expires_at`

type QueueRepositoryImpl struct {
	*TransactionManager
}

func NewQueueRepository(pool *pgxpool.Pool) repository.QueueRepository {
	return &QueueRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func scanQueueEntry(row pgx.Row) (*model.QueueEntry, error) {
	e := &model.QueueEntry{}
	err := row.Scan(&e.ID, &e.UserID, &e.GameID, &e.BetAmount, &e.MatchType, &e.Status,
		&e.MatchID, &e.CreatedAt, &e.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *QueueRepositoryImpl) InsertEntry(ctx context.Context, entry *model.QueueEntry, tx pgx.Tx) error {
	query := `
        INSERT INTO matchmaking_queue (user_id, game_id, bet_amount, match_type, status, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at`

	err := tx.QueryRow(ctx, query, entry.UserID, entry.GameID, entry.BetAmount,
		entry.MatchType, entry.Status, entry.ExpiresAt).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		// uq_queue_user_waiting
		if isUniqueViolation(err) {
			return model.ErrAlreadyQueued
		}
		return fmt.Errorf("failed to insert queue entry: %w", err)
	}
	return nil
}

func (r *QueueRepositoryImpl) GetEntry(ctx context.Context, entryID int64, tx ...pgx.Tx) (*model.QueueEntry, error) {
	query := `SELECT ` + queueColumns + ` FROM matchmaking_queue WHERE id = $1`

	e, err := scanQueueEntry(r.getExecutor(tx...).QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrQueueEntryNotFound
		}
		return nil, fmt.Errorf("failed to get queue entry: %w", err)
	}
	return e, nil
}

// ClaimOpponent picks the oldest compatible live entry whose owner can still
// cover the bet. Rows held by a concurrent claimer are skipped.
func (r *QueueRepositoryImpl) ClaimOpponent(ctx context.Context, userID int64, matchType string, betAmount int64, now time.Time, tx pgx.Tx) (*model.QueueEntry, error) {
	query := `
        SELECT q.id, q.user_id, q.game_id, q.bet_amount, q.match_type, q.status, q.match_id, q.created_at, q.expires_at
        FROM matchmaking_queue q
        JOIN users u ON u.id = q.user_id
        WHERE q.status = 'waiting'
          AND q.expires_at > $4
          AND q.user_id <> $1
          AND q.match_type = $2
          AND q.bet_amount = $3
          AND u.balance >= $3
        ORDER BY q.created_at, q.id
        LIMIT 1
        FOR UPDATE OF q SKIP LOCKED`

	e, err := scanQueueEntry(tx.QueryRow(ctx, query, userID, matchType, betAmount, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to claim opponent: %w", err)
	}
	return e, nil
}

func (r *QueueRepositoryImpl) ListWaiting(ctx context.Context, now time.Time, limit int) ([]*model.QueueEntry, error) {
	query := `SELECT ` + queueColumns + `
        FROM matchmaking_queue
        WHERE status = 'waiting' AND expires_at > $1
        ORDER BY created_at, id
        LIMIT $2`

	rows, err := r.pool.Query(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list waiting queue entries: %w", err)
	}
	defer rows.Close()

	var entries []*model.QueueEntry
	for rows.Next() {
		e, err := scanQueueEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan queue entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate queue entries: %w", err)
	}
	return entries, nil
}

func (r *QueueRepositoryImpl) LockWaitingEntry(ctx context.Context, entryID int64, now time.Time, tx pgx.Tx) (*model.QueueEntry, error) {
	query := `SELECT ` + queueColumns + `
        FROM matchmaking_queue
        WHERE id = $1 AND status = 'waiting' AND expires_at > $2
        FOR UPDATE SKIP LOCKED`

	e, err := scanQueueEntry(tx.QueryRow(ctx, query, entryID, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock queue entry: %w", err)
	}
	return e, nil
}

func (r *QueueRepositoryImpl) MarkMatched(ctx context.Context, entryID, matchID int64, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE matchmaking_queue
        SET status = 'matched', match_id = $2
        WHERE id = $1 AND status = 'waiting'`

	tag, err := tx.Exec(ctx, query, entryID, matchID)
	if err != nil {
		return false, fmt.Errorf("failed to mark queue entry matched: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *QueueRepositoryImpl) CancelIfWaiting(ctx context.Context, entryID, userID int64, now time.Time, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE matchmaking_queue
        SET status = 'cancelled'
        WHERE id = $1 AND user_id = $2 AND status = 'waiting' AND expires_at > $3`

	tag, err := tx.Exec(ctx, query, entryID, userID, now)
	if err != nil {
		return false, fmt.Errorf("failed to cancel queue entry: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *QueueRepositoryImpl) ExpireUserEntries(ctx context.Context, userID int64, now time.Time, tx pgx.Tx) (int64, error) {
	query := `
        UPDATE matchmaking_queue
        SET status = 'expired'
        WHERE user_id = $1 AND status = 'waiting' AND expires_at <= $2`

	tag, err := tx.Exec(ctx, query, userID, now)
	if err != nil {
		return 0, fmt.Errorf("failed to expire user queue entries: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *QueueRepositoryImpl) HasLiveEntry(ctx context.Context, userID int64, now time.Time, tx pgx.Tx) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM matchmaking_queue
            WHERE user_id = $1 AND status = 'waiting' AND expires_at > $2
        )`

	var exists bool
	if err := tx.QueryRow(ctx, query, userID, now).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check live queue entry: %w", err)
	}
	return exists, nil
}

func (r *QueueRepositoryImpl) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	query := `
        UPDATE matchmaking_queue
        SET status = 'expired'
        WHERE status = 'waiting' AND expires_at <= $1`

	tag, err := r.pool.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to expire queue entries: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *QueueRepositoryImpl) DeleteFinishedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
        DELETE FROM matchmaking_queue
        WHERE status IN ('expired', 'cancelled') AND created_at < $1`

	tag, err := r.pool.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete finished queue entries: %w", err)
	}
	return tag.RowsAffected(), nil
}
