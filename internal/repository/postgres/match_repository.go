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

var _ repository.MatchRepository = (*MatchRepositoryImpl)(nil)

const matchColumns = `id, game_id, player1_id, player2_id, bet_amount, status, winner_id, game_data, created_at, started_at, completed_at`

// MatchRepositoryImpl is the PostgreSQL implementation of MatchRepository.
// State changes are single conditional UPDATEs so that concurrent callers
// racing on the same match see exactly one winner.
type MatchRepositoryImpl struct {
	*TransactionManager
}

func NewMatchRepository(pool *pgxpool.Pool) repository.MatchRepository {
	return &MatchRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func scanMatch(row pgx.Row) (*model.Match, error) {
	m := &model.Match{}
	var gameData []byte
	err := row.Scan(&m.ID, &m.GameID, &m.Player1ID, &m.Player2ID, &m.BetAmount, &m.Status,
		&m.WinnerID, &gameData, &m.CreatedAt, &m.StartedAt, &m.CompletedAt)
	if err != nil {
		return nil, err
	}
	if len(gameData) > 0 {
		m.GameData = gameData
	}
	return m, nil
}

// scanTransition treats "no row" as "precondition did not hold"
func scanTransition(row pgx.Row, op string) (*model.Match, error) {
	m, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to %s match: %w", op, err)
	}
	return m, nil
}

func (r *MatchRepositoryImpl) InsertMatch(ctx context.Context, match *model.Match, tx pgx.Tx) error {
	query := `
        INSERT INTO matches (game_id, player1_id, player2_id, bet_amount, status, started_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at`

	err := tx.QueryRow(ctx, query, match.GameID, match.Player1ID, match.Player2ID,
		match.BetAmount, match.Status, match.StartedAt).Scan(&match.ID, &match.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert match: %w", err)
	}
	return nil
}

func (r *MatchRepositoryImpl) GetMatch(ctx context.Context, matchID int64, tx ...pgx.Tx) (*model.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`

	m, err := scanMatch(r.getExecutor(tx...).QueryRow(ctx, query, matchID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return m, nil
}

func (r *MatchRepositoryImpl) ListOpenMatches(ctx context.Context, gameID int64, limit, offset int) ([]*model.Match, error) {
	query := `
        SELECT ` + matchColumns + `
        FROM matches
        WHERE status = 'waiting' AND ($1::BIGINT = 0 OR game_id = $1)
        ORDER BY created_at, id
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, gameID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query open matches: %w", err)
	}
	return collectMatches(rows)
}

func (r *MatchRepositoryImpl) JoinIfWaiting(ctx context.Context, matchID, playerID int64, startedAt time.Time, tx pgx.Tx) (*model.Match, error) {
	query := `
        UPDATE matches
        SET player2_id = $2, status = 'in_progress', started_at = $3
        WHERE id = $1
          AND status = 'waiting'
          AND player2_id IS NULL
          AND player1_id <> $2
        RETURNING ` + matchColumns

	return scanTransition(tx.QueryRow(ctx, query, matchID, playerID, startedAt), "join")
}

func (r *MatchRepositoryImpl) CancelIfWaiting(ctx context.Context, matchID int64, requesterID *int64, tx pgx.Tx) (*model.Match, error) {
	query := `
        UPDATE matches
        SET status = 'cancelled', completed_at = NOW()
        WHERE id = $1
          AND status = 'waiting'
          AND player2_id IS NULL
          AND ($2::BIGINT IS NULL OR player1_id = $2)
        RETURNING ` + matchColumns

	return scanTransition(tx.QueryRow(ctx, query, matchID, requesterID), "cancel")
}

func (r *MatchRepositoryImpl) CompleteIfInProgress(ctx context.Context, matchID int64, winnerID *int64, gameData []byte, completedAt time.Time, tx pgx.Tx) (*model.Match, error) {
	query := `
        UPDATE matches
        SET status = 'completed', winner_id = $2, game_data = $3, completed_at = $4
        WHERE id = $1
          AND status = 'in_progress'
          AND player2_id IS NOT NULL
        RETURNING ` + matchColumns

	var data any
	if len(gameData) > 0 {
		data = string(gameData)
	}
	return scanTransition(tx.QueryRow(ctx, query, matchID, winnerID, data, completedAt), "complete")
}

func (r *MatchRepositoryImpl) GetStaleWaitingMatches(ctx context.Context, createdBefore time.Time, limit int) ([]*model.Match, error) {
	query := `
        SELECT ` + matchColumns + `
        FROM matches
        WHERE status = 'waiting' AND player2_id IS NULL AND created_at < $1
        ORDER BY created_at
        LIMIT $2`

	rows, err := r.pool.Query(ctx, query, createdBefore, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale matches: %w", err)
	}
	return collectMatches(rows)
}

func collectMatches(rows pgx.Rows) ([]*model.Match, error) {
	defer rows.Close()

	matches := make([]*model.Match, 0)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate matches: %w", err)
	}
	return matches, nil
}
