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

var _ repository.GameRepository = (*GameRepositoryImpl)(nil)

type GameRepositoryImpl struct {
	*TransactionManager
}

func NewGameRepository(pool *pgxpool.Pool) repository.GameRepository {
	return &GameRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func (r *GameRepositoryImpl) GetGame(ctx context.Context, gameID int64, tx ...pgx.Tx) (*model.Game, error) {
	query := `SELECT id, code, name, min_bet, max_bet, active FROM games WHERE id = $1`

	game := &model.Game{}
	err := r.getExecutor(tx...).QueryRow(ctx, query, gameID).
		Scan(&game.ID, &game.Code, &game.Name, &game.MinBet, &game.MaxBet, &game.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return game, nil
}

func (r *GameRepositoryImpl) ListActiveGames(ctx context.Context) ([]*model.Game, error) {
	query := `SELECT id, code, name, min_bet, max_bet, active FROM games WHERE active ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	games := make([]*model.Game, 0)
	for rows.Next() {
		game := &model.Game{}
		if err := rows.Scan(&game.ID, &game.Code, &game.Name, &game.MinBet, &game.MaxBet, &game.Active); err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, game)
	}
	return games, rows.Err()
}
