package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"token-arena/internal/model"
	"token-arena/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type MatchServiceImpl struct {
	matchRepo repository.MatchRepository
	gameRepo  repository.GameRepository
	userRepo  repository.UserRepository
	ledger    TokenLedger
	dbManager repository.DBManager
	events    EventPublisher
	logger    zerolog.Logger
	now       func() time.Time
}

func NewMatchService(
	matchRepo repository.MatchRepository,
	gameRepo repository.GameRepository,
	userRepo repository.UserRepository,
	ledger TokenLedger,
	dbManager repository.DBManager,
	events EventPublisher,
	logger zerolog.Logger,
) MatchService {
	if events == nil {
		events = NopPublisher{}
	}
	return &MatchServiceImpl{
		matchRepo: matchRepo,
		gameRepo:  gameRepo,
		userRepo:  userRepo,
		ledger:    ledger,
		dbManager: dbManager,
		events:    events,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// validateBet resolves the game and checks the bet against its range
func validateBet(ctx context.Context, gameRepo repository.GameRepository, gameID int64, betAmount json.Number) (*model.Game, int64, error) {
	bet, err := model.ParseTokenAmount(betAmount)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", model.ErrInvalidBet, err)
	}

	game, err := gameRepo.GetGame(ctx, gameID)
	if err != nil {
		return nil, 0, fmt.Errorf("get game: %w", err)
	}
	if !game.Active {
		return nil, 0, fmt.Errorf("%w: game %s is not active", model.ErrGameNotFound, game.Code)
	}
	if bet < game.MinBet || bet > game.MaxBet {
		return nil, 0, fmt.Errorf("%w: bet must be between %d and %d", model.ErrInvalidBet, game.MinBet, game.MaxBet)
	}
	return game, bet, nil
}

func (s *MatchServiceImpl) CreateMatch(ctx context.Context, requesterID int64, req *model.CreateMatchRequest) (*model.Match, error) {
	game, bet, err := validateBet(ctx, s.gameRepo, req.GameID, req.BetAmount)
	if err != nil {
		return nil, err
	}

	match := &model.Match{
		GameID:    game.ID,
		Player1ID: requesterID,
		BetAmount: bet,
		Status:    model.MatchWaiting,
	}

	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.matchRepo.InsertMatch(ctx, match, tx); err != nil {
			return fmt.Errorf("insert match: %w", err)
		}

		_, err := s.ledger.DebitTx(ctx, &model.LedgerEntry{
			UserID:      requesterID,
			MatchID:     &match.ID,
			Amount:      bet,
			Type:        model.TransactionBet,
			Description: fmt.Sprintf("bet on %s match #%d", game.Name, match.ID),
		}, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("match_id", match.ID).
		Int64("user_id", requesterID).
		Str("game", game.Code).
		Int64("bet_amount", bet).
		Msg("match created")
	s.publish(ctx, model.EventMatchCreated, match)

	return match, nil
}

func (s *MatchServiceImpl) JoinMatch(ctx context.Context, matchID, joinerID int64) (*model.Match, error) {
	var match *model.Match

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		joined, err := s.matchRepo.JoinIfWaiting(ctx, matchID, joinerID, s.now(), tx)
		if err != nil {
			return fmt.Errorf("join match: %w", err)
		}
		if joined == nil {
			return s.classifyJoinMiss(ctx, matchID, joinerID, tx)
		}

		_, err = s.ledger.DebitTx(ctx, &model.LedgerEntry{
			UserID:      joinerID,
			MatchID:     &joined.ID,
			Amount:      joined.BetAmount,
			Type:        model.TransactionBet,
			Description: fmt.Sprintf("bet on match #%d", joined.ID),
		}, tx)
		if err != nil {
			return err
		}

		match = joined
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("match_id", matchID).Int64("user_id", joinerID).Msg("match joined")
	s.publish(ctx, model.EventMatchJoined, match)

	return match, nil
}

// classifyJoinMiss explains why the conditional join touched no row
func (s *MatchServiceImpl) classifyJoinMiss(ctx context.Context, matchID, joinerID int64, tx pgx.Tx) error {
	current, err := s.matchRepo.GetMatch(ctx, matchID, tx)
	if err != nil {
		if errors.Is(err, model.ErrMatchNotFound) {
			return model.ErrMatchNotFound
		}
		return fmt.Errorf("get match: %w", err)
	}
	if current.Status == model.MatchWaiting && current.Player1ID == joinerID {
		return model.ErrSelfJoin
	}
	return model.ErrMatchNotAvailable
}

func (s *MatchServiceImpl) CancelMatch(ctx context.Context, matchID, requesterID int64) (*model.Match, error) {
	var match *model.Match

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		cancelled, err := s.cancelAndRefund(ctx, matchID, &requesterID, tx)
		if err != nil {
			return err
		}
		if cancelled == nil {
			current, err := s.matchRepo.GetMatch(ctx, matchID, tx)
			if err != nil {
				if errors.Is(err, model.ErrMatchNotFound) {
					return model.ErrMatchNotFound
				}
				return fmt.Errorf("get match: %w", err)
			}
			if current.Player1ID != requesterID {
				return model.ErrForbidden
			}
			return model.ErrMatchNotAvailable
		}
		match = cancelled
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("match_id", matchID).Int64("user_id", requesterID).Msg("match cancelled")
	s.publish(ctx, model.EventMatchCancelled, match)

	return match, nil
}

func (s *MatchServiceImpl) ExpireMatch(ctx context.Context, matchID int64) (bool, error) {
	var match *model.Match

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		match, err = s.cancelAndRefund(ctx, matchID, nil, tx)
		return err
	})
	if err != nil {
		return false, err
	}
	if match == nil {
		s.logger.Debug().Int64("match_id", matchID).Msg("match already left waiting state")
		return false, nil
	}

	s.logger.Info().Int64("match_id", matchID).Int64("user_id", match.Player1ID).Msg("stale match expired and refunded")
	s.publish(ctx, model.EventMatchExpired, match)

	return true, nil
}

// cancelAndRefund returns nil when the match was not cancellable
func (s *MatchServiceImpl) cancelAndRefund(ctx context.Context, matchID int64, requesterID *int64, tx pgx.Tx) (*model.Match, error) {
	cancelled, err := s.matchRepo.CancelIfWaiting(ctx, matchID, requesterID, tx)
	if err != nil {
		return nil, fmt.Errorf("cancel match: %w", err)
	}
	if cancelled == nil {
		return nil, nil
	}

	_, err = s.ledger.CreditTx(ctx, &model.LedgerEntry{
		UserID:      cancelled.Player1ID,
		MatchID:     &cancelled.ID,
		Amount:      cancelled.BetAmount,
		Type:        model.TransactionRefund,
		Description: fmt.Sprintf("refund for cancelled match #%d", cancelled.ID),
	}, tx)
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

func (s *MatchServiceImpl) CompleteMatch(ctx context.Context, matchID, actorID int64, req *model.CompleteMatchRequest) (*model.Match, error) {
	current, err := s.matchRepo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	}
	if !current.HasPlayer(actorID) {
		return nil, model.ErrForbidden
	}
	if req.WinnerID != nil && !current.HasPlayer(*req.WinnerID) {
		return nil, model.ErrInvalidWinner
	}

	var match *model.Match
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		completed, err := s.matchRepo.CompleteIfInProgress(ctx, matchID, req.WinnerID, req.GameData, s.now(), tx)
		if err != nil {
			return fmt.Errorf("complete match: %w", err)
		}
		if completed == nil {
			return fmt.Errorf("%w: match #%d is not in progress", model.ErrMatchStateConflict, matchID)
		}

		if err := s.settle(ctx, completed, tx); err != nil {
			return err
		}

		for _, playerID := range completed.Players() {
			won := completed.WinnerID != nil && *completed.WinnerID == playerID
			if err := s.userRepo.RecordMatchResult(ctx, playerID, won, tx); err != nil {
				return fmt.Errorf("record match result: %w", err)
			}
		}

		match = completed
		return nil
	})
	if err != nil {
		return nil, err
	}

	event := s.logger.Info().Int64("match_id", matchID).Int64("actor_id", actorID)
	if match.WinnerID != nil {
		event = event.Int64("winner_id", *match.WinnerID)
	}
	event.Msg("match completed")
	s.publish(ctx, model.EventMatchCompleted, match)

	return match, nil
}

// settle pays the winner the whole pot or refunds each seat on a draw
func (s *MatchServiceImpl) settle(ctx context.Context, m *model.Match, tx pgx.Tx) error {
	if m.WinnerID != nil {
		_, err := s.ledger.CreditTx(ctx, &model.LedgerEntry{
			UserID:      *m.WinnerID,
			MatchID:     &m.ID,
			Amount:      m.BetAmount * 2,
			Type:        model.TransactionWin,
			Description: fmt.Sprintf("won match #%d", m.ID),
		}, tx)
		return err
	}

	for _, playerID := range m.Players() {
		_, err := s.ledger.CreditTx(ctx, &model.LedgerEntry{
			UserID:      playerID,
			MatchID:     &m.ID,
			Amount:      m.BetAmount,
			Type:        model.TransactionRefund,
			Description: fmt.Sprintf("draw refund for match #%d", m.ID),
		}, tx)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *MatchServiceImpl) GetMatch(ctx context.Context, matchID int64) (*model.Match, error) {
	match, err := s.matchRepo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	}
	return match, nil
}

func (s *MatchServiceImpl) ListOpenMatches(ctx context.Context, gameID int64, limit, offset int) ([]*model.Match, error) {
	matches, err := s.matchRepo.ListOpenMatches(ctx, gameID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list open matches: %w", err)
	}
	return matches, nil
}

func (s *MatchServiceImpl) ListGames(ctx context.Context) ([]*model.Game, error) {
	games, err := s.gameRepo.ListActiveGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

func (s *MatchServiceImpl) publish(ctx context.Context, eventType model.MatchEventType, m *model.Match) {
	if err := s.events.PublishMatchEvent(ctx, model.NewMatchEvent(eventType, m)); err != nil {
		s.logger.Warn().Err(err).Int64("match_id", m.ID).Str("event", string(eventType)).Msg("failed to publish match event")
	}
}
