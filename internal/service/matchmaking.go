package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"token-arena/internal/model"
	"token-arena/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type MatchmakingServiceImpl struct {
	queueRepo repository.QueueRepository
	matchRepo repository.MatchRepository
	gameRepo  repository.GameRepository
	userRepo  repository.UserRepository
	ledger    TokenLedger
	dbManager repository.DBManager
	events    EventPublisher
	queueTTL  time.Duration
	logger    zerolog.Logger
	now       func() time.Time
}

func NewMatchmakingService(
	queueRepo repository.QueueRepository,
	matchRepo repository.MatchRepository,
	gameRepo repository.GameRepository,
	userRepo repository.UserRepository,
	ledger TokenLedger,
	dbManager repository.DBManager,
	events EventPublisher,
	queueTTL time.Duration,
	logger zerolog.Logger,
) MatchmakingService {
	if events == nil {
		events = NopPublisher{}
	}
	return &MatchmakingServiceImpl{
		queueRepo: queueRepo,
		matchRepo: matchRepo,
		gameRepo:  gameRepo,
		userRepo:  userRepo,
		ledger:    ledger,
		dbManager: dbManager,
		events:    events,
		queueTTL:  queueTTL,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

const maxClaimAttempts = 3

// errOpponentShort marks a claimed opponent whose balance no longer covers the
// bet once their row is locked; the enqueue rolls back and claims again.
var errOpponentShort = errors.New("claimed opponent cannot cover the bet")

// Enqueue pairs the caller with the oldest compatible waiting entry, or parks
// a new entry until queueTTL elapses. Entries hold no escrow; both bets are
// taken when the match is formed.
func (s *MatchmakingServiceImpl) Enqueue(ctx context.Context, userID int64, req *model.EnqueueRequest) (*model.EnqueueResult, error) {
	game, bet, err := validateBet(ctx, s.gameRepo, req.GameID, req.BetAmount)
	if err != nil {
		return nil, err
	}

	var result *model.EnqueueResult
	for attempt := 1; ; attempt++ {
		result, err = s.enqueueOnce(ctx, userID, game, bet)
		if !errors.Is(err, errOpponentShort) {
			break
		}
		if attempt == maxClaimAttempts {
			return nil, fmt.Errorf("%w: no queued opponent could cover the bet", model.ErrMatchStateConflict)
		}
		s.logger.Debug().Int64("user_id", userID).Int("attempt", attempt).Msg("claimed opponent short of tokens, claiming again")
	}
	if err != nil {
		return nil, err
	}

	if result.Match != nil {
		s.logger.Info().
			Int64("match_id", result.Match.ID).
			Int64("player1_id", result.Match.Player1ID).
			Int64("player2_id", userID).
			Str("match_type", game.Code).
			Int64("bet_amount", bet).
			Msg("matchmaking paired players")
		s.publishCreated(ctx, result.Match)
	} else {
		s.logger.Info().
			Int64("entry_id", result.Entry.ID).
			Int64("user_id", userID).
			Str("match_type", game.Code).
			Time("expires_at", result.Entry.ExpiresAt).
			Msg("queued for matchmaking")
	}

	return result, nil
}

func (s *MatchmakingServiceImpl) enqueueOnce(ctx context.Context, userID int64, game *model.Game, bet int64) (*model.EnqueueResult, error) {
	result := &model.EnqueueResult{}
	now := s.now()

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := s.queueRepo.ExpireUserEntries(ctx, userID, now, tx); err != nil {
			return fmt.Errorf("expire own entries: %w", err)
		}

		live, err := s.queueRepo.HasLiveEntry(ctx, userID, now, tx)
		if err != nil {
			return fmt.Errorf("check live entry: %w", err)
		}
		if live {
			return model.ErrAlreadyQueued
		}

		balance, err := s.userRepo.GetBalance(ctx, userID, tx)
		if err != nil {
			return fmt.Errorf("get balance: %w", err)
		}
		if balance < bet {
			return model.ErrInsufficientFunds
		}

		opponent, err := s.queueRepo.ClaimOpponent(ctx, userID, game.Code, bet, now, tx)
		if err != nil {
			return fmt.Errorf("claim opponent: %w", err)
		}

		if opponent == nil {
			entry := &model.QueueEntry{
				UserID:    userID,
				GameID:    game.ID,
				BetAmount: bet,
				MatchType: game.Code,
				Status:    model.QueueWaiting,
				ExpiresAt: now.Add(s.queueTTL),
			}
			if err := s.queueRepo.InsertEntry(ctx, entry, tx); err != nil {
				return fmt.Errorf("insert queue entry: %w", err)
			}
			result.Entry = entry
			return nil
		}

		match, err := s.formMatch(ctx, game, opponent, userID, bet, now, tx)
		if err != nil {
			return err
		}
		result.Match = match
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// PairWaiting walks the oldest live entries and pairs each with a compatible
// parked opponent. Two players enqueuing at the same moment cannot see each
// other's uncommitted entry, so both park; this pass joins them.
func (s *MatchmakingServiceImpl) PairWaiting(ctx context.Context, limit int) (int, error) {
	now := s.now()
	entries, err := s.queueRepo.ListWaiting(ctx, now, limit)
	if err != nil {
		return 0, fmt.Errorf("list waiting entries: %w", err)
	}

	paired := 0
	var errs []error
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return paired, err
		}

		match, err := s.pairEntry(ctx, entry.ID, now)
		if err != nil {
			s.logger.Error().Err(err).Int64("entry_id", entry.ID).Msg("failed to pair queue entry")
			errs = append(errs, fmt.Errorf("pair entry %d: %w", entry.ID, err))
			continue
		}
		if match == nil {
			continue
		}

		paired++
		s.logger.Info().
			Int64("match_id", match.ID).
			Int64("player1_id", match.Player1ID).
			Int64("player2_id", *match.Player2ID).
			Int64("bet_amount", match.BetAmount).
			Msg("matchmaking paired parked players")
		s.publishCreated(ctx, match)
	}
	return paired, errors.Join(errs...)
}

// pairEntry returns nil when the entry was already taken, its owner can no
// longer cover the bet, or no compatible opponent is parked.
func (s *MatchmakingServiceImpl) pairEntry(ctx context.Context, entryID int64, now time.Time) (*model.Match, error) {
	var match *model.Match

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		anchor, err := s.queueRepo.LockWaitingEntry(ctx, entryID, now, tx)
		if err != nil {
			return fmt.Errorf("lock entry: %w", err)
		}
		if anchor == nil {
			return nil
		}

		balance, err := s.userRepo.GetBalance(ctx, anchor.UserID, tx)
		if err != nil {
			return fmt.Errorf("get balance: %w", err)
		}
		if balance < anchor.BetAmount {
			return nil
		}

		claimed, err := s.queueRepo.ClaimOpponent(ctx, anchor.UserID, anchor.MatchType, anchor.BetAmount, now, tx)
		if err != nil {
			return fmt.Errorf("claim opponent: %w", err)
		}
		if claimed == nil {
			return nil
		}

		game, err := s.gameRepo.GetGame(ctx, anchor.GameID, tx)
		if err != nil {
			return fmt.Errorf("get game: %w", err)
		}

		// the older entry takes the first seat
		m, err := s.formMatch(ctx, game, anchor, claimed.UserID, anchor.BetAmount, now, tx)
		if err != nil {
			return err
		}
		marked, err := s.queueRepo.MarkMatched(ctx, claimed.ID, m.ID, tx)
		if err != nil {
			return fmt.Errorf("mark entry matched: %w", err)
		}
		if !marked {
			return fmt.Errorf("%w: queue entry #%d is no longer waiting", model.ErrMatchStateConflict, claimed.ID)
		}
		match = m
		return nil
	})
	if errors.Is(err, errOpponentShort) || errors.Is(err, model.ErrInsufficientFunds) {
		// a balance moved under us; the entry stays parked for the next pass
		s.logger.Debug().Int64("entry_id", entryID).Msg("pairing skipped, player short of tokens")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return match, nil
}

func (s *MatchmakingServiceImpl) publishCreated(ctx context.Context, match *model.Match) {
	if err := s.events.PublishMatchEvent(ctx, model.NewMatchEvent(model.EventMatchCreated, match)); err != nil {
		s.logger.Warn().Err(err).Int64("match_id", match.ID).Msg("failed to publish match event")
	}
}

// formMatch seats the claimed opponent as player1, escrows both bets and
// closes the opponent's entry. A shortfall on the opponent's side is reported
// as errOpponentShort.
func (s *MatchmakingServiceImpl) formMatch(ctx context.Context, game *model.Game, opponent *model.QueueEntry, userID, bet int64, now time.Time, tx pgx.Tx) (*model.Match, error) {
	match := &model.Match{
		GameID:    game.ID,
		Player1ID: opponent.UserID,
		Player2ID: &userID,
		BetAmount: bet,
		Status:    model.MatchInProgress,
		StartedAt: &now,
	}
	if err := s.matchRepo.InsertMatch(ctx, match, tx); err != nil {
		return nil, fmt.Errorf("insert match: %w", err)
	}

	players := []int64{opponent.UserID, userID}
	if players[0] > players[1] {
		players[0], players[1] = players[1], players[0]
	}
	for _, playerID := range players {
		_, err := s.ledger.DebitTx(ctx, &model.LedgerEntry{
			UserID:      playerID,
			MatchID:     &match.ID,
			Amount:      bet,
			Type:        model.TransactionBet,
			Description: fmt.Sprintf("bet on %s match #%d", game.Name, match.ID),
		}, tx)
		if err != nil {
			if errors.Is(err, model.ErrInsufficientFunds) && playerID == opponent.UserID {
				return nil, errOpponentShort
			}
			return nil, err
		}
	}

	marked, err := s.queueRepo.MarkMatched(ctx, opponent.ID, match.ID, tx)
	if err != nil {
		return nil, fmt.Errorf("mark entry matched: %w", err)
	}
	if !marked {
		return nil, fmt.Errorf("%w: queue entry #%d is no longer waiting", model.ErrMatchStateConflict, opponent.ID)
	}
	return match, nil
}

func (s *MatchmakingServiceImpl) CancelEntry(ctx context.Context, userID, entryID int64) error {
	return s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		cancelled, err := s.queueRepo.CancelIfWaiting(ctx, entryID, userID, s.now(), tx)
		if err != nil {
			return fmt.Errorf("cancel queue entry: %w", err)
		}
		if cancelled {
			s.logger.Info().Int64("entry_id", entryID).Int64("user_id", userID).Msg("queue entry cancelled")
			return nil
		}

		entry, err := s.queueRepo.GetEntry(ctx, entryID, tx)
		if err != nil {
			return fmt.Errorf("get queue entry: %w", err)
		}
		if entry.UserID != userID {
			return model.ErrForbidden
		}
		return fmt.Errorf("%w: queue entry is %s", model.ErrMatchStateConflict, entry.EffectiveStatus(s.now()))
	})
}

func (s *MatchmakingServiceImpl) GetEntry(ctx context.Context, userID, entryID int64) (*model.QueueEntry, error) {
	entry, err := s.queueRepo.GetEntry(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("get queue entry: %w", err)
	}
	if entry.UserID != userID {
		return nil, model.ErrForbidden
	}

	entry.Status = entry.EffectiveStatus(s.now())
	return entry, nil
}
