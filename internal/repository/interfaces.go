package repository

import (
	"context"
	"time"
	"token-arena/internal/model"

	"github.com/jackc/pgx/v5"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// UserRepository defines operations for user/balance management
type UserRepository interface {
	// GetUserForUpdate retrieves a user with row-level lock (must be in transaction)
	GetUserForUpdate(ctx context.Context, userID int64, tx pgx.Tx) (*model.User, error)

	// GetUser retrieves a user without locking
	GetUser(ctx context.Context, userID int64, tx ...pgx.Tx) (*model.User, error)

	// GetUserByUsername resolves a username to a user
	GetUserByUsername(ctx context.Context, username string, tx ...pgx.Tx) (*model.User, error)

	// GetBalance retrieves the current balance for a user (read-only)
	GetBalance(ctx context.Context, userID int64, tx ...pgx.Tx) (int64, error)

	// UpdateBalance updates user balance
	UpdateBalance(ctx context.Context, userID int64, balance int64, tx pgx.Tx) error

	// RecordMatchResult bumps games_played and, when won, games_won
	RecordMatchResult(ctx context.Context, userID int64, won bool, tx pgx.Tx) error
}

// TransactionRepository defines operations on the append-only transaction log
type TransactionRepository interface {
	// InsertTransaction appends a transaction record
	InsertTransaction(ctx context.Context, trans *model.Transaction, tx pgx.Tx) error

	// GetTransactionsByUser retrieves paginated transactions for a user
	GetTransactionsByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error)

	// GetTransactionsByMatch retrieves every transaction tied to a match
	GetTransactionsByMatch(ctx context.Context, matchID int64, tx ...pgx.Tx) ([]*model.Transaction, error)

	// FindBalanceDrift lists users whose balance differs from the sum of their transactions
	FindBalanceDrift(ctx context.Context, limit int) ([]*model.BalanceDrift, error)
}

// GameRepository reads the game catalogue
type GameRepository interface {
	GetGame(ctx context.Context, gameID int64, tx ...pgx.Tx) (*model.Game, error)
	ListActiveGames(ctx context.Context) ([]*model.Game, error)
}

// MatchRepository stores matches. Every transition is conditional on the
// expected pre-state and returns nil when no row qualified.
type MatchRepository interface {
	// InsertMatch creates a match row and fills its id and created_at
	InsertMatch(ctx context.Context, match *model.Match, tx pgx.Tx) error

	// GetMatch retrieves a match by id
	GetMatch(ctx context.Context, matchID int64, tx ...pgx.Tx) (*model.Match, error)

	// ListOpenMatches lists waiting matches, optionally filtered by game (gameID 0 = all)
	ListOpenMatches(ctx context.Context, gameID int64, limit, offset int) ([]*model.Match, error)

	// JoinIfWaiting seats playerID as player2 and moves waiting -> in_progress
	JoinIfWaiting(ctx context.Context, matchID, playerID int64, startedAt time.Time, tx pgx.Tx) (*model.Match, error)

	// CancelIfWaiting moves waiting -> cancelled; requesterID nil means system actor
	CancelIfWaiting(ctx context.Context, matchID int64, requesterID *int64, tx pgx.Tx) (*model.Match, error)

	// CompleteIfInProgress moves in_progress -> completed and stores the outcome
	CompleteIfInProgress(ctx context.Context, matchID int64, winnerID *int64, gameData []byte, completedAt time.Time, tx pgx.Tx) (*model.Match, error)

	// GetStaleWaitingMatches lists waiting single-seat matches created before the cutoff
	GetStaleWaitingMatches(ctx context.Context, createdBefore time.Time, limit int) ([]*model.Match, error)
}

// QueueRepository stores matchmaking queue entries
type QueueRepository interface {
	// InsertEntry creates a waiting entry
	InsertEntry(ctx context.Context, entry *model.QueueEntry, tx pgx.Tx) error

	// GetEntry retrieves a queue entry by id
	GetEntry(ctx context.Context, entryID int64, tx ...pgx.Tx) (*model.QueueEntry, error)

	// ClaimOpponent locks the oldest live compatible entry of another user (SKIP LOCKED)
	ClaimOpponent(ctx context.Context, userID int64, matchType string, betAmount int64, now time.Time, tx pgx.Tx) (*model.QueueEntry, error)

	// ListWaiting lists live waiting entries, oldest first
	ListWaiting(ctx context.Context, now time.Time, limit int) ([]*model.QueueEntry, error)

	// LockWaitingEntry locks a live waiting entry (SKIP LOCKED); nil when it is
	// gone, no longer waiting or held by another transaction
	LockWaitingEntry(ctx context.Context, entryID int64, now time.Time, tx pgx.Tx) (*model.QueueEntry, error)

	// MarkMatched moves waiting -> matched and links the match
	MarkMatched(ctx context.Context, entryID, matchID int64, tx pgx.Tx) (bool, error)

	// CancelIfWaiting moves the owner's waiting entry to cancelled
	CancelIfWaiting(ctx context.Context, entryID, userID int64, now time.Time, tx pgx.Tx) (bool, error)

	// ExpireUserEntries expires the user's own lapsed waiting entries
	ExpireUserEntries(ctx context.Context, userID int64, now time.Time, tx pgx.Tx) (int64, error)

	// HasLiveEntry reports whether the user has a waiting, unexpired entry
	HasLiveEntry(ctx context.Context, userID int64, now time.Time, tx pgx.Tx) (bool, error)

	// ExpireDue marks all lapsed waiting entries as expired
	ExpireDue(ctx context.Context, now time.Time) (int64, error)

	// DeleteFinishedBefore removes expired/cancelled entries created before the cutoff
	DeleteFinishedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// PurchaseRepository stores purchase receipts keyed by (user, idempotency key)
type PurchaseRepository interface {
	// GetPurchase retrieves a purchase by user and key
	GetPurchase(ctx context.Context, userID int64, idempotencyKey string, tx ...pgx.Tx) (*model.Purchase, error)

	// InsertPurchase records a purchase; a repeated key yields ErrDuplicateTransaction
	InsertPurchase(ctx context.Context, purchase *model.Purchase, tx pgx.Tx) error
}
