package service

import (
	"context"
	"token-arena/internal/model"

	"github.com/jackc/pgx/v5"
)

// TokenLedger is the only writer of user balances. Every mutation locks the
// user row and appends a transaction record in the same database transaction.
type TokenLedger interface {
	Debit(ctx context.Context, entry *model.LedgerEntry) (int64, error)
	Credit(ctx context.Context, entry *model.LedgerEntry) (int64, error)

	// DebitTx and CreditTx apply the mutation inside a caller-owned transaction
	DebitTx(ctx context.Context, entry *model.LedgerEntry, tx pgx.Tx) (int64, error)
	CreditTx(ctx context.Context, entry *model.LedgerEntry, tx pgx.Tx) (int64, error)

	// TransferAtomic moves tokens between two users, locking both rows in id order
	TransferAtomic(ctx context.Context, fromID, toID, amount int64, description string) (*model.TransferBalances, error)

	GetBalance(ctx context.Context, userID int64) (*model.BalanceResponse, error)
	GetTransactionsByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error)
}

// MatchService drives the match state machine and its escrow
type MatchService interface {
	CreateMatch(ctx context.Context, requesterID int64, req *model.CreateMatchRequest) (*model.Match, error)
	JoinMatch(ctx context.Context, matchID, joinerID int64) (*model.Match, error)
	CancelMatch(ctx context.Context, matchID, requesterID int64) (*model.Match, error)

	// ExpireMatch cancels an abandoned waiting match on behalf of the system.
	// It reports false when the match had already left the waiting state.
	ExpireMatch(ctx context.Context, matchID int64) (bool, error)

	CompleteMatch(ctx context.Context, matchID, actorID int64, req *model.CompleteMatchRequest) (*model.Match, error)
	GetMatch(ctx context.Context, matchID int64) (*model.Match, error)
	ListOpenMatches(ctx context.Context, gameID int64, limit, offset int) ([]*model.Match, error)
	ListGames(ctx context.Context) ([]*model.Game, error)
}

// MatchmakingService pairs players queued for the same game and bet
type MatchmakingService interface {
	Enqueue(ctx context.Context, userID int64, req *model.EnqueueRequest) (*model.EnqueueResult, error)
	CancelEntry(ctx context.Context, userID, entryID int64) error
	GetEntry(ctx context.Context, userID, entryID int64) (*model.QueueEntry, error)

	// PairWaiting matches parked compatible entries and reports how many
	// matches it formed
	PairWaiting(ctx context.Context, limit int) (int, error)
}

// PurchaseService credits purchased token packs exactly once per idempotency key
type PurchaseService interface {
	Buy(ctx context.Context, userID int64, req *model.PurchaseRequest, idempotencyKey string) (*model.PurchaseResponse, error)
}

// TransferService moves tokens between users by username
type TransferService interface {
	Transfer(ctx context.Context, senderID int64, req *model.TransferRequest) (*model.TransferResponse, error)
	GrantBonus(ctx context.Context, userID int64, req *model.BonusRequest) (*model.BalanceResponse, error)
}

// ReconciliationService reclaims lapsed queue entries and abandoned matches
type ReconciliationService interface {
	RunSweep(ctx context.Context) (*model.SweepResult, error)
}

// AuditService compares cached balances against the transaction log
type AuditService interface {
	AuditLedger(ctx context.Context) ([]*model.BalanceDrift, error)
}

// EventPublisher delivers match events after commit. Delivery is best-effort.
type EventPublisher interface {
	PublishMatchEvent(ctx context.Context, event *model.MatchEvent) error
}

// NopPublisher drops every event
type NopPublisher struct{}

func (NopPublisher) PublishMatchEvent(context.Context, *model.MatchEvent) error { return nil }
