package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Balance     int64     `json:"balance"`
	Version     int       `json:"version"`
	GamesPlayed int       `json:"games_played"`
	GamesWon    int       `json:"games_won"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Transaction struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	MatchID     *int64          `json:"match_id,omitempty"`
	Type        TransactionType `json:"type"`
	Amount      int64           `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// LedgerEntry describes one balance mutation. Amount is always positive, the
// ledger applies the sign.
type LedgerEntry struct {
	UserID      int64
	MatchID     *int64
	Amount      int64
	Type        TransactionType
	Description string
}

type Game struct {
	ID     int64  `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	MinBet int64  `json:"min_bet"`
	MaxBet int64  `json:"max_bet"`
	Active bool   `json:"active"`
}

type Match struct {
	ID          int64           `json:"id"`
	GameID      int64           `json:"game_id"`
	Player1ID   int64           `json:"player1_id"`
	Player2ID   *int64          `json:"player2_id,omitempty"`
	BetAmount   int64           `json:"bet_amount"`
	Status      MatchStatus     `json:"status"`
	WinnerID    *int64          `json:"winner_id,omitempty"`
	GameData    json.RawMessage `json:"game_data,omitempty" swaggertype:"object"`
	CreatedAt   time.Time       `json:"created_at"`
	StartedAt   *time.Time      `json:"started_at,omitempty"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
}

// HasPlayer reports whether userID holds a seat in the match.
func (m *Match) HasPlayer(userID int64) bool {
	if m.Player1ID == userID {
		return true
	}
	return m.Player2ID != nil && *m.Player2ID == userID
}

// Players returns the seated player ids, player1 first.
func (m *Match) Players() []int64 {
	if m.Player2ID == nil {
		return []int64{m.Player1ID}
	}
	return []int64{m.Player1ID, *m.Player2ID}
}

type QueueEntry struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"user_id"`
	GameID    int64       `json:"game_id"`
	BetAmount int64       `json:"bet_amount"`
	MatchType string      `json:"match_type"`
	Status    QueueStatus `json:"status"`
	MatchID   *int64      `json:"match_id,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// EffectiveStatus applies lazy expiry: a waiting entry past expires_at is expired.
func (e *QueueEntry) EffectiveStatus(now time.Time) QueueStatus {
	if e.Status == QueueWaiting && !e.ExpiresAt.After(now) {
		return QueueExpired
	}
	return e.Status
}

type Purchase struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"user_id"`
	IdempotencyKey string          `json:"idempotency_key"`
	Amount         int64           `json:"amount"`
	Price          decimal.Decimal `json:"price"`
	CreatedAt      time.Time       `json:"created_at"`
}

// BalanceDrift is a user whose cached balance disagrees with the transaction log.
type BalanceDrift struct {
	UserID        int64 `json:"user_id"`
	Balance       int64 `json:"balance"`
	LedgerBalance int64 `json:"ledger_balance"`
}

type TransferBalances struct {
	SenderBalance    int64
	RecipientBalance int64
}

type MatchEvent struct {
	Type       MatchEventType `json:"type"`
	MatchID    int64          `json:"match_id"`
	Status     MatchStatus    `json:"status"`
	Player1ID  int64          `json:"player1_id"`
	Player2ID  *int64         `json:"player2_id,omitempty"`
	WinnerID   *int64         `json:"winner_id,omitempty"`
	BetAmount  int64          `json:"bet_amount"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// NewMatchEvent snapshots a match for publishing.
func NewMatchEvent(eventType MatchEventType, m *Match) *MatchEvent {
	return &MatchEvent{
		Type:       eventType,
		MatchID:    m.ID,
		Status:     m.Status,
		Player1ID:  m.Player1ID,
		Player2ID:  m.Player2ID,
		WinnerID:   m.WinnerID,
		BetAmount:  m.BetAmount,
		OccurredAt: time.Now().UTC(),
	}
}

type SweepResult struct {
	ExpiredQueues    int64 `json:"expired_queues" example:"3"`
	PairedQueues     int   `json:"paired_queues" example:"1"`
	DeletedQueues    int64 `json:"deleted_queues" example:"12"`
	CancelledMatches int   `json:"cancelled_matches" example:"1"`
}

type CreateMatchRequest struct {
	GameID    int64       `json:"game_id" binding:"required" example:"1"`
	BetAmount json.Number `json:"bet_amount" binding:"required" swaggertype:"integer" example:"50"`
}

type CompleteMatchRequest struct {
	WinnerID *int64          `json:"winner_id" example:"7"`
	GameData json.RawMessage `json:"game_data,omitempty" swaggertype:"object"`
}

type MatchResponse struct {
	MatchID int64  `json:"match_id" example:"42"`
	Match   *Match `json:"match"`
}

type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

type EnqueueRequest struct {
	GameID    int64       `json:"game_id" binding:"required" example:"1"`
	BetAmount json.Number `json:"bet_amount" binding:"required" swaggertype:"integer" example:"50"`
}

// EnqueueResult carries either the waiting entry or the match it was paired into.
type EnqueueResult struct {
	Entry *QueueEntry `json:"entry,omitempty"`
	Match *Match      `json:"match,omitempty"`
}

type PurchaseRequest struct {
	Amount json.Number `json:"amount" binding:"required" swaggertype:"integer" example:"500"`
}

type PurchaseResponse struct {
	Status  string `json:"status" example:"success"`
	Balance int64  `json:"balance" example:"1500"`
	Amount  int64  `json:"amount" example:"500"`
	Price   string `json:"price" example:"4.49"`
}

type TransferRequest struct {
	RecipientUsername string      `json:"recipient_username" binding:"required" example:"bob"`
	Amount            json.Number `json:"amount" binding:"required" swaggertype:"integer" example:"100"`
}

type TransferResponse struct {
	SenderBalance    int64 `json:"sender_balance" example:"900"`
	RecipientBalance int64 `json:"recipient_balance" example:"300"`
}

type BonusRequest struct {
	Amount      json.Number `json:"amount" binding:"required" swaggertype:"integer" example:"1000"`
	Description string      `json:"description" example:"welcome bonus"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"insufficient balance"`
	Code    string `json:"code,omitempty" example:"INSUFFICIENT_FUNDS"`
	Details string `json:"details,omitempty"`
}

type BalanceResponse struct {
	UserID  int64 `json:"user_id" example:"1"`
	Balance int64 `json:"balance" example:"950"`
}

type TransactionListResponse struct {
	Transactions []*Transaction `json:"transactions"`
	Total        int            `json:"total"`
	Limit        int            `json:"limit"`
	Offset       int            `json:"offset"`
}
