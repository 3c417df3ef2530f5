package model

type TransactionType string

const (
	TransactionBet         TransactionType = "bet"
	TransactionWin         TransactionType = "win"
	TransactionRefund      TransactionType = "refund"
	TransactionBonus       TransactionType = "bonus"
	TransactionTransferIn  TransactionType = "transfer_in"
	TransactionTransferOut TransactionType = "transfer_out"
	TransactionPurchase    TransactionType = "purchase"
)

func (t TransactionType) String() string {
	return string(t)
}

type MatchStatus string

const (
	MatchWaiting    MatchStatus = "waiting"
	MatchInProgress MatchStatus = "in_progress"
	MatchCompleted  MatchStatus = "completed"
	MatchCancelled  MatchStatus = "cancelled"
)

// IsTerminal reports whether no further transition is possible.
func (s MatchStatus) IsTerminal() bool {
	return s == MatchCompleted || s == MatchCancelled
}

func (s MatchStatus) String() string {
	return string(s)
}

type QueueStatus string

const (
	QueueWaiting   QueueStatus = "waiting"
	QueueMatched   QueueStatus = "matched"
	QueueExpired   QueueStatus = "expired"
	QueueCancelled QueueStatus = "cancelled"
)

func (s QueueStatus) String() string {
	return string(s)
}

type MatchEventType string

const (
	EventMatchCreated   MatchEventType = "match_created"
	EventMatchJoined    MatchEventType = "match_joined"
	EventMatchCancelled MatchEventType = "match_cancelled"
	EventMatchExpired   MatchEventType = "match_expired"
	EventMatchCompleted MatchEventType = "match_completed"

	// EventMatchSnapshot is sent first on a new event stream
	EventMatchSnapshot MatchEventType = "snapshot"
)
