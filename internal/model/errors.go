package model

import "errors"

// Validation
var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidBet          = errors.New("bet amount out of range")
	ErrInvalidDenomination = errors.New("invalid purchase denomination")
	ErrInvalidWinner       = errors.New("winner is not a player of this match")
	ErrSelfJoin            = errors.New("cannot join own match")
	ErrSelfTransfer        = errors.New("cannot transfer to yourself")
)

// Auth
var (
	ErrUnauthorized = errors.New("caller not identified")
	ErrForbidden    = errors.New("caller not allowed to act on this resource")
)

// Not found, or no longer in an actionable state
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrRecipientNotFound  = errors.New("recipient not found")
	ErrGameNotFound       = errors.New("game not found")
	ErrMatchNotFound      = errors.New("match not found")
	ErrMatchNotAvailable  = errors.New("match no longer available")
	ErrQueueEntryNotFound = errors.New("queue entry not found")
	ErrPurchaseNotFound   = errors.New("purchase not found")
)

// State conflicts
var (
	ErrMatchStateConflict   = errors.New("match state conflict")
	ErrAlreadyQueued        = errors.New("already waiting in matchmaking queue")
	ErrDuplicateTransaction = errors.New("duplicate transaction")
)

var (
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrDuplicateRequest  = errors.New("duplicate purchase request")
)
