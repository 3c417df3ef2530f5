package service

import (
	"context"
	"testing"
	"time"
	"token-arena/internal/model"
	repomocks "token-arena/mocks/repository"
	svcmocks "token-arena/mocks/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type queueFixture struct {
	queueRepo *repomocks.QueueRepository
	matchRepo *repomocks.MatchRepository
	gameRepo  *repomocks.GameRepository
	userRepo  *repomocks.UserRepository
	dbManager *repomocks.DBManager
	ledger    *svcmocks.TokenLedger
	events    *svcmocks.EventPublisher
	service   *MatchmakingServiceImpl
	now       time.Time
}

func newQueueFixture(t *testing.T) *queueFixture {
	f := &queueFixture{
		queueRepo: repomocks.NewQueueRepository(t),
		matchRepo: repomocks.NewMatchRepository(t),
		gameRepo:  repomocks.NewGameRepository(t),
		userRepo:  repomocks.NewUserRepository(t),
		dbManager: repomocks.NewDBManager(t),
		ledger:    svcmocks.NewTokenLedger(t),
		events:    svcmocks.NewEventPublisher(t),
		now:       time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	f.service = NewMatchmakingService(f.queueRepo, f.matchRepo, f.gameRepo, f.userRepo, f.ledger, f.dbManager,
		f.events, 5*time.Minute, zerolog.Nop()).(*MatchmakingServiceImpl)
	f.service.now = func() time.Time { return f.now }
	return f
}

// expectQueueChecks covers the steps every enqueue runs before pairing
func (f *queueFixture) expectQueueChecks(ctx context.Context, userID, balance int64) {
	f.gameRepo.On("GetGame", ctx, int64(1)).Return(mathBlitz(), nil)
	passThroughTx(f.dbManager, ctx)
	f.queueRepo.On("ExpireUserEntries", ctx, userID, f.now, mock.Anything).Return(int64(0), nil)
	f.queueRepo.On("HasLiveEntry", ctx, userID, f.now, mock.Anything).Return(false, nil)
	f.userRepo.On("GetBalance", ctx, userID, mock.Anything).Return(balance, nil)
}

func TestEnqueue_NoOpponentQueuesEntry(t *testing.T) {
	ctx := context.Background()
	f := newQueueFixture(t)

	f.expectQueueChecks(ctx, 2, 200)
	f.queueRepo.On("ClaimOpponent", ctx, int64(2), "math-blitz", int64(50), f.now, mock.Anything).Return(nil, nil)
	f.queueRepo.On("InsertEntry", ctx, mock.MatchedBy(func(e *model.QueueEntry) bool {
		return e.UserID == 2 &&
			e.MatchType == "math-blitz" &&
			e.BetAmount == 50 &&
			e.Status == model.QueueWaiting &&
			e.ExpiresAt.Equal(f.now.Add(5*time.Minute))
	}), mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.QueueEntry).ID = 10
	}).Return(nil)

	result, err := f.service.Enqueue(ctx, 2, &model.EnqueueRequest{GameID: 1, BetAmount: "50"})

	require.NoError(t, err)
	require.NotNil(t, result.Entry)
	assert.Nil(t, result.Match)
	assert.Equal(t, int64(10), result.Entry.ID)
	f.ledger.AssertNotCalled(t, "DebitTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestEnqueue_PairsWithWaitingOpponent(t *testing.T) {
	ctx := context.Background()
	f := newQueueFixture(t)

	opponent := &model.QueueEntry{ID: 10, UserID: 1, GameID: 1, BetAmount: 50, MatchType: "math-blitz", Status: model.QueueWaiting}

	f.expectQueueChecks(ctx, 2, 200)
	f.queueRepo.On("ClaimOpponent", ctx, int64(2), "math-blitz", int64(50), f.now, mock.Anything).Return(opponent, nil)
	f.matchRepo.On("InsertMatch", ctx, mock.MatchedBy(func(m *model.Match) bool {
		return m.Player1ID == 1 && m.Player2ID != nil && *m.Player2ID == 2 &&
			m.Status == model.MatchInProgress && m.BetAmount == 50 && m.StartedAt != nil
	}), mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Match).ID = 42
	}).Return(nil)
	f.ledger.On("DebitTx", ctx, ledgerEntry(1, 50, model.TransactionBet, 42), mock.Anything).Return(int64(950), nil)
	f.ledger.On("DebitTx", ctx, ledgerEntry(2, 50, model.TransactionBet, 42), mock.Anything).Return(int64(150), nil)
	f.queueRepo.On("MarkMatched", ctx, int64(10), int64(42), mock.Anything).Return(true, nil)
	f.events.On("PublishMatchEvent", ctx, eventOf(model.EventMatchCreated)).Return(nil)

	result, err := f.service.Enqueue(ctx, 2, &model.EnqueueRequest{GameID: 1, BetAmount: "50"})

	require.NoError(t, err)
	require.NotNil(t, result.Match)
	assert.Nil(t, result.Entry)
	assert.Equal(t, int64(42), result.Match.ID)
	f.ledger.AssertNumberOfCalls(t, "DebitTx", 2)
}

func TestEnqueue_AlreadyQueued(t *testing.T) {
	ctx := context.Background()
	f := newQueueFixture(t)

	f.gameRepo.On("GetGame", ctx, int64(1)).Return(mathBlitz(), nil)
	passThroughTx(f.dbManager, ctx)
	f.queueRepo.On("ExpireUserEntries", ctx, int64(2), f.now, mock.Anything).Return(int64(0), nil)
	f.queueRepo.On("HasLiveEntry", ctx, int64(2), f.now, mock.Anything).Return(true, nil)

	_, err := f.service.Enqueue(ctx, 2, &model.EnqueueRequest{GameID: 1, BetAmount: "50"})

	assert.ErrorIs(t, err, model.ErrAlreadyQueued)
}

func TestEnqueue_InsufficientFunds(t *testing.T) {
	ctx := context.Background()
	f := newQueueFixture(t)

	f.expectQueueChecks(ctx, 2, 20)

	_, err := f.service.Enqueue(ctx, 2, &model.EnqueueRequest{GameID: 1, BetAmount: "50"})

	assert.ErrorIs(t, err, model.ErrInsufficientFunds)
	f.queueRepo.AssertNotCalled(t, "ClaimOpponent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEnqueue_BetOutOfRange(t *testing.T) {
	ctx := context.Background()
	f := newQueueFixture(t)

	f.gameRepo.On("GetGame", ctx, int64(1)).Return(mathBlitz(), nil)

	_, err := f.service.Enqueue(ctx, 2, &model.EnqueueRequest{GameID: 1, BetAmount: "5000"})

	assert.ErrorIs(t, err, model.ErrInvalidBet)
}

func TestCancelEntry_Owner(t *testing.T) {
	ctx := context.Background()
	f := newQueueFixture(t)

	passThroughTx(f.dbManager, ctx)
	f.queueRepo.On("CancelIfWaiting", ctx, int64(10), int64(2), f.now, mock.Anything).Return(true, nil)

	assert.NoError(t, f.service.CancelEntry(ctx, 2, 10))
}

func TestCancelEntry_NotOwner(t *testing.T) {
	ctx := context.Background()
	f := newQueueFixture(t)

	passThroughTx(f.dbManager, ctx)
	f.queueRepo.On("CancelIfWaiting", ctx, int64(10), int64(3), f.now, mock.Anything).Return(false, nil)
	f.queueRepo.On("GetEntry", ctx, int64(10), mock.Anything).Return(&model.QueueEntry{ID: 10, UserID: 2, Status: model.QueueWaiting, ExpiresAt: f.now.Add(time.Minute)}, nil)

	assert.ErrorIs(t, f.service.CancelEntry(ctx, 3, 10), model.ErrForbidden)
}

func TestCancelEntry_AlreadyMatched(t *testing.T) {
	ctx := context.Background()
	f := newQueueFixture(t)

	passThroughTx(f.dbManager, ctx)
	f.queueRepo.On("CancelIfWaiting", ctx, int64(10), int64(2), f.now, mock.Anything).Return(false, nil)
	f.queueRepo.On("GetEntry", ctx, int64(10), mock.Anything).Return(&model.QueueEntry{ID: 10, UserID: 2, Status: model.QueueMatched, ExpiresAt: f.now.Add(time.Minute)}, nil)

	err := f.service.CancelEntry(ctx, 2, 10)

	assert.ErrorIs(t, err, model.ErrMatchStateConflict)
	assert.Contains(t, err.Error(), "matched")
}

func TestGetEntry_LazyExpiry(t *testing.T) {
	ctx := context.Background()
	f := newQueueFixture(t)

	f.queueRepo.On("GetEntry", ctx, int64(10)).Return(&model.QueueEntry{
		ID:        10,
		UserID:    2,
		Status:    model.QueueWaiting,
		ExpiresAt: f.now.Add(-time.Second),
	}, nil)

	entry, err := f.service.GetEntry(ctx, 2, 10)

	require.NoError(t, err)
	assert.Equal(t, model.QueueExpired, entry.Status)
}

func TestGetEntry_OtherUser(t *testing.T) {
	ctx := context.Background()
	f := newQueueFixture(t)

	f.queueRepo.On("GetEntry", ctx, int64(10)).Return(&model.QueueEntry{ID: 10, UserID: 2, Status: model.QueueWaiting, ExpiresAt: f.now.Add(time.Minute)}, nil)

	_, err := f.service.GetEntry(ctx, 3, 10)

	assert.ErrorIs(t, err, model.ErrForbidden)
}

func TestEnqueue_OpponentShortfallClaimsAgain(t *testing.T) {
	ctx := context.Background()
	f := newQueueFixture(t)

	broke := &model.QueueEntry{ID: 10, UserID: 1, GameID: 1, BetAmount: 50, MatchType: "math-blitz", Status: model.QueueWaiting}

	f.expectQueueChecks(ctx, 2, 200)
	f.queueRepo.On("ClaimOpponent", ctx, int64(2), "math-blitz", int64(50), f.now, mock.Anything).Return(broke, nil).Once()
	f.matchRepo.On("InsertMatch", ctx, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Match).ID = 42
	}).Return(nil)
	// the opponent spent their tokens after the claim; the whole attempt rolls back
	f.ledger.On("DebitTx", ctx, ledgerEntry(1, 50, model.TransactionBet, 42), mock.Anything).Return(int64(0), model.ErrInsufficientFunds)
	f.queueRepo.On("ClaimOpponent", ctx, int64(2), "math-blitz", int64(50), f.now, mock.Anything).Return(nil, nil).Once()
	f.queueRepo.On("InsertEntry", ctx, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.QueueEntry).ID = 11
	}).Return(nil)

	result, err := f.service.Enqueue(ctx, 2, &model.EnqueueRequest{GameID: 1, BetAmount: "50"})

	require.NoError(t, err)
	require.NotNil(t, result.Entry)
	assert.Equal(t, int64(11), result.Entry.ID)
	assert.Nil(t, result.Match)
	f.queueRepo.AssertNumberOfCalls(t, "ClaimOpponent", 2)
	f.queueRepo.AssertNotCalled(t, "MarkMatched", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEnqueue_RepeatedOpponentShortfallGivesUp(t *testing.T) {
	ctx := context.Background()
	f := newQueueFixture(t)

	broke := &model.QueueEntry{ID: 10, UserID: 1, GameID: 1, BetAmount: 50, MatchType: "math-blitz", Status: model.QueueWaiting}

	f.expectQueueChecks(ctx, 2, 200)
	f.queueRepo.On("ClaimOpponent", ctx, int64(2), "math-blitz", int64(50), f.now, mock.Anything).Return(broke, nil)
	f.matchRepo.On("InsertMatch", ctx, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Match).ID = 42
	}).Return(nil)
	f.ledger.On("DebitTx", ctx, ledgerEntry(1, 50, model.TransactionBet, 42), mock.Anything).Return(int64(0), model.ErrInsufficientFunds)

	_, err := f.service.Enqueue(ctx, 2, &model.EnqueueRequest{GameID: 1, BetAmount: "50"})

	assert.ErrorIs(t, err, model.ErrMatchStateConflict)
	assert.NotErrorIs(t, err, model.ErrInsufficientFunds)
	f.queueRepo.AssertNumberOfCalls(t, "ClaimOpponent", maxClaimAttempts)
}

func TestEnqueue_OwnShortfallIsNotRetried(t *testing.T) {
	ctx := context.Background()
	f := newQueueFixture(t)

	opponent := &model.QueueEntry{ID: 10, UserID: 3, GameID: 1, BetAmount: 50, MatchType: "math-blitz", Status: model.QueueWaiting}

	f.expectQueueChecks(ctx, 2, 200)
	f.queueRepo.On("ClaimOpponent", ctx, int64(2), "math-blitz", int64(50), f.now, mock.Anything).Return(opponent, nil)
	f.matchRepo.On("InsertMatch", ctx, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Match).ID = 42
	}).Return(nil)
	// user 2 sorts first and spent concurrently
	f.ledger.On("DebitTx", ctx, ledgerEntry(2, 50, model.TransactionBet, 42), mock.Anything).Return(int64(0), model.ErrInsufficientFunds)

	_, err := f.service.Enqueue(ctx, 2, &model.EnqueueRequest{GameID: 1, BetAmount: "50"})

	assert.ErrorIs(t, err, model.ErrInsufficientFunds)
	f.queueRepo.AssertNumberOfCalls(t, "ClaimOpponent", 1)
}

func TestPairWaiting_PairsParkedEntries(t *testing.T) {
	ctx := context.Background()
	f := newQueueFixture(t)

	older := &model.QueueEntry{ID: 10, UserID: 1, GameID: 1, BetAmount: 50, MatchType: "math-blitz", Status: model.QueueWaiting}
	newer := &model.QueueEntry{ID: 11, UserID: 2, GameID: 1, BetAmount: 50, MatchType: "math-blitz", Status: model.QueueWaiting}

	passThroughTx(f.dbManager, ctx)
	f.queueRepo.On("ListWaiting", ctx, f.now, 100).Return([]*model.QueueEntry{older, newer}, nil)
	f.queueRepo.On("LockWaitingEntry", ctx, int64(10), f.now, mock.Anything).Return(older, nil)
	f.userRepo.On("GetBalance", ctx, int64(1), mock.Anything).Return(int64(200), nil)
	f.queueRepo.On("ClaimOpponent", ctx, int64(1), "math-blitz", int64(50), f.now, mock.Anything).Return(newer, nil)
	f.gameRepo.On("GetGame", ctx, int64(1), mock.Anything).Return(mathBlitz(), nil)
	f.matchRepo.On("InsertMatch", ctx, mock.MatchedBy(func(m *model.Match) bool {
		return m.Player1ID == 1 && m.Player2ID != nil && *m.Player2ID == 2 && m.Status == model.MatchInProgress
	}), mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Match).ID = 42
	}).Return(nil)
	f.ledger.On("DebitTx", ctx, ledgerEntry(1, 50, model.TransactionBet, 42), mock.Anything).Return(int64(150), nil)
	f.ledger.On("DebitTx", ctx, ledgerEntry(2, 50, model.TransactionBet, 42), mock.Anything).Return(int64(150), nil)
	f.queueRepo.On("MarkMatched", ctx, int64(10), int64(42), mock.Anything).Return(true, nil)
	f.queueRepo.On("MarkMatched", ctx, int64(11), int64(42), mock.Anything).Return(true, nil)
	f.events.On("PublishMatchEvent", ctx, eventOf(model.EventMatchCreated)).Return(nil)
	// already taken by the first pairing
	f.queueRepo.On("LockWaitingEntry", ctx, int64(11), f.now, mock.Anything).Return(nil, nil)

	paired, err := f.service.PairWaiting(ctx, 100)

	require.NoError(t, err)
	assert.Equal(t, 1, paired)
	f.ledger.AssertNumberOfCalls(t, "DebitTx", 2)
}

func TestPairWaiting_ShortfallLeavesEntriesParked(t *testing.T) {
	ctx := context.Background()
	f := newQueueFixture(t)

	older := &model.QueueEntry{ID: 10, UserID: 1, GameID: 1, BetAmount: 50, MatchType: "math-blitz", Status: model.QueueWaiting}
	newer := &model.QueueEntry{ID: 11, UserID: 2, GameID: 1, BetAmount: 50, MatchType: "math-blitz", Status: model.QueueWaiting}

	passThroughTx(f.dbManager, ctx)
	f.queueRepo.On("ListWaiting", ctx, f.now, 100).Return([]*model.QueueEntry{older}, nil)
	f.queueRepo.On("LockWaitingEntry", ctx, int64(10), f.now, mock.Anything).Return(older, nil)
	f.userRepo.On("GetBalance", ctx, int64(1), mock.Anything).Return(int64(200), nil)
	f.queueRepo.On("ClaimOpponent", ctx, int64(1), "math-blitz", int64(50), f.now, mock.Anything).Return(newer, nil)
	f.gameRepo.On("GetGame", ctx, int64(1), mock.Anything).Return(mathBlitz(), nil)
	f.matchRepo.On("InsertMatch", ctx, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Match).ID = 42
	}).Return(nil)
	f.ledger.On("DebitTx", ctx, ledgerEntry(1, 50, model.TransactionBet, 42), mock.Anything).Return(int64(150), nil)
	f.ledger.On("DebitTx", ctx, ledgerEntry(2, 50, model.TransactionBet, 42), mock.Anything).Return(int64(0), model.ErrInsufficientFunds)

	paired, err := f.service.PairWaiting(ctx, 100)

	require.NoError(t, err)
	assert.Equal(t, 0, paired)
	f.events.AssertNotCalled(t, "PublishMatchEvent", mock.Anything, mock.Anything)
	f.queueRepo.AssertNotCalled(t, "MarkMatched", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPairWaiting_SkipsOwnerWhoCannotCoverBet(t *testing.T) {
	ctx := context.Background()
	f := newQueueFixture(t)

	entry := &model.QueueEntry{ID: 10, UserID: 1, GameID: 1, BetAmount: 50, MatchType: "math-blitz", Status: model.QueueWaiting}

	passThroughTx(f.dbManager, ctx)
	f.queueRepo.On("ListWaiting", ctx, f.now, 100).Return([]*model.QueueEntry{entry}, nil)
	f.queueRepo.On("LockWaitingEntry", ctx, int64(10), f.now, mock.Anything).Return(entry, nil)
	f.userRepo.On("GetBalance", ctx, int64(1), mock.Anything).Return(int64(20), nil)

	paired, err := f.service.PairWaiting(ctx, 100)

	require.NoError(t, err)
	assert.Equal(t, 0, paired)
	f.queueRepo.AssertNotCalled(t, "ClaimOpponent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPairWaiting_ListError(t *testing.T) {
	ctx := context.Background()
	f := newQueueFixture(t)

	f.queueRepo.On("ListWaiting", ctx, f.now, 100).Return(nil, assert.AnError)

	_, err := f.service.PairWaiting(ctx, 100)

	assert.ErrorIs(t, err, assert.AnError)
}
