package service

import (
	"context"
	"encoding/json"
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

type matchFixture struct {
	matchRepo *repomocks.MatchRepository
	gameRepo  *repomocks.GameRepository
	userRepo  *repomocks.UserRepository
	dbManager *repomocks.DBManager
	ledger    *svcmocks.TokenLedger
	events    *svcmocks.EventPublisher
	service   MatchService
}

func newMatchFixture(t *testing.T) *matchFixture {
	f := &matchFixture{
		matchRepo: repomocks.NewMatchRepository(t),
		gameRepo:  repomocks.NewGameRepository(t),
		userRepo:  repomocks.NewUserRepository(t),
		dbManager: repomocks.NewDBManager(t),
		ledger:    svcmocks.NewTokenLedger(t),
		events:    svcmocks.NewEventPublisher(t),
	}
	f.service = NewMatchService(f.matchRepo, f.gameRepo, f.userRepo, f.ledger, f.dbManager, f.events, zerolog.Nop())
	return f
}

func int64Ptr(v int64) *int64 { return &v }

func mathBlitz() *model.Game {
	return &model.Game{ID: 1, Code: "math-blitz", Name: "Math Blitz", MinBet: 10, MaxBet: 500, Active: true}
}

func inProgressMatch(id, p1, p2, bet int64) *model.Match {
	started := time.Now()
	return &model.Match{ID: id, GameID: 1, Player1ID: p1, Player2ID: &p2, BetAmount: bet, Status: model.MatchInProgress, StartedAt: &started}
}

func ledgerEntry(userID, amount int64, kind model.TransactionType, matchID int64) interface{} {
	return mock.MatchedBy(func(e *model.LedgerEntry) bool {
		return e.UserID == userID && e.Amount == amount && e.Type == kind && e.MatchID != nil && *e.MatchID == matchID
	})
}

func eventOf(kind model.MatchEventType) interface{} {
	return mock.MatchedBy(func(e *model.MatchEvent) bool { return e.Type == kind })
}

func TestCreateMatch_HappyPath(t *testing.T) {
	ctx := context.Background()
	f := newMatchFixture(t)

	f.gameRepo.On("GetGame", ctx, int64(1)).Return(mathBlitz(), nil)
	passThroughTx(f.dbManager, ctx)
	f.matchRepo.On("InsertMatch", ctx, mock.MatchedBy(func(m *model.Match) bool {
		return m.Player1ID == 1 && m.Player2ID == nil && m.BetAmount == 50 && m.Status == model.MatchWaiting
	}), mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Match).ID = 42
	}).Return(nil)
	f.ledger.On("DebitTx", ctx, ledgerEntry(1, 50, model.TransactionBet, 42), mock.Anything).Return(int64(950), nil)
	f.events.On("PublishMatchEvent", ctx, eventOf(model.EventMatchCreated)).Return(nil)

	match, err := f.service.CreateMatch(ctx, 1, &model.CreateMatchRequest{GameID: 1, BetAmount: "50"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), match.ID)
	assert.Equal(t, model.MatchWaiting, match.Status)
}

func TestCreateMatch_BetOutOfRange(t *testing.T) {
	ctx := context.Background()
	f := newMatchFixture(t)

	f.gameRepo.On("GetGame", ctx, int64(1)).Return(mathBlitz(), nil)

	for _, bet := range []json.Number{"5", "501"} {
		match, err := f.service.CreateMatch(ctx, 1, &model.CreateMatchRequest{GameID: 1, BetAmount: bet})
		require.Error(t, err)
		assert.Nil(t, match)
		assert.ErrorIs(t, err, model.ErrInvalidBet)
	}
}

func TestCreateMatch_NonIntegerBet(t *testing.T) {
	f := newMatchFixture(t)

	_, err := f.service.CreateMatch(context.Background(), 1, &model.CreateMatchRequest{GameID: 1, BetAmount: "12.5"})

	assert.ErrorIs(t, err, model.ErrInvalidBet)
}

func TestCreateMatch_InactiveGame(t *testing.T) {
	ctx := context.Background()
	f := newMatchFixture(t)

	game := mathBlitz()
	game.Active = false
	f.gameRepo.On("GetGame", ctx, int64(1)).Return(game, nil)

	_, err := f.service.CreateMatch(ctx, 1, &model.CreateMatchRequest{GameID: 1, BetAmount: "50"})

	assert.ErrorIs(t, err, model.ErrGameNotFound)
}

func TestCreateMatch_InsufficientFunds(t *testing.T) {
	ctx := context.Background()
	f := newMatchFixture(t)

	f.gameRepo.On("GetGame", ctx, int64(1)).Return(mathBlitz(), nil)
	passThroughTx(f.dbManager, ctx)
	f.matchRepo.On("InsertMatch", ctx, mock.Anything, mock.Anything).Return(nil)
	f.ledger.On("DebitTx", ctx, mock.Anything, mock.Anything).Return(int64(0), model.ErrInsufficientFunds)

	match, err := f.service.CreateMatch(ctx, 1, &model.CreateMatchRequest{GameID: 1, BetAmount: "500"})

	require.Error(t, err)
	assert.Nil(t, match)
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)
}

func TestJoinMatch_HappyPath(t *testing.T) {
	ctx := context.Background()
	f := newMatchFixture(t)

	passThroughTx(f.dbManager, ctx)
	f.matchRepo.On("JoinIfWaiting", ctx, int64(42), int64(2), mock.Anything, mock.Anything).Return(inProgressMatch(42, 1, 2, 50), nil)
	f.ledger.On("DebitTx", ctx, ledgerEntry(2, 50, model.TransactionBet, 42), mock.Anything).Return(int64(150), nil)
	f.events.On("PublishMatchEvent", ctx, eventOf(model.EventMatchJoined)).Return(nil)

	match, err := f.service.JoinMatch(ctx, 42, 2)

	require.NoError(t, err)
	assert.Equal(t, model.MatchInProgress, match.Status)
	assert.Equal(t, int64(2), *match.Player2ID)
}

func TestJoinMatch_AlreadyTaken(t *testing.T) {
	ctx := context.Background()
	f := newMatchFixture(t)

	passThroughTx(f.dbManager, ctx)
	f.matchRepo.On("JoinIfWaiting", ctx, int64(42), int64(3), mock.Anything, mock.Anything).Return(nil, nil)
	f.matchRepo.On("GetMatch", ctx, int64(42), mock.Anything).Return(inProgressMatch(42, 1, 2, 50), nil)

	match, err := f.service.JoinMatch(ctx, 42, 3)

	require.Error(t, err)
	assert.Nil(t, match)
	assert.ErrorIs(t, err, model.ErrMatchNotAvailable)
	f.ledger.AssertNotCalled(t, "DebitTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestJoinMatch_OwnMatch(t *testing.T) {
	ctx := context.Background()
	f := newMatchFixture(t)

	passThroughTx(f.dbManager, ctx)
	f.matchRepo.On("JoinIfWaiting", ctx, int64(42), int64(1), mock.Anything, mock.Anything).Return(nil, nil)
	f.matchRepo.On("GetMatch", ctx, int64(42), mock.Anything).Return(&model.Match{ID: 42, Player1ID: 1, BetAmount: 50, Status: model.MatchWaiting}, nil)

	_, err := f.service.JoinMatch(ctx, 42, 1)

	assert.ErrorIs(t, err, model.ErrSelfJoin)
}

func TestJoinMatch_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newMatchFixture(t)

	passThroughTx(f.dbManager, ctx)
	f.matchRepo.On("JoinIfWaiting", ctx, int64(404), int64(2), mock.Anything, mock.Anything).Return(nil, nil)
	f.matchRepo.On("GetMatch", ctx, int64(404), mock.Anything).Return(nil, model.ErrMatchNotFound)

	_, err := f.service.JoinMatch(ctx, 404, 2)

	assert.ErrorIs(t, err, model.ErrMatchNotFound)
}

func TestCancelMatch_RefundsExactBet(t *testing.T) {
	ctx := context.Background()
	f := newMatchFixture(t)

	passThroughTx(f.dbManager, ctx)
	f.matchRepo.On("CancelIfWaiting", ctx, int64(42), mock.MatchedBy(func(id *int64) bool { return id != nil && *id == 1 }), mock.Anything).
		Return(&model.Match{ID: 42, Player1ID: 1, BetAmount: 250, Status: model.MatchCancelled}, nil)
	f.ledger.On("CreditTx", ctx, ledgerEntry(1, 250, model.TransactionRefund, 42), mock.Anything).Return(int64(1000), nil)
	f.events.On("PublishMatchEvent", ctx, eventOf(model.EventMatchCancelled)).Return(nil)

	match, err := f.service.CancelMatch(ctx, 42, 1)

	require.NoError(t, err)
	assert.Equal(t, model.MatchCancelled, match.Status)
	f.ledger.AssertNumberOfCalls(t, "CreditTx", 1)
}

func TestCancelMatch_NotCreator(t *testing.T) {
	ctx := context.Background()
	f := newMatchFixture(t)

	passThroughTx(f.dbManager, ctx)
	f.matchRepo.On("CancelIfWaiting", ctx, int64(42), mock.Anything, mock.Anything).Return(nil, nil)
	f.matchRepo.On("GetMatch", ctx, int64(42), mock.Anything).Return(&model.Match{ID: 42, Player1ID: 1, BetAmount: 50, Status: model.MatchWaiting}, nil)

	_, err := f.service.CancelMatch(ctx, 42, 2)

	assert.ErrorIs(t, err, model.ErrForbidden)
}

func TestCancelMatch_AlreadyJoined(t *testing.T) {
	ctx := context.Background()
	f := newMatchFixture(t)

	passThroughTx(f.dbManager, ctx)
	f.matchRepo.On("CancelIfWaiting", ctx, int64(42), mock.Anything, mock.Anything).Return(nil, nil)
	f.matchRepo.On("GetMatch", ctx, int64(42), mock.Anything).Return(inProgressMatch(42, 1, 2, 50), nil)

	_, err := f.service.CancelMatch(ctx, 42, 1)

	assert.ErrorIs(t, err, model.ErrMatchNotAvailable)
	f.ledger.AssertNotCalled(t, "CreditTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestExpireMatch_Refunds(t *testing.T) {
	ctx := context.Background()
	f := newMatchFixture(t)

	passThroughTx(f.dbManager, ctx)
	f.matchRepo.On("CancelIfWaiting", ctx, int64(42), (*int64)(nil), mock.Anything).
		Return(&model.Match{ID: 42, Player1ID: 1, BetAmount: 50, Status: model.MatchCancelled}, nil)
	f.ledger.On("CreditTx", ctx, ledgerEntry(1, 50, model.TransactionRefund, 42), mock.Anything).Return(int64(1000), nil)
	f.events.On("PublishMatchEvent", ctx, eventOf(model.EventMatchExpired)).Return(nil)

	cancelled, err := f.service.ExpireMatch(ctx, 42)

	require.NoError(t, err)
	assert.True(t, cancelled)
}

func TestExpireMatch_NoLongerWaitingIsNoOp(t *testing.T) {
	ctx := context.Background()
	f := newMatchFixture(t)

	passThroughTx(f.dbManager, ctx)
	f.matchRepo.On("CancelIfWaiting", ctx, int64(42), (*int64)(nil), mock.Anything).Return(nil, nil)

	cancelled, err := f.service.ExpireMatch(ctx, 42)

	require.NoError(t, err)
	assert.False(t, cancelled)
	f.ledger.AssertNotCalled(t, "CreditTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestCompleteMatch_WinnerTakesPot(t *testing.T) {
	ctx := context.Background()
	f := newMatchFixture(t)

	completed := inProgressMatch(42, 1, 2, 50)
	completed.Status = model.MatchCompleted
	completed.WinnerID = int64Ptr(1)

	f.matchRepo.On("GetMatch", ctx, int64(42)).Return(inProgressMatch(42, 1, 2, 50), nil)
	passThroughTx(f.dbManager, ctx)
	f.matchRepo.On("CompleteIfInProgress", ctx, int64(42), mock.MatchedBy(func(id *int64) bool { return id != nil && *id == 1 }),
		mock.Anything, mock.Anything, mock.Anything).Return(completed, nil)
	f.ledger.On("CreditTx", ctx, ledgerEntry(1, 100, model.TransactionWin, 42), mock.Anything).Return(int64(1050), nil)
	f.userRepo.On("RecordMatchResult", ctx, int64(1), true, mock.Anything).Return(nil)
	f.userRepo.On("RecordMatchResult", ctx, int64(2), false, mock.Anything).Return(nil)
	f.events.On("PublishMatchEvent", ctx, eventOf(model.EventMatchCompleted)).Return(nil)

	match, err := f.service.CompleteMatch(ctx, 42, 2, &model.CompleteMatchRequest{WinnerID: int64Ptr(1), GameData: json.RawMessage(`{"score":[10,7]}`)})

	require.NoError(t, err)
	assert.Equal(t, model.MatchCompleted, match.Status)
	f.ledger.AssertNumberOfCalls(t, "CreditTx", 1)
}

func TestCompleteMatch_DrawRefundsEachPlayer(t *testing.T) {
	ctx := context.Background()
	f := newMatchFixture(t)

	completed := inProgressMatch(42, 1, 2, 50)
	completed.Status = model.MatchCompleted

	f.matchRepo.On("GetMatch", ctx, int64(42)).Return(inProgressMatch(42, 1, 2, 50), nil)
	passThroughTx(f.dbManager, ctx)
	f.matchRepo.On("CompleteIfInProgress", ctx, int64(42), (*int64)(nil), mock.Anything, mock.Anything, mock.Anything).Return(completed, nil)
	f.ledger.On("CreditTx", ctx, ledgerEntry(1, 50, model.TransactionRefund, 42), mock.Anything).Return(int64(1000), nil)
	f.ledger.On("CreditTx", ctx, ledgerEntry(2, 50, model.TransactionRefund, 42), mock.Anything).Return(int64(200), nil)
	f.userRepo.On("RecordMatchResult", ctx, int64(1), false, mock.Anything).Return(nil)
	f.userRepo.On("RecordMatchResult", ctx, int64(2), false, mock.Anything).Return(nil)
	f.events.On("PublishMatchEvent", ctx, eventOf(model.EventMatchCompleted)).Return(nil)

	_, err := f.service.CompleteMatch(ctx, 42, 1, &model.CompleteMatchRequest{})

	require.NoError(t, err)
	f.ledger.AssertNumberOfCalls(t, "CreditTx", 2)
}

func TestCompleteMatch_SecondCompletionRejected(t *testing.T) {
	ctx := context.Background()
	f := newMatchFixture(t)

	done := inProgressMatch(42, 1, 2, 50)
	done.Status = model.MatchCompleted
	done.WinnerID = int64Ptr(1)

	f.matchRepo.On("GetMatch", ctx, int64(42)).Return(done, nil)
	passThroughTx(f.dbManager, ctx)
	f.matchRepo.On("CompleteIfInProgress", ctx, int64(42), mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	_, err := f.service.CompleteMatch(ctx, 42, 1, &model.CompleteMatchRequest{WinnerID: int64Ptr(1)})

	assert.ErrorIs(t, err, model.ErrMatchStateConflict)
	f.ledger.AssertNotCalled(t, "CreditTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestCompleteMatch_SingleSeatCannotWin(t *testing.T) {
	ctx := context.Background()
	f := newMatchFixture(t)

	f.matchRepo.On("GetMatch", ctx, int64(42)).Return(&model.Match{ID: 42, Player1ID: 1, BetAmount: 50, Status: model.MatchWaiting}, nil)
	passThroughTx(f.dbManager, ctx)
	f.matchRepo.On("CompleteIfInProgress", ctx, int64(42), mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	_, err := f.service.CompleteMatch(ctx, 42, 1, &model.CompleteMatchRequest{WinnerID: int64Ptr(1)})

	assert.ErrorIs(t, err, model.ErrMatchStateConflict)
}

func TestCompleteMatch_CallerNotSeated(t *testing.T) {
	ctx := context.Background()
	f := newMatchFixture(t)

	f.matchRepo.On("GetMatch", ctx, int64(42)).Return(inProgressMatch(42, 1, 2, 50), nil)

	_, err := f.service.CompleteMatch(ctx, 42, 9, &model.CompleteMatchRequest{WinnerID: int64Ptr(9)})

	assert.ErrorIs(t, err, model.ErrForbidden)
}

func TestCompleteMatch_WinnerNotSeated(t *testing.T) {
	ctx := context.Background()
	f := newMatchFixture(t)

	f.matchRepo.On("GetMatch", ctx, int64(42)).Return(inProgressMatch(42, 1, 2, 50), nil)

	_, err := f.service.CompleteMatch(ctx, 42, 1, &model.CompleteMatchRequest{WinnerID: int64Ptr(9)})

	assert.ErrorIs(t, err, model.ErrInvalidWinner)
}

func TestMatchService_PublishFailureDoesNotFailOperation(t *testing.T) {
	ctx := context.Background()
	f := newMatchFixture(t)

	passThroughTx(f.dbManager, ctx)
	f.matchRepo.On("CancelIfWaiting", ctx, int64(42), mock.Anything, mock.Anything).
		Return(&model.Match{ID: 42, Player1ID: 1, BetAmount: 50, Status: model.MatchCancelled}, nil)
	f.ledger.On("CreditTx", ctx, mock.Anything, mock.Anything).Return(int64(1000), nil)
	f.events.On("PublishMatchEvent", ctx, mock.Anything).Return(assert.AnError)

	_, err := f.service.CancelMatch(ctx, 42, 1)

	assert.NoError(t, err)
}
