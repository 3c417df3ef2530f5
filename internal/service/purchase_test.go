package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"
	"token-arena/internal/model"
	repomocks "token-arena/mocks/repository"
	svcmocks "token-arena/mocks/service"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type purchaseFixture struct {
	purchaseRepo *repomocks.PurchaseRepository
	userRepo     *repomocks.UserRepository
	dbManager    *repomocks.DBManager
	ledger       *svcmocks.TokenLedger
	service      PurchaseService
}

func newPurchaseFixture(t *testing.T) *purchaseFixture {
	prices, err := NewPriceTable([]int64{100, 500, 1000}, []string{"0.99", "4.49", "8.99"})
	require.NoError(t, err)

	f := &purchaseFixture{
		purchaseRepo: repomocks.NewPurchaseRepository(t),
		userRepo:     repomocks.NewUserRepository(t),
		dbManager:    repomocks.NewDBManager(t),
		ledger:       svcmocks.NewTokenLedger(t),
	}
	f.service = NewPurchaseService(f.purchaseRepo, f.userRepo, f.ledger, f.dbManager, prices, zerolog.Nop())
	return f
}

func TestNewPriceTable(t *testing.T) {
	prices, err := NewPriceTable([]int64{100, 500}, []string{"0.99", "4.49"})
	require.NoError(t, err)
	assert.True(t, prices[500].Equal(decimal.RequireFromString("4.49")))

	_, err = NewPriceTable([]int64{100, 500}, []string{"0.99"})
	assert.Error(t, err)

	_, err = NewPriceTable([]int64{100}, []string{"cheap"})
	assert.Error(t, err)
}

func TestBuy_Success(t *testing.T) {
	ctx := context.Background()
	f := newPurchaseFixture(t)

	passThroughTx(f.dbManager, mock.Anything)
	f.purchaseRepo.On("GetPurchase", mock.Anything, int64(1), "key-1", mock.Anything).Return(nil, model.ErrPurchaseNotFound)
	f.purchaseRepo.On("InsertPurchase", mock.Anything, mock.MatchedBy(func(p *model.Purchase) bool {
		return p.UserID == 1 && p.Amount == 500 && p.IdempotencyKey == "key-1" && p.Price.StringFixed(2) == "4.49"
	}), mock.Anything).Return(nil)
	f.ledger.On("CreditTx", mock.Anything, mock.MatchedBy(func(e *model.LedgerEntry) bool {
		return e.UserID == 1 && e.Amount == 500 && e.Type == model.TransactionPurchase && e.MatchID == nil
	}), mock.Anything).Return(int64(1500), nil)

	resp, err := f.service.Buy(ctx, 1, &model.PurchaseRequest{Amount: "500"}, "key-1")

	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, int64(1500), resp.Balance)
	assert.Equal(t, int64(500), resp.Amount)
	assert.Equal(t, "4.49", resp.Price)
}

func TestBuy_ReplayedKeyDoesNotCredit(t *testing.T) {
	ctx := context.Background()
	f := newPurchaseFixture(t)

	existing := &model.Purchase{ID: 3, UserID: 1, IdempotencyKey: "key-1", Amount: 500, Price: decimal.RequireFromString("4.49")}

	passThroughTx(f.dbManager, mock.Anything)
	f.purchaseRepo.On("GetPurchase", mock.Anything, int64(1), "key-1", mock.Anything).Return(existing, nil)
	f.userRepo.On("GetBalance", mock.Anything, int64(1), mock.Anything).Return(int64(1500), nil)

	resp, err := f.service.Buy(ctx, 1, &model.PurchaseRequest{Amount: "500"}, "key-1")

	require.NoError(t, err)
	assert.Equal(t, "already_processed", resp.Status)
	assert.Equal(t, int64(1500), resp.Balance)
	f.ledger.AssertNotCalled(t, "CreditTx", mock.Anything, mock.Anything, mock.Anything)
	f.purchaseRepo.AssertNotCalled(t, "InsertPurchase", mock.Anything, mock.Anything, mock.Anything)
}

func TestBuy_ReplayedKeyWithDifferentAmount(t *testing.T) {
	ctx := context.Background()
	f := newPurchaseFixture(t)

	existing := &model.Purchase{ID: 3, UserID: 1, IdempotencyKey: "key-1", Amount: 500, Price: decimal.RequireFromString("4.49")}

	passThroughTx(f.dbManager, mock.Anything)
	f.purchaseRepo.On("GetPurchase", mock.Anything, int64(1), "key-1", mock.Anything).Return(existing, nil)

	_, err := f.service.Buy(ctx, 1, &model.PurchaseRequest{Amount: "1000"}, "key-1")

	assert.ErrorIs(t, err, model.ErrDuplicateRequest)
}

func TestBuy_DuplicateInsertRaceReplays(t *testing.T) {
	ctx := context.Background()
	f := newPurchaseFixture(t)

	existing := &model.Purchase{ID: 3, UserID: 1, IdempotencyKey: "key-1", Amount: 100, Price: decimal.RequireFromString("0.99")}

	passThroughTx(f.dbManager, mock.Anything)
	f.purchaseRepo.On("GetPurchase", mock.Anything, int64(1), "key-1", mock.Anything).Return(nil, model.ErrPurchaseNotFound).Once()
	f.purchaseRepo.On("InsertPurchase", mock.Anything, mock.Anything, mock.Anything).Return(model.ErrDuplicateTransaction)
	f.purchaseRepo.On("GetPurchase", mock.Anything, int64(1), "key-1").Return(existing, nil).Once()
	f.userRepo.On("GetBalance", mock.Anything, int64(1)).Return(int64(1100), nil)

	resp, err := f.service.Buy(ctx, 1, &model.PurchaseRequest{Amount: "100"}, "key-1")

	require.NoError(t, err)
	assert.Equal(t, "already_processed", resp.Status)
	assert.Equal(t, int64(1100), resp.Balance)
	assert.Equal(t, "0.99", resp.Price)
	f.ledger.AssertNotCalled(t, "CreditTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestBuy_WithoutKeyGeneratesOne(t *testing.T) {
	ctx := context.Background()
	f := newPurchaseFixture(t)

	passThroughTx(f.dbManager, mock.Anything)
	f.purchaseRepo.On("GetPurchase", mock.Anything, int64(1), mock.AnythingOfType("string"), mock.Anything).Return(nil, model.ErrPurchaseNotFound)
	f.purchaseRepo.On("InsertPurchase", mock.Anything, mock.MatchedBy(func(p *model.Purchase) bool {
		return p.IdempotencyKey != ""
	}), mock.Anything).Return(nil)
	f.ledger.On("CreditTx", mock.Anything, mock.Anything, mock.Anything).Return(int64(1100), nil)

	resp, err := f.service.Buy(ctx, 1, &model.PurchaseRequest{Amount: "100"}, "")

	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
}

func TestBuy_InvalidDenomination(t *testing.T) {
	f := newPurchaseFixture(t)

	_, err := f.service.Buy(context.Background(), 1, &model.PurchaseRequest{Amount: "250"}, "key-1")

	assert.ErrorIs(t, err, model.ErrInvalidDenomination)
}

func TestBuy_InvalidAmount(t *testing.T) {
	f := newPurchaseFixture(t)

	for _, amount := range []string{"-100", "0", "99.5", "lots"} {
		_, err := f.service.Buy(context.Background(), 1, &model.PurchaseRequest{Amount: json.Number(amount)}, "key-1")
		assert.ErrorIs(t, err, model.ErrInvalidAmount, amount)
	}
}

func TestBuy_CoalescedCallerSurvivesLeaderCancel(t *testing.T) {
	f := newPurchaseFixture(t)

	entered := make(chan struct{})
	var enterOnce sync.Once
	release := make(chan struct{})
	var workCtxErr error

	f.dbManager.On("WithTransaction", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(pgx.Tx) error) error {
			enterOnce.Do(func() { close(entered) })
			<-release
			workCtxErr = ctx.Err()
			return fn(nil)
		})
	f.purchaseRepo.On("GetPurchase", mock.Anything, int64(1), "key-1", mock.Anything).Return(nil, model.ErrPurchaseNotFound)
	f.purchaseRepo.On("InsertPurchase", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.ledger.On("CreditTx", mock.Anything, mock.Anything, mock.Anything).Return(int64(1500), nil)

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := f.service.Buy(leaderCtx, 1, &model.PurchaseRequest{Amount: "500"}, "key-1")
		leaderErr <- err
	}()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("leader never reached the transaction")
	}

	type outcome struct {
		resp *model.PurchaseResponse
		err  error
	}
	followerDone := make(chan outcome, 1)
	go func() {
		resp, err := f.service.Buy(context.Background(), 1, &model.PurchaseRequest{Amount: "500"}, "key-1")
		followerDone <- outcome{resp, err}
	}()
	// let the follower join the in-flight purchase
	time.Sleep(50 * time.Millisecond)

	cancelLeader()
	select {
	case err := <-leaderErr:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled leader did not return")
	}

	close(release)
	select {
	case out := <-followerDone:
		require.NoError(t, out.err)
		assert.Equal(t, "success", out.resp.Status)
		assert.Equal(t, int64(1500), out.resp.Balance)
	case <-time.After(2 * time.Second):
		t.Fatal("follower did not finish")
	}
	assert.NoError(t, workCtxErr)
}
