package service

import (
	"context"
	"testing"
	"token-arena/internal/model"
	"token-arena/mocks/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func passThroughTx(m *mocks.DBManager, ctx any) {
	m.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
}

func TestLedger_Debit_HappyPath(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	mockTransRepo := mocks.NewTransactionRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	passThroughTx(mockDBManager, ctx)
	mockUserRepo.On("GetUserForUpdate", ctx, int64(1), mock.Anything).Return(&model.User{ID: 1, Balance: 1000}, nil)
	mockUserRepo.On("UpdateBalance", ctx, int64(1), int64(950), mock.Anything).Return(nil)
	mockTransRepo.On("InsertTransaction", ctx, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.UserID == 1 &&
			trans.Amount == -50 &&
			trans.Type == model.TransactionBet &&
			trans.MatchID != nil && *trans.MatchID == 7
	}), mock.Anything).Return(nil)

	ledger := NewLedgerService(mockUserRepo, mockTransRepo, mockDBManager, zerolog.Nop())

	matchID := int64(7)
	balance, err := ledger.Debit(ctx, &model.LedgerEntry{UserID: 1, MatchID: &matchID, Amount: 50, Type: model.TransactionBet})

	require.NoError(t, err)
	assert.Equal(t, int64(950), balance)
}

func TestLedger_Debit_InsufficientFunds(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	mockTransRepo := mocks.NewTransactionRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	passThroughTx(mockDBManager, ctx)
	mockUserRepo.On("GetUserForUpdate", ctx, int64(1), mock.Anything).Return(&model.User{ID: 1, Balance: 30}, nil)

	ledger := NewLedgerService(mockUserRepo, mockTransRepo, mockDBManager, zerolog.Nop())

	balance, err := ledger.Debit(ctx, &model.LedgerEntry{UserID: 1, Amount: 50, Type: model.TransactionBet})

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)
	assert.Zero(t, balance)
	mockUserRepo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLedger_Debit_CheckConstraintIsInsufficientFunds(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	mockTransRepo := mocks.NewTransactionRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	passThroughTx(mockDBManager, ctx)
	mockUserRepo.On("GetUserForUpdate", ctx, int64(1), mock.Anything).Return(&model.User{ID: 1, Balance: 100}, nil)
	mockUserRepo.On("UpdateBalance", ctx, int64(1), int64(0), mock.Anything).Return(model.ErrInsufficientFunds)

	ledger := NewLedgerService(mockUserRepo, mockTransRepo, mockDBManager, zerolog.Nop())

	_, err := ledger.Debit(ctx, &model.LedgerEntry{UserID: 1, Amount: 100, Type: model.TransactionBet})

	assert.ErrorIs(t, err, model.ErrInsufficientFunds)
}

func TestLedger_Credit_HappyPath(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	mockTransRepo := mocks.NewTransactionRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	passThroughTx(mockDBManager, ctx)
	mockUserRepo.On("GetUserForUpdate", ctx, int64(3), mock.Anything).Return(&model.User{ID: 3, Balance: 0}, nil)
	mockUserRepo.On("UpdateBalance", ctx, int64(3), int64(1000), mock.Anything).Return(nil)
	mockTransRepo.On("InsertTransaction", ctx, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.UserID == 3 && trans.Amount == 1000 && trans.Type == model.TransactionBonus && trans.MatchID == nil
	}), mock.Anything).Return(nil)

	ledger := NewLedgerService(mockUserRepo, mockTransRepo, mockDBManager, zerolog.Nop())

	balance, err := ledger.Credit(ctx, &model.LedgerEntry{UserID: 3, Amount: 1000, Type: model.TransactionBonus})

	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance)
}

func TestLedger_NonPositiveAmountRejected(t *testing.T) {
	ctx := context.Background()

	ledger := NewLedgerService(mocks.NewUserRepository(t), mocks.NewTransactionRepository(t), mocks.NewDBManager(t), zerolog.Nop())

	for _, amount := range []int64{0, -5} {
		_, err := ledger.CreditTx(ctx, &model.LedgerEntry{UserID: 1, Amount: amount, Type: model.TransactionBonus}, nil)
		assert.ErrorIs(t, err, model.ErrInvalidAmount)

		_, err = ledger.DebitTx(ctx, &model.LedgerEntry{UserID: 1, Amount: amount, Type: model.TransactionBet}, nil)
		assert.ErrorIs(t, err, model.ErrInvalidAmount)
	}
}

func TestLedger_UserNotFound(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	passThroughTx(mockDBManager, ctx)
	mockUserRepo.On("GetUserForUpdate", ctx, int64(99), mock.Anything).Return(nil, model.ErrUserNotFound)

	ledger := NewLedgerService(mockUserRepo, mocks.NewTransactionRepository(t), mockDBManager, zerolog.Nop())

	_, err := ledger.Credit(ctx, &model.LedgerEntry{UserID: 99, Amount: 10, Type: model.TransactionBonus})

	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestLedger_TransferAtomic_LocksInIDOrder(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	mockTransRepo := mocks.NewTransactionRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	var lockOrder []int64
	record := func(args mock.Arguments) { lockOrder = append(lockOrder, args.Get(1).(int64)) }

	passThroughTx(mockDBManager, ctx)
	mockUserRepo.On("GetUserForUpdate", ctx, int64(1), mock.Anything).Run(record).Return(&model.User{ID: 1, Balance: 200}, nil)
	mockUserRepo.On("GetUserForUpdate", ctx, int64(2), mock.Anything).Run(record).Return(&model.User{ID: 2, Balance: 500}, nil)
	mockUserRepo.On("UpdateBalance", ctx, int64(2), int64(400), mock.Anything).Return(nil)
	mockUserRepo.On("UpdateBalance", ctx, int64(1), int64(300), mock.Anything).Return(nil)
	mockTransRepo.On("InsertTransaction", ctx, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.UserID == 2 && trans.Amount == -100 && trans.Type == model.TransactionTransferOut
	}), mock.Anything).Return(nil)
	mockTransRepo.On("InsertTransaction", ctx, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.UserID == 1 && trans.Amount == 100 && trans.Type == model.TransactionTransferIn
	}), mock.Anything).Return(nil)

	ledger := NewLedgerService(mockUserRepo, mockTransRepo, mockDBManager, zerolog.Nop())

	balances, err := ledger.TransferAtomic(ctx, 2, 1, 100, "transfer to alice")

	require.NoError(t, err)
	assert.Equal(t, int64(400), balances.SenderBalance)
	assert.Equal(t, int64(300), balances.RecipientBalance)
	require.GreaterOrEqual(t, len(lockOrder), 2)
	assert.Equal(t, []int64{1, 2}, lockOrder[:2])
}

func TestLedger_TransferAtomic_InsufficientFundsWritesNothing(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	mockTransRepo := mocks.NewTransactionRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	passThroughTx(mockDBManager, ctx)
	mockUserRepo.On("GetUserForUpdate", ctx, int64(1), mock.Anything).Return(&model.User{ID: 1, Balance: 50}, nil)
	mockUserRepo.On("GetUserForUpdate", ctx, int64(2), mock.Anything).Return(&model.User{ID: 2, Balance: 0}, nil)

	ledger := NewLedgerService(mockUserRepo, mockTransRepo, mockDBManager, zerolog.Nop())

	balances, err := ledger.TransferAtomic(ctx, 1, 2, 100, "transfer to bob")

	require.Error(t, err)
	assert.Nil(t, balances)
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)
	mockTransRepo.AssertNotCalled(t, "InsertTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func TestLedger_TransferAtomic_Validation(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedgerService(mocks.NewUserRepository(t), mocks.NewTransactionRepository(t), mocks.NewDBManager(t), zerolog.Nop())

	_, err := ledger.TransferAtomic(ctx, 1, 1, 10, "")
	assert.ErrorIs(t, err, model.ErrSelfTransfer)

	_, err = ledger.TransferAtomic(ctx, 1, 2, 0, "")
	assert.ErrorIs(t, err, model.ErrInvalidAmount)
}

func TestLedger_GetBalance(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	mockUserRepo.On("GetBalance", ctx, int64(4)).Return(int64(1050), nil)

	ledger := NewLedgerService(mockUserRepo, mocks.NewTransactionRepository(t), mocks.NewDBManager(t), zerolog.Nop())

	resp, err := ledger.GetBalance(ctx, 4)

	require.NoError(t, err)
	assert.Equal(t, &model.BalanceResponse{UserID: 4, Balance: 1050}, resp)
}
