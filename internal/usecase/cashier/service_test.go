package cashier

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/clubvest/clubledger-backend/internal/domain"
	"github.com/clubvest/clubledger-backend/internal/usecase/ledger"
)

// MockCashierRepository is a mock implementation of CashierRepository for testing
type MockCashierRepository struct {
	mock.Mock
}

func (m *MockCashierRepository) AddPayment(ctx context.Context, payment *domain.CashierPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockCashierRepository) ListPayments(ctx context.Context) ([]*domain.CashierPayment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CashierPayment), args.Error(1)
}

func (m *MockCashierRepository) AddTransfer(ctx context.Context, transfer *domain.CashierTransfer) error {
	args := m.Called(ctx, transfer)
	return args.Error(0)
}

func (m *MockCashierRepository) ListTransfers(ctx context.Context) ([]*domain.CashierTransfer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CashierTransfer), args.Error(1)
}

// fundGetter stubs the fund lookups the ledger performs
type fundGetter struct {
	mock.Mock
	domain.FundRepository
}

func (m *fundGetter) GetByID(ctx context.Context, id uuid.UUID) (*domain.Fund, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fund), args.Error(1)
}

// txnCreator stubs the transaction persistence the ledger performs
type txnCreator struct {
	mock.Mock
	domain.TransactionRepository
}

func (m *txnCreator) Create(ctx context.Context, txn *domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

type staticIdentity struct {
	id uuid.UUID
}

func (s staticIdentity) CurrentUserID(ctx context.Context) (uuid.UUID, bool) {
	return s.id, true
}

func payment(cashier string, amount int64) *domain.CashierPayment {
	return &domain.CashierPayment{
		ID:          uuid.New(),
		CashierName: cashier,
		MemberID:    uuid.New(),
		Amount:      decimal.NewFromInt(amount),
	}
}

func newTestService(repo *MockCashierRepository, fundRepo *fundGetter, txnRepo *txnCreator) *Service {
	identity := staticIdentity{id: uuid.New()}
	ledgerService := ledger.NewService(fundRepo, txnRepo, nil, identity, nil, nil)
	return NewService(repo, fundRepo, nil, identity, ledgerService)
}

func TestSnapshot_DerivesNetHoldings(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCashierRepository)
	service := newTestService(repo, new(fundGetter), new(txnCreator))

	fundID := uuid.New()
	repo.On("ListPayments", ctx).Return([]*domain.CashierPayment{
		payment("Alice", 500),
		payment("Alice", 250),
		payment("Bob", 100),
	}, nil)
	repo.On("ListTransfers", ctx).Return([]*domain.CashierTransfer{
		{ID: uuid.New(), FromCashier: "Alice", ToCashier: "Bob", Amount: decimal.NewFromInt(200)},
		{ID: uuid.New(), FromCashier: "Bob", ToFundID: &fundID, Amount: decimal.NewFromInt(50)},
	}, nil)

	entries, err := service.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Sorted by cashier name: Alice = 750 - 200, Bob = 100 + 200 - 50
	assert.Equal(t, "Alice", entries[0].CashierName)
	assert.True(t, entries[0].TotalAmount.Equal(decimal.NewFromInt(550)))
	assert.Equal(t, "Bob", entries[1].CashierName)
	assert.True(t, entries[1].TotalAmount.Equal(decimal.NewFromInt(250)))
}

func TestCreateTransfer_ToCashierShiftsHoldingsOnly(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCashierRepository)
	txnRepo := new(txnCreator)
	service := newTestService(repo, new(fundGetter), txnRepo)

	repo.On("ListPayments", ctx).Return([]*domain.CashierPayment{payment("Alice", 300)}, nil)
	repo.On("ListTransfers", ctx).Return([]*domain.CashierTransfer{}, nil)
	repo.On("AddTransfer", ctx, mock.MatchedBy(func(transfer *domain.CashierTransfer) bool {
		return transfer.FromCashier == "Alice" &&
			transfer.ToCashier == "Bob" &&
			transfer.LedgerTransactionID == nil
	})).Return(nil)

	result, err := service.CreateTransfer(ctx, CreateTransferInput{
		FromCashier: "Alice",
		ToCashier:   "Bob",
		Amount:      decimal.NewFromInt(100),
	})

	require.NoError(t, err)
	assert.Nil(t, result.LedgerResult)
	txnRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestCreateTransfer_ToFundCreatesReconcilingDeposit(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCashierRepository)
	fundRepo := new(fundGetter)
	txnRepo := new(txnCreator)
	service := newTestService(repo, fundRepo, txnRepo)

	fund := &domain.Fund{ID: uuid.New(), Name: "General Fund", FundType: domain.FundTypeGeneral, IsActive: true}

	repo.On("ListPayments", ctx).Return([]*domain.CashierPayment{payment("Alice", 300)}, nil)
	repo.On("ListTransfers", ctx).Return([]*domain.CashierTransfer{}, nil)
	fundRepo.On("GetByID", ctx, fund.ID).Return(fund, nil)
	txnRepo.On("Create", ctx, mock.MatchedBy(func(txn *domain.Transaction) bool {
		return txn.Type == domain.TransactionTypeDeposit &&
			txn.Status == domain.StatusPending &&
			txn.FundID == fund.ID &&
			txn.SourceType == "cashier_transfer" &&
			txn.Amount.Equal(decimal.NewFromInt(200))
	})).Return(nil)
	repo.On("AddTransfer", ctx, mock.MatchedBy(func(transfer *domain.CashierTransfer) bool {
		return transfer.LedgerTransactionID != nil
	})).Return(nil)

	result, err := service.CreateTransfer(ctx, CreateTransferInput{
		FromCashier: "Alice",
		ToFundID:    &fund.ID,
		Amount:      decimal.NewFromInt(200),
	})

	require.NoError(t, err)
	require.NotNil(t, result.LedgerResult)
	assert.Equal(t, result.LedgerResult.Transaction.ID, *result.Transfer.LedgerTransactionID)
	repo.AssertExpectations(t)
	txnRepo.AssertExpectations(t)
}

// txnRecorder keeps created transactions in memory so the ledger can
// read them back and delete them again
type txnRecorder struct {
	domain.TransactionRepository
	stored map[uuid.UUID]*domain.Transaction
}

func newTxnRecorder() *txnRecorder {
	return &txnRecorder{stored: make(map[uuid.UUID]*domain.Transaction)}
}

func (r *txnRecorder) Create(ctx context.Context, txn *domain.Transaction) error {
	r.stored[txn.ID] = txn
	return nil
}

func (r *txnRecorder) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	txn, ok := r.stored[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "transaction", ID: id.String()}
	}
	return txn, nil
}

func (r *txnRecorder) DeleteWithBalances(ctx context.Context, id uuid.UUID, balances map[uuid.UUID]decimal.Decimal) error {
	delete(r.stored, id)
	return nil
}

func TestCreateTransfer_FailedTransferRemovesReconcilingDeposit(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCashierRepository)
	fundRepo := new(fundGetter)
	txnRepo := newTxnRecorder()
	identity := staticIdentity{id: uuid.New()}
	ledgerService := ledger.NewService(fundRepo, txnRepo, nil, identity, nil, nil)
	service := NewService(repo, fundRepo, nil, identity, ledgerService)

	fund := &domain.Fund{ID: uuid.New(), Name: "General Fund", FundType: domain.FundTypeGeneral, IsActive: true}
	boom := errors.New("write failed")

	repo.On("ListPayments", ctx).Return([]*domain.CashierPayment{payment("Alice", 300)}, nil)
	repo.On("ListTransfers", ctx).Return([]*domain.CashierTransfer{}, nil)
	fundRepo.On("GetByID", ctx, fund.ID).Return(fund, nil)
	repo.On("AddTransfer", ctx, mock.Anything).Return(boom)

	_, err := service.CreateTransfer(ctx, CreateTransferInput{
		FromCashier: "Alice",
		ToFundID:    &fund.ID,
		Amount:      decimal.NewFromInt(200),
	})

	require.ErrorIs(t, err, boom)
	assert.Empty(t, txnRepo.stored, "no approvable deposit may survive a failed transfer record")
}

func TestCreateTransfer_InsufficientHoldingIsRejected(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCashierRepository)
	service := newTestService(repo, new(fundGetter), new(txnCreator))

	repo.On("ListPayments", ctx).Return([]*domain.CashierPayment{payment("Alice", 50)}, nil)
	repo.On("ListTransfers", ctx).Return([]*domain.CashierTransfer{}, nil)

	_, err := service.CreateTransfer(ctx, CreateTransferInput{
		FromCashier: "Alice",
		ToCashier:   "Bob",
		Amount:      decimal.NewFromInt(100),
	})

	var balErr *domain.InsufficientBalanceError
	require.ErrorAs(t, err, &balErr)
	assert.Equal(t, "Alice", balErr.Name)
	repo.AssertNotCalled(t, "AddTransfer", mock.Anything, mock.Anything)
}

func TestRecordPayment_RejectsNonPositiveAmount(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCashierRepository)
	service := newTestService(repo, new(fundGetter), new(txnCreator))

	_, err := service.RecordPayment(ctx, RecordPaymentInput{
		CashierName: "Alice",
		Amount:      decimal.Zero,
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	repo.AssertNotCalled(t, "AddPayment", mock.Anything, mock.Anything)
}
