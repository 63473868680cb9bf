package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/clubvest/clubledger-backend/internal/domain"
)

// MockFundRepository is a mock implementation of FundRepository for testing
type MockFundRepository struct {
	mock.Mock
}

func (m *MockFundRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Fund, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fund), args.Error(1)
}

func (m *MockFundRepository) GetByName(ctx context.Context, name string) (*domain.Fund, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fund), args.Error(1)
}

func (m *MockFundRepository) Create(ctx context.Context, fund *domain.Fund) error {
	args := m.Called(ctx, fund)
	return args.Error(0)
}

func (m *MockFundRepository) List(ctx context.Context) ([]*domain.Fund, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Fund), args.Error(1)
}

func (m *MockFundRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTransactionRepository is a mock implementation of TransactionRepository for testing
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Create(ctx context.Context, txn *domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) List(ctx context.Context, limit, offset int, fundID *uuid.UUID) ([]*domain.Transaction, error) {
	args := m.Called(ctx, limit, offset, fundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListApprovedByFund(ctx context.Context, fundID uuid.UUID) ([]*domain.Transaction, error) {
	args := m.Called(ctx, fundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) CountByFund(ctx context.Context, fundID uuid.UUID) (int, error) {
	args := m.Called(ctx, fundID)
	return args.Int(0), args.Error(1)
}

func (m *MockTransactionRepository) CountPending(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockTransactionRepository) ApplyApproval(ctx context.Context, txn *domain.Transaction, balances map[uuid.UUID]decimal.Decimal) error {
	args := m.Called(ctx, txn, balances)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateStatus(ctx context.Context, txn *domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteWithBalances(ctx context.Context, id uuid.UUID, balances map[uuid.UUID]decimal.Decimal) error {
	args := m.Called(ctx, id, balances)
	return args.Error(0)
}

// staticIdentity always reports the same authenticated user
type staticIdentity struct {
	id uuid.UUID
}

func (s staticIdentity) CurrentUserID(ctx context.Context) (uuid.UUID, bool) {
	return s.id, true
}

// recordingAudit captures audit calls; fail makes every write error
type recordingAudit struct {
	actions []string
	fail    bool
}

func (a *recordingAudit) Record(ctx context.Context, actorID uuid.UUID, action, entityType string, entityID uuid.UUID, before, after any) error {
	if a.fail {
		return errors.New("audit sink unavailable")
	}
	a.actions = append(a.actions, action)
	return nil
}

func newTestService(fundRepo *MockFundRepository, txnRepo *MockTransactionRepository, auditLog *recordingAudit) (*Service, uuid.UUID) {
	actor := uuid.New()
	return NewService(fundRepo, txnRepo, nil, staticIdentity{id: actor}, auditLog, nil), actor
}

func fundWithBalance(name string, balance int64) *domain.Fund {
	return &domain.Fund{
		ID:             uuid.New(),
		Name:           name,
		FundType:       domain.FundTypeGeneral,
		CurrentBalance: decimal.NewFromInt(balance),
		IsActive:       true,
	}
}

func TestCreate_PendingDepositHasNoBalanceEffect(t *testing.T) {
	ctx := context.Background()
	fundRepo := new(MockFundRepository)
	txnRepo := new(MockTransactionRepository)
	auditLog := &recordingAudit{}
	service, actor := newTestService(fundRepo, txnRepo, auditLog)

	fund := fundWithBalance("General Fund", 1000)
	fundRepo.On("GetByID", ctx, fund.ID).Return(fund, nil)

	txnRepo.On("Create", ctx, mock.MatchedBy(func(txn *domain.Transaction) bool {
		return txn.Status == domain.StatusPending &&
			txn.CreatedBy == actor &&
			txn.Amount.Equal(decimal.NewFromInt(200))
	})).Return(nil)

	result, err := service.Create(ctx, CreateInput{
		FundID: fund.ID,
		Type:   domain.TransactionTypeDeposit,
		Amount: decimal.NewFromInt(200),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, result.Transaction.Status)
	assert.NoError(t, result.AuditWarning)
	assert.Equal(t, []string{"transaction.create"}, auditLog.actions)

	// No balance mutation happens at creation
	txnRepo.AssertNotCalled(t, "ApplyApproval", mock.Anything, mock.Anything, mock.Anything)
	fundRepo.AssertExpectations(t)
	txnRepo.AssertExpectations(t)
}

func TestCreate_RejectsNonPositiveAmount(t *testing.T) {
	ctx := context.Background()
	fundRepo := new(MockFundRepository)
	txnRepo := new(MockTransactionRepository)
	service, _ := newTestService(fundRepo, txnRepo, &recordingAudit{})

	_, err := service.Create(ctx, CreateInput{
		FundID: uuid.New(),
		Type:   domain.TransactionTypeDeposit,
		Amount: decimal.NewFromInt(-5),
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "amount", vErr.Field)
	txnRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_RejectsUnknownType(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(new(MockFundRepository), new(MockTransactionRepository), &recordingAudit{})

	_, err := service.Create(ctx, CreateInput{
		FundID: uuid.New(),
		Type:   domain.TransactionType("DIVIDEND"),
		Amount: decimal.NewFromInt(10),
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "transaction_type", vErr.Field)
}

func TestCreate_ExpenseExceedingBalanceIsRejectedWithZeroSideEffects(t *testing.T) {
	ctx := context.Background()
	fundRepo := new(MockFundRepository)
	txnRepo := new(MockTransactionRepository)
	service, _ := newTestService(fundRepo, txnRepo, &recordingAudit{})

	fund := fundWithBalance("Fund A", 1000)
	fundRepo.On("GetByID", ctx, fund.ID).Return(fund, nil)

	_, err := service.Create(ctx, CreateInput{
		FundID: fund.ID,
		Type:   domain.TransactionTypeExpense,
		Amount: decimal.NewFromFloat(1500.00),
	})

	var balErr *domain.InsufficientBalanceError
	require.ErrorAs(t, err, &balErr)
	assert.Equal(t, "Fund A", balErr.Name)
	assert.True(t, balErr.Available.Equal(decimal.NewFromInt(1000)))
	assert.True(t, balErr.Requested.Equal(decimal.NewFromInt(1500)))

	// Zero side effects: nothing was persisted
	txnRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.True(t, fund.CurrentBalance.Equal(decimal.NewFromInt(1000)))
}

func TestApprove_AppliesSignedBalanceEffect(t *testing.T) {
	ctx := context.Background()
	fundRepo := new(MockFundRepository)
	txnRepo := new(MockTransactionRepository)
	auditLog := &recordingAudit{}
	service, actor := newTestService(fundRepo, txnRepo, auditLog)

	fund := fundWithBalance("General Fund", 1000)
	txn := &domain.Transaction{
		ID:     uuid.New(),
		FundID: fund.ID,
		Type:   domain.TransactionTypeDeposit,
		Amount: decimal.NewFromInt(300),
		Status: domain.StatusPending,
		Date:   time.Now(),
	}

	fundRepo.On("GetByID", ctx, fund.ID).Return(fund, nil)
	txnRepo.On("GetByID", ctx, txn.ID).Return(txn, nil)
	txnRepo.On("ApplyApproval", ctx, txn, mock.MatchedBy(func(balances map[uuid.UUID]decimal.Decimal) bool {
		return balances[fund.ID].Equal(decimal.NewFromInt(1300))
	})).Return(nil)

	result, err := service.Approve(ctx, txn.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, result.Transaction.Status)
	require.NotNil(t, result.Transaction.ApprovedBy)
	assert.Equal(t, actor, *result.Transaction.ApprovedBy)
	assert.NotNil(t, result.Transaction.ApprovedAt)
	txnRepo.AssertExpectations(t)
}

func TestApprove_TwiceIsRejected(t *testing.T) {
	ctx := context.Background()
	fundRepo := new(MockFundRepository)
	txnRepo := new(MockTransactionRepository)
	service, _ := newTestService(fundRepo, txnRepo, &recordingAudit{})

	approved := &domain.Transaction{
		ID:     uuid.New(),
		FundID: uuid.New(),
		Type:   domain.TransactionTypeDeposit,
		Amount: decimal.NewFromInt(50),
		Status: domain.StatusApproved,
	}
	txnRepo.On("GetByID", ctx, approved.ID).Return(approved, nil)

	_, err := service.Approve(ctx, approved.ID)

	var stateErr *domain.InvalidStateTransitionError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, domain.StatusApproved, stateErr.From)
	assert.Equal(t, "approve", stateErr.Operation)
	txnRepo.AssertNotCalled(t, "ApplyApproval", mock.Anything, mock.Anything, mock.Anything)
}

func TestApprove_TransferDebitsSourceAndCreditsDestination(t *testing.T) {
	ctx := context.Background()
	fundRepo := new(MockFundRepository)
	txnRepo := new(MockTransactionRepository)
	service, _ := newTestService(fundRepo, txnRepo, &recordingAudit{})

	fundA := fundWithBalance("Fund A", 1000)
	fundB := fundWithBalance("Fund B", 200)

	txn := &domain.Transaction{
		ID:       uuid.New(),
		FundID:   fundA.ID,
		ToFundID: &fundB.ID,
		Type:     domain.TransactionTypeTransfer,
		Amount:   decimal.NewFromFloat(300.00),
		Status:   domain.StatusPending,
		Date:     time.Now(),
	}

	fundRepo.On("GetByID", ctx, fundA.ID).Return(fundA, nil)
	fundRepo.On("GetByID", ctx, fundB.ID).Return(fundB, nil)
	txnRepo.On("GetByID", ctx, txn.ID).Return(txn, nil)
	txnRepo.On("ApplyApproval", ctx, txn, mock.MatchedBy(func(balances map[uuid.UUID]decimal.Decimal) bool {
		// A=700, B=500: the pair's total is unchanged
		return balances[fundA.ID].Equal(decimal.NewFromInt(700)) &&
			balances[fundB.ID].Equal(decimal.NewFromInt(500))
	})).Return(nil)

	_, err := service.Approve(ctx, txn.ID)
	require.NoError(t, err)
	txnRepo.AssertExpectations(t)
}

func TestApprove_TransferRevalidatesBalanceAtApprovalTime(t *testing.T) {
	ctx := context.Background()
	fundRepo := new(MockFundRepository)
	txnRepo := new(MockTransactionRepository)
	service, _ := newTestService(fundRepo, txnRepo, &recordingAudit{})

	// The source held enough at creation time but has since been drained
	fundA := fundWithBalance("Fund A", 100)
	fundB := fundWithBalance("Fund B", 0)

	txn := &domain.Transaction{
		ID:       uuid.New(),
		FundID:   fundA.ID,
		ToFundID: &fundB.ID,
		Type:     domain.TransactionTypeTransfer,
		Amount:   decimal.NewFromInt(300),
		Status:   domain.StatusPending,
		Date:     time.Now(),
	}

	fundRepo.On("GetByID", ctx, fundA.ID).Return(fundA, nil)
	fundRepo.On("GetByID", ctx, fundB.ID).Return(fundB, nil)
	txnRepo.On("GetByID", ctx, txn.ID).Return(txn, nil)

	_, err := service.Approve(ctx, txn.ID)

	var balErr *domain.InsufficientBalanceError
	require.ErrorAs(t, err, &balErr)
	assert.Equal(t, fundA.ID, balErr.FundID)
	txnRepo.AssertNotCalled(t, "ApplyApproval", mock.Anything, mock.Anything, mock.Anything)
}

func TestReject_RequiresReasonAndPendingStatus(t *testing.T) {
	ctx := context.Background()
	fundRepo := new(MockFundRepository)
	txnRepo := new(MockTransactionRepository)
	service, _ := newTestService(fundRepo, txnRepo, &recordingAudit{})

	txn := &domain.Transaction{
		ID:     uuid.New(),
		FundID: uuid.New(),
		Type:   domain.TransactionTypeWithdrawal,
		Amount: decimal.NewFromInt(75),
		Status: domain.StatusPending,
	}
	txnRepo.On("GetByID", ctx, txn.ID).Return(txn, nil)
	txnRepo.On("UpdateStatus", ctx, mock.MatchedBy(func(updated *domain.Transaction) bool {
		return updated.Status == domain.StatusRejected && updated.RejectionReason == "no receipt provided"
	})).Return(nil)

	// Missing reason is a validation error
	_, err := service.Reject(ctx, txn.ID, "")
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)

	result, err := service.Reject(ctx, txn.ID, "no receipt provided")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, result.Transaction.Status)

	// Terminal: rejecting again is an invalid transition
	_, err = service.Reject(ctx, txn.ID, "again")
	var stateErr *domain.InvalidStateTransitionError
	require.ErrorAs(t, err, &stateErr)
}

func TestDelete_ApprovedTransactionTriggersFullReplay(t *testing.T) {
	ctx := context.Background()
	fundRepo := new(MockFundRepository)
	txnRepo := new(MockTransactionRepository)
	service, _ := newTestService(fundRepo, txnRepo, &recordingAudit{})

	fundID := uuid.New()
	keep := &domain.Transaction{
		ID:     uuid.New(),
		FundID: fundID,
		Type:   domain.TransactionTypeDeposit,
		Amount: decimal.NewFromInt(1000),
		Status: domain.StatusApproved,
	}
	doomed := &domain.Transaction{
		ID:     uuid.New(),
		FundID: fundID,
		Type:   domain.TransactionTypeDeposit,
		Amount: decimal.NewFromInt(400),
		Status: domain.StatusApproved,
	}

	txnRepo.On("GetByID", ctx, doomed.ID).Return(doomed, nil)
	txnRepo.On("ListApprovedByFund", ctx, fundID).Return([]*domain.Transaction{keep, doomed}, nil)
	txnRepo.On("DeleteWithBalances", ctx, doomed.ID, mock.MatchedBy(func(balances map[uuid.UUID]decimal.Decimal) bool {
		// Balance is what it would be had the deleted transaction never existed
		return balances[fundID].Equal(decimal.NewFromInt(1000))
	})).Return(nil)

	_, err := service.Delete(ctx, doomed.ID)
	require.NoError(t, err)
	txnRepo.AssertExpectations(t)
}

func TestDelete_PendingTransactionSkipsRecompute(t *testing.T) {
	ctx := context.Background()
	fundRepo := new(MockFundRepository)
	txnRepo := new(MockTransactionRepository)
	service, _ := newTestService(fundRepo, txnRepo, &recordingAudit{})

	pending := &domain.Transaction{
		ID:     uuid.New(),
		FundID: uuid.New(),
		Type:   domain.TransactionTypeDeposit,
		Amount: decimal.NewFromInt(10),
		Status: domain.StatusPending,
	}

	txnRepo.On("GetByID", ctx, pending.ID).Return(pending, nil)
	txnRepo.On("DeleteWithBalances", ctx, pending.ID, mock.Anything).Return(nil)

	_, err := service.Delete(ctx, pending.ID)
	require.NoError(t, err)
	txnRepo.AssertNotCalled(t, "ListApprovedByFund", mock.Anything, mock.Anything)
}

func TestApprove_AuditFailureSurfacesAsWarningNotError(t *testing.T) {
	ctx := context.Background()
	fundRepo := new(MockFundRepository)
	txnRepo := new(MockTransactionRepository)
	auditLog := &recordingAudit{fail: true}
	service, _ := newTestService(fundRepo, txnRepo, auditLog)

	fund := fundWithBalance("General Fund", 500)
	txn := &domain.Transaction{
		ID:     uuid.New(),
		FundID: fund.ID,
		Type:   domain.TransactionTypeDeposit,
		Amount: decimal.NewFromInt(100),
		Status: domain.StatusPending,
		Date:   time.Now(),
	}

	fundRepo.On("GetByID", ctx, fund.ID).Return(fund, nil)
	txnRepo.On("GetByID", ctx, txn.ID).Return(txn, nil)
	txnRepo.On("ApplyApproval", ctx, txn, mock.Anything).Return(nil)

	result, err := service.Approve(ctx, txn.ID)

	// The ledger action stands; the audit failure is a warning
	require.NoError(t, err)
	assert.Error(t, result.AuditWarning)
	assert.Equal(t, domain.StatusApproved, result.Transaction.Status)
}

func TestList_ValidatesPageBounds(t *testing.T) {
	ctx := context.Background()
	fundRepo := new(MockFundRepository)
	txnRepo := new(MockTransactionRepository)
	service, _ := newTestService(fundRepo, txnRepo, &recordingAudit{})

	_, err := service.List(ctx, 0, 0, nil)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "limit", vErr.Field)

	_, err = service.List(ctx, 10, -1, nil)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "offset", vErr.Field)
	txnRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	fundID := uuid.New()
	page := []*domain.Transaction{{ID: uuid.New(), FundID: fundID}}
	txnRepo.On("List", ctx, 10, 0, &fundID).Return(page, nil)

	txns, err := service.List(ctx, 10, 0, &fundID)
	require.NoError(t, err)
	assert.Equal(t, page, txns)
}

type failingPublisher struct{}

func (failingPublisher) Publish(topic string, event any) error {
	return errors.New("broker unreachable")
}

func TestApprove_PublishFailureDoesNotRevertApproval(t *testing.T) {
	ctx := context.Background()
	fundRepo := new(MockFundRepository)
	txnRepo := new(MockTransactionRepository)
	service := NewService(fundRepo, txnRepo, nil, staticIdentity{id: uuid.New()}, &recordingAudit{}, failingPublisher{})

	fund := fundWithBalance("General Fund", 500)
	txn := &domain.Transaction{
		ID:     uuid.New(),
		FundID: fund.ID,
		Type:   domain.TransactionTypeDeposit,
		Amount: decimal.NewFromInt(100),
		Status: domain.StatusPending,
		Date:   time.Now(),
	}

	fundRepo.On("GetByID", ctx, fund.ID).Return(fund, nil)
	txnRepo.On("GetByID", ctx, txn.ID).Return(txn, nil)
	txnRepo.On("ApplyApproval", ctx, txn, mock.Anything).Return(nil)

	result, err := service.Approve(ctx, txn.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, result.Transaction.Status)
	assert.NoError(t, result.AuditWarning)
}
