package fundregistry

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

// MockTransactionCounter stubs the transaction repository methods the
// registry uses
type MockTransactionCounter struct {
	mock.Mock
	domain.TransactionRepository
}

func (m *MockTransactionCounter) CountByFund(ctx context.Context, fundID uuid.UUID) (int, error) {
	args := m.Called(ctx, fundID)
	return args.Int(0), args.Error(1)
}

// MockAllocationRepository is a mock implementation of AllocationRepository
type MockAllocationRepository struct {
	mock.Mock
}

func (m *MockAllocationRepository) ListByFund(ctx context.Context, fundID uuid.UUID) ([]*domain.MemberFundAllocation, error) {
	args := m.Called(ctx, fundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MemberFundAllocation), args.Error(1)
}

func (m *MockAllocationRepository) CountByFund(ctx context.Context, fundID uuid.UUID) (int, error) {
	args := m.Called(ctx, fundID)
	return args.Int(0), args.Error(1)
}

func (m *MockAllocationRepository) ReplaceForFund(ctx context.Context, fundID uuid.UUID, allocations []*domain.MemberFundAllocation) error {
	args := m.Called(ctx, fundID, allocations)
	return args.Error(0)
}

func TestCreateFund_StartsActiveWithZeroBalance(t *testing.T) {
	ctx := context.Background()
	fundRepo := new(MockFundRepository)
	service := NewService(fundRepo, new(MockTransactionCounter), new(MockAllocationRepository))

	fundRepo.On("GetByName", ctx, "Emergency Fund").Return(nil, errors.New("fund not found"))
	fundRepo.On("Create", ctx, mock.MatchedBy(func(fund *domain.Fund) bool {
		return fund.Name == "Emergency Fund" &&
			fund.FundType == domain.FundTypeEmergency &&
			fund.CurrentBalance.Equal(decimal.Zero) &&
			fund.IsActive
	})).Return(nil)

	fund, err := service.CreateFund(ctx, CreateFundInput{
		Name:        "Emergency Fund",
		FundType:    domain.FundTypeEmergency,
		Description: "rainy day money",
	})

	require.NoError(t, err)
	assert.True(t, fund.CurrentBalance.IsZero())
	fundRepo.AssertExpectations(t)
}

func TestCreateFund_RejectsDuplicateName(t *testing.T) {
	ctx := context.Background()
	fundRepo := new(MockFundRepository)
	service := NewService(fundRepo, new(MockTransactionCounter), new(MockAllocationRepository))

	existing := &domain.Fund{ID: uuid.New(), Name: "General Fund", FundType: domain.FundTypeGeneral}
	fundRepo.On("GetByName", ctx, "General Fund").Return(existing, nil)

	_, err := service.CreateFund(ctx, CreateFundInput{Name: "General Fund", FundType: domain.FundTypeGeneral})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	fundRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateFund_RejectsMissingName(t *testing.T) {
	ctx := context.Background()
	service := NewService(new(MockFundRepository), new(MockTransactionCounter), new(MockAllocationRepository))

	_, err := service.CreateFund(ctx, CreateFundInput{FundType: domain.FundTypeGeneral})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "name", vErr.Field)
}

func TestDeleteFund_BlockedByReferencingRecords(t *testing.T) {
	ctx := context.Background()
	fundRepo := new(MockFundRepository)
	txnRepo := new(MockTransactionCounter)
	allocRepo := new(MockAllocationRepository)
	service := NewService(fundRepo, txnRepo, allocRepo)

	fund := &domain.Fund{ID: uuid.New(), Name: "Project Fund", FundType: domain.FundTypeProject}
	fundRepo.On("GetByID", ctx, fund.ID).Return(fund, nil)
	txnRepo.On("CountByFund", ctx, fund.ID).Return(4, nil)
	allocRepo.On("CountByFund", ctx, fund.ID).Return(2, nil)

	err := service.DeleteFund(ctx, fund.ID)

	var conflict *domain.DependencyConflictError
	require.ErrorAs(t, err, &conflict)
	require.Len(t, conflict.Blocking, 2)
	assert.Equal(t, domain.BlockingRecords{RecordType: "transactions", Count: 4}, conflict.Blocking[0])
	assert.Equal(t, domain.BlockingRecords{RecordType: "member allocations", Count: 2}, conflict.Blocking[1])

	// Deletion never cascades
	fundRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteFund_SucceedsWithoutReferences(t *testing.T) {
	ctx := context.Background()
	fundRepo := new(MockFundRepository)
	txnRepo := new(MockTransactionCounter)
	allocRepo := new(MockAllocationRepository)
	service := NewService(fundRepo, txnRepo, allocRepo)

	fund := &domain.Fund{ID: uuid.New(), Name: "Social Fund", FundType: domain.FundTypeSocial}
	fundRepo.On("GetByID", ctx, fund.ID).Return(fund, nil)
	txnRepo.On("CountByFund", ctx, fund.ID).Return(0, nil)
	allocRepo.On("CountByFund", ctx, fund.ID).Return(0, nil)
	fundRepo.On("Delete", ctx, fund.ID).Return(nil)

	require.NoError(t, service.DeleteFund(ctx, fund.ID))
	fundRepo.AssertExpectations(t)
}
