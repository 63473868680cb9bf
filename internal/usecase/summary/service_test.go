package summary

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/clubvest/clubledger-backend/internal/domain"
)

// fundLister stubs the fund listing the summary folds over
type fundLister struct {
	mock.Mock
	domain.FundRepository
}

func (m *fundLister) List(ctx context.Context) ([]*domain.Fund, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Fund), args.Error(1)
}

// pendingCounter stubs the pending transaction count
type pendingCounter struct {
	mock.Mock
	domain.TransactionRepository
}

func (m *pendingCounter) CountPending(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func TestGetFundSummary_SumsActiveFundsOnly(t *testing.T) {
	ctx := context.Background()
	fundRepo := new(fundLister)
	txnRepo := new(pendingCounter)
	service := NewService(fundRepo, txnRepo)

	fundRepo.On("List", ctx).Return([]*domain.Fund{
		{ID: uuid.New(), Name: "General Fund", IsActive: true, CurrentBalance: decimal.NewFromInt(1200)},
		{ID: uuid.New(), Name: "Project Fund", IsActive: true, CurrentBalance: decimal.NewFromInt(800)},
		{ID: uuid.New(), Name: "Retired Fund", IsActive: false, CurrentBalance: decimal.NewFromInt(9999)},
	}, nil)
	txnRepo.On("CountPending", ctx).Return(3, nil)

	result, err := service.GetFundSummary(ctx)
	require.NoError(t, err)

	assert.True(t, result.TotalBalance.Equal(decimal.NewFromInt(2000)))
	assert.Equal(t, 2, result.ActiveFunds)
	assert.Equal(t, 3, result.PendingTransactions)
}

func TestGetFundSummary_EmptyClub(t *testing.T) {
	ctx := context.Background()
	fundRepo := new(fundLister)
	txnRepo := new(pendingCounter)
	service := NewService(fundRepo, txnRepo)

	fundRepo.On("List", ctx).Return([]*domain.Fund{}, nil)
	txnRepo.On("CountPending", ctx).Return(0, nil)

	result, err := service.GetFundSummary(ctx)
	require.NoError(t, err)

	assert.True(t, result.TotalBalance.IsZero())
	assert.Zero(t, result.ActiveFunds)
	assert.Zero(t, result.PendingTransactions)
}
