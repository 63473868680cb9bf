package seeder

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/clubvest/clubledger-backend/internal/domain"
)

// seedFundRepo stubs the two repository methods seeding touches
type seedFundRepo struct {
	mock.Mock
	domain.FundRepository
}

func (m *seedFundRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Fund, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fund), args.Error(1)
}

func (m *seedFundRepo) Create(ctx context.Context, fund *domain.Fund) error {
	args := m.Called(ctx, fund)
	return args.Error(0)
}

func TestSeed_CreatesMissingDefaultFunds(t *testing.T) {
	ctx := context.Background()
	repo := new(seedFundRepo)
	notFound := &domain.NotFoundError{Entity: "fund"}

	repo.On("GetByID", ctx, DefaultGeneralFund).Return(nil, notFound)
	repo.On("GetByID", ctx, DefaultEmergencyFund).Return(nil, notFound)
	repo.On("GetByID", ctx, DefaultSocialFund).Return(nil, notFound)
	repo.On("Create", ctx, mock.MatchedBy(func(fund *domain.Fund) bool {
		return fund.CurrentBalance.IsZero() && fund.IsActive
	})).Return(nil).Times(3)

	err := NewFundSeeder(repo).Seed(ctx)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestSeed_SkipsExistingFunds(t *testing.T) {
	ctx := context.Background()
	repo := new(seedFundRepo)

	repo.On("GetByID", ctx, DefaultGeneralFund).
		Return(&domain.Fund{ID: DefaultGeneralFund, Name: "General Fund"}, nil)
	repo.On("GetByID", ctx, DefaultEmergencyFund).
		Return(&domain.Fund{ID: DefaultEmergencyFund, Name: "Emergency Fund"}, nil)
	repo.On("GetByID", ctx, DefaultSocialFund).
		Return(&domain.Fund{ID: DefaultSocialFund, Name: "Social Fund"}, nil)

	err := NewFundSeeder(repo).Seed(ctx)

	require.NoError(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
