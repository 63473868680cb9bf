package fundregistry

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clubvest/clubledger-backend/internal/domain"
)

// CreateFundInput represents the input for creating a fund.
type CreateFundInput struct {
	Name        string
	FundType    domain.FundType
	Description string
}

// Service handles fund registry operations: creating, listing and
// deleting the named money pools the ledger operates on. Balances are
// never touched here; that is the ledger's job.
type Service struct {
	FundRepo       domain.FundRepository
	TxnRepo        domain.TransactionRepository
	AllocationRepo domain.AllocationRepository
}

// NewService creates a new fund registry Service instance.
func NewService(
	fundRepo domain.FundRepository,
	txnRepo domain.TransactionRepository,
	allocationRepo domain.AllocationRepository,
) *Service {
	return &Service{
		FundRepo:       fundRepo,
		TxnRepo:        txnRepo,
		AllocationRepo: allocationRepo,
	}
}

// CreateFund creates a new active fund with balance zero.
// Fund names are unique.
func (s *Service) CreateFund(ctx context.Context, input CreateFundInput) (*domain.Fund, error) {
	fund := &domain.Fund{
		ID:             uuid.New(),
		Name:           input.Name,
		FundType:       input.FundType,
		CurrentBalance: decimal.Zero,
		IsActive:       true,
		Description:    input.Description,
	}

	if err := fund.Validate(); err != nil {
		return nil, err
	}

	if existing, err := s.FundRepo.GetByName(ctx, input.Name); err == nil && existing != nil {
		return nil, &domain.ValidationError{Field: "name", Reason: "a fund with this name already exists"}
	}

	if err := s.FundRepo.Create(ctx, fund); err != nil {
		return nil, err
	}

	return fund, nil
}

// ListFunds retrieves all funds.
func (s *Service) ListFunds(ctx context.Context) ([]*domain.Fund, error) {
	return s.FundRepo.List(ctx)
}

// DeleteFund removes a fund. Deletion fails with a
// DependencyConflictError naming the blocking record counts while any
// transaction (as source or transfer destination) or member
// allocation still references the fund. Deletion never cascades.
func (s *Service) DeleteFund(ctx context.Context, id uuid.UUID) error {
	if _, err := s.FundRepo.GetByID(ctx, id); err != nil {
		return err
	}

	txnCount, err := s.TxnRepo.CountByFund(ctx, id)
	if err != nil {
		return err
	}

	allocCount, err := s.AllocationRepo.CountByFund(ctx, id)
	if err != nil {
		return err
	}

	var blocking []domain.BlockingRecords
	if txnCount > 0 {
		blocking = append(blocking, domain.BlockingRecords{RecordType: "transactions", Count: txnCount})
	}
	if allocCount > 0 {
		blocking = append(blocking, domain.BlockingRecords{RecordType: "member allocations", Count: allocCount})
	}

	if len(blocking) > 0 {
		return &domain.DependencyConflictError{Entity: "fund", ID: id, Blocking: blocking}
	}

	return s.FundRepo.Delete(ctx, id)
}
