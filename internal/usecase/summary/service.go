package summary

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/clubvest/clubledger-backend/internal/domain"
)

// FundSummary represents the club-wide headline figures
type FundSummary struct {
	TotalBalance        decimal.Decimal
	ActiveFunds         int
	PendingTransactions int
}

// Service handles summary-related read operations
type Service struct {
	FundRepo domain.FundRepository
	TxnRepo  domain.TransactionRepository
}

// NewService creates a new summary Service instance
func NewService(fundRepo domain.FundRepository, txnRepo domain.TransactionRepository) *Service {
	return &Service{FundRepo: fundRepo, TxnRepo: txnRepo}
}

// GetFundSummary calculates the headline figures
// Logic:
//   - TotalBalance: sum of current balances across active funds
//   - PendingTransactions: count of transactions still awaiting a decision
func (s *Service) GetFundSummary(ctx context.Context) (*FundSummary, error) {
	funds, err := s.FundRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list funds: %w", err)
	}

	result := &FundSummary{}
	for _, fund := range funds {
		if !fund.IsActive {
			continue
		}
		result.ActiveFunds++
		result.TotalBalance = result.TotalBalance.Add(fund.CurrentBalance)
	}

	pending, err := s.TxnRepo.CountPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending transactions: %w", err)
	}
	result.PendingTransactions = pending

	return result, nil
}
