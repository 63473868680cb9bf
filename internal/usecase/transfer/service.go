package transfer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clubvest/clubledger-backend/internal/domain"
	"github.com/clubvest/clubledger-backend/internal/usecase/ledger"
)

// CreateInput represents the input for creating a fund-to-fund transfer.
type CreateInput struct {
	FromFundID  uuid.UUID
	ToFundID    uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// Service implements the transfer protocol: a transfer is a single
// ledger transaction carrying both a source and a destination fund.
// On approval the ledger debits the source and credits the
// destination in one atomic step, re-validating the source balance at
// approval time.
type Service struct {
	Ledger *ledger.Service
}

// NewService creates a new transfer Service instance.
func NewService(ledgerService *ledger.Service) *Service {
	return &Service{Ledger: ledgerService}
}

// Create records a pending transfer between two distinct funds.
// Like every other transaction it has no balance effect until approved.
func (s *Service) Create(ctx context.Context, input CreateInput) (*ledger.Result, error) {
	if input.FromFundID == input.ToFundID {
		return nil, &domain.ValidationError{Field: "to_fund_id", Reason: "transfer source and destination funds must differ"}
	}

	toFundID := input.ToFundID
	return s.Ledger.Create(ctx, ledger.CreateInput{
		FundID:      input.FromFundID,
		ToFundID:    &toFundID,
		Type:        domain.TransactionTypeTransfer,
		Amount:      input.Amount,
		Date:        input.Date,
		Description: input.Description,
	})
}
