package cashier

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clubvest/clubledger-backend/internal/domain"
	"github.com/clubvest/clubledger-backend/internal/usecase/ledger"
)

// RecordPaymentInput represents the input for recording a raw cashier payment.
type RecordPaymentInput struct {
	CashierName string
	MemberID    uuid.UUID
	Amount      decimal.Decimal
	Method      string
	Date        time.Time
	Description string
}

// CreateTransferInput represents the input for moving cash out of a
// cashier's informal holding. Exactly one of ToCashier and ToFundID
// is set.
type CreateTransferInput struct {
	FromCashier string
	ToCashier   string
	ToFundID    *uuid.UUID
	Amount      decimal.Decimal
	Description string
}

// TransferResult is returned by CreateTransfer. LedgerResult is set
// only for cashier-to-fund transfers, where a reconciling deposit is
// created in the formal ledger.
type TransferResult struct {
	Transfer     *domain.CashierTransfer
	LedgerResult *ledger.Result
}

// Service computes the derived cashier sub-ledger and records the
// payments and transfers feeding it. Per-cashier holdings are pure
// derivations over the raw records, recomputed on every read.
type Service struct {
	CashierRepo domain.CashierRepository
	FundRepo    domain.FundRepository
	RefData     domain.ReferenceData
	Identity    domain.IdentityProvider
	Ledger      *ledger.Service
}

// NewService creates a new cashier Service instance.
func NewService(
	cashierRepo domain.CashierRepository,
	fundRepo domain.FundRepository,
	refData domain.ReferenceData,
	identity domain.IdentityProvider,
	ledgerService *ledger.Service,
) *Service {
	return &Service{
		CashierRepo: cashierRepo,
		FundRepo:    fundRepo,
		RefData:     refData,
		Identity:    identity,
		Ledger:      ledgerService,
	}
}

// RecordPayment stores a raw payment collected by a cashier. The
// cashier name and payment method are validated against reference data.
func (s *Service) RecordPayment(ctx context.Context, input RecordPaymentInput) (*domain.CashierPayment, error) {
	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	payment := &domain.CashierPayment{
		ID:          uuid.New(),
		CashierName: input.CashierName,
		MemberID:    input.MemberID,
		Amount:      input.Amount,
		Method:      input.Method,
		Date:        date,
		Description: input.Description,
	}

	if err := payment.Validate(); err != nil {
		return nil, err
	}

	if err := s.validateCashier(ctx, payment.CashierName); err != nil {
		return nil, err
	}
	if err := s.validateMethod(ctx, payment.Method); err != nil {
		return nil, err
	}

	if err := s.CashierRepo.AddPayment(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// Snapshot computes the derived per-cashier net holdings:
//
//	Σ payments received − Σ transfers out + Σ transfers in
//
// The result is sorted by cashier name and never persisted.
func (s *Service) Snapshot(ctx context.Context) ([]*domain.CashierLedgerEntry, error) {
	totals, err := s.holdings(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]*domain.CashierLedgerEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, &domain.CashierLedgerEntry{
			CashierName: name,
			TotalAmount: totals[name],
		})
	}
	return entries, nil
}

// CreateTransfer moves informal cash held by a cashier. A transfer to
// another cashier only shifts holdings within the sub-ledger. A
// transfer to a fund additionally creates a pending deposit in the
// formal ledger so that cash leaving the cashier pool corresponds to
// value entering a fund once approved.
func (s *Service) CreateTransfer(ctx context.Context, input CreateTransferInput) (*TransferResult, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}

	transfer := &domain.CashierTransfer{
		ID:          uuid.New(),
		FromCashier: input.FromCashier,
		ToCashier:   input.ToCashier,
		ToFundID:    input.ToFundID,
		Amount:      input.Amount,
		Date:        time.Now(),
		CreatedBy:   actor,
		Description: input.Description,
	}

	if err := transfer.Validate(); err != nil {
		return nil, err
	}

	if err := s.validateCashier(ctx, transfer.FromCashier); err != nil {
		return nil, err
	}
	if transfer.ToCashier != "" {
		if err := s.validateCashier(ctx, transfer.ToCashier); err != nil {
			return nil, err
		}
	}

	totals, err := s.holdings(ctx)
	if err != nil {
		return nil, err
	}
	held := totals[transfer.FromCashier]
	if held.LessThan(transfer.Amount) {
		return nil, &domain.InsufficientBalanceError{
			Name:      transfer.FromCashier,
			Available: held,
			Requested: transfer.Amount,
		}
	}

	result := &TransferResult{Transfer: transfer}

	if transfer.ToFundID != nil {
		ledgerResult, err := s.Ledger.Create(ctx, ledger.CreateInput{
			FundID:      *transfer.ToFundID,
			Type:        domain.TransactionTypeDeposit,
			Amount:      transfer.Amount,
			Description: fmt.Sprintf("cash handover from cashier %s", transfer.FromCashier),
			SourceType:  "cashier_transfer",
			SourceID:    &transfer.ID,
		})
		if err != nil {
			return nil, err
		}
		transfer.LedgerTransactionID = &ledgerResult.Transaction.ID
		result.LedgerResult = ledgerResult
	}

	if err := s.CashierRepo.AddTransfer(ctx, transfer); err != nil {
		// the reconciling deposit must not outlive the transfer it
		// reconciles, or an approvable transaction would credit the
		// fund while no cash ever left the cashier pool
		if result.LedgerResult != nil {
			if _, delErr := s.Ledger.Delete(ctx, result.LedgerResult.Transaction.ID); delErr != nil {
				return nil, fmt.Errorf("failed to record cashier transfer: %v (reconciling deposit %s left pending: %w)",
					err, result.LedgerResult.Transaction.ID, delErr)
			}
		}
		return nil, err
	}

	return result, nil
}

// holdings folds payments and transfers into a per-cashier total.
func (s *Service) holdings(ctx context.Context) (map[string]decimal.Decimal, error) {
	payments, err := s.CashierRepo.ListPayments(ctx)
	if err != nil {
		return nil, err
	}
	transfers, err := s.CashierRepo.ListTransfers(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	for _, payment := range payments {
		totals[payment.CashierName] = totals[payment.CashierName].Add(payment.Amount)
	}
	for _, transfer := range transfers {
		totals[transfer.FromCashier] = totals[transfer.FromCashier].Sub(transfer.Amount)
		if transfer.ToCashier != "" {
			totals[transfer.ToCashier] = totals[transfer.ToCashier].Add(transfer.Amount)
		}
	}
	return totals, nil
}

func (s *Service) actor(ctx context.Context) (uuid.UUID, error) {
	if s.Identity == nil {
		return uuid.Nil, &domain.ValidationError{Field: "actor", Reason: "no identity provider configured"}
	}
	actor, ok := s.Identity.CurrentUserID(ctx)
	if !ok {
		return uuid.Nil, &domain.ValidationError{Field: "actor", Reason: "no authenticated user"}
	}
	return actor, nil
}

func (s *Service) validateCashier(ctx context.Context, name string) error {
	if s.RefData == nil {
		return nil
	}
	names, err := s.RefData.CashierNames(ctx)
	if err != nil {
		return fmt.Errorf("failed to load cashier names: %w", err)
	}
	for _, known := range names {
		if known == name {
			return nil
		}
	}
	return &domain.ValidationError{Field: "cashier_name", Reason: fmt.Sprintf("unknown cashier %q", name)}
}

func (s *Service) validateMethod(ctx context.Context, method string) error {
	if s.RefData == nil || method == "" {
		return nil
	}
	methods, err := s.RefData.PaymentMethods(ctx)
	if err != nil {
		return fmt.Errorf("failed to load payment methods: %w", err)
	}
	for _, known := range methods {
		if known == method {
			return nil
		}
	}
	return &domain.ValidationError{Field: "payment_method", Reason: fmt.Sprintf("unknown payment method %q", method)}
}
