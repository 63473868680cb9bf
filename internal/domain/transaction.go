package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of balance effect a transaction
// carries. The set is open: reference data may register more types,
// but every type must map onto one of the signed-effect groups below.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
	TransactionTypeExpense    TransactionType = "EXPENSE"
	TransactionTypeTransfer   TransactionType = "TRANSFER"
	TransactionTypeInvestment TransactionType = "INVESTMENT"
)

// TransactionStatus represents the approval lifecycle state.
// Transactions are created PENDING and transition exactly once to
// APPROVED (balance effect applied) or REJECTED (no balance effect).
type TransactionStatus string

const (
	StatusPending  TransactionStatus = "PENDING"
	StatusApproved TransactionStatus = "APPROVED"
	StatusRejected TransactionStatus = "REJECTED"
)

// Transaction represents a proposed or realized change to one or two
// funds. Only the ledger usecase mutates its status or applies its
// balance effect.
type Transaction struct {
	ID              uuid.UUID
	FundID          uuid.UUID
	ToFundID        *uuid.UUID // NULL unless Type is TRANSFER
	Type            TransactionType
	Amount          decimal.Decimal // absolute value, always positive
	Status          TransactionStatus
	Description     string
	Date            time.Time
	CreatedBy       uuid.UUID
	ApprovedBy      *uuid.UUID
	ApprovedAt      *time.Time
	RejectionReason string
	SourceType      string     // optional back-reference to the originating record
	SourceID        *uuid.UUID // e.g. a project expense that spawned this transaction
}

// IsTransfer reports whether the transaction moves value between two funds.
func (t *Transaction) IsTransfer() bool {
	return t.Type == TransactionTypeTransfer
}

// Debits reports whether the type takes money OUT of the source fund.
func (tt TransactionType) Debits() bool {
	switch tt {
	case TransactionTypeWithdrawal, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	default:
		return false
	}
}

// SignedEffect returns the balance effect this transaction has on the
// given fund once approved: positive for money in, negative for money
// out, zero if the fund is not touched. This is the single source of
// truth for both balance application and replay recomputation.
func (t *Transaction) SignedEffect(fundID uuid.UUID) decimal.Decimal {
	if t.IsTransfer() {
		if t.FundID == fundID {
			return t.Amount.Neg()
		}
		if t.ToFundID != nil && *t.ToFundID == fundID {
			return t.Amount
		}
		return decimal.Zero
	}

	if t.FundID != fundID {
		return decimal.Zero
	}

	if t.Type.Debits() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Validate ensures the transaction adheres to domain rules.
// Returns an error if validation fails.
// CRITICAL: transfers must reference two distinct funds; nothing else
// may carry a destination fund.
func (t *Transaction) Validate() error {
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return &ValidationError{Field: "amount", Reason: "amount must be positive"}
	}

	if t.FundID == uuid.Nil {
		return &ValidationError{Field: "fund_id", Reason: "fund is required"}
	}

	if t.Type == "" {
		return &ValidationError{Field: "transaction_type", Reason: "transaction type is required"}
	}

	if t.IsTransfer() {
		if t.ToFundID == nil {
			return &ValidationError{Field: "to_fund_id", Reason: "transfer requires a destination fund"}
		}
		if *t.ToFundID == t.FundID {
			return &ValidationError{Field: "to_fund_id", Reason: "transfer source and destination funds must differ"}
		}
	} else if t.ToFundID != nil {
		return &ValidationError{Field: "to_fund_id", Reason: "only transfers may carry a destination fund"}
	}

	if t.Date.IsZero() {
		return &ValidationError{Field: "transaction_date", Reason: "transaction date is required"}
	}

	return nil
}

// FundIDs returns every fund this transaction touches.
func (t *Transaction) FundIDs() []uuid.UUID {
	ids := []uuid.UUID{t.FundID}
	if t.ToFundID != nil {
		ids = append(ids, *t.ToFundID)
	}
	return ids
}
