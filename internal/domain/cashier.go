package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashierPayment is a raw payment record collected by a human cashier
// before the money enters the formal ledger. Payments are the inflow
// side of the cashier sub-ledger.
type CashierPayment struct {
	ID          uuid.UUID
	CashierName string
	MemberID    uuid.UUID
	Amount      decimal.Decimal
	Method      string // validated against reference data payment methods
	Date        time.Time
	Description string
}

// Validate ensures the payment adheres to domain rules.
func (p *CashierPayment) Validate() error {
	if p.CashierName == "" {
		return &ValidationError{Field: "cashier_name", Reason: "cashier name is required"}
	}
	if p.Amount.LessThanOrEqual(decimal.Zero) {
		return &ValidationError{Field: "amount", Reason: "amount must be positive"}
	}
	return nil
}

// CashierTransfer moves informal cash held by a cashier into either
// another cashier's holding or a formal fund. Exactly one of ToCashier
// and ToFundID is set. When the destination is a fund, the transfer is
// reconciled with the formal ledger through LedgerTransactionID: cash
// leaving the cashier pool corresponds to a deposit entering the fund.
type CashierTransfer struct {
	ID                  uuid.UUID
	FromCashier         string
	ToCashier           string
	ToFundID            *uuid.UUID
	Amount              decimal.Decimal
	Date                time.Time
	CreatedBy           uuid.UUID
	Description         string
	LedgerTransactionID *uuid.UUID // set when ToFundID is set
}

// Validate ensures the transfer adheres to domain rules.
// CRITICAL: the destination is exactly one of cashier or fund.
func (t *CashierTransfer) Validate() error {
	if t.FromCashier == "" {
		return &ValidationError{Field: "from_cashier", Reason: "source cashier is required"}
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return &ValidationError{Field: "amount", Reason: "amount must be positive"}
	}

	hasCashier := t.ToCashier != ""
	hasFund := t.ToFundID != nil
	if hasCashier == hasFund {
		return &ValidationError{Field: "destination", Reason: "exactly one of destination cashier or destination fund is required"}
	}
	if hasCashier && t.ToCashier == t.FromCashier {
		return &ValidationError{Field: "to_cashier", Reason: "source and destination cashiers must differ"}
	}

	return nil
}

// CashierLedgerEntry is the derived net holding of one cashier:
//
//	Σ payments received − Σ transfers out + Σ transfers in
//
// It is recomputed on read and never stored as authoritative state.
type CashierLedgerEntry struct {
	CashierName string
	TotalAmount decimal.Decimal
}
