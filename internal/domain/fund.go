package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FundType represents the type of fund in the system.
// The set is open: new types can be added through reference data
// without touching this package. The constants below are the ones
// every deployment starts with.
type FundType string

const (
	FundTypeGeneral   FundType = "GENERAL"
	FundTypeProject   FundType = "PROJECT"
	FundTypeEmergency FundType = "EMERGENCY"
	FundTypeSocial    FundType = "SOCIAL"
)

// Fund represents a named pool of money with a maintained balance.
// CurrentBalance is owned by the ledger component: it always equals
// the signed sum of all APPROVED transactions that reference this
// fund (as source or, for transfers, as destination).
type Fund struct {
	ID             uuid.UUID
	Name           string
	FundType       FundType
	CurrentBalance decimal.Decimal
	IsActive       bool
	Description    string
}

// Validate ensures the fund adheres to domain rules.
// Returns an error if validation fails.
func (f *Fund) Validate() error {
	if f.Name == "" {
		return &ValidationError{Field: "name", Reason: "fund name cannot be empty"}
	}

	if f.FundType == "" {
		return &ValidationError{Field: "fund_type", Reason: "fund type cannot be empty"}
	}

	// A negative starting balance is never valid; a fund only goes
	// negative through explicitly approved withdrawals, which the
	// ledger blocks anyway.
	if f.CurrentBalance.IsNegative() {
		return &ValidationError{Field: "current_balance", Reason: "fund balance cannot be negative"}
	}

	return nil
}
