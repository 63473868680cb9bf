package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectInvestment is one member's stake in a project.
// InvestmentPercentage is derived: it is recomputed across ALL
// investments of the project whenever any investment is added or
// removed, so that the percentages of a project always sum to ~100.
type ProjectInvestment struct {
	ID                   uuid.UUID
	ProjectID            uuid.UUID
	MemberID             uuid.UUID
	Amount               decimal.Decimal
	Date                 time.Time
	InvestmentPercentage decimal.Decimal
}

// Validate ensures the investment adheres to domain rules.
func (i *ProjectInvestment) Validate() error {
	if i.ProjectID == uuid.Nil {
		return &ValidationError{Field: "project_id", Reason: "project is required"}
	}
	if i.MemberID == uuid.Nil {
		return &ValidationError{Field: "member_id", Reason: "member is required"}
	}
	if i.Amount.LessThanOrEqual(decimal.Zero) {
		return &ValidationError{Field: "amount", Reason: "amount must be positive"}
	}
	return nil
}

// ProjectRevenue is a simple append/delete record feeding the
// distribution calculation. No lifecycle beyond existence.
type ProjectRevenue struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// Validate ensures the revenue adheres to domain rules.
func (r *ProjectRevenue) Validate() error {
	if r.ProjectID == uuid.Nil {
		return &ValidationError{Field: "project_id", Reason: "project is required"}
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		return &ValidationError{Field: "amount", Reason: "amount must be positive"}
	}
	return nil
}

// ProjectExpense is the outflow counterpart of ProjectRevenue.
type ProjectExpense struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// Validate ensures the expense adheres to domain rules.
func (e *ProjectExpense) Validate() error {
	if e.ProjectID == uuid.Nil {
		return &ValidationError{Field: "project_id", Reason: "project is required"}
	}
	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return &ValidationError{Field: "amount", Reason: "amount must be positive"}
	}
	return nil
}

// MemberFundAllocation is a read-oriented snapshot of one member's
// proportional ownership of a fund. Snapshots are produced from the
// member's approved deposits into the fund and replaced wholesale on
// refresh, never edited in place.
type MemberFundAllocation struct {
	MemberID             uuid.UUID
	FundID               uuid.UUID
	AllocatedAmount      decimal.Decimal
	AllocationPercentage decimal.Decimal
}
