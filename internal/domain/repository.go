package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FundRepository defines the interface for fund persistence operations.
type FundRepository interface {
	// GetByID retrieves a fund by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Fund, error)

	// GetByName retrieves a fund by its unique name
	GetByName(ctx context.Context, name string) (*Fund, error)

	// Create creates a new fund
	Create(ctx context.Context, fund *Fund) error

	// List retrieves all funds
	List(ctx context.Context) ([]*Fund, error)

	// Delete removes a fund. Dependency checks happen in the usecase
	// layer before this is called.
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransactionRepository defines the interface for transaction
// persistence operations. The three-argument mutators (ApplyApproval,
// UpdateStatus, DeleteWithBalances) are each one atomic unit: the
// status write and every balance write either all land or none do.
type TransactionRepository interface {
	// GetByID retrieves a transaction by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Transaction, error)

	// Create persists a new pending transaction
	Create(ctx context.Context, txn *Transaction) error

	// List retrieves a paginated list of transactions
	// If fundID is nil, returns all transactions
	List(ctx context.Context, limit, offset int, fundID *uuid.UUID) ([]*Transaction, error)

	// ListApprovedByFund returns every approved transaction touching
	// the fund (as source or transfer destination). Used for replay
	// recomputation.
	ListApprovedByFund(ctx context.Context, fundID uuid.UUID) ([]*Transaction, error)

	// CountByFund returns how many transactions reference the fund
	// as source or transfer destination, regardless of status.
	CountByFund(ctx context.Context, fundID uuid.UUID) (int, error)

	// CountPending returns the number of transactions still awaiting
	// an approval decision.
	CountPending(ctx context.Context) (int, error)

	// ApplyApproval writes the approved transaction (status, approver,
	// approval time) and the new balances of every touched fund as one
	// atomic unit.
	ApplyApproval(ctx context.Context, txn *Transaction, balances map[uuid.UUID]decimal.Decimal) error

	// UpdateStatus writes the transaction's lifecycle fields without
	// touching any balance. Used for rejection.
	UpdateStatus(ctx context.Context, txn *Transaction) error

	// DeleteWithBalances removes the transaction and writes the
	// recomputed balances of every fund it touched as one atomic unit.
	// An empty balances map deletes without balance changes.
	DeleteWithBalances(ctx context.Context, id uuid.UUID, balances map[uuid.UUID]decimal.Decimal) error
}

// CashierRepository defines the interface for cashier payment and
// transfer persistence operations. The cashier ledger itself is
// derived and never stored.
type CashierRepository interface {
	// AddPayment records a raw payment collected by a cashier
	AddPayment(ctx context.Context, payment *CashierPayment) error

	// ListPayments retrieves all payment records
	ListPayments(ctx context.Context) ([]*CashierPayment, error)

	// AddTransfer records a cashier-to-cashier or cashier-to-fund transfer
	AddTransfer(ctx context.Context, transfer *CashierTransfer) error

	// ListTransfers retrieves all cashier transfer records
	ListTransfers(ctx context.Context) ([]*CashierTransfer, error)
}

// ProjectRepository defines the interface for project investment,
// revenue and expense persistence operations.
type ProjectRepository interface {
	// GetInvestment retrieves an investment by its ID
	GetInvestment(ctx context.Context, id uuid.UUID) (*ProjectInvestment, error)

	// AddInvestment persists a new investment
	AddInvestment(ctx context.Context, inv *ProjectInvestment) error

	// DeleteInvestment removes an investment
	DeleteInvestment(ctx context.Context, id uuid.UUID) error

	// ListInvestments retrieves all investments of a project
	ListInvestments(ctx context.Context, projectID uuid.UUID) ([]*ProjectInvestment, error)

	// UpdateInvestmentPercentages writes the renormalized percentages
	// for a project as one atomic unit, keyed by investment ID.
	UpdateInvestmentPercentages(ctx context.Context, projectID uuid.UUID, percentages map[uuid.UUID]decimal.Decimal) error

	// AddRevenue persists a new revenue record
	AddRevenue(ctx context.Context, rev *ProjectRevenue) error

	// DeleteRevenue removes a revenue record
	DeleteRevenue(ctx context.Context, id uuid.UUID) error

	// ListRevenues retrieves all revenue records of a project
	ListRevenues(ctx context.Context, projectID uuid.UUID) ([]*ProjectRevenue, error)

	// AddExpense persists a new expense record
	AddExpense(ctx context.Context, exp *ProjectExpense) error

	// DeleteExpense removes an expense record
	DeleteExpense(ctx context.Context, id uuid.UUID) error

	// ListExpenses retrieves all expense records of a project
	ListExpenses(ctx context.Context, projectID uuid.UUID) ([]*ProjectExpense, error)
}

// AllocationRepository defines the interface for member fund
// allocation snapshots.
type AllocationRepository interface {
	// ListByFund retrieves the current allocation snapshot for a fund
	ListByFund(ctx context.Context, fundID uuid.UUID) ([]*MemberFundAllocation, error)

	// CountByFund returns how many allocation rows reference the fund
	CountByFund(ctx context.Context, fundID uuid.UUID) (int, error)

	// ReplaceForFund atomically replaces the fund's snapshot
	ReplaceForFund(ctx context.Context, fundID uuid.UUID, allocations []*MemberFundAllocation) error
}
