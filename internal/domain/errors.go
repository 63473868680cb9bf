package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ValidationError reports a request that was rejected before any
// mutation took place (missing field, non-positive amount, ...).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a lookup for an entity that does not exist.
// ID holds whatever key the lookup used, a UUID or a name.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// InsufficientBalanceError reports a debit that exceeds the current
// balance of its source (a fund, or a cashier's informal holding).
// The operation aborts with zero side effects. The message names the
// source and the shortfall so the caller can act.
type InsufficientBalanceError struct {
	FundID    uuid.UUID // zero for cashier holdings
	Name      string
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	short := e.Requested.Sub(e.Available)
	return fmt.Sprintf("insufficient balance in %q: available %s, requested %s (short by %s)",
		e.Name, e.Available.StringFixed(2), e.Requested.StringFixed(2), short.StringFixed(2))
}

// BlockingRecords counts records of one type that block a deletion.
type BlockingRecords struct {
	RecordType string
	Count      int
}

// DependencyConflictError reports a deletion blocked by referencing
// records. Deletion never cascades; the caller is told exactly what
// is in the way.
type DependencyConflictError struct {
	Entity   string
	ID       uuid.UUID
	Blocking []BlockingRecords
}

func (e *DependencyConflictError) Error() string {
	parts := make([]string, 0, len(e.Blocking))
	for _, b := range e.Blocking {
		parts = append(parts, fmt.Sprintf("%d %s", b.Count, b.RecordType))
	}
	return fmt.Sprintf("cannot delete %s %s: referenced by %s", e.Entity, e.ID, strings.Join(parts, ", "))
}

// InvalidStateTransitionError reports an approval-lifecycle operation
// attempted from a state that does not allow it (e.g. approving an
// already-approved transaction).
type InvalidStateTransitionError struct {
	TransactionID uuid.UUID
	From          TransactionStatus
	Operation     string
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("invalid operation %s for status %s on transaction %s", e.Operation, e.From, e.TransactionID)
}
