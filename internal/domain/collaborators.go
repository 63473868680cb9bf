package domain

import (
	"context"

	"github.com/google/uuid"
)

// IdentityProvider supplies the identity of the user driving the
// current operation. It is the only capability consumed from the
// authentication subsystem.
type IdentityProvider interface {
	// CurrentUserID returns the acting user's ID, or false if the
	// context carries no authenticated identity.
	CurrentUserID(ctx context.Context) (uuid.UUID, bool)
}

// AuditLog records one entry per mutating ledger operation.
// A failed audit write never reverts the ledger action; callers
// surface it as a warning instead.
type AuditLog interface {
	Record(ctx context.Context, actorID uuid.UUID, action, entityType string, entityID uuid.UUID, before, after any) error
}

// ReferenceData exposes the read-only master data lists the ledger
// validates against.
type ReferenceData interface {
	// TransactionTypes returns the registered transaction types
	TransactionTypes(ctx context.Context) ([]TransactionType, error)

	// PaymentMethods returns the accepted payment methods
	PaymentMethods(ctx context.Context) ([]string, error)

	// CashierNames returns the known cashier names
	CashierNames(ctx context.Context) ([]string, error)
}
