package seeder

import (
	"context"

	"github.com/clubvest/clubledger-backend/internal/domain"
)

// Master data every deployment starts from. The ledger rejects
// transaction types that are not registered, so an empty registry
// would refuse every transaction.
var (
	DefaultTransactionTypes = []domain.TransactionType{
		domain.TransactionTypeDeposit,
		domain.TransactionTypeWithdrawal,
		domain.TransactionTypeExpense,
		domain.TransactionTypeTransfer,
		domain.TransactionTypeInvestment,
	}
	DefaultPaymentMethods = []string{"CASH", "BANK_TRANSFER", "MOBILE_MONEY"}
	DefaultCashierNames   = []string{"Alice", "Bob"}
)

// ReferenceStore is implemented by storage backends that can register
// reference data rows. Seeding skips rows that already exist.
type ReferenceStore interface {
	SeedReferenceData(ctx context.Context, types []domain.TransactionType, methods, cashiers []string) error
}

// ReferenceSeeder handles seeding of the reference data lists
type ReferenceSeeder struct {
	store ReferenceStore
}

// NewReferenceSeeder creates a new ReferenceSeeder instance
func NewReferenceSeeder(store ReferenceStore) *ReferenceSeeder {
	return &ReferenceSeeder{store: store}
}

// Seed ensures the default transaction types, payment methods and
// cashier names are registered
func (s *ReferenceSeeder) Seed(ctx context.Context) error {
	return s.store.SeedReferenceData(ctx, DefaultTransactionTypes, DefaultPaymentMethods, DefaultCashierNames)
}
