package postgres

import (
	"context"
	"fmt"

	"github.com/clubvest/clubledger-backend/internal/domain"
)

// ReferenceRepository implements domain.ReferenceData backed by the
// reference tables. The lists are master data; day-to-day operation
// only reads them, startup may seed missing rows.
type ReferenceRepository struct {
	db *DB
}

// NewReferenceRepository creates a new reference data repository
func NewReferenceRepository(db *DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

// TransactionTypes returns the registered transaction types
func (r *ReferenceRepository) TransactionTypes(ctx context.Context) ([]domain.TransactionType, error) {
	values, err := r.list(ctx, `SELECT name FROM ref_transaction_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction types: %w", err)
	}

	types := make([]domain.TransactionType, len(values))
	for i, v := range values {
		types[i] = domain.TransactionType(v)
	}
	return types, nil
}

// PaymentMethods returns the accepted payment methods
func (r *ReferenceRepository) PaymentMethods(ctx context.Context) ([]string, error) {
	values, err := r.list(ctx, `SELECT name FROM ref_payment_methods ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	return values, nil
}

// CashierNames returns the known cashier names
func (r *ReferenceRepository) CashierNames(ctx context.Context) ([]string, error) {
	values, err := r.list(ctx, `SELECT name FROM ref_cashiers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cashier names: %w", err)
	}
	return values, nil
}

// SeedReferenceData inserts the given master data rows, skipping any
// name that is already registered. All three tables are written in
// one transaction.
func (r *ReferenceRepository) SeedReferenceData(ctx context.Context, types []domain.TransactionType, methods, cashiers []string) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	for _, tt := range types {
		if _, err := dbTx.ExecContext(ctx,
			`INSERT INTO ref_transaction_types (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
			string(tt)); err != nil {
			return fmt.Errorf("failed to seed transaction type %q: %w", tt, err)
		}
	}
	for _, method := range methods {
		if _, err := dbTx.ExecContext(ctx,
			`INSERT INTO ref_payment_methods (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
			method); err != nil {
			return fmt.Errorf("failed to seed payment method %q: %w", method, err)
		}
	}
	for _, name := range cashiers {
		if _, err := dbTx.ExecContext(ctx,
			`INSERT INTO ref_cashiers (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
			name); err != nil {
			return fmt.Errorf("failed to seed cashier %q: %w", name, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *ReferenceRepository) list(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
