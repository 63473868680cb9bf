package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/clubvest/clubledger-backend/internal/domain"
)

// cashierRepository implements domain.CashierRepository
type cashierRepository struct {
	db *DB
}

// NewCashierRepository creates a new cashier repository
func NewCashierRepository(db *DB) domain.CashierRepository {
	return &cashierRepository{db: db}
}

// AddPayment records a raw payment collected by a cashier
func (r *cashierRepository) AddPayment(ctx context.Context, payment *domain.CashierPayment) error {
	query := `
		INSERT INTO cashier_payments (id, cashier_name, member_id, amount, method, payment_date, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		payment.ID,
		payment.CashierName,
		payment.MemberID,
		payment.Amount.String(),
		nullableString(payment.Method),
		payment.Date,
		payment.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to add cashier payment: %w", err)
	}

	return nil
}

// ListPayments retrieves all payment records
func (r *cashierRepository) ListPayments(ctx context.Context) ([]*domain.CashierPayment, error) {
	query := `
		SELECT id, cashier_name, member_id, amount, method, payment_date, description
		FROM cashier_payments
		ORDER BY payment_date, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cashier payments: %w", err)
	}
	defer rows.Close()

	var payments []*domain.CashierPayment
	for rows.Next() {
		var payment domain.CashierPayment
		var amountStr string
		var method sql.NullString

		err := rows.Scan(
			&payment.ID,
			&payment.CashierName,
			&payment.MemberID,
			&amountStr,
			&method,
			&payment.Date,
			&payment.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cashier payment: %w", err)
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse amount: %w", err)
		}
		payment.Amount = amount
		payment.Method = method.String

		payments = append(payments, &payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cashier payments: %w", err)
	}

	return payments, nil
}

// AddTransfer records a cashier-to-cashier or cashier-to-fund transfer
func (r *cashierRepository) AddTransfer(ctx context.Context, transfer *domain.CashierTransfer) error {
	query := `
		INSERT INTO cashier_transfers (id, from_cashier, to_cashier, to_fund_id, amount, transfer_date, created_by, description, ledger_transaction_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		transfer.ID,
		transfer.FromCashier,
		nullableString(transfer.ToCashier),
		nullableUUID(transfer.ToFundID),
		transfer.Amount.String(),
		transfer.Date,
		transfer.CreatedBy,
		transfer.Description,
		nullableUUID(transfer.LedgerTransactionID),
	)
	if err != nil {
		return fmt.Errorf("failed to add cashier transfer: %w", err)
	}

	return nil
}

// ListTransfers retrieves all cashier transfer records
func (r *cashierRepository) ListTransfers(ctx context.Context) ([]*domain.CashierTransfer, error) {
	query := `
		SELECT id, from_cashier, to_cashier, to_fund_id, amount, transfer_date, created_by, description, ledger_transaction_id
		FROM cashier_transfers
		ORDER BY transfer_date, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cashier transfers: %w", err)
	}
	defer rows.Close()

	var transfers []*domain.CashierTransfer
	for rows.Next() {
		var transfer domain.CashierTransfer
		var amountStr string
		var toCashier sql.NullString
		var toFundID, ledgerTxnID sql.NullString

		err := rows.Scan(
			&transfer.ID,
			&transfer.FromCashier,
			&toCashier,
			&toFundID,
			&amountStr,
			&transfer.Date,
			&transfer.CreatedBy,
			&transfer.Description,
			&ledgerTxnID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cashier transfer: %w", err)
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse amount: %w", err)
		}
		transfer.Amount = amount
		transfer.ToCashier = toCashier.String

		if transfer.ToFundID, err = parseNullableUUID(toFundID, "to_fund_id"); err != nil {
			return nil, err
		}
		if transfer.LedgerTransactionID, err = parseNullableUUID(ledgerTxnID, "ledger_transaction_id"); err != nil {
			return nil, err
		}

		transfers = append(transfers, &transfer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cashier transfers: %w", err)
	}

	return transfers, nil
}
