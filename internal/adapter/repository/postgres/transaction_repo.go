package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clubvest/clubledger-backend/internal/domain"
)

// transactionRepository implements domain.TransactionRepository
type transactionRepository struct {
	db *DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *DB) domain.TransactionRepository {
	return &transactionRepository{db: db}
}

const transactionColumns = `id, fund_id, to_fund_id, transaction_type, amount, status,
	description, transaction_date, created_by, approved_by, approved_at,
	rejection_reason, source_type, source_id`

// GetByID retrieves a transaction by its ID
func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE id = $1
	`

	txn, err := scanTransaction(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "transaction", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get transaction by ID: %w", err)
	}
	return txn, nil
}

// Create persists a new pending transaction
func (r *transactionRepository) Create(ctx context.Context, txn *domain.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.ExecContext(ctx, query,
		txn.ID,
		txn.FundID,
		nullableUUID(txn.ToFundID),
		string(txn.Type),
		txn.Amount.String(),
		string(txn.Status),
		txn.Description,
		txn.Date,
		txn.CreatedBy,
		nullableUUID(txn.ApprovedBy),
		txn.ApprovedAt,
		nullableString(txn.RejectionReason),
		nullableString(txn.SourceType),
		nullableUUID(txn.SourceID),
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// List retrieves a paginated list of transactions, newest first.
// If fundID is nil, returns transactions across all funds.
func (r *transactionRepository) List(ctx context.Context, limit, offset int, fundID *uuid.UUID) ([]*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
	`
	args := []interface{}{}
	if fundID != nil {
		query += ` WHERE fund_id = $1 OR to_fund_id = $1`
		args = append(args, *fundID)
	}
	query += fmt.Sprintf(" ORDER BY transaction_date DESC, id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	return r.queryTransactions(ctx, query, args...)
}

// ListApprovedByFund returns every approved transaction touching the
// fund, oldest first so replay reproduces the historical order.
func (r *transactionRepository) ListApprovedByFund(ctx context.Context, fundID uuid.UUID) ([]*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE status = $1 AND (fund_id = $2 OR to_fund_id = $2)
		ORDER BY transaction_date, id
	`

	return r.queryTransactions(ctx, query, string(domain.StatusApproved), fundID)
}

// CountByFund returns how many transactions reference the fund
func (r *transactionRepository) CountByFund(ctx context.Context, fundID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM transactions
		WHERE fund_id = $1 OR to_fund_id = $1
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query, fundID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions by fund: %w", err)
	}
	return count, nil
}

// CountPending returns the number of transactions awaiting a decision
func (r *transactionRepository) CountPending(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM transactions
		WHERE status = $1
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query, string(domain.StatusPending)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending transactions: %w", err)
	}
	return count, nil
}

// ApplyApproval writes the approved transaction and the new fund
// balances in one database transaction
func (r *transactionRepository) ApplyApproval(ctx context.Context, txn *domain.Transaction, balances map[uuid.UUID]decimal.Decimal) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	updateQuery := `
		UPDATE transactions
		SET status = $1, approved_by = $2, approved_at = $3
		WHERE id = $4
	`

	result, err := dbTx.ExecContext(ctx, updateQuery,
		string(txn.Status),
		nullableUUID(txn.ApprovedBy),
		txn.ApprovedAt,
		txn.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction status: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return &domain.NotFoundError{Entity: "transaction", ID: txn.ID.String()}
	}

	if err := updateBalances(ctx, dbTx, balances); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// UpdateStatus writes the lifecycle fields without touching balances
func (r *transactionRepository) UpdateStatus(ctx context.Context, txn *domain.Transaction) error {
	query := `
		UPDATE transactions
		SET status = $1, approved_by = $2, approved_at = $3, rejection_reason = $4
		WHERE id = $5
	`

	result, err := r.db.ExecContext(ctx, query,
		string(txn.Status),
		nullableUUID(txn.ApprovedBy),
		txn.ApprovedAt,
		nullableString(txn.RejectionReason),
		txn.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction status: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return &domain.NotFoundError{Entity: "transaction", ID: txn.ID.String()}
	}

	return nil
}

// DeleteWithBalances removes the transaction and writes the recomputed
// fund balances in one database transaction
func (r *transactionRepository) DeleteWithBalances(ctx context.Context, id uuid.UUID, balances map[uuid.UUID]decimal.Decimal) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	result, err := dbTx.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return &domain.NotFoundError{Entity: "transaction", ID: id.String()}
	}

	if err := updateBalances(ctx, dbTx, balances); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *transactionRepository) queryTransactions(ctx context.Context, query string, args ...interface{}) ([]*domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txns []*domain.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return txns, nil
}

func updateBalances(ctx context.Context, dbTx *sql.Tx, balances map[uuid.UUID]decimal.Decimal) error {
	query := `UPDATE funds SET current_balance = $1 WHERE id = $2`
	for fundID, balance := range balances {
		if _, err := dbTx.ExecContext(ctx, query, balance.String(), fundID); err != nil {
			return fmt.Errorf("failed to update balance of fund %s: %w", fundID, err)
		}
	}
	return nil
}

func scanTransaction(row scanner) (*domain.Transaction, error) {
	var txn domain.Transaction
	var toFundID, approvedBy, sourceID sql.NullString
	var approvedAt sql.NullTime
	var rejectionReason, sourceType sql.NullString
	var amountStr string

	err := row.Scan(
		&txn.ID,
		&txn.FundID,
		&toFundID,
		&txn.Type,
		&amountStr,
		&txn.Status,
		&txn.Description,
		&txn.Date,
		&txn.CreatedBy,
		&approvedBy,
		&approvedAt,
		&rejectionReason,
		&sourceType,
		&sourceID,
	)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount: %w", err)
	}
	txn.Amount = amount

	if txn.ToFundID, err = parseNullableUUID(toFundID, "to_fund_id"); err != nil {
		return nil, err
	}
	if txn.ApprovedBy, err = parseNullableUUID(approvedBy, "approved_by"); err != nil {
		return nil, err
	}
	if txn.SourceID, err = parseNullableUUID(sourceID, "source_id"); err != nil {
		return nil, err
	}
	if approvedAt.Valid {
		t := approvedAt.Time
		txn.ApprovedAt = &t
	}
	txn.RejectionReason = rejectionReason.String
	txn.SourceType = sourceType.String

	return &txn, nil
}

func parseNullableUUID(value sql.NullString, column string) (*uuid.UUID, error) {
	if !value.Valid {
		return nil, nil
	}
	parsed, err := uuid.Parse(value.String)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return &parsed, nil
}

func nullableUUID(id *uuid.UUID) interface{} {
	if id == nil {
		return nil
	}
	return *id
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
