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

// fundRepository implements domain.FundRepository
type fundRepository struct {
	db *DB
}

// NewFundRepository creates a new fund repository
func NewFundRepository(db *DB) domain.FundRepository {
	return &fundRepository{db: db}
}

const fundColumns = "id, name, fund_type, current_balance, is_active, description"

// GetByID retrieves a fund by its ID
func (r *fundRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Fund, error) {
	query := `
		SELECT ` + fundColumns + `
		FROM funds
		WHERE id = $1
	`

	fund, err := scanFund(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "fund", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get fund by ID: %w", err)
	}
	return fund, nil
}

// GetByName retrieves a fund by its unique name
func (r *fundRepository) GetByName(ctx context.Context, name string) (*domain.Fund, error) {
	query := `
		SELECT ` + fundColumns + `
		FROM funds
		WHERE name = $1
	`

	fund, err := scanFund(r.db.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "fund", ID: name}
		}
		return nil, fmt.Errorf("failed to get fund by name: %w", err)
	}
	return fund, nil
}

// Create creates a new fund
func (r *fundRepository) Create(ctx context.Context, fund *domain.Fund) error {
	query := `
		INSERT INTO funds (id, name, fund_type, current_balance, is_active, description)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		fund.ID,
		fund.Name,
		string(fund.FundType),
		fund.CurrentBalance.String(),
		fund.IsActive,
		fund.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to create fund: %w", err)
	}

	return nil
}

// List retrieves all funds ordered by name
func (r *fundRepository) List(ctx context.Context) ([]*domain.Fund, error) {
	query := `
		SELECT ` + fundColumns + `
		FROM funds
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list funds: %w", err)
	}
	defer rows.Close()

	var funds []*domain.Fund
	for rows.Next() {
		fund, err := scanFund(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fund: %w", err)
		}
		funds = append(funds, fund)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate funds: %w", err)
	}

	return funds, nil
}

// Delete removes a fund
func (r *fundRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM funds WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete fund: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return &domain.NotFoundError{Entity: "fund", ID: id.String()}
	}

	return nil
}

// scanner abstracts sql.Row and sql.Rows for shared scan logic
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanFund(row scanner) (*domain.Fund, error) {
	var fund domain.Fund
	var balanceStr string

	err := row.Scan(
		&fund.ID,
		&fund.Name,
		&fund.FundType,
		&balanceStr,
		&fund.IsActive,
		&fund.Description,
	)
	if err != nil {
		return nil, err
	}

	// Parse current_balance (DECIMAL)
	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse current_balance: %w", err)
	}
	fund.CurrentBalance = balance

	return &fund, nil
}
