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

// projectRepository implements domain.ProjectRepository
type projectRepository struct {
	db *DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *DB) domain.ProjectRepository {
	return &projectRepository{db: db}
}

// GetInvestment retrieves an investment by its ID
func (r *projectRepository) GetInvestment(ctx context.Context, id uuid.UUID) (*domain.ProjectInvestment, error) {
	query := `
		SELECT id, project_id, member_id, amount, investment_date, investment_percentage
		FROM project_investments
		WHERE id = $1
	`

	inv, err := scanInvestment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "investment", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get investment by ID: %w", err)
	}
	return inv, nil
}

// AddInvestment persists a new investment
func (r *projectRepository) AddInvestment(ctx context.Context, inv *domain.ProjectInvestment) error {
	query := `
		INSERT INTO project_investments (id, project_id, member_id, amount, investment_date, investment_percentage)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		inv.ID,
		inv.ProjectID,
		inv.MemberID,
		inv.Amount.String(),
		inv.Date,
		inv.InvestmentPercentage.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to add investment: %w", err)
	}

	return nil
}

// DeleteInvestment removes an investment
func (r *projectRepository) DeleteInvestment(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM project_investments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete investment: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return &domain.NotFoundError{Entity: "investment", ID: id.String()}
	}
	return nil
}

// ListInvestments retrieves all investments of a project
func (r *projectRepository) ListInvestments(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectInvestment, error) {
	query := `
		SELECT id, project_id, member_id, amount, investment_date, investment_percentage
		FROM project_investments
		WHERE project_id = $1
		ORDER BY investment_date, id
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	defer rows.Close()

	var investments []*domain.ProjectInvestment
	for rows.Next() {
		inv, err := scanInvestment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investment: %w", err)
		}
		investments = append(investments, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate investments: %w", err)
	}

	return investments, nil
}

// UpdateInvestmentPercentages writes the renormalized percentages for
// a project in one database transaction
func (r *projectRepository) UpdateInvestmentPercentages(ctx context.Context, projectID uuid.UUID, percentages map[uuid.UUID]decimal.Decimal) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		UPDATE project_investments
		SET investment_percentage = $1
		WHERE id = $2 AND project_id = $3
	`

	for invID, percentage := range percentages {
		if _, err := dbTx.ExecContext(ctx, query, percentage.String(), invID, projectID); err != nil {
			return fmt.Errorf("failed to update percentage of investment %s: %w", invID, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// AddRevenue persists a new revenue record
func (r *projectRepository) AddRevenue(ctx context.Context, rev *domain.ProjectRevenue) error {
	query := `
		INSERT INTO project_revenues (id, project_id, amount, revenue_date, description)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query, rev.ID, rev.ProjectID, rev.Amount.String(), rev.Date, rev.Description)
	if err != nil {
		return fmt.Errorf("failed to add revenue: %w", err)
	}
	return nil
}

// DeleteRevenue removes a revenue record
func (r *projectRepository) DeleteRevenue(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM project_revenues WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete revenue: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return &domain.NotFoundError{Entity: "revenue", ID: id.String()}
	}
	return nil
}

// ListRevenues retrieves all revenue records of a project
func (r *projectRepository) ListRevenues(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectRevenue, error) {
	query := `
		SELECT id, project_id, amount, revenue_date, description
		FROM project_revenues
		WHERE project_id = $1
		ORDER BY revenue_date, id
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list revenues: %w", err)
	}
	defer rows.Close()

	var revenues []*domain.ProjectRevenue
	for rows.Next() {
		var rev domain.ProjectRevenue
		var amountStr string

		if err := rows.Scan(&rev.ID, &rev.ProjectID, &amountStr, &rev.Date, &rev.Description); err != nil {
			return nil, fmt.Errorf("failed to scan revenue: %w", err)
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse amount: %w", err)
		}
		rev.Amount = amount

		revenues = append(revenues, &rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate revenues: %w", err)
	}

	return revenues, nil
}

// AddExpense persists a new expense record
func (r *projectRepository) AddExpense(ctx context.Context, exp *domain.ProjectExpense) error {
	query := `
		INSERT INTO project_expenses (id, project_id, amount, expense_date, description)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query, exp.ID, exp.ProjectID, exp.Amount.String(), exp.Date, exp.Description)
	if err != nil {
		return fmt.Errorf("failed to add expense: %w", err)
	}
	return nil
}

// DeleteExpense removes an expense record
func (r *projectRepository) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM project_expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return &domain.NotFoundError{Entity: "expense", ID: id.String()}
	}
	return nil
}

// ListExpenses retrieves all expense records of a project
func (r *projectRepository) ListExpenses(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectExpense, error) {
	query := `
		SELECT id, project_id, amount, expense_date, description
		FROM project_expenses
		WHERE project_id = $1
		ORDER BY expense_date, id
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*domain.ProjectExpense
	for rows.Next() {
		var exp domain.ProjectExpense
		var amountStr string

		if err := rows.Scan(&exp.ID, &exp.ProjectID, &amountStr, &exp.Date, &exp.Description); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse amount: %w", err)
		}
		exp.Amount = amount

		expenses = append(expenses, &exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}

func scanInvestment(row scanner) (*domain.ProjectInvestment, error) {
	var inv domain.ProjectInvestment
	var amountStr, percentageStr string

	err := row.Scan(
		&inv.ID,
		&inv.ProjectID,
		&inv.MemberID,
		&amountStr,
		&inv.Date,
		&percentageStr,
	)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount: %w", err)
	}
	inv.Amount = amount

	percentage, err := decimal.NewFromString(percentageStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse investment_percentage: %w", err)
	}
	inv.InvestmentPercentage = percentage

	return &inv, nil
}
