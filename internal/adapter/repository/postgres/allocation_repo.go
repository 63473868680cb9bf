package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clubvest/clubledger-backend/internal/domain"
)

// allocationRepository implements domain.AllocationRepository
type allocationRepository struct {
	db *DB
}

// NewAllocationRepository creates a new allocation repository
func NewAllocationRepository(db *DB) domain.AllocationRepository {
	return &allocationRepository{db: db}
}

// ListByFund retrieves the current allocation snapshot for a fund
func (r *allocationRepository) ListByFund(ctx context.Context, fundID uuid.UUID) ([]*domain.MemberFundAllocation, error) {
	query := `
		SELECT member_id, fund_id, allocated_amount, allocation_percentage
		FROM member_fund_allocations
		WHERE fund_id = $1
		ORDER BY member_id
	`

	rows, err := r.db.QueryContext(ctx, query, fundID)
	if err != nil {
		return nil, fmt.Errorf("failed to list allocations: %w", err)
	}
	defer rows.Close()

	var allocations []*domain.MemberFundAllocation
	for rows.Next() {
		var alloc domain.MemberFundAllocation
		var amountStr, percentageStr string

		if err := rows.Scan(&alloc.MemberID, &alloc.FundID, &amountStr, &percentageStr); err != nil {
			return nil, fmt.Errorf("failed to scan allocation: %w", err)
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse allocated_amount: %w", err)
		}
		alloc.AllocatedAmount = amount

		percentage, err := decimal.NewFromString(percentageStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse allocation_percentage: %w", err)
		}
		alloc.AllocationPercentage = percentage

		allocations = append(allocations, &alloc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate allocations: %w", err)
	}

	return allocations, nil
}

// CountByFund returns how many allocation rows reference the fund
func (r *allocationRepository) CountByFund(ctx context.Context, fundID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM member_fund_allocations
		WHERE fund_id = $1
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query, fundID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count allocations: %w", err)
	}
	return count, nil
}

// ReplaceForFund atomically replaces the fund's snapshot in one
// database transaction
func (r *allocationRepository) ReplaceForFund(ctx context.Context, fundID uuid.UUID, allocations []*domain.MemberFundAllocation) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM member_fund_allocations WHERE fund_id = $1`, fundID); err != nil {
		return fmt.Errorf("failed to clear allocations: %w", err)
	}

	insertQuery := `
		INSERT INTO member_fund_allocations (member_id, fund_id, allocated_amount, allocation_percentage)
		VALUES ($1, $2, $3, $4)
	`

	for _, alloc := range allocations {
		_, err := dbTx.ExecContext(ctx, insertQuery,
			alloc.MemberID,
			alloc.FundID,
			alloc.AllocatedAmount.String(),
			alloc.AllocationPercentage.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert allocation: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
