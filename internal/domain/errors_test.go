package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError_AcceptsUUIDAndNameKeys(t *testing.T) {
	id := uuid.New()

	byID := &NotFoundError{Entity: "transaction", ID: id.String()}
	assert.Equal(t, fmt.Sprintf("transaction %s not found", id), byID.Error())

	// name lookups report the name they missed on
	byName := &NotFoundError{Entity: "fund", ID: "Emergency Fund"}
	assert.Equal(t, "fund Emergency Fund not found", byName.Error())

	var notFound *NotFoundError
	require.ErrorAs(t, fmt.Errorf("lookup failed: %w", byID), &notFound)
	assert.Equal(t, id.String(), notFound.ID)
}

func TestInsufficientBalanceError_ReportsShortfall(t *testing.T) {
	err := &InsufficientBalanceError{
		Name:      "General Fund",
		Available: decimal.NewFromInt(100),
		Requested: decimal.NewFromInt(150),
	}
	assert.Contains(t, err.Error(), `"General Fund"`)
	assert.Contains(t, err.Error(), "short by 50.00")
}

func TestDependencyConflictError_ListsBlockingRecords(t *testing.T) {
	err := &DependencyConflictError{
		Entity: "fund",
		ID:     uuid.New(),
		Blocking: []BlockingRecords{
			{RecordType: "transactions", Count: 3},
			{RecordType: "allocations", Count: 2},
		},
	}
	assert.Contains(t, err.Error(), "3 transactions")
	assert.Contains(t, err.Error(), "2 allocations")

	var conflict *DependencyConflictError
	assert.True(t, errors.As(fmt.Errorf("delete failed: %w", err), &conflict))
}
