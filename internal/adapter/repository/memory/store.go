// Package memory provides a mutex-guarded in-memory implementation of
// every repository interface. It backs local development and the
// integration tests, where spinning up PostgreSQL is not worth it.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clubvest/clubledger-backend/internal/domain"
)

// Store holds every record set behind one mutex. Operations are short
// and the club is small, so a single lock is enough.
type Store struct {
	mu sync.RWMutex

	funds        map[uuid.UUID]*domain.Fund
	transactions map[uuid.UUID]*domain.Transaction
	payments     []*domain.CashierPayment
	transfers    []*domain.CashierTransfer
	investments  map[uuid.UUID]*domain.ProjectInvestment
	revenues     map[uuid.UUID]*domain.ProjectRevenue
	expenses     map[uuid.UUID]*domain.ProjectExpense
	allocations  map[uuid.UUID][]*domain.MemberFundAllocation

	transactionTypes []domain.TransactionType
	paymentMethods   []string
	cashierNames     []string
}

// NewStore creates an empty store with the built-in reference lists.
func NewStore() *Store {
	return &Store{
		funds:        make(map[uuid.UUID]*domain.Fund),
		transactions: make(map[uuid.UUID]*domain.Transaction),
		investments:  make(map[uuid.UUID]*domain.ProjectInvestment),
		revenues:     make(map[uuid.UUID]*domain.ProjectRevenue),
		expenses:     make(map[uuid.UUID]*domain.ProjectExpense),
		allocations:  make(map[uuid.UUID][]*domain.MemberFundAllocation),
		transactionTypes: []domain.TransactionType{
			domain.TransactionTypeDeposit,
			domain.TransactionTypeWithdrawal,
			domain.TransactionTypeExpense,
			domain.TransactionTypeTransfer,
			domain.TransactionTypeInvestment,
		},
		paymentMethods: []string{"CASH", "BANK_TRANSFER", "MOBILE_MONEY"},
		cashierNames:   []string{"Alice", "Bob"},
	}
}

// SetReferenceData overrides the built-in master data lists.
func (s *Store) SetReferenceData(types []domain.TransactionType, methods, cashiers []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactionTypes = types
	s.paymentMethods = methods
	s.cashierNames = cashiers
}

// SeedReferenceData registers any master data rows not already known.
func (s *Store) SeedReferenceData(ctx context.Context, types []domain.TransactionType, methods, cashiers []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tt := range types {
		if !slices.Contains(s.transactionTypes, tt) {
			s.transactionTypes = append(s.transactionTypes, tt)
		}
	}
	for _, method := range methods {
		if !slices.Contains(s.paymentMethods, method) {
			s.paymentMethods = append(s.paymentMethods, method)
		}
	}
	for _, name := range cashiers {
		if !slices.Contains(s.cashierNames, name) {
			s.cashierNames = append(s.cashierNames, name)
		}
	}
	return nil
}

// --- domain.FundRepository ---

func (s *Store) GetByID(ctx context.Context, id uuid.UUID) (*domain.Fund, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fund, ok := s.funds[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "fund", ID: id.String()}
	}
	copied := *fund
	return &copied, nil
}

func (s *Store) GetByName(ctx context.Context, name string) (*domain.Fund, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, fund := range s.funds {
		if fund.Name == name {
			copied := *fund
			return &copied, nil
		}
	}
	return nil, &domain.NotFoundError{Entity: "fund", ID: name}
}

func (s *Store) Create(ctx context.Context, fund *domain.Fund) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *fund
	s.funds[fund.ID] = &copied
	return nil
}

func (s *Store) List(ctx context.Context) ([]*domain.Fund, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	funds := make([]*domain.Fund, 0, len(s.funds))
	for _, fund := range s.funds {
		copied := *fund
		funds = append(funds, &copied)
	}
	sort.Slice(funds, func(i, j int) bool { return funds[i].Name < funds[j].Name })
	return funds, nil
}

func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.funds[id]; !ok {
		return &domain.NotFoundError{Entity: "fund", ID: id.String()}
	}
	delete(s.funds, id)
	return nil
}

// --- domain.TransactionRepository ---
// Exposed through the Transactions view to avoid method name clashes
// with the fund repository.

// Transactions returns the store's transaction repository view.
func (s *Store) Transactions() domain.TransactionRepository {
	return &transactionView{s}
}

type transactionView struct {
	s *Store
}

func (v *transactionView) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	txn, ok := v.s.transactions[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "transaction", ID: id.String()}
	}
	copied := *txn
	return &copied, nil
}

func (v *transactionView) Create(ctx context.Context, txn *domain.Transaction) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	copied := *txn
	v.s.transactions[txn.ID] = &copied
	return nil
}

func (v *transactionView) List(ctx context.Context, limit, offset int, fundID *uuid.UUID) ([]*domain.Transaction, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()

	var txns []*domain.Transaction
	for _, txn := range v.s.transactions {
		if fundID != nil && !touches(txn, *fundID) {
			continue
		}
		copied := *txn
		txns = append(txns, &copied)
	}
	sort.Slice(txns, func(i, j int) bool {
		if !txns[i].Date.Equal(txns[j].Date) {
			return txns[i].Date.After(txns[j].Date)
		}
		return txns[i].ID.String() < txns[j].ID.String()
	})

	if offset >= len(txns) {
		return nil, nil
	}
	txns = txns[offset:]
	if limit > 0 && limit < len(txns) {
		txns = txns[:limit]
	}
	return txns, nil
}

func (v *transactionView) ListApprovedByFund(ctx context.Context, fundID uuid.UUID) ([]*domain.Transaction, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()

	var txns []*domain.Transaction
	for _, txn := range v.s.transactions {
		if txn.Status != domain.StatusApproved || !touches(txn, fundID) {
			continue
		}
		copied := *txn
		txns = append(txns, &copied)
	}
	sort.Slice(txns, func(i, j int) bool {
		if !txns[i].Date.Equal(txns[j].Date) {
			return txns[i].Date.Before(txns[j].Date)
		}
		return txns[i].ID.String() < txns[j].ID.String()
	})
	return txns, nil
}

func (v *transactionView) CountByFund(ctx context.Context, fundID uuid.UUID) (int, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	count := 0
	for _, txn := range v.s.transactions {
		if touches(txn, fundID) {
			count++
		}
	}
	return count, nil
}

func (v *transactionView) CountPending(ctx context.Context) (int, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	count := 0
	for _, txn := range v.s.transactions {
		if txn.Status == domain.StatusPending {
			count++
		}
	}
	return count, nil
}

func (v *transactionView) ApplyApproval(ctx context.Context, txn *domain.Transaction, balances map[uuid.UUID]decimal.Decimal) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if _, ok := v.s.transactions[txn.ID]; !ok {
		return &domain.NotFoundError{Entity: "transaction", ID: txn.ID.String()}
	}
	copied := *txn
	v.s.transactions[txn.ID] = &copied
	v.s.applyBalances(balances)
	return nil
}

func (v *transactionView) UpdateStatus(ctx context.Context, txn *domain.Transaction) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if _, ok := v.s.transactions[txn.ID]; !ok {
		return &domain.NotFoundError{Entity: "transaction", ID: txn.ID.String()}
	}
	copied := *txn
	v.s.transactions[txn.ID] = &copied
	return nil
}

func (v *transactionView) DeleteWithBalances(ctx context.Context, id uuid.UUID, balances map[uuid.UUID]decimal.Decimal) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if _, ok := v.s.transactions[id]; !ok {
		return &domain.NotFoundError{Entity: "transaction", ID: id.String()}
	}
	delete(v.s.transactions, id)
	v.s.applyBalances(balances)
	return nil
}

// applyBalances must be called with the write lock held.
func (s *Store) applyBalances(balances map[uuid.UUID]decimal.Decimal) {
	for fundID, balance := range balances {
		if fund, ok := s.funds[fundID]; ok {
			fund.CurrentBalance = balance
		}
	}
}

func touches(txn *domain.Transaction, fundID uuid.UUID) bool {
	if txn.FundID == fundID {
		return true
	}
	return txn.ToFundID != nil && *txn.ToFundID == fundID
}

// --- domain.CashierRepository ---

func (s *Store) AddPayment(ctx context.Context, payment *domain.CashierPayment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *payment
	s.payments = append(s.payments, &copied)
	return nil
}

func (s *Store) ListPayments(ctx context.Context) ([]*domain.CashierPayment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payments := make([]*domain.CashierPayment, 0, len(s.payments))
	for _, payment := range s.payments {
		copied := *payment
		payments = append(payments, &copied)
	}
	return payments, nil
}

func (s *Store) AddTransfer(ctx context.Context, transfer *domain.CashierTransfer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *transfer
	s.transfers = append(s.transfers, &copied)
	return nil
}

func (s *Store) ListTransfers(ctx context.Context) ([]*domain.CashierTransfer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	transfers := make([]*domain.CashierTransfer, 0, len(s.transfers))
	for _, transfer := range s.transfers {
		copied := *transfer
		transfers = append(transfers, &copied)
	}
	return transfers, nil
}

// --- domain.ProjectRepository ---

func (s *Store) GetInvestment(ctx context.Context, id uuid.UUID) (*domain.ProjectInvestment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inv, ok := s.investments[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "investment", ID: id.String()}
	}
	copied := *inv
	return &copied, nil
}

func (s *Store) AddInvestment(ctx context.Context, inv *domain.ProjectInvestment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *inv
	s.investments[inv.ID] = &copied
	return nil
}

func (s *Store) DeleteInvestment(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.investments[id]; !ok {
		return &domain.NotFoundError{Entity: "investment", ID: id.String()}
	}
	delete(s.investments, id)
	return nil
}

func (s *Store) ListInvestments(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectInvestment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var investments []*domain.ProjectInvestment
	for _, inv := range s.investments {
		if inv.ProjectID != projectID {
			continue
		}
		copied := *inv
		investments = append(investments, &copied)
	}
	sort.Slice(investments, func(i, j int) bool {
		if !investments[i].Date.Equal(investments[j].Date) {
			return investments[i].Date.Before(investments[j].Date)
		}
		return investments[i].ID.String() < investments[j].ID.String()
	})
	return investments, nil
}

func (s *Store) UpdateInvestmentPercentages(ctx context.Context, projectID uuid.UUID, percentages map[uuid.UUID]decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for invID, percentage := range percentages {
		inv, ok := s.investments[invID]
		if !ok || inv.ProjectID != projectID {
			continue
		}
		inv.InvestmentPercentage = percentage
	}
	return nil
}

func (s *Store) AddRevenue(ctx context.Context, rev *domain.ProjectRevenue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *rev
	s.revenues[rev.ID] = &copied
	return nil
}

func (s *Store) DeleteRevenue(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.revenues[id]; !ok {
		return &domain.NotFoundError{Entity: "revenue", ID: id.String()}
	}
	delete(s.revenues, id)
	return nil
}

func (s *Store) ListRevenues(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectRevenue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var revenues []*domain.ProjectRevenue
	for _, rev := range s.revenues {
		if rev.ProjectID != projectID {
			continue
		}
		copied := *rev
		revenues = append(revenues, &copied)
	}
	sort.Slice(revenues, func(i, j int) bool {
		if !revenues[i].Date.Equal(revenues[j].Date) {
			return revenues[i].Date.Before(revenues[j].Date)
		}
		return revenues[i].ID.String() < revenues[j].ID.String()
	})
	return revenues, nil
}

func (s *Store) AddExpense(ctx context.Context, exp *domain.ProjectExpense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *exp
	s.expenses[exp.ID] = &copied
	return nil
}

func (s *Store) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.expenses[id]; !ok {
		return &domain.NotFoundError{Entity: "expense", ID: id.String()}
	}
	delete(s.expenses, id)
	return nil
}

func (s *Store) ListExpenses(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectExpense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var expenses []*domain.ProjectExpense
	for _, exp := range s.expenses {
		if exp.ProjectID != projectID {
			continue
		}
		copied := *exp
		expenses = append(expenses, &copied)
	}
	sort.Slice(expenses, func(i, j int) bool {
		if !expenses[i].Date.Equal(expenses[j].Date) {
			return expenses[i].Date.Before(expenses[j].Date)
		}
		return expenses[i].ID.String() < expenses[j].ID.String()
	})
	return expenses, nil
}

// --- domain.AllocationRepository ---

func (s *Store) ListByFund(ctx context.Context, fundID uuid.UUID) ([]*domain.MemberFundAllocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	allocations := make([]*domain.MemberFundAllocation, 0, len(s.allocations[fundID]))
	for _, alloc := range s.allocations[fundID] {
		copied := *alloc
		allocations = append(allocations, &copied)
	}
	return allocations, nil
}

func (s *Store) CountByFund(ctx context.Context, fundID uuid.UUID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.allocations[fundID]), nil
}

func (s *Store) ReplaceForFund(ctx context.Context, fundID uuid.UUID, allocations []*domain.MemberFundAllocation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	replacement := make([]*domain.MemberFundAllocation, 0, len(allocations))
	for _, alloc := range allocations {
		copied := *alloc
		replacement = append(replacement, &copied)
	}
	s.allocations[fundID] = replacement
	return nil
}

// --- domain.ReferenceData ---

func (s *Store) TransactionTypes(ctx context.Context) ([]domain.TransactionType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.TransactionType(nil), s.transactionTypes...), nil
}

func (s *Store) PaymentMethods(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.paymentMethods...), nil
}

func (s *Store) CashierNames(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.cashierNames...), nil
}
