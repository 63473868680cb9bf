package distribution

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clubvest/clubledger-backend/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// AddInvestmentInput represents the input for recording a member's
// stake in a project.
type AddInvestmentInput struct {
	ProjectID uuid.UUID
	MemberID  uuid.UUID
	Amount    decimal.Decimal
	Date      time.Time
}

// RecordInput is shared by revenue and expense recording.
type RecordInput struct {
	ProjectID   uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// MemberShare is one member's slice of a project's profit or loss,
// proportional to their share of total investment.
type MemberShare struct {
	MemberID        uuid.UUID
	TotalInvestment decimal.Decimal
	SharePercentage decimal.Decimal
	ProfitLossShare decimal.Decimal
}

// Financials aggregates a project's money flows. ROI is zero when
// nothing has been invested yet.
type Financials struct {
	ProjectID       uuid.UUID
	TotalInvestment decimal.Decimal
	TotalRevenue    decimal.Decimal
	TotalExpenses   decimal.Decimal
	ProfitLoss      decimal.Decimal
	ROI             decimal.Decimal
	MemberShares    []MemberShare
}

// BreakEven reports how many months of the observed revenue/expense
// trend it took for cumulative net income to cover the total
// investment. Reached is false when the trend never crosses.
type BreakEven struct {
	ProjectID       uuid.UUID
	TotalInvestment decimal.Decimal
	Months          int
	Reached         bool
}

// Service implements per-project investment accounting and
// profit/loss distribution. All figures are derived on demand from
// the raw investment, revenue and expense records; only the ownership
// percentages are written back, and those are renormalized across the
// whole project on every investment change.
type Service struct {
	ProjectRepo    domain.ProjectRepository
	TxnRepo        domain.TransactionRepository
	AllocationRepo domain.AllocationRepository

	locksMu      sync.Mutex
	projectLocks map[uuid.UUID]*sync.Mutex
}

// NewService creates a new distribution Service instance.
func NewService(
	projectRepo domain.ProjectRepository,
	txnRepo domain.TransactionRepository,
	allocationRepo domain.AllocationRepository,
) *Service {
	return &Service{
		ProjectRepo:    projectRepo,
		TxnRepo:        txnRepo,
		AllocationRepo: allocationRepo,
		projectLocks:   make(map[uuid.UUID]*sync.Mutex),
	}
}

// AddInvestment records a stake and renormalizes the ownership
// percentages of every investment in the project so they sum to 100.
func (s *Service) AddInvestment(ctx context.Context, input AddInvestmentInput) (*domain.ProjectInvestment, error) {
	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	inv := &domain.ProjectInvestment{
		ID:        uuid.New(),
		ProjectID: input.ProjectID,
		MemberID:  input.MemberID,
		Amount:    input.Amount,
		Date:      date,
	}
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	lock := s.projectLock(inv.ProjectID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.ProjectRepo.AddInvestment(ctx, inv); err != nil {
		return nil, err
	}

	if err := s.renormalize(ctx, inv.ProjectID); err != nil {
		return nil, err
	}
	// pick up the percentage assigned during renormalization
	stored, err := s.ProjectRepo.GetInvestment(ctx, inv.ID)
	if err != nil {
		return inv, nil
	}
	return stored, nil
}

// DeleteInvestment removes a stake and renormalizes the remaining
// percentages. Deleting the last investment leaves nothing to scale.
func (s *Service) DeleteInvestment(ctx context.Context, id uuid.UUID) error {
	inv, err := s.ProjectRepo.GetInvestment(ctx, id)
	if err != nil {
		return err
	}

	lock := s.projectLock(inv.ProjectID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.ProjectRepo.DeleteInvestment(ctx, id); err != nil {
		return err
	}
	return s.renormalize(ctx, inv.ProjectID)
}

// AddRevenue records income attributable to a project.
func (s *Service) AddRevenue(ctx context.Context, input RecordInput) (*domain.ProjectRevenue, error) {
	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}
	rev := &domain.ProjectRevenue{
		ID:          uuid.New(),
		ProjectID:   input.ProjectID,
		Amount:      input.Amount,
		Date:        date,
		Description: input.Description,
	}
	if err := rev.Validate(); err != nil {
		return nil, err
	}
	if err := s.ProjectRepo.AddRevenue(ctx, rev); err != nil {
		return nil, err
	}
	return rev, nil
}

// DeleteRevenue removes a revenue record.
func (s *Service) DeleteRevenue(ctx context.Context, id uuid.UUID) error {
	return s.ProjectRepo.DeleteRevenue(ctx, id)
}

// AddExpense records an outflow attributable to a project.
func (s *Service) AddExpense(ctx context.Context, input RecordInput) (*domain.ProjectExpense, error) {
	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}
	exp := &domain.ProjectExpense{
		ID:          uuid.New(),
		ProjectID:   input.ProjectID,
		Amount:      input.Amount,
		Date:        date,
		Description: input.Description,
	}
	if err := exp.Validate(); err != nil {
		return nil, err
	}
	if err := s.ProjectRepo.AddExpense(ctx, exp); err != nil {
		return nil, err
	}
	return exp, nil
}

// DeleteExpense removes an expense record.
func (s *Service) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	return s.ProjectRepo.DeleteExpense(ctx, id)
}

// GetFinancials computes the project totals, ROI and the per-member
// profit/loss distribution. Shares are rounded to cents and the
// rounding remainder is assigned to the largest investor so the
// shares always sum to the exact profit/loss figure.
func (s *Service) GetFinancials(ctx context.Context, projectID uuid.UUID) (*Financials, error) {
	investments, revenues, expenses, err := s.records(ctx, projectID)
	if err != nil {
		return nil, err
	}

	fin := &Financials{ProjectID: projectID}
	for _, inv := range investments {
		fin.TotalInvestment = fin.TotalInvestment.Add(inv.Amount)
	}
	for _, rev := range revenues {
		fin.TotalRevenue = fin.TotalRevenue.Add(rev.Amount)
	}
	for _, exp := range expenses {
		fin.TotalExpenses = fin.TotalExpenses.Add(exp.Amount)
	}
	fin.ProfitLoss = fin.TotalRevenue.Sub(fin.TotalExpenses)

	if fin.TotalInvestment.IsPositive() {
		fin.ROI = fin.ProfitLoss.Div(fin.TotalInvestment).Mul(hundred).Round(2)
	}

	fin.MemberShares = memberShares(investments, fin.TotalInvestment, fin.ProfitLoss)
	return fin, nil
}

// GetBreakEven walks the monthly revenue/expense trend accumulating
// net income until it covers the total investment. A project with no
// investment has nothing to recover and is break-even immediately.
func (s *Service) GetBreakEven(ctx context.Context, projectID uuid.UUID) (*BreakEven, error) {
	investments, revenues, expenses, err := s.records(ctx, projectID)
	if err != nil {
		return nil, err
	}

	be := &BreakEven{ProjectID: projectID}
	for _, inv := range investments {
		be.TotalInvestment = be.TotalInvestment.Add(inv.Amount)
	}
	if !be.TotalInvestment.IsPositive() {
		be.Reached = true
		return be, nil
	}

	net := make(map[string]decimal.Decimal)
	for _, rev := range revenues {
		key := rev.Date.Format("2006-01")
		net[key] = net[key].Add(rev.Amount)
	}
	for _, exp := range expenses {
		key := exp.Date.Format("2006-01")
		net[key] = net[key].Sub(exp.Amount)
	}

	months := make([]string, 0, len(net))
	for key := range net {
		months = append(months, key)
	}
	sort.Strings(months)

	var cumulative decimal.Decimal
	for i, key := range months {
		cumulative = cumulative.Add(net[key])
		if cumulative.GreaterThanOrEqual(be.TotalInvestment) {
			be.Months = i + 1
			be.Reached = true
			return be, nil
		}
	}
	return be, nil
}

// RefreshAllocations rebuilds the fund's member allocation snapshot
// from the approved member deposits into it. The snapshot is replaced
// wholesale; allocation percentages are proportional to each member's
// deposited total.
func (s *Service) RefreshAllocations(ctx context.Context, fundID uuid.UUID) ([]*domain.MemberFundAllocation, error) {
	txns, err := s.TxnRepo.ListApprovedByFund(ctx, fundID)
	if err != nil {
		return nil, err
	}

	deposited := make(map[uuid.UUID]decimal.Decimal)
	var total decimal.Decimal
	for _, txn := range txns {
		if txn.Type != domain.TransactionTypeDeposit || txn.SourceType != "member" || txn.SourceID == nil {
			continue
		}
		deposited[*txn.SourceID] = deposited[*txn.SourceID].Add(txn.Amount)
		total = total.Add(txn.Amount)
	}

	members := make([]uuid.UUID, 0, len(deposited))
	for memberID := range deposited {
		members = append(members, memberID)
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].String() < members[j].String()
	})

	allocations := make([]*domain.MemberFundAllocation, 0, len(members))
	for _, memberID := range members {
		amount := deposited[memberID]
		alloc := &domain.MemberFundAllocation{
			MemberID:        memberID,
			FundID:          fundID,
			AllocatedAmount: amount,
		}
		if total.IsPositive() {
			alloc.AllocationPercentage = amount.Div(total).Mul(hundred).Round(2)
		}
		allocations = append(allocations, alloc)
	}

	if err := s.AllocationRepo.ReplaceForFund(ctx, fundID, allocations); err != nil {
		return nil, err
	}
	return allocations, nil
}

// ListAllocations returns the stored allocation snapshot for a fund.
func (s *Service) ListAllocations(ctx context.Context, fundID uuid.UUID) ([]*domain.MemberFundAllocation, error) {
	return s.AllocationRepo.ListByFund(ctx, fundID)
}

// renormalize recomputes investment_percentage across every
// investment of the project, writing the result as one atomic unit.
// Must be called with the project lock held.
func (s *Service) renormalize(ctx context.Context, projectID uuid.UUID) error {
	investments, err := s.ProjectRepo.ListInvestments(ctx, projectID)
	if err != nil {
		return err
	}
	if len(investments) == 0 {
		return nil
	}

	var total decimal.Decimal
	for _, inv := range investments {
		total = total.Add(inv.Amount)
	}

	percentages := make(map[uuid.UUID]decimal.Decimal, len(investments))
	for _, inv := range investments {
		if total.IsPositive() {
			percentages[inv.ID] = inv.Amount.Div(total).Mul(hundred).Round(4)
		} else {
			percentages[inv.ID] = decimal.Zero
		}
	}
	return s.ProjectRepo.UpdateInvestmentPercentages(ctx, projectID, percentages)
}

// records loads the three raw record sets backing the derived figures.
func (s *Service) records(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectInvestment, []*domain.ProjectRevenue, []*domain.ProjectExpense, error) {
	investments, err := s.ProjectRepo.ListInvestments(ctx, projectID)
	if err != nil {
		return nil, nil, nil, err
	}
	revenues, err := s.ProjectRepo.ListRevenues(ctx, projectID)
	if err != nil {
		return nil, nil, nil, err
	}
	expenses, err := s.ProjectRepo.ListExpenses(ctx, projectID)
	if err != nil {
		return nil, nil, nil, err
	}
	return investments, revenues, expenses, nil
}

// memberShares splits profitLoss across members proportionally to
// their invested totals. Shares are rounded to cents; whatever cents
// the rounding dropped (or added) land on the largest investor.
func memberShares(investments []*domain.ProjectInvestment, total, profitLoss decimal.Decimal) []MemberShare {
	if len(investments) == 0 || !total.IsPositive() {
		return nil
	}

	byMember := make(map[uuid.UUID]decimal.Decimal)
	for _, inv := range investments {
		byMember[inv.MemberID] = byMember[inv.MemberID].Add(inv.Amount)
	}

	members := make([]uuid.UUID, 0, len(byMember))
	for memberID := range byMember {
		members = append(members, memberID)
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].String() < members[j].String()
	})

	shares := make([]MemberShare, 0, len(members))
	var distributed decimal.Decimal
	largest := -1
	for i, memberID := range members {
		invested := byMember[memberID]
		share := MemberShare{
			MemberID:        memberID,
			TotalInvestment: invested,
			SharePercentage: invested.Div(total).Mul(hundred).Round(2),
			ProfitLossShare: profitLoss.Mul(invested).Div(total).Round(2),
		}
		distributed = distributed.Add(share.ProfitLossShare)
		if largest == -1 || invested.GreaterThan(shares[largest].TotalInvestment) {
			largest = i
		}
		shares = append(shares, share)
	}

	remainder := profitLoss.Sub(distributed)
	if !remainder.IsZero() {
		shares[largest].ProfitLossShare = shares[largest].ProfitLossShare.Add(remainder)
	}
	return shares
}

func (s *Service) projectLock(projectID uuid.UUID) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	lock, ok := s.projectLocks[projectID]
	if !ok {
		lock = &sync.Mutex{}
		s.projectLocks[projectID] = lock
	}
	return lock
}
