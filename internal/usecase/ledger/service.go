package ledger

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clubvest/clubledger-backend/internal/domain"
	"github.com/clubvest/clubledger-backend/internal/events"
)

// CreateInput represents the input for creating a pending transaction.
type CreateInput struct {
	FundID      uuid.UUID
	ToFundID    *uuid.UUID // transfers only
	Type        domain.TransactionType
	Amount      decimal.Decimal
	Date        time.Time // zero means now
	Description string
	SourceType  string
	SourceID    *uuid.UUID
}

// Result is returned by every mutating ledger operation. AuditWarning
// is non-nil when the operation succeeded but its audit entry could
// not be written; the ledger action is never reverted for that.
type Result struct {
	Transaction  *domain.Transaction
	AuditWarning error
}

// Service owns the transaction approval state machine and is the only
// writer of fund balances.
//
// Concurrency: every operation that reads-then-writes a fund balance
// (approve, delete-with-recompute) holds an exclusive per-fund lock
// for the duration of the read-modify-write. Multi-fund operations
// acquire their locks in fund-ID order to avoid deadlocks.
type Service struct {
	FundRepo domain.FundRepository
	TxnRepo  domain.TransactionRepository
	RefData  domain.ReferenceData
	Identity domain.IdentityProvider
	Audit    domain.AuditLog
	Events   events.Publisher // optional, nil disables publication

	locksMu   sync.Mutex
	fundLocks map[uuid.UUID]*sync.Mutex
}

// NewService creates a new ledger Service instance.
func NewService(
	fundRepo domain.FundRepository,
	txnRepo domain.TransactionRepository,
	refData domain.ReferenceData,
	identity domain.IdentityProvider,
	auditLog domain.AuditLog,
	publisher events.Publisher,
) *Service {
	return &Service{
		FundRepo:  fundRepo,
		TxnRepo:   txnRepo,
		RefData:   refData,
		Identity:  identity,
		Audit:     auditLog,
		Events:    publisher,
		fundLocks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// Create records a new PENDING transaction. No balance effect is
// applied yet. Debits are screened against the current balance here
// as well; the authoritative check happens again at approval time,
// since the balance may change in the interim.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Result, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	txn := &domain.Transaction{
		ID:          uuid.New(),
		FundID:      input.FundID,
		ToFundID:    input.ToFundID,
		Type:        input.Type,
		Amount:      input.Amount,
		Status:      domain.StatusPending,
		Description: input.Description,
		Date:        date,
		CreatedBy:   actor,
		SourceType:  input.SourceType,
		SourceID:    input.SourceID,
	}

	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if err := s.validateType(ctx, txn.Type); err != nil {
		return nil, err
	}

	fund, err := s.FundRepo.GetByID(ctx, txn.FundID)
	if err != nil {
		return nil, err
	}

	if txn.IsTransfer() {
		if _, err := s.FundRepo.GetByID(ctx, *txn.ToFundID); err != nil {
			return nil, err
		}
	}

	if txn.Type.Debits() && fund.CurrentBalance.LessThan(txn.Amount) {
		return nil, &domain.InsufficientBalanceError{
			FundID:    fund.ID,
			Name:      fund.Name,
			Available: fund.CurrentBalance,
			Requested: txn.Amount,
		}
	}

	if err := s.TxnRepo.Create(ctx, txn); err != nil {
		return nil, err
	}

	warn := s.recordAudit(ctx, actor, "transaction.create", txn.ID, nil, txn)
	return &Result{Transaction: txn, AuditWarning: warn}, nil
}

// List returns a page of transactions, optionally restricted to one
// fund, newest first.
func (s *Service) List(ctx context.Context, limit, offset int, fundID *uuid.UUID) ([]*domain.Transaction, error) {
	if limit <= 0 {
		return nil, &domain.ValidationError{Field: "limit", Reason: "must be positive"}
	}
	if offset < 0 {
		return nil, &domain.ValidationError{Field: "offset", Reason: "must be non-negative"}
	}
	return s.TxnRepo.List(ctx, limit, offset, fundID)
}

// Approve transitions a PENDING transaction to APPROVED and applies
// its signed balance effect. The status write and the balance writes
// are one atomic unit in the repository. Approving a non-pending
// transaction fails with InvalidStateTransitionError.
func (s *Service) Approve(ctx context.Context, id uuid.UUID) (*Result, error) {
	approver, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}

	peek, err := s.TxnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	unlock := s.lockFunds(peek.FundIDs())
	defer unlock()

	// Re-read under lock: a concurrent approval may have won the race.
	txn, err := s.TxnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if txn.Status != domain.StatusPending {
		return nil, &domain.InvalidStateTransitionError{TransactionID: id, From: txn.Status, Operation: "approve"}
	}

	balances := make(map[uuid.UUID]decimal.Decimal, 2)
	var source *domain.Fund
	for _, fundID := range txn.FundIDs() {
		fund, err := s.FundRepo.GetByID(ctx, fundID)
		if err != nil {
			return nil, err
		}
		if fundID == txn.FundID {
			source = fund
		}
		balances[fundID] = fund.CurrentBalance.Add(txn.SignedEffect(fundID))
	}

	// The balance may have moved since creation, so debits (including
	// the source side of a transfer) are validated again here.
	if txn.Type.Debits() && source.CurrentBalance.LessThan(txn.Amount) {
		return nil, &domain.InsufficientBalanceError{
			FundID:    source.ID,
			Name:      source.Name,
			Available: source.CurrentBalance,
			Requested: txn.Amount,
		}
	}

	before := *txn
	now := time.Now()
	txn.Status = domain.StatusApproved
	txn.ApprovedBy = &approver
	txn.ApprovedAt = &now

	if err := s.TxnRepo.ApplyApproval(ctx, txn, balances); err != nil {
		return nil, err
	}

	warn := s.recordAudit(ctx, approver, "transaction.approve", txn.ID, &before, txn)
	s.publishApproved(txn, approver)
	return &Result{Transaction: txn, AuditWarning: warn}, nil
}

// Reject transitions a PENDING transaction to REJECTED, recording the
// reason. No balance effect is applied.
func (s *Service) Reject(ctx context.Context, id uuid.UUID, reason string) (*Result, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}

	if reason == "" {
		return nil, &domain.ValidationError{Field: "rejection_reason", Reason: "a rejection reason is required"}
	}

	peek, err := s.TxnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	unlock := s.lockFunds(peek.FundIDs())
	defer unlock()

	txn, err := s.TxnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if txn.Status != domain.StatusPending {
		return nil, &domain.InvalidStateTransitionError{TransactionID: id, From: txn.Status, Operation: "reject"}
	}

	before := *txn
	txn.Status = domain.StatusRejected
	txn.RejectionReason = reason

	if err := s.TxnRepo.UpdateStatus(ctx, txn); err != nil {
		return nil, err
	}

	warn := s.recordAudit(ctx, actor, "transaction.reject", txn.ID, &before, txn)
	s.publishRejected(txn, actor)
	return &Result{Transaction: txn, AuditWarning: warn}, nil
}

// Delete removes a transaction regardless of status. If it had been
// APPROVED, the balance of every fund it touched is recomputed by
// replaying all remaining approved transactions for that fund. A full
// replay avoids drift from incremental subtraction rounding.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*Result, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}

	peek, err := s.TxnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	unlock := s.lockFunds(peek.FundIDs())
	defer unlock()

	txn, err := s.TxnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var balances map[uuid.UUID]decimal.Decimal
	if txn.Status == domain.StatusApproved {
		balances = make(map[uuid.UUID]decimal.Decimal, 2)
		for _, fundID := range txn.FundIDs() {
			approved, err := s.TxnRepo.ListApprovedByFund(ctx, fundID)
			if err != nil {
				return nil, err
			}

			balance := decimal.Zero
			for _, other := range approved {
				if other.ID == id {
					continue
				}
				balance = balance.Add(other.SignedEffect(fundID))
			}
			balances[fundID] = balance
		}
	}

	if err := s.TxnRepo.DeleteWithBalances(ctx, id, balances); err != nil {
		return nil, err
	}

	warn := s.recordAudit(ctx, actor, "transaction.delete", txn.ID, txn, nil)
	return &Result{Transaction: txn, AuditWarning: warn}, nil
}

// actor resolves the current user, which every mutating ledger
// operation stamps onto the record and the audit trail.
func (s *Service) actor(ctx context.Context) (uuid.UUID, error) {
	if s.Identity == nil {
		return uuid.Nil, &domain.ValidationError{Field: "actor", Reason: "no identity provider configured"}
	}
	actor, ok := s.Identity.CurrentUserID(ctx)
	if !ok {
		return uuid.Nil, &domain.ValidationError{Field: "actor", Reason: "no authenticated user"}
	}
	return actor, nil
}

// validateType checks the transaction type against reference data.
// Without reference data the built-in types are accepted.
func (s *Service) validateType(ctx context.Context, tt domain.TransactionType) error {
	known := []domain.TransactionType{
		domain.TransactionTypeDeposit,
		domain.TransactionTypeWithdrawal,
		domain.TransactionTypeExpense,
		domain.TransactionTypeTransfer,
		domain.TransactionTypeInvestment,
	}
	if s.RefData != nil {
		registered, err := s.RefData.TransactionTypes(ctx)
		if err != nil {
			return fmt.Errorf("failed to load transaction types: %w", err)
		}
		known = registered
	}

	for _, candidate := range known {
		if candidate == tt {
			return nil
		}
	}
	return &domain.ValidationError{Field: "transaction_type", Reason: fmt.Sprintf("unknown transaction type %q", tt)}
}

func (s *Service) recordAudit(ctx context.Context, actor uuid.UUID, action string, entityID uuid.UUID, before, after any) error {
	if s.Audit == nil {
		return nil
	}
	if err := s.Audit.Record(ctx, actor, action, "transaction", entityID, before, after); err != nil {
		return fmt.Errorf("audit write failed for %s: %w", action, err)
	}
	return nil
}

func (s *Service) publishApproved(txn *domain.Transaction, approver uuid.UUID) {
	if s.Events == nil {
		return
	}

	event := events.TransactionApproved{
		TransactionID: txn.ID.String(),
		FundID:        txn.FundID.String(),
		Type:          string(txn.Type),
		Amount:        txn.Amount,
		ApprovedBy:    approver.String(),
		OccurredAt:    time.Now(),
	}
	if txn.ToFundID != nil {
		event.ToFundID = txn.ToFundID.String()
	}

	// Best-effort delivery: a publish failure never reverts the approval.
	if err := s.Events.Publish(events.TopicTransactionApproved, event); err != nil {
		log.Printf("Failed to publish approval of transaction %s: %v", txn.ID, err)
	}
}

func (s *Service) publishRejected(txn *domain.Transaction, actor uuid.UUID) {
	if s.Events == nil {
		return
	}

	err := s.Events.Publish(events.TopicTransactionRejected, events.TransactionRejected{
		TransactionID: txn.ID.String(),
		FundID:        txn.FundID.String(),
		Reason:        txn.RejectionReason,
		RejectedBy:    actor.String(),
		OccurredAt:    time.Now(),
	})
	if err != nil {
		log.Printf("Failed to publish rejection of transaction %s: %v", txn.ID, err)
	}
}

// fundLock returns the mutex guarding one fund, creating it on first use.
func (s *Service) fundLock(id uuid.UUID) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	if _, exists := s.fundLocks[id]; !exists {
		s.fundLocks[id] = &sync.Mutex{}
	}
	return s.fundLocks[id]
}

// lockFunds acquires the locks of every given fund in fund-ID order
// and returns a function releasing them in reverse order.
func (s *Service) lockFunds(ids []uuid.UUID) func() {
	seen := make(map[uuid.UUID]bool, len(ids))
	ordered := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			ordered = append(ordered, id)
		}
	}

	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].String() < ordered[j].String()
	})

	locks := make([]*sync.Mutex, 0, len(ordered))
	for _, id := range ordered {
		locks = append(locks, s.fundLock(id))
	}
	for _, l := range locks {
		l.Lock()
	}

	return func() {
		for i := len(locks) - 1; i >= 0; i-- {
			locks[i].Unlock()
		}
	}
}
