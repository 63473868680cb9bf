package grpc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	clubledgerv1 "github.com/clubvest/clubledger-backend/internal/adapter/grpc/clubledger/v1"
	"github.com/clubvest/clubledger-backend/internal/domain"
	"github.com/clubvest/clubledger-backend/internal/usecase/cashier"
	"github.com/clubvest/clubledger-backend/internal/usecase/distribution"
	"github.com/clubvest/clubledger-backend/internal/usecase/fundregistry"
	"github.com/clubvest/clubledger-backend/internal/usecase/ledger"
	"github.com/clubvest/clubledger-backend/internal/usecase/summary"
	"github.com/clubvest/clubledger-backend/internal/usecase/transfer"
)

// Server implements the ClubLedgerService gRPC server
type Server struct {
	clubledgerv1.UnimplementedClubLedgerServiceServer

	FundService         *fundregistry.Service
	LedgerService       *ledger.Service
	TransferService     *transfer.Service
	CashierService      *cashier.Service
	DistributionService *distribution.Service
	SummaryService      *summary.Service
}

// NewServer creates a new gRPC server instance
func NewServer(
	fundService *fundregistry.Service,
	ledgerService *ledger.Service,
	transferService *transfer.Service,
	cashierService *cashier.Service,
	distributionService *distribution.Service,
	summaryService *summary.Service,
) *Server {
	return &Server{
		FundService:         fundService,
		LedgerService:       ledgerService,
		TransferService:     transferService,
		CashierService:      cashierService,
		DistributionService: distributionService,
		SummaryService:      summaryService,
	}
}

// CreateFund handles the CreateFund RPC
func (s *Server) CreateFund(ctx context.Context, req *clubledgerv1.CreateFundRequest) (*clubledgerv1.CreateFundResponse, error) {
	fund, err := s.FundService.CreateFund(ctx, fundregistry.CreateFundInput{
		Name:        req.Name,
		FundType:    domain.FundType(req.FundType),
		Description: req.Description,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &clubledgerv1.CreateFundResponse{Fund: domainFundToProto(fund)}, nil
}

// ListFunds handles the ListFunds RPC
func (s *Server) ListFunds(ctx context.Context, req *clubledgerv1.ListFundsRequest) (*clubledgerv1.ListFundsResponse, error) {
	funds, err := s.FundService.ListFunds(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	protoFunds := make([]*clubledgerv1.Fund, 0, len(funds))
	for _, fund := range funds {
		protoFunds = append(protoFunds, domainFundToProto(fund))
	}

	return &clubledgerv1.ListFundsResponse{Funds: protoFunds}, nil
}

// DeleteFund handles the DeleteFund RPC
func (s *Server) DeleteFund(ctx context.Context, req *clubledgerv1.DeleteFundRequest) (*clubledgerv1.DeleteFundResponse, error) {
	fundID, err := parseUUID(req.FundId, "fund_id")
	if err != nil {
		return nil, err
	}

	if err := s.FundService.DeleteFund(ctx, fundID); err != nil {
		return nil, mapError(err)
	}

	return &clubledgerv1.DeleteFundResponse{}, nil
}

// CreateTransaction handles the CreateTransaction RPC
func (s *Server) CreateTransaction(ctx context.Context, req *clubledgerv1.CreateTransactionRequest) (*clubledgerv1.TransactionResponse, error) {
	fundID, err := parseUUID(req.FundId, "fund_id")
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	input := ledger.CreateInput{
		FundID:      fundID,
		Type:        domain.TransactionType(req.Type),
		Amount:      amount,
		Description: req.Description,
	}
	if req.Date != nil {
		input.Date = req.Date.AsTime()
	}
	if req.ToFundId != "" {
		toFundID, err := parseUUID(req.ToFundId, "to_fund_id")
		if err != nil {
			return nil, err
		}
		input.ToFundID = &toFundID
	}

	result, err := s.LedgerService.Create(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}

	return transactionResponse(result), nil
}

// ApproveTransaction handles the ApproveTransaction RPC
func (s *Server) ApproveTransaction(ctx context.Context, req *clubledgerv1.ApproveTransactionRequest) (*clubledgerv1.TransactionResponse, error) {
	id, err := parseUUID(req.TransactionId, "transaction_id")
	if err != nil {
		return nil, err
	}

	result, err := s.LedgerService.Approve(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}

	return transactionResponse(result), nil
}

// RejectTransaction handles the RejectTransaction RPC
func (s *Server) RejectTransaction(ctx context.Context, req *clubledgerv1.RejectTransactionRequest) (*clubledgerv1.TransactionResponse, error) {
	id, err := parseUUID(req.TransactionId, "transaction_id")
	if err != nil {
		return nil, err
	}

	result, err := s.LedgerService.Reject(ctx, id, req.Reason)
	if err != nil {
		return nil, mapError(err)
	}

	return transactionResponse(result), nil
}

// DeleteTransaction handles the DeleteTransaction RPC
func (s *Server) DeleteTransaction(ctx context.Context, req *clubledgerv1.DeleteTransactionRequest) (*clubledgerv1.DeleteTransactionResponse, error) {
	id, err := parseUUID(req.TransactionId, "transaction_id")
	if err != nil {
		return nil, err
	}

	result, err := s.LedgerService.Delete(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &clubledgerv1.DeleteTransactionResponse{}
	if result.AuditWarning != nil {
		resp.AuditWarning = result.AuditWarning.Error()
	}
	return resp, nil
}

// ListTransactions handles the ListTransactions RPC
func (s *Server) ListTransactions(ctx context.Context, req *clubledgerv1.ListTransactionsRequest) (*clubledgerv1.ListTransactionsResponse, error) {
	var fundID *uuid.UUID
	if req.FundId != "" {
		parsed, err := parseUUID(req.FundId, "fund_id")
		if err != nil {
			return nil, err
		}
		fundID = &parsed
	}

	txns, err := s.LedgerService.List(ctx, int(req.Limit), int(req.Offset), fundID)
	if err != nil {
		return nil, mapError(err)
	}

	protoTxns := make([]*clubledgerv1.Transaction, 0, len(txns))
	for _, txn := range txns {
		protoTxns = append(protoTxns, domainTransactionToProto(txn))
	}

	return &clubledgerv1.ListTransactionsResponse{Transactions: protoTxns}, nil
}

// CreateTransfer handles the CreateTransfer RPC
func (s *Server) CreateTransfer(ctx context.Context, req *clubledgerv1.CreateTransferRequest) (*clubledgerv1.TransactionResponse, error) {
	fromFundID, err := parseUUID(req.FromFundId, "from_fund_id")
	if err != nil {
		return nil, err
	}
	toFundID, err := parseUUID(req.ToFundId, "to_fund_id")
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	result, err := s.TransferService.Create(ctx, transfer.CreateInput{
		FromFundID:  fromFundID,
		ToFundID:    toFundID,
		Amount:      amount,
		Description: req.Description,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return transactionResponse(result), nil
}

// GetFundSummary handles the GetFundSummary RPC
func (s *Server) GetFundSummary(ctx context.Context, req *clubledgerv1.GetFundSummaryRequest) (*clubledgerv1.GetFundSummaryResponse, error) {
	result, err := s.SummaryService.GetFundSummary(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	return &clubledgerv1.GetFundSummaryResponse{
		TotalBalance:        result.TotalBalance.String(),
		ActiveFunds:         int32(result.ActiveFunds),
		PendingTransactions: int32(result.PendingTransactions),
	}, nil
}

// RecordCashierPayment handles the RecordCashierPayment RPC
func (s *Server) RecordCashierPayment(ctx context.Context, req *clubledgerv1.RecordCashierPaymentRequest) (*clubledgerv1.RecordCashierPaymentResponse, error) {
	memberID, err := parseUUID(req.MemberId, "member_id")
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	payment, err := s.CashierService.RecordPayment(ctx, cashier.RecordPaymentInput{
		CashierName: req.CashierName,
		MemberID:    memberID,
		Amount:      amount,
		Method:      req.Method,
		Description: req.Description,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &clubledgerv1.RecordCashierPaymentResponse{
		PaymentId: payment.ID.String(),
		CreatedAt: timestamppb.New(payment.Date),
	}, nil
}

// CreateCashierTransfer handles the CreateCashierTransfer RPC
func (s *Server) CreateCashierTransfer(ctx context.Context, req *clubledgerv1.CreateCashierTransferRequest) (*clubledgerv1.CreateCashierTransferResponse, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	input := cashier.CreateTransferInput{
		FromCashier: req.FromCashier,
		ToCashier:   req.ToCashier,
		Amount:      amount,
		Description: req.Description,
	}
	if req.ToFundId != "" {
		toFundID, err := parseUUID(req.ToFundId, "to_fund_id")
		if err != nil {
			return nil, err
		}
		input.ToFundID = &toFundID
	}

	result, err := s.CashierService.CreateTransfer(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &clubledgerv1.CreateCashierTransferResponse{
		TransferId: result.Transfer.ID.String(),
	}
	if result.Transfer.LedgerTransactionID != nil {
		resp.LedgerTransactionId = result.Transfer.LedgerTransactionID.String()
	}
	if result.LedgerResult != nil && result.LedgerResult.AuditWarning != nil {
		resp.AuditWarning = result.LedgerResult.AuditWarning.Error()
	}
	return resp, nil
}

// GetCashierLedger handles the GetCashierLedger RPC
func (s *Server) GetCashierLedger(ctx context.Context, req *clubledgerv1.GetCashierLedgerRequest) (*clubledgerv1.GetCashierLedgerResponse, error) {
	entries, err := s.CashierService.Snapshot(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	protoEntries := make([]*clubledgerv1.CashierLedgerEntry, 0, len(entries))
	for _, entry := range entries {
		protoEntries = append(protoEntries, &clubledgerv1.CashierLedgerEntry{
			CashierName: entry.CashierName,
			TotalAmount: entry.TotalAmount.String(),
		})
	}

	return &clubledgerv1.GetCashierLedgerResponse{Entries: protoEntries}, nil
}

// AddInvestment handles the AddInvestment RPC
func (s *Server) AddInvestment(ctx context.Context, req *clubledgerv1.AddInvestmentRequest) (*clubledgerv1.AddInvestmentResponse, error) {
	projectID, err := parseUUID(req.ProjectId, "project_id")
	if err != nil {
		return nil, err
	}
	memberID, err := parseUUID(req.MemberId, "member_id")
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	inv, err := s.DistributionService.AddInvestment(ctx, distribution.AddInvestmentInput{
		ProjectID: projectID,
		MemberID:  memberID,
		Amount:    amount,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &clubledgerv1.AddInvestmentResponse{
		InvestmentId:         inv.ID.String(),
		InvestmentPercentage: inv.InvestmentPercentage.String(),
	}, nil
}

// DeleteInvestment handles the DeleteInvestment RPC
func (s *Server) DeleteInvestment(ctx context.Context, req *clubledgerv1.DeleteInvestmentRequest) (*clubledgerv1.DeleteInvestmentResponse, error) {
	id, err := parseUUID(req.InvestmentId, "investment_id")
	if err != nil {
		return nil, err
	}

	if err := s.DistributionService.DeleteInvestment(ctx, id); err != nil {
		return nil, mapError(err)
	}

	return &clubledgerv1.DeleteInvestmentResponse{}, nil
}

// AddRevenue handles the AddRevenue RPC
func (s *Server) AddRevenue(ctx context.Context, req *clubledgerv1.AddRevenueRequest) (*clubledgerv1.AddRevenueResponse, error) {
	projectID, err := parseUUID(req.ProjectId, "project_id")
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	rev, err := s.DistributionService.AddRevenue(ctx, distribution.RecordInput{
		ProjectID:   projectID,
		Amount:      amount,
		Description: req.Description,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &clubledgerv1.AddRevenueResponse{RevenueId: rev.ID.String()}, nil
}

// DeleteRevenue handles the DeleteRevenue RPC
func (s *Server) DeleteRevenue(ctx context.Context, req *clubledgerv1.DeleteRevenueRequest) (*clubledgerv1.DeleteRevenueResponse, error) {
	id, err := parseUUID(req.RevenueId, "revenue_id")
	if err != nil {
		return nil, err
	}

	if err := s.DistributionService.DeleteRevenue(ctx, id); err != nil {
		return nil, mapError(err)
	}

	return &clubledgerv1.DeleteRevenueResponse{}, nil
}

// AddExpense handles the AddExpense RPC
func (s *Server) AddExpense(ctx context.Context, req *clubledgerv1.AddExpenseRequest) (*clubledgerv1.AddExpenseResponse, error) {
	projectID, err := parseUUID(req.ProjectId, "project_id")
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	exp, err := s.DistributionService.AddExpense(ctx, distribution.RecordInput{
		ProjectID:   projectID,
		Amount:      amount,
		Description: req.Description,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &clubledgerv1.AddExpenseResponse{ExpenseId: exp.ID.String()}, nil
}

// DeleteExpense handles the DeleteExpense RPC
func (s *Server) DeleteExpense(ctx context.Context, req *clubledgerv1.DeleteExpenseRequest) (*clubledgerv1.DeleteExpenseResponse, error) {
	id, err := parseUUID(req.ExpenseId, "expense_id")
	if err != nil {
		return nil, err
	}

	if err := s.DistributionService.DeleteExpense(ctx, id); err != nil {
		return nil, mapError(err)
	}

	return &clubledgerv1.DeleteExpenseResponse{}, nil
}

// GetProjectFinancials handles the GetProjectFinancials RPC
func (s *Server) GetProjectFinancials(ctx context.Context, req *clubledgerv1.GetProjectFinancialsRequest) (*clubledgerv1.GetProjectFinancialsResponse, error) {
	projectID, err := parseUUID(req.ProjectId, "project_id")
	if err != nil {
		return nil, err
	}

	fin, err := s.DistributionService.GetFinancials(ctx, projectID)
	if err != nil {
		return nil, mapError(err)
	}

	shares := make([]*clubledgerv1.MemberShare, 0, len(fin.MemberShares))
	for _, share := range fin.MemberShares {
		shares = append(shares, &clubledgerv1.MemberShare{
			MemberId:        share.MemberID.String(),
			TotalInvestment: share.TotalInvestment.String(),
			SharePercentage: share.SharePercentage.String(),
			ProfitLossShare: share.ProfitLossShare.String(),
		})
	}

	return &clubledgerv1.GetProjectFinancialsResponse{
		TotalInvestment: fin.TotalInvestment.String(),
		TotalRevenue:    fin.TotalRevenue.String(),
		TotalExpenses:   fin.TotalExpenses.String(),
		ProfitLoss:      fin.ProfitLoss.String(),
		Roi:             fin.ROI.String(),
		MemberShares:    shares,
	}, nil
}

// GetBreakEven handles the GetBreakEven RPC
func (s *Server) GetBreakEven(ctx context.Context, req *clubledgerv1.GetBreakEvenRequest) (*clubledgerv1.GetBreakEvenResponse, error) {
	projectID, err := parseUUID(req.ProjectId, "project_id")
	if err != nil {
		return nil, err
	}

	be, err := s.DistributionService.GetBreakEven(ctx, projectID)
	if err != nil {
		return nil, mapError(err)
	}

	return &clubledgerv1.GetBreakEvenResponse{
		TotalInvestment: be.TotalInvestment.String(),
		Months:          int32(be.Months),
		Reached:         be.Reached,
	}, nil
}

// RefreshFundAllocations handles the RefreshFundAllocations RPC
func (s *Server) RefreshFundAllocations(ctx context.Context, req *clubledgerv1.RefreshFundAllocationsRequest) (*clubledgerv1.FundAllocationsResponse, error) {
	fundID, err := parseUUID(req.FundId, "fund_id")
	if err != nil {
		return nil, err
	}

	allocations, err := s.DistributionService.RefreshAllocations(ctx, fundID)
	if err != nil {
		return nil, mapError(err)
	}

	return allocationsResponse(allocations), nil
}

// ListFundAllocations handles the ListFundAllocations RPC
func (s *Server) ListFundAllocations(ctx context.Context, req *clubledgerv1.ListFundAllocationsRequest) (*clubledgerv1.FundAllocationsResponse, error) {
	fundID, err := parseUUID(req.FundId, "fund_id")
	if err != nil {
		return nil, err
	}

	allocations, err := s.DistributionService.ListAllocations(ctx, fundID)
	if err != nil {
		return nil, mapError(err)
	}

	return allocationsResponse(allocations), nil
}

func parseUUID(value, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return id, nil
}

func parseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, status.Errorf(codes.InvalidArgument, "invalid amount format: %v", err)
	}
	return amount, nil
}

func transactionResponse(result *ledger.Result) *clubledgerv1.TransactionResponse {
	resp := &clubledgerv1.TransactionResponse{
		Transaction: domainTransactionToProto(result.Transaction),
	}
	if result.AuditWarning != nil {
		resp.AuditWarning = result.AuditWarning.Error()
	}
	return resp
}

func allocationsResponse(allocations []*domain.MemberFundAllocation) *clubledgerv1.FundAllocationsResponse {
	protoAllocations := make([]*clubledgerv1.MemberFundAllocation, 0, len(allocations))
	for _, alloc := range allocations {
		protoAllocations = append(protoAllocations, &clubledgerv1.MemberFundAllocation{
			MemberId:             alloc.MemberID.String(),
			FundId:               alloc.FundID.String(),
			AllocatedAmount:      alloc.AllocatedAmount.String(),
			AllocationPercentage: alloc.AllocationPercentage.String(),
		})
	}
	return &clubledgerv1.FundAllocationsResponse{Allocations: protoAllocations}
}

func domainFundToProto(fund *domain.Fund) *clubledgerv1.Fund {
	return &clubledgerv1.Fund{
		Id:             fund.ID.String(),
		Name:           fund.Name,
		FundType:       string(fund.FundType),
		CurrentBalance: fund.CurrentBalance.String(),
		IsActive:       fund.IsActive,
		Description:    fund.Description,
	}
}

func domainTransactionToProto(txn *domain.Transaction) *clubledgerv1.Transaction {
	protoTxn := &clubledgerv1.Transaction{
		Id:              txn.ID.String(),
		FundId:          txn.FundID.String(),
		Type:            string(txn.Type),
		Amount:          txn.Amount.String(),
		Status:          string(txn.Status),
		Description:     txn.Description,
		Date:            timestamppb.New(txn.Date),
		CreatedBy:       txn.CreatedBy.String(),
		RejectionReason: txn.RejectionReason,
		SourceType:      txn.SourceType,
	}
	if txn.ToFundID != nil {
		protoTxn.ToFundId = txn.ToFundID.String()
	}
	if txn.ApprovedBy != nil {
		protoTxn.ApprovedBy = txn.ApprovedBy.String()
	}
	if txn.ApprovedAt != nil {
		protoTxn.ApprovedAt = timestamppb.New(*txn.ApprovedAt)
	}
	if txn.SourceID != nil {
		protoTxn.SourceId = txn.SourceID.String()
	}
	return protoTxn
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return status.Errorf(codes.InvalidArgument, "%s", err.Error())
	}

	var notFoundErr *domain.NotFoundError
	if errors.As(err, &notFoundErr) {
		return status.Errorf(codes.NotFound, "%s", err.Error())
	}

	var balanceErr *domain.InsufficientBalanceError
	if errors.As(err, &balanceErr) {
		return status.Errorf(codes.FailedPrecondition, "%s", err.Error())
	}

	var conflictErr *domain.DependencyConflictError
	if errors.As(err, &conflictErr) {
		return status.Errorf(codes.FailedPrecondition, "%s", err.Error())
	}

	var stateErr *domain.InvalidStateTransitionError
	if errors.As(err, &stateErr) {
		return status.Errorf(codes.FailedPrecondition, "%s", err.Error())
	}

	return status.Errorf(codes.Internal, "%s", err.Error())
}
