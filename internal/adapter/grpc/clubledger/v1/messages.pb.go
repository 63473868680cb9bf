package clubledgerv1

import (
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
)

type Fund struct {
	Id             string `protobuf:"bytes,1,opt,name=id"`
	Name           string `protobuf:"bytes,2,opt,name=name"`
	FundType       string `protobuf:"bytes,3,opt,name=fund_type"`
	CurrentBalance string `protobuf:"bytes,4,opt,name=current_balance"`
	IsActive       bool   `protobuf:"varint,5,opt,name=is_active"`
	Description    string `protobuf:"bytes,6,opt,name=description"`
}

type Transaction struct {
	Id              string                 `protobuf:"bytes,1,opt,name=id"`
	FundId          string                 `protobuf:"bytes,2,opt,name=fund_id"`
	ToFundId        string                 `protobuf:"bytes,3,opt,name=to_fund_id"`
	Type            string                 `protobuf:"bytes,4,opt,name=type"`
	Amount          string                 `protobuf:"bytes,5,opt,name=amount"`
	Status          string                 `protobuf:"bytes,6,opt,name=status"`
	Description     string                 `protobuf:"bytes,7,opt,name=description"`
	Date            *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=date"`
	CreatedBy       string                 `protobuf:"bytes,9,opt,name=created_by"`
	ApprovedBy      string                 `protobuf:"bytes,10,opt,name=approved_by"`
	ApprovedAt      *timestamppb.Timestamp `protobuf:"bytes,11,opt,name=approved_at"`
	RejectionReason string                 `protobuf:"bytes,12,opt,name=rejection_reason"`
	SourceType      string                 `protobuf:"bytes,13,opt,name=source_type"`
	SourceId        string                 `protobuf:"bytes,14,opt,name=source_id"`
}

type CashierLedgerEntry struct {
	CashierName string `protobuf:"bytes,1,opt,name=cashier_name"`
	TotalAmount string `protobuf:"bytes,2,opt,name=total_amount"`
}

type MemberShare struct {
	MemberId        string `protobuf:"bytes,1,opt,name=member_id"`
	TotalInvestment string `protobuf:"bytes,2,opt,name=total_investment"`
	SharePercentage string `protobuf:"bytes,3,opt,name=share_percentage"`
	ProfitLossShare string `protobuf:"bytes,4,opt,name=profit_loss_share"`
}

type MemberFundAllocation struct {
	MemberId             string `protobuf:"bytes,1,opt,name=member_id"`
	FundId               string `protobuf:"bytes,2,opt,name=fund_id"`
	AllocatedAmount      string `protobuf:"bytes,3,opt,name=allocated_amount"`
	AllocationPercentage string `protobuf:"bytes,4,opt,name=allocation_percentage"`
}

type CreateFundRequest struct {
	Name        string `protobuf:"bytes,1,opt,name=name"`
	FundType    string `protobuf:"bytes,2,opt,name=fund_type"`
	Description string `protobuf:"bytes,3,opt,name=description"`
}

type CreateFundResponse struct {
	Fund *Fund `protobuf:"bytes,1,opt,name=fund"`
}

type ListFundsRequest struct{}

type ListFundsResponse struct {
	Funds []*Fund `protobuf:"bytes,1,rep,name=funds"`
}

type DeleteFundRequest struct {
	FundId string `protobuf:"bytes,1,opt,name=fund_id"`
}

type DeleteFundResponse struct{}

type CreateTransactionRequest struct {
	FundId      string                 `protobuf:"bytes,1,opt,name=fund_id"`
	Type        string                 `protobuf:"bytes,2,opt,name=type"`
	Amount      string                 `protobuf:"bytes,3,opt,name=amount"`
	Date        *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=date"`
	Description string                 `protobuf:"bytes,5,opt,name=description"`
	ToFundId    string                 `protobuf:"bytes,6,opt,name=to_fund_id"`
}

type TransactionResponse struct {
	Transaction  *Transaction `protobuf:"bytes,1,opt,name=transaction"`
	AuditWarning string       `protobuf:"bytes,2,opt,name=audit_warning"`
}

type ApproveTransactionRequest struct {
	TransactionId string `protobuf:"bytes,1,opt,name=transaction_id"`
}

type RejectTransactionRequest struct {
	TransactionId string `protobuf:"bytes,1,opt,name=transaction_id"`
	Reason        string `protobuf:"bytes,2,opt,name=reason"`
}

type DeleteTransactionRequest struct {
	TransactionId string `protobuf:"bytes,1,opt,name=transaction_id"`
}

type DeleteTransactionResponse struct {
	AuditWarning string `protobuf:"bytes,1,opt,name=audit_warning"`
}

type ListTransactionsRequest struct {
	Limit  int32  `protobuf:"varint,1,opt,name=limit"`
	Offset int32  `protobuf:"varint,2,opt,name=offset"`
	FundId string `protobuf:"bytes,3,opt,name=fund_id"`
}

type ListTransactionsResponse struct {
	Transactions []*Transaction `protobuf:"bytes,1,rep,name=transactions"`
}

type CreateTransferRequest struct {
	FromFundId  string `protobuf:"bytes,1,opt,name=from_fund_id"`
	ToFundId    string `protobuf:"bytes,2,opt,name=to_fund_id"`
	Amount      string `protobuf:"bytes,3,opt,name=amount"`
	Description string `protobuf:"bytes,4,opt,name=description"`
}

type GetFundSummaryRequest struct{}

type GetFundSummaryResponse struct {
	TotalBalance        string `protobuf:"bytes,1,opt,name=total_balance"`
	ActiveFunds         int32  `protobuf:"varint,2,opt,name=active_funds"`
	PendingTransactions int32  `protobuf:"varint,3,opt,name=pending_transactions"`
}

type RecordCashierPaymentRequest struct {
	CashierName string `protobuf:"bytes,1,opt,name=cashier_name"`
	MemberId    string `protobuf:"bytes,2,opt,name=member_id"`
	Amount      string `protobuf:"bytes,3,opt,name=amount"`
	Method      string `protobuf:"bytes,4,opt,name=method"`
	Description string `protobuf:"bytes,5,opt,name=description"`
}

type RecordCashierPaymentResponse struct {
	PaymentId string                 `protobuf:"bytes,1,opt,name=payment_id"`
	CreatedAt *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=created_at"`
}

type CreateCashierTransferRequest struct {
	FromCashier string `protobuf:"bytes,1,opt,name=from_cashier"`
	ToCashier   string `protobuf:"bytes,2,opt,name=to_cashier"`
	ToFundId    string `protobuf:"bytes,3,opt,name=to_fund_id"`
	Amount      string `protobuf:"bytes,4,opt,name=amount"`
	Description string `protobuf:"bytes,5,opt,name=description"`
}

type CreateCashierTransferResponse struct {
	TransferId          string `protobuf:"bytes,1,opt,name=transfer_id"`
	LedgerTransactionId string `protobuf:"bytes,2,opt,name=ledger_transaction_id"`
	AuditWarning        string `protobuf:"bytes,3,opt,name=audit_warning"`
}

type GetCashierLedgerRequest struct{}

type GetCashierLedgerResponse struct {
	Entries []*CashierLedgerEntry `protobuf:"bytes,1,rep,name=entries"`
}

type AddInvestmentRequest struct {
	ProjectId string `protobuf:"bytes,1,opt,name=project_id"`
	MemberId  string `protobuf:"bytes,2,opt,name=member_id"`
	Amount    string `protobuf:"bytes,3,opt,name=amount"`
}

type AddInvestmentResponse struct {
	InvestmentId         string `protobuf:"bytes,1,opt,name=investment_id"`
	InvestmentPercentage string `protobuf:"bytes,2,opt,name=investment_percentage"`
}

type DeleteInvestmentRequest struct {
	InvestmentId string `protobuf:"bytes,1,opt,name=investment_id"`
}

type DeleteInvestmentResponse struct{}

type AddRevenueRequest struct {
	ProjectId   string `protobuf:"bytes,1,opt,name=project_id"`
	Amount      string `protobuf:"bytes,2,opt,name=amount"`
	Description string `protobuf:"bytes,3,opt,name=description"`
}

type AddRevenueResponse struct {
	RevenueId string `protobuf:"bytes,1,opt,name=revenue_id"`
}

type DeleteRevenueRequest struct {
	RevenueId string `protobuf:"bytes,1,opt,name=revenue_id"`
}

type DeleteRevenueResponse struct{}

type AddExpenseRequest struct {
	ProjectId   string `protobuf:"bytes,1,opt,name=project_id"`
	Amount      string `protobuf:"bytes,2,opt,name=amount"`
	Description string `protobuf:"bytes,3,opt,name=description"`
}

type AddExpenseResponse struct {
	ExpenseId string `protobuf:"bytes,1,opt,name=expense_id"`
}

type DeleteExpenseRequest struct {
	ExpenseId string `protobuf:"bytes,1,opt,name=expense_id"`
}

type DeleteExpenseResponse struct{}

type GetProjectFinancialsRequest struct {
	ProjectId string `protobuf:"bytes,1,opt,name=project_id"`
}

type GetProjectFinancialsResponse struct {
	TotalInvestment string         `protobuf:"bytes,1,opt,name=total_investment"`
	TotalRevenue    string         `protobuf:"bytes,2,opt,name=total_revenue"`
	TotalExpenses   string         `protobuf:"bytes,3,opt,name=total_expenses"`
	ProfitLoss      string         `protobuf:"bytes,4,opt,name=profit_loss"`
	Roi             string         `protobuf:"bytes,5,opt,name=roi"`
	MemberShares    []*MemberShare `protobuf:"bytes,6,rep,name=member_shares"`
}

type GetBreakEvenRequest struct {
	ProjectId string `protobuf:"bytes,1,opt,name=project_id"`
}

type GetBreakEvenResponse struct {
	TotalInvestment string `protobuf:"bytes,1,opt,name=total_investment"`
	Months          int32  `protobuf:"varint,2,opt,name=months"`
	Reached         bool   `protobuf:"varint,3,opt,name=reached"`
}

type RefreshFundAllocationsRequest struct {
	FundId string `protobuf:"bytes,1,opt,name=fund_id"`
}

type ListFundAllocationsRequest struct {
	FundId string `protobuf:"bytes,1,opt,name=fund_id"`
}

type FundAllocationsResponse struct {
	Allocations []*MemberFundAllocation `protobuf:"bytes,1,rep,name=allocations"`
}
