package clubledgerv1

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

const serviceName = "/clubledger.v1.ClubLedgerService/"

type ClubLedgerServiceClient interface {
	CreateFund(ctx context.Context, in *CreateFundRequest, opts ...grpc.CallOption) (*CreateFundResponse, error)
	ListFunds(ctx context.Context, in *ListFundsRequest, opts ...grpc.CallOption) (*ListFundsResponse, error)
	DeleteFund(ctx context.Context, in *DeleteFundRequest, opts ...grpc.CallOption) (*DeleteFundResponse, error)
	CreateTransaction(ctx context.Context, in *CreateTransactionRequest, opts ...grpc.CallOption) (*TransactionResponse, error)
	ApproveTransaction(ctx context.Context, in *ApproveTransactionRequest, opts ...grpc.CallOption) (*TransactionResponse, error)
	RejectTransaction(ctx context.Context, in *RejectTransactionRequest, opts ...grpc.CallOption) (*TransactionResponse, error)
	DeleteTransaction(ctx context.Context, in *DeleteTransactionRequest, opts ...grpc.CallOption) (*DeleteTransactionResponse, error)
	ListTransactions(ctx context.Context, in *ListTransactionsRequest, opts ...grpc.CallOption) (*ListTransactionsResponse, error)
	CreateTransfer(ctx context.Context, in *CreateTransferRequest, opts ...grpc.CallOption) (*TransactionResponse, error)
	GetFundSummary(ctx context.Context, in *GetFundSummaryRequest, opts ...grpc.CallOption) (*GetFundSummaryResponse, error)
	RecordCashierPayment(ctx context.Context, in *RecordCashierPaymentRequest, opts ...grpc.CallOption) (*RecordCashierPaymentResponse, error)
	CreateCashierTransfer(ctx context.Context, in *CreateCashierTransferRequest, opts ...grpc.CallOption) (*CreateCashierTransferResponse, error)
	GetCashierLedger(ctx context.Context, in *GetCashierLedgerRequest, opts ...grpc.CallOption) (*GetCashierLedgerResponse, error)
	AddInvestment(ctx context.Context, in *AddInvestmentRequest, opts ...grpc.CallOption) (*AddInvestmentResponse, error)
	DeleteInvestment(ctx context.Context, in *DeleteInvestmentRequest, opts ...grpc.CallOption) (*DeleteInvestmentResponse, error)
	AddRevenue(ctx context.Context, in *AddRevenueRequest, opts ...grpc.CallOption) (*AddRevenueResponse, error)
	DeleteRevenue(ctx context.Context, in *DeleteRevenueRequest, opts ...grpc.CallOption) (*DeleteRevenueResponse, error)
	AddExpense(ctx context.Context, in *AddExpenseRequest, opts ...grpc.CallOption) (*AddExpenseResponse, error)
	DeleteExpense(ctx context.Context, in *DeleteExpenseRequest, opts ...grpc.CallOption) (*DeleteExpenseResponse, error)
	GetProjectFinancials(ctx context.Context, in *GetProjectFinancialsRequest, opts ...grpc.CallOption) (*GetProjectFinancialsResponse, error)
	GetBreakEven(ctx context.Context, in *GetBreakEvenRequest, opts ...grpc.CallOption) (*GetBreakEvenResponse, error)
	RefreshFundAllocations(ctx context.Context, in *RefreshFundAllocationsRequest, opts ...grpc.CallOption) (*FundAllocationsResponse, error)
	ListFundAllocations(ctx context.Context, in *ListFundAllocationsRequest, opts ...grpc.CallOption) (*FundAllocationsResponse, error)
}

type clubLedgerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewClubLedgerServiceClient(cc grpc.ClientConnInterface) ClubLedgerServiceClient {
	return &clubLedgerServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in interface{}, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, serviceName+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clubLedgerServiceClient) CreateFund(ctx context.Context, in *CreateFundRequest, opts ...grpc.CallOption) (*CreateFundResponse, error) {
	return invoke[CreateFundResponse](ctx, c.cc, "CreateFund", in, opts)
}

func (c *clubLedgerServiceClient) ListFunds(ctx context.Context, in *ListFundsRequest, opts ...grpc.CallOption) (*ListFundsResponse, error) {
	return invoke[ListFundsResponse](ctx, c.cc, "ListFunds", in, opts)
}

func (c *clubLedgerServiceClient) DeleteFund(ctx context.Context, in *DeleteFundRequest, opts ...grpc.CallOption) (*DeleteFundResponse, error) {
	return invoke[DeleteFundResponse](ctx, c.cc, "DeleteFund", in, opts)
}

func (c *clubLedgerServiceClient) CreateTransaction(ctx context.Context, in *CreateTransactionRequest, opts ...grpc.CallOption) (*TransactionResponse, error) {
	return invoke[TransactionResponse](ctx, c.cc, "CreateTransaction", in, opts)
}

func (c *clubLedgerServiceClient) ApproveTransaction(ctx context.Context, in *ApproveTransactionRequest, opts ...grpc.CallOption) (*TransactionResponse, error) {
	return invoke[TransactionResponse](ctx, c.cc, "ApproveTransaction", in, opts)
}

func (c *clubLedgerServiceClient) RejectTransaction(ctx context.Context, in *RejectTransactionRequest, opts ...grpc.CallOption) (*TransactionResponse, error) {
	return invoke[TransactionResponse](ctx, c.cc, "RejectTransaction", in, opts)
}

func (c *clubLedgerServiceClient) DeleteTransaction(ctx context.Context, in *DeleteTransactionRequest, opts ...grpc.CallOption) (*DeleteTransactionResponse, error) {
	return invoke[DeleteTransactionResponse](ctx, c.cc, "DeleteTransaction", in, opts)
}

func (c *clubLedgerServiceClient) ListTransactions(ctx context.Context, in *ListTransactionsRequest, opts ...grpc.CallOption) (*ListTransactionsResponse, error) {
	return invoke[ListTransactionsResponse](ctx, c.cc, "ListTransactions", in, opts)
}

func (c *clubLedgerServiceClient) CreateTransfer(ctx context.Context, in *CreateTransferRequest, opts ...grpc.CallOption) (*TransactionResponse, error) {
	return invoke[TransactionResponse](ctx, c.cc, "CreateTransfer", in, opts)
}

func (c *clubLedgerServiceClient) GetFundSummary(ctx context.Context, in *GetFundSummaryRequest, opts ...grpc.CallOption) (*GetFundSummaryResponse, error) {
	return invoke[GetFundSummaryResponse](ctx, c.cc, "GetFundSummary", in, opts)
}

func (c *clubLedgerServiceClient) RecordCashierPayment(ctx context.Context, in *RecordCashierPaymentRequest, opts ...grpc.CallOption) (*RecordCashierPaymentResponse, error) {
	return invoke[RecordCashierPaymentResponse](ctx, c.cc, "RecordCashierPayment", in, opts)
}

func (c *clubLedgerServiceClient) CreateCashierTransfer(ctx context.Context, in *CreateCashierTransferRequest, opts ...grpc.CallOption) (*CreateCashierTransferResponse, error) {
	return invoke[CreateCashierTransferResponse](ctx, c.cc, "CreateCashierTransfer", in, opts)
}

func (c *clubLedgerServiceClient) GetCashierLedger(ctx context.Context, in *GetCashierLedgerRequest, opts ...grpc.CallOption) (*GetCashierLedgerResponse, error) {
	return invoke[GetCashierLedgerResponse](ctx, c.cc, "GetCashierLedger", in, opts)
}

func (c *clubLedgerServiceClient) AddInvestment(ctx context.Context, in *AddInvestmentRequest, opts ...grpc.CallOption) (*AddInvestmentResponse, error) {
	return invoke[AddInvestmentResponse](ctx, c.cc, "AddInvestment", in, opts)
}

func (c *clubLedgerServiceClient) DeleteInvestment(ctx context.Context, in *DeleteInvestmentRequest, opts ...grpc.CallOption) (*DeleteInvestmentResponse, error) {
	return invoke[DeleteInvestmentResponse](ctx, c.cc, "DeleteInvestment", in, opts)
}

func (c *clubLedgerServiceClient) AddRevenue(ctx context.Context, in *AddRevenueRequest, opts ...grpc.CallOption) (*AddRevenueResponse, error) {
	return invoke[AddRevenueResponse](ctx, c.cc, "AddRevenue", in, opts)
}

func (c *clubLedgerServiceClient) DeleteRevenue(ctx context.Context, in *DeleteRevenueRequest, opts ...grpc.CallOption) (*DeleteRevenueResponse, error) {
	return invoke[DeleteRevenueResponse](ctx, c.cc, "DeleteRevenue", in, opts)
}

func (c *clubLedgerServiceClient) AddExpense(ctx context.Context, in *AddExpenseRequest, opts ...grpc.CallOption) (*AddExpenseResponse, error) {
	return invoke[AddExpenseResponse](ctx, c.cc, "AddExpense", in, opts)
}

func (c *clubLedgerServiceClient) DeleteExpense(ctx context.Context, in *DeleteExpenseRequest, opts ...grpc.CallOption) (*DeleteExpenseResponse, error) {
	return invoke[DeleteExpenseResponse](ctx, c.cc, "DeleteExpense", in, opts)
}

func (c *clubLedgerServiceClient) GetProjectFinancials(ctx context.Context, in *GetProjectFinancialsRequest, opts ...grpc.CallOption) (*GetProjectFinancialsResponse, error) {
	return invoke[GetProjectFinancialsResponse](ctx, c.cc, "GetProjectFinancials", in, opts)
}

func (c *clubLedgerServiceClient) GetBreakEven(ctx context.Context, in *GetBreakEvenRequest, opts ...grpc.CallOption) (*GetBreakEvenResponse, error) {
	return invoke[GetBreakEvenResponse](ctx, c.cc, "GetBreakEven", in, opts)
}

func (c *clubLedgerServiceClient) RefreshFundAllocations(ctx context.Context, in *RefreshFundAllocationsRequest, opts ...grpc.CallOption) (*FundAllocationsResponse, error) {
	return invoke[FundAllocationsResponse](ctx, c.cc, "RefreshFundAllocations", in, opts)
}

func (c *clubLedgerServiceClient) ListFundAllocations(ctx context.Context, in *ListFundAllocationsRequest, opts ...grpc.CallOption) (*FundAllocationsResponse, error) {
	return invoke[FundAllocationsResponse](ctx, c.cc, "ListFundAllocations", in, opts)
}

type ClubLedgerServiceServer interface {
	CreateFund(context.Context, *CreateFundRequest) (*CreateFundResponse, error)
	ListFunds(context.Context, *ListFundsRequest) (*ListFundsResponse, error)
	DeleteFund(context.Context, *DeleteFundRequest) (*DeleteFundResponse, error)
	CreateTransaction(context.Context, *CreateTransactionRequest) (*TransactionResponse, error)
	ApproveTransaction(context.Context, *ApproveTransactionRequest) (*TransactionResponse, error)
	RejectTransaction(context.Context, *RejectTransactionRequest) (*TransactionResponse, error)
	DeleteTransaction(context.Context, *DeleteTransactionRequest) (*DeleteTransactionResponse, error)
	ListTransactions(context.Context, *ListTransactionsRequest) (*ListTransactionsResponse, error)
	CreateTransfer(context.Context, *CreateTransferRequest) (*TransactionResponse, error)
	GetFundSummary(context.Context, *GetFundSummaryRequest) (*GetFundSummaryResponse, error)
	RecordCashierPayment(context.Context, *RecordCashierPaymentRequest) (*RecordCashierPaymentResponse, error)
	CreateCashierTransfer(context.Context, *CreateCashierTransferRequest) (*CreateCashierTransferResponse, error)
	GetCashierLedger(context.Context, *GetCashierLedgerRequest) (*GetCashierLedgerResponse, error)
	AddInvestment(context.Context, *AddInvestmentRequest) (*AddInvestmentResponse, error)
	DeleteInvestment(context.Context, *DeleteInvestmentRequest) (*DeleteInvestmentResponse, error)
	AddRevenue(context.Context, *AddRevenueRequest) (*AddRevenueResponse, error)
	DeleteRevenue(context.Context, *DeleteRevenueRequest) (*DeleteRevenueResponse, error)
	AddExpense(context.Context, *AddExpenseRequest) (*AddExpenseResponse, error)
	DeleteExpense(context.Context, *DeleteExpenseRequest) (*DeleteExpenseResponse, error)
	GetProjectFinancials(context.Context, *GetProjectFinancialsRequest) (*GetProjectFinancialsResponse, error)
	GetBreakEven(context.Context, *GetBreakEvenRequest) (*GetBreakEvenResponse, error)
	RefreshFundAllocations(context.Context, *RefreshFundAllocationsRequest) (*FundAllocationsResponse, error)
	ListFundAllocations(context.Context, *ListFundAllocationsRequest) (*FundAllocationsResponse, error)
	mustEmbedUnimplementedClubLedgerServiceServer()
}

type UnimplementedClubLedgerServiceServer struct{}

func (UnimplementedClubLedgerServiceServer) CreateFund(context.Context, *CreateFundRequest) (*CreateFundResponse, error) {
	return nil, errUnimplemented("CreateFund")
}
func (UnimplementedClubLedgerServiceServer) ListFunds(context.Context, *ListFundsRequest) (*ListFundsResponse, error) {
	return nil, errUnimplemented("ListFunds")
}
func (UnimplementedClubLedgerServiceServer) DeleteFund(context.Context, *DeleteFundRequest) (*DeleteFundResponse, error) {
	return nil, errUnimplemented("DeleteFund")
}
func (UnimplementedClubLedgerServiceServer) CreateTransaction(context.Context, *CreateTransactionRequest) (*TransactionResponse, error) {
	return nil, errUnimplemented("CreateTransaction")
}
func (UnimplementedClubLedgerServiceServer) ApproveTransaction(context.Context, *ApproveTransactionRequest) (*TransactionResponse, error) {
	return nil, errUnimplemented("ApproveTransaction")
}
func (UnimplementedClubLedgerServiceServer) RejectTransaction(context.Context, *RejectTransactionRequest) (*TransactionResponse, error) {
	return nil, errUnimplemented("RejectTransaction")
}
func (UnimplementedClubLedgerServiceServer) DeleteTransaction(context.Context, *DeleteTransactionRequest) (*DeleteTransactionResponse, error) {
	return nil, errUnimplemented("DeleteTransaction")
}
func (UnimplementedClubLedgerServiceServer) ListTransactions(context.Context, *ListTransactionsRequest) (*ListTransactionsResponse, error) {
	return nil, errUnimplemented("ListTransactions")
}
func (UnimplementedClubLedgerServiceServer) CreateTransfer(context.Context, *CreateTransferRequest) (*TransactionResponse, error) {
	return nil, errUnimplemented("CreateTransfer")
}
func (UnimplementedClubLedgerServiceServer) GetFundSummary(context.Context, *GetFundSummaryRequest) (*GetFundSummaryResponse, error) {
	return nil, errUnimplemented("GetFundSummary")
}
func (UnimplementedClubLedgerServiceServer) RecordCashierPayment(context.Context, *RecordCashierPaymentRequest) (*RecordCashierPaymentResponse, error) {
	return nil, errUnimplemented("RecordCashierPayment")
}
func (UnimplementedClubLedgerServiceServer) CreateCashierTransfer(context.Context, *CreateCashierTransferRequest) (*CreateCashierTransferResponse, error) {
	return nil, errUnimplemented("CreateCashierTransfer")
}
func (UnimplementedClubLedgerServiceServer) GetCashierLedger(context.Context, *GetCashierLedgerRequest) (*GetCashierLedgerResponse, error) {
	return nil, errUnimplemented("GetCashierLedger")
}
func (UnimplementedClubLedgerServiceServer) AddInvestment(context.Context, *AddInvestmentRequest) (*AddInvestmentResponse, error) {
	return nil, errUnimplemented("AddInvestment")
}
func (UnimplementedClubLedgerServiceServer) DeleteInvestment(context.Context, *DeleteInvestmentRequest) (*DeleteInvestmentResponse, error) {
	return nil, errUnimplemented("DeleteInvestment")
}
func (UnimplementedClubLedgerServiceServer) AddRevenue(context.Context, *AddRevenueRequest) (*AddRevenueResponse, error) {
	return nil, errUnimplemented("AddRevenue")
}
func (UnimplementedClubLedgerServiceServer) DeleteRevenue(context.Context, *DeleteRevenueRequest) (*DeleteRevenueResponse, error) {
	return nil, errUnimplemented("DeleteRevenue")
}
func (UnimplementedClubLedgerServiceServer) AddExpense(context.Context, *AddExpenseRequest) (*AddExpenseResponse, error) {
	return nil, errUnimplemented("AddExpense")
}
func (UnimplementedClubLedgerServiceServer) DeleteExpense(context.Context, *DeleteExpenseRequest) (*DeleteExpenseResponse, error) {
	return nil, errUnimplemented("DeleteExpense")
}
func (UnimplementedClubLedgerServiceServer) GetProjectFinancials(context.Context, *GetProjectFinancialsRequest) (*GetProjectFinancialsResponse, error) {
	return nil, errUnimplemented("GetProjectFinancials")
}
func (UnimplementedClubLedgerServiceServer) GetBreakEven(context.Context, *GetBreakEvenRequest) (*GetBreakEvenResponse, error) {
	return nil, errUnimplemented("GetBreakEven")
}
func (UnimplementedClubLedgerServiceServer) RefreshFundAllocations(context.Context, *RefreshFundAllocationsRequest) (*FundAllocationsResponse, error) {
	return nil, errUnimplemented("RefreshFundAllocations")
}
func (UnimplementedClubLedgerServiceServer) ListFundAllocations(context.Context, *ListFundAllocationsRequest) (*FundAllocationsResponse, error) {
	return nil, errUnimplemented("ListFundAllocations")
}
func (UnimplementedClubLedgerServiceServer) mustEmbedUnimplementedClubLedgerServiceServer() {}

func errUnimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func RegisterClubLedgerServiceServer(s grpc.ServiceRegistrar, srv ClubLedgerServiceServer) {
	s.RegisterService(&ClubLedgerService_ServiceDesc, srv)
}

func handler[Req any, Resp any](method func(ClubLedgerServiceServer, context.Context, *Req) (*Resp, error), fullMethod string) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return method(srv.(ClubLedgerServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		return interceptor(ctx, in, info, func(ctx context.Context, req interface{}) (interface{}, error) {
			return method(srv.(ClubLedgerServiceServer), ctx, req.(*Req))
		})
	}
}

var ClubLedgerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "clubledger.v1.ClubLedgerService",
	HandlerType: (*ClubLedgerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateFund", Handler: handler(ClubLedgerServiceServer.CreateFund, serviceName+"CreateFund")},
		{MethodName: "ListFunds", Handler: handler(ClubLedgerServiceServer.ListFunds, serviceName+"ListFunds")},
		{MethodName: "DeleteFund", Handler: handler(ClubLedgerServiceServer.DeleteFund, serviceName+"DeleteFund")},
		{MethodName: "CreateTransaction", Handler: handler(ClubLedgerServiceServer.CreateTransaction, serviceName+"CreateTransaction")},
		{MethodName: "ApproveTransaction", Handler: handler(ClubLedgerServiceServer.ApproveTransaction, serviceName+"ApproveTransaction")},
		{MethodName: "RejectTransaction", Handler: handler(ClubLedgerServiceServer.RejectTransaction, serviceName+"RejectTransaction")},
		{MethodName: "DeleteTransaction", Handler: handler(ClubLedgerServiceServer.DeleteTransaction, serviceName+"DeleteTransaction")},
		{MethodName: "ListTransactions", Handler: handler(ClubLedgerServiceServer.ListTransactions, serviceName+"ListTransactions")},
		{MethodName: "CreateTransfer", Handler: handler(ClubLedgerServiceServer.CreateTransfer, serviceName+"CreateTransfer")},
		{MethodName: "GetFundSummary", Handler: handler(ClubLedgerServiceServer.GetFundSummary, serviceName+"GetFundSummary")},
		{MethodName: "RecordCashierPayment", Handler: handler(ClubLedgerServiceServer.RecordCashierPayment, serviceName+"RecordCashierPayment")},
		{MethodName: "CreateCashierTransfer", Handler: handler(ClubLedgerServiceServer.CreateCashierTransfer, serviceName+"CreateCashierTransfer")},
		{MethodName: "GetCashierLedger", Handler: handler(ClubLedgerServiceServer.GetCashierLedger, serviceName+"GetCashierLedger")},
		{MethodName: "AddInvestment", Handler: handler(ClubLedgerServiceServer.AddInvestment, serviceName+"AddInvestment")},
		{MethodName: "DeleteInvestment", Handler: handler(ClubLedgerServiceServer.DeleteInvestment, serviceName+"DeleteInvestment")},
		{MethodName: "AddRevenue", Handler: handler(ClubLedgerServiceServer.AddRevenue, serviceName+"AddRevenue")},
		{MethodName: "DeleteRevenue", Handler: handler(ClubLedgerServiceServer.DeleteRevenue, serviceName+"DeleteRevenue")},
		{MethodName: "AddExpense", Handler: handler(ClubLedgerServiceServer.AddExpense, serviceName+"AddExpense")},
		{MethodName: "DeleteExpense", Handler: handler(ClubLedgerServiceServer.DeleteExpense, serviceName+"DeleteExpense")},
		{MethodName: "GetProjectFinancials", Handler: handler(ClubLedgerServiceServer.GetProjectFinancials, serviceName+"GetProjectFinancials")},
		{MethodName: "GetBreakEven", Handler: handler(ClubLedgerServiceServer.GetBreakEven, serviceName+"GetBreakEven")},
		{MethodName: "RefreshFundAllocations", Handler: handler(ClubLedgerServiceServer.RefreshFundAllocations, serviceName+"RefreshFundAllocations")},
		{MethodName: "ListFundAllocations", Handler: handler(ClubLedgerServiceServer.ListFundAllocations, serviceName+"ListFundAllocations")},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "clubledger/v1/clubledger.proto",
}
