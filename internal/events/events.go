package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// Topics published by the ledger.
const (
	TopicTransactionApproved = "transaction_approved"
	TopicTransactionRejected = "transaction_rejected"
)

// Publisher delivers ledger lifecycle events to interested consumers.
// Delivery is best-effort: a publish failure never reverts the ledger
// operation that produced the event.
type Publisher interface {
	Publish(topic string, event any) error
}

// TransactionApproved is emitted after a transaction's balance effect
// has been applied.
type TransactionApproved struct {
	TransactionID string          `json:"transaction_id"`
	FundID        string          `json:"fund_id"`
	ToFundID      string          `json:"to_fund_id,omitempty"`
	Type          string          `json:"transaction_type"`
	Amount        decimal.Decimal `json:"amount"`
	ApprovedBy    string          `json:"approved_by"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

// TransactionRejected is emitted after a transaction was rejected.
type TransactionRejected struct {
	TransactionID string    `json:"transaction_id"`
	FundID        string    `json:"fund_id"`
	Reason        string    `json:"reason"`
	RejectedBy    string    `json:"rejected_by"`
	OccurredAt    time.Time `json:"occurred_at"`
}
