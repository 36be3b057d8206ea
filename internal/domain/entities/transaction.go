package entities

import "time"

// TransactionType separates money received from price reductions. Payment
// transactions feed Order.PaidAmount; discount transactions feed
// Order.Discount. Both are append-only and never deleted.

type TransactionType string

const (
	TransactionTypePayment  TransactionType = "payment"
	TransactionTypeDiscount TransactionType = "discount"
)

func (t TransactionType) Valid() bool {
	return t == TransactionTypePayment || t == TransactionTypeDiscount
}

// PaymentTransaction is one append-only ledger entry against an order.
//
// Storage model (DynamoDB):
//   - PK: order_id, SK: id
//
// Amounts are not validated against the remaining balance: overpayment is
// allowed and simply surfaces as a negative remaining balance.
type PaymentTransaction struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id"`
	TenantID    string          `json:"tenant_id"`
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description,omitempty"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
}
