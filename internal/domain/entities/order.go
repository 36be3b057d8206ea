package entities

import "time"

// OrderStatus represents the lifecycle of a service order.
//
// Domain notes:
//   - Orders are born as quotes; the customer approves or rejects through a
//     share token (magic link) or staff moves them forward directly.
//   - "done" and "canceled" are terminal: no transition leaves them.

type OrderStatus string

const (
	OrderStatusQuote    OrderStatus = "quote"
	OrderStatusApproved OrderStatus = "approved"
	OrderStatusProgress OrderStatus = "progress"
	OrderStatusDone     OrderStatus = "done"
	OrderStatusCanceled OrderStatus = "canceled"
)

// orderStatusFlow is the full transition table. Keeping it as data (instead of
// ad hoc string checks in handlers) lets callers report the allowed set on a
// rejected transition without a second round trip.
var orderStatusFlow = map[OrderStatus][]OrderStatus{
	OrderStatusQuote:    {OrderStatusApproved, OrderStatusCanceled},
	OrderStatusApproved: {OrderStatusProgress, OrderStatusDone, OrderStatusCanceled},
	OrderStatusProgress: {OrderStatusDone, OrderStatusCanceled},
	OrderStatusDone:     {},
	OrderStatusCanceled: {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatusFlow[s]
	return ok
}

func (s OrderStatus) Terminal() bool {
	next, ok := orderStatusFlow[s]
	return ok && len(next) == 0
}

// AllowedNext returns the statuses reachable from s. The slice is a copy;
// callers may mutate it freely.
func (s OrderStatus) AllowedNext() []OrderStatus {
	next := orderStatusFlow[s]
	out := make([]OrderStatus, len(next))
	copy(out, next)
	return out
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderStatusFlow[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// LineItemKind distinguishes the two ledger item collections on an order.

type LineItemKind string

const (
	LineItemKindService LineItemKind = "service"
	LineItemKindProduct LineItemKind = "product"
)

func (k LineItemKind) Valid() bool {
	return k == LineItemKindService || k == LineItemKindProduct
}

// LineItem is a priced entry on the order. Services are charged by Value;
// products are charged by Value * Quantity.
type LineItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Value       float64 `json:"value"`
	Quantity    int     `json:"quantity,omitempty"`
}

// Amount is the item's contribution to the order total.
func (i LineItem) Amount(kind LineItemKind) float64 {
	if kind == LineItemKindProduct {
		qty := i.Quantity
		if qty <= 0 {
			qty = 1
		}
		return i.Value * float64(qty)
	}
	return i.Value
}

// CustomerSnapshot is the denormalized customer reference carried on the
// order and on share tokens. The customer collection itself is owned by
// another service; we only keep the copy taken at assignment time.
type CustomerSnapshot struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type DeviceSnapshot struct {
	ID           string `json:"id"`
	Brand        string `json:"brand,omitempty"`
	Model        string `json:"model,omitempty"`
	SerialNumber string `json:"serial_number,omitempty"`
}

// Rating is the single customer satisfaction score allowed per order.
type Rating struct {
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Order is the aggregate root of the service workflow.
//
// Storage model (DynamoDB):
//   - PK: tenant_id, SK: id
//   - GSI number-index: tenant_id + number (the primary external lookup)
//
// Monetary representation:
//   - Total is derived; RecomputeTotal must run after every line-item or
//     discount mutation. PaidAmount is the running sum of payment-type
//     transactions. RemainingBalance may go negative (overpayment) and is
//     surfaced as-is, never clamped.
type Order struct {
	ID         string            `json:"id"`
	TenantID   string            `json:"tenant_id"`
	Number     int64             `json:"number"`
	Status     OrderStatus       `json:"status"`
	Customer   *CustomerSnapshot `json:"customer,omitempty"`
	Device     *DeviceSnapshot   `json:"device,omitempty"`
	Services   []LineItem        `json:"services,omitempty"`
	Products   []LineItem        `json:"products,omitempty"`
	Discount   float64           `json:"discount"`
	PaidAmount float64           `json:"paid_amount"`
	Total      float64           `json:"total"`
	DueDate    *time.Time        `json:"due_date,omitempty"`
	Rating     *Rating           `json:"rating,omitempty"`
	AssignedTo string            `json:"assigned_to,omitempty"`
	CreatedBy  string            `json:"created_by"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// RecomputeTotal rebuilds the derived total from line items and discount.
// The total never goes below zero; the remaining balance can.
func (o *Order) RecomputeTotal() {
	total := 0.0
	for _, s := range o.Services {
		total += s.Amount(LineItemKindService)
	}
	for _, p := range o.Products {
		total += p.Amount(LineItemKindProduct)
	}
	total -= o.Discount
	if total < 0 {
		total = 0
	}
	o.Total = total
}

func (o Order) RemainingBalance() float64 {
	return o.Total - o.PaidAmount
}
