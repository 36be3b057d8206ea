package response

import (
	"time"

	"github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"
)

type CustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type DeviceResponse struct {
	ID           string `json:"id"`
	Brand        string `json:"brand,omitempty"`
	Model        string `json:"model,omitempty"`
	SerialNumber string `json:"serial_number,omitempty"`
}

type LineItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Value       float64 `json:"value"`
	Quantity    int     `json:"quantity,omitempty"`
}

type RatingResponse struct {
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderResponse is the staff-facing (unmasked) order view.
type OrderResponse struct {
	ID               string             `json:"id"`
	Number           int64              `json:"number"`
	Status           string             `json:"status"`
	Customer         *CustomerResponse  `json:"customer,omitempty"`
	Device           *DeviceResponse    `json:"device,omitempty"`
	Services         []LineItemResponse `json:"services,omitempty"`
	Products         []LineItemResponse `json:"products,omitempty"`
	Discount         float64            `json:"discount"`
	PaidAmount       float64            `json:"paid_amount"`
	Total            float64            `json:"total"`
	RemainingBalance float64            `json:"remaining_balance"`
	DueDate          *time.Time         `json:"due_date,omitempty"`
	Rating           *RatingResponse    `json:"rating,omitempty"`
	AssignedTo       string             `json:"assigned_to,omitempty"`
	CreatedBy        string             `json:"created_by"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	resp := OrderResponse{
		ID:               o.ID,
		Number:           o.Number,
		Status:           string(o.Status),
		Services:         fromLineItems(o.Services),
		Products:         fromLineItems(o.Products),
		Discount:         o.Discount,
		PaidAmount:       o.PaidAmount,
		Total:            o.Total,
		RemainingBalance: o.RemainingBalance(),
		DueDate:          o.DueDate,
		AssignedTo:       o.AssignedTo,
		CreatedBy:        o.CreatedBy,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
	if o.Customer != nil {
		resp.Customer = &CustomerResponse{ID: o.Customer.ID, Name: o.Customer.Name, Phone: o.Customer.Phone, Email: o.Customer.Email}
	}
	if o.Device != nil {
		resp.Device = &DeviceResponse{ID: o.Device.ID, Brand: o.Device.Brand, Model: o.Device.Model, SerialNumber: o.Device.SerialNumber}
	}
	if o.Rating != nil {
		resp.Rating = &RatingResponse{Score: o.Rating.Score, Comment: o.Rating.Comment, CreatedAt: o.Rating.CreatedAt}
	}
	return resp
}

// StatusChangeResponse reports a lifecycle transition with both sides, so the
// caller never needs a follow-up read.
type StatusChangeResponse struct {
	PreviousStatus string        `json:"previous_status"`
	NewStatus      string        `json:"new_status"`
	Order          OrderResponse `json:"order"`
}

type TransactionResponse struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromTransaction(tx entities.PaymentTransaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		OrderID:     tx.OrderID,
		Amount:      tx.Amount,
		Type:        string(tx.Type),
		Description: tx.Description,
		CreatedBy:   tx.CreatedBy,
		CreatedAt:   tx.CreatedAt,
	}
}

func FromTransactions(txs []entities.PaymentTransaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, FromTransaction(tx))
	}
	return out
}

func fromLineItems(items []entities.LineItem) []LineItemResponse {
	if len(items) == 0 {
		return nil
	}
	out := make([]LineItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, LineItemResponse{ID: i.ID, Name: i.Name, Description: i.Description, Value: i.Value, Quantity: i.Quantity})
	}
	return out
}
