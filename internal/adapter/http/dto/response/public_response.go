package response

import (
	"time"

	"github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"
)

// CompanyResponse identifies the company behind the shared order. It is
// shown as-is: the issuer's own identity is not customer data and is never
// masked.
type CompanyResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// PublicOrderResponse is the customer-facing order view reached through a
// magic link. Customer and device fields run through the redaction contract;
// internal comments never appear here.
type PublicOrderResponse struct {
	Number           int64              `json:"number"`
	Status           string             `json:"status"`
	Company          *CompanyResponse   `json:"company,omitempty"`
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
	Comments         []CommentResponse  `json:"comments"`
	Permissions      []string           `json:"permissions"`
	ExpiresAt        time.Time          `json:"expires_at"`
}

func FromPublicOrder(o entities.Order, t entities.ShareToken, comments []entities.Comment) PublicOrderResponse {
	resp := PublicOrderResponse{
		Number:           o.Number,
		Status:           string(o.Status),
		Services:         fromLineItems(o.Services),
		Products:         fromLineItems(o.Products),
		Discount:         o.Discount,
		PaidAmount:       o.PaidAmount,
		Total:            o.Total,
		RemainingBalance: o.RemainingBalance(),
		DueDate:          o.DueDate,
		Comments:         FromComments(comments),
		ExpiresAt:        t.ExpiresAt,
	}
	if t.Company != nil {
		resp.Company = &CompanyResponse{ID: t.Company.ID, Name: t.Company.Name, Phone: t.Company.Phone}
	}
	if masked := entities.RedactedCustomer(o.Customer); masked != nil {
		resp.Customer = &CustomerResponse{ID: masked.ID, Name: masked.Name, Phone: masked.Phone}
	}
	if masked := entities.RedactedDevice(o.Device); masked != nil {
		resp.Device = &DeviceResponse{ID: masked.ID, Brand: masked.Brand, Model: masked.Model, SerialNumber: masked.SerialNumber}
	}
	if o.Rating != nil {
		resp.Rating = &RatingResponse{Score: o.Rating.Score, Comment: o.Rating.Comment, CreatedAt: o.Rating.CreatedAt}
	}
	resp.Permissions = make([]string, 0, len(t.Permissions))
	for _, p := range t.Permissions {
		resp.Permissions = append(resp.Permissions, string(p))
	}
	return resp
}

// PublicStatusResponse is the outcome of an externally-triggered quote
// decision. It deliberately carries no order body: the full public view stays
// behind the view permission.
type PublicStatusResponse struct {
	NewStatus string `json:"new_status"`
}

// PublicPaymentResponse reports the settled charge back to the magic-link
// holder.
type PublicPaymentResponse struct {
	Transaction      TransactionResponse `json:"transaction"`
	PaidAmount       float64             `json:"paid_amount"`
	Total            float64             `json:"total"`
	RemainingBalance float64             `json:"remaining_balance"`
}

func FromPublicPayment(o entities.Order, tx entities.PaymentTransaction) PublicPaymentResponse {
	return PublicPaymentResponse{
		Transaction:      FromTransaction(tx),
		PaidAmount:       o.PaidAmount,
		Total:            o.Total,
		RemainingBalance: o.RemainingBalance(),
	}
}
