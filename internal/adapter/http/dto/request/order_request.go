package request

import (
	"time"

	"github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"
)

type CustomerRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (r CustomerRequest) ToSnapshot() entities.CustomerSnapshot {
	return entities.CustomerSnapshot{ID: r.ID, Name: r.Name, Phone: r.Phone, Email: r.Email}
}

type DeviceRequest struct {
	ID           string `json:"id"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
}

func (r DeviceRequest) ToSnapshot() entities.DeviceSnapshot {
	return entities.DeviceSnapshot{ID: r.ID, Brand: r.Brand, Model: r.Model, SerialNumber: r.SerialNumber}
}

type LineItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
	Quantity    int     `json:"quantity"`
}

func (r LineItemRequest) ToEntity() entities.LineItem {
	return entities.LineItem{Name: r.Name, Description: r.Description, Value: r.Value, Quantity: r.Quantity}
}

// CreateOrderRequest opens a new order; it is always born as a quote.
type CreateOrderRequest struct {
	Customer   *CustomerRequest  `json:"customer" binding:"required"`
	Device     *DeviceRequest    `json:"device"`
	Services   []LineItemRequest `json:"services"`
	Products   []LineItemRequest `json:"products"`
	Discount   float64           `json:"discount"`
	DueDate    *time.Time        `json:"due_date"`
	AssignedTo string            `json:"assigned_to"`
}

func (r CreateOrderRequest) ToEntity() entities.Order {
	o := entities.Order{
		Discount:   r.Discount,
		DueDate:    r.DueDate,
		AssignedTo: r.AssignedTo,
	}
	if r.Customer != nil {
		customer := r.Customer.ToSnapshot()
		o.Customer = &customer
	}
	if r.Device != nil {
		device := r.Device.ToSnapshot()
		o.Device = &device
	}
	for _, s := range r.Services {
		o.Services = append(o.Services, s.ToEntity())
	}
	for _, p := range r.Products {
		o.Products = append(o.Products, p.ToEntity())
	}
	return o
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AddLineItemRequest carries the item and which collection it lands in.
type AddLineItemRequest struct {
	Kind        string  `json:"kind" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
	Quantity    int     `json:"quantity"`
}

func (r AddLineItemRequest) ToEntity() entities.LineItem {
	return entities.LineItem{Name: r.Name, Description: r.Description, Value: r.Value, Quantity: r.Quantity}
}

type TransactionRequest struct {
	Amount      float64 `json:"amount" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Description string  `json:"description"`
}
