package entities

// NotificationEvent names the order events that fan out to staff.

type NotificationEvent string

const (
	EventOrderApproved      NotificationEvent = "order_approved"
	EventOrderRejected      NotificationEvent = "order_rejected"
	EventOrderCommented     NotificationEvent = "order_commented"
	EventOrderStatusChanged NotificationEvent = "order_status_changed"
	EventOrderRated         NotificationEvent = "order_rated"
	EventOrderPaid          NotificationEvent = "order_paid"
)

// PushMessage is the provider-agnostic payload handed to a notification sink.
// Delivery is best-effort: a failed send is logged and never propagated back
// to the mutation that triggered it.
type PushMessage struct {
	To    []string          `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}
