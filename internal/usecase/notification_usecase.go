package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"
	"github.com/rafaeldl/praticOSopen-sub000/internal/usecase/interfaces"
)

const dispatchTimeout = 10 * time.Second

// INotificationDispatcher fans an order event out to the staff that should
// hear about it. Delivery is best-effort and strictly after the triggering
// mutation: Notify never blocks the caller and never returns an error.

type INotificationDispatcher interface {
	Notify(ctx context.Context, event entities.NotificationEvent, order entities.Order, extra map[string]string)
}

type NotificationDispatcher struct {
	auth interfaces.IAuthRepository
	sink interfaces.INotificationSink
}

var _ INotificationDispatcher = (*NotificationDispatcher)(nil)

func NewNotificationDispatcher(auth interfaces.IAuthRepository, sink interfaces.INotificationSink) *NotificationDispatcher {
	return &NotificationDispatcher{auth: auth, sink: sink}
}

// Notify spawns the fan-out and returns immediately. A fresh context detaches
// delivery from the request lifecycle: the mutation already committed, so a
// canceled request must not drop the event.
func (d *NotificationDispatcher) Notify(_ context.Context, event entities.NotificationEvent, order entities.Order, extra map[string]string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()
		if err := d.dispatch(ctx, event, order, extra); err != nil {
			log.Printf("[notify][usecase] dispatch failed event=%s order=%s err=%v", event, order.ID, err)
		}
	}()
}

func (d *NotificationDispatcher) dispatch(ctx context.Context, event entities.NotificationEvent, order entities.Order, extra map[string]string) error {
	tokens, err := d.resolveRecipients(ctx, order)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		log.Printf("[notify][usecase] no reachable recipients event=%s order=%s", event, order.ID)
		return nil
	}

	msg := buildPushMessage(event, order, extra)
	msg.To = tokens
	if err := d.sink.Send(ctx, msg); err != nil {
		return err
	}
	log.Printf("[notify][usecase] sent event=%s order=%s recipients=%d", event, order.ID, len(tokens))
	return nil
}

// resolveRecipients collects push tokens for: the assigned user, the creator,
// and every member whose role is a notifying one. Deduplicated by user id;
// members without a push token are skipped.
func (d *NotificationDispatcher) resolveRecipients(ctx context.Context, order entities.Order) ([]string, error) {
	members, err := d.auth.ListUsers(ctx, order.TenantID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(members))
	var tokens []string
	for _, m := range members {
		if seen[m.ID] {
			continue
		}
		involved := m.ID == order.AssignedTo || m.ID == order.CreatedBy
		if !involved && !m.Role.Notifying() {
			continue
		}
		seen[m.ID] = true
		if m.PushToken != "" {
			tokens = append(tokens, m.PushToken)
		}
	}
	return tokens, nil
}

func buildPushMessage(event entities.NotificationEvent, order entities.Order, extra map[string]string) entities.PushMessage {
	title := fmt.Sprintf("Order #%d", order.Number)
	body := ""
	switch event {
	case entities.EventOrderApproved:
		body = "The customer approved the quote."
	case entities.EventOrderRejected:
		body = "The customer rejected the quote."
		if reason := extra["reason"]; reason != "" {
			body = fmt.Sprintf("The customer rejected the quote: %s", reason)
		}
	case entities.EventOrderCommented:
		body = "New comment from the customer."
		if text := extra["text"]; text != "" {
			body = fmt.Sprintf("New comment: %s", excerpt(text, 120))
		}
	case entities.EventOrderStatusChanged:
		body = fmt.Sprintf("Status changed to %s.", extra["new_status"])
	case entities.EventOrderRated:
		body = fmt.Sprintf("The customer rated the service %s/5.", extra["score"])
	case entities.EventOrderPaid:
		body = fmt.Sprintf("Payment of %s received.", extra["amount"])
	default:
		body = "Order updated."
	}

	data := map[string]string{
		"event":    string(event),
		"order_id": order.ID,
		"number":   fmt.Sprintf("%d", order.Number),
	}
	for k, v := range extra {
		data[k] = v
	}
	return entities.PushMessage{Title: title, Body: body, Data: data}
}

func excerpt(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// LoggingSink is the trivial sink used in development and tests: it only
// writes the would-be delivery to the log.
type LoggingSink struct{}

var _ interfaces.INotificationSink = (*LoggingSink)(nil)

func (LoggingSink) Send(_ context.Context, msg entities.PushMessage) error {
	log.Printf("[notify][sink] title=%q body=%q recipients=%d", msg.Title, msg.Body, len(msg.To))
	return nil
}
