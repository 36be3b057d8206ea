package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"
	"github.com/rafaeldl/praticOSopen-sub000/internal/usecase/interfaces"
)

var (
	ErrNothingToPay                   = errors.New("order has no remaining balance")
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IPaymentUseCase lets a magic-link holder pay the order's remaining balance
// through the payment gateway. The charged amount is always the remaining
// balance computed server-side; the caller's payload only carries the payment
// method and payer details.

type IPaymentUseCase interface {
	PayByShareToken(ctx context.Context, token string, payload json.RawMessage) (entities.Order, entities.PaymentTransaction, error)
}

type PaymentUseCase struct {
	gateway    interfaces.IPaymentGateway
	shares     IShareTokenUseCase
	orders     IOrderUseCase
	comments   interfaces.ICommentRepository
	dispatcher INotificationDispatcher
	clock      interfaces.Clock
	ids        interfaces.IDGenerator
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(gateway interfaces.IPaymentGateway, shares IShareTokenUseCase, orders IOrderUseCase, comments interfaces.ICommentRepository, dispatcher INotificationDispatcher, clock interfaces.Clock, ids interfaces.IDGenerator) *PaymentUseCase {
	return &PaymentUseCase{gateway: gateway, shares: shares, orders: orders, comments: comments, dispatcher: dispatcher, clock: clock, ids: ids}
}

func (u *PaymentUseCase) PayByShareToken(ctx context.Context, token string, payload json.RawMessage) (entities.Order, entities.PaymentTransaction, error) {
	mockMode := isPaymentGatewayMockEnabled()
	log.Printf("[payment][usecase] pay start token_prefix=%s payload_len=%d mock=%v", tokenPrefix(token), len(payload), mockMode)

	t, err := u.shares.Validate(ctx, token)
	if err != nil {
		return entities.Order{}, entities.PaymentTransaction{}, err
	}

	o, err := u.orders.GetByID(ctx, t.TenantID, t.OrderID)
	if err != nil {
		return entities.Order{}, entities.PaymentTransaction{}, err
	}
	remaining := o.RemainingBalance()
	if remaining <= 0 {
		return entities.Order{}, entities.PaymentTransaction{}, ErrNothingToPay
	}

	if len(payload) == 0 || !json.Valid(payload) {
		if !mockMode {
			return entities.Order{}, entities.PaymentTransaction{}, ErrInvalidPaymentPayload
		}
		payload = json.RawMessage("{}")
	}

	// The source of truth for the amount is the order ledger, never the
	// caller. external_reference ties the provider event back to the order.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			return entities.Order{}, entities.PaymentTransaction{}, ErrInvalidPaymentPayload
		}
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = o.ID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Order #%d", o.Number)
		}
		reqMap["transaction_amount"] = remaining
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed order=%s err=%v", o.ID, err)
		return entities.Order{}, entities.PaymentTransaction{}, mapGatewayError(err)
	}
	log.Printf("[payment][usecase] gateway success order=%s provider_payment_id=%s provider_status=%s", o.ID, providerPaymentID, providerStatus)

	payer := "Customer"
	if t.Customer != nil && t.Customer.Name != "" {
		payer = t.Customer.Name
	}
	updated, tx, err := u.orders.AddTransaction(ctx, o.TenantID, o.Number, remaining,
		entities.TransactionTypePayment, fmt.Sprintf("Online payment %s", providerPaymentID), payer)
	if err != nil {
		// The provider charge went through but the ledger write did not;
		// surfaced as an error so the operator reconciles by provider id.
		log.Printf("[payment][usecase] ledger append failed after charge order=%s provider_payment_id=%s err=%v", o.ID, providerPaymentID, err)
		return entities.Order{}, entities.PaymentTransaction{}, err
	}

	u.appendPaymentComment(ctx, updated, t, remaining)
	if u.dispatcher != nil {
		u.dispatcher.Notify(ctx, entities.EventOrderPaid, updated, map[string]string{
			"amount":              fmt.Sprintf("%.2f", remaining),
			"provider_payment_id": providerPaymentID,
		})
	}
	return updated, tx, nil
}

func (u *PaymentUseCase) appendPaymentComment(ctx context.Context, o entities.Order, t entities.ShareToken, amount float64) {
	if u.comments == nil {
		return
	}
	author := "Customer"
	if t.Customer != nil && t.Customer.Name != "" {
		author = t.Customer.Name
	}
	c := entities.Comment{
		ID:         u.ids.NewID(),
		OrderID:    o.ID,
		TenantID:   o.TenantID,
		Text:       fmt.Sprintf("Payment of %.2f received", amount),
		AuthorType: entities.CommentAuthorCustomer,
		Author:     author,
		Source:     entities.CommentSourceMagicLink,
		IsInternal: false,
		ShareToken: t.Token,
		CreatedAt:  u.clock.Now(),
	}
	if _, err := u.comments.Append(ctx, c); err != nil {
		log.Printf("[payment][usecase] payment comment append failed order=%s err=%v", o.ID, err)
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
