package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"
	"github.com/rafaeldl/praticOSopen-sub000/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrInvalidTenantID        = errors.New("invalid tenant id")
	ErrInvalidOrderID         = errors.New("invalid order id")
	ErrInvalidOrderNumber     = errors.New("invalid order number")
	ErrInvalidStatusValue     = errors.New("invalid status value")
	ErrInvalidLineItem        = errors.New("invalid line item")
	ErrInvalidLineItemKind    = errors.New("invalid line item kind")
	ErrLineItemOutOfRange     = errors.New("line item index out of range")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidCustomer        = errors.New("invalid customer")
	ErrInvalidDevice          = errors.New("invalid device")
	ErrOrderNotDone           = errors.New("order not done")
	ErrOrderAlreadyRated      = errors.New("order already rated")
	ErrInvalidRatingScore     = errors.New("invalid rating score")
	ErrRatingCommentTooLong   = errors.New("rating comment too long")
)

// InvalidTransitionError reports a rejected status change together with the
// set of statuses the order can actually move to, so the caller can react
// without a second round trip.
type InvalidTransitionError struct {
	From    entities.OrderStatus
	To      entities.OrderStatus
	Allowed []entities.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition %s -> %s (allowed: %v)", e.From, e.To, e.Allowed)
}

// IOrderUseCase is the order engine: the aggregate's lifecycle state machine
// and its financial ledger.
//
// Ledger invariants maintained here:
//   - total = sum(services) + sum(products*qty) - discount, never negative
//   - paidAmount = running sum of payment transactions
//   - remainingBalance = total - paidAmount, surfaced even when negative

type IOrderUseCase interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByNumber(ctx context.Context, tenantID string, number int64) (entities.Order, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Order, error)
	UpdateStatus(ctx context.Context, tenantID string, number int64, next entities.OrderStatus, actor string) (previous entities.OrderStatus, updated entities.Order, err error)
	AddLineItem(ctx context.Context, tenantID string, number int64, kind entities.LineItemKind, item entities.LineItem) (entities.Order, error)
	RemoveLineItem(ctx context.Context, tenantID string, number int64, kind entities.LineItemKind, index int) (entities.Order, error)
	AddTransaction(ctx context.Context, tenantID string, number int64, amount float64, txType entities.TransactionType, description, createdBy string) (entities.Order, entities.PaymentTransaction, error)
	ListTransactions(ctx context.Context, tenantID string, number int64) ([]entities.PaymentTransaction, error)
	UpdateCustomer(ctx context.Context, tenantID string, number int64, customer entities.CustomerSnapshot) (entities.Order, error)
	UpdateDevice(ctx context.Context, tenantID string, number int64, device entities.DeviceSnapshot) (entities.Order, error)
	Rate(ctx context.Context, tenantID, orderID string, score int, comment string) (entities.Order, error)
}

type OrderUseCase struct {
	repo       interfaces.IOrderRepository
	comments   interfaces.ICommentRepository
	dispatcher INotificationDispatcher
	clock      interfaces.Clock
	ids        interfaces.IDGenerator
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, comments interfaces.ICommentRepository, dispatcher INotificationDispatcher, clock interfaces.Clock, ids interfaces.IDGenerator) *OrderUseCase {
	return &OrderUseCase{repo: repo, comments: comments, dispatcher: dispatcher, clock: clock, ids: ids}
}

func (u *OrderUseCase) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	o.TenantID = strings.TrimSpace(o.TenantID)
	if o.TenantID == "" {
		return entities.Order{}, ErrInvalidTenantID
	}
	if o.Customer != nil && strings.TrimSpace(o.Customer.Name) == "" {
		return entities.Order{}, ErrInvalidCustomer
	}

	number, err := u.repo.NextNumber(ctx, o.TenantID)
	if err != nil {
		return entities.Order{}, err
	}

	now := u.clock.Now()
	o.ID = u.ids.NewID()
	o.Number = number
	o.Status = entities.OrderStatusQuote
	o.PaidAmount = 0
	o.Rating = nil
	o.CreatedAt = now
	o.UpdatedAt = now
	o.RecomputeTotal()

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] created tenant=%s number=%d id=%s total=%.2f", created.TenantID, created.Number, created.ID, created.Total)
	return created, nil
}

func (u *OrderUseCase) GetByNumber(ctx context.Context, tenantID string, number int64) (entities.Order, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.Order{}, ErrInvalidTenantID
	}
	if number <= 0 {
		return entities.Order{}, ErrInvalidOrderNumber
	}

	o, err := u.repo.GetByNumber(ctx, tenantID, number)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, tenantID, id string) (entities.Order, error) {
	tenantID = strings.TrimSpace(tenantID)
	id = strings.TrimSpace(id)
	if tenantID == "" {
		return entities.Order{}, ErrInvalidTenantID
	}
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) UpdateStatus(ctx context.Context, tenantID string, number int64, next entities.OrderStatus, actor string) (entities.OrderStatus, entities.Order, error) {
	if !next.Valid() {
		return "", entities.Order{}, ErrInvalidStatusValue
	}

	o, err := u.GetByNumber(ctx, tenantID, number)
	if err != nil {
		return "", entities.Order{}, err
	}
	previous := o.Status
	if !previous.CanTransitionTo(next) {
		return "", entities.Order{}, &InvalidTransitionError{From: previous, To: next, Allowed: previous.AllowedNext()}
	}

	o.Status = next
	o.UpdatedAt = u.clock.Now()
	updated, err := u.repo.Update(ctx, o)
	if err != nil {
		return "", entities.Order{}, err
	}
	log.Printf("[order][usecase] status changed tenant=%s number=%d %s -> %s", tenantID, number, previous, next)

	u.appendAudit(ctx, updated, actor, fmt.Sprintf("Status changed from %s to %s", previous, next))
	if u.dispatcher != nil {
		u.dispatcher.Notify(ctx, entities.EventOrderStatusChanged, updated, map[string]string{
			"previous_status": string(previous),
			"new_status":      string(next),
		})
	}
	return previous, updated, nil
}

func (u *OrderUseCase) AddLineItem(ctx context.Context, tenantID string, number int64, kind entities.LineItemKind, item entities.LineItem) (entities.Order, error) {
	if !kind.Valid() {
		return entities.Order{}, ErrInvalidLineItemKind
	}
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" || item.Value < 0 {
		return entities.Order{}, ErrInvalidLineItem
	}

	o, err := u.GetByNumber(ctx, tenantID, number)
	if err != nil {
		return entities.Order{}, err
	}

	item.ID = u.ids.NewID()
	if kind == entities.LineItemKindService {
		o.Services = append(o.Services, item)
	} else {
		if item.Quantity <= 0 {
			item.Quantity = 1
		}
		o.Products = append(o.Products, item)
	}
	o.RecomputeTotal()
	o.UpdatedAt = u.clock.Now()
	return u.repo.Update(ctx, o)
}

func (u *OrderUseCase) RemoveLineItem(ctx context.Context, tenantID string, number int64, kind entities.LineItemKind, index int) (entities.Order, error) {
	if !kind.Valid() {
		return entities.Order{}, ErrInvalidLineItemKind
	}

	o, err := u.GetByNumber(ctx, tenantID, number)
	if err != nil {
		return entities.Order{}, err
	}

	if kind == entities.LineItemKindService {
		if index < 0 || index >= len(o.Services) {
			return entities.Order{}, ErrLineItemOutOfRange
		}
		o.Services = append(o.Services[:index], o.Services[index+1:]...)
	} else {
		if index < 0 || index >= len(o.Products) {
			return entities.Order{}, ErrLineItemOutOfRange
		}
		o.Products = append(o.Products[:index], o.Products[index+1:]...)
	}
	o.RecomputeTotal()
	o.UpdatedAt = u.clock.Now()
	return u.repo.Update(ctx, o)
}

// AddTransaction appends an entry to the append-only ledger and folds it into
// the order's running sums. Amounts are not checked against the remaining
// balance: overpayment is allowed and shows up as a negative balance.
func (u *OrderUseCase) AddTransaction(ctx context.Context, tenantID string, number int64, amount float64, txType entities.TransactionType, description, createdBy string) (entities.Order, entities.PaymentTransaction, error) {
	if amount <= 0 {
		return entities.Order{}, entities.PaymentTransaction{}, ErrInvalidAmount
	}
	if !txType.Valid() {
		return entities.Order{}, entities.PaymentTransaction{}, ErrInvalidTransactionType
	}

	o, err := u.GetByNumber(ctx, tenantID, number)
	if err != nil {
		return entities.Order{}, entities.PaymentTransaction{}, err
	}

	now := u.clock.Now()
	tx := entities.PaymentTransaction{
		ID:          u.ids.NewID(),
		OrderID:     o.ID,
		TenantID:    o.TenantID,
		Amount:      amount,
		Type:        txType,
		Description: strings.TrimSpace(description),
		CreatedBy:   createdBy,
		CreatedAt:   now,
	}
	if _, err := u.repo.AppendTransaction(ctx, tx); err != nil {
		return entities.Order{}, entities.PaymentTransaction{}, err
	}

	if txType == entities.TransactionTypePayment {
		o.PaidAmount += amount
	} else {
		o.Discount += amount
	}
	o.RecomputeTotal()
	o.UpdatedAt = now

	updated, err := u.repo.Update(ctx, o)
	if err != nil {
		return entities.Order{}, entities.PaymentTransaction{}, err
	}
	log.Printf("[order][usecase] transaction tenant=%s number=%d type=%s amount=%.2f remaining=%.2f",
		tenantID, number, txType, amount, updated.RemainingBalance())
	return updated, tx, nil
}

func (u *OrderUseCase) ListTransactions(ctx context.Context, tenantID string, number int64) ([]entities.PaymentTransaction, error) {
	o, err := u.GetByNumber(ctx, tenantID, number)
	if err != nil {
		return nil, err
	}
	return u.repo.ListTransactions(ctx, o.ID)
}

func (u *OrderUseCase) UpdateCustomer(ctx context.Context, tenantID string, number int64, customer entities.CustomerSnapshot) (entities.Order, error) {
	if strings.TrimSpace(customer.Name) == "" {
		return entities.Order{}, ErrInvalidCustomer
	}
	o, err := u.GetByNumber(ctx, tenantID, number)
	if err != nil {
		return entities.Order{}, err
	}
	o.Customer = &customer
	o.UpdatedAt = u.clock.Now()
	return u.repo.Update(ctx, o)
}

func (u *OrderUseCase) UpdateDevice(ctx context.Context, tenantID string, number int64, device entities.DeviceSnapshot) (entities.Order, error) {
	if strings.TrimSpace(device.ID) == "" && strings.TrimSpace(device.Model) == "" {
		return entities.Order{}, ErrInvalidDevice
	}
	o, err := u.GetByNumber(ctx, tenantID, number)
	if err != nil {
		return entities.Order{}, err
	}
	o.Device = &device
	o.UpdatedAt = u.clock.Now()
	return u.repo.Update(ctx, o)
}

// Rate records the single customer satisfaction score. Only done orders can
// be rated and only once.
func (u *OrderUseCase) Rate(ctx context.Context, tenantID, orderID string, score int, comment string) (entities.Order, error) {
	if score < 1 || score > 5 {
		return entities.Order{}, ErrInvalidRatingScore
	}
	if len(comment) > entities.MaxCommentLength {
		return entities.Order{}, ErrRatingCommentTooLong
	}

	o, err := u.GetByID(ctx, tenantID, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.Status != entities.OrderStatusDone {
		return entities.Order{}, ErrOrderNotDone
	}
	if o.Rating != nil {
		return entities.Order{}, ErrOrderAlreadyRated
	}

	now := u.clock.Now()
	o.Rating = &entities.Rating{Score: score, Comment: strings.TrimSpace(comment), CreatedAt: now}
	o.UpdatedAt = now
	updated, err := u.repo.Update(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] rated tenant=%s number=%d score=%d", tenantID, updated.Number, score)

	if u.dispatcher != nil {
		u.dispatcher.Notify(ctx, entities.EventOrderRated, updated, map[string]string{
			"score": fmt.Sprintf("%d", score),
		})
	}
	return updated, nil
}

// appendAudit writes an internal trail entry. The mutation has already
// succeeded at this point, so a failed append is logged and swallowed.
func (u *OrderUseCase) appendAudit(ctx context.Context, o entities.Order, actor, text string) {
	if u.comments == nil {
		return
	}
	c := entities.Comment{
		ID:         u.ids.NewID(),
		OrderID:    o.ID,
		TenantID:   o.TenantID,
		Text:       text,
		AuthorType: entities.CommentAuthorStaff,
		Author:     actor,
		Source:     entities.CommentSourceInternal,
		IsInternal: true,
		CreatedAt:  u.clock.Now(),
	}
	if _, err := u.comments.Append(ctx, c); err != nil {
		log.Printf("[order][usecase] audit comment append failed order=%s err=%v", o.ID, err)
	}
}
