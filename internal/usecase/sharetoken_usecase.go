package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"
	"github.com/rafaeldl/praticOSopen-sub000/internal/usecase/interfaces"
)

const DefaultShareTTLDays = 7

var (
	ErrShareTokenNotFound    = errors.New("share token not found")
	ErrShareTokenExpired     = errors.New("share token expired")
	ErrShareTokenSettled     = errors.New("share token already settled")
	ErrSharePermissionDenied = errors.New("share token lacks permission")
	ErrOrderNotQuote         = errors.New("order is not a quote")
	ErrOrderWithoutCustomer  = errors.New("order has no customer")
)

// IShareTokenUseCase issues, validates and retires the magic links that let
// an external customer act on one order without an account.
//
// Validate deliberately does not distinguish "unknown" from "expired" for
// callers that face the customer; the two sentinels exist for logs only and
// both must collapse to one generic invalid-token response.

type IShareTokenUseCase interface {
	Generate(ctx context.Context, tenantID string, orderNumber int64, permissions []entities.SharePermission, ttlDays int, issuedBy string) (entities.ShareToken, error)
	Validate(ctx context.Context, token string) (entities.ShareToken, error)
	RecordView(ctx context.Context, token string)
	Approve(ctx context.Context, token string) (entities.Order, entities.ShareToken, error)
	Reject(ctx context.Context, token, reason string) (entities.Order, entities.ShareToken, error)
	Comment(ctx context.Context, token, text string) (entities.Comment, error)
	Revoke(ctx context.Context, tenantID string, orderNumber int64, token string) error
	ListForOrder(ctx context.Context, tenantID string, orderNumber int64) ([]entities.ShareToken, error)
}

type ShareTokenUseCase struct {
	repo       interfaces.IShareTokenRepository
	orders     interfaces.IOrderRepository
	comments   interfaces.ICommentRepository
	auth       interfaces.IAuthRepository
	dispatcher INotificationDispatcher
	clock      interfaces.Clock
	ids        interfaces.IDGenerator
}

var _ IShareTokenUseCase = (*ShareTokenUseCase)(nil)

func NewShareTokenUseCase(repo interfaces.IShareTokenRepository, orders interfaces.IOrderRepository, comments interfaces.ICommentRepository, auth interfaces.IAuthRepository, dispatcher INotificationDispatcher, clock interfaces.Clock, ids interfaces.IDGenerator) *ShareTokenUseCase {
	return &ShareTokenUseCase{repo: repo, orders: orders, comments: comments, auth: auth, dispatcher: dispatcher, clock: clock, ids: ids}
}

func (u *ShareTokenUseCase) Generate(ctx context.Context, tenantID string, orderNumber int64, permissions []entities.SharePermission, ttlDays int, issuedBy string) (entities.ShareToken, error) {
	o, err := u.orderByNumber(ctx, tenantID, orderNumber)
	if err != nil {
		return entities.ShareToken{}, err
	}
	if o.Customer == nil {
		return entities.ShareToken{}, ErrOrderWithoutCustomer
	}

	granted := make([]entities.SharePermission, 0, len(permissions))
	for _, p := range permissions {
		if p.Valid() {
			granted = append(granted, p)
		}
	}
	if len(granted) == 0 {
		granted = entities.DefaultSharePermissions()
	}
	if ttlDays <= 0 {
		ttlDays = DefaultShareTTLDays
	}

	now := u.clock.Now()
	customer := *o.Customer
	t := entities.ShareToken{
		Token:       u.ids.NewToken(),
		OrderID:     o.ID,
		TenantID:    o.TenantID,
		Customer:    &customer,
		Company:     u.companySnapshot(ctx, o.TenantID),
		Permissions: granted,
		CreatedBy:   issuedBy,
		CreatedAt:   now,
		ExpiresAt:   now.Add(time.Duration(ttlDays) * 24 * time.Hour),
		ViewCount:   0,
	}
	created, err := u.repo.Put(ctx, t)
	if err != nil {
		return entities.ShareToken{}, err
	}
	log.Printf("[share][usecase] generated tenant=%s order=%s perms=%v ttl_days=%d", tenantID, o.ID, granted, ttlDays)
	return created, nil
}

// Validate returns the token iff it exists and is not expired by the
// authoritative clock. It does not bump the view counter; see RecordView.
func (u *ShareTokenUseCase) Validate(ctx context.Context, token string) (entities.ShareToken, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.ShareToken{}, ErrShareTokenNotFound
	}

	t, err := u.repo.GetByToken(ctx, token)
	if err != nil {
		return entities.ShareToken{}, err
	}
	if t.Token == "" {
		return entities.ShareToken{}, ErrShareTokenNotFound
	}
	if t.Expired(u.clock.Now()) {
		return entities.ShareToken{}, ErrShareTokenExpired
	}
	return t, nil
}

// RecordView bumps viewCount/lastViewedAt in the background. The update is a
// read-then-write, not a compare-and-swap: concurrent views of the same token
// can under-count. Failures are logged and never reach the caller.
func (u *ShareTokenUseCase) RecordView(_ context.Context, token string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()

		t, err := u.repo.GetByToken(ctx, token)
		if err != nil || t.Token == "" {
			log.Printf("[share][usecase] record view load failed token_prefix=%s err=%v", tokenPrefix(token), err)
			return
		}
		now := u.clock.Now()
		t.ViewCount++
		t.LastViewedAt = &now
		if _, err := u.repo.Put(ctx, t); err != nil {
			log.Printf("[share][usecase] record view write failed token_prefix=%s err=%v", tokenPrefix(token), err)
		}
	}()
}

func (u *ShareTokenUseCase) Approve(ctx context.Context, token string) (entities.Order, entities.ShareToken, error) {
	return u.settle(ctx, token, true, "")
}

func (u *ShareTokenUseCase) Reject(ctx context.Context, token, reason string) (entities.Order, entities.ShareToken, error) {
	return u.settle(ctx, token, false, strings.TrimSpace(reason))
}

// settle drives the externally-triggered quote decision: order transition
// first, then the token outcome, then the audit comment, then the fan-out.
func (u *ShareTokenUseCase) settle(ctx context.Context, token string, approve bool, reason string) (entities.Order, entities.ShareToken, error) {
	t, err := u.Validate(ctx, token)
	if err != nil {
		return entities.Order{}, entities.ShareToken{}, err
	}
	if !t.HasPermission(entities.SharePermissionApprove) {
		return entities.Order{}, entities.ShareToken{}, ErrSharePermissionDenied
	}
	if t.Settled() {
		return entities.Order{}, entities.ShareToken{}, ErrShareTokenSettled
	}

	o, err := u.orders.GetByID(ctx, t.TenantID, t.OrderID)
	if err != nil {
		return entities.Order{}, entities.ShareToken{}, err
	}
	if o.ID == "" {
		return entities.Order{}, entities.ShareToken{}, ErrOrderNotFound
	}
	if o.Status != entities.OrderStatusQuote {
		return entities.Order{}, entities.ShareToken{}, ErrOrderNotQuote
	}

	now := u.clock.Now()
	event := entities.EventOrderApproved
	text := "Quote approved by the customer"
	if approve {
		o.Status = entities.OrderStatusApproved
	} else {
		o.Status = entities.OrderStatusCanceled
		event = entities.EventOrderRejected
		text = "Quote rejected by the customer"
		if reason != "" {
			text += ": " + reason
		}
	}
	o.UpdatedAt = now
	updated, err := u.orders.Update(ctx, o)
	if err != nil {
		return entities.Order{}, entities.ShareToken{}, err
	}

	if approve {
		t.ApprovedAt = &now
	} else {
		t.RejectedAt = &now
		t.RejectionReason = reason
	}
	settled, err := u.repo.Put(ctx, t)
	if err != nil {
		// The order already moved; the token outcome is best recovered by a
		// retry of the same call, which will fail settled-checks loudly.
		log.Printf("[share][usecase] token settle write failed token_prefix=%s err=%v", tokenPrefix(token), err)
		return entities.Order{}, entities.ShareToken{}, err
	}
	log.Printf("[share][usecase] settled tenant=%s order=%s approve=%v", t.TenantID, t.OrderID, approve)

	u.appendCustomerComment(ctx, updated, t, text)
	if u.dispatcher != nil {
		extra := map[string]string{"new_status": string(updated.Status)}
		if reason != "" {
			extra["reason"] = reason
		}
		u.dispatcher.Notify(ctx, event, updated, extra)
	}
	return updated, settled, nil
}

// Comment appends a customer-visible entry through a magic link holding the
// comment permission, then notifies the staff.
func (u *ShareTokenUseCase) Comment(ctx context.Context, token, text string) (entities.Comment, error) {
	t, err := u.Validate(ctx, token)
	if err != nil {
		return entities.Comment{}, err
	}
	if !t.HasPermission(entities.SharePermissionComment) {
		return entities.Comment{}, ErrSharePermissionDenied
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.Comment{}, ErrEmptyComment
	}
	if utf8.RuneCountInString(text) > entities.MaxCommentLength {
		return entities.Comment{}, ErrCommentTooLong
	}

	o, err := u.orders.GetByID(ctx, t.TenantID, t.OrderID)
	if err != nil {
		return entities.Comment{}, err
	}
	if o.ID == "" {
		return entities.Comment{}, ErrOrderNotFound
	}

	author := "Customer"
	if t.Customer != nil && t.Customer.Name != "" {
		author = t.Customer.Name
	}
	c := entities.Comment{
		ID:         u.ids.NewID(),
		OrderID:    o.ID,
		TenantID:   o.TenantID,
		Text:       text,
		AuthorType: entities.CommentAuthorCustomer,
		Author:     author,
		Source:     entities.CommentSourceMagicLink,
		IsInternal: false,
		ShareToken: t.Token,
		CreatedAt:  u.clock.Now(),
	}
	created, err := u.comments.Append(ctx, c)
	if err != nil {
		return entities.Comment{}, err
	}
	if u.dispatcher != nil {
		u.dispatcher.Notify(ctx, entities.EventOrderCommented, o, map[string]string{"text": created.Text})
	}
	return created, nil
}

func (u *ShareTokenUseCase) Revoke(ctx context.Context, tenantID string, orderNumber int64, token string) error {
	o, err := u.orderByNumber(ctx, tenantID, orderNumber)
	if err != nil {
		return err
	}

	t, err := u.repo.GetByToken(ctx, strings.TrimSpace(token))
	if err != nil {
		return err
	}
	// Wrong tenant or wrong order reads as absence.
	if t.Token == "" || t.TenantID != tenantID || t.OrderID != o.ID {
		return ErrShareTokenNotFound
	}
	if err := u.repo.Delete(ctx, t.Token); err != nil {
		return err
	}
	log.Printf("[share][usecase] revoked tenant=%s order=%s token_prefix=%s", tenantID, o.ID, tokenPrefix(t.Token))
	return nil
}

// ListForOrder returns every token for the order, newest first, including
// expired ones; callers filter "active" by expiresAt on their side.
func (u *ShareTokenUseCase) ListForOrder(ctx context.Context, tenantID string, orderNumber int64) ([]entities.ShareToken, error) {
	o, err := u.orderByNumber(ctx, tenantID, orderNumber)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByOrder(ctx, o.ID)
}

func (u *ShareTokenUseCase) orderByNumber(ctx context.Context, tenantID string, number int64) (entities.Order, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.Order{}, ErrInvalidTenantID
	}
	if number <= 0 {
		return entities.Order{}, ErrInvalidOrderNumber
	}
	o, err := u.orders.GetByNumber(ctx, tenantID, number)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// companySnapshot freezes the issuing company's display identity onto the
// token. A missing or unreadable tenant record never blocks issuance; the
// public page just shows no company block.
func (u *ShareTokenUseCase) companySnapshot(ctx context.Context, tenantID string) *entities.CompanySnapshot {
	if u.auth == nil {
		return nil
	}
	tenant, err := u.auth.GetTenant(ctx, tenantID)
	if err != nil {
		log.Printf("[share][usecase] tenant lookup failed tenant=%s err=%v", tenantID, err)
		return nil
	}
	return tenant.Snapshot()
}

func (u *ShareTokenUseCase) appendCustomerComment(ctx context.Context, o entities.Order, t entities.ShareToken, text string) {
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
		Text:       text,
		AuthorType: entities.CommentAuthorCustomer,
		Author:     author,
		Source:     entities.CommentSourceMagicLink,
		IsInternal: false,
		ShareToken: t.Token,
		CreatedAt:  u.clock.Now(),
	}
	if _, err := u.comments.Append(ctx, c); err != nil {
		log.Printf("[share][usecase] customer comment append failed order=%s err=%v", o.ID, err)
	}
}

// tokenPrefix keeps full token material out of the logs.
func tokenPrefix(token string) string {
	if len(token) <= 8 {
		return token
	}
	return token[:8]
}
