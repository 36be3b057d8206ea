package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"
	"github.com/rafaeldl/praticOSopen-sub000/internal/usecase/interfaces"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrEmptyComment    = errors.New("empty comment text")
	ErrCommentTooLong  = errors.New("comment text too long")
)

// ICommentUseCase is the order's append-only communication and audit trail.
// Entries are soft-deleted only; the isInternal partition keeps staff notes
// out of the customer-visible feed.

type ICommentUseCase interface {
	Add(ctx context.Context, c entities.Comment) (entities.Comment, error)
	List(ctx context.Context, tenantID, orderID string, includeInternal bool) ([]entities.Comment, error)
	Update(ctx context.Context, tenantID, orderID, id, text string) (entities.Comment, error)
	SoftDelete(ctx context.Context, tenantID, orderID, id string) error
}

type CommentUseCase struct {
	repo   interfaces.ICommentRepository
	orders interfaces.IOrderRepository
	clock  interfaces.Clock
	ids    interfaces.IDGenerator
}

var _ ICommentUseCase = (*CommentUseCase)(nil)

func NewCommentUseCase(repo interfaces.ICommentRepository, orders interfaces.IOrderRepository, clock interfaces.Clock, ids interfaces.IDGenerator) *CommentUseCase {
	return &CommentUseCase{repo: repo, orders: orders, clock: clock, ids: ids}
}

func (u *CommentUseCase) Add(ctx context.Context, c entities.Comment) (entities.Comment, error) {
	c.TenantID = strings.TrimSpace(c.TenantID)
	c.OrderID = strings.TrimSpace(c.OrderID)
	if c.TenantID == "" {
		return entities.Comment{}, ErrInvalidTenantID
	}
	if c.OrderID == "" {
		return entities.Comment{}, ErrInvalidOrderID
	}
	if strings.TrimSpace(c.Text) == "" {
		return entities.Comment{}, ErrEmptyComment
	}
	if utf8.RuneCountInString(c.Text) > entities.MaxCommentLength {
		return entities.Comment{}, ErrCommentTooLong
	}

	// Existence check keeps orphan comments out of the trail.
	o, err := u.orders.GetByID(ctx, c.TenantID, c.OrderID)
	if err != nil {
		return entities.Comment{}, err
	}
	if o.ID == "" {
		return entities.Comment{}, ErrOrderNotFound
	}

	c.ID = u.ids.NewID()
	c.CreatedAt = u.clock.Now()
	c.Deleted = false
	return u.repo.Append(ctx, c)
}

func (u *CommentUseCase) List(ctx context.Context, tenantID, orderID string, includeInternal bool) ([]entities.Comment, error) {
	tenantID = strings.TrimSpace(tenantID)
	orderID = strings.TrimSpace(orderID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}

	o, err := u.orders.GetByID(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}
	if o.ID == "" {
		return nil, ErrOrderNotFound
	}

	all, err := u.repo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Comment, 0, len(all))
	for _, c := range all {
		if c.Deleted {
			continue
		}
		if c.IsInternal && !includeInternal {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (u *CommentUseCase) Update(ctx context.Context, tenantID, orderID, id, text string) (entities.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return entities.Comment{}, ErrEmptyComment
	}
	if utf8.RuneCountInString(text) > entities.MaxCommentLength {
		return entities.Comment{}, ErrCommentTooLong
	}

	c, err := u.getOwned(ctx, tenantID, orderID, id)
	if err != nil {
		return entities.Comment{}, err
	}
	c.Text = text
	return u.repo.Update(ctx, c)
}

func (u *CommentUseCase) SoftDelete(ctx context.Context, tenantID, orderID, id string) error {
	c, err := u.getOwned(ctx, tenantID, orderID, id)
	if err != nil {
		return err
	}
	c.Deleted = true
	_, err = u.repo.Update(ctx, c)
	return err
}

func (u *CommentUseCase) getOwned(ctx context.Context, tenantID, orderID, id string) (entities.Comment, error) {
	tenantID = strings.TrimSpace(tenantID)
	orderID = strings.TrimSpace(orderID)
	id = strings.TrimSpace(id)
	if tenantID == "" {
		return entities.Comment{}, ErrInvalidTenantID
	}
	if orderID == "" || id == "" {
		return entities.Comment{}, ErrCommentNotFound
	}

	c, err := u.repo.GetByID(ctx, orderID, id)
	if err != nil {
		return entities.Comment{}, err
	}
	// Tenant mismatch reads as absence: no cross-tenant signal leaks.
	if c.ID == "" || c.Deleted || c.TenantID != tenantID {
		return entities.Comment{}, ErrCommentNotFound
	}
	return c, nil
}
