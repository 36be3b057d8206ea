package interfaces

import (
	"context"

	"github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"
)

// IShareTokenRepository abstracts DynamoDB persistence for ShareToken.
//
// Tokens live in a global collection keyed by the opaque token string; the
// order index serves listing per order, newest first.

type IShareTokenRepository interface {
	Put(ctx context.Context, t entities.ShareToken) (entities.ShareToken, error)
	GetByToken(ctx context.Context, token string) (entities.ShareToken, error)
	Delete(ctx context.Context, token string) error
	ListByOrder(ctx context.Context, orderID string) ([]entities.ShareToken, error)
}
