package interfaces

import (
	"context"

	"github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"
)

// ICommentRepository abstracts DynamoDB persistence for the order's
// append-only comment trail. ListByOrder returns ascending creation order;
// soft-deleted entries are still returned and filtered by the use case.

type ICommentRepository interface {
	Append(ctx context.Context, c entities.Comment) (entities.Comment, error)
	GetByID(ctx context.Context, orderID, id string) (entities.Comment, error)
	ListByOrder(ctx context.Context, orderID string) ([]entities.Comment, error)
	Update(ctx context.Context, c entities.Comment) (entities.Comment, error)
}
