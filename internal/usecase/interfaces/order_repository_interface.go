package interfaces

import (
	"context"

	"github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order and its
// append-only transaction ledger.
//
// Every read and write is tenant-scoped; no implementation may construct a
// query that spans tenants. GetByNumber resolves the tenant-scoped sequential
// number through an index, not a scan — it is the primary external lookup.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Order, error)
	GetByNumber(ctx context.Context, tenantID string, number int64) (entities.Order, error)
	Update(ctx context.Context, o entities.Order) (entities.Order, error)
	// NextNumber allocates the next value of the tenant's monotonic order
	// sequence.
	NextNumber(ctx context.Context, tenantID string) (int64, error)
	AppendTransaction(ctx context.Context, tx entities.PaymentTransaction) (entities.PaymentTransaction, error)
	ListTransactions(ctx context.Context, orderID string) ([]entities.PaymentTransaction, error)
}
