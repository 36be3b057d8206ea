package interfaces

import (
	"context"

	"github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"
)

// IAuthRepository abstracts the credential and membership records consumed by
// the resolver and the notification fan-out: tenants, API keys, tenant
// users, and bot channel links.

type IAuthRepository interface {
	GetTenant(ctx context.Context, id string) (entities.Tenant, error)
	GetAPIKey(ctx context.Context, key string) (entities.APIKey, error)
	GetBotLink(ctx context.Context, phone string) (entities.BotLink, error)
	GetUser(ctx context.Context, tenantID, id string) (entities.User, error)
	ListUsers(ctx context.Context, tenantID string) ([]entities.User, error)
}
