package repository

import (
	"context"

	"github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"
	"github.com/rafaeldl/praticOSopen-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTenantsTableName  = "tenants"
	defaultAPIKeysTableName  = "api_keys"
	defaultUsersTableName    = "users"
	defaultBotLinksTableName = "bot_links"
)

type tenantItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Phone     string `dynamodbav:"phone,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

type apiKeyItem struct {
	Key       string `dynamodbav:"key"`
	Secret    string `dynamodbav:"secret"`
	TenantID  string `dynamodbav:"tenant_id"`
	Label     string `dynamodbav:"label,omitempty"`
	ExpiresAt string `dynamodbav:"expires_at,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

type userItem struct {
	TenantID  string `dynamodbav:"tenant_id"`
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Role      string `dynamodbav:"role"`
	PushToken string `dynamodbav:"push_token,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

type botLinkItem struct {
	Phone     string `dynamodbav:"phone"`
	TenantID  string `dynamodbav:"tenant_id"`
	UserID    string `dynamodbav:"user_id"`
	CreatedAt string `dynamodbav:"created_at"`
}

// AuthDynamoRepository reads the credential and membership records: tenants,
// API keys, tenant users and bot channel links.
//
// Table requirements:
//   - tenants: PK id (string)
//   - api_keys: PK key (string)
//   - users: PK tenant_id (string), SK id (string)
//   - bot_links: PK phone (string)

type AuthDynamoRepository struct {
	ddb               *dynamodb.Client
	tenantsTableName  string
	apiKeysTableName  string
	usersTableName    string
	botLinksTableName string
}

var _ interfaces.IAuthRepository = (*AuthDynamoRepository)(nil)

func NewAuthDynamoRepository(ddb *dynamodb.Client) *AuthDynamoRepository {
	return &AuthDynamoRepository{
		ddb:               ddb,
		tenantsTableName:  getenvDefault("TENANTS_TABLE", defaultTenantsTableName),
		apiKeysTableName:  getenvDefault("API_KEYS_TABLE", defaultAPIKeysTableName),
		usersTableName:    getenvDefault("USERS_TABLE", defaultUsersTableName),
		botLinksTableName: getenvDefault("BOT_LINKS_TABLE", defaultBotLinksTableName),
	}
}

func (r *AuthDynamoRepository) GetTenant(ctx context.Context, id string) (entities.Tenant, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tenantsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Tenant{}, err
	}
	if len(out.Item) == 0 {
		return entities.Tenant{}, nil
	}

	var it tenantItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Tenant{}, err
	}
	return entities.Tenant{
		ID:        it.ID,
		Name:      it.Name,
		Phone:     it.Phone,
		CreatedAt: parseTime(it.CreatedAt),
	}, nil
}

func (r *AuthDynamoRepository) GetAPIKey(ctx context.Context, key string) (entities.APIKey, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.apiKeysTableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.APIKey{}, err
	}
	if len(out.Item) == 0 {
		return entities.APIKey{}, nil
	}

	var it apiKeyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.APIKey{}, err
	}
	return entities.APIKey{
		Key:       it.Key,
		Secret:    it.Secret,
		TenantID:  it.TenantID,
		Label:     it.Label,
		ExpiresAt: parseTimePtr(it.ExpiresAt),
		CreatedAt: parseTime(it.CreatedAt),
	}, nil
}

func (r *AuthDynamoRepository) GetBotLink(ctx context.Context, phone string) (entities.BotLink, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.botLinksTableName),
		Key: map[string]types.AttributeValue{
			"phone": &types.AttributeValueMemberS{Value: phone},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BotLink{}, err
	}
	if len(out.Item) == 0 {
		return entities.BotLink{}, nil
	}

	var it botLinkItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BotLink{}, err
	}
	return entities.BotLink{
		Phone:     it.Phone,
		TenantID:  it.TenantID,
		UserID:    it.UserID,
		CreatedAt: parseTime(it.CreatedAt),
	}, nil
}

func (r *AuthDynamoRepository) GetUser(ctx context.Context, tenantID, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.usersTableName),
		Key: map[string]types.AttributeValue{
			"tenant_id": &types.AttributeValueMemberS{Value: tenantID},
			"id":        &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *AuthDynamoRepository) ListUsers(ctx context.Context, tenantID string) ([]entities.User, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.usersTableName),
		KeyConditionExpression: aws.String("tenant_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.User, 0, len(out.Items))
	for _, raw := range out.Items {
		var it userItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromUserItem(it))
	}
	return items, nil
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		TenantID:  it.TenantID,
		ID:        it.ID,
		Name:      it.Name,
		Role:      entities.Role(it.Role),
		PushToken: it.PushToken,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
