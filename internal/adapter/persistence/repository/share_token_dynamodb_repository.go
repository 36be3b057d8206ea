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
	defaultShareTokensTableName = "share_tokens"
	shareTokensOrderIndex       = "order-index"
)

type shareTokenItem struct {
	Token           string        `dynamodbav:"token"`
	OrderID         string        `dynamodbav:"order_id"`
	TenantID        string        `dynamodbav:"tenant_id"`
	Customer        *customerItem `dynamodbav:"customer,omitempty"`
	Permissions     []string      `dynamodbav:"permissions"`
	CreatedBy       string        `dynamodbav:"created_by,omitempty"`
	CreatedAt       string        `dynamodbav:"created_at"`
	ExpiresAt       string        `dynamodbav:"expires_at"`
	ViewCount       int64         `dynamodbav:"view_count"`
	LastViewedAt    string        `dynamodbav:"last_viewed_at,omitempty"`
	ApprovedAt      string        `dynamodbav:"approved_at,omitempty"`
	RejectedAt      string        `dynamodbav:"rejected_at,omitempty"`
	RejectionReason string        `dynamodbav:"rejection_reason,omitempty"`
}

// ShareTokenDynamoRepository persists ShareToken records in DynamoDB.
//
// Table requirements:
//   - PK: token (string)
//   - GSI: order-index (PK: order_id, SK: created_at)
//
// Put is a full replace: the use case layer always carries the complete
// record, so upsert semantics cover both creation and the settle/view
// updates.

type ShareTokenDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IShareTokenRepository = (*ShareTokenDynamoRepository)(nil)

func NewShareTokenDynamoRepository(ddb *dynamodb.Client) *ShareTokenDynamoRepository {
	return &ShareTokenDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SHARE_TOKENS_TABLE", defaultShareTokensTableName),
	}
}

func (r *ShareTokenDynamoRepository) Put(ctx context.Context, t entities.ShareToken) (entities.ShareToken, error) {
	av, err := attributevalue.MarshalMap(toShareTokenItem(t))
	if err != nil {
		return entities.ShareToken{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.ShareToken{}, err
	}
	return t, nil
}

func (r *ShareTokenDynamoRepository) GetByToken(ctx context.Context, token string) (entities.ShareToken, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ShareToken{}, err
	}
	if len(out.Item) == 0 {
		return entities.ShareToken{}, nil
	}

	var it shareTokenItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ShareToken{}, err
	}
	return fromShareTokenItem(it), nil
}

func (r *ShareTokenDynamoRepository) Delete(ctx context.Context, token string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
	})
	return err
}

func (r *ShareTokenDynamoRepository) ListByOrder(ctx context.Context, orderID string) ([]entities.ShareToken, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(shareTokensOrderIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
		// Newest first.
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ShareToken, 0, len(out.Items))
	for _, raw := range out.Items {
		var it shareTokenItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromShareTokenItem(it))
	}
	return items, nil
}

func toShareTokenItem(t entities.ShareToken) shareTokenItem {
	it := shareTokenItem{
		Token:           t.Token,
		OrderID:         t.OrderID,
		TenantID:        t.TenantID,
		CreatedBy:       t.CreatedBy,
		CreatedAt:       formatTime(t.CreatedAt),
		ExpiresAt:       formatTime(t.ExpiresAt),
		ViewCount:       t.ViewCount,
		LastViewedAt:    formatTimePtr(t.LastViewedAt),
		ApprovedAt:      formatTimePtr(t.ApprovedAt),
		RejectedAt:      formatTimePtr(t.RejectedAt),
		RejectionReason: t.RejectionReason,
	}
	if t.Customer != nil {
		it.Customer = &customerItem{ID: t.Customer.ID, Name: t.Customer.Name, Phone: t.Customer.Phone, Email: t.Customer.Email}
	}
	it.Permissions = make([]string, 0, len(t.Permissions))
	for _, p := range t.Permissions {
		it.Permissions = append(it.Permissions, string(p))
	}
	return it
}

func fromShareTokenItem(it shareTokenItem) entities.ShareToken {
	t := entities.ShareToken{
		Token:           it.Token,
		OrderID:         it.OrderID,
		TenantID:        it.TenantID,
		CreatedBy:       it.CreatedBy,
		CreatedAt:       parseTime(it.CreatedAt),
		ExpiresAt:       parseTime(it.ExpiresAt),
		ViewCount:       it.ViewCount,
		LastViewedAt:    parseTimePtr(it.LastViewedAt),
		ApprovedAt:      parseTimePtr(it.ApprovedAt),
		RejectedAt:      parseTimePtr(it.RejectedAt),
		RejectionReason: it.RejectionReason,
	}
	if it.Customer != nil {
		t.Customer = &entities.CustomerSnapshot{ID: it.Customer.ID, Name: it.Customer.Name, Phone: it.Customer.Phone, Email: it.Customer.Email}
	}
	t.Permissions = make([]entities.SharePermission, 0, len(it.Permissions))
	for _, p := range it.Permissions {
		t.Permissions = append(t.Permissions, entities.SharePermission(p))
	}
	return t
}
