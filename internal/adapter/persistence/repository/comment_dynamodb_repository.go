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

const defaultCommentsTableName = "order_comments"

type commentItem struct {
	OrderID    string `dynamodbav:"order_id"`
	SK         string `dynamodbav:"sk"`
	ID         string `dynamodbav:"id"`
	TenantID   string `dynamodbav:"tenant_id"`
	Text       string `dynamodbav:"text"`
	AuthorType string `dynamodbav:"author_type"`
	Author     string `dynamodbav:"author,omitempty"`
	Source     string `dynamodbav:"source"`
	IsInternal bool   `dynamodbav:"is_internal"`
	ShareToken string `dynamodbav:"share_token,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
	Deleted    bool   `dynamodbav:"deleted"`
}

// CommentDynamoRepository persists the order's comment trail in DynamoDB.
//
// Table requirements:
//   - PK: order_id (string), SK: sk (string)
//
// The sort key is "created_at#id", so a plain forward query yields the feed
// in creation order and the id suffix keeps same-instant entries distinct.

type CommentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICommentRepository = (*CommentDynamoRepository)(nil)

func NewCommentDynamoRepository(ddb *dynamodb.Client) *CommentDynamoRepository {
	return &CommentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDER_COMMENTS_TABLE", defaultCommentsTableName),
	}
}

func (r *CommentDynamoRepository) Append(ctx context.Context, c entities.Comment) (entities.Comment, error) {
	av, err := attributevalue.MarshalMap(toCommentItem(c))
	if err != nil {
		return entities.Comment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#sk)"),
		ExpressionAttributeNames: map[string]string{
			"#sk": "sk",
		},
	})
	if err != nil {
		return entities.Comment{}, err
	}
	return c, nil
}

// GetByID resolves one entry by its id. The table is keyed by creation time,
// so this is a keyed query with an id filter, not a point read; comment
// volume per order is small enough for that to stay a single page.
func (r *CommentDynamoRepository) GetByID(ctx context.Context, orderID, id string) (entities.Comment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("order_id = :oid"),
		FilterExpression:       aws.String("#id = :id"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
			":id":  &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Comment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Comment{}, nil
	}

	var it commentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Comment{}, err
	}
	return fromCommentItem(it), nil
}

func (r *CommentDynamoRepository) ListByOrder(ctx context.Context, orderID string) ([]entities.Comment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Comment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it commentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCommentItem(it))
	}
	return items, nil
}

func (r *CommentDynamoRepository) Update(ctx context.Context, c entities.Comment) (entities.Comment, error) {
	av, err := attributevalue.MarshalMap(toCommentItem(c))
	if err != nil {
		return entities.Comment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#sk)"),
		ExpressionAttributeNames: map[string]string{
			"#sk": "sk",
		},
	})
	if err != nil {
		return entities.Comment{}, err
	}
	return c, nil
}

func commentSortKey(c entities.Comment) string {
	return formatTime(c.CreatedAt) + "#" + c.ID
}

func toCommentItem(c entities.Comment) commentItem {
	return commentItem{
		OrderID:    c.OrderID,
		SK:         commentSortKey(c),
		ID:         c.ID,
		TenantID:   c.TenantID,
		Text:       c.Text,
		AuthorType: string(c.AuthorType),
		Author:     c.Author,
		Source:     string(c.Source),
		IsInternal: c.IsInternal,
		ShareToken: c.ShareToken,
		CreatedAt:  formatTime(c.CreatedAt),
		Deleted:    c.Deleted,
	}
}

func fromCommentItem(it commentItem) entities.Comment {
	return entities.Comment{
		OrderID:    it.OrderID,
		ID:         it.ID,
		TenantID:   it.TenantID,
		Text:       it.Text,
		AuthorType: entities.CommentAuthorType(it.AuthorType),
		Author:     it.Author,
		Source:     entities.CommentSource(it.Source),
		IsInternal: it.IsInternal,
		ShareToken: it.ShareToken,
		CreatedAt:  parseTime(it.CreatedAt),
		Deleted:    it.Deleted,
	}
}
