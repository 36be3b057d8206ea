package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"
	"github.com/rafaeldl/praticOSopen-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName        = "orders"
	defaultOrderCountersTableName = "order_counters"
	defaultTransactionsTableName  = "order_transactions"
	ordersNumberIndex             = "number-index"
)

type customerItem struct {
	ID    string `dynamodbav:"id"`
	Name  string `dynamodbav:"name"`
	Phone string `dynamodbav:"phone,omitempty"`
	Email string `dynamodbav:"email,omitempty"`
}

type deviceItem struct {
	ID           string `dynamodbav:"id"`
	Brand        string `dynamodbav:"brand,omitempty"`
	Model        string `dynamodbav:"model,omitempty"`
	SerialNumber string `dynamodbav:"serial_number,omitempty"`
}

type lineItemItem struct {
	ID          string  `dynamodbav:"id"`
	Name        string  `dynamodbav:"name"`
	Description string  `dynamodbav:"description,omitempty"`
	Value       float64 `dynamodbav:"value"`
	Quantity    int     `dynamodbav:"quantity,omitempty"`
}

type ratingItem struct {
	Score     int    `dynamodbav:"score"`
	Comment   string `dynamodbav:"comment,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

type orderItem struct {
	TenantID   string         `dynamodbav:"tenant_id"`
	ID         string         `dynamodbav:"id"`
	Number     int64          `dynamodbav:"number"`
	Status     string         `dynamodbav:"status"`
	Customer   *customerItem  `dynamodbav:"customer,omitempty"`
	Device     *deviceItem    `dynamodbav:"device,omitempty"`
	Services   []lineItemItem `dynamodbav:"services,omitempty"`
	Products   []lineItemItem `dynamodbav:"products,omitempty"`
	Discount   float64        `dynamodbav:"discount"`
	PaidAmount float64        `dynamodbav:"paid_amount"`
	Total      float64        `dynamodbav:"total"`
	DueDate    string         `dynamodbav:"due_date,omitempty"`
	Rating     *ratingItem    `dynamodbav:"rating,omitempty"`
	AssignedTo string         `dynamodbav:"assigned_to,omitempty"`
	CreatedBy  string         `dynamodbav:"created_by"`
	CreatedAt  string         `dynamodbav:"created_at"`
	UpdatedAt  string         `dynamodbav:"updated_at"`
}

type transactionItem struct {
	OrderID     string  `dynamodbav:"order_id"`
	ID          string  `dynamodbav:"id"`
	TenantID    string  `dynamodbav:"tenant_id"`
	Amount      float64 `dynamodbav:"amount"`
	Type        string  `dynamodbav:"type"`
	Description string  `dynamodbav:"description,omitempty"`
	CreatedBy   string  `dynamodbav:"created_by"`
	CreatedAt   string  `dynamodbav:"created_at"`
}

// OrderDynamoRepository persists Order aggregates and their append-only
// transaction ledger in DynamoDB.
//
// Table requirements:
//   - orders: PK tenant_id (string), SK id (string)
//     GSI number-index: PK tenant_id (string), SK number (number)
//   - order_counters: PK tenant_id (string), attribute seq (number)
//   - order_transactions: PK order_id (string), SK id (string)
//
// The counters table backs NextNumber with an atomic ADD, so two concurrent
// creates in one tenant can never observe the same sequence value.

type OrderDynamoRepository struct {
	ddb               *dynamodb.Client
	tableName         string
	countersTableName string
	txTableName       string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:               ddb,
		tableName:         getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		countersTableName: getenvDefault("ORDER_COUNTERS_TABLE", defaultOrderCountersTableName),
		txTableName:       getenvDefault("ORDER_TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, tenantID, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tenant_id": &types.AttributeValueMemberS{Value: tenantID},
			"id":        &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) GetByNumber(ctx context.Context, tenantID string, number int64) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersNumberIndex),
		KeyConditionExpression: aws.String("tenant_id = :tid AND #number = :n"),
		ExpressionAttributeNames: map[string]string{
			"#number": "number",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
			":n":   &types.AttributeValueMemberN{Value: strconv.FormatInt(number, 10)},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) Update(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) NextNumber(ctx context.Context, tenantID string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTableName),
		Key: map[string]types.AttributeValue{
			"tenant_id": &types.AttributeValueMemberS{Value: tenantID},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	n, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("counter attribute missing from update response")
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

func (r *OrderDynamoRepository) AppendTransaction(ctx context.Context, tx entities.PaymentTransaction) (entities.PaymentTransaction, error) {
	av, err := attributevalue.MarshalMap(toTransactionItem(tx))
	if err != nil {
		return entities.PaymentTransaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.txTableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	return tx, nil
}

func (r *OrderDynamoRepository) ListTransactions(ctx context.Context, orderID string) ([]entities.PaymentTransaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.txTableName),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentTransaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTransactionItem(it))
	}
	return items, nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		TenantID:   o.TenantID,
		ID:         o.ID,
		Number:     o.Number,
		Status:     string(o.Status),
		Discount:   o.Discount,
		PaidAmount: o.PaidAmount,
		Total:      o.Total,
		DueDate:    formatTimePtr(o.DueDate),
		AssignedTo: o.AssignedTo,
		CreatedBy:  o.CreatedBy,
		CreatedAt:  formatTime(o.CreatedAt),
		UpdatedAt:  formatTime(o.UpdatedAt),
	}
	if o.Customer != nil {
		it.Customer = &customerItem{ID: o.Customer.ID, Name: o.Customer.Name, Phone: o.Customer.Phone, Email: o.Customer.Email}
	}
	if o.Device != nil {
		it.Device = &deviceItem{ID: o.Device.ID, Brand: o.Device.Brand, Model: o.Device.Model, SerialNumber: o.Device.SerialNumber}
	}
	it.Services = toLineItemItems(o.Services)
	it.Products = toLineItemItems(o.Products)
	if o.Rating != nil {
		it.Rating = &ratingItem{Score: o.Rating.Score, Comment: o.Rating.Comment, CreatedAt: formatTime(o.Rating.CreatedAt)}
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	o := entities.Order{
		TenantID:   it.TenantID,
		ID:         it.ID,
		Number:     it.Number,
		Status:     entities.OrderStatus(it.Status),
		Discount:   it.Discount,
		PaidAmount: it.PaidAmount,
		Total:      it.Total,
		DueDate:    parseTimePtr(it.DueDate),
		AssignedTo: it.AssignedTo,
		CreatedBy:  it.CreatedBy,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
	if it.Customer != nil {
		o.Customer = &entities.CustomerSnapshot{ID: it.Customer.ID, Name: it.Customer.Name, Phone: it.Customer.Phone, Email: it.Customer.Email}
	}
	if it.Device != nil {
		o.Device = &entities.DeviceSnapshot{ID: it.Device.ID, Brand: it.Device.Brand, Model: it.Device.Model, SerialNumber: it.Device.SerialNumber}
	}
	o.Services = fromLineItemItems(it.Services)
	o.Products = fromLineItemItems(it.Products)
	if it.Rating != nil {
		o.Rating = &entities.Rating{Score: it.Rating.Score, Comment: it.Rating.Comment, CreatedAt: parseTime(it.Rating.CreatedAt)}
	}
	return o
}

func toLineItemItems(items []entities.LineItem) []lineItemItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]lineItemItem, 0, len(items))
	for _, i := range items {
		out = append(out, lineItemItem{ID: i.ID, Name: i.Name, Description: i.Description, Value: i.Value, Quantity: i.Quantity})
	}
	return out
}

func fromLineItemItems(items []lineItemItem) []entities.LineItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.LineItem, 0, len(items))
	for _, i := range items {
		out = append(out, entities.LineItem{ID: i.ID, Name: i.Name, Description: i.Description, Value: i.Value, Quantity: i.Quantity})
	}
	return out
}

func toTransactionItem(tx entities.PaymentTransaction) transactionItem {
	return transactionItem{
		OrderID:     tx.OrderID,
		ID:          tx.ID,
		TenantID:    tx.TenantID,
		Amount:      tx.Amount,
		Type:        string(tx.Type),
		Description: tx.Description,
		CreatedBy:   tx.CreatedBy,
		CreatedAt:   formatTime(tx.CreatedAt),
	}
}

func fromTransactionItem(it transactionItem) entities.PaymentTransaction {
	return entities.PaymentTransaction{
		OrderID:     it.OrderID,
		ID:          it.ID,
		TenantID:    it.TenantID,
		Amount:      it.Amount,
		Type:        entities.TransactionType(it.Type),
		Description: it.Description,
		CreatedBy:   it.CreatedBy,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
