package submissions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Every submission lives under one partition; uuid v7 sort keys keep it in
// creation order.
const (
	dynamoPK       = "SUBMISSIONS"
	dynamoSKPrefix = "SUB#"
)

// DynamoAPI is the part of the DynamoDB client the store uses.
type DynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, opts ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// DynamoStore keeps submissions in a DynamoDB table keyed by PK/SK.
type DynamoStore struct {
	client    DynamoAPI
	tableName string
	now       func() time.Time
}

var _ Store = (*DynamoStore)(nil)

// NewDynamoStore creates a store on table.
func NewDynamoStore(client DynamoAPI, tableName string) *DynamoStore {
	return &DynamoStore{client: client, tableName: tableName, now: func() time.Time { return time.Now().UTC() }}
}

func dynamoKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: dynamoPK},
		"SK": &types.AttributeValueMemberS{Value: dynamoSKPrefix + id},
	}
}

func isConditionFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

// Create writes a new item, refusing to overwrite an existing id.
func (d *DynamoStore) Create(ctx context.Context, s Submission) (*Submission, error) {
	s, err := prepare(s, d.now())
	if err != nil {
		return nil, err
	}
	item, err := attributevalue.MarshalMap(s)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	for k, v := range dynamoKey(s.ID) {
		item[k] = v
	}
	_, err = d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &d.tableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(SK)"),
	})
	if err != nil {
		return nil, fmt.Errorf("PutItem id=%s: %w", s.ID, err)
	}
	return &s, nil
}

// Get reads one item.
func (d *DynamoStore) Get(ctx context.Context, id string) (*Submission, error) {
	out, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      &d.tableName,
		Key:            dynamoKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem id=%s: %w", id, err)
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}
	var s Submission
	if err := attributevalue.UnmarshalMap(out.Item, &s); err != nil {
		return nil, fmt.Errorf("unmarshal id=%s: %w", id, err)
	}
	return &s, nil
}

// scan walks the partition newest first until visit returns false.
func (d *DynamoStore) scan(ctx context.Context, visit func(Submission) bool) error {
	pager := dynamodb.NewQueryPaginator(d.client, &dynamodb.QueryInput{
		TableName:              &d.tableName,
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: dynamoPK},
			":sk": &types.AttributeValueMemberS{Value: dynamoSKPrefix},
		},
		ScanIndexForward: aws.Bool(false),
	})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("Query submissions: %w", err)
		}
		for _, item := range page.Items {
			var s Submission
			if err := attributevalue.UnmarshalMap(item, &s); err != nil {
				return fmt.Errorf("unmarshal submission: %w", err)
			}
			if !visit(s) {
				return nil
			}
		}
	}
	return nil
}

// List filters the partition client side. The studio inbox is small enough
// that a filter expression would not save reads.
func (d *DynamoStore) List(ctx context.Context, f Filter) ([]Submission, error) {
	var out []Submission
	err := d.scan(ctx, func(s Submission) bool {
		if f.Matches(s) {
			out = append(out, s)
		}
		return f.Limit <= 0 || len(out) < f.Limit
	})
	if err != nil {
		return nil, err
	}
	newestFirst(out)
	return out, nil
}

// UpdateStatus sets the status of an existing item.
func (d *DynamoStore) UpdateStatus(ctx context.Context, id string, status Status) (*Submission, error) {
	out, err := d.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           &d.tableName,
		Key:                 dynamoKey(id),
		UpdateExpression:    aws.String("SET #status = :status, updatedAt = :updated"),
		ConditionExpression: aws.String("attribute_exists(SK)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":  &types.AttributeValueMemberS{Value: string(status)},
			":updated": &types.AttributeValueMemberS{Value: d.now().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if isConditionFailed(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("UpdateItem id=%s: %w", id, err)
	}
	var s Submission
	if err := attributevalue.UnmarshalMap(out.Attributes, &s); err != nil {
		return nil, fmt.Errorf("unmarshal id=%s: %w", id, err)
	}
	return &s, nil
}

// Delete removes an existing item.
func (d *DynamoStore) Delete(ctx context.Context, id string) error {
	_, err := d.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           &d.tableName,
		Key:                 dynamoKey(id),
		ConditionExpression: aws.String("attribute_exists(SK)"),
	})
	if isConditionFailed(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("DeleteItem id=%s: %w", id, err)
	}
	return nil
}

// FindByEmail returns the newest submission of kind from email.
func (d *DynamoStore) FindByEmail(ctx context.Context, kind Kind, email string) (*Submission, error) {
	var found *Submission
	err := d.scan(ctx, func(s Submission) bool {
		if s.Kind == kind && s.Email == email {
			found = &s
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

// Counts tallies the partition.
func (d *DynamoStore) Counts(ctx context.Context) (Counts, error) {
	c := newCounts()
	err := d.scan(ctx, func(s Submission) bool {
		c.add(s)
		return true
	})
	return c, err
}
