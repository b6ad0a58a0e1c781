package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/amanpandey8120/vlocker-app/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// BankRepo provides typed DynamoDB operations for the banks table.
type BankRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewBankRepo(client *dynamodb.Client, tableName string) *BankRepo {
	return &BankRepo{client: client, tableName: tableName}
}

func (r *BankRepo) Put(ctx context.Context, b *domain.Bank) error {
	item, err := attributevalue.MarshalMap(b)
	if err != nil {
		return fmt.Errorf("marshal bank: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *BankRepo) Get(ctx context.Context, bankID string) (*domain.Bank, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("bank_id", bankID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("bank not found: %w", domain.ErrNotFound)
	}
	var b domain.Bank
	if err := attributevalue.UnmarshalMap(out.Item, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BankRepo) GetOwned(ctx context.Context, bankID, owner string) (*domain.Bank, error) {
	b, err := r.Get(ctx, bankID)
	if err != nil {
		return nil, err
	}
	if b.CreatedBy != owner {
		return nil, fmt.Errorf("bank not found: %w", domain.ErrNotFound)
	}
	return b, nil
}

// ListByCustomer returns owner's bank records under a customer, newest first.
func (r *BankRepo) ListByCustomer(ctx context.Context, customerID, owner string) ([]domain.Bank, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("customer_id-created_at-index"),
		KeyConditionExpression: aws.String("customer_id = :c"),
		FilterExpression:       aws.String("created_by = :o"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":c": &types.AttributeValueMemberS{Value: customerID},
			":o": &types.AttributeValueMemberS{Value: owner},
		},
		ScanIndexForward: aws.Bool(false),
	}
	var banks []domain.Bank
	for {
		out, err := r.client.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		var page []domain.Bank
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		banks = append(banks, page...)
		if out.LastEvaluatedKey == nil {
			return banks, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *BankRepo) Update(ctx context.Context, bankID, owner string, updates map[string]interface{}) (*domain.Bank, error) {
	updates["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	expr, names, values, err := buildUpdateExpr(updates)
	if err != nil {
		return nil, err
	}
	values[":owner"] = &types.AttributeValueMemberS{Value: owner}
	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("bank_id", bankID),
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(bank_id) AND created_by = :owner"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return nil, fmt.Errorf("bank not found: %w", domain.ErrNotFound)
		}
		return nil, err
	}
	var b domain.Bank
	if err := attributevalue.UnmarshalMap(out.Attributes, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BankRepo) Delete(ctx context.Context, bankID, owner string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 strKey("bank_id", bankID),
		ConditionExpression: aws.String("attribute_exists(bank_id) AND created_by = :owner"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: owner},
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return fmt.Errorf("bank not found: %w", domain.ErrNotFound)
		}
		return err
	}
	return nil
}
