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

// AddressRepo provides typed DynamoDB operations for the addresses table.
type AddressRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewAddressRepo(client *dynamodb.Client, tableName string) *AddressRepo {
	return &AddressRepo{client: client, tableName: tableName}
}

func (r *AddressRepo) Put(ctx context.Context, a *domain.Address) error {
	item, err := attributevalue.MarshalMap(a)
	if err != nil {
		return fmt.Errorf("marshal address: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *AddressRepo) Get(ctx context.Context, addressID string) (*domain.Address, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("address_id", addressID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("address not found: %w", domain.ErrNotFound)
	}
	var a domain.Address
	if err := attributevalue.UnmarshalMap(out.Item, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AddressRepo) GetOwned(ctx context.Context, addressID, owner string) (*domain.Address, error) {
	a, err := r.Get(ctx, addressID)
	if err != nil {
		return nil, err
	}
	if a.CreatedBy != owner {
		return nil, fmt.Errorf("address not found: %w", domain.ErrNotFound)
	}
	return a, nil
}

// ListByOwner returns every address created by owner, newest first.
func (r *AddressRepo) ListByOwner(ctx context.Context, owner string) ([]domain.Address, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("created_by-created_at-index"),
		KeyConditionExpression: aws.String("created_by = :o"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":o": &types.AttributeValueMemberS{Value: owner},
		},
		ScanIndexForward: aws.Bool(false),
	}
	var addresses []domain.Address
	for {
		out, err := r.client.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		var page []domain.Address
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		addresses = append(addresses, page...)
		if out.LastEvaluatedKey == nil {
			return addresses, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *AddressRepo) Update(ctx context.Context, addressID, owner string, updates map[string]interface{}) (*domain.Address, error) {
	updates["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	expr, names, values, err := buildUpdateExpr(updates)
	if err != nil {
		return nil, err
	}
	values[":owner"] = &types.AttributeValueMemberS{Value: owner}
	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("address_id", addressID),
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(address_id) AND created_by = :owner"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return nil, fmt.Errorf("address not found: %w", domain.ErrNotFound)
		}
		return nil, err
	}
	var a domain.Address
	if err := attributevalue.UnmarshalMap(out.Attributes, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AddressRepo) Delete(ctx context.Context, addressID, owner string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 strKey("address_id", addressID),
		ConditionExpression: aws.String("attribute_exists(address_id) AND created_by = :owner"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: owner},
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return fmt.Errorf("address not found: %w", domain.ErrNotFound)
		}
		return err
	}
	return nil
}
