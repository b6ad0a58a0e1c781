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

// CustomerRepo provides typed DynamoDB operations for the customers table.
type CustomerRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewCustomerRepo(client *dynamodb.Client, tableName string) *CustomerRepo {
	return &CustomerRepo{client: client, tableName: tableName}
}

func (r *CustomerRepo) Put(ctx context.Context, c *domain.Customer) error {
	item, err := attributevalue.MarshalMap(c)
	if err != nil {
		return fmt.Errorf("marshal customer: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *CustomerRepo) Get(ctx context.Context, customerID string) (*domain.Customer, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("customer_id", customerID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("customer not found: %w", domain.ErrNotFound)
	}
	var c domain.Customer
	if err := attributevalue.UnmarshalMap(out.Item, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetOwned returns the customer only when it belongs to owner. Absence and
// foreign ownership are indistinguishable to the caller.
func (r *CustomerRepo) GetOwned(ctx context.Context, customerID, owner string) (*domain.Customer, error) {
	c, err := r.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if c.CreatedBy != owner {
		return nil, fmt.Errorf("customer not found: %w", domain.ErrNotFound)
	}
	return c, nil
}

// GetByMobile looks up the unique record for (owner, mobile) via the
// created_by-mobile-index GSI.
func (r *CustomerRepo) GetByMobile(ctx context.Context, owner, mobile string) (*domain.Customer, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("created_by-mobile-index"),
		KeyConditionExpression: aws.String("created_by = :o AND mobile_number = :m"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":o": &types.AttributeValueMemberS{Value: owner},
			":m": &types.AttributeValueMemberS{Value: mobile},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, fmt.Errorf("customer not found: %w", domain.ErrNotFound)
	}
	var c domain.Customer
	if err := attributevalue.UnmarshalMap(out.Items[0], &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListVerifiedByOwner returns every verified customer for owner, newest first.
// The created_by-created_at-index GSI sorts by creation time; the query walks
// all pages so the caller can paginate by offset.
func (r *CustomerRepo) ListVerifiedByOwner(ctx context.Context, owner string) ([]domain.Customer, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("created_by-created_at-index"),
		KeyConditionExpression: aws.String("created_by = :o"),
		FilterExpression:       aws.String("is_verified = :t"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":o": &types.AttributeValueMemberS{Value: owner},
			":t": &types.AttributeValueMemberBOOL{Value: true},
		},
		ScanIndexForward: aws.Bool(false),
	}
	var customers []domain.Customer
	for {
		out, err := r.client.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		var page []domain.Customer
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		customers = append(customers, page...)
		if out.LastEvaluatedKey == nil {
			return customers, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// Update applies a partial update to owner's record and returns the new state.
// The ownership condition makes a foreign or missing id fail as not-found.
func (r *CustomerRepo) Update(ctx context.Context, customerID, owner string, updates map[string]interface{}) (*domain.Customer, error) {
	updates["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	expr, names, values, err := buildUpdateExpr(updates)
	if err != nil {
		return nil, err
	}
	values[":owner"] = &types.AttributeValueMemberS{Value: owner}
	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("customer_id", customerID),
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(customer_id) AND created_by = :owner"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return nil, fmt.Errorf("customer not found: %w", domain.ErrNotFound)
		}
		return nil, err
	}
	var c domain.Customer
	if err := attributevalue.UnmarshalMap(out.Attributes, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// MarkVerified performs the pending→verified transition atomically. The
// condition pins the exact challenge that was validated: if a concurrent
// confirm already won (clearing otp) or the challenge was replaced, the
// write fails and the caller sees a conflict.
func (r *CustomerRepo) MarkVerified(ctx context.Context, customerID, otpHash string) (*domain.Customer, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 strKey("customer_id", customerID),
		UpdateExpression:    aws.String("SET is_verified = :t, updated_at = :now REMOVE otp, otp_expires"),
		ConditionExpression: aws.String("is_verified = :f AND otp = :hash"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":t":    &types.AttributeValueMemberBOOL{Value: true},
			":f":    &types.AttributeValueMemberBOOL{Value: false},
			":now":  &types.AttributeValueMemberS{Value: now},
			":hash": &types.AttributeValueMemberS{Value: otpHash},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return nil, fmt.Errorf("customer is already verified: %w", domain.ErrConflict)
		}
		return nil, err
	}
	var c domain.Customer
	if err := attributevalue.UnmarshalMap(out.Attributes, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Delete removes owner's record. A foreign or missing id fails as not-found.
func (r *CustomerRepo) Delete(ctx context.Context, customerID, owner string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 strKey("customer_id", customerID),
		ConditionExpression: aws.String("attribute_exists(customer_id) AND created_by = :owner"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: owner},
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return fmt.Errorf("customer not found: %w", domain.ErrNotFound)
		}
		return err
	}
	return nil
}
