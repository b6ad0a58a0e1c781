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

// SupportRepo manages the singleton company-support record. The record lives
// at the fixed key domain.SupportDocKey; the conditional put is the actual
// uniqueness guarantee, not the read-before-write fast path in the service.
type SupportRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewSupportRepo(client *dynamodb.Client, tableName string) *SupportRepo {
	return &SupportRepo{client: client, tableName: tableName}
}

// Create inserts the singleton; fails with a conflict if it already exists.
func (r *SupportRepo) Create(ctx context.Context, s *domain.CompanySupport) error {
	item, err := attributevalue.MarshalMap(s)
	if err != nil {
		return fmt.Errorf("marshal support info: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(support_id)"),
	})
	if err != nil {
		if isConditionFailed(err) {
			return fmt.Errorf("support info already exists: %w", domain.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *SupportRepo) Get(ctx context.Context) (*domain.CompanySupport, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("support_id", domain.SupportDocKey),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("no support info found: %w", domain.ErrNotFound)
	}
	var s domain.CompanySupport
	if err := attributevalue.UnmarshalMap(out.Item, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SupportRepo) Update(ctx context.Context, supportID string, updates map[string]interface{}) (*domain.CompanySupport, error) {
	updates["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	expr, names, values, err := buildUpdateExpr(updates)
	if err != nil {
		return nil, err
	}
	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("support_id", supportID),
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(support_id)"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return nil, fmt.Errorf("support info not found: %w", domain.ErrNotFound)
		}
		return nil, err
	}
	var s domain.CompanySupport
	if err := attributevalue.UnmarshalMap(out.Attributes, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
