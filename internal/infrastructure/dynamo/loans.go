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

// LoanRepo provides typed DynamoDB operations for the loans table.
//
// IMEI uniqueness is enforced store-side: every loan put writes a guard item
// keyed "imei#<imei>" in the same transaction, conditioned on the guard not
// existing yet. Guard items carry no GSI attributes so they never surface in
// list queries.
type LoanRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewLoanRepo(client *dynamodb.Client, tableName string) *LoanRepo {
	return &LoanRepo{client: client, tableName: tableName}
}

func imeiGuardKey(imei string) string { return "imei#" + imei }

func (r *LoanRepo) Put(ctx context.Context, l *domain.Loan) error {
	item, err := attributevalue.MarshalMap(l)
	if err != nil {
		return fmt.Errorf("marshal loan: %w", err)
	}
	_, err = r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                item,
				ConditionExpression: aws.String("attribute_not_exists(loan_id)"),
			}},
			{Put: &types.Put{
				TableName: aws.String(r.tableName),
				Item: map[string]types.AttributeValue{
					"loan_id":  &types.AttributeValueMemberS{Value: imeiGuardKey(l.IMEI)},
					"guard_of": &types.AttributeValueMemberS{Value: l.LoanID},
				},
				ConditionExpression: aws.String("attribute_not_exists(loan_id)"),
			}},
		},
	})
	if err != nil {
		if isTransactionConflict(err) {
			return fmt.Errorf("a loan with this IMEI number already exists: %w", domain.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *LoanRepo) Get(ctx context.Context, loanID string) (*domain.Loan, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("loan_id", loanID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("loan not found: %w", domain.ErrNotFound)
	}
	var l domain.Loan
	if err := attributevalue.UnmarshalMap(out.Item, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LoanRepo) GetOwned(ctx context.Context, loanID, owner string) (*domain.Loan, error) {
	l, err := r.Get(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if l.CreatedBy != owner {
		return nil, fmt.Errorf("loan not found: %w", domain.ErrNotFound)
	}
	return l, nil
}

// ListByCustomer returns owner's loans under a customer, newest first.
func (r *LoanRepo) ListByCustomer(ctx context.Context, customerID, owner string) ([]domain.Loan, error) {
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
	var loans []domain.Loan
	for {
		out, err := r.client.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		var page []domain.Loan
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		loans = append(loans, page...)
		if out.LastEvaluatedKey == nil {
			return loans, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *LoanRepo) Update(ctx context.Context, loanID, owner string, updates map[string]interface{}) (*domain.Loan, error) {
	updates["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	expr, names, values, err := buildUpdateExpr(updates)
	if err != nil {
		return nil, err
	}
	values[":owner"] = &types.AttributeValueMemberS{Value: owner}
	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("loan_id", loanID),
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(loan_id) AND created_by = :owner"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return nil, fmt.Errorf("loan not found: %w", domain.ErrNotFound)
		}
		return nil, err
	}
	var l domain.Loan
	if err := attributevalue.UnmarshalMap(out.Attributes, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// Delete removes the loan and its IMEI guard item in one transaction so the
// IMEI frees up atomically with the loan going away.
func (r *LoanRepo) Delete(ctx context.Context, loanID, owner, imei string) error {
	_, err := r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Delete: &types.Delete{
				TableName:           aws.String(r.tableName),
				Key:                 strKey("loan_id", loanID),
				ConditionExpression: aws.String("attribute_exists(loan_id) AND created_by = :owner"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":owner": &types.AttributeValueMemberS{Value: owner},
				},
			}},
			{Delete: &types.Delete{
				TableName: aws.String(r.tableName),
				Key:       strKey("loan_id", imeiGuardKey(imei)),
			}},
		},
	})
	if err != nil {
		if isTransactionConflict(err) {
			return fmt.Errorf("loan not found: %w", domain.ErrNotFound)
		}
		return err
	}
	return nil
}
