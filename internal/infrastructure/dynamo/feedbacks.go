package dynamo

import (
	"context"
	"fmt"

	"github.com/amanpandey8120/vlocker-app/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// FeedbackRepo provides typed DynamoDB operations for the feedbacks table.
type FeedbackRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewFeedbackRepo(client *dynamodb.Client, tableName string) *FeedbackRepo {
	return &FeedbackRepo{client: client, tableName: tableName}
}

func (r *FeedbackRepo) Put(ctx context.Context, f *domain.Feedback) error {
	item, err := attributevalue.MarshalMap(f)
	if err != nil {
		return fmt.Errorf("marshal feedback: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *FeedbackRepo) Get(ctx context.Context, feedbackID string) (*domain.Feedback, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("feedback_id", feedbackID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("feedback not found: %w", domain.ErrNotFound)
	}
	var f domain.Feedback
	if err := attributevalue.UnmarshalMap(out.Item, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// ListByUser returns a user's feedback, newest first.
func (r *FeedbackRepo) ListByUser(ctx context.Context, userID string) ([]domain.Feedback, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("user_id-created_at-index"),
		KeyConditionExpression: aws.String("user_id = :u"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":u": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	var feedbacks []domain.Feedback
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &feedbacks); err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// ListAll scans the whole table. Administrative use only.
func (r *FeedbackRepo) ListAll(ctx context.Context) ([]domain.Feedback, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	var feedbacks []domain.Feedback
	for {
		out, err := r.client.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		var page []domain.Feedback
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, page...)
		if out.LastEvaluatedKey == nil {
			return feedbacks, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}
