package dynamo

import (
	"context"
	"fmt"
	"sort"

	"github.com/amanpandey8120/vlocker-app/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// VideoRepo provides typed DynamoDB operations for the installation-videos table.
type VideoRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewVideoRepo(client *dynamodb.Client, tableName string) *VideoRepo {
	return &VideoRepo{client: client, tableName: tableName}
}

func (r *VideoRepo) Put(ctx context.Context, v *domain.InstallationVideo) error {
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		return fmt.Errorf("marshal video: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// ListAll scans the catalog and sorts newest first. The catalog is small
// (a handful of how-to videos) so a scan is fine.
func (r *VideoRepo) ListAll(ctx context.Context) ([]domain.InstallationVideo, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	var videos []domain.InstallationVideo
	for {
		out, err := r.client.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		var page []domain.InstallationVideo
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		videos = append(videos, page...)
		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	sort.Slice(videos, func(i, j int) bool {
		return videos[i].CreatedAt.After(videos[j].CreatedAt)
	})
	return videos, nil
}
