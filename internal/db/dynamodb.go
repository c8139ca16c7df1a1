package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/spacesedan/reviewflow/internal/models"
)

type DynamoReviewRepository struct {
	client    dynamodb.ScanAPIClient
	tableName string
}

func NewDynamoReviewRepository(client dynamodb.ScanAPIClient, tableName string) *DynamoReviewRepository {
	return &DynamoReviewRepository{client: client, tableName: tableName}
}

func (r *DynamoReviewRepository) ListReviews(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}

	paginator := dynamodb.NewScanPaginator(r.client, input)

	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("[DynamoDB] Scan for reviews failed: %w", err)
		}

		var page []models.Review
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			slog.Error("[DynamoDB] Unable to unmarshal review page", slog.String("error", err.Error()))
			return nil, err
		}
		reviews = append(reviews, page...)
	}

	slog.Info("[DynamoDB] Successfully retrieved reviews",
		slog.String("table", r.tableName),
		slog.Int("count", len(reviews)))
	return normalizeReviews(reviews), nil
}
