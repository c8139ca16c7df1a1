package db

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/spacesedan/reviewflow/config"
	"github.com/spacesedan/reviewflow/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScanClient struct {
	pages [][]models.Review
	err   error
	calls int
}

func (f *fakeScanClient) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	page := f.pages[f.calls]
	f.calls++

	items := make([]map[string]types.AttributeValue, 0, len(page))
	for _, r := range page {
		item, err := attributevalue.MarshalMap(r)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	out := &dynamodb.ScanOutput{Items: items}
	if f.calls < len(f.pages) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: page[len(page)-1].ID},
		}
	}
	return out, nil
}

func TestDynamoReviewRepositoryScansAllPages(t *testing.T) {
	client := &fakeScanClient{pages: [][]models.Review{
		{
			{ID: "1", CustomerName: "Aarav", Date: "2023-10-24", Time: "10:00", Rating: 5, Sentiment: "positive", Categories: []string{"Delivery"}},
		},
		{
			{ID: "2", CustomerName: "Sneha", Date: "2023-10-25", Time: "09:00", Rating: 2, Sentiment: "negative"},
		},
	}}

	reviews, err := NewDynamoReviewRepository(client, "Reviews").ListReviews(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, client.calls)
	require.Len(t, reviews, 2)
	assert.Equal(t, "2", reviews[0].ID, "newest first")
	assert.Equal(t, []string{"Delivery"}, reviews[1].Categories)
}

func TestDynamoReviewRepositoryScanError(t *testing.T) {
	client := &fakeScanClient{err: errors.New("ResourceNotFoundException")}

	_, err := NewDynamoReviewRepository(client, "Reviews").ListReviews(context.Background())
	assert.ErrorContains(t, err, "Scan for reviews failed")
}

func TestFileReviewSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reviews.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"customer_name":"Priya","date":"2023-10-23","time":"19:00","rating":1,"text":"Found a hair","sentiment":"negative","score":-0.95},
		{"id":"7","customer_name":"Karan","date":"2023-10-22","time":"15:00","rating":4,"text":"Nice packaging","sentiment":"positive","score":0.7}
	]`), 0o600))

	source, err := NewReviewSource(context.Background(), config.ReviewSourceConfig{SeedFile: path})
	require.NoError(t, err)

	first, err := source.ListReviews(context.Background())
	require.NoError(t, err)
	second, err := source.ListReviews(context.Background())
	require.NoError(t, err)

	require.Len(t, first, 2)
	assert.NotEmpty(t, first[0].ID)
	assert.Equal(t, first[0].ID, second[0].ID, "derived ids are stable")
	assert.Equal(t, "7", first[1].ID)
}

func TestFileReviewSourceMissingFile(t *testing.T) {
	_, err := NewFileReviewSource(filepath.Join(t.TempDir(), "nope.json")).ListReviews(context.Background())
	assert.Error(t, err)
}

func TestSeedFileParses(t *testing.T) {
	reviews, err := NewFileReviewSource("../../config/seed/reviews.json").ListReviews(context.Background())
	require.NoError(t, err)

	assert.Len(t, reviews, 12)
	for _, r := range reviews {
		assert.True(t, models.IsSentimentLabel(r.Sentiment), r.ID)
		assert.NotEmpty(t, r.Text)
	}
}

func TestFilterReviews(t *testing.T) {
	reviews := []models.Review{
		{ID: "1", CustomerName: "Aarav Patel", Text: "Loved the biryani", Sentiment: "positive"},
		{ID: "2", CustomerName: "Sneha Gupta", Text: "Food was cold", Sentiment: "negative"},
		{ID: "3", CustomerName: "Vikram", Text: "It was okay, biryani average", Sentiment: "neutral"},
	}

	tests := []struct {
		name   string
		filter models.ReviewFilter
		want   []string
	}{
		{"no filter", models.ReviewFilter{}, []string{"1", "2", "3"}},
		{"all", models.ReviewFilter{Sentiment: "all"}, []string{"1", "2", "3"}},
		{"negative", models.ReviewFilter{Sentiment: "Negative"}, []string{"2"}},
		{"query text", models.ReviewFilter{Query: "BIRYANI"}, []string{"1", "3"}},
		{"query name", models.ReviewFilter{Query: "gupta"}, []string{"2"}},
		{"combined", models.ReviewFilter{Sentiment: "positive", Query: "biryani"}, []string{"1"}},
		{"no match", models.ReviewFilter{Query: "pizza"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterReviews(reviews, tt.filter)
			ids := make([]string, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
