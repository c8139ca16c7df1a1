package db

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/spacesedan/reviewflow/config"
	"github.com/spacesedan/reviewflow/internal/clients"
	"github.com/spacesedan/reviewflow/internal/models"
)

var ErrNoReviewSource = errors.New("no review source configured")

// ReviewSource lists reviews. Implementations never write.
type ReviewSource interface {
	ListReviews(ctx context.Context) ([]models.Review, error)
}

// NewReviewSource prefers the seed file and falls back to DynamoDB.
func NewReviewSource(ctx context.Context, cfg config.ReviewSourceConfig) (ReviewSource, error) {
	if cfg.SeedFile != "" {
		return NewFileReviewSource(cfg.SeedFile), nil
	}
	if cfg.TableName == "" {
		return nil, ErrNoReviewSource
	}

	client, err := clients.GetDynamoDBClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewDynamoReviewRepository(client, cfg.TableName), nil
}

// FilterReviews keeps reviews matching the sentiment label ("" or "all"
// match everything) and containing the query in text or customer name.
func FilterReviews(reviews []models.Review, filter models.ReviewFilter) []models.Review {
	label := strings.ToLower(strings.TrimSpace(filter.Sentiment))
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	filtered := make([]models.Review, 0, len(reviews))
	for _, r := range reviews {
		if label != "" && label != "all" && r.Sentiment != label {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(r.Text), query) &&
			!strings.Contains(strings.ToLower(r.CustomerName), query) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// normalizeReviews gives id-less reviews a stable id derived from their
// content and orders the list newest first.
func normalizeReviews(reviews []models.Review) []models.Review {
	for i := range reviews {
		if reviews[i].ID == "" {
			seed := reviews[i].CustomerName + "|" + reviews[i].Date + "|" + reviews[i].Time + "|" + reviews[i].Text
			reviews[i].ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed)).String()
		}
	}

	slices.SortStableFunc(reviews, func(a, b models.Review) int {
		return strings.Compare(b.Date+" "+b.Time, a.Date+" "+a.Time)
	})
	return reviews
}
