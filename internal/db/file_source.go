package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spacesedan/reviewflow/internal/models"
)

type FileReviewSource struct {
	path string
}

func NewFileReviewSource(path string) *FileReviewSource {
	return &FileReviewSource{path: path}
}

func (f *FileReviewSource) ListReviews(ctx context.Context) ([]models.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("[ReviewSource] failed to read seed file: %w", err)
	}

	var reviews []models.Review
	if err := json.Unmarshal(raw, &reviews); err != nil {
		return nil, fmt.Errorf("[ReviewSource] failed to parse seed file: %w", err)
	}

	slog.Debug("[ReviewSource] Loaded reviews from seed file",
		slog.String("path", f.path),
		slog.Int("count", len(reviews)))
	return normalizeReviews(reviews), nil
}
