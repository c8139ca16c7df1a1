package processing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spacesedan/reviewflow/internal/db"
	"github.com/spacesedan/reviewflow/internal/models"
	"github.com/spacesedan/reviewflow/internal/utils"
	"golang.org/x/sync/errgroup"
)

const ANNOTATION_BATCH_SIZE = 25

type Analyzer interface {
	Analyze(ctx context.Context, text string) (models.AnalysisResult, error)
}

type Publisher interface {
	PublishAnnotations(ctx context.Context, batch []models.AnnotatedReview) error
}

// ProcessedTracker remembers which reviews were already annotated.
type ProcessedTracker interface {
	IsProcessed(ctx context.Context, set string, member string) bool
	MarkProcessed(ctx context.Context, set string, members ...string) error
}

type RunStats struct {
	Total     int
	Skipped   int
	Annotated int
	Failed    int
	Published int
}

type Annotator struct {
	source       db.ReviewSource
	analyzer     Analyzer
	publisher    Publisher
	tracker      ProcessedTracker
	processedSet string
	concurrency  int
	batchSize    int
}

// NewAnnotator builds an annotator; a nil tracker disables de-duplication.
func NewAnnotator(source db.ReviewSource, analyzer Analyzer, publisher Publisher, tracker ProcessedTracker, processedSet string, concurrency int) *Annotator {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Annotator{
		source:       source,
		analyzer:     analyzer,
		publisher:    publisher,
		tracker:      tracker,
		processedSet: processedSet,
		concurrency:  concurrency,
		batchSize:    ANNOTATION_BATCH_SIZE,
	}
}

// Run annotates every unprocessed review once. Individual analysis failures
// are skipped; publish failures abort the run.
func (a *Annotator) Run(ctx context.Context) (RunStats, error) {
	start := time.Now()
	var stats RunStats

	reviews, err := a.source.ListReviews(ctx)
	if err != nil {
		return stats, fmt.Errorf("failed to list reviews: %w", err)
	}
	stats.Total = len(reviews)

	pending := make([]models.Review, 0, len(reviews))
	for _, r := range reviews {
		if a.tracker != nil && a.tracker.IsProcessed(ctx, a.processedSet, r.ID) {
			stats.Skipped++
			continue
		}
		pending = append(pending, r)
	}

	var annotated, failed, published atomic.Int64
	buffer := utils.NewBatchBuffer[models.AnnotatedReview](a.batchSize)
	var flushMu sync.Mutex

	flush := func(ctx context.Context) error {
		flushMu.Lock()
		defer flushMu.Unlock()

		if !buffer.HasData() {
			return nil
		}
		buffer.LogBatchProcessing("annotations")
		batch := buffer.GetAndClear()
		if err := a.publisher.PublishAnnotations(ctx, batch); err != nil {
			return fmt.Errorf("failed to publish annotations: %w", err)
		}
		published.Add(int64(len(batch)))

		if a.tracker != nil {
			ids := make([]string, 0, len(batch))
			for _, ar := range batch {
				ids = append(ids, ar.Review.ID)
			}
			if err := a.tracker.MarkProcessed(ctx, a.processedSet, ids...); err != nil {
				slog.Warn("[Annotator] Failed to mark batch processed",
					slog.Int("count", len(ids)),
					slog.String("error", err.Error()))
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for _, review := range pending {
		g.Go(func() error {
			result, err := a.analyzer.Analyze(gctx, review.Text)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				failed.Add(1)
				slog.Warn("[Annotator] Skipping review",
					slog.String("review_id", review.ID),
					slog.String("error", err.Error()))
				return nil
			}

			annotated.Add(1)
			if buffer.Add(models.AnnotatedReview{Review: review, Analysis: result}) {
				return flush(gctx)
			}
			return nil
		})
	}

	err = g.Wait()
	if err == nil {
		err = flush(ctx)
	}

	stats.Annotated = int(annotated.Load())
	stats.Failed = int(failed.Load())
	stats.Published = int(published.Load())

	if err != nil {
		return stats, err
	}

	slog.Info("[Annotator] Run complete",
		slog.Int("total", stats.Total),
		slog.Int("skipped", stats.Skipped),
		slog.Int("annotated", stats.Annotated),
		slog.Int("failed", stats.Failed),
		slog.Duration("elapsed", time.Since(start)))
	return stats, nil
}

// RunEvery runs immediately and then on every tick until ctx is done.
// A zero interval runs once.
func (a *Annotator) RunEvery(ctx context.Context, interval time.Duration) error {
	if _, err := a.Run(ctx); err != nil {
		if interval <= 0 || errors.Is(err, context.Canceled) {
			return err
		}
		slog.Error("[Annotator] Run failed", slog.String("error", err.Error()))
	}
	if interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("[Annotator] Stopping scheduled runs")
			return nil
		case <-ticker.C:
			if _, err := a.Run(ctx); err != nil {
				slog.Error("[Annotator] Run failed", slog.String("error", err.Error()))
			}
		}
	}
}
