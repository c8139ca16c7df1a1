package processing

import (
	"math"
	"slices"
	"strings"

	"github.com/spacesedan/reviewflow/internal/models"
)

const TOP_KEYWORDS = 5

type categoryStats struct {
	models.CategoryPerformance
	scoreSum float64
}

// CalculateMetrics aggregates the dashboard figures for a set of reviews.
func CalculateMetrics(reviews []models.Review) models.DashboardMetrics {
	metrics := models.DashboardMetrics{
		CategoryPerformance: []models.CategoryPerformance{},
		TopPositiveKeywords: []models.KeywordCount{},
		TopNegativeKeywords: []models.KeywordCount{},
	}
	if len(reviews) == 0 {
		return metrics
	}

	metrics.Total = len(reviews)
	ratingSum := 0
	stats := map[string]*categoryStats{}
	var order []string
	keywords := map[string]map[string]int{
		models.SentimentPositive: {},
		models.SentimentNegative: {},
	}

	for _, r := range reviews {
		switch r.Sentiment {
		case models.SentimentPositive:
			metrics.Positive++
		case models.SentimentNegative:
			metrics.Negative++
		case models.SentimentNeutral:
			metrics.Neutral++
		}
		ratingSum += r.Rating

		for _, name := range r.Categories {
			s, ok := stats[name]
			if !ok {
				s = &categoryStats{CategoryPerformance: models.CategoryPerformance{Name: name}}
				stats[name] = s
				order = append(order, name)
			}
			s.Total++
			s.scoreSum += r.Score
			switch r.Sentiment {
			case models.SentimentPositive:
				s.Positive++
			case models.SentimentNegative:
				s.Negative++
			}
		}

		if counts, ok := keywords[r.Sentiment]; ok {
			for _, word := range r.Keywords {
				counts[word]++
			}
		}
	}

	metrics.AvgRating = math.Round(float64(ratingSum)/float64(metrics.Total)*10) / 10
	metrics.SentimentScore = jsRound(float64(metrics.Positive-metrics.Negative) / float64(metrics.Total) * 100)

	for _, name := range order {
		s := stats[name]
		s.Score = jsRound(s.scoreSum / float64(s.Total) * 100)
		metrics.CategoryPerformance = append(metrics.CategoryPerformance, s.CategoryPerformance)
	}
	slices.SortStableFunc(metrics.CategoryPerformance, func(a, b models.CategoryPerformance) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		return strings.Compare(a.Name, b.Name)
	})

	metrics.TopPositiveKeywords = topKeywords(keywords[models.SentimentPositive])
	metrics.TopNegativeKeywords = topKeywords(keywords[models.SentimentNegative])
	return metrics
}

func topKeywords(counts map[string]int) []models.KeywordCount {
	top := make([]models.KeywordCount, 0, len(counts))
	for word, count := range counts {
		top = append(top, models.KeywordCount{Word: word, Count: count})
	}
	slices.SortFunc(top, func(a, b models.KeywordCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Word, b.Word)
	})
	if len(top) > TOP_KEYWORDS {
		top = top[:TOP_KEYWORDS]
	}
	return top
}

// jsRound rounds half toward positive infinity, matching the dashboard's
// historical figures.
func jsRound(x float64) int {
	return int(math.Floor(x + 0.5))
}
