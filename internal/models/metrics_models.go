package models

type CategoryPerformance struct {
	Name     string `json:"name"`
	Total    int    `json:"total"`
	Positive int    `json:"positive"`
	Negative int    `json:"negative"`
	Score    int    `json:"score"`
}

type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type DashboardMetrics struct {
	Total               int                   `json:"total"`
	Positive            int                   `json:"positive"`
	Negative            int                   `json:"negative"`
	Neutral             int                   `json:"neutral"`
	AvgRating           float64               `json:"avg_rating"`
	SentimentScore      int                   `json:"sentiment_score"`
	CategoryPerformance []CategoryPerformance `json:"category_performance"`
	TopPositiveKeywords []KeywordCount        `json:"top_positive_keywords"`
	TopNegativeKeywords []KeywordCount        `json:"top_negative_keywords"`
}
