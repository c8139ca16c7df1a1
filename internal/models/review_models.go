package models

// Review is owned by the review source; the pipeline only reads it.
type Review struct {
	ID           string   `json:"id" dynamodbav:"id"`
	CustomerName string   `json:"customer_name" dynamodbav:"customer_name"`
	Date         string   `json:"date" dynamodbav:"date"`
	Time         string   `json:"time" dynamodbav:"time"`
	Rating       int      `json:"rating" dynamodbav:"rating"`
	Text         string   `json:"text" dynamodbav:"text"`
	Sentiment    string   `json:"sentiment" dynamodbav:"sentiment"`
	Score        float64  `json:"score" dynamodbav:"score"`
	Categories   []string `json:"categories" dynamodbav:"categories"`
	Keywords     []string `json:"keywords" dynamodbav:"keywords"`
	OrderItems   []string `json:"order_items" dynamodbav:"order_items"`
}

// AnnotatedReview pairs a review with a fresh analysis of its text.
type AnnotatedReview struct {
	Review   Review         `json:"review"`
	Analysis AnalysisResult `json:"analysis"`
}

type ReviewFilter struct {
	Sentiment string
	Query     string
}
