package kafka_client

import "time"

const (
	KAFKA_TOPIC_REVIEW_ANNOTATIONS = "review-annotations" // annotated reviews produced by the annotator
)

const (
	MAX_RETRIES   = 3
	FLUSH_TIMEOUT = 5 * time.Second
)
