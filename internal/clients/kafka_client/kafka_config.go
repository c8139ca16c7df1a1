package kafka_client

import "github.com/spacesedan/reviewflow/config"

type KafkaConfig struct {
	Broker          string
	Topic           string
	TransactionalID string
}

func GetKafkaConfig() KafkaConfig {
	return KafkaConfig{
		Broker:          config.GetString("KAFKA_BROKER", "localhost:29092"),
		Topic:           config.GetString("KAFKA_ANNOTATIONS_TOPIC", KAFKA_TOPIC_REVIEW_ANNOTATIONS),
		TransactionalID: config.GetString("KAFKA_TRANSACTIONAL_ID", "reviewflow-annotator-1"),
	}
}
