package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spacesedan/reviewflow/config"
	"github.com/spacesedan/reviewflow/internal/analysis"
	"github.com/spacesedan/reviewflow/internal/clients"
	"github.com/spacesedan/reviewflow/internal/clients/kafka_client"
	"github.com/spacesedan/reviewflow/internal/db"
	"github.com/spacesedan/reviewflow/internal/logging"
	"github.com/spacesedan/reviewflow/internal/processing"
	"github.com/spacesedan/reviewflow/internal/settings"
)

func main() {
	config.LoadEnv(config.AppEnv())
	logging.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	analysisCfg := config.GetAnalysisConfig()
	annotatorCfg := config.GetAnnotatorConfig()

	source, err := db.NewReviewSource(ctx, config.GetReviewSourceConfig())
	if err != nil {
		slog.Error("[Main] Failed to open review source", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var kv settings.KV
	var tracker processing.ProcessedTracker
	if vc, err := clients.InitValkey(config.GetValkeyConfig()); err != nil {
		slog.Warn("[Main] Valkey unavailable, every review will be annotated",
			slog.String("error", err.Error()))
	} else {
		kv = vc
		tracker = vc
		defer clients.CloseValkey()
	}

	var producer *kafka_client.Producer
	for {
		producer, err = kafka_client.NewProducer(ctx, kafka_client.GetKafkaConfig())
		if err == nil {
			break
		}

		slog.Warn("[Main] Kafka init failed, retrying...", slog.String("error", err.Error()))
		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
		}
	}
	defer producer.Close()

	coordinator := analysis.NewCoordinatorFromConfig(analysisCfg, settings.NewStore(kv, analysisCfg.ServerAPIKey()))
	annotator := processing.NewAnnotator(source, coordinator, producer, tracker,
		clients.VALKEY_PROCESSED_REVIEWS_KEY, annotatorCfg.Concurrency)

	slog.Info("[Main] Starting annotator",
		slog.Int("concurrency", annotatorCfg.Concurrency),
		slog.Duration("interval", annotatorCfg.Interval))

	if err := annotator.RunEvery(ctx, annotatorCfg.Interval); err != nil {
		slog.Error("[Main] Annotator failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
