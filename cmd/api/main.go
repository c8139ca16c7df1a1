package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spacesedan/reviewflow/config"
	"github.com/spacesedan/reviewflow/internal/analysis"
	"github.com/spacesedan/reviewflow/internal/classifier"
	"github.com/spacesedan/reviewflow/internal/clients"
	"github.com/spacesedan/reviewflow/internal/db"
	"github.com/spacesedan/reviewflow/internal/handlers"
	"github.com/spacesedan/reviewflow/internal/logging"
	"github.com/spacesedan/reviewflow/internal/monitoring"
	"github.com/spacesedan/reviewflow/internal/sentiment"
	"github.com/spacesedan/reviewflow/internal/settings"
)

func main() {
	config.LoadEnv(config.AppEnv())
	logging.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	analysisCfg := config.GetAnalysisConfig()
	serverCfg := config.GetServerConfig()

	var monitors []*monitoring.Monitor

	var kv settings.KV
	if vc, err := clients.InitValkey(config.GetValkeyConfig()); err != nil {
		slog.Warn("[Main] Valkey unavailable, settings are read-only",
			slog.String("error", err.Error()))
	} else {
		kv = vc
		defer clients.CloseValkey()
		monitors = append(monitors, monitoring.NewMonitor("valkey", vc.Ping, monitoring.HEALTHCHECK_TIMER))
	}
	store := settings.NewStore(kv, analysisCfg.ServerAPIKey())

	var serverClassifier handlers.Classifier
	if key := analysisCfg.ServerAPIKey(); key != "" {
		gen, err := clients.NewGenerator(ctx, analysisCfg, key)
		if err != nil {
			slog.Error("[Main] Failed to create server AI client", slog.String("error", err.Error()))
			os.Exit(1)
		}
		serverClassifier = classifier.NewRemoteClassifier(gen, analysisCfg.RemoteTimeout)
	} else {
		slog.Warn("[Main] Server AI key not configured",
			slog.String("provider", analysisCfg.Provider),
			slog.Bool("local_fallback", serverCfg.LocalFallback))
	}

	// The server is itself the analysis service; its tiered endpoint must not call back into it.
	tieredCfg := analysisCfg
	tieredCfg.ServiceURL = ""

	reviews, err := db.NewReviewSource(ctx, config.GetReviewSourceConfig())
	if err != nil {
		slog.Error("[Main] Failed to open review source", slog.String("error", err.Error()))
		os.Exit(1)
	}
	monitors = append(monitors, monitoring.NewMonitor("reviews", func(ctx context.Context) bool {
		_, err := reviews.ListReviews(ctx)
		return err == nil
	}, monitoring.HEALTHCHECK_TIMER))

	for _, m := range monitors {
		go m.Run(ctx)
	}

	h := handlers.NewHandler(handlers.Deps{
		ServerClassifier: serverClassifier,
		LocalFallback:    serverCfg.LocalFallback,
		Local:            sentiment.GetLocalAnalyzer(),
		Tiered:           analysis.NewCoordinatorFromConfig(tieredCfg, store),
		Reviews:          reviews,
		Settings:         store,
		Checks:           func() map[string]bool { return monitoring.Snapshot(monitors...) },
	})

	srv := &http.Server{
		Addr:              ":" + serverCfg.Port,
		Handler:           handlers.Logger(slog.Default())(handlers.CORS(h.Routes())),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("[Main] API server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] Server failed", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("[Main] Shutting down API server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("[Main] Graceful shutdown failed", slog.String("error", err.Error()))
	}
}
