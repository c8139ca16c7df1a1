package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/spacesedan/reviewflow/config"
	"github.com/spacesedan/reviewflow/internal/clients"
	"github.com/spacesedan/reviewflow/internal/logging"
	"github.com/spacesedan/reviewflow/internal/settings"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "reviewctl",
	Short:        "Analyze restaurant reviews and manage the AI key",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadEnv(config.AppEnv())
		logging.InitLoggerTo(os.Stderr)
	},
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// openStore returns the settings store, backed by Valkey when it is reachable.
func openStore(cfg config.AnalysisConfig) *settings.Store {
	var kv settings.KV
	if vc, err := clients.InitValkey(config.GetValkeyConfig()); err != nil {
		slog.Debug("[CLI] Valkey unavailable", slog.String("error", err.Error()))
	} else {
		kv = vc
	}
	return settings.NewStore(kv, cfg.ServerAPIKey())
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(keyCmd)
}
