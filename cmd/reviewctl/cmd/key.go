package cmd

import (
	"fmt"
	"strings"

	"github.com/spacesedan/reviewflow/config"
	"github.com/spacesedan/reviewflow/internal/clients"
	"github.com/spf13/cobra"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the stored AI API key",
}

var keySetCmd = &cobra.Command{
	Use:   "set <api-key>",
	Short: "Store an API key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore(config.GetAnalysisConfig())
		defer clients.CloseValkey()

		if err := store.SetAPIKey(cmd.Context(), strings.TrimSpace(args[0])); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "API key saved")
		return nil
	},
}

var keyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored API key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore(config.GetAnalysisConfig())
		defer clients.CloseValkey()

		if err := store.ClearAPIKey(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "API key cleared")
		return nil
	},
}

var keyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether an API key is configured",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore(config.GetAnalysisConfig())
		defer clients.CloseValkey()

		key, err := store.APIKey(cmd.Context())
		switch {
		case key != "":
			fmt.Fprintf(cmd.OutOrStdout(), "API key configured (%s)\n", mask(key))
		case err != nil:
			fmt.Fprintf(cmd.OutOrStdout(), "No API key configured (store error: %v)\n", err)
		default:
			fmt.Fprintln(cmd.OutOrStdout(), "No API key configured")
		}
		return nil
	},
}

// mask keeps only the last four characters of key.
func mask(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

func init() {
	keyCmd.AddCommand(keySetCmd)
	keyCmd.AddCommand(keyClearCmd)
	keyCmd.AddCommand(keyStatusCmd)
}
