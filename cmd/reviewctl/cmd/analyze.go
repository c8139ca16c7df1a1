package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/spacesedan/reviewflow/config"
	"github.com/spacesedan/reviewflow/internal/analysis"
	"github.com/spacesedan/reviewflow/internal/clients"
	"github.com/spacesedan/reviewflow/internal/models"
	"github.com/spacesedan/reviewflow/internal/sentiment"
	"github.com/spf13/cobra"
)

var analyzeLocal bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Analyze review text (reads stdin when no text is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAnalyze,
}

type analyzeOutput struct {
	models.AnalysisResult
	Provenance string            `json:"provenance"`
	Confidence models.Confidence `json:"confidence"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}

	var coordinator *analysis.Coordinator
	if analyzeLocal {
		coordinator = analysis.NewCoordinator(sentiment.GetLocalAnalyzer())
	} else {
		cfg := config.GetAnalysisConfig()
		coordinator = analysis.NewCoordinatorFromConfig(cfg, openStore(cfg))
		defer clients.CloseValkey()
	}

	result, err := coordinator.Analyze(cmd.Context(), text)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(analyzeOutput{
		AnalysisResult: result,
		Provenance:     result.Provenance(),
		Confidence:     models.ConfidenceFor(result.NormalizedScore),
	})
}

func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return "", errors.New("no review text given")
	}
	return text, nil
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeLocal, "local", false, "Skip remote tiers and use the local analyzer")
}
