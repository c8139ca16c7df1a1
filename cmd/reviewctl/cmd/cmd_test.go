package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spacesedan/reviewflow/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() { analyzeLocal = false })

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAnalyzeLocal(t *testing.T) {
	out, err := runCLI(t, "", "analyze", "--local", "The biryani was delicious and the delivery was quick")
	require.NoError(t, err)

	var got analyzeOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, models.MethodLocal, got.Method)
	assert.Equal(t, "Local Logic", got.Provenance)
	assert.Equal(t, models.SentimentPositive, got.Sentiment)
	assert.Contains(t, got.Categories, "Food Quality")
	assert.Empty(t, got.Error)
}

func TestAnalyzeReadsStdin(t *testing.T) {
	out, err := runCLI(t, "  Cold food, rude staff and a terrible wait.  \n", "analyze", "--local")
	require.NoError(t, err)

	var got analyzeOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, models.SentimentNegative, got.Sentiment)
}

func TestAnalyzeEmptyInput(t *testing.T) {
	_, err := runCLI(t, "   ", "analyze", "--local")
	require.Error(t, err)
}

func TestMask(t *testing.T) {
	assert.Equal(t, "***", mask("abc"))
	assert.Equal(t, "*****6789", mask("123456789"))
}
