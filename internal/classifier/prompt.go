package classifier

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spacesedan/reviewflow/internal/sentiment"
)

const promptTemplate = `Analyze the sentiment of the following food delivery customer review.
Review: %s

Output strictly valid JSON with this schema and nothing else:
{
  "sentiment": "positive" | "negative" | "neutral",
  "score": number (-1.0 to 1.0),
  "emotions": ["emotion1", "emotion2"],
  "categories": [zero or more of %s],
  "keywords": ["keyword1", "keyword2"]
}`

// BuildPrompt embeds the review as a JSON string so quotes in the text
// cannot break out of the instructions.
func BuildPrompt(text string) string {
	quoted, _ := json.Marshal(text)

	names := sentiment.Categories()
	for i, name := range names {
		names[i] = `"` + name + `"`
	}

	return fmt.Sprintf(promptTemplate, quoted, strings.Join(names, ", "))
}
