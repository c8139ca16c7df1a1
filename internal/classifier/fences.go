package classifier

import (
	"strings"

	"github.com/russross/blackfriday/v2"
)

// StripFences returns the body of the first fenced code block in raw, or raw
// with stray ```json / ``` markers removed when no complete block exists.
// Indented blocks are ignored; they are ordinary pretty-printed JSON.
func StripFences(raw string) string {
	md := blackfriday.New(blackfriday.WithExtensions(blackfriday.FencedCode))
	root := md.Parse([]byte(raw))

	var code string
	found := false
	root.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if entering && node.Type == blackfriday.CodeBlock && node.IsFenced {
			code = string(node.Literal)
			found = true
			return blackfriday.Terminate
		}
		return blackfriday.GoToNext
	})

	if found && strings.TrimSpace(code) != "" {
		return strings.TrimSpace(code)
	}

	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}
