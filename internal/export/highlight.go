package export

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Highlight renders a snippet as a syntax highlighted tsx block for display.
// It is cosmetic: the copied text is always the plain Serialize output.
func Highlight(snippet string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle("dark")}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}

	out, err := renderer.Render("```tsx\n" + snippet + "\n```\n")
	if err != nil {
		return "", fmt.Errorf("render snippet: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}

// HighlightOrPlain falls back to the unmodified snippet when highlighting fails.
func HighlightOrPlain(snippet string, width int) string {
	out, err := Highlight(snippet, width)
	if err != nil || strings.TrimSpace(out) == "" {
		return snippet
	}
	return out
}
