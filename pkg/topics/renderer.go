package topics

import (
	"github.com/charmbracelet/glamour"
)

// render converts markdown to terminal output, falling back to the raw
// text when the terminal renderer cannot be built.
func render(content string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
