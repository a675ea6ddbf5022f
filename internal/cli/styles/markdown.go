package styles

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// DescriptionWidth is the wrap width for rendered descriptions.
const DescriptionWidth = 80

// renderers caches glamour renderers by wrap width
var renderers sync.Map // map[int]*glamour.TermRenderer

func renderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := renderers.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	renderers.Store(width, r)
	return r, nil
}

// Markdown renders a card or board description as terminal markdown. If
// rendering fails the text is returned unchanged.
func Markdown(text string, width int) string {
	if strings.TrimSpace(text) == "" {
		return SubtitleStyle.Italic(true).Render("No description")
	}

	r, err := renderer(width)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}
