// Package styles holds the lipgloss styles CLI output is rendered with.
package styles

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/boardly/internal/config"
	"github.com/thenoetrevino/boardly/internal/models"
)

var (
	// Column styles
	ListStyle lipgloss.Style
	ListWidth = 30

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Priority:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Labels"

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	DoneStyle    lipgloss.Style
)

func init() {
	Init(config.DefaultTheme())
}

// Init initializes all CLI styles with the given theme
func Init(theme config.Theme) {
	theme.ApplyDefaults()

	ListStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(0, 1).
		Width(ListWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Error))

	WarningStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Warning))

	DoneStyle = lipgloss.NewStyle().
		Strikethrough(true).
		Foreground(lipgloss.Color(theme.Subtle))
}

// Column renders one list with its cards as a bordered box in the list's
// color.
func Column(l *models.List, cards []*models.Card) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(l.Title))
	b.WriteString(SubtitleStyle.Render(" (" + strconv.Itoa(len(cards)) + ")"))

	for _, c := range cards {
		b.WriteString("\n")
		b.WriteString(Card(c))
	}

	return ListStyle.BorderForeground(lipgloss.Color(l.Color)).Render(b.String())
}

// Card renders a one-line card summary with its labels.
func Card(c *models.Card) string {
	title := ValueStyle.Render(c.Title)
	mark := "○"
	if c.Completed {
		title = DoneStyle.Render(c.Title)
		mark = SuccessStyle.Render("●")
	}

	line := mark + " " + title
	if p := Priority(c.Priority); p != "" {
		line += " " + p
	}
	for _, l := range c.Labels {
		line += " " + Badge(l)
	}
	return line
}

// Board joins rendered columns side by side.
func Board(columns []string) string {
	if len(columns) == 0 {
		return SubtitleStyle.Render("(no lists)")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

// Badge renders a label as a colored chip.
func Badge(l *models.Label) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color(l.Color)).
		Padding(0, 1).
		Render(l.Name)
}

// Priority renders a card priority, or "" when unset.
func Priority(p models.Priority) string {
	switch p {
	case models.PriorityUrgent:
		return ErrorStyle.Render("!!" + string(p))
	case models.PriorityHigh:
		return WarningStyle.Render("!" + string(p))
	case models.PriorityNone:
		return ""
	default:
		return SubtitleStyle.Render(string(p))
	}
}
