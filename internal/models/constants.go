package models

import "strings"

// ============================================================================
// LIST COLORS
// ============================================================================

// DefaultListColor is used when a list is created without a color or with one
// outside the palette.
const DefaultListColor = "#0079BF"

// ListColors is the fixed palette lists may use.
var ListColors = []string{
	"#0079BF", // blue
	"#D29034", // orange
	"#519839", // green
	"#B04632", // red
	"#89609E", // purple
	"#CD5A91", // pink
	"#4BBFDA", // light blue
	"#00AECC", // teal
	"#838C91", // gray
}

// IsValidListColor reports whether color is in the palette.
func IsValidListColor(color string) bool {
	color = strings.ToUpper(strings.TrimSpace(color))
	for _, c := range ListColors {
		if c == color {
			return true
		}
	}
	return false
}

// NormalizeListColor returns color in palette form, or DefaultListColor.
func NormalizeListColor(color string) string {
	if !IsValidListColor(color) {
		return DefaultListColor
	}
	return strings.ToUpper(strings.TrimSpace(color))
}

// ============================================================================
// PRIORITY
// ============================================================================

// Priority is a card's urgency. The zero value means unset.
type Priority string

const (
	PriorityNone   Priority = ""
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ParsePriority maps user input to a Priority.
func ParsePriority(s string) (Priority, bool) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case PriorityNone, PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return p, true
	}
	return PriorityNone, false
}
