package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// Selector is a labelled row whose value cycles in place.
type Selector struct {
	Label   string
	Value   string
	Focused bool
}

// NewSelector creates a selector row.
func NewSelector(label, value string, focused bool) Selector {
	return Selector{Label: label, Value: value, Focused: focused}
}

// View renders the row, e.g. "▸ Operation   ◂ Addition ▸".
func (s Selector) View(labelWidth int) string {
	label := lipgloss.NewStyle().Width(labelWidth).Render(s.Label)
	if s.Focused {
		return theme.Selected.Render("▸ "+label) +
			theme.Answer.Render("◂ "+s.Value+" ▸")
	}
	return theme.Unselected.Render("  "+label) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+s.Value)
}
