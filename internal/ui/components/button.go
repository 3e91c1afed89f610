package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// Button is a styled, focusable action row.
type Button struct {
	Label  string
	Active bool
}

// NewButton creates a new button.
func NewButton(label string, active bool) Button {
	return Button{Label: label, Active: active}
}

// View renders the button centered in width columns.
func (b Button) View(width int) string {
	style := theme.ButtonInactive
	label := b.Label
	if b.Active {
		style = theme.ButtonActive
		label = "▸ " + label
	}
	return style.Width(width).Align(lipgloss.Center).Render(label)
}
