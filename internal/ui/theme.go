package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dmitriykara/StocksApp/internal/present"
)

// Theme holds the semantic color palette.
type Theme struct {
	Border   lipgloss.Color
	Muted    lipgloss.Color
	Text     lipgloss.Color
	Primary  lipgloss.Color
	Positive lipgloss.Color
	Negative lipgloss.Color
	Error    lipgloss.Color
}

var theme = Theme{
	Border:   lipgloss.Color("#4D4C57"),
	Muted:    lipgloss.Color("#858392"),
	Text:     lipgloss.Color("#DFDBDD"),
	Primary:  lipgloss.Color("#6B50FF"),
	Positive: lipgloss.Color("#00C853"),
	Negative: lipgloss.Color("#FF3B30"),
	Error:    lipgloss.Color("#E94090"),
}

// treatmentColor returns the foreground of the change field.
func treatmentColor(t present.Treatment) lipgloss.Color {
	switch t {
	case present.Positive:
		return theme.Positive
	case present.Negative:
		return theme.Negative
	}
	return theme.Text
}
