package components

import (
	"margincast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. scenario names the active
// saved scenario, empty when running on ad-hoc parameters.
func RenderStatusBar(width int, scenario string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [e]dit  [w]save scenario  [?]help  [q]uit"
	right := ""
	if scenario != "" {
		right = "Scenario: " + scenario + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
