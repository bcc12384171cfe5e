package tui

import (
	"fmt"
	"strings"

	"margincast/internal/cli"
	"margincast/internal/tui/components"
	"margincast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderScenariosTab(cw, contentH int) string {
	t := theme.Active

	if a.scenErr != nil {
		return lipgloss.NewStyle().Foreground(t.Red).
			Render("  Scenario library unavailable: " + a.scenErr.Error())
	}

	if len(a.scenarios) == 0 {
		hint := lipgloss.NewStyle().Foreground(t.TextMuted).Render(
			"  No saved scenarios.\n\n  Press [w] to save the current parameters under a name.")
		return hint
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	nameW := 20
	var list strings.Builder
	list.WriteString(headerStyle.Render(fmt.Sprintf(" %-*s %9s %9s %9s %8s %8s  %s",
		nameW, "Name", "Price", "Cost", "Fixed", "Months", "Growth", "Updated")))
	list.WriteString("\n")

	visible := contentH - 4
	if visible < 1 {
		visible = 1
	}
	start := 0
	if a.scenCursor >= visible {
		start = a.scenCursor - visible + 1
	}

	for i := start; i < len(a.scenarios) && i < start+visible; i++ {
		s := a.scenarios[i]
		p := s.Params

		name := s.Name
		if len(name) > nameW {
			name = name[:nameW-1] + "…"
		}

		line := fmt.Sprintf(" %-*s %9s %9s %9s %8d %7s%%  %s",
			nameW, name,
			cli.FormatMoney(a.currency, p.SellingPrice),
			cli.FormatMoney(a.currency, p.UnitCost),
			cli.FormatMoney(a.currency, p.FixedMonthlyCost),
			p.HorizonMonths,
			p.MonthlyGrowthPercent.StringFixed(1),
			s.UpdatedAt.Format("2006-01-02"),
		)

		if i == a.scenCursor {
			list.WriteString(selStyle.Render(line))
		} else {
			list.WriteString(rowStyle.Render(line))
		}
		list.WriteString("\n")
	}

	list.WriteString("\n")
	list.WriteString(dimStyle.Render(" [enter] load  [d] delete  [w] save current"))

	return components.ContentCard(
		fmt.Sprintf("Saved Scenarios (%d)", len(a.scenarios)),
		strings.TrimRight(list.String(), "\n"), cw)
}
