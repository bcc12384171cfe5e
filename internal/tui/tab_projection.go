package tui

import (
	"fmt"
	"strings"

	"margincast/internal/cli"
	"margincast/internal/tui/components"
	"margincast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderProjectionTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	if len(a.records) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).Render("  No projection computed.")
	}

	// Monthly detail table
	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	lossStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	gainStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)

	cols := []struct {
		name  string
		width int
	}{
		{"Month", 9},
		{"Units", 8},
		{"Revenue", 11},
		{"COGS", 11},
		{"Gross", 11},
		{"Net", 12},
		{"Net %", 9},
	}

	var head strings.Builder
	head.WriteString(" ")
	for i, c := range cols {
		if i == 0 {
			fmt.Fprintf(&head, "%-*s", c.width, c.name)
		} else {
			fmt.Fprintf(&head, "%*s", c.width, c.name)
		}
	}

	var table strings.Builder
	table.WriteString(headerStyle.Render(head.String()))
	table.WriteString("\n")

	for _, r := range a.records {
		net := cli.FormatMoney(a.currency, r.NetProfit)
		netStyle := gainStyle
		if r.NetProfit.IsNegative() {
			netStyle = lossStyle
		}

		line := fmt.Sprintf(" %-*s%*s%*s%*s%*s",
			cols[0].width, shortLabel(r.Label),
			cols[1].width, cli.FormatUnits(r.UnitsSold),
			cols[2].width, cli.FormatMoney(a.currency, r.Revenue),
			cols[3].width, cli.FormatMoney(a.currency, r.COGS),
			cols[4].width, cli.FormatMoney(a.currency, r.GrossProfit),
		)
		table.WriteString(rowStyle.Render(line))
		table.WriteString(netStyle.Render(fmt.Sprintf("%*s", cols[5].width, net)))
		table.WriteString(rowStyle.Render(fmt.Sprintf("%*s", cols[6].width, cli.FormatPercent(r.NetMarginPct))))
		table.WriteString("\n")
	}

	b.WriteString(components.ContentCard("Monthly Projection",
		strings.TrimRight(table.String(), "\n"), cw))
	b.WriteString("\n")

	// Net profit bars: the loss months are the interesting part
	vals := make([]float64, len(a.records))
	labels := make([]string, len(a.records))
	formatted := make([]string, len(a.records))
	for i, r := range a.records {
		vals[i] = r.NetProfit.InexactFloat64()
		labels[i] = shortLabel(r.Label)
		formatted[i] = cli.FormatMoney(a.currency, r.NetProfit)
	}
	b.WriteString(components.ContentCard("Net Profit by Month",
		components.SignedBarList(vals, labels, formatted, components.CardInnerWidth(cw)), cw))

	return b.String()
}
