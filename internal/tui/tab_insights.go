package tui

import (
	"strings"

	"margincast/internal/cli"
	"margincast/internal/insight"
	"margincast/internal/model"
	"margincast/internal/tui/components"
	"margincast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderInsightsTab(cw int) string {
	t := theme.Active
	s := a.summary
	var b strings.Builder

	signalColor := func(sig model.Signal) lipgloss.Color {
		switch sig {
		case model.SignalHealthy, model.SignalScaling:
			return t.Green
		case model.SignalThin, model.SignalFlat:
			return t.Yellow
		default:
			return t.Red
		}
	}

	// Row 1: signal badges
	sigs := insight.Signals(s)
	badges := make([]components.Metric, 0, len(sigs))
	axes := []string{"Profitability", "Growth"}
	for i, sig := range sigs {
		label := "Signal"
		if i < len(axes) {
			label = axes[i]
		}
		badges = append(badges, components.Metric{
			Label: label,
			Value: sig.String(),
			Color: signalColor(sig),
		})
	}
	badges = append(badges, components.Metric{
		Label: "Health Score",
		Value: cli.FormatScore(s.HealthScore),
	})
	b.WriteString(components.MetricCardRow(badges, cw))
	b.WriteString("\n")

	// Row 2: narrative report
	bodyStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.Surface).
		Width(components.CardInnerWidth(cw))
	b.WriteString(components.ContentCard("Assessment",
		bodyStyle.Render(insight.Report(s)), cw))
	b.WriteString("\n")

	// Row 3: break-even economics
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)

	var be strings.Builder
	be.WriteString(labelStyle.Render("Contribution/unit  "))
	be.WriteString(valStyle.Render(cli.FormatMoney(a.currency, s.ContributionPerUnit)))
	be.WriteString("\n")
	be.WriteString(labelStyle.Render("Fixed cost/month   "))
	be.WriteString(valStyle.Render(cli.FormatMoney(a.currency, a.params.FixedMonthlyCost)))
	be.WriteString("\n")
	if s.BreakEven.Achievable {
		be.WriteString(labelStyle.Render("Break-even volume  "))
		be.WriteString(valStyle.Render(cli.FormatUnits(s.BreakEven.UnitsPerMonth) + " units/month"))
	} else {
		be.WriteString(warnStyle.Render("Break-even is not achievable: contribution per unit is zero or negative."))
	}
	b.WriteString(components.ContentCard("Break-even", be.String(), cw))

	return b.String()
}
