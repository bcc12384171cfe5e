package tui

import (
	"fmt"
	"strings"

	"margincast/internal/cli"
	"margincast/internal/tui/components"
	"margincast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	s := a.summary
	var b strings.Builder

	// Row 1: Metric cards
	profitColor := t.Green
	if s.TotalNetProfit.IsNegative() {
		profitColor = t.Red
	}

	beValue := "—"
	beDetail := "not achievable"
	if s.BreakEven.Achievable {
		beValue = cli.FormatUnits(s.BreakEven.UnitsPerMonth)
		beDetail = "units/month"
	}

	cards := []components.Metric{
		{Label: "Revenue", Value: cli.FormatMoney(a.currency, s.TotalRevenue),
			Detail: cli.FormatMoney(a.currency, s.MeanRevenue) + "/mo"},
		{Label: "Net Profit", Value: cli.FormatMoney(a.currency, s.TotalNetProfit),
			Detail: cli.FormatMoney(a.currency, s.MeanNetProfit) + "/mo", Color: profitColor},
		{Label: "Net Margin", Value: cli.FormatPercent(s.AvgNetMarginPct),
			Detail: "gross " + cli.FormatPercent(s.AvgGrossMarginPct)},
		{Label: "Break-even", Value: beValue, Detail: beDetail},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Monthly revenue chart
	if len(a.records) > 0 {
		chartVals := make([]float64, len(a.records))
		chartLabels := make([]string, len(a.records))
		for i, r := range a.records {
			chartVals[i] = r.Revenue.InexactFloat64()
			chartLabels[i] = shortLabel(r.Label)
		}
		chartH := 10
		if a.isCompactLayout() {
			chartH = 7
		}
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Monthly Revenue (%dmo)", s.Periods),
			components.BarChart(chartVals, chartLabels, t.Blue, a.currency, components.CardInnerWidth(cw), chartH),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 3: Health score + trend sparkline
	halves := components.LayoutRow(cw, 2)

	meterW := components.CardInnerWidth(halves[0]) - 8
	if meterW < 10 {
		meterW = 10
	}
	scoreStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	healthBody := scoreStyle.Render(cli.FormatScore(s.HealthScore)) + " " +
		cli.RenderMeter(float64(s.HealthScore)/100, meterW)
	healthCard := components.ContentCard("Health Score", healthBody, halves[0])

	profitVals := make([]float64, len(a.records))
	for i, r := range a.records {
		profitVals[i] = r.NetProfit.InexactFloat64()
	}
	sparkColor := t.Green
	if s.TotalNetProfit.IsNegative() {
		sparkColor = t.Red
	}
	trendCard := components.ContentCard("Net Profit Trend",
		components.Sparkline(profitVals, sparkColor), halves[1])

	if a.isCompactLayout() {
		b.WriteString(healthCard)
		b.WriteString("\n")
		b.WriteString(trendCard)
	} else {
		b.WriteString(components.CardRow([]string{healthCard, trendCard}))
	}

	return b.String()
}

// shortLabel compresses "Month 12" to "12" for chart x-axes; calendar
// labels are already three characters.
func shortLabel(label string) string {
	if rest, ok := strings.CutPrefix(label, "Month "); ok {
		return rest
	}
	return label
}
