// Package tui provides the interactive Bubble Tea dashboard for margincast.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"margincast/internal/engine"
	"margincast/internal/model"
	"margincast/internal/store"
	"margincast/internal/tui/components"
	"margincast/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// App is the root Bubble Tea model. Projections are cheap enough to
// recompute synchronously on every parameter change; there is no loading
// state and no background refresh.
type App struct {
	params       model.Parameters
	currency     string
	scenarioName string

	records []model.PeriodRecord
	summary model.Summary

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	statusMsg string

	// Parameter editing (huh form)
	editForm *huh.Form
	editVals editValues

	// Scenario save prompt
	saving    bool
	saveInput textinput.Model

	// Scenarios tab
	scenarios  []store.Scenario
	scenCursor int
	scenErr    error
}

const (
	minTerminalWidth = 70
	compactWidth     = 110
	maxContentWidth  = 170
	minContentHeight = 5
)

// editValues backs the huh form; huh inputs edit strings, parsing happens
// on submit.
type editValues struct {
	price     string
	unitCost  string
	fixedCost string
	months    string
	units     string
	growth    string
	scenario  string
}

// NewApp creates a new TUI app model. Projections run on the first
// WindowSizeMsg so View always has data.
func NewApp(params model.Parameters, currency, scenarioName string) App {
	a := App{
		params:       params,
		currency:     currency,
		scenarioName: scenarioName,
	}
	a.recompute()
	a.refreshScenarios()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

func (a *App) recompute() {
	records, err := engine.Project(a.params)
	if err != nil {
		a.statusMsg = err.Error()
		return
	}
	summary, err := engine.Summarize(a.params, records)
	if err != nil {
		a.statusMsg = err.Error()
		return
	}
	a.records = records
	a.summary = summary
}

func (a *App) refreshScenarios() {
	lib, err := store.Open(store.DefaultPath())
	if err != nil {
		a.scenErr = err
		return
	}
	defer func() { _ = lib.Close() }()

	a.scenarios, a.scenErr = lib.List()
	if a.scenCursor >= len(a.scenarios) {
		a.scenCursor = len(a.scenarios) - 1
	}
	if a.scenCursor < 0 {
		a.scenCursor = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.editForm != nil {
			a.editForm = a.editForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Edit form intercepts all keys while open
		if a.editForm != nil {
			return a.updateEditForm(msg)
		}

		// Scenario save prompt intercepts all keys while open
		if a.saving {
			return a.updateSaveInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit

		case "e":
			a.editVals = editValuesFrom(a.params)
			a.editForm = newEditForm(&a.editVals)
			if a.width > 0 {
				a.editForm = a.editForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.editForm.Init()

		case "w":
			a.saving = true
			a.saveInput = textinput.New()
			a.saveInput.Placeholder = "scenario name"
			a.saveInput.CharLimit = 64
			a.saveInput.SetValue(a.scenarioName)
			a.saveInput.Focus()
			return a, a.saveInput.Cursor.BlinkCmd()
		}

		// Scenarios tab navigation
		if a.activeTab == 3 {
			switch key {
			case "j", "down":
				if a.scenCursor < len(a.scenarios)-1 {
					a.scenCursor++
				}
				return a, nil
			case "k", "up":
				if a.scenCursor > 0 {
					a.scenCursor--
				}
				return a, nil
			case "enter":
				return a.loadSelectedScenario()
			case "d":
				return a.deleteSelectedScenario()
			}
		}

		// Tab navigation
		switch key {
		case "o":
			a.activeTab = 0
		case "p":
			a.activeTab = 1
		case "i":
			a.activeTab = 2
		case "s":
			a.activeTab = 3
			a.refreshScenarios()
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		}
		return a, nil
	}

	// Forward unhandled messages to the edit form (cursor blinks, etc.)
	if a.editForm != nil {
		return a.updateEditForm(msg)
	}
	if a.saving {
		var cmd tea.Cmd
		a.saveInput, cmd = a.saveInput.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) updateEditForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.editForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.editForm = f
	}

	if a.editForm.State == huh.StateCompleted {
		if params, err := a.editVals.toParameters(a.params); err != nil {
			a.statusMsg = err.Error()
		} else {
			a.params = params
			a.scenarioName = "" // edited away from the saved scenario
			a.statusMsg = ""
			a.recompute()
		}
		a.editForm = nil
		return a, nil
	}

	if a.editForm.State == huh.StateAborted {
		a.editForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) updateSaveInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(a.saveInput.Value())
		a.saving = false
		if name == "" {
			return a, nil
		}

		lib, err := store.Open(store.DefaultPath())
		if err != nil {
			a.statusMsg = err.Error()
			return a, nil
		}
		defer func() { _ = lib.Close() }()

		if err := lib.Save(name, a.params); err != nil {
			a.statusMsg = err.Error()
			return a, nil
		}
		a.scenarioName = name
		a.statusMsg = fmt.Sprintf("Saved scenario %q", name)
		a.refreshScenarios()
		return a, nil

	case "esc":
		a.saving = false
		return a, nil
	}

	var cmd tea.Cmd
	a.saveInput, cmd = a.saveInput.Update(msg)
	return a, cmd
}

func (a App) loadSelectedScenario() (tea.Model, tea.Cmd) {
	if a.scenCursor >= len(a.scenarios) {
		return a, nil
	}
	s := a.scenarios[a.scenCursor]

	// Keep presentation settings from the current parameter set
	params := s.Params
	params.LabelStyle = a.params.LabelStyle
	params.StartMonth = a.params.StartMonth

	a.params = params
	a.scenarioName = s.Name
	a.statusMsg = fmt.Sprintf("Loaded scenario %q", s.Name)
	a.recompute()
	return a, nil
}

func (a App) deleteSelectedScenario() (tea.Model, tea.Cmd) {
	if a.scenCursor >= len(a.scenarios) {
		return a, nil
	}
	name := a.scenarios[a.scenCursor].Name

	lib, err := store.Open(store.DefaultPath())
	if err != nil {
		a.statusMsg = err.Error()
		return a, nil
	}
	defer func() { _ = lib.Close() }()

	if err := lib.Delete(name); err != nil {
		a.statusMsg = err.Error()
		return a, nil
	}
	if a.scenarioName == name {
		a.scenarioName = ""
	}
	a.statusMsg = fmt.Sprintf("Deleted scenario %q", name)
	a.refreshScenarios()
	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.editForm != nil {
		return a.editForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  margincast needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Blue).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o p i s", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate scenario list"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"e", "Edit parameters"},
		{"w", "Save current parameters as scenario"},
		{"Enter", "Load selected scenario"},
		{"d", "Delete selected scenario"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// Header: tab bar + parameter pill
	pillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	pillAccentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	pill := pillStyle.Render(" ") +
		pillAccentStyle.Render(fmt.Sprintf("%dmo", a.params.HorizonMonths)) +
		pillStyle.Render(" │ ") +
		pillAccentStyle.Render(a.currency+a.params.SellingPrice.StringFixed(2)+"/unit")
	if !a.params.PriceScenarioPercent.IsZero() {
		pill += pillStyle.Render(" │ price ") +
			pillAccentStyle.Render(a.params.PriceScenarioPercent.StringFixed(1)+"%")
	}
	pill += pillStyle.Render(" ")

	pillRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		pillRowStyle.Render(pill)

	statusBar := components.RenderStatusBar(w, a.scenarioName)
	if a.statusMsg != "" {
		statusBar = components.RenderStatusBar(w, a.statusMsg)
	}

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderProjectionTab(cw)
	case 2:
		content = a.renderInsightsTab(cw)
	case 3:
		content = a.renderScenariosTab(cw, contentH)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Edit Form ──────────────────────────────────────────────────

func editValuesFrom(p model.Parameters) editValues {
	return editValues{
		price:     p.SellingPrice.String(),
		unitCost:  p.UnitCost.String(),
		fixedCost: p.FixedMonthlyCost.String(),
		months:    strconv.Itoa(p.HorizonMonths),
		units:     p.StartingUnits.String(),
		growth:    p.MonthlyGrowthPercent.String(),
		scenario:  p.PriceScenarioPercent.String(),
	}
}

func newEditForm(v *editValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Selling price per unit").
				Value(&v.price).
				Validate(validatePositiveDecimal),
			huh.NewInput().
				Title("Unit cost").
				Value(&v.unitCost).
				Validate(validateNonNegativeDecimal),
			huh.NewInput().
				Title("Fixed monthly cost").
				Value(&v.fixedCost).
				Validate(validateNonNegativeDecimal),
			huh.NewInput().
				Title("Horizon (months)").
				Value(&v.months).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Starting units per month").
				Value(&v.units).
				Validate(validateNonNegativeDecimal),
			huh.NewInput().
				Title("Monthly growth %").
				Value(&v.growth).
				Validate(validateDecimal),
			huh.NewInput().
				Title("Price scenario %").
				Value(&v.scenario).
				Validate(validateDecimal),
		).Title("Projection Parameters"),
	)
}

func (v editValues) toParameters(base model.Parameters) (model.Parameters, error) {
	p := base

	fields := []struct {
		dst *decimal.Decimal
		src string
	}{
		{&p.SellingPrice, v.price},
		{&p.UnitCost, v.unitCost},
		{&p.FixedMonthlyCost, v.fixedCost},
		{&p.StartingUnits, v.units},
		{&p.MonthlyGrowthPercent, v.growth},
		{&p.PriceScenarioPercent, v.scenario},
	}
	for _, f := range fields {
		d, err := decimal.NewFromString(strings.TrimSpace(f.src))
		if err != nil {
			return base, fmt.Errorf("%w: %q is not a number", model.ErrInvalidInput, f.src)
		}
		*f.dst = d
	}

	months, err := strconv.Atoi(strings.TrimSpace(v.months))
	if err != nil {
		return base, fmt.Errorf("%w: %q is not a whole number of months", model.ErrInvalidInput, v.months)
	}
	p.HorizonMonths = months

	if err := p.Validate(); err != nil {
		return base, err
	}
	return p, nil
}

func validateDecimal(s string) error {
	_, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

func validatePositiveDecimal(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !d.IsPositive() {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validateNonNegativeDecimal(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a whole number of months")
	}
	return nil
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color so
// gaps between cards and empty lines keep the theme background.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
