package tui

import (
	"fmt"
	"time"

	"vitals/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// SleepModel is the sleep trends screen model
type SleepModel struct {
	queryService *service.QueryService
	trends       *service.SleepTrends
	rangeSpec    string
	loading      bool
	err          error
}

// NewSleepModel creates a new sleep model
func NewSleepModel(qs *service.QueryService) SleepModel {
	return SleepModel{
		queryService: qs,
		rangeSpec:    service.DefaultSleepRange,
		loading:      true,
	}
}

// Init initializes the sleep screen
func (m SleepModel) Init() tea.Cmd {
	return m.loadTrends
}

type sleepTrendsMsg struct {
	trends *service.SleepTrends
	err    error
}

func (m SleepModel) loadTrends() tea.Msg {
	trends, err := m.queryService.GetSleepTrends(m.rangeSpec, time.Now())
	return sleepTrendsMsg{trends: trends, err: err}
}

// Update handles messages
func (m SleepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sleepTrendsMsg:
		m.loading = false
		m.err = msg.err
		m.trends = msg.trends

	case tea.KeyMsg:
		if spec, ok := rangeForKey(msg.String()); ok && spec != m.rangeSpec {
			m.rangeSpec = spec
			m.loading = true
			return m, m.loadTrends
		}
		if msg.String() == "r" {
			m.loading = true
			return m, m.loadTrends
		}
	}
	return m, nil
}

// View renders the sleep screen
func (m SleepModel) View() string {
	if m.loading {
		return "\n  Loading sleep trends..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.trends == nil || len(m.trends.Entries) == 0 {
		return "\n  No sleep recorded in this range."
	}

	var sections []string

	title := cardTitleStyle.Render(fmt.Sprintf("Sleep Trends (%s, %d nights)", rangeLabel(m.rangeSpec), len(m.trends.Entries)))
	sections = append(sections, title)

	sections = append(sections, m.renderTrendsTable())

	if len(m.trends.ScoreHistory) > 2 {
		sections = append(sections, m.renderScoreChart())
	}

	if m.trends.BaselineCount < 3 {
		sections = append(sections, warningStyle.Render("  Scores unlock after three nights of history."))
	}

	help := statusStyle.Render("  w/m/t/a: 1 week / 1 month / 3 months / all time  r: refresh")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m SleepModel) renderTrendsTable() string {
	header := tableHeaderStyle.Render(fmt.Sprintf("%-16s  %8s  %8s  %8s  %10s",
		"Metric", "Min", "Avg", "Max", "vs Prior"))

	rows := []string{header}
	for _, row := range []struct {
		label string
		trend service.MetricTrend
		unit  string
	}{
		{"Time Asleep", m.trends.TotalSleep, "m"},
		{"Resting HR", m.trends.RestingHR, ""},
		{"HRV Low", m.trends.HRVLow, ""},
		{"HRV High", m.trends.HRVHigh, ""},
		{"Deep %", m.trends.DeepPct, "%"},
		{"REM %", m.trends.REMPct, "%"},
		{"Awake %", m.trends.AwakePct, "%"},
		{"Restorative %", m.trends.Restorative, "%"},
	} {
		rows = append(rows, tableRowStyle.Render(formatTrendRow(row.label, row.trend, row.unit)))
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(table)
}

func (m SleepModel) renderScoreChart() string {
	title := cardTitleStyle.Render("Sleep Score")

	graph := asciigraph.Plot(m.trends.ScoreHistory,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(0),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

// formatTrendRow renders one metric line of the trends table.
func formatTrendRow(label string, trend service.MetricTrend, unit string) string {
	format := func(v *float64) string {
		if v == nil {
			return "-"
		}
		return fmt.Sprintf("%.1f%s", *v, unit)
	}

	change := ""
	if trend.ChangePct != nil {
		change = fmt.Sprintf("%+.1f%%", *trend.ChangePct)
	}

	return fmt.Sprintf("%-16s  %8s  %8s  %8s  %10s",
		label,
		format(trend.Current.Min),
		format(trend.Current.Avg),
		format(trend.Current.Max),
		change,
	)
}

// rangeForKey maps a range-toggle key to its range token.
func rangeForKey(key string) (string, bool) {
	switch key {
	case "w":
		return "1w", true
	case "m":
		return "1m", true
	case "t":
		return "3m", true
	case "a":
		return "all", true
	}
	return "", false
}

func rangeLabel(spec string) string {
	switch spec {
	case "1w":
		return "1 week"
	case "1m":
		return "1 month"
	case "3m":
		return "3 months"
	case "all":
		return "all time"
	}
	return spec + " days"
}
