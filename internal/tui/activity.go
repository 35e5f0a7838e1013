package tui

import (
	"fmt"
	"sort"
	"time"

	"vitals/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// ActivityModel is the activity summary screen model
type ActivityModel struct {
	queryService *service.QueryService
	summary      *service.ActivitySummary
	rangeSpec    string
	loading      bool
	err          error
}

// NewActivityModel creates a new activity model
func NewActivityModel(qs *service.QueryService) ActivityModel {
	return ActivityModel{
		queryService: qs,
		rangeSpec:    service.DefaultActivityRange,
		loading:      true,
	}
}

// Init initializes the activity screen
func (m ActivityModel) Init() tea.Cmd {
	return m.loadSummary
}

type activitySummaryMsg struct {
	summary *service.ActivitySummary
	err     error
}

func (m ActivityModel) loadSummary() tea.Msg {
	summary, err := m.queryService.GetActivitySummary(m.rangeSpec, time.Now())
	return activitySummaryMsg{summary: summary, err: err}
}

// Update handles messages
func (m ActivityModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case activitySummaryMsg:
		m.loading = false
		m.err = msg.err
		m.summary = msg.summary

	case tea.KeyMsg:
		if spec, ok := rangeForKey(msg.String()); ok && spec != m.rangeSpec {
			m.rangeSpec = spec
			m.loading = true
			return m, m.loadSummary
		}
		if msg.String() == "r" {
			m.loading = true
			return m, m.loadSummary
		}
	}
	return m, nil
}

// View renders the activity screen
func (m ActivityModel) View() string {
	if m.loading {
		return "\n  Loading activity summary..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.summary == nil {
		return "\n  No activity data."
	}

	var sections []string

	title := cardTitleStyle.Render(fmt.Sprintf("Activity (%s)", rangeLabel(m.rangeSpec)))
	sections = append(sections, title)

	totalsCard := m.renderTotalsCard()
	loadCard := m.renderLoadCard()
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, totalsCard, "  ", loadCard))

	if len(m.summary.EffortByType) > 0 {
		sections = append(sections, m.renderTypeTable())
	}

	if len(m.summary.LoadHistory) > 2 {
		sections = append(sections, m.renderLoadChart())
	}

	sections = append(sections, m.renderWeeks())

	help := statusStyle.Render("  w/m/t/a: 1 week / 1 month / 3 months / all time  r: refresh")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ActivityModel) renderTotalsCard() string {
	title := cardTitleStyle.Render("Totals")

	lines := []string{
		RenderMetric("Activities", fmt.Sprintf("%d", m.summary.TotalCount), ""),
		RenderMetric("Time", formatMinutes(m.summary.TotalMinutes), ""),
		RenderMetric("Effort", fmt.Sprintf("%.0f", m.summary.TotalEffort), ""),
		RenderMetric("Streak", fmt.Sprintf("%d weeks", m.summary.Streak.CurrentStreak), ""),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(36).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m ActivityModel) renderLoadCard() string {
	title := cardTitleStyle.Render("Training Load")

	load := m.summary.Load
	lines := []string{
		RenderMetric("Load", fmt.Sprintf("%.0f", load.Score), ""),
		RenderMetric("Level", load.Level, ""),
		RenderMetric("Trend", load.Trend, ""),
	}
	if load.DaysSinceActivity >= 0 {
		lines = append(lines, RenderMetric("Last Activity", formatDaysAgo(load.DaysSinceActivity), ""))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(36).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m ActivityModel) renderTypeTable() string {
	header := tableHeaderStyle.Render(fmt.Sprintf("%-12s  %8s  %8s", "Type", "Time", "Effort"))

	types := make([]string, 0, len(m.summary.EffortByType))
	for t := range m.summary.EffortByType {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		return m.summary.EffortByType[types[i]] > m.summary.EffortByType[types[j]]
	})

	rows := []string{header}
	for _, t := range types {
		rows = append(rows, tableRowStyle.Render(fmt.Sprintf("%-12s  %8s  %8.0f",
			t,
			formatMinutes(m.summary.MinutesByType[t]),
			m.summary.EffortByType[t],
		)))
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(table)
}

func (m ActivityModel) renderLoadChart() string {
	title := cardTitleStyle.Render("Daily Training Load")

	graph := asciigraph.Plot(m.summary.LoadHistory,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(0),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

func (m ActivityModel) renderWeeks() string {
	title := cardTitleStyle.Render("Recent Weeks")

	var lines []string
	for _, w := range m.summary.Weeks {
		marker := progressEmptyStyle.Render("·")
		if w.HasActivity {
			marker = progressFullStyle.Render("█")
		}
		lines = append(lines, fmt.Sprintf("%s  %s  %d activities",
			marker, w.Start.Format("Jan 02"), len(w.Entries)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}
