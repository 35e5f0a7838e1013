package tui

import (
	"fmt"
	"time"

	"vitals/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// DashboardModel is the dashboard screen model
type DashboardModel struct {
	queryService *service.QueryService
	data         *service.DashboardData
	dateFormat   string
	loading      bool
	err          error
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(qs *service.QueryService, dateFormat string) DashboardModel {
	return DashboardModel{
		queryService: qs,
		dateFormat:   dateFormat,
		loading:      true,
	}
}

// Init initializes the dashboard
func (m DashboardModel) Init() tea.Cmd {
	return m.loadData
}

func (m DashboardModel) loadData() tea.Msg {
	data, err := m.queryService.GetDashboardData(time.Now())
	if err != nil {
		return dashboardDataMsg{err: err}
	}
	return dashboardDataMsg{data: data}
}

type dashboardDataMsg struct {
	data *service.DashboardData
	err  error
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadData
		}
	}
	return m, nil
}

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.loading {
		return "\n  Loading dashboard..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.data == nil {
		return "\n  No data yet. Record some nights and activities first."
	}

	var sections []string

	sleepCard := m.renderSleepCard()
	trainingCard := m.renderTrainingCard()
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, sleepCard, "  ", trainingCard)
	sections = append(sections, topRow)

	sections = append(sections, m.renderBPCard())

	if len(m.data.ScoreHistory) > 2 {
		sections = append(sections, m.renderScoreChart())
	}

	help := statusStyle.Render("Press 'r' to refresh, '2' sleep, '3' activity, '4' blood pressure")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderSleepCard() string {
	title := cardTitleStyle.Render("Last Night")

	var lines []string
	if m.data.LastSleep == nil {
		lines = append(lines, "No sleep recorded yet")
	} else {
		lines = append(lines, RenderMetric("Date", m.data.LastSleep.Date.Format(m.dateFormat), ""))
		if m.data.LastSleep.TotalSleepMinutes != nil {
			lines = append(lines, RenderMetric("Time Asleep", formatMinutes(*m.data.LastSleep.TotalSleepMinutes), ""))
		}
		lines = append(lines, m.renderScoreLines()...)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(42).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderScoreLines() []string {
	score := m.data.LastSleepScore
	if score == nil || score.Overall == nil {
		return []string{"", trendFlatStyle.Render("Score needs a few more nights of history")}
	}

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Left,
			metricLabelStyle.Render("Sleep Score"),
			scoreStyle(*score.Overall).Bold(true).Render(fmt.Sprintf("%d / 100", *score.Overall)),
		),
		"",
	}
	for _, c := range []struct {
		label string
		value *float64
	}{
		{"Duration", score.Duration},
		{"Heart Health", score.HeartHealth},
		{"Sleep Quality", score.SleepQuality},
		{"Restfulness", score.Restfulness},
	} {
		if c.value == nil {
			lines = append(lines, RenderMetric(c.label, "-", ""))
			continue
		}
		lines = append(lines, RenderMetric(c.label, fmt.Sprintf("%.0f", *c.value), ""))
	}
	return lines
}

func (m DashboardModel) renderTrainingCard() string {
	title := cardTitleStyle.Render("Training")

	load := m.data.Load
	lines := []string{
		RenderMetric("Load", fmt.Sprintf("%.0f (%s)", load.Score, load.Level), ""),
		RenderMetric("Trend", load.Trend, ""),
	}
	if load.DaysSinceActivity >= 0 {
		lines = append(lines, RenderMetric("Last Activity", formatDaysAgo(load.DaysSinceActivity), ""))
	}
	lines = append(lines, RenderMetric("Streak", fmt.Sprintf("%d weeks", m.data.Streak.CurrentStreak), ""))

	if m.data.WeeklyGoal > 0 {
		lines = append(lines, "")
		pct := float64(m.data.WeekActivityCount) / float64(m.data.WeeklyGoal)
		lines = append(lines, fmt.Sprintf("This week: %d of %d", m.data.WeekActivityCount, m.data.WeeklyGoal))
		lines = append(lines, RenderProgressBar(pct, 24))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(36).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderBPCard() string {
	title := cardTitleStyle.Render("Blood Pressure")

	var lines []string
	if m.data.LastBP == nil {
		lines = append(lines, "No readings yet")
	} else {
		r := m.data.LastBP
		reading := fmt.Sprintf("%.0f/%.0f", r.Systolic, r.Diastolic)
		if r.Pulse != nil {
			reading += fmt.Sprintf("  pulse %.0f", *r.Pulse)
		}
		lines = append(lines, RenderMetric("Latest", reading, ""))
		lines = append(lines, RenderMetric("Date", r.Date.Format(m.dateFormat), ""))
		if cat := m.data.LastBPCategory; cat != nil {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Left,
				metricLabelStyle.Render("Category"),
				severityStyle(cat.Key).Bold(true).Render(cat.Label),
			))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(42).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderScoreChart() string {
	title := cardTitleStyle.Render("Sleep Score - Last 30 Days")

	graph := asciigraph.Plot(m.data.ScoreHistory,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(0),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

func formatMinutes(minutes float64) string {
	total := int(minutes)
	h := total / 60
	m := total % 60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

func formatDaysAgo(days int) string {
	switch days {
	case 0:
		return "today"
	case 1:
		return "yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
