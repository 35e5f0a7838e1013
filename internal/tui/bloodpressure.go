package tui

import (
	"fmt"
	"time"

	"vitals/internal/service"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// BPModel is the blood pressure screen model
type BPModel struct {
	queryService *service.QueryService
	summary      *service.BPSummary
	rangeSpec    string
	dateFormat   string
	viewport     viewport.Model
	loading      bool
	err          error
	width        int
	height       int
	ready        bool
}

// NewBPModel creates a new blood pressure model
func NewBPModel(qs *service.QueryService, dateFormat string, width, height int) BPModel {
	m := BPModel{
		queryService: qs,
		rangeSpec:    service.DefaultBPRange,
		dateFormat:   dateFormat,
		loading:      true,
		width:        width,
		height:       height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6)
		m.ready = true
	}

	return m
}

// Init initializes the blood pressure screen
func (m BPModel) Init() tea.Cmd {
	return m.loadSummary
}

type bpSummaryMsg struct {
	summary *service.BPSummary
	err     error
}

func (m BPModel) loadSummary() tea.Msg {
	summary, err := m.queryService.GetBPSummary(m.rangeSpec, time.Now())
	return bpSummaryMsg{summary: summary, err: err}
}

// Update handles messages
func (m BPModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case bpSummaryMsg:
		m.loading = false
		m.err = msg.err
		m.summary = msg.summary
		if m.ready {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		if m.summary != nil {
			m.viewport.SetContent(m.renderContent())
		}

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

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the blood pressure screen
func (m BPModel) View() string {
	if m.loading {
		return "\n  Loading blood pressure summary..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	footer := statusStyle.Render("  j/k or arrows: scroll  w/m/t/a: range  r: refresh")

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m BPModel) renderContent() string {
	if m.summary == nil || len(m.summary.Readings) == 0 {
		return "\n  No readings in this range."
	}

	var sections []string

	sections = append(sections, "")
	sections = append(sections, cardTitleStyle.Render(fmt.Sprintf("Blood Pressure (%s, %d readings)",
		rangeLabel(m.rangeSpec), m.summary.Stats.Count)))

	if m.summary.Latest != nil {
		sections = append(sections, m.renderLatest())
	}
	sections = append(sections, m.renderStats())
	sections = append(sections, m.renderDistribution())
	sections = append(sections, m.renderHistory())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m BPModel) renderLatest() string {
	title := cardTitleStyle.Render("Latest Reading")

	latest := m.summary.Latest
	r := latest.Reading

	reading := fmt.Sprintf("%.0f/%.0f", r.Systolic, r.Diastolic)
	if r.Pulse != nil {
		reading += fmt.Sprintf("  pulse %.0f", *r.Pulse)
	}

	lines := []string{
		RenderMetric("Reading", reading, ""),
		RenderMetric("Date", r.Date.Format(m.dateFormat), ""),
	}
	if latest.Category != nil {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Left,
			metricLabelStyle.Render("Category"),
			severityStyle(latest.Category.Key).Bold(true).Render(latest.Category.Label),
		))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(46).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m BPModel) renderStats() string {
	header := tableHeaderStyle.Render(fmt.Sprintf("%-16s  %8s  %8s  %8s",
		"", "Min", "Avg", "Max"))

	rows := []string{header}
	stats := m.summary.Stats

	format := func(v *float64) string {
		if v == nil {
			return "-"
		}
		return fmt.Sprintf("%.0f", *v)
	}
	addRow := func(label string, min, avg, max *float64) {
		rows = append(rows, tableRowStyle.Render(fmt.Sprintf("%-16s  %8s  %8s  %8s",
			label, format(min), format(avg), format(max))))
	}

	addRow("Systolic", stats.Systolic.Min, stats.Systolic.Avg, stats.Systolic.Max)
	addRow("Diastolic", stats.Diastolic.Min, stats.Diastolic.Avg, stats.Diastolic.Max)
	addRow("Pulse", stats.Pulse.Min, stats.Pulse.Avg, stats.Pulse.Max)
	addRow("Pulse Pressure", stats.PulsePressure.Min, stats.PulsePressure.Avg, stats.PulsePressure.Max)
	addRow("MAP", stats.MeanArterialPressure.Min, stats.MeanArterialPressure.Avg, stats.MeanArterialPressure.Max)

	if prev := m.summary.PreviousStats; prev != nil && prev.Systolic.Avg != nil && stats.Systolic.Avg != nil {
		rows = append(rows, "")
		rows = append(rows, trendFlatStyle.Render(fmt.Sprintf("Prior period avg: %.0f/%.0f over %d readings",
			*prev.Systolic.Avg, *prev.Diastolic.Avg, prev.Count)))
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(table)
}

func (m BPModel) renderDistribution() string {
	title := cardTitleStyle.Render("Category Distribution")

	var lines []string
	for _, d := range m.summary.Distribution {
		bar := RenderProgressBar(d.Percent/100, 20)
		label := severityStyle(d.Category.Key).Render(fmt.Sprintf("%-22s", d.Category.Label))
		lines = append(lines, fmt.Sprintf("%s %s %3d (%.0f%%)", label, bar, d.Count, d.Percent))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m BPModel) renderHistory() string {
	title := cardTitleStyle.Render("History")

	header := tableHeaderStyle.Render(fmt.Sprintf("%-12s  %-9s  %8s  %6s  %-22s",
		"Date", "Time", "Reading", "Pulse", "Category"))

	rows := []string{header}
	// Newest first for reading history.
	for i := len(m.summary.Readings) - 1; i >= 0; i-- {
		cr := m.summary.Readings[i]
		r := cr.Reading

		pulse := "-"
		if r.Pulse != nil {
			pulse = fmt.Sprintf("%.0f", *r.Pulse)
		}
		category := "-"
		if cr.Category != nil {
			category = cr.Category.Label
		}
		timeOfDay := r.TimeOfDay
		if timeOfDay == "" {
			timeOfDay = "-"
		}

		rows = append(rows, tableRowStyle.Render(fmt.Sprintf("%-12s  %-9s  %4.0f/%-3.0f  %6s  %-22s",
			r.Date.Format("Jan 02"), timeOfDay, r.Systolic, r.Diastolic, pulse, category)))
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}
