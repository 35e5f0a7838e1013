package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	navSection := m.renderSection("Navigation", []keyHelp{
		{"1", "Dashboard"},
		{"2", "Sleep trends"},
		{"3", "Activity summary"},
		{"4", "Blood pressure"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	})
	sections = append(sections, navSection)

	rangeSection := m.renderSection("Time Ranges (sleep, activity, blood pressure)", []keyHelp{
		{"w", "Last week"},
		{"m", "Last month"},
		{"t", "Last three months"},
		{"a", "All time"},
		{"r", "Refresh"},
	})
	sections = append(sections, rangeSection)

	metricsSection := m.renderMetricsHelp()
	sections = append(sections, metricsSection)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderMetricsHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render("Metrics Explained"))
	lines = append(lines, "")

	metrics := []struct {
		name string
		desc string
	}{
		{"Sleep Score", "Last night vs your personal baseline. 50 = your average night."},
		{"Restorative %", "Deep plus REM sleep share of the night."},
		{"Effort", "Per-activity exertion from heart-rate zone minutes or intensity."},
		{"Training Load", "Decayed running total of daily effort. Rest days trim it gradually."},
		{"Streak", "Consecutive Monday-to-Sunday weeks with at least one activity."},
		{"Pulse Pressure", "Systolic minus diastolic."},
		{"MAP", "Mean arterial pressure: diastolic plus a third of pulse pressure."},
	}

	mutedStyle := lipgloss.NewStyle().Foreground(mutedColor)

	for _, metric := range metrics {
		lines = append(lines, "  "+helpKeyStyle.Render(metric.name))
		lines = append(lines, "  "+mutedStyle.Render(metric.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
