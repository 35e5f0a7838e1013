package tui

import (
	"vitals/internal/service"
	"vitals/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenSleep
	ScreenActivity
	ScreenBloodPressure
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	dashboard DashboardModel
	sleep     SleepModel
	activity  ActivityModel
	bp        BPModel
	help      HelpModel

	// Services
	db           *store.DB
	queryService *service.QueryService

	// Display preferences
	dateFormat string

	// Window dimensions
	width  int
	height int

	// Status message
	status string
}

// NewApp creates a new App with all dependencies
func NewApp(db *store.DB, queryService *service.QueryService, dateFormat string) *App {
	if dateFormat == "" {
		dateFormat = "Mon Jan 2"
	}
	return &App{
		screen:       ScreenDashboard,
		db:           db,
		queryService: queryService,
		dateFormat:   dateFormat,
		dashboard:    NewDashboardModel(queryService, dateFormat),
		sleep:        NewSleepModel(queryService),
		activity:     NewActivityModel(queryService),
		bp:           NewBPModel(queryService, dateFormat, 0, 0),
		help:         NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.dashboard.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "1":
			a.screen = ScreenDashboard
			a.dashboard = NewDashboardModel(a.queryService, a.dateFormat)
			return a, a.dashboard.Init()
		case "2":
			a.screen = ScreenSleep
			return a, a.sleep.Init()
		case "3":
			a.screen = ScreenActivity
			return a, a.activity.Init()
		case "4":
			a.screen = ScreenBloodPressure
			a.bp = NewBPModel(a.queryService, a.dateFormat, a.width, a.height)
			return a, a.bp.Init()
		case "?":
			a.prevScreen = a.screen
			a.screen = ScreenHelp
			return a, nil
		case "esc":
			if a.screen == ScreenHelp {
				a.screen = a.prevScreen
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenDashboard:
		var m tea.Model
		m, cmd = a.dashboard.Update(msg)
		a.dashboard = m.(DashboardModel)
	case ScreenSleep:
		var m tea.Model
		m, cmd = a.sleep.Update(msg)
		a.sleep = m.(SleepModel)
	case ScreenActivity:
		var m tea.Model
		m, cmd = a.activity.Update(msg)
		a.activity = m.(ActivityModel)
	case ScreenBloodPressure:
		var m tea.Model
		m, cmd = a.bp.Update(msg)
		a.bp = m.(BPModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenDashboard:
		content = a.dashboard.View()
	case ScreenSleep:
		content = a.sleep.View()
	case ScreenActivity:
		content = a.activity.View()
	case ScreenBloodPressure:
		content = a.bp.View()
	case ScreenHelp:
		content = a.help.View()
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("Vitals - Personal Health Tracker")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Dashboard", ScreenDashboard},
		{"2", "Sleep", ScreenSleep},
		{"3", "Activity", ScreenActivity},
		{"4", "Blood Pressure", ScreenBloodPressure},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	if a.status != "" {
		return statusStyle.Render(a.status)
	}
	return ""
}
