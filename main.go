package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"vitals/internal/config"
	"vitals/internal/service"
	"vitals/internal/store"
	"vitals/internal/tui"
)

func main() {
	seedDemo := flag.Bool("seed-demo", false, "populate the database with demo data and exit")
	flag.Parse()

	if err := run(*seedDemo); err != nil {
		log.Fatal(err)
	}
}

func run(seedDemo bool) error {
	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	// Open database
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if seedDemo {
		if err := seedDemoData(db); err != nil {
			return fmt.Errorf("seeding demo data: %w", err)
		}
		fmt.Println("Demo data seeded. Run again without -seed-demo to browse it.")
		return nil
	}

	// Create services
	querySvc := service.NewQueryService(db, cfg.Profile.BPGuideline, cfg.Profile.WeeklyActivityGoal, cfg.Display.ChartWeeks)

	// Launch TUI
	app := tui.NewApp(db, querySvc, cfg.Display.DateFormat)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
