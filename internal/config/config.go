package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	Profile ProfileConfig `json:"profile"`
	Display DisplayConfig `json:"display"`
}

// ProfileConfig holds personal health settings
type ProfileConfig struct {
	BPGuideline        string  `json:"bp_guideline"`
	SleepTargetHours   float64 `json:"sleep_target_hours"`
	WeeklyActivityGoal int     `json:"weekly_activity_goal"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	DateFormat string `json:"date_format"`
	ChartWeeks int    `json:"chart_weeks"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Profile: ProfileConfig{
			BPGuideline:        "acc-aha",
			SleepTargetHours:   8,
			WeeklyActivityGoal: 3,
		},
		Display: DisplayConfig{
			DateFormat: "Mon Jan 2",
			ChartWeeks: 8,
		},
	}
}

// Load reads the configuration from ~/.vitals/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Profile.BPGuideline == "" {
		cfg.Profile.BPGuideline = defaults.Profile.BPGuideline
	}
	if cfg.Profile.SleepTargetHours == 0 {
		cfg.Profile.SleepTargetHours = defaults.Profile.SleepTargetHours
	}
	if cfg.Profile.WeeklyActivityGoal == 0 {
		cfg.Profile.WeeklyActivityGoal = defaults.Profile.WeeklyActivityGoal
	}
	if cfg.Display.DateFormat == "" {
		cfg.Display.DateFormat = defaults.Display.DateFormat
	}
	if cfg.Display.ChartWeeks == 0 {
		cfg.Display.ChartWeeks = defaults.Display.ChartWeeks
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.vitals/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates a default config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	return Save(&example)
}

// Validate checks if the config has sensible values
func (c *Config) Validate() error {
	if c.Profile.BPGuideline != "" && c.Profile.BPGuideline != "acc-aha" && c.Profile.BPGuideline != "esc-esh" {
		return fmt.Errorf("profile.bp_guideline must be \"acc-aha\" or \"esc-esh\", got %q", c.Profile.BPGuideline)
	}
	if c.Profile.SleepTargetHours < 0 || c.Profile.SleepTargetHours > 16 {
		return fmt.Errorf("profile.sleep_target_hours must be between 0 and 16, got %v", c.Profile.SleepTargetHours)
	}
	if c.Profile.WeeklyActivityGoal < 0 || c.Profile.WeeklyActivityGoal > 14 {
		return fmt.Errorf("profile.weekly_activity_goal must be between 0 and 14, got %d", c.Profile.WeeklyActivityGoal)
	}
	if c.Display.ChartWeeks < 0 || c.Display.ChartWeeks > 52 {
		return fmt.Errorf("display.chart_weeks must be between 0 and 52, got %d", c.Display.ChartWeeks)
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".vitals", "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".vitals"), nil
}
