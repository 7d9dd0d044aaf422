// Package config loads Stay Saturated settings from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete game configuration
type Config struct {
	Game *GameSettings `hcl:"game,block"`
	UI   *UISettings   `hcl:"ui,block"`
}

// GameSettings contains deck and player settings
type GameSettings struct {
	DataFile      string `hcl:"data_file,optional"`
	HandSize      int    `hcl:"hand_size,optional"`
	ComputerName  string `hcl:"computer_name,optional"`
	DefaultName   string `hcl:"default_name,optional"`
	SkipMalformed bool   `hcl:"skip_malformed,optional"`
	Seed          *int64 `hcl:"seed,optional"`
	ResultFile    string `hcl:"result_file,optional"`
}

// UISettings contains console and logging settings
type UISettings struct {
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
	NoColor  bool   `hcl:"no_color,optional"`
	TUI      bool   `hcl:"tui,optional"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Game: &GameSettings{
			DataFile:     "",
			HandSize:     5,
			ComputerName: "bot",
			DefaultName:  "Player",
		},
		UI: &UISettings{
			LogLevel: "warn",
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Game == nil {
		c.Game = defaults.Game
	}
	if c.UI == nil {
		c.UI = defaults.UI
	}

	if c.Game.HandSize == 0 {
		c.Game.HandSize = defaults.Game.HandSize
	}
	if c.Game.ComputerName == "" {
		c.Game.ComputerName = defaults.Game.ComputerName
	}
	if c.Game.DefaultName == "" {
		c.Game.DefaultName = defaults.Game.DefaultName
	}
	if c.UI.LogLevel == "" {
		c.UI.LogLevel = defaults.UI.LogLevel
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game.DataFile == "" {
		return fmt.Errorf("data file is required")
	}

	if c.Game.HandSize < 5 {
		return fmt.Errorf("hand size must be at least 5, got %d", c.Game.HandSize)
	}

	if c.Game.ComputerName == "" {
		return fmt.Errorf("computer name is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	return nil
}
