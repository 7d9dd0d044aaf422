package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/staysaturated/internal/config"
	"github.com/lox/staysaturated/internal/deck"
	"github.com/lox/staysaturated/internal/game"
	"github.com/lox/staysaturated/internal/randutil"
	"github.com/lox/staysaturated/internal/tui"
)

type CLI struct {
	Version       kong.VersionFlag `short:"v" help:"Show version"`
	Data          string           `short:"d" env:"STAYSAT_DATA" help:"Comma-separated data file (liquid values in column 3, vapor in column 4)"`
	Config        string           `short:"c" env:"STAYSAT_CONFIG" default:"staysaturated.hcl" help:"HCL config file (ignored when missing)"`
	Seed          *int64           `env:"STAYSAT_SEED" help:"Random seed for a reproducible deal"`
	Name          string           `help:"Player name (skips the name prompt)"`
	HandSize      int              `help:"Cards per hand (at least 5)"`
	SkipMalformed bool             `help:"Skip malformed data lines instead of aborting"`
	TUI           bool             `name:"tui" help:"Use the interactive terminal prompts"`
	NoColor       bool             `help:"Disable colored output"`
	LogLevel      string           `help:"Log level (debug, info, warn, error)"`
	LogFile       string           `help:"Write logs to this file instead of stderr"`
	ResultFile    string           `help:"Write a JSON summary of the finished game to this file"`
}

// resolveConfig layers command line values over the config file
func (c *CLI) resolveConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", c.Config, err)
	}

	if c.Data != "" {
		cfg.Game.DataFile = c.Data
	}
	if c.Seed != nil {
		cfg.Game.Seed = c.Seed
	}
	if c.HandSize != 0 {
		cfg.Game.HandSize = c.HandSize
	}
	if c.SkipMalformed {
		cfg.Game.SkipMalformed = true
	}
	if c.TUI {
		cfg.UI.TUI = true
	}
	if c.NoColor {
		cfg.UI.NoColor = true
	}
	if c.LogLevel != "" {
		cfg.UI.LogLevel = c.LogLevel
	}
	if c.LogFile != "" {
		cfg.UI.LogFile = c.LogFile
	}
	if c.ResultFile != "" {
		cfg.Game.ResultFile = c.ResultFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, &deck.ConfigurationError{Path: cfg.Game.DataFile, Err: err}
	}
	return cfg, nil
}

func newLogger(ui *config.UISettings, stderr io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(ui.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	w := stderr
	closer := func() {}
	if ui.LogFile != "" {
		f, err := os.OpenFile(ui.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closer = func() {
			if err := f.Close(); err != nil {
				fmt.Fprintf(stderr, "failed to close log file: %v\n", err)
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "staysaturated",
		Level:           level,
	})
	return logger, closer, nil
}

// Exec loads the data file, deals both hands and plays a single session
func (c *CLI) Exec(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := c.resolveConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.UI, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	src, err := deck.LoadFile(cfg.Game.DataFile, deck.ReadOptions{
		SkipMalformed: cfg.Game.SkipMalformed,
		Logger:        logger.WithPrefix("deck"),
	})
	if err != nil {
		logger.Error("Failed to load data", "path", cfg.Game.DataFile, "error", err)
		return err
	}
	logger.Info("Loaded data", "path", cfg.Game.DataFile, "records", src.Len(), "skipped", src.Skipped)

	renderer := game.NewRenderer(stdout, cfg.UI.NoColor)
	var prompter game.Prompter = game.NewLinePrompter(stdin, stdout)
	if cfg.UI.TUI {
		prompter = tui.NewPrompter(stdin, stdout, logger)
	}

	renderer.Welcome()
	name := c.Name
	if name == "" {
		name, err = game.PromptName(ctx, prompter, cfg.Game.DefaultName)
		if err != nil {
			return err
		}
	}
	renderer.Greet(name)

	seed := randutil.Seed(cfg.Game.Seed)
	logger.Info("Dealing hands", "seed", seed, "hand_size", cfg.Game.HandSize)

	deal, err := game.Setup(src, randutil.New(seed), cfg.Game.HandSize)
	if err != nil {
		logger.Error("Failed to deal hands", "error", err)
		return err
	}
	logger.Debug("Dealt hands", "user", deal.User, "computer", deal.Computer, "pool", deal.Pool.Remaining())

	user, err := game.NewPlayer(name, deal.User)
	if err != nil {
		return err
	}
	computer, err := game.NewPlayer(cfg.Game.ComputerName, deal.Computer)
	if err != nil {
		return err
	}

	session, err := game.NewSession(game.SessionOptions{
		User:     user,
		Computer: computer,
		Pool:     deal.Pool,
		Prompter: prompter,
		Renderer: renderer,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	res, err := session.Play(ctx)
	if err != nil {
		logger.Error("Session failed", "error", err)
		return err
	}

	if cfg.Game.ResultFile != "" {
		if err := writeReport(cfg.Game.ResultFile, newReport(user, computer, seed, res)); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		logger.Info("Wrote result", "path", cfg.Game.ResultFile)
	}
	return nil
}
