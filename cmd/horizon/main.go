package main

import (
	"github.com/alecthomas/kong"

	"horizon/internal/cli"
	"horizon/internal/config"
	apperrors "horizon/internal/errors"
	"horizon/internal/logger"
	"horizon/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/horizon/config.yaml"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init  cli.InitCmd `cmd:"" help:"Initialize horizon storage with starter events."`
	Tui   cli.TuiCmd  `cmd:"" help:"Launch the interactive countdown TUI." default:"1"`
	Event struct {
		Add    cli.EventAddCmd    `cmd:"" help:"Add a new countdown event."`
		Delete cli.EventDeleteCmd `cmd:"" help:"Delete an event by ID."`
		List   cli.EventListCmd   `cmd:"" help:"List all events ordered by date."`
	} `cmd:"" help:"Manage countdown events."`
	Next     cli.NextCmd       `cmd:"" help:"Show the widget view of the next upcoming event."`
	Ideas    cli.IdeasCmd      `cmd:"" help:"Get AI celebration ideas for an event."`
	Holidays cli.HolidaysCmd   `cmd:"" help:"Discover public holidays for a country."`
	Export   cli.ExportCmd     `cmd:"" help:"Export events as an iCalendar file."`
	ConfigC  cli.ConfigShowCmd `cmd:"" name:"config" help:"Show the effective configuration."`
	Key      struct {
		Set    cli.KeySetCmd    `cmd:"" help:"Store the AI API key in the OS keyring."`
		Delete cli.KeyDeleteCmd `cmd:"" help:"Remove the AI API key from the OS keyring."`
		Status cli.KeyStatusCmd `cmd:"" help:"Show credential availability."`
	} `cmd:"" help:"Manage the AI credential."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("horizon"),
		kong.Description("Holiday countdown tracker with AI-assisted suggestions"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		apperrors.Fatal(err)
	}
	if CLI.Debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		apperrors.Fatalf("invalid configuration: %v", err)
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: config.ConfigDir()}); err != nil {
		apperrors.Fatalf("failed to initialize logging: %v", err)
	}

	store := storage.NewProvider(cfg.Storage.Path)
	defer store.Close()

	appCtx := &cli.Context{
		Store:  store,
		Config: cfg,
	}

	if err := ctx.Run(appCtx); err != nil {
		logger.Error("command failed", "error", err)
		apperrors.Fatal(err)
	}
}
