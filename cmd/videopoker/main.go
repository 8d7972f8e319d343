package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/lox/videopoker/internal/config"
	"github.com/lox/videopoker/internal/display"
	"github.com/lox/videopoker/internal/game"
	"github.com/lox/videopoker/internal/history"
	"github.com/lox/videopoker/internal/randutil"
	"github.com/lox/videopoker/internal/sessionid"
	"github.com/lox/videopoker/internal/statistics"
	"github.com/lox/videopoker/internal/tui"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `short:"c" help:"HCL config file" default:"${config_file}" type:"path"`
	Credits int              `help:"Starting credits"`
	Bets    []int            `help:"Bet sizes to offer, comma separated" sep:","`
	Mode    string           `short:"m" help:"Interface: console or tui"`
	Theme   string           `help:"Colour theme: default or mono"`
	Seed    int64            `help:"Random seed for a reproducible session (0 = random)"`
	History string           `help:"Write a JSON transcript of the session to this file" type:"path"`
	LogFile string           `help:"Log file path"`
	Debug   bool             `help:"Enable debug logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("videopoker"),
		kong.Description("Jacks or Better video poker in the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
	)
	err := cli.Run()
	ctx.FatalIfErrorf(err)
}

// Settings loads the config file and applies flag overrides on top
func (c *CLI) Settings() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}

	if c.Credits != 0 {
		cfg.Game.StartingCredits = c.Credits
	}
	if len(c.Bets) > 0 {
		cfg.Game.Bets = c.Bets
	}
	if c.Mode != "" {
		cfg.UI.Mode = c.Mode
	}
	if c.Theme != "" {
		cfg.UI.Theme = c.Theme
	}
	if c.LogFile != "" {
		cfg.UI.LogFile = c.LogFile
	}
	if c.Debug {
		cfg.UI.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *CLI) Run() error {
	cfg, err := c.Settings()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.UI)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	id := sessionid.New()
	logger = logger.With("session", id)

	bus := game.NewEventBus()
	tracker := statistics.NewTracker()
	bus.Subscribe(tracker)
	var rec *history.Recorder
	if c.History != "" {
		rec = history.NewRecorder(id, nil)
		bus.Subscribe(rec)
	}

	styles := display.NewStyles(lipgloss.DefaultRenderer(), cfg.UI.Theme)
	opts := []game.EngineOption{
		game.WithStartingCredits(cfg.Game.StartingCredits),
		game.WithBets(cfg.Game.Bets),
		game.WithRevealDelay(cfg.Game.RevealDelay()),
		game.WithEventBus(bus),
	}
	rng := randutil.NewFromSeed(c.Seed)

	logger.Info("Starting video poker", "mode", cfg.UI.Mode, "theme", cfg.UI.Theme, "seed", c.Seed)

	var summary game.Summary
	report := func(sum game.Summary) { fmt.Print(styles.Summary(sum)) }
	switch cfg.UI.Mode {
	case config.ModeTUI:
		ui := tui.New(styles, logger, tea.WithAltScreen())
		engine := game.NewEngine(ui, rng, logger, opts...)
		err = ui.Run(ctx, func(ctx context.Context) error {
			var runErr error
			summary, runErr = engine.Run(ctx)
			return runErr
		})
	default:
		console := display.NewConsole(os.Stdin, os.Stdout, styles, logger,
			display.WithClearScreen(isatty.IsTerminal(os.Stdout.Fd())))
		engine := game.NewEngine(console, rng, logger, opts...)
		summary, err = engine.Run(ctx)
		report = console.Summary
	}

	fmt.Print(styles.Statistics(tracker.Statistics()))
	report(summary)

	if rec != nil {
		if werr := rec.WriteFile(c.History); werr != nil {
			logger.Error("Failed to write history", "path", c.History, "error", werr)
			if err == nil {
				err = werr
			}
		} else {
			logger.Info("History written", "path", c.History)
		}
	}
	return err
}

// newLogger opens the log file. The terminal belongs to the game, so logs
// never go to stdout or stderr.
func newLogger(ui config.UISettings) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(ui.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if ui.LogFile != "" {
		f, err := os.OpenFile(ui.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create log file: %w", err)
		}
		w = f
		closeFn = func() {
			if err := f.Close(); err != nil {
				log.Error("Failed to close log file", "error", err)
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "videopoker",
		Level:           level,
	})
	return logger, closeFn, nil
}
