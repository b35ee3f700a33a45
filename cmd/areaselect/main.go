// Package main is the entry point for areaselect.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/areaselect/internal/app"
	"github.com/dshills/areaselect/internal/config"
	"github.com/dshills/areaselect/internal/logging"
	"github.com/dshills/areaselect/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type flags struct {
	configPath  string
	logLevel    string
	logFile     string
	stopForMove bool
	items       int
}

func main() {
	os.Exit(run())
}

func run() int {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCommand() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "areaselect",
		Short:         "Drag-select items in a terminal area",
		Long:          "areaselect draws a grid of items; drag on empty space to select with a box,\ndrag a selected item to move the selection, hold a multi-select key to extend it.",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApp(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "path to a TOML or YAML configuration file")
	fl.StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error, off)")
	fl.StringVar(&f.logFile, "log-file", "", "write logs to this file")
	fl.BoolVar(&f.stopForMove, "stop-for-move", true, "drag selected items instead of starting a new selection")
	fl.IntVar(&f.items, "items", 0, "number of items to lay out")
	return cmd
}

func runApp(cmd *cobra.Command, f flags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlags(cmd, cfg, f)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logCfg := logging.Config{Level: cfg.Logging.Level, File: cfg.Logging.File}
	if logCfg.File == "" {
		// The terminal belongs to the UI.
		logCfg.Output = io.Discard
	}
	logger, closer, err := logging.New(logCfg)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer closer.Close()

	term, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("creating terminal: %w", err)
	}

	application, err := app.New(app.Options{
		Config:     cfg,
		ConfigPath: f.configPath,
		Backend:    term,
		Logger:     logger,
		Override: func(c *config.Config) {
			applyFlags(cmd, c, f)
		},
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil && !errors.Is(err, app.ErrQuit) {
		return err
	}
	return nil
}

// applyFlags overrides cfg with the flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config, f flags) {
	fl := cmd.Flags()
	if fl.Changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
	if fl.Changed("log-file") {
		cfg.Logging.File = f.logFile
	}
	if fl.Changed("stop-for-move") {
		cfg.Interaction.StopForMove = f.stopForMove
	}
	if fl.Changed("items") {
		cfg.Area.Items = f.items
	}
}

