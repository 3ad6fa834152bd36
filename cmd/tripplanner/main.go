package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/alexanderramin/tripplanner/internal/cli"
	"github.com/alexanderramin/tripplanner/internal/planapi"
	"github.com/alexanderramin/tripplanner/internal/planner"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

var errorColor = color.New(color.FgRed, color.Bold)

func main() {
	if err := run(); err != nil {
		errorColor.Fprint(os.Stderr, "Error: ")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// A .env file in the working directory is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	cfg := planapi.LoadConfig()

	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}

	app := &cli.App{Config: cfg}

	// The TUI owns stdout, so call logs only ever go to stderr and only
	// when asked for.
	if cfg.LogCalls {
		app.CallObserver = planapi.NewLogObserver(os.Stderr, logLevel)
		app.UseCaseObserver = planner.NewLogUseCaseObserver(os.Stderr, logLevel)
	}

	// Detect interactive terminal for the TUI entrypoint and plan spinner.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Client and planner are built after flags are parsed.
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
