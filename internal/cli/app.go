package cli

import (
	"flag"
	"log"
	"log/slog"
	"os"
)

// DefaultCommand runs when no command is given.
const DefaultCommand = "repl"

// App represents the gocalc application
type App struct {
	flags *Flags
}

// NewApp creates a new application instance
func NewApp() *App {
	return &App{}
}

// Initialize sets up the application with flags and configuration
func (app *App) Initialize() {
	log.SetFlags(0) // Remove timestamp from log output
	ParseFlags(Usage)
	app.flags = GlobalFlags
}

// Run executes the application logic with the provided runner
func (app *App) Run(runner *Runner) {
	if *app.flags.Version {
		ShowVersion()
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		runner.Execute(DefaultCommand, nil)
		return
	}

	runner.Execute(args[0], args[1:])
}

// NewLogger returns the structured logger for the current flags. Logs go to
// stderr so they never mix with calculator output.
func NewLogger() *slog.Logger {
	level := slog.LevelWarn
	if GlobalFlags != nil && *GlobalFlags.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
