package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gosuri/uilive"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/internal/repl"
	"github.com/mamaar/gocalc/pkg/calc"
	"github.com/mamaar/gocalc/pkg/watch"
)

// WatchCommand re-runs a script every time it changes until interrupted.
func WatchCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Error: watch requires exactly 1 argument: <script>\n")
		fmt.Fprintf(os.Stderr, "Usage: gocalc [-debounce 200ms] watch <script>\n")
		os.Exit(1)
	}

	ctx, stop := signalContext()
	defer stop()

	debounce := 200 * time.Millisecond
	if cli.GlobalFlags != nil {
		debounce = *cli.GlobalFlags.Debounce
	}

	err := watchScript(ctx, args[0], debounce, cli.NewLogger(), os.Stdout)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// watchScript renders the script once and again after every debounced
// change, replacing the previous rendering in place. Each run starts from a
// fresh calculator.
func watchScript(ctx context.Context, path string, debounce time.Duration, logger *slog.Logger, w io.Writer) error {
	if path == "-" {
		return fmt.Errorf("cannot watch standard input")
	}
	watcher, err := watch.NewWatcher(path, debounce, logger)
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	live := uilive.New()
	live.Out = w

	render := func() {
		var buf bytes.Buffer
		fmt.Fprintf(&buf, "Watching %s (updated %s)\n\n", watcher.Path(), time.Now().Format("15:04:05"))

		interp := repl.NewInterpreter(calc.New(), logger)
		failed, err := runScriptFile(ctx, interp, watcher.Path(), nil, &buf, false)
		if err != nil {
			fmt.Fprintf(&buf, "Error: %v\n", err)
		} else if failed > 0 {
			fmt.Fprintf(&buf, "\n%d line(s) failed\n", failed)
		}

		_, _ = live.Write(buf.Bytes())
		if err := live.Flush(); err != nil {
			logger.Warn("render failed", "error", err)
		}
	}

	batches := make(chan []watch.ChangeEvent)
	errCh := make(chan error, 1)
	go func() { errCh <- watcher.Run(ctx, batches) }()

	render()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errCh:
			return err
		case events := <-batches:
			logger.Debug("script changed", "events", len(events))
			render()
		}
	}
}
