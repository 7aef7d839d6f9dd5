package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/internal/repl"
)

// ReplCommand starts the interactive calculator. Line editing is only
// enabled when standard input is a terminal.
func ReplCommand(args []string) {
	if len(args) > 0 {
		fmt.Println(`Repl Command - Start the interactive calculator

Usage: gocalc [repl]

Reads one command per line until quit, exit, q or end of input.
Type 'help' inside the session for the list of operations.`)
		return
	}

	ctx, stop := signalContext()
	defer stop()

	interp := newInterpreter()
	logger := cli.NewLogger()

	var session *repl.Session
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		session = repl.NewTerminalSession(interp, os.Stdout, logger)
	} else {
		session = repl.NewSession(interp, os.Stdin, os.Stdout, logger)
	}

	if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
