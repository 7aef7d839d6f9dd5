package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/internal/repl"
	"github.com/mamaar/gocalc/pkg/calc"
)

// OutputJSON outputs data in JSON format
func OutputJSON(data interface{}) {
	if err := writeJSON(os.Stdout, data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}

func writeJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// newInterpreter returns an interpreter over a fresh calculator using the
// logger configured by the global flags.
func newInterpreter() *repl.Interpreter {
	return repl.NewInterpreter(calc.New(), cli.NewLogger())
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func jsonOutput() bool {
	return cli.GlobalFlags != nil && *cli.GlobalFlags.Json
}
