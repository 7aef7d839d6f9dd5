package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mamaar/gocalc/internal/repl"
)

// RunCommand evaluates a script file line by line.
func RunCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Error: run requires exactly 1 argument: <script>\n")
		fmt.Fprintf(os.Stderr, "Usage: gocalc run <script>   (use - for standard input)\n")
		os.Exit(1)
	}

	ctx, stop := signalContext()
	defer stop()

	failed, err := runScriptFile(ctx, newInterpreter(), args[0], os.Stdin, os.Stdout, jsonOutput())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// runScriptFile runs the script at path, or stdin when path is "-", and
// returns the number of failed lines.
func runScriptFile(ctx context.Context, interp *repl.Interpreter, path string, stdin io.Reader, w io.Writer, asJSON bool) (int, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return 0, fmt.Errorf("open script: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	out := w
	if asJSON {
		out = io.Discard
	}
	res, err := repl.RunScript(ctx, interp, r, out)
	if err != nil {
		return res.Failed, err
	}
	if asJSON {
		if err := writeJSON(w, interp.Calculator().Snapshot()); err != nil {
			return res.Failed, err
		}
	}
	return res.Failed, nil
}
