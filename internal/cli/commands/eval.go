package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mamaar/gocalc/internal/repl"
	"github.com/mamaar/gocalc/pkg/calc"
)

// EvalCommand evaluates a single line given as arguments.
func EvalCommand(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: eval requires an expression\n")
		fmt.Fprintf(os.Stderr, "Usage: gocalc eval <expression...>\n")
		os.Exit(1)
	}

	if err := runEval(newInterpreter(), args, os.Stdout, jsonOutput()); err != nil {
		fmt.Fprintln(os.Stderr, repl.DescribeError(err))
		os.Exit(1)
	}
}

// runEval joins args into one line and executes it. With asJSON the
// calculator state is printed instead of the plain result.
func runEval(interp *repl.Interpreter, args []string, w io.Writer, asJSON bool) error {
	line := strings.Join(args, " ")
	out, err := interp.Execute(line)
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(w, interp.Calculator().Snapshot())
	}
	if out.Message != "" && !out.HasValue {
		fmt.Fprintln(w, out.Message)
	}
	if out.HasValue {
		fmt.Fprintln(w, calc.FormatNumber(out.Value))
	}
	return nil
}
