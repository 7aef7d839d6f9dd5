package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/mamaar/gocalc/pkg/calc"
)

// historyTail is how many entries the history command shows.
const historyTail = 10

const Banner = `==================================================
                   GOCALC
==================================================

Available operations:
  Basic: +, -, *, /, ^, sqrt, mod, !
  Trigonometric: sin, cos, tan
  Logarithmic: ln, log, log10
  Memory: ms, mr, mc, m+, m-
  Utility: history, clear, reset, help, quit

Type 'help' for detailed instructions.
Type 'quit' or 'exit' to exit the calculator.
--------------------------------------------------`

const HelpText = `CALCULATOR HELP
===============

Basic Operations:
  <num1> + <num2>     Addition
  <num1> - <num2>     Subtraction
  <num1> * <num2>     Multiplication
  <num1> / <num2>     Division
  <num1> ^ <num2>     Power (also **)
  <num1> mod <num2>   Modulo (result takes the sign of <num2>)
  sqrt <num>          Square root
  <num>!              Factorial

Trigonometric Functions:
  sin <angle>         Sine (in radians)
  cos <angle>         Cosine (in radians)
  tan <angle>         Tangent (in radians)
  sin <angle> deg     Sine (in degrees), likewise cos and tan

Logarithmic Functions:
  ln <num>            Natural logarithm
  log <num>           Natural logarithm (same as ln)
  log10 <num>         Base-10 logarithm
  log <num> <base>    Logarithm with custom base

Memory Operations:
  ms <num>            Store number in memory
  mr                  Recall memory
  mc                  Clear memory
  m+ <num>            Add to memory
  m- <num>            Subtract from memory

Utility Commands:
  history             Show calculation history
  clear               Clear history
  reset               Reset calculator (clear memory and history)
  help                Show this help
  quit/exit/q         Exit calculator

Examples:
  5 + 3
  sqrt 16
  sin 90 deg
  2 ^ 8
  ms 42
  mr`

// FormatHistory renders the newest limit entries, numbered from 1, followed
// by a count of the older entries that were left out.
func FormatHistory(entries []string, limit int) string {
	if len(entries) == 0 {
		return "No calculations in history."
	}
	shown := entries
	if len(shown) > limit {
		shown = shown[len(shown)-limit:]
	}

	var b strings.Builder
	b.WriteString("Calculation History:\n")
	b.WriteString(strings.Repeat("-", 30))
	for i, e := range shown {
		fmt.Fprintf(&b, "\n%2d. %s", i+1, e)
	}
	if len(entries) > limit {
		fmt.Fprintf(&b, "\n... and %d more entries", len(entries)-limit)
	}
	return b.String()
}

// WriteOutcome prints a message and result the way the interactive session does.
func WriteOutcome(w io.Writer, out Outcome) {
	if out.Message != "" {
		fmt.Fprintln(w, out.Message)
	}
	if out.HasValue {
		fmt.Fprintf(w, "Result: %s\n", calc.FormatNumber(out.Value))
	}
}

// DescribeError renders err as user-facing text. Domain and input errors are
// expected; anything else is reported as unexpected.
func DescribeError(err error) string {
	switch {
	case calc.IsDomainError(err):
		return "Error: " + err.Error()
	case IsInputError(err):
		return "Invalid input: " + err.Error()
	default:
		return "Unexpected error: " + err.Error()
	}
}
