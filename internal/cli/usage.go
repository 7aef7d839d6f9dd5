package cli

import (
	"flag"
	"fmt"
	"os"
)

// Usage prints the usage information for the gocalc command
func Usage() {
	fmt.Fprintf(os.Stderr, `GoCalc - Stateful calculator with memory and history

Usage: gocalc [options] [command] [arguments]

Commands:
  repl
    Start the interactive calculator (default)

  eval <expression...>
    Evaluate a single line, e.g. "5 + 3" or "sin 90 deg"

  run <script>
    Evaluate a script line by line ("-" reads standard input)

  watch <script>
    Re-run a script every time it changes

  version
    Show version information

  help [command]
    Show help for a specific command

Options:
`)
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
  # Start an interactive session
  gocalc

  # Evaluate one expression
  gocalc eval 2 ^ 10

  # Quote operators the shell would expand
  gocalc eval "6 * 7"

  # Run a script and print the resulting history as JSON
  gocalc -json run budget.calc

  # Re-run a script on every save
  gocalc -debounce 500ms watch budget.calc
`)
}
