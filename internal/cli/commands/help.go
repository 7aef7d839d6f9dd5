package commands

import (
	"fmt"
	"os"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/internal/repl"
)

// HelpCommand handles help requests for specific commands
func HelpCommand(args []string) {
	if len(args) > 0 {
		cmd := args[0]
		switch cmd {
		case "repl":
			ReplCommand([]string{"-h"})

		case "eval":
			fmt.Println(`Eval Command - Evaluate a single line

Usage: gocalc eval <expression...>

The arguments are joined with spaces and evaluated as one line, so
"gocalc eval 5 + 3" and "gocalc eval '5 + 3'" are equivalent. Quote
operators your shell would expand, such as * and !.

With -json the calculator state (memory, history, last result) is printed
instead of the result.

Examples:
  gocalc eval 2 ^ 10
  gocalc eval "5!"
  gocalc -json eval log 8 2`)

		case "run":
			fmt.Println(`Run Command - Evaluate a script

Usage: gocalc run <script>

Each non-blank line not starting with '#' is evaluated in order against one
calculator. Failing lines are reported with their line number and the script
continues. The exit status is 1 when any line failed.

Use - as the script to read from standard input.

Examples:
  gocalc run budget.calc
  echo "5 + 3" | gocalc run -`)

		case "watch":
			fmt.Println(`Watch Command - Re-run a script on every change

Usage: gocalc [-debounce 200ms] watch <script>

The script is evaluated once and again after each change, each time against
a fresh calculator. Output is redrawn in place. Press Ctrl-C to stop.`)

		case "operations":
			fmt.Println(repl.HelpText)

		case "version":
			VersionCommand([]string{"-h"})

		default:
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
			cli.Usage()
			os.Exit(1)
		}
	} else {
		cli.Usage()
	}
}
