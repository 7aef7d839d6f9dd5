package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// ScriptResult summarizes a script run.
type ScriptResult struct {
	Lines  int // lines that were executed
	Failed int // lines that returned an error
}

// RunScript executes r line by line. Blank lines and lines starting with '#'
// are skipped. A failing line is reported as "line N: ..." and the script
// continues; an exit command stops it early.
func RunScript(ctx context.Context, interp *Interpreter, r io.Reader, w io.Writer) (ScriptResult, error) {
	var res ScriptResult
	sc := bufio.NewScanner(r)
	lineNo := 0

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		res.Lines++
		out, err := interp.Execute(line)
		if err != nil {
			res.Failed++
			fmt.Fprintf(w, "line %d: %s\n", lineNo, DescribeError(err))
			continue
		}
		if out.Quit {
			break
		}
		WriteOutcome(w, out)
	}
	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("read script: %w", err)
	}

	interp.logger.Debug("script finished", "lines", res.Lines, "failed", res.Failed)
	return res, nil
}
