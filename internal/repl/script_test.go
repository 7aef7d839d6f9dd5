package repl

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRunScript(t *testing.T) {
	script := `# warm up
5 + 3
8 * 2

16 ^ 2
256 / 0
256 / 4
sqrt 16
64 - 4
`
	in := newTestInterpreter()
	var out bytes.Buffer

	res, err := RunScript(context.Background(), in, strings.NewReader(script), &out)
	if err != nil {
		t.Fatalf("RunScript returned error: %v", err)
	}
	if res.Lines != 7 {
		t.Errorf("Expected 7 executed lines, got %d", res.Lines)
	}
	if res.Failed != 1 {
		t.Errorf("Expected 1 failed line, got %d", res.Failed)
	}
	if !strings.Contains(out.String(), "line 6: Error: divide: division by zero is not allowed") {
		t.Errorf("Expected line-numbered error, got:\n%s", out.String())
	}

	c := in.Calculator()
	if len(c.History()) != 6 {
		t.Errorf("Expected 6 history entries, got %v", c.History())
	}
	if last, ok := c.LastResult(); !ok || last != 60 {
		t.Errorf("Expected last result 60, got %v (%v)", last, ok)
	}
}

func TestRunScript_StopsAtExit(t *testing.T) {
	in := newTestInterpreter()
	var out bytes.Buffer

	res, err := RunScript(context.Background(), in, strings.NewReader("1 + 1\nexit\n2 + 2\n"), &out)
	if err != nil {
		t.Fatalf("RunScript returned error: %v", err)
	}
	if res.Lines != 2 {
		t.Errorf("Expected 2 executed lines, got %d", res.Lines)
	}
	if strings.Contains(out.String(), "Result: 4") {
		t.Error("Expected script to stop at exit")
	}
}
