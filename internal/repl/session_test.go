package repl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/mamaar/gocalc/pkg/calc"
)

func runSession(t *testing.T, input string) (string, *Interpreter) {
	t.Helper()
	in := newTestInterpreter()
	var out bytes.Buffer
	s := NewSession(in, strings.NewReader(input), &out, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	return out.String(), in
}

func TestSession_EvaluatesLines(t *testing.T) {
	output, in := runSession(t, "5 + 3\nsqrt 16\nquit\n10 * 10\n")

	for _, want := range []string{Banner, "Result: 8", "Result: 4", "Calculator closed."} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, output)
		}
	}
	if strings.Contains(output, "Result: 100") {
		t.Error("Expected lines after quit to be ignored")
	}
	if len(in.Calculator().History()) != 2 {
		t.Errorf("Expected 2 history entries, got %v", in.Calculator().History())
	}
}

func TestSession_ErrorsDoNotStopLoop(t *testing.T) {
	output, in := runSession(t, "5 / 0\nfoo + 1\n2 + 2\n")

	if !strings.Contains(output, "Error: divide: division by zero is not allowed") {
		t.Errorf("Expected domain error text, got:\n%s", output)
	}
	if !strings.Contains(output, `Invalid input: invalid number format: "foo"`) {
		t.Errorf("Expected input error text, got:\n%s", output)
	}
	if !strings.Contains(output, "Result: 4") {
		t.Errorf("Expected loop to continue after errors, got:\n%s", output)
	}
	if got := in.Calculator().History(); len(got) != 1 || got[0] != "2 + 2 = 4" {
		t.Errorf("Expected only the successful line in history, got %v", got)
	}
}

func TestSession_EOF(t *testing.T) {
	output, _ := runSession(t, "1 + 1")

	if !strings.Contains(output, "Goodbye!") {
		t.Errorf("Expected goodbye on end of input, got:\n%s", output)
	}
	if !strings.Contains(output, "Result: 2") {
		t.Errorf("Expected last line without newline to be evaluated, got:\n%s", output)
	}
}

func TestSession_MemoryEcho(t *testing.T) {
	output, _ := runSession(t, "ms 42\nmr\n")

	if !strings.Contains(output, "Stored 42 in memory.\nResult: 42") {
		t.Errorf("Expected store echo, got:\n%s", output)
	}
	if !strings.Contains(output, "Memory: 42\nResult: 42") {
		t.Errorf("Expected recall echo, got:\n%s", output)
	}
}

func TestSession_CancelledContext(t *testing.T) {
	in := NewInterpreter(calc.New(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	s := NewSession(in, strings.NewReader("1 + 1\n"), io.Discard, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if len(in.Calculator().History()) != 0 {
		t.Error("Expected no lines to be evaluated after cancellation")
	}
}

func TestSession_CancelWhileReading(t *testing.T) {
	pr, pw := io.Pipe()
	defer func() { _ = pw.Close() }()

	in := newTestInterpreter()
	s := NewSession(in, pr, io.Discard, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// Nothing is ever written, so Run is blocked waiting for a line.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after the context was cancelled")
	}
}
