package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamaar/gocalc/internal/repl"
	"github.com/mamaar/gocalc/pkg/calc"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testInterpreter() *repl.Interpreter {
	return repl.NewInterpreter(calc.New(), discardLogger())
}

func TestRunEval(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runEval(testInterpreter(), []string{"5", "+", "3"}, &out, false))
	assert.Equal(t, "8\n", out.String())
}

func TestRunEval_QuotedLine(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runEval(testInterpreter(), []string{"sqrt 16"}, &out, false))
	assert.Equal(t, "4\n", out.String())
}

func TestRunEval_DomainError(t *testing.T) {
	var out bytes.Buffer
	err := runEval(testInterpreter(), []string{"1", "/", "0"}, &out, false)
	require.Error(t, err)
	assert.True(t, calc.IsDomainError(err))
	assert.Empty(t, out.String())
}

func TestRunEval_JSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runEval(testInterpreter(), []string{"2", "^", "10"}, &out, true))

	var snap calc.Snapshot
	require.NoError(t, json.Unmarshal(out.Bytes(), &snap))
	assert.Equal(t, []string{"2 ^ 10 = 1024"}, snap.History)
	require.NotNil(t, snap.LastResult)
	assert.Equal(t, 1024.0, *snap.LastResult)
}

func TestRunEval_JSONOverflow(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runEval(testInterpreter(), []string{"1e308", "*", "10"}, &out, true))
	assert.Contains(t, out.String(), `"last_result": "+Inf"`)

	var snap calc.Snapshot
	require.NoError(t, json.Unmarshal(out.Bytes(), &snap))
	assert.Equal(t, []string{"1e+308 × 10 = +Inf"}, snap.History)
	require.NotNil(t, snap.LastResult)
	assert.True(t, math.IsInf(*snap.LastResult, 1))
}

func TestRunEval_Overflow(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runEval(testInterpreter(), []string{"1e308", "+", "1e308"}, &out, false))
	assert.Equal(t, "+Inf\n", out.String())
}

func writeScript(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "budget.calc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunScriptFile(t *testing.T) {
	path := writeScript(t, t.TempDir(), "# totals\n5 + 3\n1 / 0\n8 * 2\n")

	var out bytes.Buffer
	failed, err := runScriptFile(context.Background(), testInterpreter(), path, nil, &out, false)
	require.NoError(t, err)
	assert.Equal(t, 1, failed)
	assert.Contains(t, out.String(), "Result: 8")
	assert.Contains(t, out.String(), "line 3: Error:")
	assert.Contains(t, out.String(), "Result: 16")
}

func TestRunScriptFile_Stdin(t *testing.T) {
	var out bytes.Buffer
	interp := testInterpreter()
	failed, err := runScriptFile(context.Background(), interp, "-", strings.NewReader("ms 4\nm+ 6\n"), &out, true)
	require.NoError(t, err)
	assert.Zero(t, failed)

	var snap calc.Snapshot
	require.NoError(t, json.Unmarshal(out.Bytes(), &snap))
	assert.Equal(t, 10.0, snap.Memory)
	assert.Empty(t, snap.History)
}

func TestRunScriptFile_Missing(t *testing.T) {
	_, err := runScriptFile(context.Background(), testInterpreter(), filepath.Join(t.TempDir(), "nope.calc"), nil, io.Discard, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open script")
}

// syncBuffer is a bytes.Buffer safe for one writer and one reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchScript_RerunsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, "5 + 3\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &syncBuffer{}
	done := make(chan error, 1)
	go func() { done <- watchScript(ctx, path, 20*time.Millisecond, discardLogger(), out) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Result: 8")
	}, 5*time.Second, 10*time.Millisecond, "initial render")

	require.NoError(t, os.WriteFile(path, []byte("7 * 6\n"), 0o644))

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Result: 42")
	}, 5*time.Second, 10*time.Millisecond, "render after change")

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("watchScript did not return after cancel")
	}
}

func TestWatchScript_RejectsStdin(t *testing.T) {
	err := watchScript(context.Background(), "-", time.Millisecond, discardLogger(), io.Discard)
	require.Error(t, err)
}
