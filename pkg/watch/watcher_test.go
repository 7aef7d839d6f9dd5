package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestWatcher_ModifyFileTriggersEvent(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "sums.calc", "1 + 1\n")

	w, out, cancel := startWatcher(t, script, 50*time.Millisecond, 3*time.Second)
	defer cancel()
	defer func() { _ = w.Close() }()

	writeScript(t, dir, "sums.calc", "1 + 2\n")

	batch := waitForBatch(t, out, 2*time.Second)
	assertContainsPath(t, batch, script)
}

func TestWatcher_RecreateFileTriggersEvent(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "sums.calc", "1 + 1\n")

	w, out, cancel := startWatcher(t, script, 50*time.Millisecond, 3*time.Second)
	defer cancel()
	defer func() { _ = w.Close() }()

	// Editors often save by renaming a temporary file over the original.
	tmp := writeScript(t, dir, "sums.calc.tmp", "2 * 3\n")
	if err := os.Rename(tmp, script); err != nil {
		t.Fatal(err)
	}

	batch := waitForBatch(t, out, 2*time.Second)
	assertContainsPath(t, batch, script)
}

func TestWatcher_OtherFilesIgnored(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "sums.calc", "1 + 1\n")

	w, out, cancel := startWatcher(t, script, 50*time.Millisecond, time.Second)
	defer cancel()
	defer func() { _ = w.Close() }()

	writeScript(t, dir, "notes.txt", "hello")

	select {
	case batch := <-out:
		t.Fatalf("expected no events for other files, got %d", len(batch))
	case <-time.After(500 * time.Millisecond):
		// Good: no events received
	}
}

func TestWatcher_DebounceCoalescesEvents(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "sums.calc", "1 + 1\n")

	w, out, cancel := startWatcher(t, script, 200*time.Millisecond, 3*time.Second)
	defer cancel()
	defer func() { _ = w.Close() }()

	for i := 0; i < 5; i++ {
		writeScript(t, dir, "sums.calc", "1 + "+string(rune('0'+i))+"\n")
		time.Sleep(20 * time.Millisecond)
	}

	batch := waitForBatch(t, out, 2*time.Second)
	if len(batch) != 1 {
		t.Fatalf("expected 1 coalesced event, got %d", len(batch))
	}
}

func TestWatcher_ContextCancellationStops(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "sums.calc", "1 + 1\n")

	w, err := NewWatcher(script, 50*time.Millisecond, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = w.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan []ChangeEvent, 10)

	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, out)
	}()

	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}

func TestNewWatcher_MissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "sums.calc"), time.Millisecond, testLogger())
	if err == nil {
		t.Fatal("expected error for a file in a missing directory")
	}
}

// --- helpers ---

func startWatcher(t *testing.T, path string, debounce, timeout time.Duration) (*Watcher, chan []ChangeEvent, context.CancelFunc) {
	t.Helper()
	w, err := NewWatcher(path, debounce, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	if w.Path() != path {
		t.Fatalf("expected watcher path %s, got %s", path, w.Path())
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	out := make(chan []ChangeEvent, 10)
	go func() { _ = w.Run(ctx, out) }()
	return w, out, cancel
}

func writeScript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func waitForBatch(t *testing.T, ch <-chan []ChangeEvent, timeout time.Duration) []ChangeEvent {
	t.Helper()
	select {
	case batch := <-ch:
		return batch
	case <-time.After(timeout):
		t.Fatal("timed out waiting for batch")
		return nil
	}
}

func assertContainsPath(t *testing.T, batch []ChangeEvent, path string) {
	t.Helper()
	for _, ev := range batch {
		if ev.Path == path {
			return
		}
	}
	t.Fatalf("expected batch to contain %s, got %v", path, batch)
}
