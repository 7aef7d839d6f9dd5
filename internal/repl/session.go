package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/peterh/liner"
)

// DefaultPrompt is shown before every interactive line.
const DefaultPrompt = "calc> "

// lineReader yields one line per call and io.EOF when input ends.
type lineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// Session is an interactive read-evaluate-print loop around one Interpreter.
type Session struct {
	interp *Interpreter
	reader lineReader
	out    io.Writer
	logger *slog.Logger
	prompt string
}

// NewSession returns a session that reads plain lines from r and echoes the
// prompt to w. Use it for pipes and tests.
func NewSession(interp *Interpreter, r io.Reader, w io.Writer, logger *slog.Logger) *Session {
	return &Session{
		interp: interp,
		reader: &scanReader{sc: bufio.NewScanner(r), out: w},
		out:    w,
		logger: logger,
		prompt: DefaultPrompt,
	}
}

// NewTerminalSession returns a session that reads from the controlling
// terminal with line editing and in-memory input recall.
func NewTerminalSession(interp *Interpreter, w io.Writer, logger *slog.Logger) *Session {
	st := liner.NewLiner()
	st.SetCtrlCAborts(true)
	return &Session{
		interp: interp,
		reader: &linerReader{st: st},
		out:    w,
		logger: logger,
		prompt: DefaultPrompt,
	}
}

// readResult carries one ReadLine call back to the loop.
type readResult struct {
	line string
	err  error
}

// Run prints the banner and evaluates lines until an exit command, end of
// input, an interrupt or ctx is cancelled. Domain and input errors are
// printed and the loop continues. Cancellation also interrupts a pending
// read; the abandoned read finishes in the background.
func (s *Session) Run(ctx context.Context) error {
	defer func() { _ = s.reader.Close() }()

	fmt.Fprintln(s.out, Banner)
	s.logger.Debug("session started")

	reads := make(chan readResult, 1)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		go func() {
			line, err := s.reader.ReadLine(s.prompt)
			reads <- readResult{line: line, err: err}
		}()

		var r readResult
		select {
		case <-ctx.Done():
			s.logger.Debug("session cancelled while reading")
			return ctx.Err()
		case r = <-reads:
		}

		line, err := r.line, r.err
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out, "\nGoodbye!")
			break
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		out, err := s.interp.Execute(line)
		if err != nil {
			fmt.Fprintln(s.out, DescribeError(err))
			continue
		}
		if out.Quit {
			break
		}
		WriteOutcome(s.out, out)
	}

	fmt.Fprintln(s.out, "Calculator closed.")
	s.logger.Debug("session finished", "history", len(s.interp.Calculator().History()))
	return nil
}

type scanReader struct {
	sc  *bufio.Scanner
	out io.Writer
}

func (r *scanReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.sc.Text(), nil
}

func (r *scanReader) Close() error { return nil }

type linerReader struct {
	st *liner.State
}

func (r *linerReader) ReadLine(prompt string) (string, error) {
	line, err := r.st.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		r.st.AppendHistory(line)
	}
	return line, nil
}

func (r *linerReader) Close() error {
	return r.st.Close()
}
