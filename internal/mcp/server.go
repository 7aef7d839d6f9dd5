package mcp

import (
	"log/slog"
	"sync"

	"github.com/mamaar/gocalc/internal/repl"
	"github.com/mamaar/gocalc/pkg/calc"
)

// MCPServer holds the shared state for the MCP tool handlers: one
// calculator and the interpreter that drives it. Tool calls may arrive
// concurrently, so every access goes through mu.
type MCPServer struct {
	mu     sync.Mutex
	calc   *calc.Calculator
	interp *repl.Interpreter
	logger *slog.Logger
}

// NewMCPServer creates a new MCPServer with a fresh calculator.
func NewMCPServer(logger *slog.Logger) *MCPServer {
	c := calc.New()
	return &MCPServer{
		calc:   c,
		interp: repl.NewInterpreter(c, logger),
		logger: logger,
	}
}

// compute runs fn against the calculator while holding the lock.
func (s *MCPServer) compute(op string, fn func(c *calc.Calculator) (float64, error)) (ResultOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := fn(s.calc)
	if err != nil {
		s.logger.Debug("tool rejected", "tool", op, "err", err)
		return ResultOutput{}, err
	}
	s.logger.Debug("tool evaluated", "tool", op, "result", v)
	return ResultOutput{Operation: op, Result: calc.Number(v), HistoryLength: len(s.calc.History())}, nil
}

// memory runs fn against the calculator and reports the register afterwards.
func (s *MCPServer) memory(fn func(c *calc.Calculator)) MemoryOutput {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.calc)
	return MemoryOutput{Memory: calc.Number(s.calc.MemoryRecall())}
}

// Snapshot returns a copy of the calculator state.
func (s *MCPServer) Snapshot() calc.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calc.Snapshot()
}

// Evaluate runs one interpreter line.
func (s *MCPServer) Evaluate(line string) (repl.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interp.Execute(line)
}

// ClearHistory empties the history, keeping memory.
func (s *MCPServer) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calc.ClearHistory()
}

// Reset clears memory, history and the last result.
func (s *MCPServer) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calc.Reset()
}
