// Package repl maps single lines of text onto calculator operations and
// drives interactive and scripted sessions.
package repl

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"github.com/mamaar/gocalc/pkg/calc"
)

// Outcome is what a successfully executed line produced.
type Outcome struct {
	Value    float64
	HasValue bool
	Message  string // informational text for utility and memory commands
	Quit     bool
}

// Interpreter executes lines against a single Calculator.
type Interpreter struct {
	calc   *calc.Calculator
	logger *slog.Logger
}

// NewInterpreter returns an Interpreter that owns c for the length of a session.
func NewInterpreter(c *calc.Calculator, logger *slog.Logger) *Interpreter {
	return &Interpreter{calc: c, logger: logger}
}

// Calculator returns the calculator the interpreter drives.
func (in *Interpreter) Calculator() *calc.Calculator {
	return in.calc
}

// Tokenize splits a line into lower-cased, whitespace separated tokens.
// Quoting follows shell rules and '#' starts a comment.
func Tokenize(line string) ([]string, error) {
	tokens, err := shlex.Split(line)
	if err != nil {
		return nil, &InputError{Input: line, Message: "cannot tokenize line", Cause: err}
	}
	for i, tok := range tokens {
		tokens[i] = strings.ToLower(tok)
	}
	return tokens, nil
}

// Execute runs one line. Malformed input yields an *InputError; a violated
// mathematical precondition yields the calculator's *calc.DomainError.
// Neither leaves the calculator modified.
func (in *Interpreter) Execute(line string) (Outcome, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return Outcome{}, err
	}
	if len(tokens) == 0 {
		return Outcome{}, nil
	}

	out, err := in.dispatch(tokens)
	if err != nil {
		in.logger.Debug("line rejected", "line", line, "err", err)
		return Outcome{}, err
	}
	if out.HasValue {
		in.logger.Debug("line evaluated", "line", line, "result", out.Value)
	}
	return out, nil
}

func (in *Interpreter) dispatch(tokens []string) (Outcome, error) {
	c := in.calc
	head := tokens[0]

	if len(tokens) == 1 {
		switch head {
		case "quit", "exit", "q":
			return Outcome{Quit: true}, nil
		case "help":
			return Outcome{Message: HelpText}, nil
		case "history":
			return Outcome{Message: FormatHistory(c.History(), historyTail)}, nil
		case "clear":
			c.ClearHistory()
			return Outcome{Message: "History cleared."}, nil
		case "reset":
			c.Reset()
			return Outcome{Message: "Calculator reset."}, nil
		case "mr":
			v := c.MemoryRecall()
			return Outcome{Value: v, HasValue: true, Message: "Memory: " + calc.FormatNumber(v)}, nil
		case "mc":
			c.MemoryClear()
			return Outcome{Message: "Memory cleared."}, nil
		}
		if strings.HasSuffix(head, "!") && len(head) > 1 {
			n, err := parseNumber(strings.TrimSuffix(head, "!"))
			if err != nil {
				return Outcome{}, err
			}
			return value(c.Factorial(n))
		}
	}

	switch head {
	case "ms", "m+", "m-":
		return in.memory(tokens)
	case "sqrt":
		if len(tokens) != 2 {
			return Outcome{}, usageError(tokens, "sqrt <num>")
		}
		x, err := parseNumber(tokens[1])
		if err != nil {
			return Outcome{}, err
		}
		return value(c.SquareRoot(x))
	case "sin", "cos", "tan":
		return in.trig(tokens)
	case "ln", "log", "log10":
		return in.logarithm(tokens)
	}

	if len(tokens) == 3 {
		return in.binary(tokens)
	}
	return Outcome{}, inputError(strings.Join(tokens, " "), "invalid expression format")
}

func (in *Interpreter) memory(tokens []string) (Outcome, error) {
	if len(tokens) != 2 {
		return Outcome{}, usageError(tokens, tokens[0]+" <num>")
	}
	v, err := parseNumber(tokens[1])
	if err != nil {
		return Outcome{}, err
	}

	c := in.calc
	var msg string
	switch tokens[0] {
	case "ms":
		c.MemoryStore(v)
		msg = fmt.Sprintf("Stored %s in memory.", calc.FormatNumber(v))
	case "m+":
		c.MemoryAdd(v)
		msg = fmt.Sprintf("Added %s to memory. Memory: %s", calc.FormatNumber(v), calc.FormatNumber(c.MemoryRecall()))
	case "m-":
		c.MemorySubtract(v)
		msg = fmt.Sprintf("Subtracted %s from memory. Memory: %s", calc.FormatNumber(v), calc.FormatNumber(c.MemoryRecall()))
	}
	return Outcome{Value: c.MemoryRecall(), HasValue: true, Message: msg}, nil
}

func (in *Interpreter) trig(tokens []string) (Outcome, error) {
	if len(tokens) < 2 || len(tokens) > 3 {
		return Outcome{}, usageError(tokens, tokens[0]+" <angle> [deg]")
	}
	angle, err := parseNumber(tokens[1])
	if err != nil {
		return Outcome{}, err
	}
	unit := calc.Radians
	if len(tokens) == 3 {
		switch tokens[2] {
		case "deg":
			unit = calc.Degrees
		case "rad":
		default:
			return Outcome{}, inputError(tokens[2], "unknown angle unit")
		}
	}

	c := in.calc
	switch tokens[0] {
	case "sin":
		return Outcome{Value: c.Sin(angle, unit), HasValue: true}, nil
	case "cos":
		return Outcome{Value: c.Cos(angle, unit), HasValue: true}, nil
	default:
		return Outcome{Value: c.Tan(angle, unit), HasValue: true}, nil
	}
}

func (in *Interpreter) logarithm(tokens []string) (Outcome, error) {
	name := tokens[0]
	maxTokens := 2
	if name == "log" {
		maxTokens = 3
	}
	if len(tokens) < 2 || len(tokens) > maxTokens {
		if name == "log" {
			return Outcome{}, usageError(tokens, "log <num> [base]")
		}
		return Outcome{}, usageError(tokens, name+" <num>")
	}
	x, err := parseNumber(tokens[1])
	if err != nil {
		return Outcome{}, err
	}

	c := in.calc
	switch {
	case name == "log10":
		return value(c.Log10(x))
	case len(tokens) == 3:
		base, err := parseNumber(tokens[2])
		if err != nil {
			return Outcome{}, err
		}
		return value(c.Log(x, base))
	default:
		return value(c.Ln(x))
	}
}

func (in *Interpreter) binary(tokens []string) (Outcome, error) {
	a, err := parseNumber(tokens[0])
	if err != nil {
		return Outcome{}, err
	}
	b, err := parseNumber(tokens[2])
	if err != nil {
		return Outcome{}, err
	}

	c := in.calc
	switch tokens[1] {
	case "+":
		return Outcome{Value: c.Add(a, b), HasValue: true}, nil
	case "-":
		return Outcome{Value: c.Subtract(a, b), HasValue: true}, nil
	case "*", "×":
		return Outcome{Value: c.Multiply(a, b), HasValue: true}, nil
	case "/", "÷":
		return value(c.Divide(a, b))
	case "^", "**":
		return value(c.Power(a, b))
	case "mod", "%":
		return value(c.Modulo(a, b))
	default:
		return Outcome{}, inputError(tokens[1], "unknown operator")
	}
}

func value(v float64, err error) (Outcome, error) {
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Value: v, HasValue: true}, nil
}

// parseNumber accepts any float literal. Literals beyond the float64 range,
// such as 1e400, parse to ±Inf.
func parseNumber(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if errors.Is(err, strconv.ErrRange) {
		return v, nil
	}
	if err != nil {
		return 0, &InputError{Input: tok, Message: "invalid number format", Cause: err}
	}
	return v, nil
}

func usageError(tokens []string, usage string) *InputError {
	return inputError(strings.Join(tokens, " "), "usage: "+usage)
}
