package calc

import (
	"errors"
	"fmt"
)

// DomainError reports a violated mathematical precondition. The calculator
// state is left exactly as it was before the failing call.
type DomainError struct {
	Type    ErrorType
	Op      string
	Message string
}

func (e *DomainError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

// ErrorType classifies a DomainError.
type ErrorType int

const (
	DivisionByZero ErrorType = iota
	ModuloByZero
	NegativeOperand
	PowerOutOfRange
	InvalidFactorial
	InvalidLogarithm
	InvalidLogBase
)

func (t ErrorType) String() string {
	switch t {
	case DivisionByZero:
		return "division by zero"
	case ModuloByZero:
		return "modulo by zero"
	case NegativeOperand:
		return "negative operand"
	case PowerOutOfRange:
		return "power out of range"
	case InvalidFactorial:
		return "invalid factorial"
	case InvalidLogarithm:
		return "invalid logarithm"
	case InvalidLogBase:
		return "invalid logarithm base"
	default:
		return "unknown"
	}
}

// IsDomainError reports whether err, or anything it wraps, is a *DomainError.
func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

func domainError(t ErrorType, op, format string, args ...any) *DomainError {
	return &DomainError{Type: t, Op: op, Message: fmt.Sprintf(format, args...)}
}
