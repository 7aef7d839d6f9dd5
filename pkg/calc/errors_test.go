package calc

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainError_Error(t *testing.T) {
	testCases := []struct {
		name     string
		err      *DomainError
		expected string
	}{
		{
			name:     "With operation",
			err:      &DomainError{Type: DivisionByZero, Op: "divide", Message: "division by zero is not allowed"},
			expected: "divide: division by zero is not allowed",
		},
		{
			name:     "Without operation",
			err:      &DomainError{Type: NegativeOperand, Message: "negative operand"},
			expected: "negative operand",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.expected {
				t.Errorf("Expected error message '%s', got '%s'", tc.expected, got)
			}
		})
	}
}

func TestIsDomainError(t *testing.T) {
	de := &DomainError{Type: ModuloByZero, Op: "modulo", Message: "modulo by zero is not allowed"}

	if !IsDomainError(de) {
		t.Error("Expected IsDomainError to match a *DomainError")
	}
	if !IsDomainError(fmt.Errorf("evaluate: %w", de)) {
		t.Error("Expected IsDomainError to match a wrapped *DomainError")
	}
	if IsDomainError(errors.New("bad input")) {
		t.Error("Expected IsDomainError to reject unrelated errors")
	}
	if IsDomainError(nil) {
		t.Error("Expected IsDomainError to reject nil")
	}
}

func TestErrorType_String(t *testing.T) {
	testCases := []struct {
		errType  ErrorType
		expected string
	}{
		{DivisionByZero, "division by zero"},
		{ModuloByZero, "modulo by zero"},
		{NegativeOperand, "negative operand"},
		{PowerOutOfRange, "power out of range"},
		{InvalidFactorial, "invalid factorial"},
		{InvalidLogarithm, "invalid logarithm"},
		{InvalidLogBase, "invalid logarithm base"},
		{ErrorType(99), "unknown"},
	}

	for _, tc := range testCases {
		if got := tc.errType.String(); got != tc.expected {
			t.Errorf("Expected %d.String() to be '%s', got '%s'", tc.errType, tc.expected, got)
		}
	}
}
