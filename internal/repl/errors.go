package repl

import (
	"errors"
	"fmt"
)

// InputError reports a line the interpreter could not understand, such as
// an unparseable number or an unknown operator. It never carries a
// *calc.DomainError; those are returned unchanged.
type InputError struct {
	Input   string
	Message string
	Cause   error
}

func (e *InputError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("%s: %q", e.Message, e.Input)
	}
	return e.Message
}

func (e *InputError) Unwrap() error {
	return e.Cause
}

// IsInputError reports whether err, or anything it wraps, is an *InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

func inputError(input, message string) *InputError {
	return &InputError{Input: input, Message: message}
}
