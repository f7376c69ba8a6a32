package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingService indicates the description contains no service element
	ErrMissingService = errors.New("no service element found in description")
)

// GrammarError indicates an operation signature matched neither supported
// grammar. It aborts the whole generation run.
type GrammarError struct {
	Signature string
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("operation signature matches no known grammar: %q", e.Signature)
}

// ValidationError indicates a candidate class or type name is not usable as
// an identifier. Callers recover locally by appending a fixed suffix.
type ValidationError struct {
	Name   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid identifier %q: %s", e.Name, e.Reason)
}
