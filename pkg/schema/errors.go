package schema

import (
	"fmt"
	"strings"

	"github.com/aretw0/arbor/pkg/domain"
)

// ValidationError represents a single key or shape failure.
type ValidationError struct {
	Key    string // Key name
	Reason string // Human-readable reason for failure
	Value  any    // The value that failed validation
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("key %q: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("key %q: %s (got %T)", e.Key, e.Reason, e.Value)
}

// DocumentError locates a deserialization failure inside a source.
// It matches both domain.ErrMalformedDocument and its Cause with errors.Is/As.
type DocumentError struct {
	Source string
	Path   string
	Cause  error
}

func (e *DocumentError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v: %v", e.Source, domain.ErrMalformedDocument, e.Cause)
	}
	return fmt.Sprintf("%s: %v at %s: %v", e.Source, domain.ErrMalformedDocument, e.Path, e.Cause)
}

func (e *DocumentError) Unwrap() []error {
	return []error{domain.ErrMalformedDocument, e.Cause}
}

// AggregateError represents multiple document failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// ValidationErrors returns all errors if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	if aggr, ok := err.(*AggregateError); ok {
		return aggr.Errors
	}
	return nil
}
