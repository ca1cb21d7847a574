// Package validation provides checks on rendered export artifacts.
package validation

import "fmt"

// Error represents a general validation error
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// PageCountError represents a PDF with an unexpected number of pages
type PageCountError struct {
	Expected int
	Actual   int
}

func (e *PageCountError) Error() string {
	return fmt.Sprintf("page count error: expected %d page(s), got %d", e.Expected, e.Actual)
}
