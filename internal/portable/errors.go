// Package portable converts resumes to and from their portable JSON encoding.
package portable

import (
	"fmt"

	"github.com/jonathan/resume-editor/internal/schemas"
)

// Kind classifies a ValidationError
type Kind string

const (
	// KindMalformed means the bytes are not syntactically valid JSON
	KindMalformed Kind = "malformed"
	// KindShapeMismatch means the JSON parsed but lacks the required structure
	KindShapeMismatch Kind = "shape-mismatch"
)

// ValidationError reports why an encoded document could not be decoded
type ValidationError struct {
	Kind   Kind
	Fields []schemas.FieldError
	Cause  error
}

func (e *ValidationError) Error() string {
	switch {
	case len(e.Fields) > 0:
		return fmt.Sprintf("validation error (%s): %s: %s", e.Kind, e.Fields[0].Field, e.Fields[0].Message)
	case e.Cause != nil:
		return fmt.Sprintf("validation error (%s): %v", e.Kind, e.Cause)
	}
	return fmt.Sprintf("validation error (%s)", e.Kind)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
