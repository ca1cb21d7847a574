// Package document owns the in-memory resume model and the editing algebra over its sections.
package document

import (
	"fmt"

	"github.com/jonathan/resume-editor/internal/types"
)

// StructuralError reports an attempt to synthesize a structured item for a
// section that has no template item to take its shape from.
type StructuralError struct {
	Section types.Section
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural error: section %q is empty; seed a template item before adding", e.Section)
}

// IndexError reports an item index outside the bounds of a section
type IndexError struct {
	Section types.Section
	Index   int
	Len     int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index error: %s[%d] out of range (len %d)", e.Section, e.Index, e.Len)
}

// FieldError reports an unknown field, section or item key
type FieldError struct {
	Name    string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field error: %s: %s", e.Name, e.Message)
}
