package document

import "github.com/jonathan/resume-editor/internal/types"

// Clone returns a structurally independent copy of doc. Nil sections become
// empty sections so every copy serializes them as arrays.
func Clone(doc types.Document) types.Document {
	out := doc
	out.Education = cloneSlice(doc.Education)
	out.Experience = cloneSlice(doc.Experience)
	out.Skills = cloneSlice(doc.Skills)
	out.Achievements = cloneSlice(doc.Achievements)
	out.Certifications = cloneSlice(doc.Certifications)
	return out
}

// Replace returns a copy of doc suitable for installing as the current document.
func Replace(doc types.Document) types.Document {
	return Clone(doc)
}

// SetField assigns a scalar field and returns the new document.
func SetField(doc types.Document, field types.ScalarField, value string) (types.Document, error) {
	out := Clone(doc)
	switch field {
	case types.FieldName:
		out.Name = value
	case types.FieldEmail:
		out.Email = value
	case types.FieldLinkedIn:
		out.LinkedIn = value
	case types.FieldSummary:
		out.Summary = value
	default:
		return doc, &FieldError{Name: string(field), Message: "not a scalar field"}
	}
	return out, nil
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
