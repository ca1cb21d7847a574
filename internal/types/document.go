// Package types provides type definitions for structured data used throughout the resume editor.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Document is the canonical resume. Field order is the portable key order.
type Document struct {
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	LinkedIn       string            `json:"linkedin"`
	Summary        string            `json:"summary"`
	Education      []EducationEntry  `json:"education"`
	Experience     []ExperienceEntry `json:"experience"`
	Skills         []string          `json:"skills"`
	Achievements   []string          `json:"achievements"`
	Certifications []string          `json:"certifications"`
}

// EducationEntry is one item of the education section
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// ExperienceEntry is one item of the experience section
type ExperienceEntry struct {
	Role     string `json:"role"`
	Company  string `json:"company"`
	Duration string `json:"duration"`
}

// Entry is implemented by the structured section variants. The key set of a
// variant is fixed, so every item of a section shares it.
type Entry interface {
	EducationEntry | ExperienceEntry

	Keys() []string
	Get(key string) (string, bool)
	IsBlank() bool
}

var (
	educationKeys  = []string{"degree", "institution", "year"}
	experienceKeys = []string{"role", "company", "duration"}
)

// Keys returns the entry's keys in declaration order.
func (EducationEntry) Keys() []string { return append([]string(nil), educationKeys...) }

// Get returns the value stored under key.
func (e EducationEntry) Get(key string) (string, bool) {
	switch key {
	case "degree":
		return e.Degree, true
	case "institution":
		return e.Institution, true
	case "year":
		return e.Year, true
	}
	return "", false
}

// With returns a copy of the entry with key set to value.
func (e EducationEntry) With(key, value string) (EducationEntry, bool) {
	switch key {
	case "degree":
		e.Degree = value
	case "institution":
		e.Institution = value
	case "year":
		e.Year = value
	default:
		return e, false
	}
	return e, true
}

// IsBlank reports whether every field is blank.
func (e EducationEntry) IsBlank() bool {
	return IsBlank(e.Degree) && IsBlank(e.Institution) && IsBlank(e.Year)
}

// Keys returns the entry's keys in declaration order.
func (ExperienceEntry) Keys() []string { return append([]string(nil), experienceKeys...) }

// Get returns the value stored under key.
func (e ExperienceEntry) Get(key string) (string, bool) {
	switch key {
	case "role":
		return e.Role, true
	case "company":
		return e.Company, true
	case "duration":
		return e.Duration, true
	}
	return "", false
}

// With returns a copy of the entry with key set to value.
func (e ExperienceEntry) With(key, value string) (ExperienceEntry, bool) {
	switch key {
	case "role":
		e.Role = value
	case "company":
		e.Company = value
	case "duration":
		e.Duration = value
	default:
		return e, false
	}
	return e, true
}

// IsBlank reports whether every field is blank.
func (e ExperienceEntry) IsBlank() bool {
	return IsBlank(e.Role) && IsBlank(e.Company) && IsBlank(e.Duration)
}

// DefaultDocument returns the seed document a new editing session starts with.
func DefaultDocument() Document {
	return Document{
		Name:           "John Doe",
		Email:          "john@example.com",
		LinkedIn:       "https://linkedin.com/in/johndoe",
		Summary:        "Experienced frontend developer...",
		Education:      []EducationEntry{{}},
		Experience:     []ExperienceEntry{{}},
		Skills:         []string{},
		Achievements:   []string{""},
		Certifications: []string{""},
	}
}
