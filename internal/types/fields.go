package types

import (
	"fmt"
	"strings"
)

// ScalarField names one of the document's single-valued text fields
type ScalarField string

// Scalar fields in declaration order
const (
	FieldName     ScalarField = "name"
	FieldEmail    ScalarField = "email"
	FieldLinkedIn ScalarField = "linkedin"
	FieldSummary  ScalarField = "summary"
)

// ScalarFields lists every scalar field in declaration order.
var ScalarFields = []ScalarField{FieldName, FieldEmail, FieldLinkedIn, FieldSummary}

// Section names one of the document's repeatable (list-valued) fields
type Section string

// Repeatable sections in declaration order
const (
	SectionEducation      Section = "education"
	SectionExperience     Section = "experience"
	SectionSkills         Section = "skills"
	SectionAchievements   Section = "achievements"
	SectionCertifications Section = "certifications"
)

// Sections lists every repeatable section in declaration order.
var Sections = []Section{
	SectionEducation,
	SectionExperience,
	SectionSkills,
	SectionAchievements,
	SectionCertifications,
}

// Valid reports whether f names a known scalar field.
func (f ScalarField) Valid() bool {
	for _, known := range ScalarFields {
		if f == known {
			return true
		}
	}
	return false
}

// Valid reports whether s names a known section.
func (s Section) Valid() bool {
	for _, known := range Sections {
		if s == known {
			return true
		}
	}
	return false
}

// Structured reports whether items of the section are multi-field entries.
func (s Section) Structured() bool {
	return s == SectionEducation || s == SectionExperience
}

// Keys returns the item keys of a structured section, nil for scalar sections.
func (s Section) Keys() []string {
	switch s {
	case SectionEducation:
		return EducationEntry{}.Keys()
	case SectionExperience:
		return ExperienceEntry{}.Keys()
	}
	return nil
}

// Title returns the section's display heading, e.g. "Experience".
func (s Section) Title() string {
	return capitalize(string(s))
}

// Title returns the field's display heading, e.g. "Linkedin".
func (f ScalarField) Title() string {
	return capitalize(string(f))
}

// ParseSection converts a user-supplied name to a Section.
func ParseSection(name string) (Section, error) {
	s := Section(strings.ToLower(strings.TrimSpace(name)))
	if !s.Valid() {
		return "", fmt.Errorf("unknown section %q", name)
	}
	return s, nil
}

// ParseScalarField converts a user-supplied name to a ScalarField.
func ParseScalarField(name string) (ScalarField, error) {
	f := ScalarField(strings.ToLower(strings.TrimSpace(name)))
	if !f.Valid() {
		return "", fmt.Errorf("unknown field %q", name)
	}
	return f, nil
}

// Scalar returns the value of a scalar field.
func (d Document) Scalar(f ScalarField) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldLinkedIn:
		return d.LinkedIn
	case FieldSummary:
		return d.Summary
	}
	return ""
}

// Len returns the number of items in a section.
func (d Document) Len(s Section) int {
	switch s {
	case SectionEducation:
		return len(d.Education)
	case SectionExperience:
		return len(d.Experience)
	case SectionSkills:
		return len(d.Skills)
	case SectionAchievements:
		return len(d.Achievements)
	case SectionCertifications:
		return len(d.Certifications)
	}
	return 0
}

// Lines returns the items of a scalar section. Callers must not modify the result.
func (d Document) Lines(s Section) []string {
	switch s {
	case SectionSkills:
		return d.Skills
	case SectionAchievements:
		return d.Achievements
	case SectionCertifications:
		return d.Certifications
	}
	return nil
}

// IsBlank reports whether a text value is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
