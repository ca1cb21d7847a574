package document

import (
	"github.com/jonathan/resume-editor/internal/types"
)

// AddItem appends a blank item to section. Scalar sections get an empty
// string; structured sections get the blank instance of their entry type and
// require at least one existing item to take the key shape from.
func AddItem(doc types.Document, section types.Section) (types.Document, error) {
	out := Clone(doc)
	var err error
	switch section {
	case types.SectionEducation:
		out.Education, err = appendBlank(out.Education, section)
	case types.SectionExperience:
		out.Experience, err = appendBlank(out.Experience, section)
	case types.SectionSkills:
		out.Skills = append(out.Skills, "")
	case types.SectionAchievements:
		out.Achievements = append(out.Achievements, "")
	case types.SectionCertifications:
		out.Certifications = append(out.Certifications, "")
	default:
		return doc, unknownSection(section)
	}
	if err != nil {
		return doc, err
	}
	return out, nil
}

// UpdateItem replaces section[index] with value when key is empty (scalar
// sections) or section[index][key] otherwise (structured sections).
func UpdateItem(doc types.Document, section types.Section, index int, key, value string) (types.Document, error) {
	if !section.Valid() {
		return doc, unknownSection(section)
	}
	if n := doc.Len(section); index < 0 || index >= n {
		return doc, &IndexError{Section: section, Index: index, Len: n}
	}
	if section.Structured() && key == "" {
		return doc, &FieldError{Name: string(section), Message: "structured section requires an item key"}
	}
	if !section.Structured() && key != "" {
		return doc, &FieldError{Name: string(section) + "." + key, Message: "scalar section items have no keys"}
	}

	out := Clone(doc)
	ok := true
	switch section {
	case types.SectionEducation:
		out.Education[index], ok = out.Education[index].With(key, value)
	case types.SectionExperience:
		out.Experience[index], ok = out.Experience[index].With(key, value)
	case types.SectionSkills:
		out.Skills[index] = value
	case types.SectionAchievements:
		out.Achievements[index] = value
	case types.SectionCertifications:
		out.Certifications[index] = value
	}
	if !ok {
		return doc, &FieldError{Name: string(section) + "." + key, Message: "unknown item key"}
	}
	return out, nil
}

// RemoveItem deletes section[index], shifting later items down. The section
// may become empty.
func RemoveItem(doc types.Document, section types.Section, index int) (types.Document, error) {
	if !section.Valid() {
		return doc, unknownSection(section)
	}
	if n := doc.Len(section); index < 0 || index >= n {
		return doc, &IndexError{Section: section, Index: index, Len: n}
	}

	out := doc
	switch section {
	case types.SectionEducation:
		out.Education = removeAt(doc.Education, index)
	case types.SectionExperience:
		out.Experience = removeAt(doc.Experience, index)
	case types.SectionSkills:
		out.Skills = removeAt(doc.Skills, index)
	case types.SectionAchievements:
		out.Achievements = removeAt(doc.Achievements, index)
	case types.SectionCertifications:
		out.Certifications = removeAt(doc.Certifications, index)
	}
	return Clone(out), nil
}

// SeedTemplate gives an empty section its placeholder item so it can be
// edited and extended. Non-empty sections are returned unchanged.
func SeedTemplate(doc types.Document, section types.Section) (types.Document, error) {
	if !section.Valid() {
		return doc, unknownSection(section)
	}
	out := Clone(doc)
	if doc.Len(section) > 0 {
		return out, nil
	}
	switch section {
	case types.SectionEducation:
		out.Education = []types.EducationEntry{{}}
	case types.SectionExperience:
		out.Experience = []types.ExperienceEntry{{}}
	case types.SectionSkills:
		out.Skills = []string{""}
	case types.SectionAchievements:
		out.Achievements = []string{""}
	case types.SectionCertifications:
		out.Certifications = []string{""}
	}
	return out, nil
}

func appendBlank[T types.Entry](items []T, section types.Section) ([]T, error) {
	if len(items) == 0 {
		return nil, &StructuralError{Section: section}
	}
	var blank T
	return append(items, blank), nil
}

func removeAt[T any](items []T, index int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...)
}

func unknownSection(section types.Section) error {
	return &FieldError{Name: string(section), Message: "not a repeatable section"}
}
