package tui

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-editor/internal/document"
	"github.com/jonathan/resume-editor/internal/types"
)

type fieldKind int

const (
	kindScalar fieldKind = iota
	kindEntry
	kindLine
	kindSkills
)

// field is one editable input of the form.
type field struct {
	kind    fieldKind
	scalar  types.ScalarField
	section types.Section
	index   int
	key     string
}

func (f field) label() string {
	switch f.kind {
	case kindScalar:
		return f.scalar.Title()
	case kindEntry:
		return fmt.Sprintf("%s %d %s", f.section.Title(), f.index+1, keyTitle(f.key))
	case kindLine:
		return fmt.Sprintf("%s %d", f.section.Title(), f.index+1)
	case kindSkills:
		return "Skills (comma separated)"
	}
	return ""
}

func keyTitle(key string) string {
	if key == "" {
		return ""
	}
	return strings.ToUpper(key[:1]) + key[1:]
}

// repeatable reports whether the field is an item of a repeatable section.
func (f field) repeatable() bool {
	return f.kind == kindEntry || f.kind == kindLine
}

// buildFields lays out the form for doc. Empty sections get the editing
// view's placeholder row.
func buildFields(doc types.Document) ([]field, []string) {
	view := document.EditingView(doc)
	var fields []field
	var values []string

	for _, f := range types.ScalarFields {
		fields = append(fields, field{kind: kindScalar, scalar: f})
		values = append(values, view.Scalar(f))
	}
	for _, s := range types.Sections {
		switch {
		case s == types.SectionSkills:
			fields = append(fields, field{kind: kindSkills, section: s})
			values = append(values, document.JoinSkills(view.Skills))
		case s.Structured():
			for i := 0; i < view.Len(s); i++ {
				for _, k := range s.Keys() {
					fields = append(fields, field{kind: kindEntry, section: s, index: i, key: k})
					values = append(values, entryValue(view, s, i, k))
				}
			}
		default:
			for i, line := range view.Lines(s) {
				fields = append(fields, field{kind: kindLine, section: s, index: i})
				values = append(values, line)
			}
		}
	}
	return fields, values
}

func entryValue(doc types.Document, s types.Section, i int, key string) string {
	var v string
	switch s {
	case types.SectionEducation:
		v, _ = doc.Education[i].Get(key)
	case types.SectionExperience:
		v, _ = doc.Experience[i].Get(key)
	}
	return v
}

// applyEdit writes value into the model. A placeholder row is materialized
// first; seeded reports that the model gained that row.
func applyEdit(m *document.Model, f field, value string) (seeded bool, err error) {
	switch f.kind {
	case kindScalar:
		return false, m.SetField(f.scalar, value)
	case kindSkills:
		m.SetSkillsText(value)
		return false, nil
	}

	if document.IsPlaceholder(m.Snapshot().Document, f.section, f.index) {
		if err := m.SeedTemplate(f.section); err != nil {
			return false, err
		}
		seeded = true
	}
	key := ""
	if f.kind == kindEntry {
		key = f.key
	}
	return seeded, m.UpdateItem(f.section, f.index, key, value)
}

// addItem appends a row to the focused field's section, materializing the
// placeholder first so structured sections always have a template item.
func addItem(m *document.Model, f field) error {
	if !f.repeatable() {
		return fmt.Errorf("focus an item of a repeatable section to add to it")
	}
	if m.Snapshot().Document.Len(f.section) == 0 {
		if err := m.SeedTemplate(f.section); err != nil {
			return err
		}
	}
	return m.AddItem(f.section)
}

// removeItem deletes the focused row. Placeholder rows are not in the model.
func removeItem(m *document.Model, f field) error {
	if !f.repeatable() {
		return fmt.Errorf("focus an item of a repeatable section to remove it")
	}
	if document.IsPlaceholder(m.Snapshot().Document, f.section, f.index) {
		return nil
	}
	return m.RemoveItem(f.section, f.index)
}
