package document

import "github.com/jonathan/resume-editor/internal/types"

// Snapshot is an immutable view of the document at a given version.
type Snapshot struct {
	Version  uint64
	Document types.Document
}

// Model holds the current document of an editing session. Each successful
// mutation installs a structurally independent document and bumps the
// version; failed mutations leave both untouched. A Model is owned by a
// single goroutine and is not safe for concurrent use.
type Model struct {
	doc     types.Document
	version uint64
}

// NewModel creates a model seeded with doc.
func NewModel(seed types.Document) *Model {
	return &Model{doc: Clone(seed), version: 1}
}

// Snapshot captures the current document. Later mutations never affect it.
func (m *Model) Snapshot() Snapshot {
	return Snapshot{Version: m.version, Document: Clone(m.doc)}
}

// Version returns the current document version.
func (m *Model) Version() uint64 {
	return m.version
}

// SetField assigns a scalar field.
func (m *Model) SetField(field types.ScalarField, value string) error {
	return m.apply(SetField(m.doc, field, value))
}

// SetSkillsText replaces the skills with the tokens of text.
func (m *Model) SetSkillsText(text string) {
	_ = m.apply(SetSkillsText(m.doc, text), nil)
}

// AddItem appends a blank item to section.
func (m *Model) AddItem(section types.Section) error {
	return m.apply(AddItem(m.doc, section))
}

// UpdateItem sets section[index] (key empty) or section[index][key].
func (m *Model) UpdateItem(section types.Section, index int, key, value string) error {
	return m.apply(UpdateItem(m.doc, section, index, key, value))
}

// RemoveItem deletes section[index].
func (m *Model) RemoveItem(section types.Section, index int) error {
	return m.apply(RemoveItem(m.doc, section, index))
}

// SeedTemplate materializes the placeholder item of an empty section.
func (m *Model) SeedTemplate(section types.Section) error {
	if m.doc.Len(section) > 0 {
		return nil
	}
	return m.apply(SeedTemplate(m.doc, section))
}

// Replace installs doc wholesale, bypassing the section editor.
func (m *Model) Replace(doc types.Document) {
	_ = m.apply(Replace(doc), nil)
}

func (m *Model) apply(doc types.Document, err error) error {
	if err != nil {
		return err
	}
	m.doc = doc
	m.version++
	return nil
}
