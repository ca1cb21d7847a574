package document

import (
	"testing"

	"github.com/jonathan/resume-editor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_SnapshotIsolation(t *testing.T) {
	m := NewModel(types.DefaultDocument())
	before := m.Snapshot()

	require.NoError(t, m.SetField(types.FieldName, "Jane Roe"))
	require.NoError(t, m.UpdateItem(types.SectionExperience, 0, "role", "Engineer"))
	require.NoError(t, m.AddItem(types.SectionAchievements))
	m.SetSkillsText("Go, Rust")

	after := m.Snapshot()
	assert.Equal(t, "John Doe", before.Document.Name)
	assert.Equal(t, "", before.Document.Experience[0].Role)
	assert.Len(t, before.Document.Achievements, 1)
	assert.Empty(t, before.Document.Skills)

	assert.Equal(t, "Jane Roe", after.Document.Name)
	assert.Equal(t, "Engineer", after.Document.Experience[0].Role)
	assert.Len(t, after.Document.Achievements, 2)
	assert.Equal(t, []string{"Go", "Rust"}, after.Document.Skills)
	assert.Equal(t, before.Version+4, after.Version)
}

func TestModel_SnapshotMutationDoesNotLeak(t *testing.T) {
	m := NewModel(types.DefaultDocument())
	snap := m.Snapshot()
	snap.Document.Achievements[0] = "leaked"

	assert.Equal(t, "", m.Snapshot().Document.Achievements[0])
}

func TestModel_FailedMutationKeepsVersion(t *testing.T) {
	m := NewModel(types.DefaultDocument())
	require.NoError(t, m.RemoveItem(types.SectionEducation, 0))
	version := m.Version()

	err := m.AddItem(types.SectionEducation)
	var structural *StructuralError
	require.ErrorAs(t, err, &structural)
	assert.Equal(t, version, m.Version())

	err = m.UpdateItem(types.SectionExperience, 5, "role", "x")
	var idx *IndexError
	require.ErrorAs(t, err, &idx)
	assert.Equal(t, version, m.Version())
}

func TestModel_SeedTemplateThenAdd(t *testing.T) {
	m := NewModel(types.DefaultDocument())
	require.NoError(t, m.RemoveItem(types.SectionEducation, 0))

	require.NoError(t, m.SeedTemplate(types.SectionEducation))
	require.NoError(t, m.AddItem(types.SectionEducation))
	assert.Len(t, m.Snapshot().Document.Education, 2)

	version := m.Version()
	require.NoError(t, m.SeedTemplate(types.SectionEducation))
	assert.Equal(t, version, m.Version(), "seeding a non-empty section is a no-op")
}

func TestModel_Replace(t *testing.T) {
	m := NewModel(types.DefaultDocument())
	replacement := types.Document{Name: "Imported", Skills: []string{"Go"}}

	m.Replace(replacement)
	replacement.Skills[0] = "changed"

	doc := m.Snapshot().Document
	assert.Equal(t, "Imported", doc.Name)
	assert.Equal(t, []string{"Go"}, doc.Skills)
	assert.NotNil(t, doc.Education)
}
