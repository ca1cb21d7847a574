package document

import (
	"testing"

	"github.com/jonathan/resume-editor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() types.Document {
	doc := types.DefaultDocument()
	doc.Experience = []types.ExperienceEntry{
		{Role: "Engineer", Company: "Acme", Duration: "2y"},
		{Role: "Lead", Company: "Globex", Duration: "1y"},
		{Role: "CTO", Company: "Initech", Duration: "3y"},
	}
	doc.Achievements = []string{"a", "b", "c", "d"}
	return doc
}

func TestAddItem_ScalarSection(t *testing.T) {
	doc := sampleDocument()

	out, err := AddItem(doc, types.SectionAchievements)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", ""}, out.Achievements)
	assert.Len(t, doc.Achievements, 4, "input must be untouched")
}

func TestAddItem_StructuredSectionAppendsBlank(t *testing.T) {
	doc := sampleDocument()

	out, err := AddItem(doc, types.SectionExperience)
	require.NoError(t, err)
	require.Len(t, out.Experience, 4)
	assert.Equal(t, types.ExperienceEntry{}, out.Experience[3])
	assert.Equal(t, doc.Experience, out.Experience[:3])
}

func TestAddItem_EmptyStructuredSectionIsStructuralError(t *testing.T) {
	doc := sampleDocument()
	doc.Education = []types.EducationEntry{}

	out, err := AddItem(doc, types.SectionEducation)
	require.Error(t, err)
	var structural *StructuralError
	require.ErrorAs(t, err, &structural)
	assert.Equal(t, types.SectionEducation, structural.Section)
	assert.Empty(t, out.Education)
}

func TestAddItem_EmptyScalarSectionIsAllowed(t *testing.T) {
	doc := sampleDocument()
	doc.Certifications = []string{}

	out, err := AddItem(doc, types.SectionCertifications)
	require.NoError(t, err)
	assert.Equal(t, []string{""}, out.Certifications)
}

func TestAddItem_UnknownSection(t *testing.T) {
	_, err := AddItem(sampleDocument(), types.Section("hobbies"))
	var fieldErr *FieldError
	assert.ErrorAs(t, err, &fieldErr)
}

func TestUpdateItem(t *testing.T) {
	doc := sampleDocument()

	out, err := UpdateItem(doc, types.SectionExperience, 1, "company", "Umbrella")
	require.NoError(t, err)
	assert.Equal(t, "Umbrella", out.Experience[1].Company)
	assert.Equal(t, "Globex", doc.Experience[1].Company, "earlier snapshot must stay valid")

	out, err = UpdateItem(out, types.SectionAchievements, 2, "", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "C", "d"}, out.Achievements)
	assert.Equal(t, []string{"a", "b", "c", "d"}, doc.Achievements)
}

func TestUpdateItem_Errors(t *testing.T) {
	doc := sampleDocument()

	tests := []struct {
		name    string
		section types.Section
		index   int
		key     string
		check   func(t *testing.T, err error)
	}{
		{"index past end", types.SectionExperience, 3, "role", func(t *testing.T, err error) {
			var idx *IndexError
			require.ErrorAs(t, err, &idx)
			assert.Equal(t, 3, idx.Len)
		}},
		{"negative index", types.SectionAchievements, -1, "", func(t *testing.T, err error) {
			var idx *IndexError
			assert.ErrorAs(t, err, &idx)
		}},
		{"missing key on structured", types.SectionExperience, 0, "", func(t *testing.T, err error) {
			var f *FieldError
			assert.ErrorAs(t, err, &f)
		}},
		{"key on scalar", types.SectionAchievements, 0, "text", func(t *testing.T, err error) {
			var f *FieldError
			assert.ErrorAs(t, err, &f)
		}},
		{"unknown key", types.SectionEducation, 0, "gpa", func(t *testing.T, err error) {
			var f *FieldError
			require.ErrorAs(t, err, &f)
			assert.Contains(t, err.Error(), "education.gpa")
		}},
		{"unknown section", types.Section("hobbies"), 0, "", func(t *testing.T, err error) {
			var f *FieldError
			assert.ErrorAs(t, err, &f)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := UpdateItem(doc, tt.section, tt.index, tt.key, "x")
			require.Error(t, err)
			tt.check(t, err)
			assert.Equal(t, doc, out)
		})
	}
}

func TestRemoveItem_PreservesOrder(t *testing.T) {
	doc := sampleDocument()

	for i := range doc.Achievements {
		out, err := RemoveItem(doc, types.SectionAchievements, i)
		require.NoError(t, err)

		want := append(append([]string{}, doc.Achievements[:i]...), doc.Achievements[i+1:]...)
		assert.Equal(t, want, out.Achievements)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, doc.Achievements)

	out, err := RemoveItem(doc, types.SectionExperience, 1)
	require.NoError(t, err)
	assert.Equal(t, []types.ExperienceEntry{doc.Experience[0], doc.Experience[2]}, out.Experience)
}

func TestRemoveItem_LastItemLeavesSectionEmpty(t *testing.T) {
	doc := types.DefaultDocument()

	out, err := RemoveItem(doc, types.SectionEducation, 0)
	require.NoError(t, err)
	assert.NotNil(t, out.Education)
	assert.Empty(t, out.Education)

	_, err = RemoveItem(out, types.SectionEducation, 0)
	var idx *IndexError
	assert.ErrorAs(t, err, &idx)
}

func TestEditSequence_KeySetConsistency(t *testing.T) {
	doc := types.DefaultDocument()
	var err error

	steps := []func(types.Document) (types.Document, error){
		func(d types.Document) (types.Document, error) { return AddItem(d, types.SectionEducation) },
		func(d types.Document) (types.Document, error) {
			return UpdateItem(d, types.SectionEducation, 1, "degree", "MSc")
		},
		func(d types.Document) (types.Document, error) { return AddItem(d, types.SectionEducation) },
		func(d types.Document) (types.Document, error) { return RemoveItem(d, types.SectionEducation, 0) },
		func(d types.Document) (types.Document, error) {
			return UpdateItem(d, types.SectionEducation, 1, "year", "2024")
		},
	}
	for _, step := range steps {
		doc, err = step(doc)
		require.NoError(t, err)
	}

	require.Len(t, doc.Education, 2)
	want := types.SectionEducation.Keys()
	for _, item := range doc.Education {
		assert.Equal(t, want, item.Keys())
	}
	assert.Equal(t, "MSc", doc.Education[0].Degree)
	assert.Equal(t, "2024", doc.Education[1].Year)
}

func TestSeedTemplate(t *testing.T) {
	doc := types.DefaultDocument()
	doc.Experience = nil

	out, err := SeedTemplate(doc, types.SectionExperience)
	require.NoError(t, err)
	assert.Equal(t, []types.ExperienceEntry{{}}, out.Experience)

	out, err = AddItem(out, types.SectionExperience)
	require.NoError(t, err)
	assert.Len(t, out.Experience, 2)

	same, err := SeedTemplate(out, types.SectionExperience)
	require.NoError(t, err)
	assert.Equal(t, out, same)
}

func TestSetField(t *testing.T) {
	doc := types.DefaultDocument()

	out, err := SetField(doc, types.FieldSummary, "Go developer")
	require.NoError(t, err)
	assert.Equal(t, "Go developer", out.Summary)
	assert.Equal(t, "Experienced frontend developer...", doc.Summary)

	_, err = SetField(doc, types.ScalarField("phone"), "555")
	var f *FieldError
	assert.ErrorAs(t, err, &f)
}

func TestClone_Independent(t *testing.T) {
	doc := sampleDocument()
	cp := Clone(doc)

	cp.Experience[0].Role = "Intern"
	cp.Achievements[0] = "z"

	assert.Equal(t, "Engineer", doc.Experience[0].Role)
	assert.Equal(t, "a", doc.Achievements[0])
}

func TestClone_NormalizesNilSections(t *testing.T) {
	cp := Clone(types.Document{Name: "X"})
	assert.NotNil(t, cp.Education)
	assert.NotNil(t, cp.Experience)
	assert.NotNil(t, cp.Skills)
	assert.NotNil(t, cp.Achievements)
	assert.NotNil(t, cp.Certifications)
}
