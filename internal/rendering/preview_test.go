package rendering

import (
	"testing"

	"github.com/jonathan/resume-editor/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestExperienceLine(t *testing.T) {
	tests := []struct {
		name  string
		entry types.ExperienceEntry
		want  string
	}{
		{"all fields", types.ExperienceEntry{Role: "Engineer", Company: "Acme", Duration: "2020-2023"}, "Engineer at Acme (2020-2023)"},
		{"role only", types.ExperienceEntry{Role: "Engineer"}, "Engineer"},
		{"company only", types.ExperienceEntry{Company: "Acme"}, "Acme"},
		{"role and duration", types.ExperienceEntry{Role: "Engineer", Duration: "2y"}, "Engineer (2y)"},
		{"company and duration", types.ExperienceEntry{Company: "Acme", Duration: "2y"}, "Acme (2y)"},
		{"duration only", types.ExperienceEntry{Duration: "2y"}, ""},
		{"whitespace role", types.ExperienceEntry{Role: "  ", Company: "Acme"}, "Acme"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExperienceLine(tt.entry).Text())
		})
	}
}

func TestEducationLine(t *testing.T) {
	tests := []struct {
		name  string
		entry types.EducationEntry
		want  string
	}{
		{"all fields", types.EducationEntry{Degree: "BSc", Institution: "MIT", Year: "2019"}, "BSc, MIT (2019)"},
		{"degree only", types.EducationEntry{Degree: "BSc"}, "BSc"},
		{"institution and year", types.EducationEntry{Institution: "MIT", Year: "2019"}, "MIT (2019)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EducationLine(tt.entry).Text())
		})
	}
}

func TestProject_SuppressesBlankItems(t *testing.T) {
	doc := types.DefaultDocument()
	doc.Experience = []types.ExperienceEntry{
		{},
		{Role: "Engineer"},
		{Role: " ", Company: "", Duration: "\t"},
	}
	doc.Skills = []string{"Go", " ", "Rust"}
	doc.Achievements = []string{"", "Shipped v1"}
	doc.Certifications = []string{""}

	p := Project(doc)

	assert.Equal(t, []Line{{Lead: "Engineer"}}, p.Experience)
	assert.Empty(t, p.Education)
	assert.Equal(t, []string{"Go", "Rust"}, p.Skills)
	assert.Equal(t, []string{"Shipped v1"}, p.Achievements)
	assert.Empty(t, p.Certifications)
	assert.Equal(t, "John Doe", p.Name)
}

func TestProject_DoesNotAliasDocument(t *testing.T) {
	doc := types.DefaultDocument()
	doc.Skills = []string{"Go"}
	p := Project(doc)
	p.Skills[0] = "Rust"
	assert.Equal(t, "Go", doc.Skills[0])
}
