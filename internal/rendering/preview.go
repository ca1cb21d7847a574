package rendering

import (
	"github.com/jonathan/resume-editor/internal/types"
)

// Line is one rendered structured entry. Joiner and Suffix are only set
// when the fields they separate are present.
type Line struct {
	Lead   string
	Joiner string
	Detail string
	Suffix string
}

// Text returns the line as plain text.
func (l Line) Text() string {
	return l.Lead + l.Joiner + l.Detail + l.Suffix
}

// Preview is the filtered projection of a document shared by the on-screen
// preview, the paginated export and print.
type Preview struct {
	Name           string
	Email          string
	LinkedIn       string
	Summary        string
	Experience     []Line
	Education      []Line
	Achievements   []string
	Certifications []string
	Skills         []string
}

// Project builds the preview of doc. All-blank entries and blank list items
// are dropped.
func Project(doc types.Document) Preview {
	p := Preview{
		Name:           doc.Name,
		Email:          doc.Email,
		LinkedIn:       doc.LinkedIn,
		Summary:        doc.Summary,
		Achievements:   nonBlank(doc.Achievements),
		Certifications: nonBlank(doc.Certifications),
		Skills:         nonBlank(doc.Skills),
	}
	for _, e := range doc.Experience {
		if !e.IsBlank() {
			p.Experience = append(p.Experience, ExperienceLine(e))
		}
	}
	for _, e := range doc.Education {
		if !e.IsBlank() {
			p.Education = append(p.Education, EducationLine(e))
		}
	}
	return p
}

// ExperienceLine renders "role at company (duration)".
func ExperienceLine(e types.ExperienceEntry) Line {
	return joinLine(e.Role, " at ", e.Company, e.Duration)
}

// EducationLine renders "degree, institution (year)".
func EducationLine(e types.EducationEntry) Line {
	return joinLine(e.Degree, ", ", e.Institution, e.Year)
}

func joinLine(lead, joiner, detail, paren string) Line {
	var l Line
	hasLead, hasDetail := !types.IsBlank(lead), !types.IsBlank(detail)
	if hasLead {
		l.Lead = lead
	}
	if hasLead && hasDetail {
		l.Joiner = joiner
	}
	if hasDetail {
		l.Detail = detail
	}
	if (hasLead || hasDetail) && !types.IsBlank(paren) {
		l.Suffix = " (" + paren + ")"
	}
	return l
}

func nonBlank(items []string) []string {
	out := []string{}
	for _, item := range items {
		if !types.IsBlank(item) {
			out = append(out, item)
		}
	}
	return out
}
