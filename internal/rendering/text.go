package rendering

import (
	"strings"
)

// RenderText renders the preview as plain text for terminals. Every section
// heading is always present; blank entries are already dropped by Project.
func RenderText(p Preview) string {
	var sb strings.Builder
	if p.Name != "" {
		sb.WriteString(p.Name + "\n")
	}
	var contact []string
	for _, c := range []string{p.Email, p.LinkedIn} {
		if c != "" {
			contact = append(contact, c)
		}
	}
	if len(contact) > 0 {
		sb.WriteString(strings.Join(contact, " | ") + "\n")
	}
	writeHeading(&sb, "Summary")
	if p.Summary != "" {
		sb.WriteString(p.Summary + "\n")
	}
	writeLines(&sb, "Experience", p.Experience)
	writeLines(&sb, "Education", p.Education)
	writeList(&sb, "Achievements", p.Achievements)
	writeList(&sb, "Certifications", p.Certifications)
	writeList(&sb, "Skills", p.Skills)
	return sb.String()
}

func writeHeading(sb *strings.Builder, title string) {
	sb.WriteString("\n" + title + "\n" + strings.Repeat("-", len(title)) + "\n")
}

func writeLines(sb *strings.Builder, title string, lines []Line) {
	writeHeading(sb, title)
	for _, l := range lines {
		sb.WriteString("- " + l.Text() + "\n")
	}
}

func writeList(sb *strings.Builder, title string, items []string) {
	writeHeading(sb, title)
	for _, item := range items {
		sb.WriteString("- " + item + "\n")
	}
}
