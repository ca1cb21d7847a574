package document

import (
	"strings"

	"github.com/jonathan/resume-editor/internal/types"
)

// SkillsSeparator joins skills in their text form.
const SkillsSeparator = ", "

// SplitSkills converts the comma-delimited text form into the canonical
// sequence. Tokens are trimmed; empty tokens are dropped.
func SplitSkills(text string) []string {
	skills := []string{}
	for _, token := range strings.Split(text, ",") {
		if token = strings.TrimSpace(token); token != "" {
			skills = append(skills, token)
		}
	}
	return skills
}

// JoinSkills renders skills as the transient editable text value.
func JoinSkills(skills []string) string {
	return strings.Join(skills, SkillsSeparator)
}

// SetSkillsText replaces the skills section with the tokens of text.
func SetSkillsText(doc types.Document, text string) types.Document {
	out := Clone(doc)
	out.Skills = SplitSkills(text)
	return out
}
