package document

import (
	"testing"

	"github.com/jonathan/resume-editor/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestSplitSkills(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"trims and keeps order", "Go, Rust,  C++", []string{"Go", "Rust", "C++"}},
		{"empty text", "", []string{}},
		{"only separators", " , ,", []string{}},
		{"double separator", "Go,,Rust", []string{"Go", "Rust"}},
		{"trailing separator", "Go, ", []string{"Go"}},
		{"inner spaces kept", "Distributed Systems, Go", []string{"Distributed Systems", "Go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSkills(tt.text))
		})
	}
}

func TestJoinSkills(t *testing.T) {
	assert.Equal(t, "Go, Rust, C++", JoinSkills([]string{"Go", "Rust", "C++"}))
	assert.Equal(t, "", JoinSkills(nil))
	assert.Equal(t, []string{"Go", "Rust"}, SplitSkills(JoinSkills([]string{"Go", "Rust"})))
}

func TestSetSkillsText_FromEmptySkills(t *testing.T) {
	doc := types.DefaultDocument()
	assert.Empty(t, doc.Skills)

	out := SetSkillsText(doc, "Go, Rust,  C++")
	assert.Equal(t, []string{"Go", "Rust", "C++"}, out.Skills)
	assert.Empty(t, doc.Skills)
}
