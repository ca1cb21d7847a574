package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	prompt, err := Get(EnhanceFile, "rewrite-section")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.Content}}")
}

func TestGet_InvalidFile(t *testing.T) {
	_, err := Get("nonexistent.json", "some-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	_, err := Get(EnhanceFile, "nonexistent-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLookup_FallsBack(t *testing.T) {
	prompt, err := Lookup(EnhanceFile, "guidance-hobbies", "guidance-default")
	require.NoError(t, err)
	assert.Contains(t, prompt, "active voice")

	_, err = Lookup(EnhanceFile, "a", "b")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]string
		want     string
	}{
		{"substitutes", "Rewrite {{.Section}}: {{.Content}}", map[string]string{"Section": "skills", "Content": "Go"}, "Rewrite skills: Go"},
		{"no placeholders", "plain", map[string]string{"Key": "Value"}, "plain"},
		{"unknown placeholder kept", "Hello {{.Name}}", map[string]string{}, "Hello {{.Name}}"},
		{"values are not re-expanded", "{{.A}}", map[string]string{"A": "{{.B}}", "B": "x"}, "{{.B}}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.template, tt.data))
		})
	}
}

func TestRender(t *testing.T) {
	out, err := Render(EnhanceFile, "rewrite-section", map[string]string{
		"Section":  "summary",
		"Guidance": "Be brief.",
		"Content":  "Experienced developer",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Rewrite the summary section")
	assert.Contains(t, out, "Be brief.")
	assert.NotContains(t, out, "{{.")
}

func TestList(t *testing.T) {
	keys, err := List(EnhanceFile)
	require.NoError(t, err)
	assert.Contains(t, keys, "rewrite-section")
	assert.Contains(t, keys, "guidance-default")
	assert.IsIncreasing(t, keys)
}
