package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/resume-editor/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintDocument(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := types.DefaultDocument()
	doc.Experience = []types.ExperienceEntry{{Role: "Engineer", Company: "Acme", Duration: "2020-2023"}}
	doc.Skills = []string{"Go", "SQL"}

	p.PrintDocument(doc)
	output := buf.String()

	assert.Contains(t, output, "RESUME DOCUMENT")
	assert.Contains(t, output, "John Doe")
	assert.Contains(t, output, "Engineer at Acme (2020-2023)")
	assert.Contains(t, output, "• Go")
	assert.Contains(t, output, "Certifications:")
}

func TestPrintDocument_TruncatesLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := types.Document{Skills: []string{"a", "b", "c", "d", "e", "f", "g"}}
	p.PrintDocument(doc)

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestPrintSaved(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSaved("saved", "", "")
	output := buf.String()

	assert.Contains(t, output, "Status:    saved")
	assert.NotContains(t, output, "ID:")
}

func TestPrintExported(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExported("out/resume.json", "")
	assert.Contains(t, buf.String(), "out/resume.json")

	buf.Reset()
	p.PrintExported("", "")
	assert.Empty(t, buf.String())
}
