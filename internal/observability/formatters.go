// Package observability provides formatted output for CLI commands.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-editor/internal/rendering"
	"github.com/jonathan/resume-editor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer writes boxed summaries of documents and command results.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocument outputs the header fields and a per-section count of doc,
// followed by the first few visible entries of each section.
func (p *Printer) PrintDocument(doc types.Document) {
	preview := rendering.Project(doc)
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:      %s\n", doc.Name))
	sb.WriteString(fmt.Sprintf("Email:     %s\n", doc.Email))
	sb.WriteString(fmt.Sprintf("LinkedIn:  %s\n", doc.LinkedIn))
	sb.WriteString("\n")

	for _, s := range types.Sections {
		sb.WriteString(fmt.Sprintf("%-15s %d\n", s.Title()+":", doc.Len(s)))
	}

	writeList(&sb, "Experience", lineTexts(preview.Experience))
	writeList(&sb, "Education", lineTexts(preview.Education))
	writeList(&sb, "Skills", preview.Skills)

	p.printBox("RESUME DOCUMENT", sb.String())
}

// PrintSaved outputs a gateway acknowledgement.
func (p *Printer) PrintSaved(status, id, savedAt string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Status:    %s\n", status))
	if id != "" {
		sb.WriteString(fmt.Sprintf("ID:        %s\n", id))
	}
	if savedAt != "" {
		sb.WriteString(fmt.Sprintf("Saved at:  %s\n", savedAt))
	}
	p.printBox("SAVED", sb.String())
}

// PrintExported outputs the files an export produced. Empty paths are
// skipped.
func (p *Printer) PrintExported(paths ...string) {
	var lines []string
	for _, path := range paths {
		if path != "" {
			lines = append(lines, "  • "+path)
		}
	}
	if len(lines) == 0 {
		return
	}
	p.printBox("EXPORTED", strings.Join(lines, "\n"))
}

func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString("\n" + title + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

func lineTexts(lines []rendering.Line) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Text())
	}
	return out
}
