package rendering

import (
	"context"
	"os"
	"testing"

	"github.com/jonathan/resume-editor/internal/types"
	"github.com/jonathan/resume-editor/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requires a local Chrome. Enable with RESUME_CHROME_TESTS=1.
func newTestBrowser(t *testing.T) *Browser {
	t.Helper()
	if testing.Short() || os.Getenv("RESUME_CHROME_TESTS") == "" {
		t.Skip("skipping chrome integration test; set RESUME_CHROME_TESTS=1")
	}
	b, err := NewBrowser(context.Background(), os.Getenv("CHROME_PATH"), nil)
	require.NoError(t, err)
	t.Cleanup(b.Close)
	return b
}

func TestBrowser_ExportPDF(t *testing.T) {
	b := newTestBrowser(t)
	p := NewPipeline(b, nil, nil)

	doc := types.DefaultDocument()
	doc.Experience = []types.ExperienceEntry{{Role: "Engineer", Company: "Acme", Duration: "2020-2023"}}
	pdf, err := p.ExportPDF(context.Background(), doc, DefaultPresentation())
	require.NoError(t, err)

	pages, err := validation.CountPDFPages(pdf)
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
}

func TestBrowser_RasterizeWithoutPreviewRoot(t *testing.T) {
	b := newTestBrowser(t)
	_, err := b.Rasterize(context.Background(), "<html><body><p>nothing here</p></body></html>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not attached")
}

func TestBrowser_PrintPDF(t *testing.T) {
	b := newTestBrowser(t)
	html, err := RenderHTML(Project(types.DefaultDocument()), DefaultPresentation())
	require.NoError(t, err)
	pdf, err := b.PrintPDF(context.Background(), html)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}
