package rendering

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"log/slog"

	"github.com/jonathan/resume-editor/internal/types"
	"github.com/jonathan/resume-editor/internal/validation"
)

// Rasterizer turns a rendered HTML page into a PNG snapshot of the preview root.
type Rasterizer interface {
	Rasterize(ctx context.Context, html string) ([]byte, error)
}

// Paginator places a PNG snapshot on a single page and returns the PDF.
type Paginator interface {
	Paginate(ctx context.Context, img []byte, layout PageLayout) ([]byte, error)
}

// Spooler hands a rendered HTML page to the host print facility.
type Spooler interface {
	Spool(ctx context.Context, html string) error
}

// Pipeline runs render, rasterize and paginate for PDF export, and render
// then spool for printing. Every run works on the document it is given.
type Pipeline struct {
	Rasterizer Rasterizer
	Paginator  Paginator
	Spooler    Spooler
	Logger     *slog.Logger
}

// NewPipeline wires a pipeline whose stages are all served by one browser.
func NewPipeline(b *Browser, spooler Spooler, logger *slog.Logger) *Pipeline {
	return &Pipeline{Rasterizer: b, Paginator: b, Spooler: spooler, Logger: logger}
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}

// ExportPDF renders doc and returns a one-page PDF holding a single scaled
// image of the preview. On failure no bytes are returned.
func (p *Pipeline) ExportPDF(ctx context.Context, doc types.Document, pres Presentation) ([]byte, error) {
	html, err := RenderHTML(Project(doc), pres)
	if err != nil {
		return nil, &ExportError{Stage: StageRender, Cause: err}
	}

	img, err := p.Rasterizer.Rasterize(ctx, html)
	if err != nil {
		return nil, &ExportError{Stage: StageRasterize, Cause: err}
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(img))
	if err != nil {
		return nil, &ExportError{Stage: StageRasterize, Cause: fmt.Errorf("snapshot is not a PNG image: %w", err)}
	}
	p.logger().Debug("rasterized preview", "width", cfg.Width, "height", cfg.Height, "bytes", len(img))

	layout, err := FitToPage(cfg.Width, cfg.Height)
	if err != nil {
		return nil, &ExportError{Stage: StagePaginate, Cause: err}
	}
	pdf, err := p.Paginator.Paginate(ctx, img, layout)
	if err != nil {
		return nil, &ExportError{Stage: StagePaginate, Cause: err}
	}

	if err := validation.RequireSinglePage(pdf); err != nil {
		return nil, &ExportError{Stage: StageVerify, Cause: err}
	}
	p.logger().Debug("paginated preview",
		"page_width_mm", layout.PageWidthMM, "page_height_mm", layout.PageHeightMM, "bytes", len(pdf))
	return pdf, nil
}

// Print renders doc and hands it to the spooler. No rasterization happens.
func (p *Pipeline) Print(ctx context.Context, doc types.Document, pres Presentation) error {
	html, err := RenderHTML(Project(doc), pres)
	if err != nil {
		return &ExportError{Stage: StageRender, Cause: err}
	}
	if p.Spooler == nil {
		return &ExportError{Stage: StagePrint, Cause: fmt.Errorf("no print facility configured")}
	}
	if err := p.Spooler.Spool(ctx, html); err != nil {
		return &ExportError{Stage: StagePrint, Cause: err}
	}
	return nil
}
