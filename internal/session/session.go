// Package session runs the editor's actions against one owned document model.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-editor/internal/document"
	"github.com/jonathan/resume-editor/internal/gateway"
	"github.com/jonathan/resume-editor/internal/llm"
	"github.com/jonathan/resume-editor/internal/portable"
	"github.com/jonathan/resume-editor/internal/rendering"
	"github.com/jonathan/resume-editor/internal/types"
	"golang.org/x/sync/errgroup"
)

// Renderer produces the paginated and printed outputs. *rendering.Pipeline
// implements it.
type Renderer interface {
	ExportPDF(ctx context.Context, doc types.Document, pres rendering.Presentation) ([]byte, error)
	Print(ctx context.Context, doc types.Document, pres rendering.Presentation) error
}

// Saver sends a document to the persistence gateway. *gateway.Client
// implements it.
type Saver interface {
	Save(ctx context.Context, doc types.Document) (gateway.Ack, error)
}

// ErrUnavailable is returned when an action's collaborator is not configured.
var ErrUnavailable = errors.New("not configured")

// Session owns the document model and the presentation choices. Every
// export, save and print works on a snapshot taken when it is invoked, so
// later edits never reach an operation already in flight.
type Session struct {
	Model        *document.Model
	Presentation rendering.Presentation
	Renderer     Renderer
	Gateway      Saver
	Enhancer     llm.Enhancer
	Logger       *slog.Logger
}

// New creates a session seeded with doc.
func New(seed types.Document, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		Model:        document.NewModel(seed),
		Presentation: rendering.DefaultPresentation(),
		Logger:       logger,
	}
}

// Snapshot captures the current document.
func (s *Session) Snapshot() document.Snapshot {
	return s.Model.Snapshot()
}

// Import replaces the document with the contents of path. On any failure
// the current document and version are left as they were.
func (s *Session) Import(path string) error {
	doc, err := s.ReadImport(path)
	if err != nil {
		return err
	}
	s.ApplyImport(path, doc)
	return nil
}

// ReadImport loads and checks path without touching the model, so it may
// run on another goroutine. The result is committed with ApplyImport.
func (s *Session) ReadImport(path string) (types.Document, error) {
	doc, err := portable.ReadFile(path)
	if err != nil {
		s.Logger.Warn("import rejected", "path", path, "error", err)
		return types.Document{}, fmt.Errorf("import %s: %w", path, err)
	}
	return doc, nil
}

// ApplyImport replaces the document with one returned by ReadImport.
func (s *Session) ApplyImport(path string, doc types.Document) {
	s.Model.Replace(doc)
	s.Logger.Info("imported", "path", path, "version", s.Model.Version())
}

// ExportJSON writes the portable encoding of the current document to path.
func (s *Session) ExportJSON(path string) error {
	return s.WriteJSON(path, s.Snapshot())
}

// WriteJSON is ExportJSON for a snapshot taken earlier.
func (s *Session) WriteJSON(path string, snap document.Snapshot) error {
	if err := portable.WriteFile(path, snap.Document); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	s.Logger.Info("exported json", "path", path, "version", snap.Version)
	return nil
}

// ExportPDF renders the current document and writes a one-page PDF to path.
// Nothing is written when any stage fails.
func (s *Session) ExportPDF(ctx context.Context, path string) error {
	return s.WritePDF(ctx, path, s.Snapshot(), s.Presentation)
}

// WritePDF is ExportPDF for a snapshot taken earlier. It does not touch the
// model and may run on another goroutine.
func (s *Session) WritePDF(ctx context.Context, path string, snap document.Snapshot, pres rendering.Presentation) error {
	if s.Renderer == nil {
		return fmt.Errorf("pdf export: renderer %w", ErrUnavailable)
	}
	pdf, err := s.Renderer.ExportPDF(ctx, snap.Document, pres)
	if err != nil {
		s.Logger.Error("pdf export failed", "version", snap.Version, "error", err)
		return err
	}
	if err := portable.WriteAtomic(path, pdf); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	s.Logger.Info("exported pdf", "path", path, "version", snap.Version, "bytes", len(pdf))
	return nil
}

// Print hands the current document to the host print facility.
func (s *Session) Print(ctx context.Context) error {
	return s.PrintSnapshot(ctx, s.Snapshot(), s.Presentation)
}

// PrintSnapshot is Print for a snapshot taken earlier.
func (s *Session) PrintSnapshot(ctx context.Context, snap document.Snapshot, pres rendering.Presentation) error {
	if s.Renderer == nil {
		return fmt.Errorf("print: renderer %w", ErrUnavailable)
	}
	if err := s.Renderer.Print(ctx, snap.Document, pres); err != nil {
		return err
	}
	s.Logger.Info("sent to printer", "version", snap.Version)
	return nil
}

// Save sends the current document to the gateway and returns its status
// string unchanged. Failures never touch the document.
func (s *Session) Save(ctx context.Context) (string, error) {
	return s.SaveSnapshot(ctx, s.Snapshot())
}

// SaveSnapshot is Save for a snapshot taken earlier.
func (s *Session) SaveSnapshot(ctx context.Context, snap document.Snapshot) (string, error) {
	if s.Gateway == nil {
		return "", fmt.Errorf("save: gateway %w", ErrUnavailable)
	}
	ack, err := s.Gateway.Save(ctx, snap.Document)
	if err != nil {
		return "", err
	}
	s.Logger.Info("saved", "status", ack.Status, "version", snap.Version)
	return ack.Status, nil
}

// Enhance asks the enhancer for a rewrite of a scalar field or section. The
// document is not modified.
func (s *Session) Enhance(ctx context.Context, name string) (string, error) {
	return s.EnhanceSnapshot(ctx, s.Snapshot(), name)
}

// EnhanceSnapshot is Enhance for a snapshot taken earlier.
func (s *Session) EnhanceSnapshot(ctx context.Context, snap document.Snapshot, name string) (string, error) {
	if s.Enhancer == nil {
		return "", fmt.Errorf("enhance: enhancer %w", ErrUnavailable)
	}
	content, err := SectionText(snap.Document, name)
	if err != nil {
		return "", err
	}
	return s.Enhancer.Enhance(ctx, strings.ToLower(strings.TrimSpace(name)), content)
}

// SectionText returns the preview text of a scalar field or section.
func SectionText(doc types.Document, name string) (string, error) {
	if f, err := types.ParseScalarField(name); err == nil {
		return doc.Scalar(f), nil
	}
	section, err := types.ParseSection(name)
	if err != nil {
		return "", err
	}
	p := rendering.Project(doc)
	var lines []string
	switch section {
	case types.SectionExperience:
		for _, l := range p.Experience {
			lines = append(lines, l.Text())
		}
	case types.SectionEducation:
		for _, l := range p.Education {
			lines = append(lines, l.Text())
		}
	case types.SectionSkills:
		return strings.Join(p.Skills, document.SkillsSeparator), nil
	case types.SectionAchievements:
		lines = p.Achievements
	case types.SectionCertifications:
		lines = p.Certifications
	}
	return strings.Join(lines, "\n"), nil
}

// Exported lists the files written by ExportAll.
type Exported struct {
	JSON string
	PDF  string
}

// ExportAll writes <base>.json and <base>.pdf into dir from the same
// snapshot, concurrently. A failed PDF export leaves the JSON export intact;
// the returned error joins the failures of both.
func (s *Session) ExportAll(ctx context.Context, dir, base string) (Exported, error) {
	snap := s.Snapshot()
	pres := s.Presentation
	paths := Exported{
		JSON: filepath.Join(dir, base+".json"),
		PDF:  filepath.Join(dir, base+".pdf"),
	}

	var g errgroup.Group
	var jsonErr, pdfErr error
	g.Go(func() error {
		jsonErr = s.WriteJSON(paths.JSON, snap)
		return jsonErr
	})
	g.Go(func() error {
		pdfErr = s.WritePDF(ctx, paths.PDF, snap, pres)
		return pdfErr
	})
	_ = g.Wait()

	var written Exported
	if jsonErr == nil {
		written.JSON = paths.JSON
	}
	if pdfErr == nil {
		written.PDF = paths.PDF
	}
	return written, errors.Join(jsonErr, pdfErr)
}

// CycleFont switches to the next font.
func (s *Session) CycleFont() rendering.Font {
	s.Presentation.Font = rendering.NextFont(s.Presentation.Font)
	return s.Presentation.Font
}

// CycleTheme switches to the next theme.
func (s *Session) CycleTheme() rendering.Theme {
	s.Presentation.Theme = rendering.NextTheme(s.Presentation.Theme)
	return s.Presentation.Theme
}

// ToggleDarkMode flips dark mode.
func (s *Session) ToggleDarkMode() bool {
	s.Presentation.DarkMode = !s.Presentation.DarkMode
	return s.Presentation.DarkMode
}
