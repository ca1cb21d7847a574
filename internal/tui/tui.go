// Package tui provides the interactive resume form with a live text preview.
package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jonathan/resume-editor/internal/document"
	"github.com/jonathan/resume-editor/internal/rendering"
	"github.com/jonathan/resume-editor/internal/session"
	"github.com/jonathan/resume-editor/internal/types"
)

// DefaultBaseName names the exported files, as in resume.json and resume.pdf.
const DefaultBaseName = "resume"

// Options configures the form.
type Options struct {
	// OutDir receives exported files. Defaults to the working directory.
	OutDir string
	// BaseName is the exported file name without extension.
	BaseName string
	// Context bounds background operations started from the form.
	Context context.Context
}

type opDoneMsg struct {
	op     string
	detail string
	err    error
}

type importedMsg struct {
	path string
	doc  types.Document
	err  error
}

type enhancedMsg struct {
	requested string
	text      string
	err       error
}

// Model is the Bubble Tea model of the form. All document mutations happen
// in Update; background commands only see snapshots.
type Model struct {
	sess   *session.Session
	ctx    context.Context
	outDir string
	base   string

	keys keyMap
	help help.Model

	fields []field
	inputs []textinput.Model
	focus  int

	// prompt reads the file name for an import while prompting is set.
	prompt    textinput.Model
	prompting bool

	status    string
	statusErr bool
	pending   int

	width  int
	height int
}

// New builds the form for sess.
func New(sess *session.Session, opts Options) Model {
	if opts.OutDir == "" {
		opts.OutDir = "."
	}
	if opts.BaseName == "" {
		opts.BaseName = DefaultBaseName
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	prompt := textinput.New()
	prompt.Prompt = "Import file: "
	prompt.Placeholder = "resume.json"
	prompt.Width = 48

	m := Model{
		sess:   sess,
		ctx:    opts.Context,
		outDir: opts.OutDir,
		base:   opts.BaseName,
		keys:   defaultKeyMap(),
		help:   help.New(),
		prompt: prompt,
		width:  100,
		height: 30,
	}
	m.rebuild()
	return m
}

// Run starts the form and blocks until the user quits.
func Run(sess *session.Session, opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(sess, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case opDoneMsg:
		m.pending--
		if msg.err != nil {
			m.fail(fmt.Errorf("%s: %w", msg.op, msg.err))
		} else {
			m.ok(msg.detail)
		}
		return m, nil
	case enhancedMsg:
		m.pending--
		return m.applyEnhanced(msg), nil
	case importedMsg:
		m.pending--
		if msg.err != nil {
			m.fail(msg.err)
			return m, textinput.Blink
		}
		m.sess.ApplyImport(msg.path, msg.doc)
		m.rebuild()
		m.ok("Imported " + msg.path)
		return m, textinput.Blink
	case tea.KeyMsg:
		if m.prompting {
			return m.handlePrompt(msg)
		}
		return m.handleKey(msg)
	}

	// Cursor blink and other input messages go to whichever input has focus.
	var cmd tea.Cmd
	if m.prompting {
		m.prompt, cmd = m.prompt.Update(msg)
	} else if len(m.inputs) > 0 {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	}
	return m, cmd
}

func (m Model) handlePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		path := strings.TrimSpace(m.prompt.Value())
		cmd := m.closePrompt()
		if path == "" {
			m.fail(errors.New("import: no file given"))
			return m, cmd
		}
		cmd = m.importFile(path)
		return m, cmd
	case key.Matches(msg, m.keys.Cancel):
		cmd := m.closePrompt()
		m.ok("Import cancelled")
		return m, cmd
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Import):
		cmd = m.openPrompt()
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		cmd = m.setFocus(m.focus + 1)
	case key.Matches(msg, m.keys.Prev):
		cmd = m.setFocus(m.focus - 1)
	case key.Matches(msg, m.keys.Add):
		cmd = m.add()
	case key.Matches(msg, m.keys.Remove):
		cmd = m.remove()
	case key.Matches(msg, m.keys.Save):
		snap := m.sess.Snapshot()
		cmd = m.run("save", func(ctx context.Context) (string, error) {
			status, err := m.sess.SaveSnapshot(ctx, snap)
			return "Saved: " + status, err
		})
	case key.Matches(msg, m.keys.ExportJSON):
		snap := m.sess.Snapshot()
		path := filepath.Join(m.outDir, m.base+".json")
		cmd = m.run("export json", func(context.Context) (string, error) {
			return "Exported " + path, m.sess.WriteJSON(path, snap)
		})
	case key.Matches(msg, m.keys.ExportPDF):
		snap, pres := m.sess.Snapshot(), m.sess.Presentation
		path := filepath.Join(m.outDir, m.base+".pdf")
		cmd = m.run("export pdf", func(ctx context.Context) (string, error) {
			return "Exported " + path, m.sess.WritePDF(ctx, path, snap, pres)
		})
	case key.Matches(msg, m.keys.Print):
		snap, pres := m.sess.Snapshot(), m.sess.Presentation
		cmd = m.run("print", func(ctx context.Context) (string, error) {
			return "Sent to printer", m.sess.PrintSnapshot(ctx, snap, pres)
		})
	case key.Matches(msg, m.keys.Theme):
		m.ok("Theme: " + string(m.sess.CycleTheme()))
		return m, nil
	case key.Matches(msg, m.keys.Font):
		m.ok("Font: " + string(m.sess.CycleFont()))
		return m, nil
	case key.Matches(msg, m.keys.Dark):
		if m.sess.ToggleDarkMode() {
			m.ok("Dark mode on")
		} else {
			m.ok("Dark mode off")
		}
		return m, nil
	case key.Matches(msg, m.keys.Enhance):
		cmd = m.enhance()
	default:
		return m.edit(msg)
	}
	return m, cmd
}

// edit passes a key to the focused input and applies any change to the model.
func (m Model) edit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.inputs) == 0 {
		return m, nil
	}
	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if after := m.inputs[m.focus].Value(); after != before {
		if _, err := applyEdit(m.sess.Model, m.fields[m.focus], after); err != nil {
			m.fail(err)
		}
	}
	return m, cmd
}

// run starts fn in the background and reports its result as opDoneMsg.
func (m *Model) run(op string, fn func(ctx context.Context) (string, error)) tea.Cmd {
	m.pending++
	m.status, m.statusErr = op+"...", false
	ctx := m.ctx
	return func() tea.Msg {
		detail, err := fn(ctx)
		return opDoneMsg{op: op, detail: detail, err: err}
	}
}

func (m *Model) openPrompt() tea.Cmd {
	m.prompting = true
	if len(m.inputs) > 0 {
		m.inputs[m.focus].Blur()
	}
	m.prompt.Reset()
	return m.prompt.Focus()
}

func (m *Model) closePrompt() tea.Cmd {
	m.prompting = false
	m.prompt.Blur()
	if len(m.inputs) == 0 {
		return nil
	}
	return m.inputs[m.focus].Focus()
}

// importFile reads path in the background. The document is only replaced
// once the result is back in Update, and only if the file was valid.
func (m *Model) importFile(path string) tea.Cmd {
	m.pending++
	m.status, m.statusErr = "import...", false
	sess := m.sess
	return func() tea.Msg {
		doc, err := sess.ReadImport(path)
		return importedMsg{path: path, doc: doc, err: err}
	}
}

func (m *Model) enhance() tea.Cmd {
	snap := m.sess.Snapshot()
	requested := snap.Document.Summary
	m.pending++
	m.status, m.statusErr = "enhance...", false
	ctx := m.ctx
	sess := m.sess
	return func() tea.Msg {
		text, err := sess.EnhanceSnapshot(ctx, snap, string(types.FieldSummary))
		return enhancedMsg{requested: requested, text: text, err: err}
	}
}

func (m Model) applyEnhanced(msg enhancedMsg) Model {
	if msg.err != nil {
		m.fail(fmt.Errorf("enhance: %w", msg.err))
		return m
	}
	if m.sess.Model.Snapshot().Document.Summary != msg.requested {
		m.fail(errors.New("enhance: summary changed while waiting, result discarded"))
		return m
	}
	if err := m.sess.Model.SetField(types.FieldSummary, msg.text); err != nil {
		m.fail(err)
		return m
	}
	for i, f := range m.fields {
		if f.kind == kindScalar && f.scalar == types.FieldSummary {
			m.inputs[i].SetValue(msg.text)
		}
	}
	m.ok("Summary enhanced")
	return m
}

func (m *Model) add() tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	f := m.fields[m.focus]
	if err := addItem(m.sess.Model, f); err != nil {
		m.fail(err)
		return nil
	}
	m.rebuild()
	last := m.sess.Model.Snapshot().Document.Len(f.section) - 1
	m.ok(fmt.Sprintf("Added %s %d", f.section.Title(), last+1))
	return m.setFocus(m.indexOf(f.section, last))
}

func (m *Model) remove() tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	f := m.fields[m.focus]
	if err := removeItem(m.sess.Model, f); err != nil {
		m.fail(err)
		return nil
	}
	m.rebuild()
	m.ok(fmt.Sprintf("Removed %s %d", f.section.Title(), f.index+1))
	target := f.index
	if target > 0 {
		target--
	}
	return m.setFocus(m.indexOf(f.section, target))
}

// indexOf returns the first field of section[index].
func (m Model) indexOf(section types.Section, index int) int {
	for i, f := range m.fields {
		if f.section == section && f.index == index && f.repeatable() {
			return i
		}
	}
	return m.focus
}

// rebuild lays the inputs out again after a structural change.
func (m *Model) rebuild() {
	fields, values := buildFields(m.sess.Snapshot().Document)
	inputs := make([]textinput.Model, len(fields))
	for i, v := range values {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Width = 48
		ti.SetValue(v)
		inputs[i] = ti
	}
	m.fields, m.inputs = fields, inputs
	if m.focus >= len(m.fields) {
		m.focus = len(m.fields) - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
	if len(m.inputs) > 0 && !m.prompting {
		m.inputs[m.focus].Focus()
	}
}

func (m *Model) setFocus(i int) tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	n := len(m.inputs)
	i = ((i % n) + n) % n
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

func (m *Model) ok(msg string) {
	m.status, m.statusErr = msg, false
}

func (m *Model) fail(err error) {
	var se *document.StructuralError
	if errors.As(err, &se) {
		m.status, m.statusErr = "STRUCTURAL ERROR: "+err.Error(), true
		return
	}
	m.status, m.statusErr = err.Error(), true
}

// View implements tea.Model.
func (m Model) View() string {
	form := m.formView()
	preview := m.previewView()
	body := lipgloss.JoinHorizontal(lipgloss.Top, form, "  ", preview)

	if m.prompting {
		hints := m.help.ShortHelpView([]key.Binding{m.keys.Confirm, m.keys.Cancel})
		return body + "\n" + focusStyle.Render(m.prompt.View()) + "\n" + helpStyle.Render(hints)
	}

	status := successStyle.Render(m.status)
	if m.statusErr {
		status = errorStyle.Render(m.status)
	}
	if m.pending > 0 {
		status += mutedStyle.Render(fmt.Sprintf("  (%d running)", m.pending))
	}
	return body + "\n" + status + "\n" + helpStyle.Render(m.help.View(m.keys))
}

func (m Model) formView() string {
	visible := (m.height - 6) / 2
	if visible < 4 {
		visible = 4
	}
	start := m.focus - visible/2
	if start > len(m.fields)-visible {
		start = len(m.fields) - visible
	}
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > len(m.fields) {
		end = len(m.fields)
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Resume Editor"))
	sb.WriteString("\n")
	for i := start; i < end; i++ {
		label := labelStyle.Render("  " + m.fields[i].label())
		if i == m.focus {
			label = focusStyle.Render("> " + m.fields[i].label())
		}
		sb.WriteString(label + "\n  " + m.inputs[i].View() + "\n")
	}
	if end < len(m.fields) {
		sb.WriteString(mutedStyle.Render(fmt.Sprintf("  ... %d more", len(m.fields)-end)))
	}
	return sb.String()
}

func (m Model) previewView() string {
	pres := m.sess.Presentation
	header := fmt.Sprintf("%s / %s", pres.Theme, pres.Font)
	if pres.DarkMode {
		header += " / dark"
	}
	text := rendering.RenderText(rendering.Project(m.sess.Model.Snapshot().Document))
	width := m.width/2 - 4
	if width < 30 {
		width = 30
	}
	return panelStyle.Width(width).Render(mutedStyle.Render(header) + "\n\n" + text)
}
