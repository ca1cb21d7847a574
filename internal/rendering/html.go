package rendering

import (
	"bytes"
	_ "embed"
	"html/template"
)

// PreviewRootID is the id of the element holding the rendered resume.
const PreviewRootID = "resume-preview"

//go:embed templates/preview.html.tmpl
var previewTemplate string

var previewTmpl = template.Must(template.New("preview").Parse(previewTemplate))

type htmlData struct {
	Preview    Preview
	ThemeClass string
	FontClass  string
}

// RenderHTML renders the preview as a standalone HTML page styled by the presentation.
func RenderHTML(p Preview, pres Presentation) (string, error) {
	if err := pres.Validate(); err != nil {
		return "", &TemplateError{Message: "presentation rejected", Cause: err}
	}
	var buf bytes.Buffer
	err := previewTmpl.Execute(&buf, htmlData{
		Preview:    p,
		ThemeClass: pres.ThemeClass(),
		FontClass:  pres.FontClass(),
	})
	if err != nil {
		return "", &TemplateError{Message: "failed to execute preview template", Cause: err}
	}
	return buf.String(), nil
}
