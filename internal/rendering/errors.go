// Package rendering projects resumes into their preview form and exports them as paginated documents.
package rendering

import "fmt"

// Stage names a step of the export pipeline
type Stage string

// Export pipeline stages
const (
	StageRender    Stage = "render"
	StageRasterize Stage = "rasterize"
	StagePaginate  Stage = "paginate"
	StageVerify    Stage = "verify"
	StagePrint     Stage = "print"
)

// TemplateError represents an error parsing or executing the preview template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// ExportError represents an export that was aborted at some stage. No
// partial output accompanies it.
type ExportError struct {
	Stage Stage
	Cause error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export failed at %s stage: %v", e.Stage, e.Cause)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}
