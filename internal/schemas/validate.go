// Package schemas validates JSON documents against a JSON Schema and reports
// every violation with the path of the offending field.
package schemas

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// RootField names the document itself in field paths.
const RootField = "(root)"

// ValidationError lists the schema violations of one document
type ValidationError struct {
	Errors []FieldError
}

// FieldError is one violation. Field is a dotted path such as
// "experience.0.role"; Rule is the schema keyword that failed.
type FieldError struct {
	Field   string
	Rule    string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Validator validates documents against one compiled schema. It is safe for
// concurrent use.
type Validator struct {
	schema *gojsonschema.Schema
}

// Compile parses schema content once so it can validate many documents.
func Compile(schemaContent string) (*Validator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaContent))
	if err != nil {
		return nil, &SchemaLoadError{Message: "schema compilation failed", Cause: err}
	}
	return &Validator{schema: schema}, nil
}

// ValidateBytes validates raw JSON content. The content must already be
// syntactically valid JSON.
func (v *Validator) ValidateBytes(jsonContent []byte) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(jsonContent))
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}
	return toValidationError(result)
}

// ValidateJSONString compiles schemaContent and validates jsonContent with it.
func ValidateJSONString(schemaContent, jsonContent string) error {
	v, err := Compile(schemaContent)
	if err != nil {
		return err
	}
	return v.ValidateBytes([]byte(jsonContent))
}

func toValidationError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	seen := make(map[FieldError]bool)
	var errs []FieldError
	for _, desc := range result.Errors() {
		fe := FieldError{
			Field:   fieldPath(desc),
			Rule:    desc.Type(),
			Message: desc.Description(),
		}
		if seen[fe] {
			continue
		}
		seen[fe] = true
		errs = append(errs, fe)
	}
	sort.SliceStable(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
	return &ValidationError{Errors: errs}
}

// fieldPath points required-property errors at the missing property rather
// than at its parent.
func fieldPath(desc gojsonschema.ResultError) string {
	field := desc.Field()
	if desc.Type() == "required" {
		if prop, ok := desc.Details()["property"].(string); ok && prop != "" {
			if field == "" || field == RootField {
				return prop
			}
			return field + "." + prop
		}
	}
	if field == "" {
		return RootField
	}
	return field
}
