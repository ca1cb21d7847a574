package portable

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"unicode/utf8"

	"github.com/jonathan/resume-editor/internal/document"
	"github.com/jonathan/resume-editor/internal/schemas"
	"github.com/jonathan/resume-editor/internal/types"
	rootschemas "github.com/jonathan/resume-editor/schemas"
)

// Envelope wraps a document for the persistence gateway.
type Envelope struct {
	Data types.Document `json:"data"`
}

var (
	validatorOnce sync.Once
	validator     *schemas.Validator
	validatorErr  error
)

func resumeValidator() (*schemas.Validator, error) {
	validatorOnce.Do(func() {
		validator, validatorErr = schemas.Compile(rootschemas.Resume)
	})
	return validator, validatorErr
}

// Marshal encodes doc as indented JSON in declared field order. Empty
// sections are always encoded as arrays.
func Marshal(doc types.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document.Clone(doc)); err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a document previously produced by Marshal. Keys not
// part of the document are ignored; missing or mistyped ones are not.
func Unmarshal(data []byte) (types.Document, error) {
	raw, err := checkShape(data)
	if err != nil {
		return types.Document{}, err
	}

	raw, err = exactKeys(raw)
	if err != nil {
		return types.Document{}, &ValidationError{Kind: KindShapeMismatch, Cause: err}
	}
	var doc types.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return types.Document{}, &ValidationError{Kind: KindShapeMismatch, Cause: err}
	}
	return document.Clone(doc), nil
}

// exactKeys keeps only the declared document and entry keys, compared
// case-sensitively. encoding/json would otherwise let "NAME" fill name.
func exactKeys(data []byte) ([]byte, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	out := make(map[string]any, len(types.ScalarFields)+len(types.Sections))
	for _, f := range types.ScalarFields {
		if v, ok := obj[string(f)]; ok {
			out[string(f)] = v
		}
	}
	for _, s := range types.Sections {
		v, ok := obj[string(s)]
		if !ok {
			continue
		}
		if !s.Structured() {
			out[string(s)] = v
			continue
		}
		var entries []map[string]json.RawMessage
		if err := json.Unmarshal(v, &entries); err != nil {
			return nil, err
		}
		kept := make([]map[string]json.RawMessage, len(entries))
		for i, e := range entries {
			kept[i] = make(map[string]json.RawMessage, len(s.Keys()))
			for _, k := range s.Keys() {
				if ev, ok := e[k]; ok {
					kept[i][k] = ev
				}
			}
		}
		out[string(s)] = kept
	}
	return json.Marshal(out)
}

// MarshalEnvelope encodes doc wrapped as {"data": doc}.
func MarshalEnvelope(doc types.Document) ([]byte, error) {
	data, err := json.Marshal(Envelope{Data: document.Clone(doc)})
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return data, nil
}

// UnmarshalEnvelope decodes {"data": doc}, validating doc like Unmarshal.
func UnmarshalEnvelope(data []byte) (types.Document, error) {
	if !utf8.Valid(data) || !json.Valid(data) {
		return types.Document{}, &ValidationError{Kind: KindMalformed, Cause: errors.New("envelope is not valid JSON")}
	}
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return types.Document{}, &ValidationError{Kind: KindShapeMismatch, Cause: err}
	}
	if len(env.Data) == 0 {
		return types.Document{}, &ValidationError{
			Kind:   KindShapeMismatch,
			Fields: []schemas.FieldError{{Field: "data", Message: "data is required"}},
		}
	}
	return Unmarshal(env.Data)
}

// ReadFile loads and decodes a document file.
func ReadFile(path string) (types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Document{}, fmt.Errorf("read file: %w", err)
	}
	return Unmarshal(data)
}

// WriteFile encodes doc into path. The file is replaced atomically.
func WriteFile(path string, doc types.Document) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}
	return WriteAtomic(path, data)
}

// WriteAtomic writes data to a temp file beside path and renames it into place.
func WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // best-effort cleanup, absent after rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close() //nolint:errcheck
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename file: %w", err)
	}
	return nil
}

func checkShape(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(data) {
		return nil, &ValidationError{Kind: KindMalformed, Cause: errors.New("content is not valid UTF-8")}
	}
	if !json.Valid(data) {
		var probe any
		cause := json.Unmarshal(data, &probe)
		if cause == nil {
			cause = errors.New("content is not valid JSON")
		}
		return nil, &ValidationError{Kind: KindMalformed, Cause: cause}
	}

	v, err := resumeValidator()
	if err != nil {
		return nil, err
	}
	if err := v.ValidateBytes(data); err != nil {
		var schemaErr *schemas.ValidationError
		if errors.As(err, &schemaErr) {
			return nil, &ValidationError{Kind: KindShapeMismatch, Fields: schemaErr.Errors, Cause: err}
		}
		return nil, &ValidationError{Kind: KindShapeMismatch, Cause: err}
	}
	return data, nil
}
