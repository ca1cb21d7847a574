// Package validation provides checks on rendered export artifacts.
package validation

import (
	"bytes"

	"github.com/ledongthuc/pdf"
)

// CountPDFPages counts the number of pages in an in-memory PDF document
func CountPDFPages(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, &Error{Message: "PDF is empty"}
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, &Error{Message: "failed to parse PDF", Cause: err}
	}

	return reader.NumPage(), nil
}

// RequireSinglePage fails unless data is a PDF with exactly one page
func RequireSinglePage(data []byte) error {
	count, err := CountPDFPages(data)
	if err != nil {
		return err
	}
	if count != 1 {
		return &PageCountError{Expected: 1, Actual: count}
	}
	return nil
}
