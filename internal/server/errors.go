package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-editor/internal/portable"
	"github.com/jonathan/resume-editor/internal/store"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var vErr *portable.ValidationError
	var fieldErrs validator.ValidationErrors
	var tooLarge *http.MaxBytesError
	var corrupt *store.CorruptError
	switch {
	case errors.As(err, &corrupt):
		return http.StatusInternalServerError
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &vErr), errors.As(err, &fieldErrs):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
