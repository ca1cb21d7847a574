package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-editor/internal/portable"
	"github.com/jonathan/resume-editor/internal/types"
)

// SaveResponse is the reply to /save-resume
type SaveResponse struct {
	Status  string    `json:"status"`
	ID      string    `json:"id"`
	SavedAt time.Time `json:"saved_at"`
}

// SectionInput is the request body for /ai-enhance
type SectionInput struct {
	Section string `json:"section" validate:"required,oneof=name email linkedin summary education experience skills achievements certifications"`
	Content string `json:"content" validate:"required,max=20000"`
}

// EnhanceResponse is the reply to /ai-enhance
type EnhanceResponse struct {
	EnhancedContent string `json:"enhanced_content"`
}

// SavedResumeResponse is the reply to /saved-resume
type SavedResumeResponse struct {
	ID      string         `json:"id"`
	SavedAt time.Time      `json:"saved_at"`
	Data    types.Document `json:"data"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSaveResume stores the enveloped document
func (s *Server) handleSaveResume(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Invalid request body: "+err.Error())
		return
	}

	doc, err := portable.UnmarshalEnvelope(body)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	receipt, err := s.store.Save(r.Context(), doc)
	if err != nil {
		s.log.Error("save failed", "error", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to save resume")
		return
	}
	s.log.Debug("resume saved", "id", receipt.ID)

	s.jsonResponse(w, http.StatusOK, SaveResponse{
		Status:  "saved",
		ID:      receipt.ID.String(),
		SavedAt: receipt.SavedAt,
	})
}

// handleSavedResume returns the latest saved document
func (s *Server) handleSavedResume(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Latest(r.Context())
	if err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			s.log.Error("load failed", "error", err)
		}
		s.errorResponse(w, status, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, SavedResumeResponse{
		ID:      rec.ID.String(),
		SavedAt: rec.SavedAt,
		Data:    rec.Document,
	})
}

// handleEnhance rewrites one section's content
func (s *Server) handleEnhance(w http.ResponseWriter, r *http.Request) {
	var req SectionInput
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes)).Decode(&req); err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			status = http.StatusBadRequest
		}
		s.errorResponse(w, status, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	out, err := s.enhancer.Enhance(r.Context(), req.Section, req.Content)
	if err != nil {
		s.log.Error("enhance failed", "section", req.Section, "error", err)
		s.errorResponse(w, http.StatusBadGateway, "failed to enhance section")
		return
	}
	s.jsonResponse(w, http.StatusOK, EnhanceResponse{EnhancedContent: out})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("encoding JSON response", "error", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Sprintf("validation error: %s failed on %s", fe.Field(), fe.Tag())
	}
	return err.Error()
}
