package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/portfolio-cv/internal/db"
	"github.com/jonathan/portfolio-cv/internal/document"
	"github.com/jonathan/portfolio-cv/internal/rendering"
	"github.com/jonathan/portfolio-cv/internal/schemas"
	"github.com/jonathan/portfolio-cv/internal/types"
	"github.com/jonathan/portfolio-cv/internal/variant"
	root "github.com/jonathan/portfolio-cv/schemas"
)

// VariantSummary is one entry of GET /variants
type VariantSummary struct {
	Key             string   `json:"key"`
	Label           string   `json:"label"`
	Headline        string   `json:"headline,omitempty"`
	DefaultTemplate string   `json:"defaultTemplate"`
	FileLabel       string   `json:"fileLabel"`
	FocusAreas      []string `json:"focusAreas,omitempty"`
}

// TemplatesResponse is the body of GET /templates
type TemplatesResponse struct {
	Templates []string `json:"templates"`
	Default   string   `json:"default"`
}

// handleVariants lists the configured role variants.
func (s *Server) handleVariants(w http.ResponseWriter, _ *http.Request) {
	keys := variant.Keys(s.base)
	out := make([]VariantSummary, 0, len(keys))
	for _, key := range keys {
		meta := variant.Resolve(s.base, key, types.Overrides{}).Variant
		out = append(out, VariantSummary{
			Key:             key,
			Label:           meta.Label,
			Headline:        meta.Headline,
			DefaultTemplate: meta.DefaultTemplate,
			FileLabel:       meta.FileLabel,
			FocusAreas:      meta.FocusAreas,
		})
	}
	s.jsonResponse(w, http.StatusOK, out)
}

// handleTemplates lists the layout templates.
func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, TemplatesResponse{
		Templates: rendering.Names(),
		Default:   rendering.DefaultTemplate,
	})
}

// handleBuild builds one document and streams it back.
func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, &ErrValidation{Field: "body", Message: err.Error()})
		return
	}
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}
	if err := schemas.ValidateEmbedded(root.BuildRequest, body); err != nil {
		s.writeError(w, &ErrValidation{Field: "body", Message: err.Error()})
		return
	}

	var req types.BuildRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, &ErrValidation{Field: "body", Message: err.Error()})
		return
	}

	doc, err := s.builder.Build(s.base, req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	location := ""
	if s.store != nil {
		location, err = s.store.Put(r.Context(), doc.StorageKey(), doc.ContentType(), bytes.NewReader(doc.Bytes), int64(len(doc.Bytes)))
		if err != nil {
			s.writeError(w, &document.ResourceError{Message: "failed to store document", Cause: err})
			return
		}
		w.Header().Set("X-Storage-Location", location)
	}
	if s.archive != nil {
		if err := s.archive.SaveDocument(r.Context(), db.NewDocumentRecord(doc, location, s.store == nil)); err != nil {
			s.writeError(w, &document.ResourceError{Message: "failed to archive document", Cause: err})
			return
		}
	}

	w.Header().Set("X-Document-Id", doc.ID.String())
	w.Header().Set("X-Page-Count", strconv.Itoa(doc.Pages))
	if len(doc.Warnings) > 0 {
		w.Header().Set("X-Build-Warnings", strconv.Itoa(len(doc.Warnings)))
	}
	s.writeDocument(w, doc.Filename, doc.ContentType(), doc.Bytes)
}

// handleListDocuments lists archived documents, newest first.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		s.writeError(w, &ErrUnavailable{Feature: "document archive"})
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.writeError(w, &ErrValidation{Field: "limit", Message: "must be a non-negative integer"})
			return
		}
		limit = n
	}

	records, err := s.archive.ListDocuments(r.Context(), r.URL.Query().Get("variant"), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if records == nil {
		records = []db.DocumentRecord{}
	}
	s.jsonResponse(w, http.StatusOK, records)
}

// handleGetDocument downloads an archived document.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		s.writeError(w, &ErrUnavailable{Feature: "document archive"})
		return
	}

	rawID := r.PathValue("id")
	id, err := uuid.Parse(rawID)
	if err != nil {
		s.writeError(w, &ErrValidation{Field: "id", Message: "invalid document id"})
		return
	}

	rec, err := s.archive.GetDocument(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if rec == nil {
		s.writeError(w, &ErrNotFound{Resource: "document", ID: rawID})
		return
	}

	content := rec.Content
	if content == nil && s.store != nil {
		content, err = s.store.Get(r.Context(), rec.StorageKey())
		if err != nil {
			s.writeError(w, fmt.Errorf("failed to fetch stored document: %w", err))
			return
		}
	}
	if content == nil {
		s.writeError(w, &ErrNotFound{Resource: "document content", ID: rawID})
		return
	}

	w.Header().Set("X-Document-Id", rec.ID.String())
	if rec.Pages > 0 {
		w.Header().Set("X-Page-Count", strconv.Itoa(rec.Pages))
	}
	s.writeDocument(w, rec.Filename, rec.ContentType(), content)
}

// writeDocument writes document bytes as a download
func (s *Server) writeDocument(w http.ResponseWriter, filename, contentType string, content []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(content); err != nil {
		s.log.Warn().Err(err).Str("file", filename).Msg("failed to write document response")
	}
}
