package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/portfolio-cv/internal/document"
)

// DocumentRecord is one archived build
type DocumentRecord struct {
	ID              uuid.UUID `json:"id"`
	Filename        string    `json:"filename"`
	Format          string    `json:"format"`
	PageFormat      string    `json:"page_format"`
	Variant         string    `json:"variant"`
	Template        string    `json:"template"`
	Pages           int       `json:"pages"`
	SizeBytes       int64     `json:"size_bytes"`
	StorageLocation string    `json:"storage_location,omitempty"`
	Warnings        []string  `json:"warnings"`
	CreatedAt       time.Time `json:"created_at"`
	Content         []byte    `json:"-"`
}

// ContentType returns the MIME type of the archived bytes.
func (r *DocumentRecord) ContentType() string {
	return (&document.Document{Format: r.Format}).ContentType()
}

// StorageKey is the object key the bytes were uploaded under.
func (r *DocumentRecord) StorageKey() string {
	return document.StorageKey(r.ID, r.Filename)
}

// NewDocumentRecord describes a built document. The bytes are archived
// when keepContent is set; location records where the document was stored.
func NewDocumentRecord(doc *document.Document, location string, keepContent bool) *DocumentRecord {
	rec := &DocumentRecord{
		ID:              doc.ID,
		Filename:        doc.Filename,
		Format:          doc.Format,
		PageFormat:      doc.PageFormat,
		Variant:         doc.Variant,
		Template:        doc.Template,
		Pages:           doc.Pages,
		SizeBytes:       int64(len(doc.Bytes)),
		StorageLocation: location,
		Warnings:        append([]string{}, doc.Warnings...),
		CreatedAt:       doc.CreatedAt,
	}
	if keepContent {
		rec.Content = doc.Bytes
	}
	return rec
}
