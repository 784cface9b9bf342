package db

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-cv/internal/document"
)

func sampleDocument() *document.Document {
	return &document.Document{
		ID:         uuid.New(),
		Filename:   "Jane_Doe_fullstack_modern_CV_2025.pdf",
		Format:     "pdf",
		PageFormat: "a4",
		Variant:    "fullstack",
		Template:   "modern",
		Pages:      2,
		CreatedAt:  time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
		Warnings:   []string{"unknown template \"glossy\", using modern"},
		Bytes:      []byte("%PDF-1.3 sample"),
	}
}

func TestNewDocumentRecord(t *testing.T) {
	doc := sampleDocument()

	rec := NewDocumentRecord(doc, "documents/cv/Jane_Doe_fullstack_modern_CV_2025.pdf", false)
	assert.Equal(t, doc.ID, rec.ID)
	assert.Equal(t, doc.Filename, rec.Filename)
	assert.Equal(t, int64(len(doc.Bytes)), rec.SizeBytes)
	assert.Equal(t, "documents/cv/Jane_Doe_fullstack_modern_CV_2025.pdf", rec.StorageLocation)
	assert.Nil(t, rec.Content)
	assert.Equal(t, "application/pdf", rec.ContentType())

	rec.Warnings[0] = "changed"
	assert.NotEqual(t, "changed", doc.Warnings[0], "warnings are copied")

	withContent := NewDocumentRecord(doc, "", true)
	assert.Equal(t, doc.Bytes, withContent.Content)
}

func TestDocumentRecord_StorageKey(t *testing.T) {
	doc := sampleDocument()
	rec := NewDocumentRecord(doc, "", false)
	assert.Equal(t, doc.StorageKey(), rec.StorageKey())
	assert.True(t, strings.HasPrefix(rec.StorageKey(), doc.ID.String()+"/"))
}

func TestDocumentRecord_ContentType(t *testing.T) {
	assert.Equal(t, "application/rtf", (&DocumentRecord{Format: "rtf"}).ContentType())
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationFiles.ReadDir("migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "00001_create_documents.sql", entries[0].Name())
}

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("Skipping integration test: TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := Connect(ctx, dbURL)
	if err != nil {
		t.Skipf("Skipping integration test: failed to connect to DB: %v", err)
	}
	require.NoError(t, db.Migrate(ctx))
	return db
}

func TestDocumentArchive_Integration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	doc := sampleDocument()
	rec := NewDocumentRecord(doc, "", true)
	require.NoError(t, db.SaveDocument(ctx, rec))
	t.Cleanup(func() { _ = db.DeleteDocument(context.Background(), rec.ID) })

	got, err := db.GetDocument(ctx, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, doc.Filename, got.Filename)
	assert.Equal(t, doc.Bytes, got.Content)
	assert.Equal(t, doc.Warnings, got.Warnings)
	assert.Empty(t, got.StorageLocation)
	assert.True(t, doc.CreatedAt.Equal(got.CreatedAt))

	rec.Pages = 3
	rec.StorageLocation = "documents/cv/x.pdf"
	require.NoError(t, db.SaveDocument(ctx, rec))
	got, err = db.GetDocument(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Pages)
	assert.Equal(t, "documents/cv/x.pdf", got.StorageLocation)

	list, err := db.ListDocuments(ctx, "fullstack", 10)
	require.NoError(t, err)
	found := false
	for _, r := range list {
		if r.ID == rec.ID {
			found = true
			assert.Nil(t, r.Content)
		}
	}
	assert.True(t, found)

	missing, err := db.GetDocument(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}
