package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/portfolio-cv/internal/config"
	"github.com/jonathan/portfolio-cv/internal/db"
	"github.com/jonathan/portfolio-cv/internal/document"
	"github.com/jonathan/portfolio-cv/internal/logger"
	"github.com/jonathan/portfolio-cv/internal/resumedata"
	"github.com/jonathan/portfolio-cv/internal/storage"
	"github.com/jonathan/portfolio-cv/internal/textcv"
	"github.com/jonathan/portfolio-cv/internal/types"
)

// loadBase reads the base model from a data file, a plain-text CV, or the
// built-in sample when neither is given.
func loadBase(dataPath, textPath string) (*types.ResumeData, error) {
	switch {
	case dataPath != "" && textPath != "":
		return nil, fmt.Errorf("--data and --text are mutually exclusive")
	case dataPath != "":
		data, err := resumedata.Load(dataPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load base model: %w", err)
		}
		return data, nil
	case textPath != "":
		doc, err := textcv.ParseFile(textPath)
		if err != nil {
			return nil, fmt.Errorf("failed to import text CV: %w", err)
		}
		data := textcv.Normalize(doc)
		if err := resumedata.CheckIDs(data); err != nil {
			return nil, err
		}
		return data, nil
	default:
		logger.Debug().Msg("no --data or --text given, using the built-in sample")
		return resumedata.Sample()
	}
}

// writeDocument saves doc under dir and returns the written path.
func writeDocument(doc *document.Document, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, doc.Filename)
	f, err := os.Create(path)
	if err != nil {
		return "", &document.ResourceError{Message: fmt.Sprintf("failed to create %s", path), Cause: err}
	}
	if _, err := doc.WriteTo(f); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", &document.ResourceError{Message: fmt.Sprintf("failed to close %s", path), Cause: err}
	}
	return path, nil
}

// sinks are the optional destinations a built document is published to
// besides the output directory.
type sinks struct {
	store   storage.Store
	archive *db.DB
}

// openSinks connects to object storage and the archive database when asked.
func openSinks(ctx context.Context, cfg *config.Config, upload, archive bool) (*sinks, error) {
	s := &sinks{}
	if upload {
		if !cfg.MinioEnabled() {
			return nil, fmt.Errorf("--upload requires storage.endpoint and storage.bucket (or %s and %s)", config.EnvMinioEndpoint, config.EnvMinioBucket)
		}
		store, err := storage.NewMinioStore(ctx, cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to object storage: %w", err)
		}
		s.store = store
	}
	if archive {
		database, err := openArchive(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		s.archive = database
	}
	return s, nil
}

// openArchive connects to PostgreSQL and applies pending migrations.
func openArchive(ctx context.Context, databaseURL string) (*db.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("%s is required for the document archive", config.EnvDatabaseURL)
	}
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return database, nil
}

// publish uploads and archives doc as configured.
func (s *sinks) publish(ctx context.Context, doc *document.Document) error {
	location := ""
	if s.store != nil {
		var err error
		location, err = s.store.Put(ctx, doc.StorageKey(), doc.ContentType(), bytes.NewReader(doc.Bytes), int64(len(doc.Bytes)))
		if err != nil {
			return fmt.Errorf("failed to upload %s: %w", doc.Filename, err)
		}
		logger.Info().Str("location", location).Msg("document uploaded")
	}
	if s.archive != nil {
		if err := s.archive.SaveDocument(ctx, db.NewDocumentRecord(doc, location, s.store == nil)); err != nil {
			return fmt.Errorf("failed to archive %s: %w", doc.Filename, err)
		}
		logger.Info().Str("id", doc.ID.String()).Msg("document archived")
	}
	return nil
}

func (s *sinks) Close() {
	if s.archive != nil {
		s.archive.Close()
	}
}
