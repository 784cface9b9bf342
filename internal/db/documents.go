package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DefaultListLimit caps ListDocuments when no limit is given
const DefaultListLimit = 50

// SaveDocument archives a built document. Saving the same id twice
// replaces the earlier row.
func (db *DB) SaveDocument(ctx context.Context, rec *DocumentRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	warnings := rec.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO documents (id, filename, format, page_format, variant, template, pages,
		                        size_bytes, storage_location, warnings, content, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9::text, ''), $10, $11, $12)
		 ON CONFLICT (id) DO UPDATE SET
		     filename = EXCLUDED.filename,
		     pages = EXCLUDED.pages,
		     size_bytes = EXCLUDED.size_bytes,
		     storage_location = EXCLUDED.storage_location,
		     warnings = EXCLUDED.warnings,
		     content = EXCLUDED.content`,
		rec.ID, rec.Filename, rec.Format, rec.PageFormat, rec.Variant, rec.Template, rec.Pages,
		rec.SizeBytes, rec.StorageLocation, warnings, rec.Content, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save document %s: %w", rec.Filename, err)
	}
	return nil
}

// GetDocument retrieves an archived document including its bytes.
// It returns nil when no document has the id.
func (db *DB) GetDocument(ctx context.Context, id uuid.UUID) (*DocumentRecord, error) {
	var rec DocumentRecord
	var location *string
	err := db.pool.QueryRow(ctx,
		`SELECT id, filename, format, page_format, variant, template, pages, size_bytes,
		        storage_location, warnings, content, created_at
		 FROM documents WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.Filename, &rec.Format, &rec.PageFormat, &rec.Variant, &rec.Template,
		&rec.Pages, &rec.SizeBytes, &location, &rec.Warnings, &rec.Content, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	if location != nil {
		rec.StorageLocation = *location
	}
	return &rec, nil
}

// ListDocuments returns the most recent documents without their bytes,
// optionally filtered by variant.
func (db *DB) ListDocuments(ctx context.Context, variantKey string, limit int) ([]DocumentRecord, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, filename, format, page_format, variant, template, pages, size_bytes,
		        COALESCE(storage_location, ''), warnings, created_at
		 FROM documents
		 WHERE ($1::text = '' OR variant = $1)
		 ORDER BY created_at DESC
		 LIMIT $2`,
		variantKey, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var records []DocumentRecord
	for rows.Next() {
		var rec DocumentRecord
		if err := rows.Scan(&rec.ID, &rec.Filename, &rec.Format, &rec.PageFormat, &rec.Variant,
			&rec.Template, &rec.Pages, &rec.SizeBytes, &rec.StorageLocation, &rec.Warnings, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}
	return records, nil
}

// DeleteDocument removes an archived document. Deleting a missing id is not an error.
func (db *DB) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	if _, err := db.pool.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}
