// Package storage holds the sinks built documents are written to: a local
// directory or a MinIO/S3 bucket.
package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"
)

// Store saves and retrieves built documents by key.
type Store interface {
	// Put writes size bytes from r under key and returns where the object
	// ended up (a file path or a bucket/key location).
	Put(ctx context.Context, key, contentType string, r io.Reader, size int64) (string, error)
	Get(ctx context.Context, key string) ([]byte, error)
}

// cleanKey rejects absolute keys and keys escaping the store root.
func cleanKey(key string) (string, error) {
	clean := filepath.ToSlash(filepath.Clean(strings.TrimSpace(key)))
	if clean == "." || clean == "" || strings.HasPrefix(clean, "../") || clean == ".." || filepath.IsAbs(clean) || strings.HasPrefix(clean, "/") {
		return "", &Error{Key: key, Message: "invalid storage key"}
	}
	return clean, nil
}
