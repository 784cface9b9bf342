package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalStore writes documents below a base directory.
type LocalStore struct {
	baseDir string
}

var _ Store = (*LocalStore)(nil)

// NewLocalStore creates a store rooted at baseDir. The directory is created
// on first write.
func NewLocalStore(baseDir string) *LocalStore {
	return &LocalStore{baseDir: baseDir}
}

// Put writes the reader to baseDir/key, replacing any existing file.
func (s *LocalStore) Put(ctx context.Context, key, contentType string, r io.Reader, size int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	clean, err := cleanKey(key)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", &Error{Key: key, Message: "failed to create output directory", Cause: err}
	}
	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", &Error{Key: key, Message: "failed to open output file", Cause: err}
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return "", &Error{Key: key, Message: "failed to write output file", Cause: err}
	}
	if err := f.Close(); err != nil {
		return "", &Error{Key: key, Message: "failed to close output file", Cause: err}
	}
	return fullPath, nil
}

// Get reads baseDir/key.
func (s *LocalStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clean, err := cleanKey(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.baseDir, filepath.FromSlash(clean)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &Error{Key: key, Message: "failed to read object", Cause: ErrNotFound}
	}
	if err != nil {
		return nil, &Error{Key: key, Message: "failed to read object", Cause: err}
	}
	return data, nil
}
