package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalBackend stores objects as plain files inside one uploads directory.
type LocalBackend struct {
	dir string
}

// NewLocalBackend creates the uploads directory when missing.
func NewLocalBackend(dir string) (*LocalBackend, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalBackend{dir: dir}, nil
}

// Dir returns the backing directory.
func (l *LocalBackend) Dir() string { return l.dir }

// Save writes to a temp file in the same directory and renames it into
// place, so a failed write never leaves a partial object under key. The
// temp file is removed on every failure path.
func (l *LocalBackend) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if err := validKey(key); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(l.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, filepath.Join(l.dir, key)); err != nil {
		return fmt.Errorf("move into place: %w", err)
	}
	return nil
}

func (l *LocalBackend) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(l.dir, key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (l *LocalBackend) Remove(ctx context.Context, key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(l.dir, key)); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// validKey rejects keys that could escape the uploads directory.
func validKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key != filepath.Base(key) {
		return fmt.Errorf("invalid object key %q", key)
	}
	return nil
}
