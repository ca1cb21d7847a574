package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/resume-editor/internal/portable"
	"github.com/jonathan/resume-editor/internal/types"
)

// FileStore writes the latest document to a JSON file in portable form.
type FileStore struct {
	path string

	mu   sync.Mutex
	last *Receipt
}

// NewFileStore returns a store writing to path.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultFilePath
	}
	return &FileStore{path: path}
}

// Path returns the file the store writes to.
func (s *FileStore) Path() string {
	return s.path
}

// Save atomically replaces the file with doc.
func (s *FileStore) Save(_ context.Context, doc types.Document) (Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := portable.WriteFile(s.path, doc); err != nil {
		return Receipt{}, fmt.Errorf("failed to save resume: %w", err)
	}
	r := newReceipt()
	s.last = &r
	return r, nil
}

// Latest reads the file back. A file written by another process gets a
// nil ID and its modification time.
func (s *FileStore) Latest(_ context.Context) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to stat %s: %w", s.path, err)
	}
	doc, err := portable.ReadFile(s.path)
	if err != nil {
		var vErr *portable.ValidationError
		if errors.As(err, &vErr) {
			return Record{}, &CorruptError{Backend: "file", Cause: err}
		}
		return Record{}, fmt.Errorf("failed to load saved resume: %w", err)
	}

	r := Receipt{ID: uuid.Nil, SavedAt: info.ModTime().UTC()}
	if s.last != nil {
		r = *s.last
	}
	return Record{Receipt: r, Document: doc}, nil
}

// Close is a no-op.
func (s *FileStore) Close() error {
	return nil
}
