package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// DocumentStore persists one ordered collection of records as a single JSON
// array document at a fixed path. Every mutation is whole-document: callers
// load the full collection, modify it in memory, and save it back. There is
// no locking; concurrent writers from separate processes can lose updates,
// which is acceptable for a single-user, single-process application.
type DocumentStore[T any] struct {
	fs   afero.Fs
	path string
}

// NewDocumentStore creates a store for the document at path on the given
// filesystem.
func NewDocumentStore[T any](fs afero.Fs, path string) *DocumentStore[T] {
	return &DocumentStore[T]{
		fs:   fs,
		path: path,
	}
}

// Path returns the document's location on the underlying filesystem.
func (s *DocumentStore[T]) Path() string {
	return s.path
}

// Load reads and decodes the full document. A missing or malformed document
// is treated as an empty collection rather than an error; only genuine I/O
// failures propagate. Malformed content is logged and otherwise ignored, so
// the next Save will overwrite it.
func (s *DocumentStore[T]) Load() ([]T, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("failed to read document %s: %w", s.path, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("Document %s is not a valid JSON array, treating as empty: %v", s.path, err)
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Save serializes the full collection and overwrites the document, creating
// the parent directory if it does not exist. A nil slice is written as an
// empty array so the document always decodes as a collection.
func (s *DocumentStore[T]) Save(records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", s.path, err)
	}

	if dir := filepath.Dir(s.path); dir != "." && dir != string(filepath.Separator) {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := afero.WriteFile(s.fs, s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", s.path, err)
	}
	return nil
}

// Ensure seeds an empty document at the store's path if none exists yet, so
// readers always find a well-formed file. An existing document is left alone.
func (s *DocumentStore[T]) Ensure() error {
	exists, err := afero.Exists(s.fs, s.path)
	if err != nil {
		return fmt.Errorf("failed to check document %s: %w", s.path, err)
	}
	if exists {
		return nil
	}
	return s.Save(nil)
}
