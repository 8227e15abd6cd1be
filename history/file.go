package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// MaxRecordSizeBytes caps the history file size. Data-URI galleries can
// grow large; anything past this is refused rather than written.
const MaxRecordSizeBytes = 64 * 1024 * 1024 // 64MB

// FileAdapter persists the history record as a single JSON file.
// Writes go to a temp file first and are renamed into place, so readers
// never observe a partial record.
type FileAdapter struct {
	mu   sync.Mutex
	path string
}

// NewFileAdapter creates an adapter writing to the given path. Parent
// directories are created on first write.
func NewFileAdapter(path string) *FileAdapter {
	return &FileAdapter{path: path}
}

// Get reads the record. A missing file is not an error.
func (f *FileAdapter) Get(ctx context.Context) (json.RawMessage, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading history file: %w", err)
	}
	return data, true, nil
}

// Set writes the record atomically.
func (f *FileAdapter) Set(ctx context.Context, value json.RawMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(value) > MaxRecordSizeBytes {
		return fmt.Errorf("history record %d bytes exceeds maximum %d bytes", len(value), MaxRecordSizeBytes)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}

	tempPath := f.path + ".tmp"
	if err := os.WriteFile(tempPath, value, 0600); err != nil {
		return fmt.Errorf("writing history file: %w", err)
	}
	if err := os.Rename(tempPath, f.path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("committing history file: %w", err)
	}
	return nil
}

// Delete removes the record file. Missing files are ignored.
func (f *FileAdapter) Delete(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing history file: %w", err)
	}
	return nil
}

var _ Adapter = (*FileAdapter)(nil)
