package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rocjay1/budget-tracker/internal/csvparse"
	"github.com/rocjay1/budget-tracker/internal/models"
)

// DefaultLedgerFile is used when no path is configured.
const DefaultLedgerFile = "budget_data.csv"

// FileStore keeps the ledger as a single CSV file that is read and
// rewritten whole on every operation. It does no locking.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore backed by path.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultLedgerFile
	}
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads every entry from the backing file. A missing file means no
// entries yet and is not an error.
func (s *FileStore) Load(ctx context.Context) ([]models.Entry, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.DebugContext(ctx, "ledger file not found, starting empty", "path", s.path)
		return []models.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger %s: %w", s.path, err)
	}
	defer f.Close()

	entries, err := csvparse.ParseEntries(f)
	if err != nil {
		slog.ErrorContext(ctx, "failed to decode ledger", "path", s.path, "error", err)
		return nil, fmt.Errorf("failed to load ledger %s: %w", s.path, err)
	}

	slog.DebugContext(ctx, "loaded ledger", "path", s.path, "entries_count", len(entries))
	return entries, nil
}

// Save replaces the backing file with entries. The table is written to a
// temporary file in the same directory and renamed over the target.
func (s *FileStore) Save(ctx context.Context, entries []models.Entry) error {
	var buf bytes.Buffer
	if err := csvparse.WriteEntries(&buf, entries); err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create ledger directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", s.path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write ledger %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write ledger %s: %w", s.path, err)
	}
	mode := fs.FileMode(0644)
	if info, err := os.Stat(s.path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", s.path, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace ledger %s: %w", s.path, err)
	}

	slog.InfoContext(ctx, "saved ledger", "path", s.path, "entries_count", len(entries))
	return nil
}
