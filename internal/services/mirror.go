package services

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rocjay1/budget-tracker/internal/models"
)

// BlobClient defines the blob operations the mirror needs.
type BlobClient interface {
	UploadText(ctx context.Context, containerName, blobName, content string) error
}

// MirroredStore saves through a FileStore and then copies the rewritten file
// to blob storage. The local file stays the source of truth: loads never
// touch the mirror and a failed upload does not fail the save.
type MirroredStore struct {
	*FileStore
	blob      BlobClient
	container string
}

// NewMirroredStore wraps store so every save is also uploaded to container.
func NewMirroredStore(store *FileStore, blob BlobClient, container string) *MirroredStore {
	return &MirroredStore{
		FileStore: store,
		blob:      blob,
		container: container,
	}
}

// Save writes entries locally, then uploads the file contents.
func (m *MirroredStore) Save(ctx context.Context, entries []models.Entry) error {
	if err := m.FileStore.Save(ctx, entries); err != nil {
		return err
	}

	content, err := os.ReadFile(m.Path())
	if err != nil {
		slog.WarnContext(ctx, "failed to read ledger for mirroring", "path", m.Path(), "error", err)
		return nil
	}

	blobName := filepath.Base(m.Path())
	if err := m.blob.UploadText(ctx, m.container, blobName, string(content)); err != nil {
		slog.WarnContext(ctx, "failed to mirror ledger", "container", m.container, "blob_name", blobName, "error", err)
	}
	return nil
}
