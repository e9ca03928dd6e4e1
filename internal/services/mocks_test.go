package services

import (
	"context"
)

// MockBlobClient is a mock implementation of BlobClient
type MockBlobClient struct {
	UploadTextFunc func(ctx context.Context, containerName, blobName, content string) error
}

func (m *MockBlobClient) UploadText(ctx context.Context, containerName, blobName, content string) error {
	if m.UploadTextFunc != nil {
		return m.UploadTextFunc(ctx, containerName, blobName, content)
	}
	return nil
}
