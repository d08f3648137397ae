package storage

import (
	"context"
	"io"
)

// Storage defines the interface for file storage operations.
type Storage interface {
	// Save saves a file to the storage under the given relative path.
	Save(ctx context.Context, path string, content io.Reader) error

	// Get retrieves a file from the storage.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file from the storage. Deleting a missing file is not
	// an error.
	Delete(ctx context.Context, path string) error
}
