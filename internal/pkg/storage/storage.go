package storage

import (
	"context"
	"io"
)

// Storage defines the interface for file storage operations.
// Paths are relative to the storage root.
type Storage interface {
	// Save writes content to path, creating parent directories as needed.
	Save(ctx context.Context, path string, content io.Reader) error

	// Get opens the file at path for reading.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the file at path. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error
}
