package object

import (
	"context"
	"io"
)

// ObjectStore archives binary objects (uploaded resumes and derived text).
type ObjectStore interface {
	// Save stores the reader under a fresh storage key derived from fileName
	// and returns the key and the number of bytes written.
	Save(ctx context.Context, fileName string, contentType string, r io.Reader) (storageKey string, sizeBytes int64, err error)
	// SaveWithKey stores the reader at an exact storage key.
	SaveWithKey(ctx context.Context, storageKey string, contentType string, r io.Reader) (int64, error)
	// Open retrieves a previously stored object.
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
