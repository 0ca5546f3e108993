package storage

import (
	"context"
	"io"
)

// ProgressFunc receives the cumulative byte count during an upload. It is
// informational only and never used for flow control.
type ProgressFunc func(written int64)

type UploadResult struct {
	URL         string
	Size        int64
	ContentType string
}

// Storage is the blob store behind pickup photos. Backends: local filesystem
// for development, Google Cloud Storage in production.
type Storage interface {
	Upload(ctx context.Context, key, contentType string, r io.Reader, progress ProgressFunc) (*UploadResult, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}
