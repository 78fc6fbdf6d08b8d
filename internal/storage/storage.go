// Package storage abstracts where uploaded avatars end up: the local
// public directory served by the router, or an S3-compatible bucket.
package storage

import (
	"context"
	"io"
)

// Storage persists a named object and returns the public URL it will be
// reachable at. Save must never leave a half-written object behind:
// implementations either complete the write or clean up after themselves.
type Storage interface {
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error)
}
