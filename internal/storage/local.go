package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Local writes avatars into the public directory that the router serves
// statically under /avatars.
type Local struct {
	dir     string
	baseURL string
}

func NewLocal(dir, baseURL string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create avatar directory, %w", err)
	}

	return &Local{
		dir:     dir,
		baseURL: baseURL,
	}, nil
}

// Save stages the object in a temp file inside the target directory and
// renames it into place. Rename-or-delete on every exit path, a failed
// upload never leaves a stray temp file.
func (l *Local) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error) {
	temp, err := os.CreateTemp(l.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create staging file, %w", err)
	}

	if _, err := io.Copy(temp, r); err != nil {
		temp.Close()
		os.Remove(temp.Name())
		return "", fmt.Errorf("failed to write staging file, %w", err)
	}

	if err := temp.Close(); err != nil {
		os.Remove(temp.Name())
		return "", fmt.Errorf("failed to flush staging file, %w", err)
	}

	dest := filepath.Join(l.dir, filepath.Base(name))
	if err := os.Rename(temp.Name(), dest); err != nil {
		os.Remove(temp.Name())
		return "", fmt.Errorf("failed to move avatar into place, %w", err)
	}

	return l.baseURL + "/avatars/" + filepath.Base(name), nil
}
