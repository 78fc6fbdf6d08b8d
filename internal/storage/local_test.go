package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalSave(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	l, err := NewLocal(dir, "http://localhost:4000")
	require.NoError(t, err)

	url, err := l.Save(context.Background(), "u1_me.png", strings.NewReader("payload"), 7, "image/png")
	require.NoError(t, err)
	require.Equal(t, "http://localhost:4000/avatars/u1_me.png", url)

	b, err := os.ReadFile(filepath.Join(dir, "u1_me.png"))
	require.NoError(t, err)
	require.Equal(t, "payload", string(b))

	// No staging files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestLocalSaveStripsPathComponents(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	l, err := NewLocal(dir, "http://localhost:4000")
	require.NoError(t, err)

	url, err := l.Save(context.Background(), "../../etc/passwd", strings.NewReader("x"), 1, "text/plain")
	require.NoError(t, err)
	require.Equal(t, "http://localhost:4000/avatars/passwd", url)

	_, err = os.Stat(filepath.Join(dir, "passwd"))
	require.NoError(t, err)
}

func TestLocalSaveOverwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	l, err := NewLocal(dir, "http://localhost:4000")
	require.NoError(t, err)

	_, err = l.Save(context.Background(), "a.png", strings.NewReader("old"), 3, "image/png")
	require.NoError(t, err)

	_, err = l.Save(context.Background(), "a.png", strings.NewReader("new"), 3, "image/png")
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(dir, "a.png"))
	require.NoError(t, err)
	require.Equal(t, "new", string(b))
}
