package local

import (
	"context"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUpload(t *testing.T) {
	root := t.TempDir()
	u := NewUploader(root)
	location, err := u.Upload(context.Background(), "/nested/dir", "Output.txt", strings.NewReader("Hello World"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "nested", "dir", "Output.txt"), location)

	b, err := os.ReadFile(location)
	require.NoError(t, err)
	require.Equal(t, "Hello World", string(b))
}

func TestUploadOverwrites(t *testing.T) {
	u := NewUploader(t.TempDir())
	_, err := u.Upload(context.Background(), "", "a.txt", strings.NewReader("first, longer content"))
	require.NoError(t, err)
	location, err := u.Upload(context.Background(), "", "a.txt", strings.NewReader("second"))
	require.NoError(t, err)
	b, _ := os.ReadFile(location)
	require.Equal(t, "second", string(b))
}

func TestUploadBadRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(root, nil, 0644))
	_, err := NewUploader(root).Upload(context.Background(), "", "a.txt", strings.NewReader("x"))
	require.Error(t, err)
}
