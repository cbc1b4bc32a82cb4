package local

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

type Uploader struct {
	root string
}

func NewUploader(root string) *Uploader {
	return &Uploader{root: root}
}

func (u *Uploader) Name() string {
	return "local storage"
}

func (u *Uploader) Upload(_ context.Context, filePath, name string, content io.Reader) (string, error) {
	path := filepath.Join(u.root, filePath, name)
	if err := SaveFile(content, path); err != nil {
		return "", err
	}
	return path, nil
}

func SaveFile(f io.Reader, path string) error {
	dir := filepath.Dir(path)
	err := os.MkdirAll(dir, 0770)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = io.Copy(file, f)
	if err != nil {
		return err
	}
	return nil
}
