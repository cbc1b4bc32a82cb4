package database

import (
	"context"
	"fmt"
	"gorm.io/gorm"
	"io"
	"path"
	"time"
)

type StoredFile struct {
	ID        uint      `gorm:"primaryKey"`
	Path      string    `gorm:"type:varchar(512);index"`
	Name      string    `gorm:"type:varchar(255)"`
	Content   []byte    `gorm:"type:longblob"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type Uploader struct {
	db *gorm.DB
}

// NewUploader migrates the StoredFile table before returning.
func NewUploader(db *gorm.DB) (*Uploader, error) {
	if err := db.AutoMigrate(&StoredFile{}); err != nil {
		return nil, err
	}
	return &Uploader{db: db}, nil
}

func (u *Uploader) Name() string {
	return "database storage"
}

func (u *Uploader) Upload(ctx context.Context, filePath, name string, content io.Reader) (string, error) {
	b, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	f := StoredFile{Path: path.Clean("/" + filePath), Name: name, Content: b}
	if err := u.db.WithContext(ctx).Create(&f).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("stored_files/%d", f.ID), nil
}
