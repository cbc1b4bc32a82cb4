package storage

import (
	"context"
	"fmt"
	"github.com/reusedev/pattern-hub/config"
	"github.com/reusedev/pattern-hub/internal/components/mysql"
	"github.com/reusedev/pattern-hub/internal/modules/logs"
	"github.com/reusedev/pattern-hub/internal/modules/storage/ali"
	"github.com/reusedev/pattern-hub/internal/modules/storage/amazon"
	"github.com/reusedev/pattern-hub/internal/modules/storage/database"
	"github.com/reusedev/pattern-hub/internal/modules/storage/local"
	"io"
	"strings"
	"sync"
)

type UploadStrategy interface {
	Name() string
	Upload(ctx context.Context, filePath, name string, content io.Reader) (string, error)
}

type UploadResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Location string `json:"location,omitempty"`
}

type Context struct {
	mu       sync.RWMutex
	strategy UploadStrategy
}

func NewContext(s UploadStrategy) *Context {
	return &Context{strategy: s}
}

func (c *Context) SetStrategy(s UploadStrategy) {
	c.mu.Lock()
	c.strategy = s
	c.mu.Unlock()
}

// FileUpload never returns an error; failures are logged and reported in
// the result.
func (c *Context) FileUpload(ctx context.Context, filePath, name, content string) UploadResult {
	c.mu.RLock()
	s := c.strategy
	c.mu.RUnlock()

	location, err := s.Upload(ctx, filePath, name, strings.NewReader(content))
	if err != nil {
		logs.Logger.Error().Err(err).Str("strategy", s.Name()).Str("name", name).Msg("upload failed")
		return UploadResult{Message: "Error uploading to " + s.Name()}
	}
	logs.Logger.Debug().Str("strategy", s.Name()).Str("location", location).Msg("upload done")
	return UploadResult{Success: true, Message: "Uploaded to " + s.Name(), Location: location}
}

// FromConfig builds the strategy selected by storage_supplier.
func FromConfig(ctx context.Context, cfg *config.Config) (UploadStrategy, error) {
	switch cfg.StorageSupplier {
	case config.SupplierLocal:
		return local.NewUploader(cfg.UploadDir), nil
	case config.SupplierAliOss:
		return ali.NewUploader(cfg.AliOss)
	case config.SupplierAwsS3:
		return amazon.NewUploader(ctx, cfg.S3)
	case config.SupplierMySQL:
		db, err := mysql.InitMySQL(cfg.MySQL)
		if err != nil {
			return nil, err
		}
		return database.NewUploader(db)
	default:
		return nil, fmt.Errorf("unsupported storage supplier %q", cfg.StorageSupplier)
	}
}
