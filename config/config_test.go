package config

import (
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseDefaults(t *testing.T) {
	c, err := Parse(nil)
	require.NoError(t, err)
	require.Equal(t, ":8080", c.HTTPPort)
	require.Equal(t, SupplierLocal, c.StorageSupplier)
	require.Equal(t, "info", c.Log.Level)
	require.Equal(t, 5*time.Minute, c.CacheExpiration())
}

func TestParseYaml(t *testing.T) {
	data := []byte(`
http_port: ":9000"
storage_supplier: aws_s3
cache_expires: 30s
log:
  level: debug
  file: /tmp/pattern-hub.log
aws_s3:
  region: eu-west-1
  bucket: uploads
`)
	c, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, ":9000", c.HTTPPort)
	require.Equal(t, "debug", c.Log.Level)
	require.Equal(t, "/tmp/pattern-hub.log", c.Log.File)
	require.Equal(t, "uploads", c.S3.Bucket)
	require.Equal(t, 30*time.Second, c.CacheExpiration())
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown supplier", "storage_supplier: ftp"},
		{"bad duration", "cache_expires: soon"},
		{"oss without bucket", "storage_supplier: ali_oss"},
		{"s3 without bucket", "storage_supplier: aws_s3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
		})
	}
}

func TestInitMissingFile(t *testing.T) {
	Init(filepath.Join(t.TempDir(), "absent.yml"))
	require.NotNil(t, GConfig)
	require.Equal(t, SupplierLocal, GConfig.StorageSupplier)
}

func TestInitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("upload_dir: /srv/uploads\n"), 0644))
	Init(path)
	require.Equal(t, "/srv/uploads", GConfig.UploadDir)
}
