package config

import (
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
	"time"
)

var GConfig *Config

const (
	SupplierLocal  = "local"
	SupplierAliOss = "ali_oss"
	SupplierAwsS3  = "aws_s3"
	SupplierMySQL  = "mysql"
)

// Init loads the yaml file at filePath into GConfig. A missing file leaves
// GConfig at its defaults so examples can run without any configuration.
func Init(filePath string) {
	data, err := os.ReadFile(filePath)
	if err != nil && !os.IsNotExist(err) {
		panic(err)
	}
	c, err := Parse(data)
	if err != nil {
		panic(err)
	}
	GConfig = c
}

func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	c.fillDefaults()
	if err := c.Verify(); err != nil {
		return nil, err
	}
	return c, nil
}

func Default() *Config {
	c := &Config{}
	c.fillDefaults()
	return c
}

type Config struct {
	HTTPPort        string `yaml:"http_port"`
	StorageSupplier string `yaml:"storage_supplier"`
	UploadDir       string `yaml:"upload_dir"`
	CacheExpires    string `yaml:"cache_expires"`
	Log             `yaml:"log"`
	AliOss          `yaml:"ali_oss"`
	S3              `yaml:"aws_s3"`
	MySQL           `yaml:"mysql"`
}

func (c *Config) fillDefaults() {
	if c.HTTPPort == "" {
		c.HTTPPort = ":8080"
	}
	if c.StorageSupplier == "" {
		c.StorageSupplier = SupplierLocal
	}
	if c.UploadDir == "" {
		c.UploadDir = os.TempDir()
	}
	if c.CacheExpires == "" {
		c.CacheExpires = "5m"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.MySQL.Charset == "" {
		c.MySQL.Charset = "utf8mb4"
	}
}

func (c *Config) Verify() error {
	switch c.StorageSupplier {
	case SupplierLocal, SupplierAliOss, SupplierAwsS3, SupplierMySQL:
	default:
		return fmt.Errorf("unsupported storage_supplier %q", c.StorageSupplier)
	}
	if _, err := time.ParseDuration(c.CacheExpires); err != nil {
		return fmt.Errorf("cache_expires: %w", err)
	}
	if c.StorageSupplier == SupplierAliOss && c.AliOss.Bucket == "" {
		return fmt.Errorf("ali_oss.bucket is required")
	}
	if c.StorageSupplier == SupplierAwsS3 && c.S3.Bucket == "" {
		return fmt.Errorf("aws_s3.bucket is required")
	}
	return nil
}

// CacheExpiration is only valid after Verify.
func (c *Config) CacheExpiration() time.Duration {
	d, _ := time.ParseDuration(c.CacheExpires)
	return d
}

type Log struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
}

type AliOss struct {
	AccessKeyId     string `yaml:"access_key_id"`
	AccessKeySecret string `yaml:"access_key_secret"`
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	Bucket          string `yaml:"bucket"`
	Directory       string `yaml:"directory"`
}

type S3 struct {
	AccessKeyId     string `yaml:"access_key_id"`
	AccessKeySecret string `yaml:"access_key_secret"`
	Region          string `yaml:"region"`
	Bucket          string `yaml:"bucket"`
	Directory       string `yaml:"directory"`
}

type MySQL struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	Database     string `yaml:"database"`
	Charset      string `yaml:"charset"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}
