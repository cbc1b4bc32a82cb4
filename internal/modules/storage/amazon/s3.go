package amazon

import (
	"context"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/reusedev/pattern-hub/config"
	"io"
	"path"
	"strings"
)

type objectUploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

type Uploader struct {
	uploader   objectUploader
	bucketName string
	directory  string
}

// NewUploader uses static credentials when configured and falls back to the
// default AWS credential chain otherwise.
func NewUploader(ctx context.Context, cfg config.S3) (*Uploader, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyId != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyId, cfg.AccessKeySecret, "")))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg)
	return &Uploader{
		uploader:   manager.NewUploader(client),
		bucketName: cfg.Bucket,
		directory:  cfg.Directory,
	}, nil
}

func (u *Uploader) Name() string {
	return "AWS storage"
}

func (u *Uploader) Upload(ctx context.Context, filePath, name string, content io.Reader) (string, error) {
	if name == "" {
		name = uuid.New().String()
	}
	key := strings.TrimPrefix(path.Join(u.directory, filePath, name), "/")
	out, err := u.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(u.bucketName),
		Key:    aws.String(key),
		Body:   content,
	})
	if err != nil {
		return "", err
	}
	if out.Location != "" {
		return out.Location, nil
	}
	return key, nil
}
