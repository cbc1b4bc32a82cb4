package ali

import (
	"context"
	"fmt"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
	"github.com/google/uuid"
	"github.com/reusedev/pattern-hub/config"
	"io"
	"path"
	"strings"
)

type objectPutter interface {
	PutObject(ctx context.Context, request *oss.PutObjectRequest, optFns ...func(*oss.Options)) (*oss.PutObjectResult, error)
}

type Uploader struct {
	client     objectPutter
	bucketName string
	directory  string
}

func NewUploader(config config.AliOss) (*Uploader, error) {
	credential := credentials.NewStaticCredentialsProvider(config.AccessKeyId, config.AccessKeySecret, "")
	cfg := oss.LoadDefaultConfig().
		WithCredentialsProvider(credential).
		WithEndpoint(config.Endpoint).WithRegion(config.Region)
	client := oss.NewClient(cfg)
	if client == nil {
		return nil, fmt.Errorf("create oss client failed")
	}
	return &Uploader{
		client:     client,
		bucketName: config.Bucket,
		directory:  config.Directory,
	}, nil
}

func (o *Uploader) Name() string {
	return "Ali OSS storage"
}

// Upload stores content under directory/filePath/name. An empty name gets a
// random uuid key.
func (o *Uploader) Upload(ctx context.Context, filePath, name string, content io.Reader) (string, error) {
	fName := name
	if fName == "" {
		fName = uuid.New().String()
	}
	key := o.fullPath(path.Join(filePath, fName))
	return key, o.upload(ctx, fName, key, content)
}

func (o *Uploader) fullPath(fName string) string {
	return strings.TrimPrefix(path.Join(o.directory, fName), "/")
}

func (o *Uploader) upload(ctx context.Context, fName, key string, reader io.Reader) error {
	request := &oss.PutObjectRequest{
		Bucket:             oss.Ptr(o.bucketName),
		Key:                oss.Ptr(key),
		Body:               reader,
		ContentDisposition: oss.Ptr(fmt.Sprintf("attachment; filename=\"%s\"", fName)),
	}
	_, err := o.client.PutObject(ctx, request)
	if err != nil {
		return err
	}
	return nil
}
