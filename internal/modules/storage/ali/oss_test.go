package ali

import (
	"context"
	"errors"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/reusedev/pattern-hub/config"
	"github.com/stretchr/testify/require"
	"io"
	"strings"
	"testing"
)

type fakePutter struct {
	req  *oss.PutObjectRequest
	body string
	err  error
}

func (f *fakePutter) PutObject(_ context.Context, request *oss.PutObjectRequest, _ ...func(*oss.Options)) (*oss.PutObjectResult, error) {
	f.req = request
	b, _ := io.ReadAll(request.Body)
	f.body = string(b)
	if f.err != nil {
		return nil, f.err
	}
	return &oss.PutObjectResult{}, nil
}

func TestUpload(t *testing.T) {
	p := &fakePutter{}
	u := &Uploader{client: p, bucketName: "bucket", directory: "cloud_test/pattern_hub"}
	key, err := u.Upload(context.Background(), "/", "Output.txt", strings.NewReader("Hello World"))
	require.NoError(t, err)
	require.Equal(t, "cloud_test/pattern_hub/Output.txt", key)
	require.Equal(t, "bucket", *p.req.Bucket)
	require.Equal(t, key, *p.req.Key)
	require.Equal(t, `attachment; filename="Output.txt"`, *p.req.ContentDisposition)
	require.Equal(t, "Hello World", p.body)
}

func TestUploadGeneratedName(t *testing.T) {
	p := &fakePutter{}
	u := &Uploader{client: p, bucketName: "bucket"}
	key, err := u.Upload(context.Background(), "docs", "", strings.NewReader("x"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(key, "docs/"))
	require.Len(t, strings.TrimPrefix(key, "docs/"), 36)
}

func TestUploadError(t *testing.T) {
	u := &Uploader{client: &fakePutter{err: errors.New("denied")}}
	_, err := u.Upload(context.Background(), "", "a.txt", strings.NewReader("x"))
	require.EqualError(t, err, "denied")
}

func TestNewUploader(t *testing.T) {
	u, err := NewUploader(config.AliOss{Endpoint: "oss-cn-hangzhou.aliyuncs.com", Region: "cn-hangzhou", Bucket: "b"})
	require.NoError(t, err)
	require.Equal(t, "Ali OSS storage", u.Name())
}
