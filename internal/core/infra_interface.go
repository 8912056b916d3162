package core

import (
	"context"
	"io"
)

// ObjectClient defines interactions with S3 or any object storage.
// Reports can be staged from a bucket and synthesized audio published to one.
type ObjectClient interface {
	UploadFile(ctx context.Context, bucket, key string, data io.Reader, contentType string) (url string, err error)
	DeleteFile(ctx context.Context, bucket, key string) error
	GetObjectReader(ctx context.Context, bucket, key string) (io.ReadCloser, error)
}
