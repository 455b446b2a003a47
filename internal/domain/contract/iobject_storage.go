package contract

import (
	"context"
	"io"
)

// ProgressFunc receives the transfer progress as a percentage in [0,100].
type ProgressFunc func(percent int)

// IObjectStorage is the resumable binary transfer boundary. Upload reports
// progress through fn and honors context cancellation: a cancelled transfer
// returns the context error, which callers distinguish from transfer-layer
// failure.
type IObjectStorage interface {
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string, fn ProgressFunc) (string, error)
	Remove(ctx context.Context, key string) error
}

// IMediaUploader is the third-party media endpoint used for article media:
// a multipart upload with a fixed preset identifier returning a secure URL.
type IMediaUploader interface {
	UploadMedia(ctx context.Context, filename string, r io.Reader, contentType string) (string, error)
}
