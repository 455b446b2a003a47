package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yonatanberih/pulse/internal/domain/contract"
)

// Config holds the object storage connection settings.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	// PublicBaseURL is the externally reachable prefix for stored objects.
	// When empty, Upload derives one from the endpoint and bucket.
	PublicBaseURL string
}

// ObjectStorage implements IObjectStorage on a MinIO/S3 bucket, reporting
// transfer progress through a counting reader so callers can surface
// percentages while the upload runs.
type ObjectStorage struct {
	cfg    Config
	client *minio.Client
}

// NewObjectStorage creates and returns a new ObjectStorage instance.
func NewObjectStorage(cfg Config) (*ObjectStorage, error) {
	cl, err := minio.New(strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "https://"), "http://"), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &ObjectStorage{cfg: cfg, client: cl}, nil
}

var _ contract.IObjectStorage = (*ObjectStorage)(nil)

// EnsureBucket creates the configured bucket if it does not exist.
func (s *ObjectStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// Upload streams r into the bucket under key. Progress is reported as whole
// percentages of size; cancellation of ctx aborts the transfer and returns
// the context's error unwrapped so callers can test for context.Canceled.
func (s *ObjectStorage) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string, fn contract.ProgressFunc) (string, error) {
	body := io.Reader(r)
	if fn != nil && size > 0 {
		body = &progressReader{r: r, total: size, report: fn}
	}
	_, err := s.client.PutObject(ctx, s.cfg.Bucket, key, body, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	if fn != nil {
		fn(100)
	}
	return s.objectURL(key), nil
}

// Remove deletes the object under key.
func (s *ObjectStorage) Remove(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.cfg.Bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object: %w", err)
	}
	return nil
}

func (s *ObjectStorage) objectURL(key string) string {
	if s.cfg.PublicBaseURL != "" {
		return strings.TrimSuffix(s.cfg.PublicBaseURL, "/") + "/" + key
	}
	scheme := "http"
	if s.cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.client.EndpointURL().Host, s.cfg.Bucket, key)
}

// progressReader counts bytes as they pass through and reports whole
// percentage steps, at most once per step.
type progressReader struct {
	r      io.Reader
	total  int64
	read   int64
	last   int
	report contract.ProgressFunc
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	p.read += int64(n)
	pct := int(p.read * 100 / p.total)
	if pct > 100 {
		pct = 100
	}
	if pct > p.last {
		p.last = pct
		p.report(pct)
	}
	return n, err
}
