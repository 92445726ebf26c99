package faqsource

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yanqian/garden-faq/internal/domain/gardenfaq"
)

// ObjectSource reads the FAQ document from an S3-compatible bucket (R2, MinIO, S3).
type ObjectSource struct {
	client   *minio.Client
	bucket   string
	key      string
	maxBytes int64
}

// NewObjectSource constructs the storage adapter for bucket/key.
func NewObjectSource(cfg ObjectStoreConfig, bucket, key string, maxBytes int64) (*ObjectSource, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, fmt.Errorf("object store endpoint is required for s3 sources")
	}
	useSSL := !strings.HasPrefix(strings.ToLower(strings.TrimSpace(cfg.Endpoint)), "http://")
	client, err := minio.New(sanitizeEndpoint(cfg.Endpoint), &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       useSSL,
		Region:       cfg.Region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init object store client: %w", err)
	}
	if maxBytes <= 0 {
		maxBytes = defaultMaxBodyBytes
	}
	return &ObjectSource{client: client, bucket: bucket, key: key, maxBytes: maxBytes}, nil
}

// Name implements gardenfaq.Source.
func (s *ObjectSource) Name() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.key)
}

// Fetch downloads the current object version.
func (s *ObjectSource) Fetch(ctx context.Context) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get faq object %s: %w", s.Name(), err)
	}
	defer obj.Close()

	info, err := obj.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat faq object %s: %w", s.Name(), err)
	}
	if info.Size > s.maxBytes {
		return nil, fmt.Errorf("faq document exceeds %d bytes", s.maxBytes)
	}
	data, err := io.ReadAll(io.LimitReader(obj, s.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read faq object %s: %w", s.Name(), err)
	}
	return data, nil
}

// sanitizeEndpoint removes schemes and paths to satisfy minio.New expectations.
func sanitizeEndpoint(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	if idx := strings.Index(raw, "/"); idx >= 0 {
		raw = raw[:idx]
	}
	return raw
}

var _ gardenfaq.Source = (*ObjectSource)(nil)
