package faqsource

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/yanqian/garden-faq/internal/domain/gardenfaq"
)

// Config selects and tunes the document source.
type Config struct {
	// Location is an http(s) URL, an s3://bucket/key URI, or a local path.
	Location     string
	HTTPTimeout  time.Duration
	MaxBodyBytes int64
	ObjectStore  ObjectStoreConfig
}

// ObjectStoreConfig holds S3-compatible credentials used by s3:// locations.
type ObjectStoreConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
}

// Open returns the source matching cfg.Location's scheme.
func Open(cfg Config) (gardenfaq.Source, error) {
	location := strings.TrimSpace(cfg.Location)
	if location == "" {
		return nil, errors.New("faq source location cannot be empty")
	}

	lower := strings.ToLower(location)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		if _, err := url.Parse(location); err != nil {
			return nil, fmt.Errorf("invalid faq url: %w", err)
		}
		return NewHTTPSource(location, cfg.HTTPTimeout, cfg.MaxBodyBytes), nil
	case strings.HasPrefix(lower, "s3://"):
		bucket, key, err := parseObjectURI(location)
		if err != nil {
			return nil, err
		}
		return NewObjectSource(cfg.ObjectStore, bucket, key, cfg.MaxBodyBytes)
	case strings.HasPrefix(lower, "file://"):
		return NewFileSource(location[len("file://"):]), nil
	default:
		return NewFileSource(location), nil
	}
}

func parseObjectURI(raw string) (string, string, error) {
	rest := raw[len("s3://"):]
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || strings.TrimSpace(key) == "" {
		return "", "", fmt.Errorf("invalid object location %q, want s3://bucket/key", raw)
	}
	return bucket, key, nil
}
