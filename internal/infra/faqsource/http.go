package faqsource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yanqian/garden-faq/internal/domain/gardenfaq"
	"github.com/yanqian/garden-faq/pkg/util"
)

const (
	defaultMaxBodyBytes = 8 << 20 // 8 MiB
	defaultHTTPTimeout  = 10 * time.Second
	cacheBustParam      = "_ts"
)

// HTTPSource reads the FAQ document from a static URL, always bypassing caches.
type HTTPSource struct {
	url        string
	maxBytes   int64
	httpClient *http.Client
	now        func() time.Time
}

// NewHTTPSource builds a source for rawURL.
func NewHTTPSource(rawURL string, timeout time.Duration, maxBytes int64) *HTTPSource {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	if maxBytes <= 0 {
		maxBytes = defaultMaxBodyBytes
	}
	return &HTTPSource{
		url:      strings.TrimSpace(rawURL),
		maxBytes: maxBytes,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		now: util.NowUTC,
	}
}

// Name implements gardenfaq.Source.
func (s *HTTPSource) Name() string {
	return s.url
}

// Fetch issues a GET with no-cache headers and a cache-busting query parameter.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	endpoint, err := s.endpoint()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build faq request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache, no-store, max-age=0")
	req.Header.Set("Pragma", "no-cache")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("faq request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("faq request error: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read faq response: %w", err)
	}
	if int64(len(body)) > s.maxBytes {
		return nil, fmt.Errorf("faq document exceeds %d bytes", s.maxBytes)
	}
	return body, nil
}

func (s *HTTPSource) endpoint() (string, error) {
	u, err := url.Parse(s.url)
	if err != nil {
		return "", fmt.Errorf("invalid faq url %q: %w", s.url, err)
	}
	q := u.Query()
	q.Set(cacheBustParam, util.CacheBuster(s.now()))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

var _ gardenfaq.Source = (*HTTPSource)(nil)
