package faqsource

import (
	"context"
	"fmt"
	"os"

	"github.com/yanqian/garden-faq/internal/domain/gardenfaq"
)

// FileSource reads the FAQ document from the local filesystem.
type FileSource struct {
	path string
}

// NewFileSource builds a source for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name implements gardenfaq.Source.
func (s *FileSource) Name() string {
	return s.path
}

// Fetch reads the whole file.
func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read faq file %s: %w", s.path, err)
	}
	return data, nil
}

var _ gardenfaq.Source = (*FileSource)(nil)
