package gardenfaq

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Source retrieves the raw FAQ document. Implementations must bypass any
// intermediate cache so the latest deployed document is read.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	Name() string
}

// Loader fetches the FAQ document once and keeps it for the rest of the session.
type Loader struct {
	cfg    Config
	source Source
	logger *slog.Logger

	group   singleflight.Group
	mu      sync.RWMutex
	db      *Database
	fetches atomic.Int64
}

// NewLoader builds a loader reading from source.
func NewLoader(cfg Config, source Source, logger *slog.Logger) *Loader {
	return &Loader{
		cfg:    cfg,
		source: source,
		logger: logger.With("component", "gardenfaq.loader"),
	}
}

// Load returns the cached database, fetching it on first use. Concurrent
// callers share a single fetch that outlives any one caller's cancellation;
// a caller whose ctx ends stops waiting without failing the others.
// Failures are not cached, so a later call retries.
func (l *Loader) Load(ctx context.Context) (*Database, error) {
	if db, ok := l.Get(); ok {
		return db, nil
	}
	ch := l.group.DoChan("database", func() (any, error) {
		if db, ok := l.Get(); ok {
			return db, nil
		}
		return l.fetch(context.WithoutCancel(ctx))
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Database), nil
	case <-ctx.Done():
		return nil, loadError("faq document load abandoned", ctx.Err())
	}
}

// Get returns the cached database without fetching.
func (l *Loader) Get() (*Database, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.db, l.db != nil
}

// Fetches reports how many times the source has been read.
func (l *Loader) Fetches() int64 {
	return l.fetches.Load()
}

func (l *Loader) fetch(ctx context.Context) (*Database, error) {
	if l.cfg.LoadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.cfg.LoadTimeout)
		defer cancel()
	}

	l.fetches.Add(1)
	data, err := l.source.Fetch(ctx)
	if err != nil {
		l.logger.Warn("faq document fetch failed", "source", l.source.Name(), "error", err)
		if IsLoadError(err) || IsFormatError(err) {
			return nil, err
		}
		return nil, loadError("failed to load faq document", err)
	}

	db, err := DecodeDatabase(data)
	if err != nil {
		l.logger.Error("faq document rejected", "source", l.source.Name(), "error", err)
		return nil, err
	}

	l.mu.Lock()
	l.db = db
	l.mu.Unlock()
	l.logger.Info("faq database loaded", "source", l.source.Name(), "items", len(db.Items))
	return db, nil
}
