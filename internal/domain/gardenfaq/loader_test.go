package gardenfaq

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type stubSource struct {
	mu      sync.Mutex
	data    []byte
	err     error
	calls   atomic.Int32
	release chan struct{}
	fetchFn func(ctx context.Context) ([]byte, error)
}

func (s *stubSource) Fetch(ctx context.Context) ([]byte, error) {
	s.calls.Add(1)
	if s.release != nil {
		<-s.release
	}
	if s.fetchFn != nil {
		return s.fetchFn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data, s.err
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) set(data []byte, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data, s.err = data, err
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoaderCachesDatabase(t *testing.T) {
	src := &stubSource{data: []byte(itemsDocument)}
	loader := NewLoader(Config{}, src, newTestLogger())

	_, ok := loader.Get()
	require.False(t, ok)

	first, err := loader.Load(context.Background())
	require.NoError(t, err)
	second, err := loader.Load(context.Background())
	require.NoError(t, err)

	require.Same(t, first, second)
	require.EqualValues(t, 1, loader.Fetches())
	require.EqualValues(t, 1, src.calls.Load())

	cached, ok := loader.Get()
	require.True(t, ok)
	require.Same(t, first, cached)
}

func TestLoaderSharesConcurrentFetch(t *testing.T) {
	src := &stubSource{data: []byte(itemsDocument), release: make(chan struct{})}
	loader := NewLoader(Config{}, src, newTestLogger())

	const callers = 8
	results := make(chan *Database, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			db, err := loader.Load(context.Background())
			if err == nil {
				results <- db
			}
		}()
	}
	require.Eventually(t, func() bool { return src.calls.Load() == 1 }, time.Second, time.Millisecond)
	close(src.release)
	wg.Wait()
	close(results)

	var first *Database
	count := 0
	for db := range results {
		if first == nil {
			first = db
		}
		require.Same(t, first, db)
		count++
	}
	require.Equal(t, callers, count)
	require.EqualValues(t, 1, src.calls.Load())
}

func TestLoaderSourceFailureIsRetryable(t *testing.T) {
	src := &stubSource{err: errors.New("connection refused")}
	loader := NewLoader(Config{}, src, newTestLogger())

	_, err := loader.Load(context.Background())
	require.Error(t, err)
	require.True(t, IsLoadError(err))
	require.Contains(t, err.Error(), "connection refused")
	_, ok := loader.Get()
	require.False(t, ok)

	src.set([]byte(itemsDocument), nil)
	db, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, db.Items, 2)
	require.EqualValues(t, 2, loader.Fetches())
}

func TestLoaderRejectsMalformedDocument(t *testing.T) {
	src := &stubSource{data: []byte(`{}`)}
	loader := NewLoader(Config{}, src, newTestLogger())

	db, err := loader.Load(context.Background())
	require.Nil(t, db)
	require.True(t, IsFormatError(err))
	_, ok := loader.Get()
	require.False(t, ok)
}

func TestLoaderTimeout(t *testing.T) {
	src := &stubSource{fetchFn: func(ctx context.Context) ([]byte, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}}
	loader := NewLoader(Config{LoadTimeout: 10 * time.Millisecond}, src, newTestLogger())

	_, err := loader.Load(context.Background())
	require.True(t, IsLoadError(err))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLoaderSharedFetchSurvivesCallerCancel(t *testing.T) {
	src := &stubSource{data: []byte(itemsDocument), release: make(chan struct{})}
	loader := NewLoader(Config{}, src, newTestLogger())

	firstCtx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := loader.Load(firstCtx)
		firstErr <- err
	}()
	require.Eventually(t, func() bool { return src.calls.Load() == 1 }, time.Second, time.Millisecond)

	type result struct {
		db  *Database
		err error
	}
	second := make(chan result, 1)
	go func() {
		db, err := loader.Load(context.Background())
		second <- result{db: db, err: err}
	}()

	cancel()
	err := <-firstErr
	require.True(t, IsLoadError(err))
	require.ErrorIs(t, err, context.Canceled)

	close(src.release)
	got := <-second
	require.NoError(t, got.err)
	require.Len(t, got.db.Items, 2)
	require.EqualValues(t, 1, src.calls.Load())

	cached, ok := loader.Get()
	require.True(t, ok)
	require.Same(t, got.db, cached)
}
