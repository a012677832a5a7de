package client

import (
	"context"
	"errors"
	"sync"
)

// ErrStale is returned for a request that a newer request superseded.
var ErrStale = errors.New("superseded by a newer request")

// LatestQuery lets only the most recent of overlapping requests deliver a
// result. Each request takes the next token and cancels the previous in-flight
// request; when a request finishes, its result is kept only if its token is
// still the latest.
type LatestQuery[T any] struct {
	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

// Start registers a new request and cancels the previous one. The token is
// taken before Start returns, so callers that start requests in order get them
// ranked in that order even if the work runs on other goroutines. The returned
// context must be used for the request; finish must be called with its result
// and returns ErrStale if another request started in the meantime.
func (l *LatestQuery[T]) Start(ctx context.Context) (context.Context, func(T, error) (T, error)) {
	ctx, cancel := context.WithCancel(ctx)

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.seq++
	token := l.seq
	l.cancel = cancel
	l.mu.Unlock()

	finish := func(value T, err error) (T, error) {
		l.mu.Lock()
		latest := token == l.seq
		if latest {
			l.cancel = nil
		}
		l.mu.Unlock()
		cancel()

		if !latest {
			var zero T
			return zero, ErrStale
		}
		return value, err
	}

	return ctx, finish
}

// Do runs fetch as a new request and waits for it.
func (l *LatestQuery[T]) Do(ctx context.Context, fetch func(context.Context) (T, error)) (T, error) {
	ctx, finish := l.Start(ctx)
	return finish(fetch(ctx))
}

// Cancel abandons the in-flight request, if any. Its result becomes stale.
func (l *LatestQuery[T]) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.seq++
}
