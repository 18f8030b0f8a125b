//go:build unit

package fetchcache_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"storefront-api/internal/infra/fetchcache"
	"storefront-api/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func countingLoader(calls *int, payload any) fetchcache.LoaderFunc {
	return func(_ context.Context) (any, error) {
		*calls++
		return payload, nil
	}
}

func TestGet_LoadsOnceWithinTTL(t *testing.T) {
	clk := clock.NewMockClock(time.Now())
	cache := fetchcache.New(clk)

	calls := 0
	loader := countingLoader(&calls, "payload")

	got, err := cache.Get(context.Background(), "k", time.Minute, loader)
	require.NoError(t, err)
	assert.Equal(t, "payload", got)

	got, err = cache.Get(context.Background(), "k", time.Minute, loader)
	require.NoError(t, err)
	assert.Equal(t, "payload", got)

	assert.Equal(t, 1, calls, "second get within ttl must hit the cache")
}

func TestGet_ReloadsAfterExpiry(t *testing.T) {
	clk := clock.NewMockClock(time.Now())
	cache := fetchcache.New(clk)

	calls := 0
	loader := countingLoader(&calls, "payload")

	_, err := cache.Get(context.Background(), "k", time.Minute, loader)
	require.NoError(t, err)

	clk.Add(time.Minute + time.Second)

	_, err = cache.Get(context.Background(), "k", time.Minute, loader)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestGet_ErrorDoesNotPopulate(t *testing.T) {
	clk := clock.NewMockClock(time.Now())
	cache := fetchcache.New(clk)

	wantErr := errors.New("upstream down")
	_, err := cache.Get(context.Background(), "k", time.Minute, func(_ context.Context) (any, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	calls := 0
	_, err = cache.Get(context.Background(), "k", time.Minute, countingLoader(&calls, "ok"))
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "failed load must leave the key absent")
}

func TestInvalidate_ForcesReload(t *testing.T) {
	clk := clock.NewMockClock(time.Now())
	cache := fetchcache.New(clk)

	calls := 0
	loader := countingLoader(&calls, "payload")

	_, _ = cache.Get(context.Background(), "k", time.Minute, loader)
	cache.Invalidate("k")
	_, _ = cache.Get(context.Background(), "k", time.Minute, loader)

	assert.Equal(t, 2, calls)
}

func TestIsStale(t *testing.T) {
	clk := clock.NewMockClock(time.Now())
	cache := fetchcache.New(clk)

	assert.True(t, cache.IsStale("k"), "absent entries are stale")

	_, err := cache.Get(context.Background(), "k", time.Minute, countingLoader(new(int), "v"))
	require.NoError(t, err)
	assert.False(t, cache.IsStale("k"))

	clk.Add(2 * time.Minute)
	assert.True(t, cache.IsStale("k"))
}

func TestCaller_NewLoadCancelsPrevious(t *testing.T) {
	clk := clock.NewMockClock(time.Now())
	cache := fetchcache.New(clk)
	caller := cache.NewCaller()

	firstStarted := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)

	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = caller.Get(context.Background(), "slow", time.Minute, func(ctx context.Context) (any, error) {
			close(firstStarted)
			<-ctx.Done() // blocks until the second load cancels us
			return nil, ctx.Err()
		})
	}()

	<-firstStarted
	got, err := caller.Get(context.Background(), "slow", time.Minute, func(_ context.Context) (any, error) {
		return "fresh", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", got)

	wg.Wait()
	assert.ErrorIs(t, firstErr, context.Canceled)

	// The cancelled load must not have clobbered the fresh entry.
	calls := 0
	got, err = cache.Get(context.Background(), "slow", time.Minute, countingLoader(&calls, "other"))
	require.NoError(t, err)
	assert.Equal(t, "fresh", got)
	assert.Equal(t, 0, calls)
}

func TestCallers_AreIndependent(t *testing.T) {
	clk := clock.NewMockClock(time.Now())
	cache := fetchcache.New(clk)

	a := cache.NewCaller()
	b := cache.NewCaller()

	aStarted := make(chan struct{})
	aRelease := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)

	var aErr error
	go func() {
		defer wg.Done()
		_, aErr = a.Get(context.Background(), "ka", time.Minute, func(ctx context.Context) (any, error) {
			close(aStarted)
			select {
			case <-aRelease:
				return "a", nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		})
	}()

	<-aStarted

	// A load through a different caller must not cancel a's load.
	_, err := b.Get(context.Background(), "kb", time.Minute, func(_ context.Context) (any, error) {
		return "b", nil
	})
	require.NoError(t, err)

	close(aRelease)
	wg.Wait()
	assert.NoError(t, aErr)
}
