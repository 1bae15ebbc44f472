package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_SetGetExpire(t *testing.T) {
	c := New(time.Minute)
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Set("seo", "value")
	v, ok := c.Get("seo")
	require.True(t, ok)
	assert.Equal(t, "value", v)

	now = now.Add(time.Minute)
	_, ok = c.Get("seo")
	assert.False(t, ok)
}

func TestCache_DeleteAndClear(t *testing.T) {
	c := New(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Clear()
	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestCache_DefaultTTL(t *testing.T) {
	assert.Equal(t, DefaultTTL, New(0).ttl)
}

func TestCache_GetOrFetch_SingleFlight(t *testing.T) {
	c := New(time.Minute)

	var calls atomic.Int32
	release := make(chan struct{})
	fetch := func(context.Context) (any, error) {
		calls.Add(1)
		<-release

		return "fresh", nil
	}

	var wg sync.WaitGroup
	results := make([]any, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.GetOrFetch(context.Background(), "info", fetch)
			assert.NoError(t, err)
			results[i] = v
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, v := range results {
		assert.Equal(t, "fresh", v)
	}
}

func TestCache_GetOrFetch_ErrorNotCached(t *testing.T) {
	c := New(time.Minute)

	_, err := c.GetOrFetch(context.Background(), "k", func(context.Context) (any, error) {
		return nil, errors.New("db down")
	})
	require.Error(t, err)

	v, err := c.GetOrFetch(context.Background(), "k", func(context.Context) (any, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

type ctxKey struct{}

func TestCache_GetOrFetch_SurvivesCallerCancel(t *testing.T) {
	c := New(time.Minute)

	started := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context) (any, error) {
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		return ctx.Value(ctxKey{}), nil
	}

	firstCtx, cancel := context.WithCancel(context.WithValue(context.Background(), ctxKey{}, "row"))
	var first error
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, first = c.GetOrFetch(firstCtx, "info", fetch)
	}()

	<-started
	cancel()
	close(release)
	<-done

	require.NoError(t, first)
	v, ok := c.Get("info")
	require.True(t, ok)
	assert.Equal(t, "row", v)
}
