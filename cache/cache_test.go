package cache

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCache(t *testing.T) {
	cache, err := New(func(value string) int64 {
		return int64(len(value))
	}, "Test Cache", time.Hour)
	require.NoError(t, err)
	defer cache.Close()

	testValue := "test string"
	cache.Set("test-key", testValue, int64(len(testValue)))
	cache.Wait()

	value, found := cache.Get("test-key")
	require.True(t, found, "Expected to find cached value")
	assert.Equal(t, testValue, value)
}

func TestCacheStats(t *testing.T) {
	cache, err := New(func(value string) int64 {
		return int64(len(value))
	}, "Test Cache", time.Hour)
	require.NoError(t, err)
	defer cache.Close()

	cache.Set("key1", "one", 3)
	cache.Wait()

	cache.Get("key1") // Hit
	cache.Get("key2") // Miss

	stats := cache.Stats()
	for _, key := range []string{"cache_type", "hits", "misses", "sets", "total_requests", "hit_rate", "memory_used_kb", "current_items"} {
		assert.Contains(t, stats, key, "Expected key %s in stats", key)
	}
	assert.Equal(t, "Test Cache", stats["cache_type"])
	assert.Equal(t, uint64(1), stats["hits"])
	assert.Equal(t, uint64(1), stats["misses"])
	assert.InDelta(t, 50.0, stats["hit_rate"].(float64), 0.001)
}

func TestCacheStatsEmptyCache(t *testing.T) {
	cache, err := New(func(value string) int64 {
		return int64(len(value))
	}, "Empty Cache", time.Hour)
	require.NoError(t, err)
	defer cache.Close()

	stats := cache.Stats()
	assert.Equal(t, 0.0, stats["hit_rate"])
	assert.Equal(t, uint64(0), stats["total_requests"])
}

func TestFragmentsRenderOnce(t *testing.T) {
	f, err := NewFragments(time.Hour)
	require.NoError(t, err)
	defer f.Close()

	calls := 0
	render := func(w io.Writer) error {
		calls++
		_, err := io.WriteString(w, "<section>shop</section>")
		return err
	}

	b, err := f.Render("shop", render)
	require.NoError(t, err)
	assert.Equal(t, "<section>shop</section>", string(b))
	f.Wait()

	b, err = f.Render("shop", render)
	require.NoError(t, err)
	assert.Equal(t, "<section>shop</section>", string(b))
	assert.Equal(t, 1, calls)
}

func TestFragmentsRenderErrorNotCached(t *testing.T) {
	f, err := NewFragments(time.Hour)
	require.NoError(t, err)
	defer f.Close()

	boom := errors.New("boom")
	_, err = f.Render("home", func(io.Writer) error { return boom })
	require.ErrorIs(t, err, boom)
	f.Wait()

	b, err := f.Render("home", func(w io.Writer) error {
		_, err := io.WriteString(w, "ok")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", string(b))
}
