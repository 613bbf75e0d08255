package console

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartCacheStoresEntry(t *testing.T) {
	cache := NewChartCache(10 * time.Millisecond)
	calls := 0
	render := func() (string, error) {
		calls++
		return "html", nil
	}

	val1, err := cache.GetOrRender("key", render)
	require.NoError(t, err)
	val2, err := cache.GetOrRender("key", render)
	require.NoError(t, err)

	assert.Equal(t, "html", val1)
	assert.Equal(t, val1, val2)
	assert.Equal(t, 1, calls)
}

func TestChartCacheExpires(t *testing.T) {
	cache := NewChartCache(2 * time.Millisecond)
	calls := 0
	render := func() (string, error) {
		calls++
		return "fresh", nil
	}

	_, err := cache.GetOrRender("key", render)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = cache.GetOrRender("key", render)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestChartCacheRenderErrorNotCached(t *testing.T) {
	cache := NewChartCache(time.Minute)
	boom := errors.New("render failed")
	calls := 0

	_, err := cache.GetOrRender("key", func() (string, error) {
		calls++
		return "", boom
	})
	require.ErrorIs(t, err, boom)

	val, err := cache.GetOrRender("key", func() (string, error) {
		calls++
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", val)
	assert.Equal(t, 2, calls)
}

func TestTTLCacheDisabledByZeroTTL(t *testing.T) {
	cache := newTTLCache[string, int](0)
	cache.set("key", 7)
	_, ok := cache.get("key")
	assert.False(t, ok)

	var nilCache *ttlCache[string, int]
	nilCache.set("key", 7)
	_, ok = nilCache.get("key")
	assert.False(t, ok)
}

func TestPayloadHashStable(t *testing.T) {
	a := payloadHash(map[string]int{"x": 1})
	b := payloadHash(map[string]int{"x": 1})
	c := payloadHash(map[string]int{"x": 2})
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
