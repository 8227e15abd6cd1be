package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/spetersoncode/imagine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gallery(n int) []imagine.GeneratedImage {
	images := make([]imagine.GeneratedImage, n)
	for i := range images {
		images[i] = imagine.GeneratedImage{
			ID:        fmt.Sprintf("img-%d", i),
			URL:       "data:image/png;base64,AA==",
			Prompt:    "a cat",
			Timestamp: int64(1700000000000 + i),
		}
	}
	return images
}

// failingAdapter rejects Set a fixed number of times before delegating
// to an in-memory adapter.
type failingAdapter struct {
	mu       sync.Mutex
	inner    *MemoryAdapter
	failures int
}

func (f *failingAdapter) Get(ctx context.Context) (json.RawMessage, bool, error) {
	return f.inner.Get(ctx)
}

func (f *failingAdapter) Set(ctx context.Context, value json.RawMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures > 0 {
		f.failures--
		return errors.New("quota exceeded")
	}
	return f.inner.Set(ctx, value)
}

func (f *failingAdapter) Delete(ctx context.Context) error {
	return f.inner.Delete(ctx)
}

func TestCache_LoadEmpty(t *testing.T) {
	ctx := context.Background()

	t.Run("missing record", func(t *testing.T) {
		cache := New(NewMemoryAdapter())
		assert.Empty(t, cache.Load(ctx))
	})

	t.Run("corrupt record", func(t *testing.T) {
		adapter := NewMemoryAdapter()
		require.NoError(t, adapter.Set(ctx, json.RawMessage(`{not json`)))
		cache := New(adapter)
		assert.Empty(t, cache.Load(ctx))
	})

	t.Run("non-array record", func(t *testing.T) {
		adapter := NewMemoryAdapter()
		require.NoError(t, adapter.Set(ctx, json.RawMessage(`{"id":"x"}`)))
		cache := New(adapter)
		assert.Empty(t, cache.Load(ctx))
	})

	t.Run("null record", func(t *testing.T) {
		adapter := NewMemoryAdapter()
		require.NoError(t, adapter.Set(ctx, json.RawMessage(`null`)))
		cache := New(adapter)
		assert.Empty(t, cache.Load(ctx))
	})
}

func TestCache_SaveTrimsToCap(t *testing.T) {
	ctx := context.Background()
	cache := New(NewMemoryAdapter())

	cache.Save(gallery(25))
	cache.Flush(ctx)

	loaded := cache.Load(ctx)
	require.Len(t, loaded, MaxEntries)
	// The persisted record is a prefix of the given sequence.
	assert.Equal(t, gallery(25)[:MaxEntries], loaded)
}

func TestCache_LoadAfterFlushIsPrefix(t *testing.T) {
	ctx := context.Background()
	cache := New(NewMemoryAdapter())

	images := gallery(3)
	cache.Save(images)
	cache.Flush(ctx)

	assert.Equal(t, images, cache.Load(ctx))
}

func TestCache_DebounceCoalesces(t *testing.T) {
	ctx := context.Background()
	adapter := NewMemoryAdapter()
	cache := New(adapter, WithDebounce(50*time.Millisecond))

	// Rapid successive saves; only the last snapshot should land.
	cache.Save(gallery(1))
	cache.Save(gallery(2))
	cache.Save(gallery(5))

	// Nothing is written before the quiet period elapses.
	_, ok, err := adapter.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Eventually(t, func() bool {
		return len(cache.Load(ctx)) == 5
	}, time.Second, 5*time.Millisecond)
}

func TestCache_SaveEmptyDeletesRecord(t *testing.T) {
	ctx := context.Background()
	adapter := NewMemoryAdapter()
	cache := New(adapter)

	cache.Save(gallery(2))
	cache.Flush(ctx)
	_, ok, _ := adapter.Get(ctx)
	require.True(t, ok)

	cache.Save(nil)
	cache.Flush(ctx)
	_, ok, _ = adapter.Get(ctx)
	assert.False(t, ok)
}

func TestCache_FlushWithoutPendingIsNoop(t *testing.T) {
	ctx := context.Background()
	adapter := NewMemoryAdapter()
	require.NoError(t, adapter.Set(ctx, json.RawMessage(`[]`)))

	cache := New(adapter)
	cache.Flush(ctx)

	// Existing record untouched.
	_, ok, _ := adapter.Get(ctx)
	assert.True(t, ok)
}

func TestCache_DegradedRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("falls back to two most recent", func(t *testing.T) {
		adapter := &failingAdapter{inner: NewMemoryAdapter(), failures: 1}
		cache := New(adapter)

		cache.Save(gallery(8))
		cache.Flush(ctx)

		loaded := cache.Load(ctx)
		require.Len(t, loaded, DegradedEntries)
		assert.Equal(t, gallery(8)[:DegradedEntries], loaded)
	})

	t.Run("drops the write when retry also fails", func(t *testing.T) {
		adapter := &failingAdapter{inner: NewMemoryAdapter(), failures: 2}
		cache := New(adapter)

		cache.Save(gallery(8))
		cache.Flush(ctx)

		_, ok, err := adapter.Get(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestCache_Clear(t *testing.T) {
	ctx := context.Background()
	adapter := NewMemoryAdapter()
	cache := New(adapter, WithDebounce(10*time.Millisecond))

	cache.Save(gallery(3))
	cache.Flush(ctx)

	// Clear also drops a scheduled write.
	cache.Save(gallery(4))
	require.NoError(t, cache.Clear(ctx))

	time.Sleep(30 * time.Millisecond)
	_, ok, _ := adapter.Get(ctx)
	assert.False(t, ok)
	assert.Empty(t, cache.Load(ctx))
}

func TestCache_NilAdapterDefaultsToMemory(t *testing.T) {
	ctx := context.Background()
	cache := New(nil)
	cache.Save(gallery(1))
	cache.Flush(ctx)
	assert.Len(t, cache.Load(ctx), 1)
}
