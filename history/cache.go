package history

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/spetersoncode/imagine"
)

const (
	// MaxEntries is the cap on persisted gallery entries.
	MaxEntries = 10

	// DegradedEntries is the fallback record size when a full write
	// fails, typically on storage quota.
	DegradedEntries = 2

	// DefaultDebounce is the quiet period writes are coalesced over.
	DefaultDebounce = 500 * time.Millisecond
)

// Cache is the bounded, debounced gallery store. Save schedules a write
// after a quiet period; only the last scheduled write within the window
// executes. Storage failures are absorbed: they degrade or drop the
// write without affecting in-memory state.
type Cache struct {
	mu       sync.Mutex
	adapter  Adapter
	debounce time.Duration
	timer    *time.Timer
	pending  []imagine.GeneratedImage
	dirty    bool
}

// Option configures a Cache.
type Option func(*Cache)

// WithDebounce overrides the write debounce window. Tests use this to
// avoid waiting out the default.
func WithDebounce(d time.Duration) Option {
	return func(c *Cache) {
		c.debounce = d
	}
}

// New creates a cache on the given adapter. A nil adapter defaults to
// in-memory storage.
func New(adapter Adapter, opts ...Option) *Cache {
	if adapter == nil {
		adapter = NewMemoryAdapter()
	}
	c := &Cache{
		adapter:  adapter,
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load reads the persisted gallery. Missing or corrupt storage yields
// an empty slice; corruption is swallowed, never surfaced.
func (c *Cache) Load(ctx context.Context) []imagine.GeneratedImage {
	raw, ok, err := c.adapter.Get(ctx)
	if err != nil || !ok {
		return []imagine.GeneratedImage{}
	}
	var images []imagine.GeneratedImage
	if err := json.Unmarshal(raw, &images); err != nil || images == nil {
		return []imagine.GeneratedImage{}
	}
	return images
}

// Save schedules a persisted write of the first MaxEntries images after
// the debounce window. Rapid successive calls coalesce; the latest
// snapshot wins. An empty slice deletes the record instead of writing
// an empty list.
func (c *Cache) Save(images []imagine.GeneratedImage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(images)
	if n > MaxEntries {
		n = MaxEntries
	}
	c.pending = make([]imagine.GeneratedImage, n)
	copy(c.pending, images[:n])
	c.dirty = true

	if c.timer == nil {
		c.timer = time.AfterFunc(c.debounce, func() {
			c.Flush(context.Background())
		})
	} else {
		c.timer.Reset(c.debounce)
	}
}

// Flush executes any pending write immediately. It is a no-op when
// nothing is scheduled. Write failures degrade to the DegradedEntries
// most recent items; if that also fails the write is dropped.
func (c *Cache) Flush(ctx context.Context) {
	c.mu.Lock()
	if !c.dirty {
		c.mu.Unlock()
		return
	}
	images := c.pending
	c.pending = nil
	c.dirty = false
	if c.timer != nil {
		c.timer.Stop()
	}
	c.mu.Unlock()

	c.write(ctx, images)
}

func (c *Cache) write(ctx context.Context, images []imagine.GeneratedImage) {
	if len(images) == 0 {
		_ = c.adapter.Delete(ctx)
		return
	}
	if c.trySet(ctx, images) {
		return
	}
	// Degraded retry with only the most recent items, then give up.
	if len(images) > DegradedEntries {
		c.trySet(ctx, images[:DegradedEntries])
	}
}

func (c *Cache) trySet(ctx context.Context, images []imagine.GeneratedImage) bool {
	raw, err := json.Marshal(images)
	if err != nil {
		return false
	}
	return c.adapter.Set(ctx, raw) == nil
}

// Clear drops any scheduled write and removes the persisted record.
func (c *Cache) Clear(ctx context.Context) error {
	c.mu.Lock()
	c.pending = nil
	c.dirty = false
	if c.timer != nil {
		c.timer.Stop()
	}
	c.mu.Unlock()

	if err := c.adapter.Delete(ctx); err != nil {
		return &imagine.PersistenceError{Op: "clear", Err: err}
	}
	return nil
}
