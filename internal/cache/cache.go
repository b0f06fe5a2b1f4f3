// Package cache menyediakan cache TTL berkapasitas terbatas dengan eviksi FIFO.
package cache

import (
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	DefaultTTL     = 5 * time.Minute
	DefaultAPITTL  = 2 * time.Minute
	DefaultMaxSize = 100
)

type Entry[T any] struct {
	Data      T
	Timestamp time.Time
	ExpiresAt time.Time
}

type Options struct {
	TTL     time.Duration
	MaxSize int
	Now     func() time.Time
}

// Cache aman dipakai dari banyak goroutine. Eviksi berdasarkan urutan
// penyisipan, bukan urutan pemakaian.
type Cache[T any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	maxSize int
	now     func() time.Time
	entries map[string]Entry[T]
	order   []string
}

func New[T any](opts Options) *Cache[T] {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.MaxSize <= 0 {
		opts.MaxSize = DefaultMaxSize
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Cache[T]{
		ttl:     opts.TTL,
		maxSize: opts.MaxSize,
		now:     opts.Now,
		entries: make(map[string]Entry[T]),
	}
}

// Get mengembalikan nilai bila ada dan belum kedaluwarsa. Entri kedaluwarsa
// dihapus saat dibaca.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if c.now().After(e.ExpiresAt) {
		c.remove(key)
		return zero, false
	}
	return e.Data, true
}

func (c *Cache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if _, exists := c.entries[key]; !exists {
		if len(c.entries) >= c.maxSize && len(c.order) > 0 {
			c.remove(c.order[0])
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = Entry[T]{Data: value, Timestamp: now, ExpiresAt: now.Add(c.ttl)}
}

func (c *Cache[T]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(key)
}

// InvalidatePrefix menghapus semua kunci berawalan prefix, misal seluruh listing "users".
func (c *Cache[T]) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range append([]string(nil), c.order...) {
		if strings.HasPrefix(k, prefix) {
			c.remove(k)
		}
	}
}

func (c *Cache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]Entry[T])
	c.order = nil
}

func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache[T]) remove(key string) {
	if _, ok := c.entries[key]; !ok {
		return
	}
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// GenerateKey menghasilkan "prefix?a=1&b=2" dengan parameter terurut,
// sehingga urutan parameter di pemanggil tidak memengaruhi kunci.
func GenerateKey(prefix string, params map[string]string) string {
	if len(params) == 0 {
		return prefix
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + params[k]
	}
	return prefix + "?" + strings.Join(parts, "&")
}
