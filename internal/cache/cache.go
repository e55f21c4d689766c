package cache

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ResponseCache memoizes rendered page payloads in-process. Entries live
// until the TTL expires or InvalidateAll is called; nothing else evicts
// them, so a write can stay invisible on a cached page until then.
type ResponseCache struct {
	store *gocache.Cache
	mu    sync.Mutex
}

func New(ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		store: gocache.New(ttl, 2*ttl),
	}
}

// GetOrCompute returns the cached payload for key, computing and storing it
// on a miss. Concurrent callers for the same cache compute at most once.
func (rc *ResponseCache) GetOrCompute(key string, compute func() (interface{}, error)) (interface{}, error) {
	if v, ok := rc.store.Get(key); ok {
		return v, nil
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()
	if v, ok := rc.store.Get(key); ok {
		return v, nil
	}

	v, err := compute()
	if err != nil {
		return nil, err
	}
	rc.store.SetDefault(key, v)
	return v, nil
}

// InvalidateAll drops every entry.
func (rc *ResponseCache) InvalidateAll() {
	rc.store.Flush()
}
