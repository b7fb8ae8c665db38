package cache

import (
	"context"
	"time"

	"github.com/karlseguin/ccache/v3"

	"github.com/zatekoja/bookingengine/internal/domain/providers"
)

const defaultLocalCacheSize = 10000

// LocalAdapter implements the CacheProvider interface with an in-process LRU
type LocalAdapter struct {
	cache *ccache.Cache[[]byte]
}

// NewLocalAdapter creates an in-memory cache holding at most maxSize entries
func NewLocalAdapter(maxSize int64) *LocalAdapter {
	if maxSize <= 0 {
		maxSize = defaultLocalCacheSize
	}
	return &LocalAdapter{
		cache: ccache.New(ccache.Configure[[]byte]().MaxSize(maxSize)),
	}
}

// Get retrieves a value from cache
func (a *LocalAdapter) Get(_ context.Context, key string) ([]byte, error) {
	item := a.cache.Get(key)
	if item == nil || item.Expired() {
		return nil, providers.ErrCacheMiss
	}
	return item.Value(), nil
}

// Set stores a value in cache with expiration
func (a *LocalAdapter) Set(_ context.Context, key string, value []byte, expirationSeconds int) error {
	a.cache.Set(key, value, time.Duration(expirationSeconds)*time.Second)
	return nil
}

// Delete removes a value from cache
func (a *LocalAdapter) Delete(_ context.Context, key string) error {
	a.cache.Delete(key)
	return nil
}

// Stop stops the cache's background worker
func (a *LocalAdapter) Stop() {
	a.cache.Stop()
}
