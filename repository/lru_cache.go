package repository

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LRUCache is an in-process CacheRepository used when Redis is not
// configured.
type LRUCache struct {
	cache *lru.Cache[string, string]
}

func NewLRUCache(size int) (*LRUCache, error) {
	c, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &LRUCache{cache: c}, nil
}

func (l *LRUCache) Get(ctx context.Context, key string) (string, bool) {
	return l.cache.Get(key)
}

func (l *LRUCache) Set(ctx context.Context, key string, value string) error {
	l.cache.Add(key, value)
	return nil
}
