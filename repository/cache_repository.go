package repository

import "context"

// CacheRepository caches serialized calculation results by input key.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}
