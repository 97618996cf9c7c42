package cache

import (
	"context"
	"time"
)

// Cache stores JSON encoded values. A miss is reported as (false, nil).
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

const CatalogKeyPrefix = "catalog"

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

// CatalogKey is where the decoded catalog document of a store lives.
func CatalogKey(storeKey string) string {
	return Key(CatalogKeyPrefix, storeKey)
}
