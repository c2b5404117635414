package cache

import "time"

// LoaderFunc loads data for keys that are missing from the cache.
// It receives the missing keys and returns a key->data map for those keys.
// Keys absent from the returned map are treated as not found upstream.
type LoaderFunc func(missingKeys []string) (map[string][]byte, error)

// Cache is a read-through byte cache keyed by string
type Cache interface {
	// GetOrLoad retrieves data for keys, calling loader for the missing
	// ones and caching what it returns with the given ttl. A ttl of 0
	// uses the cache's default expiration.
	GetOrLoad(keys []string, loader LoaderFunc, ttl time.Duration) (map[string][]byte, error)

	// Get retrieves cached data for keys, returning found entries and
	// the list of missing keys
	Get(keys []string) (map[string][]byte, []string)

	// Set stores data with the specified ttl
	Set(data map[string][]byte, ttl time.Duration)
}
