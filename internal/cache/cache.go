// Package cache stores fetched pages so repeated dataset builds do not
// re-hit the source.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the page-cache interface. Values are raw response bodies.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a stable cache key from a source URL.
func Key(url string) string {
	sum := sha256.Sum256([]byte(url))
	return "presidents:v1:" + hex.EncodeToString(sum[:])
}
