// File: utils/constants.go
package utils

import "time"

// Redis key prefix and TTL for cached provider token hashes. Auth validation
// hits the provider collection only on a cache miss.
const (
	AuthCachePrefix = "auth:"
	AuthCacheTTL    = 10 * time.Minute
)
