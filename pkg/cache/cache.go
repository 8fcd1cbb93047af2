// Package cache stores rendered heatmap artifacts so serve mode does
// not recompute an unchanged year on every request.
//
// Keys are deterministic content hashes over everything that affects
// the output (dataset hash, year, format, theme), so a changed input
// naturally misses and re-renders. Three backends exist: a file cache
// for single-host use, a redis cache for shared deployments, and a
// null cache that disables caching entirely.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is the artifact store interface shared by all backends.
type Cache interface {
	// Get retrieves a value; the bool reports whether it was present
	// and fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// ArtifactKey builds the cache key for one rendered artifact.
// datasetHash should be Hash of the raw input bytes; themeHash covers
// the theme and any render options.
func ArtifactKey(datasetHash string, year int, format, themeHash string) string {
	return hashKey("artifact", datasetHash, year, format, themeHash)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes the SHA-256 hash of data as a 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
