package core

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/oddhash/oddhash/internal/contract"
)

// currentCacheVersion defines the version of the cache schema
const currentCacheVersion = 1

// cacheMaxAge bounds how long a cached log stays usable. The HEAD hash in
// the key already invalidates on new commits; the age check guards backends
// shared across machines with diverging clocks.
const cacheMaxAge = 7 * 24 * time.Hour

// cachedCommitLog fetches the raw commit log, going through the log cache
// store when one is configured.
func cachedCommitLog(ctx context.Context, cfg *contract.Config, client contract.GitClient, mgr contract.StoreManager, headHash string) ([]byte, error) {
	cache := mgr.GetLogCacheStore()
	if cache == nil || headHash == "" {
		// Fallback to direct computation
		return client.GetCommitLog(ctx, cfg.RepoPath, cfg.StartTime, cfg.EndTime)
	}

	key := generateCacheKey(cfg, headHash)

	// Check for cache hit
	if result, ok := checkCacheHit(cache, key); ok {
		return result, nil
	}

	// Cache miss: compute and store
	return fetchAndStore(ctx, cfg, client, cache, key)
}

// checkCacheHit attempts to retrieve and validate a cached raw log.
func checkCacheHit(cache contract.CacheStore, key string) ([]byte, bool) {
	data, version, ts, err := cache.Get(key)
	if err != nil {
		return nil, false // Cache miss
	}

	// Validate version and staleness
	if version == currentCacheVersion {
		entryTimestamp := time.Unix(ts, 0)
		if time.Since(entryTimestamp) <= cacheMaxAge {
			return data, true // Cache hit
		}
	}

	return nil, false // Cache miss (stale or version mismatch)
}

// fetchAndStore fetches the raw log and stores it in cache.
func fetchAndStore(ctx context.Context, cfg *contract.Config, client contract.GitClient, cache contract.CacheStore, key string) ([]byte, error) {
	rawLog, err := client.GetCommitLog(ctx, cfg.RepoPath, cfg.StartTime, cfg.EndTime)
	if err != nil {
		return nil, err
	}

	// Store in cache
	_ = cache.Set(key, rawLog, currentCacheVersion, time.Now().Unix())

	return rawLog, nil
}

// generateCacheKey creates a unique key based on scan parameters.
// The HEAD hash invalidates the entry when the repository state changes.
func generateCacheKey(cfg *contract.Config, headHash string) string {
	key := fmt.Sprintf("%s:%d:%d:%s",
		cfg.RepoPath,
		cfg.StartTime.Unix(),
		cfg.EndTime.Unix(),
		headHash,
	)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}
