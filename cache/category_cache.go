package category_cache

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/canghafiz/xsell-bff/config"
	"github.com/canghafiz/xsell-bff/models"
)

// The category tree changes rarely; the frontend previously revalidated it
// hourly, so the cache TTL matches.
const TTL = time.Hour

const redisKey = "xsell:categories"

// ── In-process tree cache ────────────────────────────────────────────────────
// First line of defense; survives a Redis outage.

type treeEntry struct {
	data      []models.CategoryWithSubCategory
	fetchedAt time.Time
}

var (
	treeMu    sync.RWMutex
	treeCache *treeEntry
)

func getLocal() ([]models.CategoryWithSubCategory, bool) {
	treeMu.RLock()
	defer treeMu.RUnlock()
	if treeCache != nil && time.Since(treeCache.fetchedAt) < TTL {
		return treeCache.data, true
	}
	return nil, false
}

func setLocal(data []models.CategoryWithSubCategory) {
	treeMu.Lock()
	defer treeMu.Unlock()
	treeCache = &treeEntry{data: data, fetchedAt: time.Now()}
}

// ── Redis layer ──────────────────────────────────────────────────────────────
// Shared across BFF instances. Best effort: errors degrade to a miss.

func getRedis() ([]models.CategoryWithSubCategory, bool) {
	if config.RedisClient == nil {
		return nil, false
	}
	raw, err := config.RedisClient.Get(config.Ctx, redisKey).Bytes()
	if err != nil {
		return nil, false
	}
	var data []models.CategoryWithSubCategory
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Printf("⚠️  corrupt category cache entry, dropping: %v", err)
		config.RedisClient.Del(config.Ctx, redisKey)
		return nil, false
	}
	return data, true
}

func setRedis(data []models.CategoryWithSubCategory) {
	if config.RedisClient == nil {
		return
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return
	}
	if err := config.RedisClient.Set(config.Ctx, redisKey, raw, TTL).Err(); err != nil {
		log.Printf("⚠️  failed to write category cache: %v", err)
	}
}

// Get returns the cached category tree, checking the in-process copy first
// and falling back to Redis.
func Get() ([]models.CategoryWithSubCategory, bool) {
	if data, ok := getLocal(); ok {
		return data, true
	}
	if data, ok := getRedis(); ok {
		setLocal(data)
		return data, true
	}
	return nil, false
}

// Set stores a freshly fetched tree in both layers.
func Set(data []models.CategoryWithSubCategory) {
	setLocal(data)
	setRedis(data)
}

// Invalidate drops both layers.
func Invalidate() {
	treeMu.Lock()
	treeCache = nil
	treeMu.Unlock()

	if config.RedisClient != nil {
		config.RedisClient.Del(config.Ctx, redisKey)
	}
}
