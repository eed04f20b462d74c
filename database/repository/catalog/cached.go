package catalogRepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"fixflow/models"
	"fixflow/utils"
)

const catalogCacheKey = "catalog:work_items"

// CachedCatalogRepo caches the catalog snapshot in Redis in front of
// another repository. The catalog is read on every quote, so cache misses
// fall through and cache errors only log.
type CachedCatalogRepo struct {
	Inner CatalogRepository
	Cache *redis.Client
	TTL   time.Duration
}

func NewCachedCatalogRepo(inner CatalogRepository, cache *redis.Client, ttl time.Duration) *CachedCatalogRepo {
	return &CachedCatalogRepo{Inner: inner, Cache: cache, TTL: ttl}
}

func (repo *CachedCatalogRepo) List(ctx context.Context) ([]models.WorkItem, error) {
	logger := utils.GetLogger()

	if data, err := repo.Cache.Get(ctx, catalogCacheKey).Result(); err == nil {
		var items []models.WorkItem
		if err := json.Unmarshal([]byte(data), &items); err == nil {
			return items, nil
		}
		logger.Warn("catalog cache holds invalid payload, refetching", zap.Error(err))
	}

	items, err := repo.Inner.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(items); err == nil {
		if err := repo.Cache.Set(ctx, catalogCacheKey, data, repo.TTL).Err(); err != nil {
			logger.Warn("failed to cache catalog snapshot", zap.Error(err))
		}
	}
	return items, nil
}

func (repo *CachedCatalogRepo) Seed(ctx context.Context) error {
	return repo.Inner.Seed(ctx)
}
