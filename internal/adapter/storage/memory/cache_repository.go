package memory

import (
	"context"
	"fmt"
	"time"

	"node-finder/internal/config"
	"node-finder/internal/domain/entity"
	domainRepo "node-finder/internal/domain/repository"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Compile-time check
var _ domainRepo.CacheRepository = (*CacheRepository)(nil)

const chainMetadataKey = "chain_metadata_v1"

// CacheRepository implements domainRepo.CacheRepository using the go-cache in-memory library.
type CacheRepository struct {
	cache      *cache.Cache
	defaultTTL time.Duration
	logger     *zap.Logger
}

// NewCacheRepository creates a new in-memory cache for chain metadata.
func NewCacheRepository(cfg config.Config, logger *zap.Logger) *CacheRepository {
	defaultExpiration := cfg.Cache.GetDefaultExpiration()
	cleanupInterval := cfg.Cache.GetCleanupInterval()

	defaultTTL := cfg.Chainlist.GetCacheTTL()
	if defaultTTL <= 0 {
		defaultTTL = defaultExpiration
	}

	logger.Info(
		"Initialized go-cache for chain metadata",
		zap.Duration("defaultExpiration", defaultExpiration),
		zap.Duration("cleanupInterval", cleanupInterval),
		zap.Duration("metadataTTL", defaultTTL),
	)

	return &CacheRepository{
		cache:      cache.New(defaultExpiration, cleanupInterval),
		defaultTTL: defaultTTL,
		logger:     logger.Named("MemoryCacheStorage"),
	}
}

// GetChains retrieves the cached chain metadata, returning found status.
func (r *CacheRepository) GetChains(_ context.Context) ([]entity.Chain, bool, error) {
	if x, found := r.cache.Get(chainMetadataKey); found {
		if chains, ok := x.([]entity.Chain); ok {
			r.logger.Debug("Memory cache hit", zap.String("key", chainMetadataKey))
			return chains, true, nil
		}
		r.logger.Warn(
			"Memory cache data type mismatch for key",
			zap.String("key", chainMetadataKey), zap.String("type", fmt.Sprintf("%T", x)),
		)
	}
	r.logger.Debug("Memory cache miss", zap.String("key", chainMetadataKey))
	return nil, false, nil
}

// SetChains caches chain metadata. A non-positive ttl uses the configured metadata TTL.
func (r *CacheRepository) SetChains(_ context.Context, chains []entity.Chain, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = r.defaultTTL
	}
	r.cache.Set(chainMetadataKey, chains, ttl)
	r.logger.Debug("Memory cache set", zap.String("key", chainMetadataKey), zap.Duration("ttl", ttl))
	return nil
}
