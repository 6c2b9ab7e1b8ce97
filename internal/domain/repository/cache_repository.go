package repository

import (
	"context"
	"time"

	"node-finder/internal/domain/entity"
)

// CacheRepository defines the interface for caching chain metadata fetched from a public source.
type CacheRepository interface {
	// GetChains retrieves the cached list of chain metadata.
	GetChains(ctx context.Context) ([]entity.Chain, bool, error)

	// SetChains stores the list of chain metadata with a specified TTL.
	SetChains(ctx context.Context, chains []entity.Chain, ttl time.Duration) error
}
