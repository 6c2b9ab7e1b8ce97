package memory

import (
	"context"
	"testing"
	"time"

	"node-finder/internal/config"
	"node-finder/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCacheRepository_Chains(t *testing.T) {
	cfg := config.Config{
		Cache:     config.CacheConfig{DefaultExpiration: time.Minute, CleanupInterval: time.Minute},
		Chainlist: config.ChainlistConfig{CacheTTL: time.Hour},
	}
	r := NewCacheRepository(cfg, zap.NewNop())
	ctx := context.Background()

	_, found, err := r.GetChains(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	chains := []entity.Chain{{ID: 137, Name: "Polygon"}}
	require.NoError(t, r.SetChains(ctx, chains, 0))

	got, found, err := r.GetChains(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, chains, got)
}

func TestCacheRepository_Expiry(t *testing.T) {
	cfg := config.Config{Cache: config.CacheConfig{DefaultExpiration: time.Minute, CleanupInterval: time.Minute}}
	r := NewCacheRepository(cfg, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, r.SetChains(ctx, []entity.Chain{{ID: 1}}, 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, found, err := r.GetChains(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}
