package repository

import (
	"context"

	"node-finder/internal/domain/entity"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks . CacheRepository,ChainMetadataSource,ChainRegistry,SettingsRepository

// ChainRegistry resolves chain descriptors by id.
type ChainRegistry interface {
	// Get returns the chain with the given id or domain.ErrChainNotFound.
	Get(ctx context.Context, chainID uint64) (entity.Chain, error)

	// List returns all known chains, built-in first, then custom ones ordered by id.
	List(ctx context.Context) ([]entity.Chain, error)

	// Register adds or replaces a custom chain entry.
	Register(ctx context.Context, chain entity.Chain) (entity.Chain, error)
}

// ChainMetadataSource looks up public metadata (name, symbol, public RPCs) for arbitrary chain ids.
type ChainMetadataSource interface {
	GetAllChains(ctx context.Context) ([]entity.Chain, error)
}
