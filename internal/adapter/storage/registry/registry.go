// Package registry holds the chain descriptors discovery can run against.
package registry

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"node-finder/internal/domain"
	"node-finder/internal/domain/entity"
	domainRepo "node-finder/internal/domain/repository"
	"node-finder/internal/pkg/apperrors"

	"go.uber.org/zap"
)

// Compile-time check
var _ domainRepo.ChainRegistry = (*Registry)(nil)

// Registry serves built-in chains and runtime registrations.
type Registry struct {
	mu       sync.RWMutex
	builtin  map[uint64]entity.Chain
	order    []uint64
	custom   map[uint64]entity.Chain
	metadata domainRepo.ChainMetadataSource
	cache    domainRepo.CacheRepository
	cacheTTL time.Duration
	logger   *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithMetadata enables enrichment of partial custom registrations from source, cached in cache.
func WithMetadata(source domainRepo.ChainMetadataSource, cache domainRepo.CacheRepository, ttl time.Duration) Option {
	return func(r *Registry) {
		r.metadata = source
		r.cache = cache
		r.cacheTTL = ttl
	}
}

// New creates a registry with the built-in chains followed by extra. An extra entry with a
// built-in id replaces it.
func New(extra []entity.Chain, logger *zap.Logger, opts ...Option) *Registry {
	r := &Registry{
		builtin: make(map[uint64]entity.Chain),
		custom:  make(map[uint64]entity.Chain),
		logger:  logger.Named("ChainRegistry"),
	}
	for _, c := range append(entity.DefaultChains(), extra...) {
		if c.ID == 0 {
			r.logger.Warn("Skipping configured chain without id", zap.String("name", c.Name))
			continue
		}
		c.Custom = false
		if _, seen := r.builtin[c.ID]; !seen {
			r.order = append(r.order, c.ID)
		}
		r.builtin[c.ID] = c
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get implements domainRepo.ChainRegistry.
func (r *Registry) Get(_ context.Context, chainID uint64) (entity.Chain, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.custom[chainID]; ok {
		return c, nil
	}
	if c, ok := r.builtin[chainID]; ok {
		return c, nil
	}
	return entity.Chain{}, fmt.Errorf("%w: %d", domain.ErrChainNotFound, chainID)
}

// List implements domainRepo.ChainRegistry.
func (r *Registry) List(_ context.Context) ([]entity.Chain, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Chain, 0, len(r.order)+len(r.custom))
	for _, id := range r.order {
		out = append(out, r.builtin[id])
	}
	customs := make([]entity.Chain, 0, len(r.custom))
	for _, c := range r.custom {
		customs = append(customs, c)
	}
	sort.Slice(customs, func(i, j int) bool { return customs[i].ID < customs[j].ID })
	return append(out, customs...), nil
}

// Register implements domainRepo.ChainRegistry. Missing name, symbol or reference RPC
// are filled from chain metadata when available; a reference RPC is required in the end.
func (r *Registry) Register(ctx context.Context, chain entity.Chain) (entity.Chain, error) {
	if chain.ID == 0 {
		return entity.Chain{}, fmt.Errorf("%w: chain id is required", apperrors.ErrInvalidInput)
	}
	r.mu.RLock()
	_, isBuiltin := r.builtin[chain.ID]
	r.mu.RUnlock()
	if isBuiltin {
		return entity.Chain{}, fmt.Errorf("%w: chain %d is built in", apperrors.ErrInvalidInput, chain.ID)
	}

	if chain.Name == "" || chain.Symbol == "" || chain.DefaultRPC == "" {
		r.enrich(ctx, &chain)
	}
	if chain.Name == "" {
		chain.Name = "Chain " + strconv.FormatUint(chain.ID, 10)
	}
	if _, err := entity.NewReferenceURL(chain.DefaultRPC); err != nil {
		return entity.Chain{}, fmt.Errorf("%w: default rpc: %v", apperrors.ErrInvalidInput, err)
	}
	chain.Custom = true

	r.mu.Lock()
	r.custom[chain.ID] = chain
	r.mu.Unlock()

	r.logger.Info("Custom chain registered",
		zap.Uint64("chainId", chain.ID),
		zap.String("name", chain.Name),
		zap.Bool("verifiesGenesis", chain.VerifiesGenesis()),
	)
	return chain, nil
}

// enrich fills empty fields from metadata. Failures are logged and ignored.
func (r *Registry) enrich(ctx context.Context, chain *entity.Chain) {
	if r.metadata == nil {
		return
	}
	known, err := r.metadataChains(ctx)
	if err != nil {
		r.logger.Warn("Chain metadata unavailable, registering as given",
			zap.Uint64("chainId", chain.ID), zap.Error(err))
		return
	}
	for _, m := range known {
		if m.ID != chain.ID {
			continue
		}
		if chain.Name == "" {
			chain.Name = m.Name
		}
		if chain.Symbol == "" {
			chain.Symbol = m.Symbol
		}
		if chain.DefaultRPC == "" {
			chain.DefaultRPC = m.DefaultRPC
		}
		return
	}
	r.logger.Debug("No chain metadata for id", zap.Uint64("chainId", chain.ID))
}

func (r *Registry) metadataChains(ctx context.Context) ([]entity.Chain, error) {
	if r.cache != nil {
		chains, found, err := r.cache.GetChains(ctx)
		if err != nil {
			r.logger.Warn("Chain metadata cache read failed", zap.Error(err))
		} else if found {
			return chains, nil
		}
	}

	chains, err := r.metadata.GetAllChains(ctx)
	if err != nil {
		return nil, err
	}
	if r.cache != nil {
		if err := r.cache.SetChains(ctx, chains, r.cacheTTL); err != nil {
			r.logger.Warn("Chain metadata cache write failed", zap.Error(err))
		}
	}
	return chains, nil
}
