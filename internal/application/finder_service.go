package application

import (
	"context"
	"fmt"
	"strings"

	"node-finder/internal/application/port"
	"node-finder/internal/config"
	"node-finder/internal/domain/entity"
	domainRepo "node-finder/internal/domain/repository"
	"node-finder/internal/pkg/apperrors"

	"go.uber.org/zap"
)

const defaultBulkCount = 50

// Compile-time check
var _ port.FinderService = (*finderService)(nil)

// finderService resolves front-end requests against the registry and user settings.
type finderService struct {
	discovery port.DiscoveryService
	chains    domainRepo.ChainRegistry
	settings  domainRepo.SettingsRepository
	bulkCount int
	logger    *zap.Logger
}

// NewFinderService creates the front-end facing service.
func NewFinderService(
	discovery port.DiscoveryService,
	chains domainRepo.ChainRegistry,
	settings domainRepo.SettingsRepository,
	cfg config.DiscoveryConfig,
	logger *zap.Logger,
) port.FinderService {
	bulkCount := cfg.BulkCount
	if bulkCount <= 0 {
		bulkCount = defaultBulkCount
	}
	return &finderService{
		discovery: discovery,
		chains:    chains,
		settings:  settings,
		bulkCount: bulkCount,
		logger:    logger.Named("FinderService"),
	}
}

// Find runs discovery for a chain. A country-scoped run that finds nothing is retried once
// without the country and the result is marked Expanded.
func (s *finderService) Find(ctx context.Context, req port.FindRequest) (port.FindResult, error) {
	chain, err := s.chains.Get(ctx, req.ChainID)
	if err != nil {
		return port.FindResult{}, err
	}
	settings, err := s.settings.Get(ctx, req.UserID)
	if err != nil {
		return port.FindResult{}, fmt.Errorf("load settings for user %d: %w", req.UserID, err)
	}

	dreq, err := s.resolve(chain, settings, req)
	if err != nil {
		return port.FindResult{}, err
	}

	nodes, err := s.discovery.Discover(ctx, dreq)
	if err != nil {
		return port.FindResult{}, err
	}

	result := port.FindResult{
		Chain:       chain,
		Kind:        dreq.Kind,
		CountryCode: dreq.CountryCode,
		Transport:   dreq.Transport,
		Nodes:       nodes,
	}
	if len(nodes) > 0 || dreq.CountryCode == "" {
		return result, nil
	}

	s.logger.Info("No nodes in requested country, expanding search",
		zap.Uint64("chainId", chain.ID), zap.String("country", dreq.CountryCode))
	dreq.CountryCode = ""
	nodes, err = s.discovery.Discover(ctx, dreq)
	if err != nil {
		return port.FindResult{}, err
	}
	result.Nodes = nodes
	result.Expanded = true
	return result, nil
}

func (s *finderService) resolve(chain entity.Chain, settings entity.Settings, req port.FindRequest) (port.DiscoveryRequest, error) {
	kind := req.Kind
	if kind == "" {
		kind = entity.NodeKindFull
	}

	transport := settings.Transport
	if req.Transport != "" {
		transport = req.Transport
	}

	tolerance := settings.SyncTolerance
	if req.SyncTolerance != nil {
		tolerance = *req.SyncTolerance
	}

	count := settings.DefaultCount
	switch {
	case kind == entity.NodeKindBulk:
		count = s.bulkCount
	case req.Count != 0:
		count = req.Count
	}
	if count <= 0 {
		return port.DiscoveryRequest{}, fmt.Errorf("%w: count must be positive, got %d", apperrors.ErrInvalidInput, count)
	}

	reference := settings.ReferenceFor(chain)
	if req.ReferenceURL != "" {
		if _, err := entity.NewReferenceURL(req.ReferenceURL); err != nil {
			return port.DiscoveryRequest{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
		}
		reference = req.ReferenceURL
	}

	return port.DiscoveryRequest{
		Chain:         chain,
		Kind:          kind,
		CountryCode:   strings.ToUpper(strings.TrimSpace(req.CountryCode)),
		DesiredCount:  count,
		Transport:     transport,
		SyncTolerance: tolerance,
		ReferenceURL:  reference,
	}, nil
}

// Chains lists the registry.
func (s *finderService) Chains(ctx context.Context) ([]entity.Chain, error) {
	return s.chains.List(ctx)
}

// RegisterChain adds a custom chain.
func (s *finderService) RegisterChain(ctx context.Context, chain entity.Chain) (entity.Chain, error) {
	return s.chains.Register(ctx, chain)
}

// Settings returns a user's settings.
func (s *finderService) Settings(ctx context.Context, userID int64) (entity.Settings, error) {
	return s.settings.Get(ctx, userID)
}

// UpdateSettings applies a partial update to a user's settings.
func (s *finderService) UpdateSettings(ctx context.Context, userID int64, patch port.SettingsPatch) (entity.Settings, error) {
	return s.settings.Update(ctx, userID, func(st *entity.Settings) error {
		if patch.DefaultCount != nil {
			st.DefaultCount = *patch.DefaultCount
		}
		if patch.Transport != nil {
			t, err := entity.ParseTransport(*patch.Transport)
			if err != nil {
				return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
			}
			st.Transport = t
		}
		if patch.SyncTolerance != nil {
			st.SyncTolerance = *patch.SyncTolerance
		}
		for chainID, u := range patch.ReferenceRPCs {
			if u == "" {
				delete(st.ReferenceRPCs, chainID)
				continue
			}
			st.ReferenceRPCs[chainID] = u
		}
		return nil
	})
}
