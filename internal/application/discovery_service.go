package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"node-finder/internal/application/port"
	"node-finder/internal/config"
	"node-finder/internal/domain"
	"node-finder/internal/domain/entity"
	domainService "node-finder/internal/domain/service"
	"node-finder/internal/metrics"
	"node-finder/internal/pkg/apperrors"

	"go.uber.org/zap"
)

const defaultOverprovisionFactor = 3

// Compile-time check
var _ port.DiscoveryService = (*discoveryService)(nil)

// discoveryService drives one discovery run: reference height, search, parallel validation,
// optional parallel archive probing, then ranking.
type discoveryService struct {
	search     domainService.SearchGateway
	validators map[entity.Transport]domainService.NodeValidator
	archive    domainService.ArchiveProber
	reference  domainService.HeightReader
	cfg        config.DiscoveryConfig
	logger     *zap.Logger
}

// NewDiscoveryService creates the orchestrator. validators maps each supported transport
// to its validator.
func NewDiscoveryService(
	search domainService.SearchGateway,
	validators map[entity.Transport]domainService.NodeValidator,
	archive domainService.ArchiveProber,
	reference domainService.HeightReader,
	cfg config.DiscoveryConfig,
	logger *zap.Logger,
) port.DiscoveryService {
	if cfg.OverprovisionFactor <= 0 {
		cfg.OverprovisionFactor = defaultOverprovisionFactor
	}
	return &discoveryService{
		search:     search,
		validators: validators,
		archive:    archive,
		reference:  reference,
		cfg:        cfg,
		logger:     logger.Named("DiscoveryService"),
	}
}

// Discover implements port.DiscoveryService.
func (s *discoveryService) Discover(ctx context.Context, req port.DiscoveryRequest) ([]entity.ValidatedNode, error) {
	start := time.Now()
	defer func() { metrics.ObserveDiscovery(req.Chain.ID, string(req.Kind), time.Since(start)) }()

	if req.DesiredCount <= 0 {
		return nil, fmt.Errorf("%w: desired count must be positive, got %d", apperrors.ErrInvalidInput, req.DesiredCount)
	}
	validator, ok := s.validators[req.Transport]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported transport %q", apperrors.ErrInvalidInput, req.Transport)
	}

	logger := s.logger.With(
		zap.Uint64("chainId", req.Chain.ID),
		zap.String("kind", string(req.Kind)),
		zap.String("country", req.CountryCode),
		zap.String("transport", string(req.Transport)),
	)

	referenceURL := req.ReferenceURL
	if referenceURL == "" {
		referenceURL = req.Chain.DefaultRPC
	}
	referenceHeight, err := s.reference.BlockNumber(ctx, referenceURL)
	if err != nil {
		logger.Warn("Reference node unavailable", zap.String("reference", referenceURL), zap.Error(err))
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrReferenceUnavailable, referenceURL, err)
	}

	found, err := s.search.Search(ctx, req.Chain.ID, req.CountryCode)
	if err != nil {
		return nil, fmt.Errorf("search for chain %d: %w", req.Chain.ID, err)
	}

	candidates := s.selectCandidates(found, req.Transport, req.DesiredCount)
	logger.Debug("Validating candidates",
		zap.Int("found", len(found)),
		zap.Int("selected", len(candidates)),
		zap.Uint64("referenceHeight", referenceHeight),
	)
	if len(candidates) == 0 {
		return []entity.ValidatedNode{}, nil
	}

	nodes := s.validateAll(ctx, validator, candidates, req, referenceHeight)
	if req.Kind.RequiresArchive() && len(nodes) > 0 {
		nodes = s.probeAll(ctx, nodes)
	}

	sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].LatencyMs < nodes[j].LatencyMs })
	if len(nodes) > req.DesiredCount {
		nodes = nodes[:req.DesiredCount]
	}

	logger.Info("Discovery finished",
		zap.Int("candidates", len(candidates)),
		zap.Int("nodes", len(nodes)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nodes, nil
}

// selectCandidates keeps candidates on the transport's canonical port, capped at the
// overprovision factor times the desired count. Search order is preserved.
func (s *discoveryService) selectCandidates(found []entity.Candidate, t entity.Transport, desired int) []entity.Candidate {
	canonical := s.cfg.PortFor(t)
	limit := desired * s.cfg.OverprovisionFactor

	selected := make([]entity.Candidate, 0, min(limit, len(found)))
	for _, c := range found {
		if len(selected) == limit {
			break
		}
		if canonical != 0 && c.Port != canonical {
			continue
		}
		selected = append(selected, c)
	}
	return selected
}

func (s *discoveryService) validateAll(
	ctx context.Context,
	validator domainService.NodeValidator,
	candidates []entity.Candidate,
	req port.DiscoveryRequest,
	referenceHeight uint64,
) []entity.ValidatedNode {
	results := make([]*entity.ValidatedNode, len(candidates))

	var wg sync.WaitGroup
	for i, c := range candidates {
		wg.Add(1)
		go func(i int, c entity.Candidate) {
			defer wg.Done()
			node, err := validator.Validate(ctx, entity.ValidationRequest{
				URL:             c.URL(req.Transport),
				ChainID:         req.Chain.ID,
				GenesisHash:     req.Chain.GenesisHash,
				ReferenceHeight: referenceHeight,
				SyncTolerance:   req.SyncTolerance,
			})
			if err != nil {
				s.logFailure("Candidate rejected", c.URL(req.Transport), err)
				return
			}
			results[i] = &node
		}(i, c)
	}
	wg.Wait()

	return collect(results)
}

func (s *discoveryService) probeAll(ctx context.Context, nodes []entity.ValidatedNode) []entity.ValidatedNode {
	results := make([]*entity.ValidatedNode, len(nodes))

	var wg sync.WaitGroup
	for i, n := range nodes {
		wg.Add(1)
		go func(i int, n entity.ValidatedNode) {
			defer wg.Done()
			probed, err := s.archive.ProbeArchive(ctx, n)
			if err != nil {
				s.logFailure("Archive probe rejected node", n.URL, err)
				return
			}
			if probed.Archive {
				results[i] = &probed
			}
		}(i, n)
	}
	wg.Wait()

	return collect(results)
}

func (s *discoveryService) logFailure(msg, url string, err error) {
	fields := []zap.Field{zap.String("url", url), zap.Error(err)}
	if reason := domain.ValidationReason(err); reason != "" {
		fields = append(fields, zap.String("reason", reason))
	} else if errors.Is(err, context.Canceled) {
		fields = append(fields, zap.Bool("cancelled", true))
	}
	s.logger.Debug(msg, fields...)
}

func collect(results []*entity.ValidatedNode) []entity.ValidatedNode {
	out := make([]entity.ValidatedNode, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}
