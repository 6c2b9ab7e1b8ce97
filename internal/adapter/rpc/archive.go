package rpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"node-finder/internal/domain"
	"node-finder/internal/domain/entity"
	domainService "node-finder/internal/domain/service"
	"node-finder/internal/metrics"

	"go.uber.org/zap"
)

// DefaultArchiveHeights are near-genesis, shallow and deep historical blocks.
var DefaultArchiveHeights = []uint64{1, 100, 1_000_000}

// DefaultArchiveTimeout bounds a whole archive probe.
const DefaultArchiveTimeout = 10 * time.Second

// Compile-time check
var _ domainService.ArchiveProber = (*Prober)(nil)

// Prober checks that a validated node serves historical blocks.
type Prober struct {
	transports map[entity.Transport]Transport
	heights    []uint64
	timeout    time.Duration
	logger     *zap.Logger
}

// NewProber creates a prober. The transport for a node is picked from its URL scheme.
func NewProber(heights []uint64, timeout time.Duration, logger *zap.Logger, transports ...Transport) *Prober {
	if len(heights) == 0 {
		heights = DefaultArchiveHeights
	}
	if timeout <= 0 {
		timeout = DefaultArchiveTimeout
	}
	byKind := make(map[entity.Transport]Transport, len(transports))
	for _, t := range transports {
		byKind[t.Kind()] = t
	}
	return &Prober{
		transports: byKind,
		heights:    heights,
		timeout:    timeout,
		logger:     logger.Named("ArchiveProber"),
	}
}

// ProbeArchive implements domainService.ArchiveProber. On success it returns a copy of
// node with Archive set; node itself is never modified.
func (p *Prober) ProbeArchive(ctx context.Context, node entity.ValidatedNode) (entity.ValidatedNode, error) {
	err := p.probe(ctx, node.URL)
	metrics.ObserveArchiveProbe(err == nil)
	if err != nil {
		p.logger.Debug("Archive probe failed", zap.String("url", node.URL), zap.Error(err))
		return entity.ValidatedNode{}, err
	}
	p.logger.Debug("Archive probe succeeded", zap.String("url", node.URL))
	return node.WithArchive(), nil
}

func (p *Prober) probe(ctx context.Context, rpcURL string) error {
	kind, err := entity.TransportForURL(rpcURL)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrArchiveProbe, err)
	}
	transport, ok := p.transports[kind]
	if !ok {
		return fmt.Errorf("%w: no %s transport configured", domain.ErrArchiveProbe, kind)
	}

	release, err := transport.Admit(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrArchiveProbe, err)
	}
	defer release()

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	session, err := transport.Open(ctx, rpcURL)
	if err != nil {
		return p.wrap(ctx, err)
	}
	defer session.Close()

	for _, height := range p.heights {
		resp, err := session.Call(ctx, GetBlockByNumberRequest(height))
		if err != nil {
			return p.wrap(ctx, fmt.Errorf("block %d: %w", height, err))
		}
		block, err := resp.Block()
		if err != nil {
			return p.wrap(ctx, fmt.Errorf("block %d: %w", height, err))
		}
		if block == nil {
			return fmt.Errorf("%w: block %d not available", domain.ErrArchiveProbe, height)
		}
		if block.Number == "" || block.Hash == "" {
			return fmt.Errorf("%w: block %d returned incomplete data", domain.ErrArchiveProbe, height)
		}
	}
	return nil
}

func (p *Prober) wrap(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: timed out after %v: %v", domain.ErrArchiveProbe, p.timeout, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrArchiveProbe, err)
}
