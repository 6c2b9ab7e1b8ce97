package rpc

import (
	"context"
	"fmt"

	domainService "node-finder/internal/domain/service"

	"go.uber.org/zap"
)

// Compile-time check
var _ domainService.HeightReader = (*ReferenceReader)(nil)

// ReferenceReader reads the current height of a trusted endpoint.
type ReferenceReader struct {
	transport Transport
	logger    *zap.Logger
}

// NewReferenceReader creates a reader over transport.
func NewReferenceReader(transport Transport, logger *zap.Logger) *ReferenceReader {
	return &ReferenceReader{transport: transport, logger: logger.Named("ReferenceReader")}
}

// BlockNumber implements domainService.HeightReader.
func (r *ReferenceReader) BlockNumber(ctx context.Context, rpcURL string) (uint64, error) {
	release, err := r.transport.Admit(ctx)
	if err != nil {
		return 0, err
	}
	defer release()

	session, err := r.transport.Open(ctx, rpcURL)
	if err != nil {
		return 0, err
	}
	defer session.Close()

	resp, err := session.Call(ctx, BlockNumberRequest())
	if err != nil {
		return 0, err
	}
	height, err := resp.Quantity()
	if err != nil {
		return 0, fmt.Errorf("no block number from %s: %w", rpcURL, err)
	}
	r.logger.Debug("Reference height resolved", zap.String("url", rpcURL), zap.Uint64("height", height))
	return height, nil
}
