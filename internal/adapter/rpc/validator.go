package rpc

import (
	"context"
	"errors"
	"time"

	"node-finder/internal/domain"
	"node-finder/internal/domain/entity"
	domainService "node-finder/internal/domain/service"
	"node-finder/internal/metrics"
	"node-finder/internal/pkg/apperrors"

	"go.uber.org/zap"
)

// Compile-time check
var _ domainService.NodeValidator = (*Validator)(nil)

// Validator runs the identity, integrity and freshness pipeline over one transport.
type Validator struct {
	transport       Transport
	sequenceTimeout time.Duration
	logger          *zap.Logger
}

// NewValidator creates a validator. A positive sequenceTimeout bounds the whole
// three-call sequence, on top of each call's own timeout.
func NewValidator(transport Transport, sequenceTimeout time.Duration, logger *zap.Logger) *Validator {
	return &Validator{
		transport:       transport,
		sequenceTimeout: sequenceTimeout,
		logger:          logger.Named("Validator").With(zap.String("transport", string(transport.Kind()))),
	}
}

// Validate implements domainService.NodeValidator. Waiting for admission is not charged
// to the sequence timeout; the timer starts once a slot is held.
func (v *Validator) Validate(ctx context.Context, req entity.ValidationRequest) (entity.ValidatedNode, error) {
	release, err := v.transport.Admit(ctx)
	if err != nil {
		v.observe(req.URL, err)
		return entity.ValidatedNode{}, err
	}
	defer release()

	if v.sequenceTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.sequenceTimeout)
		defer cancel()
	}

	session, err := v.transport.Open(ctx, req.URL)
	if err != nil {
		v.observe(req.URL, err)
		return entity.ValidatedNode{}, err
	}
	defer session.Close()

	start := time.Now()
	result, err := runPipeline(ctx, session, req)
	latency := time.Since(start)
	if err != nil {
		v.observe(req.URL, err)
		return entity.ValidatedNode{}, err
	}
	v.observe(req.URL, nil)

	node := entity.ValidatedNode{
		URL:         req.URL,
		LatencyMs:   latency.Milliseconds(),
		BlockNumber: result.blockNumber,
	}
	v.logger.Debug("Node validated",
		zap.String("url", node.URL),
		zap.Int64("latencyMs", node.LatencyMs),
		zap.Uint64("blockNumber", node.BlockNumber),
	)
	return node, nil
}

func (v *Validator) observe(rpcURL string, err error) {
	result := resultLabel(err)
	metrics.ObserveValidation(string(v.transport.Kind()), result)
	if err != nil {
		v.logger.Debug("Node rejected", zap.String("url", rpcURL), zap.String("result", result), zap.Error(err))
	}
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrValidation):
		return domain.ValidationReason(err)
	case apperrors.IsTransport(err):
		return "transport_error"
	case errors.Is(err, apperrors.ErrParse):
		return "parse_error"
	default:
		return "error"
	}
}
