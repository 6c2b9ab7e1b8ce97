package chainlist

import (
	"context"
	"fmt"
	"time"

	dto "node-finder/internal/adapter/storage/chainlist/dto"
	"node-finder/internal/config"
	"node-finder/internal/domain/entity"
	domainRepo "node-finder/internal/domain/repository"
	"node-finder/internal/pkg/apperrors"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const defaultTimeout = 15 * time.Second

// Compile-time check
var _ domainRepo.ChainMetadataSource = (*Repository)(nil)

// Repository implements ChainMetadataSource over the public Chainlist JSON feed.
type Repository struct {
	client  *fasthttp.Client
	url     string
	timeout time.Duration
	logger  *zap.Logger
}

// NewRepository creates a new Chainlist repository instance.
func NewRepository(cfg config.ChainlistConfig, logger *zap.Logger) *Repository {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Repository{
		client:  &fasthttp.Client{},
		url:     cfg.URL,
		timeout: timeout,
		logger:  logger.Named("ChainlistStorage"),
	}
}

// GetAllChains downloads the feed and maps every entry with a usable chain id.
func (r *Repository) GetAllChains(ctx context.Context) ([]entity.Chain, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(r.url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAcceptEncoding, "gzip")

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("%w: no time left to fetch chainlist", apperrors.ErrTimeout)
	}

	r.logger.Debug("Fetching chains from Chainlist", zap.String("url", r.url), zap.Duration("timeout", timeout))

	if err := r.client.DoTimeout(req, resp, timeout); err != nil {
		r.logger.Warn("Failed to execute request to Chainlist", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to execute request to Chainlist: %v", apperrors.ErrTransport, err)
	}

	switch status := resp.StatusCode(); {
	case status == fasthttp.StatusNotFound:
		return nil, fmt.Errorf("%w: chainlist source reported not found (%s)", apperrors.ErrNotFound, r.url)
	case status != fasthttp.StatusOK:
		r.logger.Warn("Chainlist returned non-OK status", zap.Int("statusCode", status))
		return nil, fmt.Errorf("%w: chainlist returned status %d", apperrors.ErrUpstream, status)
	}

	// Handles gzip as well as identity encodings.
	body, err := resp.BodyUncompressed()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decompress chainlist response: %v", apperrors.ErrParse, err)
	}

	var rawChains []dto.ChainRaw
	if err := json.Unmarshal(body, &rawChains); err != nil {
		r.logger.Warn("Failed to unmarshal Chainlist response",
			zap.Error(err), zap.ByteString("bodySample", body[:min(1024, len(body))]))
		return nil, fmt.Errorf("%w: failed to parse chainlist response: %v", apperrors.ErrParse, err)
	}

	chains := toDomainChains(rawChains, r.logger)
	r.logger.Info("Fetched chain metadata from Chainlist",
		zap.Int("raw", len(rawChains)), zap.Int("mapped", len(chains)))
	return chains, nil
}
