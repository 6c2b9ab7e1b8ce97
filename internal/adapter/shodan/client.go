// Package shodan finds candidate JSON-RPC endpoints through the Shodan host search API.
package shodan

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	dto "node-finder/internal/adapter/shodan/dto"
	"node-finder/internal/config"
	"node-finder/internal/domain/entity"
	domainService "node-finder/internal/domain/service"
	"node-finder/internal/metrics"
	"node-finder/internal/pkg/apperrors"
	"node-finder/internal/pkg/pacer"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const (
	searchPath     = "/shodan/host/search"
	defaultTimeout = 30 * time.Second
)

// Compile-time check
var _ domainService.SearchGateway = (*Client)(nil)

// Client implements SearchGateway. Calls share one pacer, so request starts are spaced
// by at least the pacer interval across all goroutines using the client.
type Client struct {
	client  *fasthttp.Client
	baseURL string
	apiKey  string
	ports   []int
	timeout time.Duration
	pacer   *pacer.Pacer
	logger  *zap.Logger
}

// NewClient creates a Shodan client. A nil pacer gets one with the configured interval.
func NewClient(cfg config.ShodanConfig, p *pacer.Pacer, logger *zap.Logger) *Client {
	timeout := cfg.GetTimeout()
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if p == nil {
		p = pacer.New(cfg.GetMinInterval())
	}
	return &Client{
		client:  &fasthttp.Client{ReadTimeout: timeout, WriteTimeout: timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		ports:   cfg.Ports,
		timeout: timeout,
		pacer:   p,
		logger:  logger.Named("ShodanClient"),
	}
}

// Search implements domainService.SearchGateway.
func (c *Client) Search(ctx context.Context, chainID uint64, countryCode string) ([]entity.Candidate, error) {
	query := BuildQuery(chainID, c.ports, countryCode)

	if err := c.pacer.Wait(ctx); err != nil {
		metrics.ObserveSearch("error")
		return nil, fmt.Errorf("%w: waiting for search slot: %v", apperrors.ErrTransport, err)
	}

	candidates, err := c.search(ctx, query)
	switch {
	case err != nil:
		metrics.ObserveSearch("error")
	case len(candidates) == 0:
		metrics.ObserveSearch("empty")
	default:
		metrics.ObserveSearch("ok")
	}
	return candidates, err
}

func (c *Client) search(ctx context.Context, query string) ([]entity.Candidate, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("query", query)

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + searchPath + "?" + params.Encode())
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAcceptEncoding, "gzip")

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("%w: no time left for host search", apperrors.ErrTransport)
	}

	c.logger.Debug("Searching hosts", zap.String("query", query), zap.Duration("timeout", timeout))

	if err := c.client.DoTimeout(req, resp, timeout); err != nil {
		if errors.Is(err, fasthttp.ErrTimeout) {
			c.logger.Warn("Host search timed out", zap.Duration("timeout", timeout))
			return nil, fmt.Errorf("%w: host search timed out after %v", apperrors.ErrTransport, timeout)
		}
		c.logger.Error("Failed to execute host search", zap.Error(err))
		return nil, fmt.Errorf("%w: host search request failed: %v", apperrors.ErrTransport, err)
	}

	body, err := resp.BodyUncompressed()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decompress host search response: %v", apperrors.ErrParse, err)
	}

	if status := resp.StatusCode(); status < 200 || status > 299 {
		var apiErr dto.ErrorRaw
		_ = json.Unmarshal(body, &apiErr)
		c.logger.Error("Host search returned non-success status",
			zap.Int("statusCode", status), zap.String("error", apiErr.Error))
		return nil, fmt.Errorf("%w: host search returned status %d: %s", apperrors.ErrUpstream, status, apiErr.Error)
	}

	var raw dto.SearchResultRaw
	if err := json.Unmarshal(body, &raw); err != nil {
		c.logger.Error("Failed to parse host search response",
			zap.Error(err), zap.ByteString("bodySample", body[:min(512, len(body))]))
		return nil, fmt.Errorf("%w: failed to parse host search response: %v", apperrors.ErrParse, err)
	}

	candidates := toCandidates(raw.Matches, c.logger)
	c.logger.Debug("Host search finished",
		zap.Int("matches", len(raw.Matches)), zap.Int("candidates", len(candidates)))
	return candidates, nil
}
