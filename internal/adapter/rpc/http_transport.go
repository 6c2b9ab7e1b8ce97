package rpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"node-finder/internal/domain/entity"
	"node-finder/internal/pkg/apperrors"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Compile-time check
var _ Transport = (*HTTPTransport)(nil)

// HTTPTransport is the short-lived transport: every call is its own POST on a fresh
// connection. It has no local concurrency limit.
type HTTPTransport struct {
	client      *fasthttp.Client
	callTimeout time.Duration
	logger      *zap.Logger
}

// NewHTTPTransport creates an HTTP transport with a per-call timeout.
func NewHTTPTransport(callTimeout time.Duration, logger *zap.Logger) *HTTPTransport {
	return &HTTPTransport{
		client: &fasthttp.Client{
			ReadTimeout:              callTimeout,
			WriteTimeout:             callTimeout,
			NoDefaultUserAgentHeader: true,
		},
		callTimeout: callTimeout,
		logger:      logger.Named("HTTPTransport"),
	}
}

// Kind implements Transport.
func (t *HTTPTransport) Kind() entity.Transport {
	return entity.TransportHTTP
}

// Admit implements Transport. HTTP sessions are not gated.
func (t *HTTPTransport) Admit(_ context.Context) (func(), error) {
	return func() {}, nil
}

// Open implements Transport. Nothing is dialed until the first call.
func (t *HTTPTransport) Open(_ context.Context, rpcURL string) (Session, error) {
	return &httpSession{transport: t, url: rpcURL}, nil
}

type httpSession struct {
	transport *HTTPTransport
	url       string
}

func (s *httpSession) Close() error {
	return nil
}

func (s *httpSession) Call(ctx context.Context, rpcReq Request) (*Response, error) {
	t := s.transport

	payload, err := json.Marshal(rpcReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode %s request: %v", apperrors.ErrInternal, rpcReq.Method, err)
	}

	timeout := effectiveTimeout(ctx, t.callTimeout)
	if timeout <= 0 {
		return nil, fmt.Errorf("%w: no time left for %s on %s", apperrors.ErrTimeout, rpcReq.Method, s.url)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(s.url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetConnectionClose()
	req.SetBody(payload)

	if err := t.client.DoTimeout(req, resp, timeout); err != nil {
		if errors.Is(err, fasthttp.ErrTimeout) {
			t.logger.Debug("HTTP RPC call timed out",
				zap.String("url", s.url), zap.String("method", rpcReq.Method), zap.Duration("timeout", timeout))
			return nil, fmt.Errorf("%w: %s to %s timed out after %v", apperrors.ErrTimeout, rpcReq.Method, s.url, timeout)
		}
		t.logger.Debug("HTTP RPC call failed",
			zap.String("url", s.url), zap.String("method", rpcReq.Method), zap.Error(err))
		return nil, fmt.Errorf("%w: %s to %s failed: %v", apperrors.ErrTransport, rpcReq.Method, s.url, err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		t.logger.Debug("HTTP RPC call returned non-OK status",
			zap.String("url", s.url), zap.Int("statusCode", resp.StatusCode()))
		return nil, fmt.Errorf("%w: %s returned http status %d", apperrors.ErrTransport, s.url, resp.StatusCode())
	}

	body, err := resp.BodyUncompressed()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decompress response from %s: %v", apperrors.ErrParse, s.url, err)
	}

	// The response buffer goes back to the pool on return.
	return DecodeResponse(append([]byte(nil), body...))
}
