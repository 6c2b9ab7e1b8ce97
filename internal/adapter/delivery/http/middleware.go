package http

import (
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Middleware wraps a request handler.
type Middleware func(next fasthttp.RequestHandler) fasthttp.RequestHandler

// Limits configures the API token bucket. A non-positive rate disables throttling.
type Limits struct {
	RequestsPerSecond float64
	Burst             int
}

// RequestLogger logs every request with its status and duration.
func RequestLogger(logger *zap.Logger) Middleware {
	logger = logger.Named("HTTP")
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			start := time.Now()
			next(ctx)
			logger.Info("Request handled",
				zap.ByteString("method", ctx.Method()),
				zap.ByteString("uri", ctx.RequestURI()),
				zap.Int("status", ctx.Response.StatusCode()),
				zap.Duration("duration", time.Since(start)),
			)
		}
	}
}

// RateLimit rejects requests with 429 once the shared token bucket is empty.
// Requests to exempt paths are never throttled.
func RateLimit(limits Limits, exempt ...string) Middleware {
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		if limits.RequestsPerSecond <= 0 {
			return next
		}
		burst := limits.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter := rate.NewLimiter(rate.Limit(limits.RequestsPerSecond), burst)
		skip := make(map[string]struct{}, len(exempt))
		for _, p := range exempt {
			skip[p] = struct{}{}
		}

		return func(ctx *fasthttp.RequestCtx) {
			if _, ok := skip[string(ctx.Path())]; !ok && !limiter.Allow() {
				ctx.SetContentType("application/json")
				ctx.SetStatusCode(fasthttp.StatusTooManyRequests)
				ctx.SetBodyString(`{"error":"rate limit exceeded"}`)
				return
			}
			next(ctx)
		}
	}
}
