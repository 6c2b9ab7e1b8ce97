package http

import (
	handler "node-finder/internal/adapter/handler/http"

	"github.com/fasthttp/router"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"
)

// RegisterRoutes sets up the API, metrics and health routes.
func RegisterRoutes(r *router.Router, h *handler.FinderHandler, logger *zap.Logger) {
	logger.Info("Setting up application-specific routes...")

	r.GET("/chains", h.GetChains)
	r.POST("/chains", h.RegisterChain)
	r.GET("/chains/{chainId:[0-9]+}/nodes", h.FindNodes)
	r.GET("/users/{userId:[0-9]+}/settings", h.GetSettings)
	r.PUT("/users/{userId:[0-9]+}/settings", h.UpdateSettings)

	logger.Info("Setting up health check and metrics routes...")
	r.GET("/health", func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("OK")
	})
	r.GET("/metrics", fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()))

	logger.Info("All routes registered.")
}

// NewHandler builds the router and wraps it with middleware. Throttling applies to API
// routes only; health and metrics stay reachable.
func NewHandler(h *handler.FinderHandler, limits Limits, logger *zap.Logger) fasthttp.RequestHandler {
	r := router.New()
	RegisterRoutes(r, h, logger)
	return RequestLogger(logger)(RateLimit(limits, "/health", "/metrics")(r.Handler))
}
