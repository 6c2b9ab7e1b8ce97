package http

import (
	"errors"
	"strconv"

	"node-finder/internal/application/port"
	"node-finder/internal/domain"
	"node-finder/internal/domain/entity"
	"node-finder/internal/pkg/apperrors"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// FinderHandler serves the node finder API.
type FinderHandler struct {
	finder port.FinderService
	logger *zap.Logger
}

func NewFinderHandler(finder port.FinderService, logger *zap.Logger) *FinderHandler {
	return &FinderHandler{
		finder: finder,
		logger: logger.Named("FinderHandler"),
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// GetChains lists every chain discovery can run against.
func (h *FinderHandler) GetChains(ctx *fasthttp.RequestCtx) {
	chains, err := h.finder.Chains(ctx)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	h.writeJSON(ctx, fasthttp.StatusOK, chains)
}

// RegisterChain adds a custom chain from the JSON body.
func (h *FinderHandler) RegisterChain(ctx *fasthttp.RequestCtx) {
	var chain entity.Chain
	if err := json.Unmarshal(ctx.PostBody(), &chain); err != nil {
		h.writeError(ctx, errors.Join(apperrors.ErrInvalidInput, err))
		return
	}
	registered, err := h.finder.RegisterChain(ctx, chain)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	h.writeJSON(ctx, fasthttp.StatusCreated, registered)
}

// FindNodes runs discovery for the chain in the path. Query parameters: kind, country,
// user, count, transport, tolerance, reference. Bulk requests get a bare array of URLs.
func (h *FinderHandler) FindNodes(ctx *fasthttp.RequestCtx) {
	chainID, err := uintParam(ctx, "chainId")
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	req, err := findRequestFromQuery(ctx.QueryArgs())
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	req.ChainID = chainID

	result, err := h.finder.Find(ctx, req)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	if result.Kind == entity.NodeKindBulk {
		h.writeJSON(ctx, fasthttp.StatusOK, result.URLs())
		return
	}
	h.writeJSON(ctx, fasthttp.StatusOK, result)
}

// GetSettings returns a user's settings, defaults included.
func (h *FinderHandler) GetSettings(ctx *fasthttp.RequestCtx) {
	userID, err := intParam(ctx, "userId")
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	settings, err := h.finder.Settings(ctx, userID)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	h.writeJSON(ctx, fasthttp.StatusOK, settings)
}

// UpdateSettings applies a partial update from the JSON body.
func (h *FinderHandler) UpdateSettings(ctx *fasthttp.RequestCtx) {
	userID, err := intParam(ctx, "userId")
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	var patch port.SettingsPatch
	if err := json.Unmarshal(ctx.PostBody(), &patch); err != nil {
		h.writeError(ctx, errors.Join(apperrors.ErrInvalidInput, err))
		return
	}
	settings, err := h.finder.UpdateSettings(ctx, userID, patch)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	h.writeJSON(ctx, fasthttp.StatusOK, settings)
}

func findRequestFromQuery(args *fasthttp.Args) (port.FindRequest, error) {
	var req port.FindRequest

	kind, err := entity.ParseNodeKind(string(args.Peek("kind")))
	if err != nil {
		return req, errors.Join(apperrors.ErrInvalidInput, err)
	}
	req.Kind = kind
	req.CountryCode = string(args.Peek("country"))
	req.ReferenceURL = string(args.Peek("reference"))

	if v := args.Peek("user"); len(v) > 0 {
		if req.UserID, err = strconv.ParseInt(string(v), 10, 64); err != nil {
			return req, errors.Join(apperrors.ErrInvalidInput, err)
		}
	}
	if v := args.Peek("count"); len(v) > 0 {
		if req.Count, err = strconv.Atoi(string(v)); err != nil {
			return req, errors.Join(apperrors.ErrInvalidInput, err)
		}
	}
	if v := args.Peek("transport"); len(v) > 0 {
		if req.Transport, err = entity.ParseTransport(string(v)); err != nil {
			return req, errors.Join(apperrors.ErrInvalidInput, err)
		}
	}
	if v := args.Peek("tolerance"); len(v) > 0 {
		tolerance, err := strconv.ParseUint(string(v), 10, 64)
		if err != nil {
			return req, errors.Join(apperrors.ErrInvalidInput, err)
		}
		req.SyncTolerance = &tolerance
	}
	return req, nil
}

func uintParam(ctx *fasthttp.RequestCtx, name string) (uint64, error) {
	raw, _ := ctx.UserValue(name).(string)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.Join(apperrors.ErrInvalidInput, err)
	}
	return v, nil
}

func intParam(ctx *fasthttp.RequestCtx, name string) (int64, error) {
	raw, _ := ctx.UserValue(name).(string)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.Join(apperrors.ErrInvalidInput, err)
	}
	return v, nil
}

// statusFor maps the error taxonomy onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrChainNotFound), errors.Is(err, apperrors.ErrNotFound):
		return fasthttp.StatusNotFound
	case errors.Is(err, apperrors.ErrInvalidInput):
		return fasthttp.StatusBadRequest
	case errors.Is(err, domain.ErrReferenceUnavailable),
		errors.Is(err, apperrors.ErrUpstream),
		errors.Is(err, apperrors.ErrParse),
		apperrors.IsTransport(err):
		return fasthttp.StatusBadGateway
	default:
		return fasthttp.StatusInternalServerError
	}
}

func (h *FinderHandler) writeError(ctx *fasthttp.RequestCtx, err error) {
	status := statusFor(err)
	if status >= fasthttp.StatusInternalServerError {
		h.logger.Error("Request failed", zap.ByteString("uri", ctx.RequestURI()), zap.Error(err))
	} else {
		h.logger.Debug("Request rejected", zap.ByteString("uri", ctx.RequestURI()), zap.Error(err))
	}
	h.writeJSON(ctx, status, errorResponse{Error: err.Error()})
}

func (h *FinderHandler) writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
		ctx.Error("Internal Server Error", fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
