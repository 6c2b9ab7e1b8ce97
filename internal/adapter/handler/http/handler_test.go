package http

import (
	"context"
	"testing"

	"node-finder/internal/application/port"
	"node-finder/internal/application/port/mocks"
	"node-finder/internal/domain"
	"node-finder/internal/domain/entity"
	"node-finder/internal/pkg/apperrors"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newRequestCtx(method, uri string, body string, params map[string]string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	for k, v := range params {
		ctx.SetUserValue(k, v)
	}
	return ctx
}

func TestFindNodes(t *testing.T) {
	ctrl := gomock.NewController(t)
	finder := mocks.NewMockFinderService(ctrl)
	h := NewFinderHandler(finder, zap.NewNop())

	tolerance := uint64(20)
	finder.EXPECT().Find(gomock.Any(), port.FindRequest{
		ChainID:       56,
		Kind:          entity.NodeKindArchive,
		CountryCode:   "DE",
		UserID:        7,
		Count:         3,
		Transport:     entity.TransportWS,
		SyncTolerance: &tolerance,
	}).Return(port.FindResult{
		Chain: entity.DefaultChains()[1],
		Kind:  entity.NodeKindArchive,
		Nodes: []entity.ValidatedNode{{URL: "ws://203.0.113.1:8546", LatencyMs: 12, BlockNumber: 100, Archive: true}},
	}, nil)

	ctx := newRequestCtx("GET", "/chains/56/nodes?kind=archive&country=DE&user=7&count=3&transport=ws&tolerance=20", "",
		map[string]string{"chainId": "56"})
	h.FindNodes(ctx)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var got port.FindResult
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &got))
	require.Len(t, got.Nodes, 1)
	assert.True(t, got.Nodes[0].Archive)
}

func TestFindNodes_BulkReturnsURLs(t *testing.T) {
	ctrl := gomock.NewController(t)
	finder := mocks.NewMockFinderService(ctrl)
	h := NewFinderHandler(finder, zap.NewNop())

	finder.EXPECT().Find(gomock.Any(), gomock.Any()).Return(port.FindResult{
		Kind:  entity.NodeKindBulk,
		Nodes: []entity.ValidatedNode{{URL: "http://a:8545"}, {URL: "http://b:8545"}},
	}, nil)

	ctx := newRequestCtx("GET", "/chains/1/nodes?kind=bulk", "", map[string]string{"chainId": "1"})
	h.FindNodes(ctx)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `["http://a:8545","http://b:8545"]`, string(ctx.Response.Body()))
}

func TestFindNodes_BadQuery(t *testing.T) {
	h := NewFinderHandler(mocks.NewMockFinderService(gomock.NewController(t)), zap.NewNop())

	for _, q := range []string{"kind=pruned", "count=many", "transport=smtp", "tolerance=-1", "user=x"} {
		ctx := newRequestCtx("GET", "/chains/1/nodes?"+q, "", map[string]string{"chainId": "1"})
		h.FindNodes(ctx)
		assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode(), q)
	}
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, fasthttp.StatusNotFound, statusFor(domain.ErrChainNotFound))
	assert.Equal(t, fasthttp.StatusBadRequest, statusFor(apperrors.ErrInvalidInput))
	assert.Equal(t, fasthttp.StatusBadGateway, statusFor(domain.ErrReferenceUnavailable))
	assert.Equal(t, fasthttp.StatusBadGateway, statusFor(apperrors.ErrUpstream))
	assert.Equal(t, fasthttp.StatusBadGateway, statusFor(apperrors.ErrTimeout))
	assert.Equal(t, fasthttp.StatusInternalServerError, statusFor(context.Canceled))
}

func TestRegisterChain(t *testing.T) {
	ctrl := gomock.NewController(t)
	finder := mocks.NewMockFinderService(ctrl)
	h := NewFinderHandler(finder, zap.NewNop())

	in := entity.Chain{ID: 31337, Name: "Devnet", DefaultRPC: "http://127.0.0.1:8545"}
	out := in
	out.Custom = true
	finder.EXPECT().RegisterChain(gomock.Any(), in).Return(out, nil)

	ctx := newRequestCtx("POST", "/chains", `{"id":31337,"name":"Devnet","defaultRpc":"http://127.0.0.1:8545"}`, nil)
	h.RegisterChain(ctx)
	assert.Equal(t, fasthttp.StatusCreated, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), `"custom":true`)

	ctx = newRequestCtx("POST", "/chains", `{"id":`, nil)
	h.RegisterChain(ctx)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestSettingsEndpoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	finder := mocks.NewMockFinderService(ctrl)
	h := NewFinderHandler(finder, zap.NewNop())

	finder.EXPECT().Settings(gomock.Any(), int64(9)).Return(entity.DefaultSettings(), nil)
	ctx := newRequestCtx("GET", "/users/9/settings", "", map[string]string{"userId": "9"})
	h.GetSettings(ctx)
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), `"defaultCount":10`)

	finder.EXPECT().UpdateSettings(gomock.Any(), int64(9), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, patch port.SettingsPatch) (entity.Settings, error) {
			require.NotNil(t, patch.DefaultCount)
			assert.Equal(t, 3, *patch.DefaultCount)
			assert.Equal(t, "https://bsc.example", patch.ReferenceRPCs[56])
			return entity.Settings{}, apperrors.ErrInvalidInput
		})
	ctx = newRequestCtx("PUT", "/users/9/settings", `{"defaultCount":3,"referenceRpcs":{"56":"https://bsc.example"}}`,
		map[string]string{"userId": "9"})
	h.UpdateSettings(ctx)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}
