package application

import (
	"context"
	"fmt"
	"testing"

	"node-finder/internal/application/port"
	"node-finder/internal/config"
	"node-finder/internal/domain"
	"node-finder/internal/domain/entity"
	domainService "node-finder/internal/domain/service"
	"node-finder/internal/domain/service/mocks"
	"node-finder/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var testDiscoveryConfig = config.DiscoveryConfig{
	OverprovisionFactor: 3,
	BulkCount:           50,
	HTTPPort:            8545,
	WSPort:              8546,
}

type discoveryMocks struct {
	search    *mocks.MockSearchGateway
	http      *mocks.MockNodeValidator
	ws        *mocks.MockNodeValidator
	archive   *mocks.MockArchiveProber
	reference *mocks.MockHeightReader
	service   port.DiscoveryService
}

func newDiscoveryMocks(t *testing.T) *discoveryMocks {
	ctrl := gomock.NewController(t)
	m := &discoveryMocks{
		search:    mocks.NewMockSearchGateway(ctrl),
		http:      mocks.NewMockNodeValidator(ctrl),
		ws:        mocks.NewMockNodeValidator(ctrl),
		archive:   mocks.NewMockArchiveProber(ctrl),
		reference: mocks.NewMockHeightReader(ctrl),
	}
	m.service = NewDiscoveryService(
		m.search,
		map[entity.Transport]domainService.NodeValidator{
			entity.TransportHTTP: m.http,
			entity.TransportWS:   m.ws,
		},
		m.archive,
		m.reference,
		testDiscoveryConfig,
		zap.NewNop(),
	)
	return m
}

func bscChain() entity.Chain {
	return entity.DefaultChains()[1]
}

func httpRequest(count int) port.DiscoveryRequest {
	return port.DiscoveryRequest{
		Chain:         bscChain(),
		Kind:          entity.NodeKindFull,
		DesiredCount:  count,
		Transport:     entity.TransportHTTP,
		SyncTolerance: 50,
	}
}

func candidates(n, tcpPort int) []entity.Candidate {
	out := make([]entity.Candidate, n)
	for i := range out {
		out[i] = entity.Candidate{IP: fmt.Sprintf("203.0.113.%d", i+1), Port: tcpPort}
	}
	return out
}

// validatorByLatency accepts every candidate and derives latency from the URL table.
func validatorByLatency(latency map[string]int64) func(context.Context, entity.ValidationRequest) (entity.ValidatedNode, error) {
	return func(_ context.Context, req entity.ValidationRequest) (entity.ValidatedNode, error) {
		ms, ok := latency[req.URL]
		if !ok {
			return entity.ValidatedNode{}, domain.NewValidationError(domain.ReasonNotSynced, "test")
		}
		return entity.ValidatedNode{URL: req.URL, LatencyMs: ms, BlockNumber: req.ReferenceHeight}, nil
	}
}

func TestDiscover_EmptySearchResult(t *testing.T) {
	m := newDiscoveryMocks(t)
	req := httpRequest(10)
	req.CountryCode = "IS"

	m.reference.EXPECT().BlockNumber(gomock.Any(), bscChain().DefaultRPC).Return(uint64(1000), nil)
	m.search.EXPECT().Search(gomock.Any(), uint64(56), "IS").Return(nil, nil)

	nodes, err := m.service.Discover(context.Background(), req)
	require.NoError(t, err)
	assert.NotNil(t, nodes)
	assert.Empty(t, nodes)
}

func TestDiscover_RanksAndTruncates(t *testing.T) {
	m := newDiscoveryMocks(t)
	found := candidates(4, 8545)
	latency := map[string]int64{
		found[0].URL(entity.TransportHTTP): 40,
		found[1].URL(entity.TransportHTTP): 10,
		found[2].URL(entity.TransportHTTP): 30,
		found[3].URL(entity.TransportHTTP): 10,
	}

	m.reference.EXPECT().BlockNumber(gomock.Any(), gomock.Any()).Return(uint64(1000), nil)
	m.search.EXPECT().Search(gomock.Any(), uint64(56), "").Return(found, nil)
	m.http.EXPECT().Validate(gomock.Any(), gomock.Any()).DoAndReturn(validatorByLatency(latency)).Times(4)

	nodes, err := m.service.Discover(context.Background(), httpRequest(3))
	require.NoError(t, err)
	require.Len(t, nodes, 3)
	// Equal latencies keep search order.
	assert.Equal(t, found[1].URL(entity.TransportHTTP), nodes[0].URL)
	assert.Equal(t, found[3].URL(entity.TransportHTTP), nodes[1].URL)
	assert.Equal(t, found[2].URL(entity.TransportHTTP), nodes[2].URL)
	for _, n := range nodes {
		assert.False(t, n.Archive)
	}
}

func TestDiscover_ValidationRequestCarriesChainFacts(t *testing.T) {
	m := newDiscoveryMocks(t)
	req := httpRequest(1)
	req.SyncTolerance = 7

	m.reference.EXPECT().BlockNumber(gomock.Any(), gomock.Any()).Return(uint64(1234), nil)
	m.search.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).Return(candidates(1, 8545), nil)
	m.http.EXPECT().Validate(gomock.Any(), entity.ValidationRequest{
		URL:             "http://203.0.113.1:8545",
		ChainID:         56,
		GenesisHash:     entity.BSCGenesis,
		ReferenceHeight: 1234,
		SyncTolerance:   7,
	}).Return(entity.ValidatedNode{URL: "http://203.0.113.1:8545"}, nil)

	nodes, err := m.service.Discover(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, nodes, 1)
}

func TestDiscover_PortFilterAndOverprovision(t *testing.T) {
	m := newDiscoveryMocks(t)
	found := append(candidates(2, 8546), candidates(10, 8545)...)

	m.reference.EXPECT().BlockNumber(gomock.Any(), gomock.Any()).Return(uint64(1000), nil)
	m.search.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).Return(found, nil)
	// 2 wanted × factor 3 = 6 candidates, all on 8545.
	m.http.EXPECT().Validate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entity.ValidationRequest) (entity.ValidatedNode, error) {
			assert.Contains(t, req.URL, ":8545")
			return entity.ValidatedNode{URL: req.URL}, nil
		}).Times(6)

	nodes, err := m.service.Discover(context.Background(), httpRequest(2))
	require.NoError(t, err)
	assert.Len(t, nodes, 2)
}

func TestDiscover_WSUsesWSPortAndValidator(t *testing.T) {
	m := newDiscoveryMocks(t)
	req := httpRequest(1)
	req.Transport = entity.TransportWS
	found := append(candidates(1, 8545), candidates(1, 8546)...)

	m.reference.EXPECT().BlockNumber(gomock.Any(), gomock.Any()).Return(uint64(1000), nil)
	m.search.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).Return(found, nil)
	m.ws.EXPECT().Validate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entity.ValidationRequest) (entity.ValidatedNode, error) {
			assert.Equal(t, "ws://203.0.113.1:8546", req.URL)
			return entity.ValidatedNode{URL: req.URL}, nil
		})

	nodes, err := m.service.Discover(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, nodes, 1)
}

func TestDiscover_FailedCandidatesDropped(t *testing.T) {
	m := newDiscoveryMocks(t)
	found := candidates(3, 8545)

	m.reference.EXPECT().BlockNumber(gomock.Any(), gomock.Any()).Return(uint64(1000), nil)
	m.search.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).Return(found, nil)
	m.http.EXPECT().Validate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entity.ValidationRequest) (entity.ValidatedNode, error) {
			switch req.URL {
			case found[0].URL(entity.TransportHTTP):
				return entity.ValidatedNode{}, domain.NewValidationError(domain.ReasonGenesisMismatch, "x")
			case found[1].URL(entity.TransportHTTP):
				return entity.ValidatedNode{}, fmt.Errorf("%w: refused", apperrors.ErrTransport)
			}
			return entity.ValidatedNode{URL: req.URL, LatencyMs: 5}, nil
		}).Times(3)

	nodes, err := m.service.Discover(context.Background(), httpRequest(10))
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, found[2].URL(entity.TransportHTTP), nodes[0].URL)
}

func TestDiscover_ArchiveFilter(t *testing.T) {
	m := newDiscoveryMocks(t)
	req := httpRequest(10)
	req.Kind = entity.NodeKindArchive
	found := candidates(3, 8545)
	pruned := found[1].URL(entity.TransportHTTP)

	m.reference.EXPECT().BlockNumber(gomock.Any(), gomock.Any()).Return(uint64(1000), nil)
	m.search.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).Return(found, nil)
	m.http.EXPECT().Validate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entity.ValidationRequest) (entity.ValidatedNode, error) {
			return entity.ValidatedNode{URL: req.URL}, nil
		}).Times(3)
	m.archive.EXPECT().ProbeArchive(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n entity.ValidatedNode) (entity.ValidatedNode, error) {
			if n.URL == pruned {
				return entity.ValidatedNode{}, fmt.Errorf("%w: block 1 not available", domain.ErrArchiveProbe)
			}
			return n.WithArchive(), nil
		}).Times(3)

	nodes, err := m.service.Discover(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	for _, n := range nodes {
		assert.True(t, n.Archive)
		assert.NotEqual(t, pruned, n.URL)
	}
}

func TestDiscover_BulkSkipsArchive(t *testing.T) {
	m := newDiscoveryMocks(t)
	req := httpRequest(50)
	req.Kind = entity.NodeKindBulk

	m.reference.EXPECT().BlockNumber(gomock.Any(), gomock.Any()).Return(uint64(1000), nil)
	m.search.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).Return(candidates(2, 8545), nil)
	m.http.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(entity.ValidatedNode{URL: "x"}, nil).Times(2)

	nodes, err := m.service.Discover(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, nodes, 2)
}

func TestDiscover_ReferenceOverride(t *testing.T) {
	m := newDiscoveryMocks(t)
	req := httpRequest(1)
	req.ReferenceURL = "https://my-node.example"

	m.reference.EXPECT().BlockNumber(gomock.Any(), "https://my-node.example").Return(uint64(5), nil)
	m.search.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := m.service.Discover(context.Background(), req)
	require.NoError(t, err)
}

func TestDiscover_ReferenceUnavailable(t *testing.T) {
	m := newDiscoveryMocks(t)

	m.reference.EXPECT().BlockNumber(gomock.Any(), gomock.Any()).Return(uint64(0), fmt.Errorf("%w: refused", apperrors.ErrTransport))

	_, err := m.service.Discover(context.Background(), httpRequest(10))
	assert.ErrorIs(t, err, domain.ErrReferenceUnavailable)
}

func TestDiscover_SearchErrorPropagates(t *testing.T) {
	m := newDiscoveryMocks(t)

	m.reference.EXPECT().BlockNumber(gomock.Any(), gomock.Any()).Return(uint64(1000), nil)
	m.search.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("%w: status 401", apperrors.ErrUpstream))

	_, err := m.service.Discover(context.Background(), httpRequest(10))
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}

func TestDiscover_InvalidRequest(t *testing.T) {
	m := newDiscoveryMocks(t)

	_, err := m.service.Discover(context.Background(), httpRequest(0))
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	req := httpRequest(1)
	req.Transport = "smoke-signal"
	_, err = m.service.Discover(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestDiscover_Idempotent(t *testing.T) {
	m := newDiscoveryMocks(t)
	found := candidates(5, 8545)
	latency := map[string]int64{}
	for i, c := range found {
		latency[c.URL(entity.TransportHTTP)] = int64(50 - i*10)
	}

	m.reference.EXPECT().BlockNumber(gomock.Any(), gomock.Any()).Return(uint64(1000), nil).Times(2)
	m.search.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).Return(found, nil).Times(2)
	m.http.EXPECT().Validate(gomock.Any(), gomock.Any()).DoAndReturn(validatorByLatency(latency)).Times(10)

	first, err := m.service.Discover(context.Background(), httpRequest(3))
	require.NoError(t, err)
	second, err := m.service.Discover(context.Background(), httpRequest(3))
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, []int64{10, 20, 30}, []int64{first[0].LatencyMs, first[1].LatencyMs, first[2].LatencyMs})
}
