package application

import (
	"context"
	"testing"

	"node-finder/internal/adapter/storage/memory"
	"node-finder/internal/adapter/storage/registry"
	"node-finder/internal/application/port"
	portMocks "node-finder/internal/application/port/mocks"
	"node-finder/internal/config"
	"node-finder/internal/domain"
	"node-finder/internal/domain/entity"
	"node-finder/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type finderFixture struct {
	discovery *portMocks.MockDiscoveryService
	settings  *memory.SettingsRepository
	service   port.FinderService
}

func newFinderFixture(t *testing.T) *finderFixture {
	settings, err := memory.NewSettingsRepository(config.SettingsConfig{}, zap.NewNop())
	require.NoError(t, err)
	discovery := portMocks.NewMockDiscoveryService(gomock.NewController(t))
	return &finderFixture{
		discovery: discovery,
		settings:  settings,
		service: NewFinderService(
			discovery,
			registry.New(nil, zap.NewNop()),
			settings,
			testDiscoveryConfig,
			zap.NewNop(),
		),
	}
}

func TestFind_UsesUserSettings(t *testing.T) {
	f := newFinderFixture(t)
	ctx := context.Background()

	_, err := f.settings.Update(ctx, 5, func(s *entity.Settings) error {
		s.DefaultCount = 4
		s.Transport = entity.TransportWS
		s.SyncTolerance = 9
		s.ReferenceRPCs[56] = "https://my-bsc.example"
		return nil
	})
	require.NoError(t, err)

	f.discovery.EXPECT().Discover(gomock.Any(), port.DiscoveryRequest{
		Chain:         bscChain(),
		Kind:          entity.NodeKindFull,
		CountryCode:   "DE",
		DesiredCount:  4,
		Transport:     entity.TransportWS,
		SyncTolerance: 9,
		ReferenceURL:  "https://my-bsc.example",
	}).Return([]entity.ValidatedNode{{URL: "ws://203.0.113.1:8546"}}, nil)

	got, err := f.service.Find(ctx, port.FindRequest{ChainID: 56, CountryCode: "de", UserID: 5})
	require.NoError(t, err)
	assert.False(t, got.Expanded)
	assert.Equal(t, "DE", got.CountryCode)
	assert.Equal(t, []string{"ws://203.0.113.1:8546"}, got.URLs())
}

func TestFind_RequestOverridesAndDefaults(t *testing.T) {
	f := newFinderFixture(t)
	tolerance := uint64(0)

	f.discovery.EXPECT().Discover(gomock.Any(), port.DiscoveryRequest{
		Chain:         entity.DefaultChains()[0],
		Kind:          entity.NodeKindArchive,
		DesiredCount:  2,
		Transport:     entity.TransportHTTP,
		SyncTolerance: 0,
		ReferenceURL:  "https://override.example",
	}).Return(nil, nil)

	_, err := f.service.Find(context.Background(), port.FindRequest{
		ChainID:       1,
		Kind:          entity.NodeKindArchive,
		Count:         2,
		SyncTolerance: &tolerance,
		ReferenceURL:  "https://override.example",
	})
	require.NoError(t, err)
}

func TestFind_BulkUsesBulkCount(t *testing.T) {
	f := newFinderFixture(t)

	f.discovery.EXPECT().Discover(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req port.DiscoveryRequest) ([]entity.ValidatedNode, error) {
			assert.Equal(t, 50, req.DesiredCount)
			assert.Equal(t, entity.NodeKindBulk, req.Kind)
			return nil, nil
		})

	_, err := f.service.Find(context.Background(), port.FindRequest{ChainID: 8453, Kind: entity.NodeKindBulk, Count: 3})
	require.NoError(t, err)
}

func TestFind_ExpandsWhenCountryIsEmpty(t *testing.T) {
	f := newFinderFixture(t)
	node := entity.ValidatedNode{URL: "http://198.51.100.7:8545", LatencyMs: 30}

	gomock.InOrder(
		f.discovery.EXPECT().Discover(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req port.DiscoveryRequest) ([]entity.ValidatedNode, error) {
				assert.Equal(t, "IS", req.CountryCode)
				return []entity.ValidatedNode{}, nil
			}),
		f.discovery.EXPECT().Discover(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req port.DiscoveryRequest) ([]entity.ValidatedNode, error) {
				assert.Empty(t, req.CountryCode)
				return []entity.ValidatedNode{node}, nil
			}),
	)

	got, err := f.service.Find(context.Background(), port.FindRequest{ChainID: 56, CountryCode: "IS"})
	require.NoError(t, err)
	assert.True(t, got.Expanded)
	assert.Equal(t, []entity.ValidatedNode{node}, got.Nodes)
}

func TestFind_NoExpansionWithoutCountry(t *testing.T) {
	f := newFinderFixture(t)
	f.discovery.EXPECT().Discover(gomock.Any(), gomock.Any()).Return([]entity.ValidatedNode{}, nil).Times(1)

	got, err := f.service.Find(context.Background(), port.FindRequest{ChainID: 56})
	require.NoError(t, err)
	assert.False(t, got.Expanded)
	assert.Empty(t, got.Nodes)
}

func TestFind_Errors(t *testing.T) {
	f := newFinderFixture(t)
	ctx := context.Background()

	_, err := f.service.Find(ctx, port.FindRequest{ChainID: 999})
	assert.ErrorIs(t, err, domain.ErrChainNotFound)

	_, err = f.service.Find(ctx, port.FindRequest{ChainID: 56, ReferenceURL: "ws://nope.example"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = f.service.Find(ctx, port.FindRequest{ChainID: 56, Count: -1})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	f.discovery.EXPECT().Discover(gomock.Any(), gomock.Any()).Return(nil, domain.ErrReferenceUnavailable)
	_, err = f.service.Find(ctx, port.FindRequest{ChainID: 56, CountryCode: "DE"})
	assert.ErrorIs(t, err, domain.ErrReferenceUnavailable)
}

func TestUpdateSettings_Patch(t *testing.T) {
	f := newFinderFixture(t)
	ctx := context.Background()
	count := 3
	transport := "websocket"

	got, err := f.service.UpdateSettings(ctx, 1, port.SettingsPatch{
		DefaultCount:  &count,
		Transport:     &transport,
		ReferenceRPCs: map[uint64]string{1: "https://eth.example", 56: "https://bsc.example"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, got.DefaultCount)
	assert.Equal(t, entity.TransportWS, got.Transport)
	assert.Equal(t, uint64(50), got.SyncTolerance)

	got, err = f.service.UpdateSettings(ctx, 1, port.SettingsPatch{ReferenceRPCs: map[uint64]string{1: ""}})
	require.NoError(t, err)
	assert.Equal(t, map[uint64]string{56: "https://bsc.example"}, got.ReferenceRPCs)

	bad := "pigeon"
	_, err = f.service.UpdateSettings(ctx, 1, port.SettingsPatch{Transport: &bad})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	stored, err := f.service.Settings(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.TransportWS, stored.Transport)
}

func TestChainsAndRegister(t *testing.T) {
	f := newFinderFixture(t)
	ctx := context.Background()

	_, err := f.service.RegisterChain(ctx, entity.Chain{ID: 31337, Name: "Devnet", DefaultRPC: "http://127.0.0.1:8545"})
	require.NoError(t, err)

	chains, err := f.service.Chains(ctx)
	require.NoError(t, err)
	assert.Len(t, chains, 4)
}
