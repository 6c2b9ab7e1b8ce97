package chainlist

import (
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dto "node-finder/internal/adapter/storage/chainlist/dto"
	"node-finder/internal/config"
	"node-finder/internal/domain/entity"
	"node-finder/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const feed = `[
	{"name":"Polygon Mainnet","chain":"Polygon","chainId":137,"shortName":"pol",
	 "nativeCurrency":{"name":"POL","symbol":"POL","decimals":18},
	 "rpc":["https://polygon-mainnet.infura.io/v3/${INFURA_API_KEY}","wss://polygon.drpc.org","https://polygon-rpc.com"]},
	{"name":"Broken","chainId":0,"rpc":[]}
]`

func TestRepository_GetAllChains(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(feed))
	}))
	defer srv.Close()

	r := NewRepository(config.ChainlistConfig{URL: srv.URL, Timeout: time.Second}, zap.NewNop())
	chains, err := r.GetAllChains(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []entity.Chain{{
		ID:         137,
		Name:       "Polygon Mainnet",
		Symbol:     "POL",
		DefaultRPC: "https://polygon-rpc.com",
		Custom:     true,
	}}, chains)
}

func TestRepository_GetAllChains_Gzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(feed))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		_, _ = w.Write(buf.Bytes())
	}))
	defer srv.Close()

	chains, err := NewRepository(config.ChainlistConfig{URL: srv.URL}, zap.NewNop()).GetAllChains(context.Background())
	require.NoError(t, err)
	require.Len(t, chains, 1)
	assert.Equal(t, uint64(137), chains[0].ID)
}

func TestRepository_GetAllChains_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "not found", status: http.StatusNotFound, wantErr: apperrors.ErrNotFound},
		{name: "server error", status: http.StatusBadGateway, wantErr: apperrors.ErrUpstream},
		{name: "malformed", status: http.StatusOK, body: `{"oops"`, wantErr: apperrors.ErrParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewRepository(config.ChainlistConfig{URL: srv.URL}, zap.NewNop()).GetAllChains(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPickReferenceRPC(t *testing.T) {
	assert.Equal(t, "https://b.example", pickReferenceRPC([]string{
		"https://a.example/${KEY}", "wss://ws.example", "not a url", "https://b.example",
	}))
	assert.Empty(t, pickReferenceRPC([]string{"wss://only.ws"}))
	assert.Empty(t, pickReferenceRPC(nil))
}

func TestToDomainChains_Nil(t *testing.T) {
	assert.Nil(t, toDomainChains(nil, zap.NewNop()))
	assert.Empty(t, toDomainChains([]dto.ChainRaw{{ChainID: -1}}, nil))
}
