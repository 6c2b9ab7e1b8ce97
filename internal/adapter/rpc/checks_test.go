package rpc

import (
	"context"
	"errors"
	"testing"

	"node-finder/internal/domain"
	"node-finder/internal/domain/entity"
	"node-finder/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCaller answers by method name and records the call order.
type fakeCaller struct {
	results map[string]string
	errs    map[string]error
	calls   []string
}

func (f *fakeCaller) Call(_ context.Context, req Request) (*Response, error) {
	f.calls = append(f.calls, req.Method)
	if err, ok := f.errs[req.Method]; ok {
		return nil, err
	}
	raw, ok := f.results[req.Method]
	if !ok {
		raw = "null"
	}
	return &Response{JSONRPC: Version2, Result: []byte(raw)}, nil
}

func bscCaller(height string) *fakeCaller {
	return &fakeCaller{
		results: map[string]string{
			MethodChainID:          `"0x38"`,
			MethodGetBlockByNumber: `{"number":"0x0","hash":"` + entity.BSCGenesis + `"}`,
			MethodBlockNumber:      `"` + height + `"`,
		},
	}
}

func bscRequest(reference uint64) entity.ValidationRequest {
	return entity.ValidationRequest{
		URL:             "http://203.0.113.5:8545",
		ChainID:         56,
		GenesisHash:     entity.BSCGenesis,
		ReferenceHeight: reference,
		SyncTolerance:   50,
	}
}

func TestRunPipeline_OrderAndResult(t *testing.T) {
	c := bscCaller("0x3e8")

	out, err := runPipeline(context.Background(), c, bscRequest(1010))
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), out.blockNumber)
	assert.Equal(t, []string{MethodChainID, MethodGetBlockByNumber, MethodBlockNumber}, c.calls)
}

func TestRunPipeline_StopsAtFirstFailure(t *testing.T) {
	c := bscCaller("0x3e8")
	c.results[MethodChainID] = `"0x1"`

	_, err := runPipeline(context.Background(), c, bscRequest(1010))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, domain.ReasonChainIDMismatch, domain.ValidationReason(err))
	assert.Contains(t, err.Error(), "identity check")
	assert.Equal(t, []string{MethodChainID}, c.calls)
}

func TestCheckGenesis(t *testing.T) {
	t.Run("case-insensitive match", func(t *testing.T) {
		c := &fakeCaller{results: map[string]string{
			MethodGetBlockByNumber: `{"number":"0x0","hash":"0x0D21840ABFF46B96C84B2AC9E10E4F5CDAEB5693CB665DB62A2F3B02D2D57B5B"}`,
		}}
		assert.NoError(t, checkGenesis(context.Background(), c, entity.BSCGenesis))
	})

	t.Run("mismatch", func(t *testing.T) {
		c := &fakeCaller{results: map[string]string{
			MethodGetBlockByNumber: `{"number":"0x0","hash":"0xdeadbeef"}`,
		}}
		err := checkGenesis(context.Background(), c, entity.BSCGenesis)
		assert.Equal(t, domain.ReasonGenesisMismatch, domain.ValidationReason(err))
	})

	t.Run("empty expected hash skips the call", func(t *testing.T) {
		c := &fakeCaller{}
		assert.NoError(t, checkGenesis(context.Background(), c, ""))
		assert.Empty(t, c.calls)
	})

	t.Run("null block is a parse failure", func(t *testing.T) {
		c := &fakeCaller{}
		err := checkGenesis(context.Background(), c, entity.BSCGenesis)
		assert.ErrorIs(t, err, apperrors.ErrParse)
	})

	t.Run("missing hash is a parse failure", func(t *testing.T) {
		c := &fakeCaller{results: map[string]string{MethodGetBlockByNumber: `{"number":"0x0"}`}}
		err := checkGenesis(context.Background(), c, entity.BSCGenesis)
		assert.ErrorIs(t, err, apperrors.ErrParse)
	})
}

func TestCheckSync(t *testing.T) {
	tests := []struct {
		name      string
		height    string
		reference uint64
		wantErr   bool
	}{
		{name: "behind within tolerance", height: "0x3e8", reference: 1010},
		{name: "exactly at tolerance", height: "0x3e8", reference: 1050},
		{name: "ahead within tolerance", height: "0x3e8", reference: 990},
		{name: "ahead beyond tolerance", height: "0x3e8", reference: 900, wantErr: true},
		{name: "behind beyond tolerance", height: "0x384", reference: 1010, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &fakeCaller{results: map[string]string{MethodBlockNumber: `"` + tt.height + `"`}}
			_, err := checkSync(context.Background(), c, tt.reference, 50)
			if tt.wantErr {
				assert.Equal(t, domain.ReasonNotSynced, domain.ValidationReason(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCheck_TransportErrorPassesThrough(t *testing.T) {
	c := &fakeCaller{errs: map[string]error{MethodChainID: errors.Join(apperrors.ErrTransport, errors.New("refused"))}}
	err := checkChainID(context.Background(), c, 56)
	assert.True(t, apperrors.IsTransport(err))
	assert.Empty(t, domain.ValidationReason(err))
}
