package rpc

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"node-finder/internal/pkg/apperrors"

	"github.com/goccy/go-json"
)

// Version2 is the only JSON-RPC version spoken.
const Version2 = "2.0"

// requestID is the fixed correlation id. Calls within one session are strictly sequential.
const requestID = 1

// JSON-RPC methods used for validation. Reference: https://ethereum.org/en/developers/docs/apis/json-rpc/
const (
	MethodChainID          = "eth_chainId"
	MethodBlockNumber      = "eth_blockNumber"
	MethodGetBlockByNumber = "eth_getBlockByNumber"
)

// Request is a JSON-RPC 2.0 request object.
type Request struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      int    `json:"id"`
}

// NewRequest builds a request with the fixed id. Params are always encoded as an array.
func NewRequest(method string, params ...any) Request {
	if params == nil {
		params = []any{}
	}
	return Request{JSONRPC: Version2, Method: method, Params: params, ID: requestID}
}

// ChainIDRequest builds an eth_chainId request.
func ChainIDRequest() Request {
	return NewRequest(MethodChainID)
}

// BlockNumberRequest builds an eth_blockNumber request.
func BlockNumberRequest() Request {
	return NewRequest(MethodBlockNumber)
}

// GetBlockByNumberRequest builds an eth_getBlockByNumber request without full transactions,
// e.g. params ["0x64", false].
func GetBlockByNumberRequest(height uint64) Request {
	return NewRequest(MethodGetBlockByNumber, EncodeQuantity(height), false)
}

// Response is a JSON-RPC 2.0 response object.
type Response struct {
	ID      json.RawMessage `json:"id,omitempty"`
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// Error is the error member of a JSON-RPC response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("json-rpc error %d: %s", e.Code, e.Message)
}

// Block holds the fields of an eth_getBlockByNumber result the finder relies on.
type Block struct {
	Number string `json:"number"`
	Hash   string `json:"hash"`
}

var nullLiteral = []byte("null")

// DecodeResponse parses a raw response body.
func DecodeResponse(body []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: invalid json-rpc response: %v", apperrors.ErrParse, err)
	}
	return &resp, nil
}

// HasResult reports whether the response carries a non-null result.
func (r *Response) HasResult() bool {
	return r.Error == nil && len(r.Result) > 0 && !bytes.Equal(bytes.TrimSpace(r.Result), nullLiteral)
}

// Quantity decodes a hex quantity result such as "0x38".
func (r *Response) Quantity() (uint64, error) {
	if r.Error != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrParse, r.Error)
	}
	if !r.HasResult() {
		return 0, fmt.Errorf("%w: empty result", apperrors.ErrParse)
	}
	var hex string
	if err := json.Unmarshal(r.Result, &hex); err != nil {
		return 0, fmt.Errorf("%w: quantity is not a string: %v", apperrors.ErrParse, err)
	}
	v, err := ParseQuantity(hex)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrParse, err)
	}
	return v, nil
}

// Block decodes a block result. A null result yields a nil block and no error.
func (r *Response) Block() (*Block, error) {
	if r.Error != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrParse, r.Error)
	}
	if !r.HasResult() {
		return nil, nil
	}
	var b Block
	if err := json.Unmarshal(r.Result, &b); err != nil {
		return nil, fmt.Errorf("%w: block is not an object: %v", apperrors.ErrParse, err)
	}
	return &b, nil
}

// ParseQuantity parses a hex quantity with an optional 0x prefix.
func ParseQuantity(s string) (uint64, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if digits == "" {
		return 0, fmt.Errorf("invalid hex quantity %q", s)
	}
	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hex quantity %q: %w", s, err)
	}
	return v, nil
}

// EncodeQuantity formats v as a hex quantity, e.g. 100 -> "0x64".
func EncodeQuantity(v uint64) string {
	return "0x" + strconv.FormatUint(v, 16)
}
