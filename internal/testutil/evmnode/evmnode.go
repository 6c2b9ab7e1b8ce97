// Package evmnode runs an in-process fake EVM JSON-RPC node for tests. It answers
// eth_chainId, eth_blockNumber and eth_getBlockByNumber over HTTP POST and WebSocket.
package evmnode

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

// Config describes how the fake node behaves.
type Config struct {
	ChainID     uint64
	GenesisHash string
	Height      uint64
	// PrunedBelow makes blocks 1..PrunedBelow-1 return null. Genesis is always served.
	PrunedBelow uint64
	// Delay is applied before every answer.
	Delay time.Duration
	// BinaryFrames makes the WebSocket side answer with binary frames.
	BinaryFrames bool
	// FailMethod answers the named method with a JSON-RPC error object.
	FailMethod string
	// StatusCode overrides the HTTP status for POST answers.
	StatusCode int
}

// Node is a running fake node.
type Node struct {
	cfg    Config
	server *httptest.Server

	httpCalls   atomic.Int64
	wsCalls     atomic.Int64
	tcpConns    atomic.Int64
	wsConns     atomic.Int64
	mu          sync.Mutex
	methodCalls map[string]int
}

// Start launches a node. Close it when done.
func Start(cfg Config) *Node {
	n := &Node{cfg: cfg, methodCalls: make(map[string]int)}
	n.server = httptest.NewUnstartedServer(http.HandlerFunc(n.serve))
	n.server.Config.ConnState = func(_ net.Conn, state http.ConnState) {
		if state == http.StateNew {
			n.tcpConns.Add(1)
		}
	}
	n.server.Start()
	return n
}

// Close shuts the node down.
func (n *Node) Close() {
	n.server.CloseClientConnections()
	n.server.Close()
}

// HTTPURL is the node's http:// endpoint.
func (n *Node) HTTPURL() string {
	return n.server.URL
}

// WSURL is the node's ws:// endpoint.
func (n *Node) WSURL() string {
	return "ws" + strings.TrimPrefix(n.server.URL, "http")
}

// HTTPCalls is the number of JSON-RPC calls received over HTTP.
func (n *Node) HTTPCalls() int64 { return n.httpCalls.Load() }

// WSCalls is the number of JSON-RPC calls received over WebSocket.
func (n *Node) WSCalls() int64 { return n.wsCalls.Load() }

// TCPConnections is the number of TCP connections accepted so far.
func (n *Node) TCPConnections() int64 { return n.tcpConns.Load() }

// WSConnections is the number of WebSocket upgrades accepted so far.
func (n *Node) WSConnections() int64 { return n.wsConns.Load() }

// MethodCalls returns how many times method was called on any transport.
func (n *Node) MethodCalls(method string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.methodCalls[method]
}

var upgrader = websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}

func (n *Node) serve(w http.ResponseWriter, r *http.Request) {
	if websocket.IsWebSocketUpgrade(r) {
		n.serveWS(w, r)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	n.httpCalls.Add(1)
	out := n.answer(body)
	w.Header().Set("Content-Type", "application/json")
	if n.cfg.StatusCode != 0 {
		w.WriteHeader(n.cfg.StatusCode)
	}
	_, _ = w.Write(out)
}

func (n *Node) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	n.wsConns.Add(1)

	frame := websocket.TextMessage
	if n.cfg.BinaryFrames {
		frame = websocket.BinaryMessage
	}
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		n.wsCalls.Add(1)
		if err := conn.WriteMessage(frame, n.answer(msg)); err != nil {
			return
		}
	}
}

type request struct {
	ID     json.RawMessage `json:"id"`
	Method string          `json:"method"`
	Params []any           `json:"params"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type block struct {
	Number string `json:"number"`
	Hash   string `json:"hash"`
}

func (n *Node) answer(body []byte) []byte {
	if n.cfg.Delay > 0 {
		time.Sleep(n.cfg.Delay)
	}
	var req request
	if err := json.Unmarshal(body, &req); err != nil {
		return mustMarshal(response{JSONRPC: "2.0", ID: json.RawMessage("null"), Error: &rpcError{Code: -32700, Message: "parse error"}})
	}
	n.mu.Lock()
	n.methodCalls[req.Method]++
	n.mu.Unlock()

	resp := response{JSONRPC: "2.0", ID: req.ID}
	if req.Method == n.cfg.FailMethod {
		resp.Error = &rpcError{Code: -32000, Message: "forced failure"}
		return mustMarshal(resp)
	}

	switch req.Method {
	case "eth_chainId":
		resp.Result = hexQuantity(n.cfg.ChainID)
	case "eth_blockNumber":
		resp.Result = hexQuantity(n.cfg.Height)
	case "eth_getBlockByNumber":
		resp.Result = n.block(req.Params)
	default:
		resp.Error = &rpcError{Code: -32601, Message: "method not found"}
	}
	return mustMarshal(resp)
}

func (n *Node) block(params []any) any {
	if len(params) == 0 {
		return nil
	}
	tag, _ := params[0].(string)
	height, err := strconv.ParseUint(strings.TrimPrefix(tag, "0x"), 16, 64)
	if err != nil || height > n.cfg.Height {
		return nil
	}
	if height > 0 && height < n.cfg.PrunedBelow {
		return nil
	}
	hash := fmt.Sprintf("0x%064x", height+1)
	if height == 0 && n.cfg.GenesisHash != "" {
		hash = n.cfg.GenesisHash
	}
	return block{Number: hexQuantity(height), Hash: hash}
}

func hexQuantity(v uint64) string {
	return "0x" + strconv.FormatUint(v, 16)
}

func mustMarshal(v any) []byte {
	out, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return out
}
