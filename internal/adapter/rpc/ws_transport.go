package rpc

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"node-finder/internal/domain/entity"
	"node-finder/internal/pkg/apperrors"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Compile-time check
var _ Transport = (*WSTransport)(nil)

// WSTransport is the persistent duplex transport: one connection carries every call of a
// session. Open sessions are bounded by a shared Gate; a permit is held from Admit until
// the caller releases it after Close.
type WSTransport struct {
	dialer      *websocket.Dialer
	gate        *Gate
	callTimeout time.Duration
	logger      *zap.Logger
}

// NewWSTransport creates a WebSocket transport admitting sessions through gate. A nil gate
// gets a private one with the default ceiling.
func NewWSTransport(gate *Gate, callTimeout time.Duration, logger *zap.Logger) *WSTransport {
	if gate == nil {
		gate = NewGate(DefaultWSMaxConcurrent)
	}
	return &WSTransport{
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: callTimeout,
		},
		gate:        gate,
		callTimeout: callTimeout,
		logger:      logger.Named("WSTransport"),
	}
}

// Kind implements Transport.
func (t *WSTransport) Kind() entity.Transport {
	return entity.TransportWS
}

// Admit implements Transport. It waits for a slot on the shared gate.
func (t *WSTransport) Admit(ctx context.Context) (func(), error) {
	return t.gate.Acquire(ctx)
}

// Open implements Transport. The caller must hold a slot from Admit.
func (t *WSTransport) Open(ctx context.Context, rpcURL string) (Session, error) {
	dialCtx, cancel := context.WithTimeout(ctx, effectiveTimeout(ctx, t.callTimeout))
	defer cancel()

	t.logger.Debug("Dialing WS endpoint", zap.String("url", rpcURL))
	conn, resp, err := t.dialer.DialContext(dialCtx, rpcURL, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		t.logger.Debug("WS dial failed", zap.String("url", rpcURL), zap.Error(err))
		return nil, classifyNetErr(dialCtx, "ws dial", rpcURL, err)
	}

	return &wsSession{transport: t, conn: conn, url: rpcURL}, nil
}

type wsSession struct {
	transport *WSTransport
	conn      *websocket.Conn
	url       string
	closeOnce sync.Once
}

func (s *wsSession) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.conn.Close()
	})
	return err
}

func (s *wsSession) Call(ctx context.Context, rpcReq Request) (*Response, error) {
	t := s.transport

	payload, err := json.Marshal(rpcReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode %s request: %v", apperrors.ErrInternal, rpcReq.Method, err)
	}

	timeout := effectiveTimeout(ctx, t.callTimeout)
	if timeout <= 0 {
		return nil, fmt.Errorf("%w: no time left for %s on %s", apperrors.ErrTimeout, rpcReq.Method, s.url)
	}

	_ = s.conn.SetWriteDeadline(time.Now().Add(timeout))
	if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		t.logger.Debug("WS write failed", zap.String("url", s.url), zap.Error(err))
		return nil, classifyNetErr(ctx, "ws write", s.url, err)
	}

	_ = s.conn.SetReadDeadline(time.Now().Add(timeout))
	msgType, message, err := s.conn.ReadMessage()
	if err != nil {
		t.logger.Debug("WS read failed", zap.String("url", s.url), zap.Error(err))
		return nil, classifyNetErr(ctx, "ws read", s.url, err)
	}

	if msgType != websocket.TextMessage {
		t.logger.Debug("WS returned non-text frame", zap.String("url", s.url), zap.Int("messageType", msgType))
		return nil, fmt.Errorf("%w: %s sent unexpected ws message type %d", apperrors.ErrParse, s.url, msgType)
	}

	return DecodeResponse(message)
}
