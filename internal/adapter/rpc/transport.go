package rpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"node-finder/internal/domain/entity"
	"node-finder/internal/pkg/apperrors"
)

// Caller sends one request and waits for its response.
type Caller interface {
	Call(ctx context.Context, req Request) (*Response, error)
}

// Session is a sequence of calls against one endpoint. Calls must not overlap.
type Session interface {
	Caller
	Close() error
}

// Transport opens sessions. Implementations differ in connection lifecycle and
// concurrency discipline only.
type Transport interface {
	Kind() entity.Transport
	// Admit waits until a session may be opened and returns the func giving the slot
	// back. Callers Admit before Open and release after Close. Only ctx bounds the wait.
	Admit(ctx context.Context) (release func(), err error)
	Open(ctx context.Context, rpcURL string) (Session, error)
}

// effectiveTimeout shortens d to the time left on ctx, if any.
func effectiveTimeout(ctx context.Context, d time.Duration) time.Duration {
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); d <= 0 || remaining < d {
			return remaining
		}
	}
	return d
}

// classifyNetErr maps socket-level errors onto the transport taxonomy.
func classifyNetErr(ctx context.Context, op, rpcURL string, err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(context.Cause(ctx), context.DeadlineExceeded):
		return fmt.Errorf("%w: %s %s: %v", apperrors.ErrTimeout, op, rpcURL, err)
	case errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%w: %s %s: %v", apperrors.ErrTimeout, op, rpcURL, err)
	default:
		return fmt.Errorf("%w: %s %s: %v", apperrors.ErrTransport, op, rpcURL, err)
	}
}
