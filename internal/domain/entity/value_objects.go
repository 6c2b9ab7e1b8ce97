package entity

import (
	"fmt"
	"net/url"
	"strings"
)

// RPCURL represents a typed URL for an RPC endpoint.
type RPCURL string

// NewRPCURL creates a new RPCURL instance.
func NewRPCURL(rawURL string) (RPCURL, error) {
	if strings.TrimSpace(rawURL) == "" {
		return "", fmt.Errorf("rpc url cannot be empty")
	}

	u, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid rpc url format '%s': %w", rawURL, err)
	}

	scheme := strings.ToLower(u.Scheme)
	switch scheme {
	case "http", "https", "ws", "wss":
	default:
		return "", fmt.Errorf("rpc url '%s' has unsupported scheme: '%s'", rawURL, scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("rpc url '%s' has no host", rawURL)
	}

	return RPCURL(rawURL), nil
}

// NewReferenceURL validates a ground-truth endpoint. Reference heights are always read over HTTP.
func NewReferenceURL(rawURL string) (RPCURL, error) {
	u, err := NewRPCURL(rawURL)
	if err != nil {
		return "", err
	}
	if t, _ := TransportForURL(u.String()); t != TransportHTTP {
		return "", fmt.Errorf("reference url '%s' must use http or https", rawURL)
	}
	return u, nil
}

// String returns the string representation of the RPCURL.
func (r RPCURL) String() string {
	return string(r)
}

// Transport selects how a candidate is spoken to.
type Transport string

const (
	// TransportHTTP opens a fresh request/response exchange per call.
	TransportHTTP Transport = "http"
	// TransportWS holds one duplex connection for a whole validation.
	TransportWS Transport = "ws"
)

// ParseTransport converts user input into a Transport.
func ParseTransport(s string) (Transport, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "http", "https":
		return TransportHTTP, nil
	case "ws", "wss", "websocket":
		return TransportWS, nil
	default:
		return "", fmt.Errorf("unknown transport %q", s)
	}
}

// TransportForURL derives the transport from an endpoint URL scheme.
func TransportForURL(rawURL string) (Transport, error) {
	scheme, _, found := strings.Cut(rawURL, "://")
	if !found {
		return "", fmt.Errorf("url %q has no scheme", rawURL)
	}
	switch strings.ToLower(scheme) {
	case "http", "https":
		return TransportHTTP, nil
	case "ws", "wss":
		return TransportWS, nil
	default:
		return "", fmt.Errorf("url %q has unsupported scheme %q", rawURL, scheme)
	}
}

// NodeKind is the kind of node a caller asks for.
type NodeKind string

const (
	NodeKindFull    NodeKind = "full"
	NodeKindArchive NodeKind = "archive"
	NodeKindBulk    NodeKind = "bulk"
)

// ParseNodeKind converts user input into a NodeKind. Empty input means full.
func ParseNodeKind(s string) (NodeKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "full":
		return NodeKindFull, nil
	case "archive":
		return NodeKindArchive, nil
	case "bulk":
		return NodeKindBulk, nil
	default:
		return "", fmt.Errorf("unknown node kind %q", s)
	}
}

// RequiresArchive reports whether nodes of this kind must pass the archive probe.
func (k NodeKind) RequiresArchive() bool {
	return k == NodeKindArchive
}
