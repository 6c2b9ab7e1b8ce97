package entity

import (
	"net"
	"strconv"
)

// Candidate is an address reported by the host-search service. It has not been checked.
type Candidate struct {
	IP          string `json:"ip"`
	Port        int    `json:"port"`
	CountryCode string `json:"countryCode,omitempty"`
}

// URL builds the endpoint URL for the given transport.
func (c Candidate) URL(t Transport) string {
	scheme := "http"
	if t == TransportWS {
		scheme = "ws"
	}
	return scheme + "://" + net.JoinHostPort(c.IP, strconv.Itoa(c.Port))
}

// ValidationRequest bundles everything one protocol validation needs.
type ValidationRequest struct {
	URL             string
	ChainID         uint64
	GenesisHash     string
	ReferenceHeight uint64
	SyncTolerance   uint64
}

// ValidatedNode is an endpoint that passed identity, integrity and freshness checks.
// LatencyMs is the wall time of the three checks. Over WS it excludes the dial, while over
// HTTP every call pays its own connect, so latencies only rank within one transport.
type ValidatedNode struct {
	URL         string `json:"url"`
	LatencyMs   int64  `json:"latencyMs"`
	BlockNumber uint64 `json:"blockNumber"`
	Archive     bool   `json:"archive"`
}

// WithArchive returns a copy of the node flagged as archive-capable.
func (n ValidatedNode) WithArchive() ValidatedNode {
	n.Archive = true
	return n
}
