package port

import (
	"context"

	"node-finder/internal/domain/entity"
)

//go:generate mockgen -destination=mocks/mock_port.go -package=mocks . DiscoveryService,FinderService

// DiscoveryRequest is one fully resolved discovery run.
type DiscoveryRequest struct {
	Chain         entity.Chain
	Kind          entity.NodeKind
	CountryCode   string
	DesiredCount  int
	Transport     entity.Transport
	SyncTolerance uint64
	// ReferenceURL overrides Chain.DefaultRPC as the source of the reference height.
	ReferenceURL string
}

// DiscoveryService finds, validates and ranks nodes for one chain.
type DiscoveryService interface {
	// Discover returns at most DesiredCount validated nodes ordered by latency. An empty
	// list is a normal outcome.
	Discover(ctx context.Context, req DiscoveryRequest) ([]entity.ValidatedNode, error)
}

// FindRequest is what a front end asks for. Zero-valued overrides fall back to the
// user's stored settings.
type FindRequest struct {
	ChainID     uint64
	Kind        entity.NodeKind
	CountryCode string
	UserID      int64

	Count         int
	Transport     entity.Transport
	SyncTolerance *uint64
	ReferenceURL  string
}

// FindResult is the outcome of a find.
type FindResult struct {
	Chain       entity.Chain           `json:"chain"`
	Kind        entity.NodeKind        `json:"kind"`
	CountryCode string                 `json:"countryCode,omitempty"`
	Transport   entity.Transport       `json:"transport"`
	Nodes       []entity.ValidatedNode `json:"nodes"`
	// Expanded is set when the country filter was dropped because it yielded nothing.
	Expanded bool `json:"expanded"`
}

// URLs returns the node URLs in rank order.
func (r FindResult) URLs() []string {
	urls := make([]string, len(r.Nodes))
	for i, n := range r.Nodes {
		urls[i] = n.URL
	}
	return urls
}

// SettingsPatch is a partial settings update. Nil fields are left unchanged; an empty
// URL in ReferenceRPCs removes that chain's override.
type SettingsPatch struct {
	DefaultCount  *int              `json:"defaultCount,omitempty"`
	Transport     *string           `json:"transport,omitempty"`
	SyncTolerance *uint64           `json:"syncTolerance,omitempty"`
	ReferenceRPCs map[uint64]string `json:"referenceRpcs,omitempty"`
}

// FinderService is the front-end facing API.
type FinderService interface {
	Find(ctx context.Context, req FindRequest) (FindResult, error)
	Chains(ctx context.Context) ([]entity.Chain, error)
	RegisterChain(ctx context.Context, chain entity.Chain) (entity.Chain, error)
	Settings(ctx context.Context, userID int64) (entity.Settings, error)
	UpdateSettings(ctx context.Context, userID int64, patch SettingsPatch) (entity.Settings, error)
}
