package service

import (
	"context"

	"node-finder/internal/domain/entity"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks . SearchGateway,NodeValidator,ArchiveProber,HeightReader

// SearchGateway finds candidate endpoints for a chain through the host-search service.
type SearchGateway interface {
	// Search returns candidates advertising chainID, optionally restricted to a country code.
	// An empty countryCode means any geography. No matches is not an error.
	Search(ctx context.Context, chainID uint64, countryCode string) ([]entity.Candidate, error)
}

// NodeValidator runs the identity, integrity and freshness checks against one endpoint.
type NodeValidator interface {
	Validate(ctx context.Context, req entity.ValidationRequest) (entity.ValidatedNode, error)
}

// ArchiveProber checks whether an already validated node serves deep history.
type ArchiveProber interface {
	ProbeArchive(ctx context.Context, node entity.ValidatedNode) (entity.ValidatedNode, error)
}

// HeightReader reads the current block height of a trusted endpoint.
type HeightReader interface {
	BlockNumber(ctx context.Context, rpcURL string) (uint64, error)
}
