package chainlist

import (
	"strings"

	dto "node-finder/internal/adapter/storage/chainlist/dto"
	"node-finder/internal/domain/entity"

	"go.uber.org/zap"
)

// pickReferenceRPC returns the first public http(s) RPC. Templated URLs that need an
// API key, such as "https://mainnet.infura.io/v3/${INFURA_API_KEY}", are skipped.
func pickReferenceRPC(rpcs []string) string {
	for _, raw := range rpcs {
		if strings.Contains(raw, "${") {
			continue
		}
		if _, err := entity.NewReferenceURL(raw); err == nil {
			return raw
		}
	}
	return ""
}

// toDomainChains converts raw Chainlist entries to chain descriptors. Genesis hashes are
// not published by Chainlist, so every mapped chain skips genesis verification.
func toDomainChains(rawChains []dto.ChainRaw, logger *zap.Logger) []entity.Chain {
	if rawChains == nil {
		return nil
	}
	domainChains := make([]entity.Chain, 0, len(rawChains))
	for _, raw := range rawChains {
		if raw.ChainID <= 0 {
			if logger != nil {
				logger.Warn("Skipping chain with invalid id during mapping",
					zap.String("name", raw.Name), zap.Int64("chainId", raw.ChainID))
			}
			continue
		}
		domainChains = append(domainChains, entity.Chain{
			ID:         uint64(raw.ChainID),
			Name:       raw.Name,
			Symbol:     raw.Currency.Symbol,
			DefaultRPC: pickReferenceRPC(raw.RPC),
			Custom:     true,
		})
	}
	return domainChains
}
