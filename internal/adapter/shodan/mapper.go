package shodan

import (
	"net"

	dto "node-finder/internal/adapter/shodan/dto"
	"node-finder/internal/domain/entity"

	"go.uber.org/zap"
)

// toCandidates converts raw matches to candidates, skipping entries without a usable address.
func toCandidates(matches []dto.MatchRaw, logger *zap.Logger) []entity.Candidate {
	candidates := make([]entity.Candidate, 0, len(matches))
	for _, m := range matches {
		if net.ParseIP(m.IPStr) == nil || m.Port <= 0 || m.Port > 65535 {
			logger.Debug("Skipping match without usable address",
				zap.String("ip", m.IPStr), zap.Int("port", m.Port))
			continue
		}
		c := entity.Candidate{IP: m.IPStr, Port: m.Port}
		if m.Location != nil {
			c.CountryCode = m.Location.CountryCode
		}
		candidates = append(candidates, c)
	}
	return candidates
}
