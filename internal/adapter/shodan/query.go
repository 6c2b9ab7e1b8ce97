package shodan

import (
	"strconv"
	"strings"
)

// BuildQuery builds the banner fingerprint for a chain, e.g.
// port:8545,8546 ("Chain ID: 0x38" OR "Chain ID: 56") country:DE
func BuildQuery(chainID uint64, ports []int, countryCode string) string {
	var b strings.Builder
	if len(ports) > 0 {
		b.WriteString("port:")
		for i, p := range ports {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(p))
		}
		b.WriteByte(' ')
	}
	b.WriteString(`("Chain ID: 0x`)
	b.WriteString(strconv.FormatUint(chainID, 16))
	b.WriteString(`" OR "Chain ID: `)
	b.WriteString(strconv.FormatUint(chainID, 10))
	b.WriteString(`")`)
	if cc := strings.TrimSpace(countryCode); cc != "" {
		b.WriteString(" country:")
		b.WriteString(strings.ToUpper(cc))
	}
	return b.String()
}
