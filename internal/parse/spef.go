package parse

import (
	"regexp"
	"strings"

	"stakit/internal/domain"
)

// defaultDriveKOhm is the assumed effective driver resistance for the crude
// RC estimate: kOhm * pF lands directly in ns.
const defaultDriveKOhm = 1.0

var (
	spefNameMapRe = regexp.MustCompile(`^\*(\d+)\s+(\S+)`)
	spefDNetRe    = regexp.MustCompile(`(?i)^\*D_NET\s+(\S+)\s+([0-9.eE+-]+)`)
)

// SPEFNets summarizes total capacitance for the requested nets from a SPEF
// file, resolving *NAME_MAP indices on D_NET headers. Nets that never appear
// report zero capacitance rather than being dropped, so the output always
// has one row per requested net.
func SPEFNets(text string, nets []string) []domain.NetParasitics {
	nameMap := make(map[string]string) // "*123" -> net name
	totalCap := make(map[string]float64)

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if m := spefDNetRe.FindStringSubmatch(line); m != nil {
			if c := parseOptionalFloat(m[2]); c != nil {
				totalCap[resolveNetName(m[1], nameMap)] = *c
			}
			continue
		}
		if m := spefNameMapRe.FindStringSubmatch(line); m != nil {
			nameMap["*"+m[1]] = m[2]
		}
	}

	out := make([]domain.NetParasitics, 0, len(nets))
	for _, net := range nets {
		c := totalCap[net]
		out = append(out, domain.NetParasitics{
			Net:        net,
			TotalCapPF: c,
			RCEstNS:    c * defaultDriveKOhm,
		})
	}
	return out
}

// resolveNetName maps an indexed reference like "*123" back through the name
// map; unmapped or literal references pass through unchanged.
func resolveNetName(ref string, nameMap map[string]string) string {
	if name, ok := nameMap[ref]; ok {
		return name
	}
	return ref
}
