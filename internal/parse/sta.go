package parse

import (
	"strings"

	"stakit/internal/domain"
)

// STAReport extracts the WNS/TNS summary line and Startpoint/Endpoint pairs
// from a full STA report. Endpoint lines before any Startpoint are dropped;
// a Startpoint with no following Endpoint keeps an empty End.
func STAReport(text string) domain.STASummary {
	var sum domain.STASummary
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		if strings.Contains(line, "WNS:") && strings.Contains(line, "TNS:") {
			if m := wnsTnsComboRe.FindStringSubmatch(line); m != nil {
				sum.WNS = parseOptionalFloat(m[1])
				sum.TNS = parseOptionalFloat(m[2])
			}
		}
		if rest, ok := strings.CutPrefix(line, "Startpoint:"); ok {
			sum.Paths = append(sum.Paths, domain.PathEndpoints{Start: strings.TrimSpace(rest)})
			continue
		}
		if rest, ok := strings.CutPrefix(line, "Endpoint:"); ok && len(sum.Paths) > 0 {
			sum.Paths[len(sum.Paths)-1].End = strings.TrimSpace(rest)
		}
	}
	return sum
}
