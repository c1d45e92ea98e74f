package parse

import (
	"regexp"
	"strings"

	"stakit/internal/domain"
)

var (
	// Header lines select the current domain. Anchored: a header is a line
	// shape, not an embedded mention.
	domainHeaderRe = regexp.MustCompile(`(?i)^(?:Clock\s*Domain|Domain)\s*:\s*(\S+)`)

	insertionFieldRe = regexp.MustCompile(`(?i)(?:Average\s+insertion\s+delay|Insertion\s+Delay)\s*:\s*([0-9.]+)\s*ns`)
	skewFieldRe      = regexp.MustCompile(`(?i)(?:Global\s+skew|Skew)\s*:\s*([0-9.]+)\s*ps`)
)

// Skew extracts per-domain observations from a ccopt.skew.rpt-like file.
//
// Expected shape (varies by tool version):
//
//	Clock Domain: core_clk
//	Average insertion delay: 1.82 ns
//	Global skew: 125 ps
type Skew struct{}

func (Skew) Domains(text string) []domain.ClockDomainObservation {
	st := newSkewScan()
	for _, line := range strings.Split(text, "\n") {
		st.consume(strings.TrimSpace(line))
	}
	return st.observations()
}

// skewScan is the line-fold state: a current-domain cursor plus the
// accumulated per-domain entries in first-seen order.
type skewScan struct {
	cursor  string
	order   []string
	domains map[string]*domain.ClockDomainObservation
}

func newSkewScan() *skewScan {
	return &skewScan{domains: make(map[string]*domain.ClockDomainObservation)}
}

// consume folds a single trimmed line into the state. A header re-selects a
// domain without clearing fields parsed under an earlier occurrence; field
// lines overwrite (last write wins); anything before the first header, or
// matching neither pattern, is ignored.
func (s *skewScan) consume(line string) {
	if m := domainHeaderRe.FindStringSubmatch(line); m != nil {
		s.cursor = m[1]
		if _, seen := s.domains[s.cursor]; !seen {
			s.domains[s.cursor] = &domain.ClockDomainObservation{Name: s.cursor}
			s.order = append(s.order, s.cursor)
		}
		return
	}
	if s.cursor == "" {
		return
	}
	entry := s.domains[s.cursor]
	if m := insertionFieldRe.FindStringSubmatch(line); m != nil {
		if v := parseOptionalFloat(m[1]); v != nil {
			entry.AvgInsertionNS = v
		}
	}
	if m := skewFieldRe.FindStringSubmatch(line); m != nil {
		if v := parseOptionalFloat(m[1]); v != nil {
			entry.GlobalSkewPS = v
		}
	}
}

func (s *skewScan) observations() []domain.ClockDomainObservation {
	out := make([]domain.ClockDomainObservation, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, *s.domains[name])
	}
	return out
}

var _ domain.SkewReportExtractor = Skew{}
