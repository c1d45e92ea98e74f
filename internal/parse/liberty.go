package parse

import (
	"regexp"
	"strings"

	"stakit/internal/domain"
)

var (
	maxTransitionRe  = regexp.MustCompile(`(?i)\bmax_transition\s*:\s*([0-9.]+)`)
	maxCapacitanceRe = regexp.MustCompile(`(?i)\bmax_capacitance\s*:\s*([0-9.]+)`)
)

// LibCheck scans a .lib corner file for the requested cell names and the
// largest max_transition / max_capacitance attribute values. Cell presence
// is a substring check, matching how quickly engineers grep a corner file;
// false positives on prefixed names are acceptable for a sanity pass.
func LibCheck(text string, cells []string) domain.LibFindings {
	findings := domain.LibFindings{MissingCells: []string{}}
	for _, cell := range cells {
		if !strings.Contains(text, cell) {
			findings.MissingCells = append(findings.MissingCells, cell)
		}
	}
	findings.MaxTransitionNS = largestMatch(maxTransitionRe, text)
	findings.MaxCapacitancePF = largestMatch(maxCapacitanceRe, text)
	return findings
}

// largestMatch returns the biggest numeric capture across all occurrences,
// or nil when the attribute never appears.
func largestMatch(re *regexp.Regexp, text string) *float64 {
	var max *float64
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		v := parseOptionalFloat(m[1])
		if v == nil {
			continue
		}
		if max == nil || *v > *max {
			max = v
		}
	}
	return max
}
