package parse

import (
	"regexp"
	"strconv"
	"strings"

	"stakit/internal/domain"
)

const signedNumber = `([+-]?\d+(?:\.\d+)?)`

var (
	wnsTnsComboRe = regexp.MustCompile(`(?i)WNS:\s*` + signedNumber + `\s+TNS:\s*` + signedNumber)
	wnsRe         = regexp.MustCompile(`(?i)WNS:\s*` + signedNumber)
	tnsRe         = regexp.MustCompile(`(?i)TNS:\s*` + signedNumber)
)

// holdNeedles is deliberately conservative: these are the phrasings seen in
// Tempus and PrimeTime logs to date. Missing a vendor variant means hold
// detection under-reports, which the policy tolerates; it never errors.
var holdNeedles = []string{
	"hold violation",
	"negative hold slack",
	"slack (hold)",
	"hold slack (violated)",
}

// indicatorStrategy attempts one extraction approach. ok reports whether the
// strategy applied to the text, in which case no later strategy is consulted
// even if individual values failed to convert.
type indicatorStrategy func(text string) (domain.TimingIndicators, bool)

// indicatorStrategies are tried in priority order: the single-line combined
// form is the most trustworthy, standalone markers are the fallback.
var indicatorStrategies = []indicatorStrategy{
	combinedIndicators,
	standaloneIndicators,
}

// Timing extracts WNS/TNS and hold-violation hints from a freeform timing log.
type Timing struct{}

func (Timing) Indicators(text string) domain.TimingIndicators {
	for _, strategy := range indicatorStrategies {
		if ind, ok := strategy(text); ok {
			return ind
		}
	}
	return domain.TimingIndicators{}
}

func (Timing) HoldIssues(text string) bool {
	lower := strings.ToLower(text)
	for _, needle := range holdNeedles {
		if strings.Contains(lower, needle) {
			return true
		}
	}
	return false
}

// combinedIndicators matches a line like "WNS: -0.120  TNS: -57.000".
func combinedIndicators(text string) (domain.TimingIndicators, bool) {
	m := wnsTnsComboRe.FindStringSubmatch(text)
	if m == nil {
		return domain.TimingIndicators{}, false
	}
	return domain.TimingIndicators{
		WNS: parseOptionalFloat(m[1]),
		TNS: parseOptionalFloat(m[2]),
	}, true
}

// standaloneIndicators searches for WNS and TNS markers independently.
// Either may be absent. Always applies, so it terminates the strategy list.
func standaloneIndicators(text string) (domain.TimingIndicators, bool) {
	var ind domain.TimingIndicators
	if m := wnsRe.FindStringSubmatch(text); m != nil {
		ind.WNS = parseOptionalFloat(m[1])
	}
	if m := tnsRe.FindStringSubmatch(text); m != nil {
		ind.TNS = parseOptionalFloat(m[1])
	}
	return ind, true
}

// parseOptionalFloat converts a matched fragment, treating conversion
// failure as "value not found".
func parseOptionalFloat(s string) *float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

var _ domain.TimingLogExtractor = Timing{}
