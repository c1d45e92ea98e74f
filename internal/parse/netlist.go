package parse

import (
	"sort"
	"strings"

	"stakit/internal/domain"
)

// ModuleCounts tallies Verilog module declarations per name. Declarations
// only; instantiations are out of scope for the structural summary.
func ModuleCounts(text string) map[string]int {
	counts := make(map[string]int)
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if !strings.HasPrefix(line, "module ") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		name, _, _ := strings.Cut(fields[1], "(")
		if name == "" {
			continue
		}
		counts[name]++
	}
	return counts
}

// NetlistDiff compares two module-count summaries. Name lists are sorted so
// the delta is stable across runs.
func NetlistDiff(a, b map[string]int) domain.NetlistDelta {
	delta := domain.NetlistDelta{
		OnlyInA: []string{},
		OnlyInB: []string{},
		CountsA: a,
		CountsB: b,
	}
	for name := range a {
		if _, ok := b[name]; !ok {
			delta.OnlyInA = append(delta.OnlyInA, name)
		}
	}
	for name := range b {
		if _, ok := a[name]; !ok {
			delta.OnlyInB = append(delta.OnlyInB, name)
		}
	}
	sort.Strings(delta.OnlyInA)
	sort.Strings(delta.OnlyInB)
	return delta
}
