package policy

import (
	"fmt"
	"math"

	"stakit/internal/domain"
)

// adjustState is the running decision state one rule hands to the next.
type adjustState struct {
	insertionNS float64
	skewPS      float64
	notes       []string
}

// rule applies one heuristic branch to the state. Rules never see each
// other; everything they need arrives via the input and the prior state.
type rule func(in domain.RecommendationInput, st adjustState) adjustState

// adjustmentRules fire in this exact order. Setup and hold are independent
// and may both fire for one domain; their effects compound through the
// shared state rather than as deltas from the baseline.
var adjustmentRules = []rule{
	setupFailureRule,
	holdFailureRule,
	highGlobalSkewRule,
	guardrailRule,
}

// setupFailureRule biases toward lower insertion delay when setup is
// failing, harder the worse the WNS, and tightens the skew target.
func setupFailureRule(in domain.RecommendationInput, st adjustState) adjustState {
	if in.WNS == nil || *in.WNS >= -0.02 {
		return st
	}
	factor := 0.9
	if *in.WNS < -0.10 {
		factor = 0.85
	}
	st.insertionNS = math.Max(0.7, round3(st.insertionNS*factor))
	st.skewPS = math.Min(st.skewPS, 70.0)
	st.notes = append(st.notes, fmt.Sprintf(
		"%s: Setup failing (WNS=%.3f). Reduce insertion delay ~10-15%% and tighten skew target.",
		in.Domain, *in.WNS))
	return st
}

// holdFailureRule adds margin when hold issues were seen: slightly more
// insertion delay, and room for a looser skew target.
func holdFailureRule(in domain.RecommendationInput, st adjustState) adjustState {
	if !in.HoldIssues {
		return st
	}
	st.insertionNS = round3(st.insertionNS * 1.08)
	st.skewPS = math.Max(st.skewPS, 90.0)
	st.notes = append(st.notes, fmt.Sprintf(
		"%s: Hold issues detected. Increase insertion delay ~5-10%% and review min-delay fixes.",
		in.Domain))
	return st
}

// highGlobalSkewRule tightens the target when the observed global skew is
// past the practical band.
func highGlobalSkewRule(in domain.RecommendationInput, st adjustState) adjustState {
	if in.GlobalSkewPS == nil || *in.GlobalSkewPS <= 120.0 {
		return st
	}
	st.skewPS = math.Min(st.skewPS, 70.0)
	st.notes = append(st.notes, fmt.Sprintf(
		"%s: High global skew (%.0f ps). Target <=70-80 ps.",
		in.Domain, *in.GlobalSkewPS))
	return st
}

// guardrailRule clamps both targets into the safe operating band. It runs
// unconditionally and last, so no input, however sparse or noisy, can push
// a recommendation outside 0.6-2.2 ns / 60-120 ps.
func guardrailRule(_ domain.RecommendationInput, st adjustState) adjustState {
	st.insertionNS = clamp(st.insertionNS, 0.6, 2.2)
	st.skewPS = clamp(st.skewPS, 60.0, 120.0)
	return st
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
