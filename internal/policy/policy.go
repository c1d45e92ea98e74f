package policy

import "stakit/internal/domain"

const (
	// Baselines used when the skew report gave us nothing for a domain.
	baselineInsertionNS = 1.50
	baselineSkewPS      = 80.0
)

// implementationHints go on every recommendation; they are the generic
// follow-up actions regardless of which branches fired.
var implementationHints = []string{
	"Reduce max_transition on long spines; upsize root buffers if latency balloons.",
	"Constrain ccopt with tighter -target_skew where failing, and adjust -max_insertion_delay accordingly.",
	"Rebalance CTS levels on critical domains; avoid over-buffering near sinks.",
	"Re-run STA (setup/hold) across worst/best PVT corners after CTS tweak.",
}

// Heuristic is the stateless per-domain recommendation policy.
type Heuristic struct{}

// Recommend folds the adjustment rules over the baseline state and packages
// the result with the observed inputs. Pure: no clocks, no randomness, no
// shared state.
func (Heuristic) Recommend(in domain.RecommendationInput) domain.DomainRecommendation {
	st := adjustState{
		insertionNS: baselineInsertionNS,
		skewPS:      baselineSkewPS,
		notes:       []string{},
	}
	if in.AvgInsertionNS != nil {
		st.insertionNS = *in.AvgInsertionNS
	}
	for _, apply := range adjustmentRules {
		st = apply(in, st)
	}

	return domain.DomainRecommendation{
		Domain:                      in.Domain,
		RecommendedInsertionDelayNS: st.insertionNS,
		RecommendedSkewTargetPS:     st.skewPS,
		Observed: domain.ObservedValues{
			AvgInsertionNS: in.AvgInsertionNS,
			GlobalSkewPS:   in.GlobalSkewPS,
			WNS:            in.WNS,
			HoldIssues:     in.HoldIssues,
		},
		Notes:               st.notes,
		ImplementationHints: implementationHints,
	}
}

var _ domain.RecommendationPolicy = Heuristic{}
