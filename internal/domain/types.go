package domain

// TimingIndicators carries the global slack metrics pulled from a timing log.
// A nil field means the value was not found; it serializes as JSON null.
type TimingIndicators struct {
	WNS *float64 `json:"wns"`
	TNS *float64 `json:"tns"`
}

// ClockDomainObservation is what the skew report said about one clock domain.
type ClockDomainObservation struct {
	Name           string
	AvgInsertionNS *float64
	GlobalSkewPS   *float64
}

// ObservedValues snapshots the inputs a recommendation was computed from.
type ObservedValues struct {
	AvgInsertionNS *float64 `json:"avg_insertion_ns"`
	GlobalSkewPS   *float64 `json:"global_skew_ps"`
	WNS            *float64 `json:"wns"`
	HoldIssues     bool     `json:"hold_issues"`
}

// DomainRecommendation is the tuning suggestion for a single clock domain.
type DomainRecommendation struct {
	Domain                      string         `json:"domain"`
	RecommendedInsertionDelayNS float64        `json:"recommended_insertion_delay_ns"`
	RecommendedSkewTargetPS     float64        `json:"recommended_skew_target_ps"`
	Observed                    ObservedValues `json:"observed"`
	Notes                       []string       `json:"notes"`
	ImplementationHints         []string       `json:"implementation_hints"`
}

// TuningSummary is the report-level rollup of timing health.
type TuningSummary struct {
	WNS        *float64 `json:"wns"`
	TNS        *float64 `json:"tns"`
	HoldIssues bool     `json:"hold_issues"`
	Notes      []string `json:"notes"`
}

// TuningReport is the full output of one cts-tune run.
type TuningReport struct {
	Summary         TuningSummary          `json:"summary"`
	Recommendations []DomainRecommendation `json:"recommendations"`
}

// RecommendationInput is the complete input set for one policy decision.
type RecommendationInput struct {
	Domain         string
	WNS            *float64
	HoldIssues     bool
	AvgInsertionNS *float64
	GlobalSkewPS   *float64
}

// PathEndpoints is one critical path's start and end points from an STA report.
type PathEndpoints struct {
	Start string
	End   string
}

// STASummary is the flat extraction result for one STA report.
type STASummary struct {
	WNS   *float64
	TNS   *float64
	Paths []PathEndpoints
}

// NetlistDelta is the module-level structural diff of two netlists.
type NetlistDelta struct {
	OnlyInA []string       `json:"only_in_a"`
	OnlyInB []string       `json:"only_in_b"`
	CountsA map[string]int `json:"counts_a"`
	CountsB map[string]int `json:"counts_b"`
}

// LibFindings summarizes a .lib sanity check.
type LibFindings struct {
	MissingCells     []string `json:"missing_cells"`
	MaxTransitionNS  *float64 `json:"max_transition_ns"`
	MaxCapacitancePF *float64 `json:"max_capacitance_pf"`
}

// NetParasitics is the per-net summary extracted from a SPEF file.
type NetParasitics struct {
	Net        string
	TotalCapPF float64
	RCEstNS    float64
}
