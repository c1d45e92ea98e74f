package domain

// TimingLogExtractor pulls global timing health out of a freeform log.
// Both methods are best-effort: a value that cannot be located stays nil
// and hold detection may under-report, but neither ever fails.
type TimingLogExtractor interface {
	Indicators(text string) TimingIndicators
	HoldIssues(text string) bool
}

// SkewReportExtractor parses per-domain insertion delay and global skew
// from a clock-skew report. Domains come back in first-seen order; an
// empty or headerless report yields an empty slice.
type SkewReportExtractor interface {
	Domains(text string) []ClockDomainObservation
}

// RecommendationPolicy turns one domain's observations into a tuning
// suggestion. Implementations must be pure: same input, same output.
type RecommendationPolicy interface {
	Recommend(in RecommendationInput) DomainRecommendation
}
