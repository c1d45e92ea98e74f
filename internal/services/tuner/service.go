package tuner

import (
	"go.uber.org/zap"

	"stakit/internal/domain"
)

// Overrides are caller-supplied values that take precedence over anything
// extracted from the log. Nil means "not provided"; an explicit false for
// HoldIssues suppresses log-based detection.
type Overrides struct {
	WNS        *float64
	HoldIssues *bool
}

// Service orchestrates extraction and per-domain recommendation.
type Service struct {
	timing domain.TimingLogExtractor
	skew   domain.SkewReportExtractor
	policy domain.RecommendationPolicy
	log    *zap.Logger
}

func New(timing domain.TimingLogExtractor, skew domain.SkewReportExtractor, policy domain.RecommendationPolicy, log *zap.Logger) *Service {
	return &Service{timing: timing, skew: skew, policy: policy, log: log}
}

// Propose builds a TuningReport from one timing log and at most one skew
// report. Everything is in-memory text; the only state is the report under
// construction, discarded after the call.
func (s *Service) Propose(logText, skewText string, ov Overrides) domain.TuningReport {
	indicators := s.timing.Indicators(logText)

	wns := indicators.WNS
	if ov.WNS != nil {
		wns = ov.WNS
	}
	holdIssues := s.timing.HoldIssues(logText)
	if ov.HoldIssues != nil {
		holdIssues = *ov.HoldIssues
	}

	observations := s.skew.Domains(skewText)
	s.log.Debug("Parsed inputs",
		zap.Bool("wns_found", indicators.WNS != nil),
		zap.Bool("hold_issues", holdIssues),
		zap.Int("domains", len(observations)))

	// No domains parsed: fall back to a single implicit domain so the
	// report always carries at least one recommendation.
	skewParsedNothing := len(observations) == 0
	if skewParsedNothing {
		observations = []domain.ClockDomainObservation{{Name: "default"}}
	}

	recommendations := make([]domain.DomainRecommendation, 0, len(observations))
	for _, obs := range observations {
		recommendations = append(recommendations, s.policy.Recommend(domain.RecommendationInput{
			Domain:         obs.Name,
			WNS:            wns,
			HoldIssues:     holdIssues,
			AvgInsertionNS: obs.AvgInsertionNS,
			GlobalSkewPS:   obs.GlobalSkewPS,
		}))
	}

	summaryNotes := []string{}
	if wns == nil {
		summaryNotes = append(summaryNotes, "WNS not found; consider providing --wns override.")
	}
	if holdIssues {
		summaryNotes = append(summaryNotes, "Hold issues detected; verify min-delay fixes after CTS retune.")
	}
	if skewText != "" && skewParsedNothing {
		summaryNotes = append(summaryNotes, "No domains parsed from skew report; check report format.")
	}

	return domain.TuningReport{
		Summary: domain.TuningSummary{
			WNS:        wns,
			TNS:        indicators.TNS,
			HoldIssues: holdIssues,
			Notes:      summaryNotes,
		},
		Recommendations: recommendations,
	}
}
