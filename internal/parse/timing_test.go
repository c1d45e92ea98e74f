package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stakit/internal/parse"
)

func TestTimingIndicators_CombinedLine(t *testing.T) {
	text := "Path Group: reg2reg\nWNS: -0.120  TNS: -57.000\nDone."

	ind := parse.Timing{}.Indicators(text)

	require.NotNil(t, ind.WNS)
	require.NotNil(t, ind.TNS)
	assert.Equal(t, -0.120, *ind.WNS)
	assert.Equal(t, -57.000, *ind.TNS)
}

func TestTimingIndicators_CombinedIsCaseInsensitive(t *testing.T) {
	ind := parse.Timing{}.Indicators("wns: -0.05 tns: -1.5")

	require.NotNil(t, ind.WNS)
	require.NotNil(t, ind.TNS)
	assert.Equal(t, -0.05, *ind.WNS)
	assert.Equal(t, -1.5, *ind.TNS)
}

func TestTimingIndicators_StandaloneFallback(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantWNS *float64
		wantTNS *float64
	}{
		{"wns only", "summary\nWNS: -0.030\n", fptr(-0.030), nil},
		{"tns only", "TNS: -12.5 across all groups", nil, fptr(-12.5)},
		{"separate lines", "WNS: 0.010\nblah\nTNS: 0.000", fptr(0.010), fptr(0.000)},
		{"neither", "clean report, all paths met", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ind := parse.Timing{}.Indicators(tt.text)
			assert.Equal(t, tt.wantWNS, ind.WNS)
			assert.Equal(t, tt.wantTNS, ind.TNS)
		})
	}
}

func TestTimingIndicators_CombinedWinsOverStandalone(t *testing.T) {
	// A standalone marker earlier in the log must not shadow the combined line.
	text := "WNS: -9.000 (stale)\nFinal: WNS: -0.100 TNS: -2.000"

	ind := parse.Timing{}.Indicators(text)

	require.NotNil(t, ind.WNS)
	assert.Equal(t, -0.100, *ind.WNS)
}

func TestHoldIssues(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"mixed case phrase", "ERROR: Hold Violation on path 12", true},
		{"negative hold slack", "found negative hold slack at endpoint", true},
		{"slack hold", "Slack (HOLD) -0.012", true},
		{"violated marker", "Hold Slack (VIOLATED)", true},
		{"clean log", "all setup and min-delay checks met", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parse.Timing{}.HoldIssues(tt.text))
		})
	}
}

func fptr(v float64) *float64 { return &v }
