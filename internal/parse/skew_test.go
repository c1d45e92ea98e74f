package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stakit/internal/parse"
)

func TestSkewDomains_TwoDomains(t *testing.T) {
	text := `CCOpt skew summary
Clock Domain: core_clk
  Average insertion delay: 1.82 ns
  Global skew: 125 ps
Domain: io_clk
  Insertion Delay: 0.95 ns
  Skew: 60 ps
`
	obs := parse.Skew{}.Domains(text)

	require.Len(t, obs, 2)
	assert.Equal(t, "core_clk", obs[0].Name)
	require.NotNil(t, obs[0].AvgInsertionNS)
	require.NotNil(t, obs[0].GlobalSkewPS)
	assert.Equal(t, 1.82, *obs[0].AvgInsertionNS)
	assert.Equal(t, 125.0, *obs[0].GlobalSkewPS)

	assert.Equal(t, "io_clk", obs[1].Name)
	require.NotNil(t, obs[1].AvgInsertionNS)
	require.NotNil(t, obs[1].GlobalSkewPS)
	assert.Equal(t, 0.95, *obs[1].AvgInsertionNS)
	assert.Equal(t, 60.0, *obs[1].GlobalSkewPS)
}

func TestSkewDomains_LastWriteWins(t *testing.T) {
	text := `Clock Domain: core_clk
Global skew: 100 ps
Global skew: 110 ps
`
	obs := parse.Skew{}.Domains(text)

	require.Len(t, obs, 1)
	require.NotNil(t, obs[0].GlobalSkewPS)
	assert.Equal(t, 110.0, *obs[0].GlobalSkewPS)
}

func TestSkewDomains_ReselectKeepsFieldsAndOrder(t *testing.T) {
	text := `Clock Domain: core_clk
Insertion delay: 1.5 ns
Clock Domain: io_clk
Skew: 80 ps
Clock Domain: core_clk
Skew: 95 ps
`
	obs := parse.Skew{}.Domains(text)

	require.Len(t, obs, 2)
	assert.Equal(t, "core_clk", obs[0].Name)
	assert.Equal(t, "io_clk", obs[1].Name)

	// Re-selecting core_clk must not have cleared the insertion delay
	// parsed under the first header.
	require.NotNil(t, obs[0].AvgInsertionNS)
	assert.Equal(t, 1.5, *obs[0].AvgInsertionNS)
	require.NotNil(t, obs[0].GlobalSkewPS)
	assert.Equal(t, 95.0, *obs[0].GlobalSkewPS)
}

func TestSkewDomains_LinesBeforeHeaderIgnored(t *testing.T) {
	text := `Global skew: 200 ps
Insertion delay: 9.9 ns
Clock Domain: core_clk
`
	obs := parse.Skew{}.Domains(text)

	require.Len(t, obs, 1)
	assert.Nil(t, obs[0].AvgInsertionNS)
	assert.Nil(t, obs[0].GlobalSkewPS)
}

func TestSkewDomains_DomainWithoutNumericLines(t *testing.T) {
	obs := parse.Skew{}.Domains("Domain: pll_clk\nsome unrelated text\n")

	require.Len(t, obs, 1)
	assert.Equal(t, "pll_clk", obs[0].Name)
	assert.Nil(t, obs[0].AvgInsertionNS)
	assert.Nil(t, obs[0].GlobalSkewPS)
}

func TestSkewDomains_EmptyText(t *testing.T) {
	assert.Empty(t, parse.Skew{}.Domains(""))
	assert.Empty(t, parse.Skew{}.Domains("no headers anywhere\nSkew: 10 ps\n"))
}

func TestSkewDomains_BadNumberLeavesFieldAbsent(t *testing.T) {
	text := `Clock Domain: core_clk
Insertion delay: 1.2.3 ns
Global skew: 90 ps
`
	obs := parse.Skew{}.Domains(text)

	require.Len(t, obs, 1)
	assert.Nil(t, obs[0].AvgInsertionNS)
	require.NotNil(t, obs[0].GlobalSkewPS)
	assert.Equal(t, 90.0, *obs[0].GlobalSkewPS)
}
