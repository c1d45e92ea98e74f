package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stakit/internal/parse"
)

func TestModuleCounts(t *testing.T) {
	text := `// top-level
module top (clk, rst);
endmodule
module alu(a, b, out);
endmodule
module top (clk);
endmodule
modulex not_a_decl;
module
`
	counts := parse.ModuleCounts(text)

	assert.Equal(t, map[string]int{"top": 2, "alu": 1}, counts)
}

func TestNetlistDiff(t *testing.T) {
	a := map[string]int{"top": 1, "alu": 1, "fifo": 2}
	b := map[string]int{"top": 1, "uart": 1}

	delta := parse.NetlistDiff(a, b)

	assert.Equal(t, []string{"alu", "fifo"}, delta.OnlyInA)
	assert.Equal(t, []string{"uart"}, delta.OnlyInB)
	assert.Equal(t, a, delta.CountsA)
	assert.Equal(t, b, delta.CountsB)
}

func TestNetlistDiff_EmptyInputs(t *testing.T) {
	delta := parse.NetlistDiff(map[string]int{}, map[string]int{})

	assert.Empty(t, delta.OnlyInA)
	assert.Empty(t, delta.OnlyInB)
}
