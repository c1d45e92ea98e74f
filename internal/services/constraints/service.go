package constraints

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Service renders SDC text from a parsed Spec.
type Service struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Service { return &Service{log: log} }

// Render emits SDC lines in a fixed order: clocks, input delays, output
// delays, false paths, multicycle paths. Entries missing required fields
// are skipped rather than emitted half-formed.
func (s *Service) Render(spec Spec) string {
	var lines []string

	for _, clk := range spec.Clocks {
		if clk.Name == "" || clk.Port == "" || len(clk.Waveform) < 2 {
			s.log.Warn("Skipping incomplete clock entry", zap.String("name", clk.Name))
			continue
		}
		lines = append(lines, fmt.Sprintf(
			"create_clock -name %s -period %g -waveform {%g %g} [get_ports %s]",
			clk.Name, clk.Period, clk.Waveform[0], clk.Waveform[1], clk.Port))
	}

	for _, in := range spec.IODelays.Inputs {
		lines = append(lines,
			fmt.Sprintf("set_input_delay -max %g [get_ports %s] -clock [get_clocks *]", in.Max, in.Port),
			fmt.Sprintf("set_input_delay -min %g [get_ports %s] -clock [get_clocks *]", in.Min, in.Port))
	}
	for _, out := range spec.IODelays.Outputs {
		lines = append(lines,
			fmt.Sprintf("set_output_delay -max %g [get_ports %s] -clock [get_clocks *]", out.Max, out.Port))
	}

	for _, fp := range spec.Exceptions.FalsePaths {
		if len(fp.From) == 0 || len(fp.To) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("set_false_path -from %s -to %s", fp.From[0], fp.To[0]))
	}
	for _, mc := range spec.Exceptions.Multicycle {
		if len(mc.From) == 0 || len(mc.To) == 0 {
			continue
		}
		lines = append(lines,
			fmt.Sprintf("set_multicycle_path %d -setup -from %s -to %s", mc.Setup, mc.From[0], mc.To[0]),
			fmt.Sprintf("set_multicycle_path %d -hold  -from %s -to %s", mc.Hold, mc.From[0], mc.To[0]))
	}

	return strings.Join(lines, "\n") + "\n"
}
