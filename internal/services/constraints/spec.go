package constraints

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Spec is the YAML constraint description an engineer maintains alongside
// the design.
type Spec struct {
	Clocks     []Clock    `yaml:"clocks"`
	IODelays   IODelays   `yaml:"io_delays"`
	Exceptions Exceptions `yaml:"exceptions"`
}

// Clock declares one primary clock.
type Clock struct {
	Name     string    `yaml:"name"`
	Period   float64   `yaml:"period"`
	Waveform []float64 `yaml:"waveform"` // rise/fall edge times
	Port     string    `yaml:"port"`
}

// IODelays groups external input/output delay constraints.
type IODelays struct {
	Inputs  []PortDelay `yaml:"inputs"`
	Outputs []PortDelay `yaml:"outputs"`
}

// PortDelay constrains one port relative to all clocks.
type PortDelay struct {
	Port string  `yaml:"port"`
	Max  float64 `yaml:"max"`
	Min  float64 `yaml:"min"`
}

// Exceptions are timing exceptions (false paths, multicycle paths).
type Exceptions struct {
	FalsePaths []PathException       `yaml:"false_paths"`
	Multicycle []MulticycleException `yaml:"multicycle"`
}

// PathException names a from/to pair. Only the first element of each list
// is emitted; SDC takes one object per -from/-to here.
type PathException struct {
	From []string `yaml:"from"`
	To   []string `yaml:"to"`
}

// MulticycleException relaxes setup/hold by cycle multipliers on a path.
type MulticycleException struct {
	Setup int      `yaml:"setup"`
	Hold  int      `yaml:"hold"`
	From  []string `yaml:"from"`
	To    []string `yaml:"to"`
}

// Parse decodes a YAML constraint spec.
func Parse(b []byte) (Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(b, &spec); err != nil {
		return Spec{}, fmt.Errorf("parse constraint spec: %w", err)
	}
	return spec, nil
}
