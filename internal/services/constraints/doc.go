// Package constraints renders an SDC constraint file from a declarative
// YAML spec: clocks, IO delays, and timing exceptions.
package constraints
