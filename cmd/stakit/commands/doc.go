// Package commands defines the stakit CLI and wires dependencies for subcommands.
//
// Commands
//
//   - cts-tune      Recommend per-domain insertion delay and skew targets
//   - sta-extract   Pull WNS/TNS and critical paths from an STA report into CSV
//   - sdc-gen       Generate an SDC file from a YAML constraint spec
//   - lib-check     Sanity-check a .lib corner file for cells and limits
//   - netlist-diff  Structural module-count diff of two netlists
//   - spef-probe    Summarize net parasitics from a SPEF file
//   - eco-suggest   Annotate STA path CSV rows with ECO suggestions
//
// # Implementation
//
// The root command builds the logger and the service graph before any
// subcommand runs, so handlers share one app context. All handlers are
// batch-shaped: read input files, transform, write one output atomically.
package commands
