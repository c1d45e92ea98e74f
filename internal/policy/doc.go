// Package policy holds the per-domain tuning heuristic: a fixed, ordered
// list of adjustment rules folded over a running (insertion, skew) state.
// The order is part of the contract — setup and hold adjustments compound
// sequentially, and the guardrail clamp always runs last.
package policy
