// Package tuner assembles the per-domain tuning report: it runs the timing
// and skew extractors, applies caller overrides, invokes the recommendation
// policy once per observed clock domain, and rolls up the global summary.
package tuner
