// Package parse extracts structured values from the loosely specified text
// reports emitted by STA and CTS tools (Tempus, PrimeTime, ccopt).
//
// Vendor formats drift between versions and environments, so every extractor
// here follows the same propagation policy: a pattern that does not match, or
// a matched fragment that does not convert to a number, leaves the field
// absent and moves on. Nothing in this package returns an error for malformed
// input; only the filesystem boundary (internal/store) fails loudly.
package parse
