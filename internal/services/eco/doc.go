// Package eco annotates STA critical-path CSV rows with first-pass ECO
// suggestions.
package eco
