// Package store is the filesystem boundary: tolerant report readers and
// atomic output writers. This is the only place a run is allowed to fail.
package store
