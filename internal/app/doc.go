// Package app wires the services and shared logger the CLI commands use.
package app
