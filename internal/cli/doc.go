// Package cli defines the Cobra command tree for the spook CLI. Each file in
// this package registers one top-level command (check, simulate, doctor, etc.)
// with the root command. Commands delegate to internal packages and only
// handle flags and output formatting.
package cli
