// Package site assembles the configuration of the Spanish Vitest
// documentation site.
//
// Build is a pure function of its Inputs: the package version, the
// contributor list and the shared metadata constants. It returns a fully
// populated *Config or an *AssemblyError naming the offending input. Load
// resolves those inputs from providers first.
//
// A built Config is treated as immutable. It may be read from any number of
// goroutines; callers that need a variant take a Clone.
package site
