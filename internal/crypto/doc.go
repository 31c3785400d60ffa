// Package crypto holds the small display-oriented primitives used by
// the CLI, currently short public-key fingerprints.
package crypto
