// Package randsource provides the RandomSource implementations used
// for prime sampling: a seeded PRNG for normal use and a fixed replay
// sequence for deterministic tests and demos.
package randsource
