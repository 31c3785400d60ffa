// Package domain defines the core types and interfaces shared across
// primecipher: key pairs, prime ranges, round-trip transcripts, the
// injectable random source, and the errors key generation can report.
package domain
