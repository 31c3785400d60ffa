// Package config holds the validated settings structs that drive the
// CLI wiring: logger backend selection and key-generation parameters.
package config
