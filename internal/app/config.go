package app

import "primecipher/internal/pkg/config"

// Config holds runtime wiring options for building the app.
type Config struct {
	Keygen config.KeygenSettings // prime range and PRNG seed
	Logger config.LoggerSettings // backend, level, rotation
}
