package app

import (
	"time"

	"primecipher/internal/domain"
	"primecipher/internal/pkg/logger"
	"primecipher/internal/randsource"
	ciphersvc "primecipher/internal/services/cipher"
	keygensvc "primecipher/internal/services/keygen"
	sessionsvc "primecipher/internal/services/session"
)

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*App, error) {
	if err := cfg.Keygen.Validate(); err != nil {
		return nil, err
	}

	if err := logger.InitLogger(&cfg.Logger); err != nil {
		return nil, err
	}
	log, err := logger.GetLogger()
	if err != nil {
		return nil, err
	}

	// The wall-clock fallback lives here, outside the core: the
	// generator itself only ever sees the injected source.
	seed := cfg.Keygen.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := randsource.New(seed)

	keys := keygensvc.New(rng, log)
	cipher := ciphersvc.New()
	sessions := sessionsvc.New(keys, cipher, log)

	low, high := cfg.Keygen.Range()
	return New(keys, cipher, sessions, domain.PrimeRange{Low: low, High: high}, log), nil
}
