package app

import (
	"primecipher/internal/domain"
	"primecipher/internal/pkg/logger"
)

// App bundles the services commands run against.
type App struct {
	Keys     domain.KeyGenerator
	Cipher   domain.Cipher
	Sessions domain.SessionService
	Range    domain.PrimeRange
	Log      logger.Logger
}

func New(keys domain.KeyGenerator, cipher domain.Cipher, sessions domain.SessionService, r domain.PrimeRange, log logger.Logger) *App {
	return &App{
		Keys:     keys,
		Cipher:   cipher,
		Sessions: sessions,
		Range:    r,
		Log:      log,
	}
}
