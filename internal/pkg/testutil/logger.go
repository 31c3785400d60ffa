// Package testutil provides shared helpers for package tests.
package testutil

import (
	"testing"

	"primecipher/internal/pkg/config"
	"primecipher/internal/pkg/logger"
)

// NewTestLogger returns a console logger suitable for tests. It
// bypasses the package singleton so tests stay independent of init
// order.
func NewTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	return logger.NewConsoleLogger(config.LogLevelError)
}
