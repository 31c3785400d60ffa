// Package logger provides the logging abstraction used across
// primecipher: a small Logger interface with console (text to stderr)
// and file (JSON with rotation) backends built on log/slog, plus a
// once-guarded factory driven by config.LoggerSettings.
package logger
