package logger

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"primecipher/internal/pkg/config"
)

func resetLoggerSingleton() {
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name     string
		settings func(t *testing.T) *config.LoggerSettings
		wantErr  bool
	}{
		{
			name: "console logger",
			settings: func(t *testing.T) *config.LoggerSettings {
				return &config.LoggerSettings{
					LogLevel: config.LogLevelInfo,
					LogType:  config.LogTypeConsole,
				}
			},
			wantErr: false,
		},
		{
			name: "file logger with rotation",
			settings: func(t *testing.T) *config.LoggerSettings {
				return &config.LoggerSettings{
					LogLevel:   config.LogLevelDebug,
					LogType:    config.LogTypeFile,
					FilePath:   filepath.Join(t.TempDir(), "primecipher.log"),
					MaxSize:    1,
					MaxBackups: 1,
					MaxAge:     1,
				}
			},
			wantErr: false,
		},
		{
			name: "invalid settings",
			settings: func(t *testing.T) *config.LoggerSettings {
				return &config.LoggerSettings{
					LogLevel: "verbose",
					LogType:  config.LogTypeConsole,
				}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetLoggerSingleton()

			err := InitLogger(tt.settings(t))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			log, err := GetLogger()
			require.NoError(t, err)
			assert.NotNil(t, log)

			log.Info("factory smoke test")
		})
	}
}

func TestGetLogger_BeforeInit(t *testing.T) {
	resetLoggerSingleton()

	_, err := GetLogger()
	assert.Error(t, err)
}
