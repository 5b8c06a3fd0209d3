package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GeovaneMT/LavaCar/internal/logger"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logger.Log
		wantErr error
	}{
		{
			name: "console only",
			cfg: logger.Log{
				LogLevel:    "info",
				LogEnv:      "test",
				AppName:     "lavacar",
				ServiceName: "erp",
				Console:     logger.Console{Enabled: true, UseConsoleWriter: true},
			},
		},
		{
			name: "missing service name",
			cfg: logger.Log{
				LogLevel: "info",
				AppName:  "lavacar",
			},
			wantErr: logger.ErrServiceNameIsEmpty,
		},
		{
			name: "missing app name",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "erp",
			},
			wantErr: logger.ErrAppNameIsEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := logger.Init(tt.cfg)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	err := logger.Init(logger.Log{
		LogLevel:    "loud",
		AppName:     "lavacar",
		ServiceName: "erp",
		Console:     logger.Console{Enabled: true},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loglevel loud is not supported")
}
