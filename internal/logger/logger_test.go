package logger

import (
	"testing"

	"github.com/billcraft/billcraft/internal/config"
	"github.com/billcraft/billcraft/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLoggerHonorsConfiguredLevel(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Logging.Level = types.LogLevelError

	l, err := NewLogger(cfg)
	require.NoError(t, err)

	core := l.Desugar().Core()
	assert.False(t, core.Enabled(zapcore.InfoLevel))
	assert.False(t, core.Enabled(zapcore.WarnLevel))
	assert.True(t, core.Enabled(zapcore.ErrorLevel))
}

func TestGetZapLogLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, getZapLogLevel(types.LogLevelDebug))
	assert.Equal(t, zapcore.InfoLevel, getZapLogLevel(types.LogLevelInfo))
	assert.Equal(t, zapcore.WarnLevel, getZapLogLevel(types.LogLevelWarn))
	assert.Equal(t, zapcore.ErrorLevel, getZapLogLevel(types.LogLevelError))
	// Unknown values fall back to info rather than silencing everything.
	assert.Equal(t, zapcore.InfoLevel, getZapLogLevel(types.LogLevel("verbose")))
}
