package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/mstreplay/config"
	"github.com/katalvlaran/mstreplay/logging"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, logging.Level("DEBUG"))
	assert.Equal(t, zap.WarnLevel, logging.Level("warn"))
	assert.Equal(t, zap.ErrorLevel, logging.Level("error"))
	assert.Equal(t, zap.InfoLevel, logging.Level("info"))
	assert.Equal(t, zap.InfoLevel, logging.Level("verbose"))
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{config.FormatConsole, config.FormatJSON} {
		cfg := config.Default()
		cfg.LogFormat = format
		cfg.LogLevel = "warn"

		logger, err := logging.NewLogger(cfg)
		require.NoError(t, err, format)
		assert.False(t, logger.Core().Enabled(zap.InfoLevel), format)
		assert.True(t, logger.Core().Enabled(zap.WarnLevel), format)
		_ = logger.Sync()
	}
}

func TestNewLogger_File(t *testing.T) {
	cfg := config.Default()
	cfg.LogFormat = config.FormatJSON
	cfg.LogFile = filepath.Join(t.TempDir(), "mstreplay.log")

	logger, err := logging.NewLogger(cfg)
	require.NoError(t, err)
	logger.Warn("dataset switch failed", zap.String("dataset", "broken"))
	_ = logger.Sync()

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"dataset switch failed"`)
	assert.Contains(t, string(data), `"dataset":"broken"`)
}

func TestNewTUILogger(t *testing.T) {
	cfg := config.Default()
	logger, err := logging.NewTUILogger(cfg)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.ErrorLevel), "silent without a log file")

	cfg.LogFile = filepath.Join(t.TempDir(), "tui.log")
	logger, err = logging.NewTUILogger(cfg)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))
	logger.Warn("written to file")
	_ = logger.Sync()

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}
