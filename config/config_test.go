package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstreplay/config"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "simple", cfg.Dataset)
	assert.Equal(t, 1.0, cfg.Speed)
	assert.Equal(t, 2*time.Second, cfg.Interval)
	assert.Equal(t, config.FormatConsole, cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Layers(t *testing.T) {
	cfg, err := config.Load("testdata/mstreplay.yaml", "testdata/test.env", env(map[string]string{
		"MSTREPLAY_SPEED":   "3",
		"MSTREPLAY_DATASET": "  ",
	}))
	require.NoError(t, err)

	assert.Equal(t, "complex", cfg.Dataset, "blank env value ignored")
	assert.Equal(t, "B", cfg.Start, "from .env")
	assert.Equal(t, 3.0, cfg.Speed, "process env beats .env and file")
	assert.Equal(t, 500*time.Millisecond, cfg.Interval, "from file")
	assert.Equal(t, "testdata/catalog.yaml", cfg.Catalog)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "testdata/mstreplay.log", cfg.LogFile)
	assert.Equal(t, config.FormatJSON, cfg.LogFormat)
	assert.False(t, cfg.Autoplay)
}

func TestLoad_NoFiles(t *testing.T) {
	cfg, err := config.Load("", "", env(map[string]string{
		"MSTREPLAY_AUTOPLAY":     "yes",
		"MSTREPLAY_INTERVAL":     "250ms",
		"MSTREPLAY_METRICS_FILE": "out.prom",
		"MSTREPLAY_CATALOG":      "extra.json",
		"MSTREPLAY_LOG_FILE":     "run.log",
	}))
	require.NoError(t, err)
	assert.True(t, cfg.Autoplay)
	assert.Equal(t, 250*time.Millisecond, cfg.Interval)
	assert.Equal(t, "out.prom", cfg.MetricsFile)
	assert.Equal(t, "extra.json", cfg.Catalog)
	assert.Equal(t, "run.log", cfg.LogFile)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		envFile string
		vars    map[string]string
	}{
		{"bad speed", "", "", map[string]string{"MSTREPLAY_SPEED": "fast"}},
		{"speed out of range", "", "", map[string]string{"MSTREPLAY_SPEED": "5"}},
		{"bad interval env", "", "", map[string]string{"MSTREPLAY_INTERVAL": "-"}},
		{"zero interval", "", "", map[string]string{"MSTREPLAY_INTERVAL": "0s"}},
		{"bad autoplay", "", "", map[string]string{"MSTREPLAY_AUTOPLAY": "maybe"}},
		{"bad format", "", "", map[string]string{"MSTREPLAY_LOG_FORMAT": "xml"}},
		{"bad level", "", "", map[string]string{"MSTREPLAY_LOG_LEVEL": "trace"}},
		{"bad interval file", "testdata/bad_interval.yaml", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(tt.path, tt.envFile, env(tt.vars))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	_, err := config.Load("testdata/missing.yaml", "", env(nil))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load("", "testdata/missing.env", env(nil))
	assert.ErrorIs(t, err, os.ErrNotExist)

	broken := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("replay: [unclosed"), 0o644))
	_, err = config.Load(broken, "", env(nil))
	assert.Error(t, err)
}

func TestValidate_CaseInsensitive(t *testing.T) {
	cfg := config.Default()
	cfg.LogFormat = "JSON"
	cfg.LogLevel = "WARN"
	assert.NoError(t, cfg.Validate())

	cfg.Dataset = ""
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
}
