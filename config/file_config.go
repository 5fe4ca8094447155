package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FileConfig is the structured YAML configuration. Pointer fields let a file
// override only the keys it sets.
type FileConfig struct {
	Replay  *ReplayFileConfig  `yaml:"replay"`
	Catalog *string            `yaml:"catalog"`
	Logging *LoggingFileConfig `yaml:"logging"`
	Metrics *MetricsFileConfig `yaml:"metrics"`
}

// ReplayFileConfig is the replay section: dataset selection and autoplay.
type ReplayFileConfig struct {
	Dataset  *string  `yaml:"dataset"`
	Start    *string  `yaml:"start"`
	Speed    *float64 `yaml:"speed"`
	Interval *string  `yaml:"interval"`
	Autoplay *bool    `yaml:"autoplay"`
}

// LoggingFileConfig is the logging section.
type LoggingFileConfig struct {
	Format *string `yaml:"format"`
	Level  *string `yaml:"level"`
	File   *string `yaml:"file"`
}

// MetricsFileConfig names the file the metrics are written to on exit.
type MetricsFileConfig struct {
	File *string `yaml:"file"`
}

func loadFileConfig(path string) (*FileConfig, error) {
	expanded := expandPath(path)
	if expanded == "" {
		return nil, nil
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, errors.Wrap(err, "config: read")
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "config: parse %s", expanded)
	}
	return &cfg, nil
}

func applyFileConfig(cfg *Config, fileCfg *FileConfig) error {
	if cfg == nil || fileCfg == nil {
		return nil
	}
	if fileCfg.Replay != nil {
		r := fileCfg.Replay
		if r.Dataset != nil {
			cfg.Dataset = strings.TrimSpace(*r.Dataset)
		}
		if r.Start != nil {
			cfg.Start = strings.TrimSpace(*r.Start)
		}
		if r.Speed != nil {
			cfg.Speed = *r.Speed
		}
		if r.Interval != nil {
			d, err := time.ParseDuration(strings.TrimSpace(*r.Interval))
			if err != nil {
				return errors.Wrapf(ErrInvalidConfig, "replay.interval %q", *r.Interval)
			}
			cfg.Interval = d
		}
		if r.Autoplay != nil {
			cfg.Autoplay = *r.Autoplay
		}
	}
	if fileCfg.Catalog != nil {
		cfg.Catalog = expandPath(*fileCfg.Catalog)
	}
	if fileCfg.Logging != nil {
		if fileCfg.Logging.Format != nil {
			cfg.LogFormat = strings.TrimSpace(*fileCfg.Logging.Format)
		}
		if fileCfg.Logging.Level != nil {
			cfg.LogLevel = strings.TrimSpace(*fileCfg.Logging.Level)
		}
		if fileCfg.Logging.File != nil {
			cfg.LogFile = expandPath(*fileCfg.Logging.File)
		}
	}
	if fileCfg.Metrics != nil && fileCfg.Metrics.File != nil {
		cfg.MetricsFile = expandPath(*fileCfg.Metrics.File)
	}
	return nil
}

// withDotEnv layers the variables of envFile under environ: a variable set
// in the process environment wins over the file.
func withDotEnv(envFile string, environ func(string) (string, bool)) (func(string) (string, bool), error) {
	if environ == nil {
		environ = os.LookupEnv
	}
	expanded := expandPath(envFile)
	if expanded == "" {
		return environ, nil
	}
	vars, err := godotenv.Read(expanded)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read env file %s", expanded)
	}
	return func(key string) (string, bool) {
		if v, ok := environ(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}, nil
}

// expandPath trims path and resolves a leading "~/".
func expandPath(path string) string {
	path = strings.TrimSpace(path)
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
