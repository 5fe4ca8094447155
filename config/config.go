// Package config assembles run settings from defaults, an optional YAML file,
// an optional .env file and MSTREPLAY_* environment variables, in that order
// of increasing precedence. Command-line flags are applied on top by the CLI.
package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/katalvlaran/mstreplay/dataset"
	"github.com/katalvlaran/mstreplay/replay"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "MSTREPLAY_"

// Log formats and levels accepted by Validate.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// ErrInvalidConfig is wrapped by every Validate and parse failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config controls a run. LogFile, when set, receives log output instead of
// stderr.
type Config struct {
	Dataset     string
	Start       string
	Catalog     string
	Speed       float64
	Interval    time.Duration
	Autoplay    bool
	LogFormat   string
	LogLevel    string
	LogFile     string
	MetricsFile string
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Dataset:   dataset.Simple,
		Speed:     replay.DefaultSpeed,
		Interval:  replay.DefaultBaseInterval,
		LogFormat: FormatConsole,
		LogLevel:  "info",
	}
}

// Load returns Default overridden by the YAML file at path, then by the
// .env file at envFile, then by the process environment. Empty paths are
// skipped. The result is validated.
func Load(path, envFile string, environ func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	fileCfg, err := loadFileConfig(path)
	if err != nil {
		return nil, err
	}
	if err := applyFileConfig(cfg, fileCfg); err != nil {
		return nil, err
	}
	lookup, err := withDotEnv(envFile, environ)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides fields from MSTREPLAY_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		return nil
	}
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}
	if v, ok := get("DATASET"); ok {
		c.Dataset = v
	}
	if v, ok := get("START"); ok {
		c.Start = v
	}
	if v, ok := get("CATALOG"); ok {
		c.Catalog = v
	}
	if v, ok := get("SPEED"); ok {
		speed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrapf(ErrInvalidConfig, "%sSPEED %q", EnvPrefix, v)
		}
		c.Speed = speed
	}
	if v, ok := get("INTERVAL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrapf(ErrInvalidConfig, "%sINTERVAL %q", EnvPrefix, v)
		}
		c.Interval = d
	}
	if v, ok := get("AUTOPLAY"); ok {
		b, err := parseBool(v)
		if err != nil {
			return errors.Wrapf(ErrInvalidConfig, "%sAUTOPLAY %q", EnvPrefix, v)
		}
		c.Autoplay = b
	}
	if v, ok := get("LOG_FORMAT"); ok {
		c.LogFormat = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := get("LOG_FILE"); ok {
		c.LogFile = v
	}
	if v, ok := get("METRICS_FILE"); ok {
		c.MetricsFile = v
	}

	return nil
}

// Validate rejects out-of-range speed, a non-positive interval, an empty
// dataset name and unknown log settings.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Dataset) == "":
		return errors.Wrap(ErrInvalidConfig, "dataset is empty")
	case math.IsNaN(c.Speed) || c.Speed < replay.MinSpeed || c.Speed > replay.MaxSpeed:
		return errors.Wrapf(ErrInvalidConfig, "speed %g outside [%g, %g]", c.Speed, replay.MinSpeed, replay.MaxSpeed)
	case c.Interval <= 0:
		return errors.Wrapf(ErrInvalidConfig, "interval %s must be positive", c.Interval)
	}
	switch strings.ToLower(c.LogFormat) {
	case FormatJSON, FormatConsole:
	default:
		return errors.Wrapf(ErrInvalidConfig, "log format %q (want json or console)", c.LogFormat)
	}
	for _, l := range logLevels {
		if strings.EqualFold(c.LogLevel, l) {
			return nil
		}
	}

	return errors.Wrapf(ErrInvalidConfig, "log level %q (want %s)", c.LogLevel, strings.Join(logLevels, ", "))
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "y":
		return true, nil
	case "0", "false", "no", "n":
		return false, nil
	default:
		return false, fmt.Errorf("not a boolean: %q", v)
	}
}
