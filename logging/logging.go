// Package logging builds the process logger from the run configuration.
package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/mstreplay/config"
)

// NewLogger builds a zap logger: console → development encoder, anything
// else → production JSON. Timestamps are RFC3339Nano. Logs go to
// cfg.LogFile when set, otherwise to stderr so that command output on
// stdout stays clean.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if strings.EqualFold(cfg.LogFormat, config.FormatConsole) {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	zapCfg.OutputPaths = []string{"stderr"}
	if cfg.LogFile != "" {
		zapCfg.OutputPaths = []string{cfg.LogFile}
	}
	zapCfg.Level = zap.NewAtomicLevelAt(Level(cfg.LogLevel))

	return zapCfg.Build()
}

// NewTUILogger builds the logger used while a full-screen UI owns the
// terminal: the file logger of NewLogger when cfg.LogFile is set, a no-op
// logger otherwise.
func NewTUILogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.LogFile == "" {
		return zap.NewNop(), nil
	}

	return NewLogger(cfg)
}

// Level maps debug|info|warn|error to a zap level; anything else is info.
func Level(name string) zapcore.Level {
	switch strings.ToLower(name) {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
