package cli

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mstreplay/config"
	"github.com/katalvlaran/mstreplay/dataset"
	"github.com/katalvlaran/mstreplay/logging"
	"github.com/katalvlaran/mstreplay/metrics"
	"github.com/katalvlaran/mstreplay/mst"
)

// app holds what every command needs.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	catalog *dataset.Catalog
	metrics *metrics.Collector
}

// loggerFunc builds the run logger from the resolved configuration.
type loggerFunc func(*config.Config) (*zap.Logger, error)

// setup resolves configuration and builds the logger, catalog and metrics.
//
// Steps:
//  1. config.Load: defaults, --config file, --env-file, environment.
//  2. Apply flags the user actually set.
//  3. Validate, build the logger.
//  4. Builtin catalog, plus the catalog file when configured.
func setup(cmd *cobra.Command, newLogger loggerFunc) (*app, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	envFile, _ := flags.GetString("env-file")

	// 1. Files and environment.
	cfg, err := config.Load(path, envFile, os.LookupEnv)
	if err != nil {
		return nil, err
	}

	// 2. Flags.
	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}

	// 3. Logger.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}

	// 4. Datasets.
	catalog := dataset.Builtin(dataset.WithLogger(logger))
	if cfg.Catalog != "" {
		if err := catalog.LoadFile(cfg.Catalog); err != nil {
			return nil, err
		}
	}
	if _, err := catalog.Entry(cfg.Dataset); err != nil {
		return nil, err
	}

	logger.Debug("configured",
		zap.String("dataset", cfg.Dataset),
		zap.Float64("speed", cfg.Speed),
		zap.Duration("interval", cfg.Interval),
		zap.Int("datasets", catalog.Len()))

	return &app{cfg: cfg, logger: logger, catalog: catalog, metrics: metrics.NewCollector()}, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	changed := func(name string) bool {
		f := flags.Lookup(name)
		return f != nil && f.Changed
	}
	var err error
	str := func(name string, dst *string) {
		if err == nil && changed(name) {
			*dst, err = flags.GetString(name)
		}
	}
	str("dataset", &cfg.Dataset)
	str("start", &cfg.Start)
	str("catalog", &cfg.Catalog)
	str("log-level", &cfg.LogLevel)
	str("log-format", &cfg.LogFormat)
	str("log-file", &cfg.LogFile)
	str("metrics-file", &cfg.MetricsFile)
	if err == nil && changed("speed") {
		cfg.Speed, err = flags.GetFloat64("speed")
	}
	if err == nil && changed("interval") {
		cfg.Interval, err = flags.GetDuration("interval")
	}
	if err == nil && changed("autoplay") {
		cfg.Autoplay, err = flags.GetBool("autoplay")
	}

	return errors.Wrap(err, "read flags")
}

// trace generates the trace of the named dataset. The configured start node
// applies to the configured dataset only.
func (a *app) trace(name string) (*mst.Trace, error) {
	g, err := a.catalog.Graph(name)
	if err != nil {
		a.metrics.ObserveTrace(name, metrics.OutcomeFailed, 0, 0)
		return nil, err
	}
	start := ""
	if name == a.cfg.Dataset {
		start = a.cfg.Start
	}
	if start == "" {
		if start, err = a.catalog.StartOf(name, g); err != nil {
			return nil, err
		}
	}

	began := time.Now()
	t, err := mst.NewTrace(g, start)
	if err != nil {
		a.metrics.ObserveTrace(name, metrics.OutcomeInvalid, 0, 0)
		return nil, errors.Wrapf(err, "trace %q from %q", name, start)
	}
	elapsed := time.Since(began)
	a.metrics.ObserveTrace(name, metrics.OutcomeOK, t.Len(), elapsed)
	a.logger.Debug("trace generated",
		zap.String("dataset", name),
		zap.String("start", start),
		zap.Stringer("trace", t.ID),
		zap.Int("steps", t.Len()),
		zap.Float64("weight", t.Weight()),
		zap.Duration("elapsed", elapsed))

	return t, nil
}

// close writes metrics when configured and flushes the logger.
func (a *app) close() error {
	var err error
	if a.cfg.MetricsFile != "" {
		if err = a.metrics.Write(a.cfg.MetricsFile); err != nil {
			err = errors.Wrapf(err, "write metrics %s", a.cfg.MetricsFile)
		}
	}
	_ = a.logger.Sync()

	return err
}

// withApp runs fn between setup and close, logging to stderr or the
// configured log file.
func withApp(cmd *cobra.Command, fn func(a *app) error) error {
	return runApp(cmd, logging.NewLogger, fn)
}

// runApp runs fn between setup and close with the given logger constructor.
func runApp(cmd *cobra.Command, newLogger loggerFunc, fn func(a *app) error) (err error) {
	a, err := setup(cmd, newLogger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.close(); err == nil {
			err = cerr
		}
	}()

	return fn(a)
}
