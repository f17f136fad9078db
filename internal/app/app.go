// Package app implements the application layer for mlpot.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/mlpot/internal/adapters/report"    //nolint:depguard // Wired in app layer
	"go.trai.ch/mlpot/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/mlpot/internal/core/domain"
	"go.trai.ch/mlpot/internal/core/ports"
	"go.trai.ch/mlpot/internal/engine/calculator"
	"go.trai.ch/zerr"
)

// CalculatorBuilder creates calculators from loaded configuration.
type CalculatorBuilder interface {
	Build(cfg *domain.Config) (*calculator.Calculator, error)
}

// logConfigurer is implemented by loggers whose output format can change at runtime.
type logConfigurer interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	builder      CalculatorBuilder
	frames       ports.FrameReader
	watcher      ports.Watcher
	logger       ports.Logger
	metrics      ports.Metrics
	stdout       io.Writer
	jsonLogs     bool
	verbose      bool
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	builder CalculatorBuilder,
	frames ports.FrameReader,
	watcher ports.Watcher,
	log ports.Logger,
	metrics ports.Metrics,
) *App {
	return &App{
		configLoader: loader,
		builder:      builder,
		frames:       frames,
		watcher:      watcher,
		logger:       log,
		metrics:      metrics,
		stdout:       os.Stdout,
	}
}

// WithOutput redirects reports to w.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// ConfigureLogging switches the logger to JSON output and/or debug level.
// Settings from the config file can only turn these on.
func (a *App) ConfigureLogging(json, verbose bool) {
	a.jsonLogs = json
	a.verbose = verbose
	a.applyLogging()
}

func (a *App) applyLogging() {
	if lc, ok := a.logger.(logConfigurer); ok {
		lc.SetJSON(a.jsonLogs)
		lc.SetVerbose(a.verbose)
	}
}

// EnableTracing writes calculator spans to w until the returned function is called.
func (a *App) EnableTracing(w io.Writer) (func(context.Context) error, error) {
	shutdown, err := telemetry.SetupStdout(w)
	if err != nil {
		return nil, err
	}
	return shutdown, nil
}

// Overrides are command-line settings that take precedence over the config file.
type Overrides struct {
	Backend      string
	EnableForces bool
	NoCache      bool
}

func (o Overrides) apply(settings *domain.Settings) error {
	if o.Backend != "" {
		backend, err := domain.ParseBackend(o.Backend)
		if err != nil {
			return err
		}
		settings.Backend = backend
	}
	if o.EnableForces {
		settings.EnableForces = true
	}
	if o.NoCache {
		settings.CacheResults = false
	}
	return nil
}

// loadConfig reads the config file and applies its logging section and overrides.
func (a *App) loadConfig(path string, overrides Overrides) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	if cfg.Logging.JSON || cfg.Logging.Verbose {
		a.jsonLogs = a.jsonLogs || cfg.Logging.JSON
		a.verbose = a.verbose || cfg.Logging.Verbose
		a.applyLogging()
	}
	if err := overrides.apply(&cfg.Settings); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (a *App) newCalculator(path string, overrides Overrides) (*calculator.Calculator, error) {
	cfg, err := a.loadConfig(path, overrides)
	if err != nil {
		return nil, err
	}
	calc, err := a.builder.Build(cfg)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build calculator")
	}
	a.logger.Debug(fmt.Sprintf("calculator %s: %s descriptor, %s backend, forces=%t, cache=%t",
		calc.ID(), cfg.Descriptor.Kind, cfg.Settings.Backend, cfg.Settings.EnableForces, cfg.Settings.CacheResults))
	return calc, nil
}

func (a *App) reporter(json, showForces bool) ports.Reporter {
	if json {
		return report.NewJSON(a.stdout)
	}
	return report.NewText(a.stdout, showForces)
}
