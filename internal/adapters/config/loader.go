// Package config provides the configuration loader for mlpot.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/mlpot/internal/core/domain"
	"go.trai.ch/mlpot/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the default configuration file name.
const FileName = "mlpot.yaml"

// Descriptor defaults applied when the file omits them.
const (
	DefaultCutoff = 5.0
	DefaultBasis  = 8
	DefaultWidth  = 0.5
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger   ports.Logger
	validate *validator.Validate
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report YAML keys rather than Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Loader{Logger: logger, validate: v}
}

// Load reads, validates and converts the configuration file at configPath.
func (l *Loader) Load(configPath string) (*domain.Config, error) {
	var file Configfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	applyDefaults(&file)

	if err := l.validate.Struct(file); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigInvalid, describe(err)), "path", configPath)
	}

	cfg, err := l.toDomain(configPath, &file)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return cfg, nil
}

func (l *Loader) toDomain(configPath string, file *Configfile) (*domain.Config, error) {
	settings := domain.DefaultSettings()
	backend, err := domain.ParseBackend(file.Backend)
	if err != nil {
		return nil, domain.Classify(domain.ErrConfigInvalid, err)
	}
	settings.Backend = backend
	settings.EnableForces = file.EnableForces
	if file.CacheResults != nil {
		settings.CacheResults = *file.CacheResults
	}
	if file.EnergyUnitsToEV != nil {
		settings.EnergyUnitsToEV = *file.EnergyUnitsToEV
	}
	if file.LengthUnitsToA != nil {
		settings.LengthUnitsToA = *file.LengthUnitsToA
	}
	if file.FiniteDifferenceStep != nil {
		settings.FiniteDifferenceStep = *file.FiniteDifferenceStep
	}
	if err := settings.Validate(); err != nil {
		return nil, domain.Classify(domain.ErrConfigInvalid, err)
	}

	if backend.TracksGradients() && !settings.EnableForces {
		l.Logger.Warn(fmt.Sprintf("'backend: %s' in %s has no effect while forces are disabled",
			file.Backend, filepath.Base(configPath)))
	}

	species := make([]int, len(file.Descriptor.Species))
	for i, symbol := range file.Descriptor.Species {
		z, err := domain.AtomicNumber(symbol)
		if err != nil {
			return nil, domain.Classify(domain.ErrConfigInvalid, err)
		}
		species[i] = z
	}

	return &domain.Config{
		Settings: settings,
		Descriptor: domain.DescriptorSpec{
			Kind:    file.Descriptor.Kind,
			Species: species,
			Cutoff:  file.Descriptor.Cutoff,
			Basis:   file.Descriptor.Basis,
			Width:   file.Descriptor.Width,
		},
		Model: domain.ModelSpec{
			Path:      resolvePath(configPath, file.Model.Path),
			Coef:      file.Model.Coef,
			Intercept: file.Model.Intercept,
			Pad:       file.Model.Pad,
		},
		Logging: domain.LoggingSpec{
			JSON:    file.Logging.JSON,
			Verbose: file.Logging.Verbose,
		},
	}, nil
}

func applyDefaults(file *Configfile) {
	if file.Descriptor.Cutoff == 0 {
		file.Descriptor.Cutoff = DefaultCutoff
	}
	if file.Descriptor.Basis == 0 {
		file.Descriptor.Basis = DefaultBasis
	}
	if file.Descriptor.Width == 0 {
		file.Descriptor.Width = DefaultWidth
	}
}

// describe flattens validation failures into one line per field.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	lines := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		_, field, _ := strings.Cut(fe.Namespace(), ".")
		if fe.Param() != "" {
			lines = append(lines, fmt.Sprintf("%s: failed '%s=%s'", field, fe.Tag(), fe.Param()))
		} else {
			lines = append(lines, fmt.Sprintf("%s: failed '%s'", field, fe.Tag()))
		}
	}
	return strings.Join(lines, "\n")
}

// resolvePath makes a relative path relative to the directory of configPath.
func resolvePath(configPath, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Clean(filepath.Join(filepath.Dir(configPath), path))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is chosen by the user
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(domain.Classify(domain.ErrConfigReadFailed, err), "failed to read configuration")
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(domain.Classify(domain.ErrConfigParseFailed, parseErr), "failed to parse configuration")
	}

	return nil
}
