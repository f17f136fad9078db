package model

import (
	"os"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/mlpot/internal/core/domain"
	"go.trai.ch/mlpot/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ModelLoader = (*Loader)(nil)

// File is the on-disk layout of a linear model.
type File struct {
	Coef      []float64 `yaml:"coef" validate:"required_if=Pad false"`
	Intercept float64   `yaml:"intercept"`
	Pad       bool      `yaml:"pad"`
}

// Loader builds linear models from inline coefficients or YAML files.
type Loader struct {
	validate *validator.Validate
}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{validate: validator.New()}
}

// Load builds the model described by spec. A non-empty Path is read instead
// of the inline coefficients; spec.Pad applies in both cases.
func (l *Loader) Load(spec domain.ModelSpec) (ports.Model, error) {
	file := File{Coef: spec.Coef, Intercept: spec.Intercept, Pad: spec.Pad}
	if spec.Path != "" {
		//nolint:gosec // Path comes from the user's own config file
		data, err := os.ReadFile(spec.Path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.Classify(domain.ErrModelLoadFailed, err), "failed to read model file"), "path", spec.Path)
		}
		file = File{}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.Classify(domain.ErrModelLoadFailed, err), "failed to parse model file"), "path", spec.Path)
		}
		file.Pad = file.Pad || spec.Pad
	}

	if len(file.Coef) == 0 {
		file.Coef = nil
	}
	if err := l.validate.Struct(file); err != nil {
		err = zerr.Wrap(domain.ErrModelLoadFailed, "model needs coefficients unless padding is enabled: "+err.Error())
		return nil, zerr.With(err, "path", spec.Path)
	}

	return NewLinear(file.Coef, file.Intercept, file.Pad), nil
}
