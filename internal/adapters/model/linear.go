// Package model implements the built-in energy models.
package model

import (
	"fmt"
	"slices"

	"go.trai.ch/mlpot/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.GradientModel = (*Linear)(nil)

// Linear predicts E = coef . x + intercept.
//
// With Pad set, feature vectors shorter than coef are zero-padded and longer
// ones are truncated. Without it a length mismatch is an error.
type Linear struct {
	coef      []float64
	intercept float64
	pad       bool
}

// NewLinear creates a linear model.
func NewLinear(coef []float64, intercept float64, pad bool) *Linear {
	return &Linear{coef: slices.Clone(coef), intercept: intercept, pad: pad}
}

// Len returns the number of coefficients.
func (m *Linear) Len() int {
	return len(m.coef)
}

// Predict returns the energy of the feature vector.
func (m *Linear) Predict(features []float64) (float64, error) {
	if err := m.checkLen(features); err != nil {
		return 0, err
	}
	e := m.intercept
	for k := range min(len(features), len(m.coef)) {
		e += m.coef[k] * features[k]
	}
	return e, nil
}

// Gradient returns dE/dx, one entry per feature.
func (m *Linear) Gradient(features []float64) ([]float64, error) {
	if err := m.checkLen(features); err != nil {
		return nil, err
	}
	grad := make([]float64, len(features))
	copy(grad, m.coef)
	return grad, nil
}

func (m *Linear) checkLen(features []float64) error {
	if m.pad || len(features) == len(m.coef) {
		return nil
	}
	err := zerr.New(fmt.Sprintf("model expects %d features, got %d", len(m.coef), len(features)))
	return zerr.With(zerr.With(err, "expected", len(m.coef)), "actual", len(features))
}
