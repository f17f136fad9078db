package ports

import "go.trai.ch/mlpot/internal/core/domain"

// Model maps a feature vector to an energy in the model's native unit.
//
//go:generate mockgen -source=model.go -destination=mocks/mock_model.go -package=mocks
type Model interface {
	Predict(features []float64) (float64, error)
}

// GradientModel is implemented by models that can report dE/dfeature.
type GradientModel interface {
	Model
	Gradient(features []float64) ([]float64, error)
}

// ModelFunc adapts a plain function to the Model interface.
type ModelFunc func(features []float64) (float64, error)

// Predict calls f(features).
func (f ModelFunc) Predict(features []float64) (float64, error) {
	return f(features)
}

// ModelLoader builds a model from its configuration.
type ModelLoader interface {
	Load(spec domain.ModelSpec) (Model, error)
}
