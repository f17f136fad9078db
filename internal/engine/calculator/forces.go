package calculator

import (
	"context"
	"fmt"
	"math"

	"go.trai.ch/mlpot/internal/core/domain"
	"go.trai.ch/mlpot/internal/core/ports"
	"go.trai.ch/zerr"
)

// AnalyticForces reports whether forces follow from the chain rule rather
// than finite differences.
func (c *Calculator) AnalyticForces() bool {
	return c.analytic()
}

func (c *Calculator) analytic() bool {
	if !c.settings.Backend.TracksGradients() {
		return false
	}
	_, okDescriptor := c.descriptor.(ports.GradientDescriptor)
	_, okModel := c.model.(ports.GradientModel)
	return okDescriptor && okModel
}

// analyticResults computes energy and F_i = -(E_u/L_u) sum_k dE/dx_k dx_k/dr_i.
func (c *Calculator) analyticResults(ctx context.Context, s *domain.Snapshot) (domain.Results, error) {
	_, span := c.tracer.Start(ctx, "forces.analytic", ports.WithAttribute("mlpot.atoms", s.Len()))
	defer span.End()

	descriptor, _ := c.descriptor.(ports.GradientDescriptor)
	model, _ := c.model.(ports.GradientModel)

	features, jacobian, err := descriptor.ComputeWithJacobian(s.Scaled(c.settings.LengthUnitsToA))
	if err != nil {
		err = descriptorError(s, err)
		span.RecordError(err)
		return domain.Results{}, err
	}
	if err := checkFeatures(s, features); err != nil {
		span.RecordError(err)
		return domain.Results{}, err
	}
	if err := checkJacobian(s, features, jacobian); err != nil {
		span.RecordError(err)
		return domain.Results{}, err
	}

	e, err := c.predict(s, features)
	if err != nil {
		span.RecordError(err)
		return domain.Results{}, err
	}
	grad, err := model.Gradient(features)
	if err != nil {
		err = modelError(s, err)
		span.RecordError(err)
		return domain.Results{}, err
	}
	if len(grad) != len(features) {
		err := modelError(s, zerr.New(fmt.Sprintf("model gradient has %d entries for %d features", len(grad), len(features))))
		span.RecordError(err)
		return domain.Results{}, err
	}

	unit := c.settings.ForceUnit()
	forces := make([]domain.Vec3, s.Len())
	for k, g := range grad {
		if g == 0 {
			continue
		}
		for i, d := range jacobian[k] {
			for axis := range 3 {
				forces[i][axis] -= g * d[axis]
			}
		}
	}
	for i := range forces {
		for axis := range 3 {
			forces[i][axis] *= unit
		}
	}
	if err := checkForces(s, forces); err != nil {
		span.RecordError(err)
		return domain.Results{}, err
	}

	energy := e * c.settings.EnergyUnitsToEV
	return domain.Results{Energy: &energy, Forces: forces}, nil
}

// finiteDifferenceResults computes energy and central-difference forces.
// Every coordinate is displaced by the configured step in Å, costing 6N
// extra pipeline evaluations.
func (c *Calculator) finiteDifferenceResults(ctx context.Context, s *domain.Snapshot) (domain.Results, error) {
	_, span := c.tracer.Start(ctx, "forces.finite_difference", ports.WithAttribute("mlpot.atoms", s.Len()))
	defer span.End()

	energy, err := c.energy(s)
	if err != nil {
		span.RecordError(err)
		return domain.Results{}, err
	}

	step := c.settings.FiniteDifferenceStep
	displaced := s.Clone()
	forces := make([]domain.Vec3, s.Len())
	for i := range displaced.Positions {
		for axis := range 3 {
			origin := s.Positions[i][axis]

			displaced.Positions[i][axis] = origin + step
			plus, err := c.energy(displaced)
			if err != nil {
				span.RecordError(err)
				return domain.Results{}, err
			}

			displaced.Positions[i][axis] = origin - step
			minus, err := c.energy(displaced)
			if err != nil {
				span.RecordError(err)
				return domain.Results{}, err
			}

			displaced.Positions[i][axis] = origin
			forces[i][axis] = -(plus - minus) / (2 * step)
		}
	}
	if err := checkForces(s, forces); err != nil {
		span.RecordError(err)
		return domain.Results{}, err
	}

	return domain.Results{Energy: &energy, Forces: forces}, nil
}

func checkJacobian(s *domain.Snapshot, features []float64, jacobian [][]domain.Vec3) error {
	if len(jacobian) != len(features) {
		return descriptorError(s, zerr.New(fmt.Sprintf(
			"descriptor jacobian has %d rows for %d features", len(jacobian), len(features))))
	}
	for k, row := range jacobian {
		if len(row) != s.Len() {
			err := zerr.New(fmt.Sprintf("descriptor jacobian row %d has %d entries for %d atoms", k, len(row), s.Len()))
			return descriptorError(s, zerr.With(err, "feature", k))
		}
	}
	return nil
}

func checkForces(s *domain.Snapshot, forces []domain.Vec3) error {
	for i, f := range forces {
		for _, x := range f {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				err := zerr.With(zerr.New(fmt.Sprintf("force on atom %d is not finite", i)), "atom", i)
				return modelError(s, err)
			}
		}
	}
	return nil
}
