package app

import (
	"context"
	"fmt"

	"go.trai.ch/mlpot/internal/core/domain"
	"go.trai.ch/mlpot/internal/core/ports"
	"go.trai.ch/zerr"
)

// EvalOptions configures the Evaluate method.
type EvalOptions struct {
	ConfigPath string
	Files      []string
	Properties []string
	JSON       bool
	ShowForces bool
	Overrides  Overrides
}

// Evaluate computes the requested properties of every frame of every file,
// in order, with one calculator.
func (a *App) Evaluate(ctx context.Context, opts EvalOptions) error {
	if len(opts.Files) == 0 {
		return zerr.Wrap(domain.ErrNoFrames, "no structure files given")
	}
	props, err := domain.ParseProperties(opts.Properties)
	if err != nil {
		return err
	}

	calc, err := a.newCalculator(opts.ConfigPath, opts.Overrides)
	if err != nil {
		return err
	}

	var results []ports.FrameResult
	hits := 0
	for _, path := range opts.Files {
		frames, err := a.frames.ReadFrames(path)
		if err != nil {
			return err
		}
		for _, frame := range frames {
			res, cached, err := calc.Evaluate(ctx, frame, props...)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "evaluation failed"), "path", path)
			}
			if cached {
				hits++
			}
			results = append(results, ports.FrameResult{
				Source:  path,
				Frame:   frame.Index,
				Atoms:   frame.Len(),
				Cached:  cached,
				Results: res,
			})
		}
	}

	a.logger.Info(fmt.Sprintf("evaluated %d frames, %d cache hits", len(results), hits))
	return a.reporter(opts.JSON, opts.ShowForces).Report(results)
}
