package app

import (
	"context"
	"fmt"
	"math"

	"go.trai.ch/mlpot/internal/core/domain"
	"go.trai.ch/zerr"
)

// CheckForcesOptions configures the CheckForces method.
type CheckForcesOptions struct {
	ConfigPath string
	File       string
	// Frame selects a frame by index. Negative values count from the end.
	Frame int
}

// ForceCheck compares gradient-backend forces with finite differences.
type ForceCheck struct {
	Source       string
	Frame        int
	Atoms        int
	Analytic     bool
	Energy       float64
	MaxDeviation float64
}

// CheckForces evaluates one frame with the gradient backend and with finite
// differences and reports the largest absolute difference of any force component.
func (a *App) CheckForces(ctx context.Context, opts CheckForcesOptions) (ForceCheck, error) {
	cfg, err := a.loadConfig(opts.ConfigPath, Overrides{EnableForces: true, NoCache: true})
	if err != nil {
		return ForceCheck{}, err
	}

	gradientCfg := *cfg
	gradientCfg.Settings.Backend = domain.BackendGradient
	analytic, err := a.builder.Build(&gradientCfg)
	if err != nil {
		return ForceCheck{}, zerr.Wrap(err, "failed to build calculator")
	}
	plainCfg := *cfg
	plainCfg.Settings.Backend = domain.BackendPlain
	numeric, err := a.builder.Build(&plainCfg)
	if err != nil {
		return ForceCheck{}, zerr.Wrap(err, "failed to build calculator")
	}

	frames, err := a.frames.ReadFrames(opts.File)
	if err != nil {
		return ForceCheck{}, err
	}
	index := opts.Frame
	if index < 0 {
		index += len(frames)
	}
	if index < 0 || index >= len(frames) {
		err := zerr.Wrap(domain.ErrFrameOutOfRange, fmt.Sprintf("%s has %d frames", opts.File, len(frames)))
		return ForceCheck{}, zerr.With(err, "frame", opts.Frame)
	}
	frame := frames[index]

	want, err := numeric.Calculate(ctx, frame, domain.PropertyEnergy, domain.PropertyForces)
	if err != nil {
		return ForceCheck{}, zerr.Wrap(err, "finite-difference evaluation failed")
	}
	got, err := analytic.Calculate(ctx, frame, domain.PropertyEnergy, domain.PropertyForces)
	if err != nil {
		return ForceCheck{}, zerr.Wrap(err, "gradient evaluation failed")
	}

	check := ForceCheck{
		Source:   opts.File,
		Frame:    frame.Index,
		Atoms:    frame.Len(),
		Analytic: analytic.AnalyticForces(),
		Energy:   *got.Energy,
	}
	for i := range want.Forces {
		for axis := range 3 {
			check.MaxDeviation = math.Max(check.MaxDeviation, math.Abs(want.Forces[i][axis]-got.Forces[i][axis]))
		}
	}
	return check, nil
}
