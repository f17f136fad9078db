package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.trai.ch/mlpot/internal/core/domain"
	"go.trai.ch/mlpot/internal/core/ports"
	"go.trai.ch/mlpot/internal/engine/calculator"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// metricsExporter is implemented by metrics adapters that can serve their values.
type metricsExporter interface {
	Handler() http.Handler
}

// WatchOptions configures the Watch method.
type WatchOptions struct {
	ConfigPath  string
	File        string
	Properties  []string
	JSON        bool
	ShowForces  bool
	MetricsAddr string
	Overrides   Overrides
}

// Watch evaluates the last frame of a file now and after every change to it,
// until ctx is canceled. Failed evaluations are logged and watching continues.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	props, err := domain.ParseProperties(opts.Properties)
	if err != nil {
		return err
	}
	calc, err := a.newCalculator(opts.ConfigPath, opts.Overrides)
	if err != nil {
		return err
	}
	reporter := a.reporter(opts.JSON, opts.ShowForces)

	var exporter metricsExporter
	if opts.MetricsAddr != "" {
		var ok bool
		if exporter, ok = a.metrics.(metricsExporter); !ok {
			return zerr.With(zerr.New("metrics cannot be served by this recorder"), "addr", opts.MetricsAddr)
		}
	}

	if err := a.watcher.Start(ctx, opts.File); err != nil {
		return err
	}
	a.logger.Info("watching " + opts.File)

	g, ctx := errgroup.WithContext(ctx)

	if exporter != nil {
		srv := &http.Server{
			Addr:              opts.MetricsAddr,
			Handler:           exporter.Handler(),
			ReadHeaderTimeout: shutdownTimeout,
		}
		g.Go(func() error {
			a.logger.Info("serving metrics on " + opts.MetricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return zerr.With(zerr.Wrap(err, "metrics server failed"), "addr", opts.MetricsAddr)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		return a.watcher.Stop()
	})

	g.Go(func() error {
		a.evaluateLast(ctx, calc, reporter, opts.File, props)
		for range a.watcher.Changes() {
			a.evaluateLast(ctx, calc, reporter, opts.File, props)
		}
		return nil
	})

	return g.Wait()
}

// evaluateLast reports the last frame of path. Errors are logged.
func (a *App) evaluateLast(
	ctx context.Context,
	calc *calculator.Calculator,
	reporter ports.Reporter,
	path string,
	props []domain.Property,
) {
	frames, err := a.frames.ReadFrames(path)
	if err != nil {
		a.logger.Error(err)
		return
	}
	if len(frames) == 0 {
		a.logger.Error(zerr.With(zerr.Wrap(domain.ErrNoFrames, "nothing to evaluate"), "path", path))
		return
	}
	frame := frames[len(frames)-1]

	res, cached, err := calc.Evaluate(ctx, frame, props...)
	if err != nil {
		a.logger.Error(zerr.With(zerr.Wrap(err, "evaluation failed"), "path", path))
		return
	}
	if cached {
		a.logger.Debug(fmt.Sprintf("%s frame %d unchanged", path, frame.Index))
	}

	if err := reporter.Report([]ports.FrameResult{{
		Source:  path,
		Frame:   frame.Index,
		Atoms:   frame.Len(),
		Cached:  cached,
		Results: res,
	}}); err != nil {
		a.logger.Error(zerr.Wrap(err, "failed to write report"))
	}
}
