package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mlpot/cmd/mlpot/commands"
	"go.trai.ch/mlpot/internal/app"
	"go.trai.ch/mlpot/internal/build"
)

type mockApp struct {
	evalFunc  func(ctx context.Context, opts app.EvalOptions) error
	watchFunc func(ctx context.Context, opts app.WatchOptions) error
	checkFunc func(ctx context.Context, opts app.CheckForcesOptions) (app.ForceCheck, error)

	jsonLogs    bool
	verbose     bool
	tracing     bool
	traceClosed bool
}

func (m *mockApp) Evaluate(ctx context.Context, opts app.EvalOptions) error {
	if m.evalFunc != nil {
		return m.evalFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, opts app.WatchOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) CheckForces(ctx context.Context, opts app.CheckForcesOptions) (app.ForceCheck, error) {
	if m.checkFunc != nil {
		return m.checkFunc(ctx, opts)
	}
	return app.ForceCheck{}, nil
}

func (m *mockApp) ConfigureLogging(json, verbose bool) {
	m.jsonLogs = json
	m.verbose = verbose
}

func (m *mockApp) EnableTracing(_ io.Writer) (func(context.Context) error, error) {
	m.tracing = true
	return func(context.Context) error {
		m.traceClosed = true
		return nil
	}, nil
}

func TestCommands_Eval(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.EvalOptions
		called := false

		mock := &mockApp{
			evalFunc: func(_ context.Context, opts app.EvalOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"eval", "a.xyz", "b.json",
			"-c", "water.yaml",
			"-p", "energy,forces",
			"--json", "--show-forces",
			"--backend", "gradient", "--forces", "--no-cache",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, app.EvalOptions{
			ConfigPath: "water.yaml",
			Files:      []string{"a.xyz", "b.json"},
			Properties: []string{"energy", "forces"},
			JSON:       true,
			ShowForces: true,
			Overrides:  app.Overrides{Backend: "gradient", EnableForces: true, NoCache: true},
		}, captured)
	})

	t.Run("defaults", func(t *testing.T) {
		var captured app.EvalOptions
		mock := &mockApp{
			evalFunc: func(_ context.Context, opts app.EvalOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"eval", "a.xyz"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "mlpot.yaml", captured.ConfigPath)
		assert.Equal(t, []string{"energy"}, captured.Properties)
		assert.Equal(t, app.Overrides{}, captured.Overrides)
		assert.False(t, mock.jsonLogs)
		assert.False(t, mock.verbose)
		assert.False(t, mock.tracing)
	})

	t.Run("returns error on evaluation failure", func(t *testing.T) {
		mock := &mockApp{
			evalFunc: func(_ context.Context, _ app.EvalOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"eval", "a.xyz"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("shows usage when no files provided", func(t *testing.T) {
		mock := &mockApp{
			evalFunc: func(_ context.Context, _ app.EvalOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"eval"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Usage:")
	})
}

func TestCommands_LoggingAndTracing(t *testing.T) {
	mock := &mockApp{}

	cli := commands.New(mock)
	cli.SetArgs([]string{"eval", "a.xyz", "--json-logs", "-v", "--trace"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, mock.jsonLogs)
	assert.True(t, mock.verbose)
	assert.True(t, mock.tracing)
	assert.True(t, mock.traceClosed)
}

func TestCommands_Watch(t *testing.T) {
	var captured app.WatchOptions
	mock := &mockApp{
		watchFunc: func(_ context.Context, opts app.WatchOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"watch", "md.xyz", "--metrics-addr", ":9090", "-p", "forces", "--forces"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, app.WatchOptions{
		ConfigPath:  "mlpot.yaml",
		File:        "md.xyz",
		Properties:  []string{"forces"},
		MetricsAddr: ":9090",
		Overrides:   app.Overrides{EnableForces: true},
	}, captured)
}

func TestCommands_WatchRequiresFile(t *testing.T) {
	cli := commands.New(&mockApp{})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"watch"})

	require.Error(t, cli.Execute(context.Background()))
}

func TestCommands_CheckForces(t *testing.T) {
	var captured app.CheckForcesOptions
	mock := &mockApp{
		checkFunc: func(_ context.Context, opts app.CheckForcesOptions) (app.ForceCheck, error) {
			captured = opts
			return app.ForceCheck{
				Source:       opts.File,
				Frame:        4,
				Atoms:        3,
				Analytic:     true,
				Energy:       -1.25,
				MaxDeviation: 2.5e-9,
			}, nil
		},
	}

	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"check-forces", "md.xyz"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, app.CheckForcesOptions{ConfigPath: "mlpot.yaml", File: "md.xyz", Frame: -1}, captured)
	assert.Equal(t,
		"md.xyz frame 4: 3 atoms, energy -1.25000000 eV\n"+
			"max force deviation 2.500e-09 eV/Å (gradient backend used chain rule)\n",
		buf.String())
}

func TestCommands_CheckForcesError(t *testing.T) {
	mock := &mockApp{
		checkFunc: func(context.Context, app.CheckForcesOptions) (app.ForceCheck, error) {
			return app.ForceCheck{}, errors.New("frame index out of range")
		},
	}

	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"check-forces", "md.xyz", "--frame", "7"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
	assert.Contains(t, buf.String(), build.Commit)
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "mlpot version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", buf.String())
}
