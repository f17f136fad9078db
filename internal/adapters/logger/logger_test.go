package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/mlpot/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)
	return l, buf
}

func TestLogger_Levels(t *testing.T) {
	l, buf := newLogger(t)

	l.Debug("hidden")
	l.Info("loaded model")
	l.Warn("forces disabled")

	assert.Equal(t, "loaded model\n! forces disabled\n", buf.String())
}

func TestLogger_Verbose(t *testing.T) {
	l, buf := newLogger(t)

	l.SetVerbose(true)
	l.Debug("cache hit")
	l.SetVerbose(false)
	l.Debug("cache hit again")

	assert.Equal(t, "○ cache hit\n", buf.String())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "plain error",
			err:        errors.New("something broke"),
			goldenName: "error_plain",
		},
		{
			name:       "zerr chain",
			err:        zerr.Wrap(zerr.Wrap(errors.New("no such file"), "failed to read frames"), "evaluation failed"),
			goldenName: "error_chain",
		},
		{
			name:       "classified cause",
			err:        zerr.Wrap(fmt.Errorf("%w: %w", errors.New("model evaluation failed"), errors.New("NaN energy")), "failed to evaluate model"),
			goldenName: "error_classified",
		},
		{
			name:       "multiline",
			err:        zerr.Wrap(errors.New("first\nsecond"), "invalid config file\nfield: failed 'gt=0'"),
			goldenName: "error_multiline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newLogger(t)
			l.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	l, buf := newLogger(t)
	l.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	l, buf := newLogger(t)
	l.SetJSON(true)

	l.Info("loaded model")
	l.Error(zerr.Wrap(errors.New("boom"), "failed"))

	out := buf.String()
	assert.Contains(t, out, `"level":"INFO"`)
	assert.Contains(t, out, `"msg":"loaded model"`)
	assert.Contains(t, out, `"msg":"operation failed"`)
	assert.Contains(t, out, `"error":`)

	buf.Reset()
	l.SetJSON(false)
	l.Info("back to pretty")
	assert.Equal(t, "back to pretty\n", buf.String())
}

func TestLogger_SetOutputKeepsMode(t *testing.T) {
	l, _ := newLogger(t)
	l.SetJSON(true)

	buf := &bytes.Buffer{}
	l.SetOutput(buf)
	l.Info("still json")
	assert.Contains(t, buf.String(), `"msg":"still json"`)
}

func TestLogger_Concurrent(t *testing.T) {
	l, buf := newLogger(t)

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() { l.Info("x") })
	}
	wg.Go(func() { l.SetVerbose(true) })
	wg.Wait()

	assert.Equal(t, 8, bytes.Count(buf.Bytes(), []byte("x\n")))
}
