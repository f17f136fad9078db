package report_test

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mlpot/internal/adapters/report"
	"go.trai.ch/mlpot/internal/core/domain"
	"go.trai.ch/mlpot/internal/core/ports"
)

func energy(v float64) *float64 { return &v }

func sampleResults() []ports.FrameResult {
	return []ports.FrameResult{
		{Source: "water.xyz", Frame: 0, Atoms: 3, Results: domain.Results{Energy: energy(0.01)}},
		{Source: "water.xyz", Frame: 1, Atoms: 3, Cached: true, Results: domain.Results{Energy: energy(0.01)}},
		{Source: "box.json", Frame: 0, Atoms: 2, Results: domain.Results{
			Energy: energy(-1.5),
			Forces: []domain.Vec3{{0.3, 0, -0.4}, {-0.3, 0, 0.4}},
		}},
	}
}

func TestText_Report(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	require.NoError(t, report.NewText(buf, true).Report(sampleResults()))

	g := goldie.New(t)
	g.Assert(t, "text_report", buf.Bytes())
}

func TestText_Empty(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, report.NewText(buf, false).Report(nil))
	assert.Empty(t, buf.String())
}

func TestText_HidesForcesByDefault(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	require.NoError(t, report.NewText(buf, false).Report(sampleResults()[2:]))
	assert.Contains(t, buf.String(), "0.50000000")
	assert.NotContains(t, buf.String(), "-0.30000000")
}

func TestJSON_Report(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, report.NewJSON(buf).Report(sampleResults()))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)

	assert.Equal(t, "water.xyz", got[0]["source"])
	assert.InDelta(t, 0.01, got[0]["energy"], 1e-15)
	assert.NotContains(t, got[0], "forces")
	assert.Equal(t, true, got[1]["cached"])

	forces, ok := got[2]["forces"].([]any)
	require.True(t, ok)
	require.Len(t, forces, 2)
	assert.Equal(t, []any{0.3, 0.0, -0.4}, forces[0])
}

func TestJSON_Empty(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, report.NewJSON(buf).Report(nil))
	assert.JSONEq(t, "[]", buf.String())
}
