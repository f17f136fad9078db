// Package report renders evaluation results as a table or as JSON.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/mlpot/internal/core/domain"
	"go.trai.ch/mlpot/internal/core/ports"
	"go.trai.ch/mlpot/internal/ui/output"
	"go.trai.ch/mlpot/internal/ui/style"
)

var _ ports.Reporter = (*Text)(nil)

// Text writes one table per source file.
type Text struct {
	w          io.Writer
	showForces bool
	header     lipgloss.Style
	label      lipgloss.Style
	value      lipgloss.Style
	hit        lipgloss.Style
	miss       lipgloss.Style
}

// NewText creates a Text reporter. With showForces set, per-atom forces are
// listed under each frame.
func NewText(w io.Writer, showForces bool) *Text {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(output.ColorProfile())

	return &Text{
		w:          w,
		showForces: showForces,
		header:     style.Header.Renderer(r),
		label:      style.Label.Renderer(r),
		value:      style.Value.Renderer(r),
		hit:        style.Hit.Renderer(r),
		miss:       style.Miss.Renderer(r),
	}
}

// Report writes the results grouped by consecutive source.
func (t *Text) Report(results []ports.FrameResult) error {
	var b strings.Builder

	source := ""
	hits := 0
	for i, res := range results {
		if i == 0 || res.Source != source {
			if i > 0 {
				b.WriteString("\n")
			}
			source = res.Source
			b.WriteString(t.header.Render(source) + "\n")
			b.WriteString(t.label.Render(fmt.Sprintf("  %-6s %-6s %20s %16s  %s", "frame", "atoms", "energy (eV)", "max |F| (eV/Å)", "cache")) + "\n")
		}

		cache := t.miss.Render(style.Circle + " miss")
		if res.Cached {
			hits++
			cache = t.hit.Render(style.Dot + " hit")
		}
		energy := fmt.Sprintf("%20s", "-")
		if res.Results.Energy != nil {
			energy = t.value.Render(fmt.Sprintf("%20.8f", *res.Results.Energy))
		}
		fmt.Fprintf(&b, "  %-6d %-6d %s %16s  %s\n", res.Frame, res.Atoms, energy, maxForce(res.Results.Forces), cache)

		if t.showForces {
			for atom, f := range res.Results.Forces {
				b.WriteString(t.label.Render(fmt.Sprintf("      %4d %16.8f %16.8f %16.8f", atom, f[0], f[1], f[2])) + "\n")
			}
		}
	}
	if len(results) > 0 {
		b.WriteString("\n" + t.label.Render(fmt.Sprintf("%d frames, %d cache hits", len(results), hits)) + "\n")
	}

	_, err := io.WriteString(t.w, b.String())
	return err
}

func maxForce(forces []domain.Vec3) string {
	if forces == nil {
		return "-"
	}
	maxNorm := 0.0
	for _, f := range forces {
		maxNorm = math.Max(maxNorm, math.Sqrt(f[0]*f[0]+f[1]*f[1]+f[2]*f[2]))
	}
	return fmt.Sprintf("%.8f", maxNorm)
}
