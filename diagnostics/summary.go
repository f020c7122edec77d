// Package diagnostics computes post-trace summary statistics. The original
// implementation surfaced an average fringe width and average intensity to
// its interactive host's status bar after every trace; spec.md's
// distillation drops that reporting feature, so this package restores it
// as a pure, disk-free post-processing step over a tracer.Result.
package diagnostics

import (
	"gonum.org/v1/gonum/stat"

	"github.com/google/uuid"

	"github.com/cocosip/go-fringe/tracer"
)

// Summary is the per-trace width/intensity report.
type Summary struct {
	MeanWidth      float64
	StDevWidth     float64
	MeanIntensity  float64
	StDevIntensity float64
	ID             uuid.UUID
}

// Summarize reduces a trace's points to mean/stdev of width and intensity,
// tagging the result with the originating trace's correlation id so a
// caller can join log lines across a synthesize -> trace -> summarize
// pipeline. An empty points slice returns zero statistics with ID still
// set.
func Summarize(points []tracer.Point, id uuid.UUID) Summary {
	if len(points) == 0 {
		return Summary{ID: id}
	}

	widths := make([]float64, len(points))
	intensities := make([]float64, len(points))
	for i, p := range points {
		widths[i] = p.Width
		intensities[i] = p.Intensity
	}

	meanW, sdW := stat.MeanStdDev(widths, nil)
	meanI, sdI := stat.MeanStdDev(intensities, nil)

	return Summary{
		MeanWidth:      meanW,
		StDevWidth:     sdW,
		MeanIntensity:  meanI,
		StDevIntensity: sdI,
		ID:             id,
	}
}
