package diagnostics

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/cocosip/go-fringe/tracer"
)

func TestSummarizeEmpty(t *testing.T) {
	id := uuid.New()
	s := Summarize(nil, id)
	if s.ID != id {
		t.Errorf("expected ID to be preserved on empty input")
	}
	if s.MeanWidth != 0 || s.MeanIntensity != 0 {
		t.Errorf("expected zero summary for empty input, got %+v", s)
	}
}

func TestSummarizeMeanAndStdev(t *testing.T) {
	points := []tracer.Point{
		{X: 0, Y: 0, Width: 10, Intensity: 200},
		{X: 0, Y: 1, Width: 20, Intensity: 220},
		{X: 0, Y: 2, Width: 30, Intensity: 240},
	}
	id := uuid.New()
	s := Summarize(points, id)

	if math.Abs(s.MeanWidth-20.0) > 1e-9 {
		t.Errorf("expected mean width 20, got %v", s.MeanWidth)
	}
	if math.Abs(s.MeanIntensity-220.0) > 1e-9 {
		t.Errorf("expected mean intensity 220, got %v", s.MeanIntensity)
	}
	if s.StDevWidth <= 0 {
		t.Errorf("expected positive stdev width, got %v", s.StDevWidth)
	}
	if s.ID != id {
		t.Errorf("expected ID to be preserved")
	}
}
