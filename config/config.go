// Package config loads a YAML job description for cmd/fringetrace. Neither
// mask nor tracer has any file I/O of its own; this is the only place a
// path touches a disk.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cocosip/go-fringe/mask"
	"github.com/cocosip/go-fringe/tracer"
)

// TraceJob is a declarative batch of mask edits and trace seeds, loaded
// from a single YAML file by the CLI.
type TraceJob struct {
	Params   tracer.Params    `yaml:"params"`
	Ellipses []EllipseCommand `yaml:"ellipses"`
	Seeds    []SeedPoint      `yaml:"seeds"`
}

// EllipseCommand is one setEllipse call to replay against a mask.Mask.
type EllipseCommand struct {
	Outer  bool               `yaml:"outer"`
	Params mask.EllipseParams `yaml:"params"`
}

// SeedPoint is one traceLine seed to replay against a tracer.Tracer.
type SeedPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Load reads and unmarshals path, then fills any zero-valued numeric Params
// fields from tracer.DefaultParams() — the same default-filling shape as
// ROIConfig.Validate applies to a loaded ROI config. Bidirectional is taken
// as written, so it is false when the document omits it.
func Load(path string) (TraceJob, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TraceJob{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	job := TraceJob{}
	if err := yaml.Unmarshal(data, &job); err != nil {
		return TraceJob{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	applyDefaults(&job.Params)
	return job, nil
}

func applyDefaults(p *tracer.Params) {
	d := tracer.DefaultParams()
	if p.InitialWidth == 0 {
		p.InitialWidth = d.InitialWidth
	}
	if p.MaxWidthChange == 0 {
		p.MaxWidthChange = d.MaxWidthChange
	}
	if p.IntensityThreshold == 0 {
		p.IntensityThreshold = d.IntensityThreshold
	}
	if p.MaxSteps == 0 {
		p.MaxSteps = d.MaxSteps
	}
	if p.CurvatureCoeff == 0 {
		p.CurvatureCoeff = d.CurvatureCoeff
	}
}
