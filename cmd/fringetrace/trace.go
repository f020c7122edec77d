package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cocosip/go-fringe/config"
	"github.com/cocosip/go-fringe/diagnostics"
	"github.com/cocosip/go-fringe/raster"
	"github.com/cocosip/go-fringe/tracer"
)

func newTraceCmd() *cobra.Command {
	var in, seedSpec, configPath string
	var width, height int

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Trace a fringe from a seed point in a raw 8-bit raster",
		RunE: func(cmd *cobra.Command, args []string) error {
			pix, err := os.ReadFile(in)
			if err != nil {
				return fmt.Errorf("trace: read %s: %w", in, err)
			}
			img, err := raster.New(width, height, width, pix)
			if err != nil {
				return fmt.Errorf("trace: %w", err)
			}

			params := tracer.DefaultParams()
			if configPath != "" {
				job, err := config.Load(configPath)
				if err != nil {
					return fmt.Errorf("trace: %w", err)
				}
				params = job.Params
			}

			seedX, seedY, err := parseSeed(seedSpec)
			if err != nil {
				return fmt.Errorf("trace: %w", err)
			}

			t := tracer.New()
			t.SetImage(img)
			t.SetParams(params)

			result, err := t.TraceLine(seedX, seedY)
			if err != nil {
				return fmt.Errorf("trace: %w", err)
			}

			for _, p := range result.Points {
				fmt.Printf("%d %d width=%.2f intensity=%.2f\n", p.X, p.Y, p.Width, p.Intensity)
			}

			summary := diagnostics.Summarize(result.Points, result.ID)
			fmt.Printf("trace %s: points=%d mean_width=%.2f mean_intensity=%.2f forward=%s backward=%s\n",
				summary.ID, len(result.Points), summary.MeanWidth, summary.MeanIntensity,
				result.ForwardStatus, result.BackwardStatus)
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "raw headerless 8-bit raster file")
	cmd.Flags().IntVar(&width, "w", 0, "raster width")
	cmd.Flags().IntVar(&height, "h", 0, "raster height")
	cmd.Flags().StringVar(&seedSpec, "seed", "", "seed point, x,y")
	cmd.Flags().StringVar(&configPath, "config", "", "optional job YAML (overrides defaults)")
	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("seed")
	return cmd
}

func parseSeed(spec string) (x, y int, err error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("seed spec %q must be x,y", spec)
	}
	x, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("seed spec %q: %w", spec, err)
	}
	y, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("seed spec %q: %w", spec, err)
	}
	return x, y, nil
}
