package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cocosip/go-fringe/raster"
)

func newSynthesizeCmd() *cobra.Command {
	var pattern, out string
	var width, height int

	cmd := &cobra.Command{
		Use:   "synthesize",
		Short: "Write a synthetic raw 8-bit raster (bar or ring) to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var img raster.Image
			switch pattern {
			case "bar":
				img = raster.Bar(width, height, width/2-1, width/2, 255, 40)
			case "ring":
				cx, cy := width/2, height/2
				r := float64(width) / 4
				img = raster.Ring(width, height, cx, cy, r, 2, 255, 20)
			default:
				return fmt.Errorf("synthesize: unknown pattern %q (want bar or ring)", pattern)
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("synthesize: %w", err)
			}
			defer f.Close()

			if _, err := f.Write(img.Pix); err != nil {
				return fmt.Errorf("synthesize: write %s: %w", out, err)
			}
			fmt.Printf("wrote %s (%dx%d, pattern=%s)\n", out, width, height, pattern)
			return nil
		},
	}

	cmd.Flags().StringVar(&pattern, "pattern", "bar", "synthetic pattern: bar or ring")
	cmd.Flags().StringVar(&out, "out", "raw.gray", "output raw raster path")
	cmd.Flags().IntVar(&width, "w", 40, "raster width")
	cmd.Flags().IntVar(&height, "h", 20, "raster height")
	return cmd
}
