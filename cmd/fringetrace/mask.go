package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cocosip/go-fringe/mask"
)

func newMaskCmd() *cobra.Command {
	var width, height int
	var ellipse string
	var outer, dump bool

	cmd := &cobra.Command{
		Use:   "mask",
		Short: "Exercise the mask engine and optionally dump its row table",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := mask.New(width, height)
			if err != nil {
				return fmt.Errorf("mask: %w", err)
			}

			if ellipse != "" {
				params, err := parseEllipse(ellipse)
				if err != nil {
					return fmt.Errorf("mask: %w", err)
				}
				m.SetEllipse(params, outer)
			}

			if dump {
				fmt.Print(m.String())
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "w", 40, "mask width")
	cmd.Flags().IntVar(&height, "h", 20, "mask height")
	cmd.Flags().StringVar(&ellipse, "ellipse", "", "cx,cy,a,b to impose")
	cmd.Flags().BoolVar(&outer, "outer", false, "impose as the outer ellipse (default: inner)")
	cmd.Flags().BoolVar(&dump, "dump", true, "print the mask's row table")
	return cmd
}

func parseEllipse(spec string) (mask.EllipseParams, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return mask.EllipseParams{}, fmt.Errorf("ellipse spec %q must be cx,cy,a,b", spec)
	}
	values := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return mask.EllipseParams{}, fmt.Errorf("ellipse spec %q: %w", spec, err)
		}
		values[i] = v
	}
	return mask.EllipseParams{CX: values[0], CY: values[1], A: values[2], B: values[3]}, nil
}
