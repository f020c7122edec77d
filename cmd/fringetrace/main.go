// Command fringetrace exercises the mask and tracer engines from the
// command line: it synthesizes or loads raw 8-bit rasters, replays mask
// edits, and runs the fringe tracer against them. It never decodes PNG,
// JPEG, or DICOM — only headerless raw raster files it wrote itself.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fringetrace",
		Short: "Elliptical mask and fringe tracer engine driver",
	}
	root.AddCommand(newSynthesizeCmd())
	root.AddCommand(newMaskCmd())
	root.AddCommand(newTraceCmd())
	return root
}
