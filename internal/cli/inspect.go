package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hexcomb/hexcomb/pkg/grid"
	"github.com/hexcomb/hexcomb/pkg/honeycomb"
)

// newInspectCmd creates the inspect command for reporting layout dimensions.
// It computes the layout exactly like generate but writes no files, which is
// useful for checking whether a pattern fits the target material before
// committing to an output.
func newInspectCmd() *cobra.Command {
	var presetPath string
	opts := honeycomb.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Report honeycomb layout dimensions without rendering",
		Long: `Report the canvas size, cell extents, and pitch of a honeycomb layout.

The layout is computed with the same parameters as generate, but nothing is
rendered or written. All dimensions are in millimeters.`,
		Example: `  hexcomb inspect -c 12 -r 9 -s 25
  hexcomb inspect --variant corner --preset examples/presets/coaster.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			merged, err := layerOptions(cmd, opts, presetPath)
			if err != nil {
				return err
			}
			return runInspect(cmd.Context(), merged)
		},
	}

	cmd.Flags().IntVarP(&opts.Columns, "columns", "c", opts.Columns, "number of columns")
	cmd.Flags().IntVarP(&opts.Rows, "rows", "r", opts.Rows, "number of rows")
	cmd.Flags().Float64VarP(&opts.Side, "side", "s", opts.Side, "hexagon side length in mm")
	cmd.Flags().Float64VarP(&opts.Angle, "angle", "a", opts.Angle, "tip angle in degrees (120 = regular)")
	cmd.Flags().Float64VarP(&opts.Distance, "distance", "d", opts.Distance, "distance between hexagons in mm")
	cmd.Flags().StringVar(&opts.Variant, "variant", opts.Variant, "hexagon variant: center (default), top-point, corner, left-point")
	cmd.Flags().StringVar(&presetPath, "preset", "", "TOML preset file with parameter values")

	return cmd
}

// runInspect computes the layout and prints a dimension report.
func runInspect(ctx context.Context, opts honeycomb.Options) error {
	logger := loggerFromContext(ctx)

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	g, err := grid.Build(opts.GridParams())
	if err != nil {
		return err
	}
	logger.Debugf("Layout computed: %d hexagons", g.Count())

	printTitle("Honeycomb layout")
	printNewline()
	printKeyValue("variant", opts.Variant)
	printKeyValue("grid", fmt.Sprintf("%d x %d", opts.Columns, opts.Rows))
	printKeyValue("hexagons", fmt.Sprintf("%d", g.Count()))
	printKeyValue("side", fmt.Sprintf("%.2f mm", opts.Side))
	printKeyValue("angle", fmt.Sprintf("%.1f°", opts.Angle))
	printKeyValue("distance", fmt.Sprintf("%.2f mm", opts.Distance))
	printKeyValue("cell", fmt.Sprintf("%.2f x %.2f mm", g.CellWidth, g.CellHeight))
	printKeyValue("pitch", fmt.Sprintf("%.2f x %.2f mm", g.PitchX, g.PitchY))
	printKeyValue("canvas", fmt.Sprintf("%.2f x %.2f mm", g.Width, g.Height))
	return nil
}
