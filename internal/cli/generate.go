package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hexcomb/hexcomb/pkg/errors"
	"github.com/hexcomb/hexcomb/pkg/honeycomb"
)

// newGenerateCmd creates the generate command for producing honeycomb
// patterns. It supports multiple output formats (SVG, PNG, JSON) and loading
// parameter sets from TOML preset files.
//
// Parameters layer in three stages: built-in defaults, then the preset (if
// given), then explicitly set flags. A flag left at its default never
// overrides a preset value.
func newGenerateCmd() *cobra.Command {
	var (
		output     string
		presetPath string
		formatsStr string
	)
	opts := honeycomb.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a honeycomb pattern",
		Long: `Generate a honeycomb pattern as SVG, PNG, or JSON.

All dimensions are in millimeters. The side length and tip angle define the
hexagon shape (120 degrees yields regular hexagons), the distance sets the
gap between neighboring cells, and the variant selects the orientation and
anchor convention.

Output files are named honeycomb_<columns>x<rows>.<format> unless --output
is given. Use "--output -" to stream a single format to stdout.`,
		Example: `  hexcomb generate -c 12 -r 9 -s 25
  hexcomb generate --variant corner -f svg,png -o panel.svg
  hexcomb generate --preset examples/presets/coaster.toml
  hexcomb generate -c 4 -r 3 -f json -o -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			merged, err := layerOptions(cmd, opts, presetPath)
			if err != nil {
				return err
			}
			return runGenerate(cmd.Context(), merged, output)
		},
	}

	cmd.Flags().IntVarP(&opts.Columns, "columns", "c", opts.Columns, "number of columns")
	cmd.Flags().IntVarP(&opts.Rows, "rows", "r", opts.Rows, "number of rows")
	cmd.Flags().Float64VarP(&opts.Side, "side", "s", opts.Side, "hexagon side length in mm")
	cmd.Flags().Float64VarP(&opts.Angle, "angle", "a", opts.Angle, "tip angle in degrees (120 = regular)")
	cmd.Flags().Float64VarP(&opts.Distance, "distance", "d", opts.Distance, "distance between hexagons in mm")
	cmd.Flags().StringVar(&opts.Variant, "variant", opts.Variant, "hexagon variant: center (default), top-point, corner, left-point")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, base path (multiple formats), or - for stdout")
	cmd.Flags().StringVar(&presetPath, "preset", "", "TOML preset file with parameter values")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "PNG resolution in pixels per mm")
	cmd.Flags().Float64Var(&opts.StrokeWidth, "stroke", opts.StrokeWidth, "outline stroke width in mm")
	cmd.Flags().StringVar(&opts.Title, "title", opts.Title, "SVG document title")
	cmd.Flags().StringVar(&opts.Description, "desc", opts.Description, "SVG document description")

	return cmd
}

// parseFormats parses a comma-separated format string into a slice.
// If empty, defaults to ["svg"]. Surrounding whitespace and empty entries
// are dropped so "svg, png" works as expected.
func parseFormats(s string) []string {
	if s == "" {
		return []string{honeycomb.FormatSVG}
	}
	parts := strings.Split(s, ",")
	formats := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			formats = append(formats, p)
		}
	}
	if len(formats) == 0 {
		return []string{honeycomb.FormatSVG}
	}
	return formats
}

// layerOptions resolves the final options from defaults, the preset file,
// and explicit flags, in that order of precedence. flagOpts carries the flag
// values bound by newGenerateCmd; only flags the user actually set override
// the preset.
func layerOptions(cmd *cobra.Command, flagOpts honeycomb.Options, presetPath string) (honeycomb.Options, error) {
	if presetPath == "" {
		return flagOpts, nil
	}

	preset, err := honeycomb.LoadPreset(presetPath)
	if err != nil {
		return honeycomb.Options{}, err
	}

	merged := honeycomb.DefaultOptions()
	preset.Apply(&merged)

	flags := cmd.Flags()
	if flags.Changed("columns") {
		merged.Columns = flagOpts.Columns
	}
	if flags.Changed("rows") {
		merged.Rows = flagOpts.Rows
	}
	if flags.Changed("side") {
		merged.Side = flagOpts.Side
	}
	if flags.Changed("angle") {
		merged.Angle = flagOpts.Angle
	}
	if flags.Changed("distance") {
		merged.Distance = flagOpts.Distance
	}
	if flags.Changed("variant") {
		merged.Variant = flagOpts.Variant
	}
	if flags.Changed("format") {
		merged.Formats = flagOpts.Formats
	}
	if flags.Changed("scale") {
		merged.Scale = flagOpts.Scale
	}
	if flags.Changed("stroke") {
		merged.StrokeWidth = flagOpts.StrokeWidth
	}
	if flags.Changed("title") {
		merged.Title = flagOpts.Title
	}
	if flags.Changed("desc") {
		merged.Description = flagOpts.Description
	}
	return merged, nil
}

// runGenerate produces the honeycomb artifacts and writes them to files or
// stdout. The summary lines go to stdout only when writing files, so piped
// output stays clean.
func runGenerate(ctx context.Context, opts honeycomb.Options, output string) error {
	logger := loggerFromContext(ctx)
	opts.Logger = logger

	if output == stdoutPath && len(opts.Formats) > 1 {
		return errors.New(errors.ErrCodeInvalidFormat, "cannot write multiple formats to stdout")
	}

	prog := newProgress(logger)
	result, err := honeycomb.Generate(opts)
	if err != nil {
		return err
	}

	multi := len(opts.Formats) > 1
	paths := make([]string, 0, len(opts.Formats))
	for _, format := range opts.Formats {
		path := artifactPath(output, format, opts.Columns, opts.Rows, multi)
		if err := writeArtifact(path, result.Artifacts[format]); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Debugf("Wrote %s: %d bytes", path, len(result.Artifacts[format]))
		if path != stdoutPath {
			paths = append(paths, path)
		}
	}
	prog.done(fmt.Sprintf("Generated %d hexagons", result.Stats.Hexagons))

	if output == stdoutPath {
		return nil
	}

	printSuccess("Honeycomb generated")
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.Hexagons, result.Grid.Width, result.Grid.Height)
	return nil
}
