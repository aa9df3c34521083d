// Package honeycomb provides the parameter-to-artifact pipeline.
//
// This package implements the complete layout → render pipeline shared by
// the CLI and host applications. By centralizing this logic, the same
// parameters yield the same artifacts regardless of entry point.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: Compute hexagon positions and canvas dimensions
//  2. Render: Generate output in the requested formats (SVG, PNG, JSON)
//
// # Usage
//
// Start from the canonical defaults, adjust, and generate:
//
//	opts := honeycomb.DefaultOptions()
//	opts.Columns = 4
//	opts.Rows = 3
//	opts.Formats = []string{honeycomb.FormatSVG, honeycomb.FormatPNG}
//	result, err := honeycomb.Generate(opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts[honeycomb.FormatSVG]
//
// Parameters can also come from a TOML preset file:
//
//	preset, err := honeycomb.LoadPreset("examples/presets/coaster.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	opts := honeycomb.DefaultOptions()
//	preset.Apply(&opts)
package honeycomb

import (
	"fmt"
	"time"

	"github.com/hexcomb/hexcomb/pkg/errors"
	"github.com/hexcomb/hexcomb/pkg/grid"
	"github.com/hexcomb/hexcomb/pkg/render"
)

// Result contains the outputs of a generation run.
type Result struct {
	// Grid is the computed tiling, including canvas and cell dimensions.
	Grid grid.Grid

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains size and timing information.
	Stats Stats
}

// Stats contains generation statistics.
type Stats struct {
	Hexagons   int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// Generate runs the layout → render pipeline for the given options.
// Identical options produce byte-identical artifacts.
func Generate(opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	layoutStart := time.Now()
	g, err := grid.Build(opts.GridParams())
	if err != nil {
		return nil, err
	}

	result := &Result{
		Grid:      g,
		Artifacts: make(map[string][]byte, len(opts.Formats)),
	}
	result.Stats.Hexagons = g.Count()
	result.Stats.LayoutTime = time.Since(layoutStart)

	opts.Logger.Info("computed layout",
		"hexagons", g.Count(),
		"cell", fmt.Sprintf("%.2fx%.2fmm", g.CellWidth, g.CellHeight),
		"canvas", fmt.Sprintf("%.2fx%.2fmm", g.Width, g.Height),
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	for _, format := range opts.Formats {
		data, err := renderFormat(g, format, opts)
		if err != nil {
			return nil, err
		}
		result.Artifacts[format] = data
	}
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered artifacts",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

func renderFormat(g grid.Grid, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return render.RenderSVG(g, opts.svgOptions()...), nil
	case FormatPNG:
		return render.RenderPNG(g,
			render.WithScale(opts.Scale),
			render.WithPNGStroke(opts.StrokeWidth))
	case FormatJSON:
		return render.RenderJSON(g, render.WithJSONParams(opts.GridParams()))
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, json)", format)
	}
}

// svgOptions translates the options into SVG render options. Explicit title
// and description override the generated defaults.
func (o Options) svgOptions() []render.SVGOption {
	svgOpts := []render.SVGOption{
		render.WithGridSize(o.Columns, o.Rows),
		render.WithStroke(o.StrokeWidth),
	}
	if o.Title != "" {
		svgOpts = append(svgOpts, render.WithTitle(o.Title))
	}
	if o.Description != "" {
		svgOpts = append(svgOpts, render.WithDescription(o.Description))
	}
	return svgOpts
}
