// Package pkg provides the core libraries for hexcomb honeycomb generation.
//
// # Overview
//
// Hexcomb turns a handful of parameters (side length, tip angle, grid size,
// cell spacing) into staggered hexagonal tilings sized in millimeters, ready
// for laser cutting or CNC work. The pkg directory is organized into four
// main areas:
//
//  1. [hex] - Hexagon geometry (cells, variants, vertex computation)
//  2. [grid] - Staggered grid layout (pitch, margins, canvas size)
//  3. [render] - Output formats (SVG, PNG, JSON)
//  4. [honeycomb] - Orchestration (options, presets, generation pipeline)
//
// # Architecture
//
// The typical data flow through hexcomb:
//
//	Options / TOML preset
//	         ↓
//	    [hex] package (cell geometry + variant vertices)
//	         ↓
//	    [grid] package (staggered placement + dimensions)
//	         ↓
//	    [render] package (SVG, PNG, JSON artifacts)
//
// # Quick Start
//
// Generate a honeycomb and write the SVG:
//
//	import "github.com/hexcomb/hexcomb/pkg/honeycomb"
//
//	opts := honeycomb.DefaultOptions()
//	opts.Columns = 12
//	opts.Rows = 9
//	opts.Side = 25
//
//	result, err := honeycomb.Generate(opts)
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("honeycomb_12x9.svg", result.Artifacts[honeycomb.FormatSVG], 0o644)
//
// # Main Packages
//
// [hex] - Hexagon geometry. A [hex.Cell] pairs a side length with the tip
// angle (120 degrees yields regular hexagons); a [hex.Variant] selects one
// of the four orientation/anchor conventions (center, top-point, corner,
// left-point).
//
// [grid] - Staggered layout. [grid.Build] places cells with odd lines offset
// by half a pitch and carrying one fewer cell, and reports the exact canvas
// and pitch dimensions.
//
// [render] - Artifact encoding. [render.RenderSVG] produces millimeter-unit
// documents with one polygon per cell, [render.RenderPNG] rasterizes at a
// configurable scale, and [render.RenderJSON] exports dimensions and vertex
// coordinates for host applications.
//
// [honeycomb] - The high-level entry point. [honeycomb.Options] with
// validation and defaults, [honeycomb.Preset] TOML files, and
// [honeycomb.Generate] running layout plus all requested renders.
//
// [errors] - Coded errors shared by all packages, with stable codes suitable
// for programmatic handling.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/grid/...     # Specific package
//	go test -run Example       # Examples only
//
// [hex]: https://pkg.go.dev/github.com/hexcomb/hexcomb/pkg/hex
// [hex.Cell]: https://pkg.go.dev/github.com/hexcomb/hexcomb/pkg/hex#Cell
// [hex.Variant]: https://pkg.go.dev/github.com/hexcomb/hexcomb/pkg/hex#Variant
// [grid]: https://pkg.go.dev/github.com/hexcomb/hexcomb/pkg/grid
// [grid.Build]: https://pkg.go.dev/github.com/hexcomb/hexcomb/pkg/grid#Build
// [render]: https://pkg.go.dev/github.com/hexcomb/hexcomb/pkg/render
// [render.RenderSVG]: https://pkg.go.dev/github.com/hexcomb/hexcomb/pkg/render#RenderSVG
// [render.RenderPNG]: https://pkg.go.dev/github.com/hexcomb/hexcomb/pkg/render#RenderPNG
// [render.RenderJSON]: https://pkg.go.dev/github.com/hexcomb/hexcomb/pkg/render#RenderJSON
// [honeycomb]: https://pkg.go.dev/github.com/hexcomb/hexcomb/pkg/honeycomb
// [honeycomb.Options]: https://pkg.go.dev/github.com/hexcomb/hexcomb/pkg/honeycomb#Options
// [honeycomb.Preset]: https://pkg.go.dev/github.com/hexcomb/hexcomb/pkg/honeycomb#Preset
// [honeycomb.Generate]: https://pkg.go.dev/github.com/hexcomb/hexcomb/pkg/honeycomb#Generate
// [errors]: https://pkg.go.dev/github.com/hexcomb/hexcomb/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/hexcomb/hexcomb/pkg/buildinfo
package pkg
