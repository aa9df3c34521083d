// Package render provides output format renderers for computed grids.
//
// # Overview
//
// A renderer transforms a [grid.Grid] into final output bytes. This package
// provides:
//
//   - SVG: millimeter-accurate vector output, the primary format
//   - PNG: in-process rasterization for previews
//   - JSON: grid data export for external tools
//
// # SVG Output
//
// [RenderSVG] produces a standalone SVG document sized in millimeters, with
// a title, a description, a stylesheet defining the hexagon outline class,
// and one polygon per cell:
//
//	data := render.RenderSVG(g,
//	    render.WithGridSize(10, 8),
//	    render.WithStroke(0.5),
//	)
//
// Output is deterministic: the same grid and options produce byte-identical
// documents.
//
// # PNG Output
//
// [RenderPNG] rasterizes the polygons directly, without an SVG detour or
// external converters. [WithScale] selects the resolution in pixels per
// millimeter.
//
// # JSON Output
//
// [RenderJSON] exports canvas dimensions, cell extents, pitches and the
// per-hexagon vertex lists as a pretty-printed document. Attach the
// generating parameters with [WithJSONParams] to make the file sufficient
// for reproducing the grid.
//
// [grid.Grid]: github.com/hexcomb/hexcomb/pkg/grid.Grid
package render
