package render

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo/float"

	"github.com/hexcomb/hexcomb/pkg/grid"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title       string
	description string
	strokeWidth float64
}

// WithTitle replaces the document title.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// WithDescription replaces the document description.
func WithDescription(d string) SVGOption { return func(r *svgRenderer) { r.description = d } }

// WithStroke sets the outline stroke width in millimeters (default 1).
func WithStroke(w float64) SVGOption { return func(r *svgRenderer) { r.strokeWidth = w } }

// WithGridSize fills the description with the tiling's column and row counts.
func WithGridSize(columns, rows int) SVGOption {
	return func(r *svgRenderer) {
		r.description = fmt.Sprintf("Generated honeycomb pattern with %d columns and %d rows", columns, rows)
	}
}

// RenderSVG serializes the grid as a standalone SVG document. The canvas is
// sized in millimeters with a matching viewBox, so user units stay
// millimeter-accurate for cutting and printing. Each hexagon becomes one
// polygon carrying the "hexagon" class; its stroke styling lives in a single
// stylesheet block.
//
// Coordinates are written with two decimals. Output is deterministic: the
// same grid and options produce byte-identical documents.
func RenderSVG(g grid.Grid, opts ...SVGOption) []byte {
	r := svgRenderer{
		title:       "Honeycomb Pattern",
		description: "Generated honeycomb pattern",
		strokeWidth: 1,
	}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startunit(g.Width, g.Height, "mm", fmt.Sprintf(`viewBox="0 0 %.2f %.2f"`, g.Width, g.Height))
	canvas.Title(r.title)
	canvas.Desc(r.description)
	canvas.Style("text/css", fmt.Sprintf(".hexagon { fill: none; stroke: black; stroke-width: %g; }", r.strokeWidth))

	for _, hexagon := range g.Hexagons {
		xs, ys := hexagon.Points()
		canvas.Polygon(xs, ys, `class="hexagon"`)
	}

	canvas.End()
	return buf.Bytes()
}
