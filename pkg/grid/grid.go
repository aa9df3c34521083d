// Package grid arranges hexagonal cells into a staggered honeycomb tiling
// and sizes the canvas that holds it.
//
// Lines of cells (rows for pointy-top variants, columns for flat-top ones)
// interlock: odd lines shift by half the in-line pitch and carry one cell
// fewer, so their tips nest into the gaps of neighboring lines. Derived
// dimensions are returned on the Grid rather than logged, so callers decide
// how to surface them.
package grid

import (
	"math"

	"github.com/hexcomb/hexcomb/pkg/errors"
	"github.com/hexcomb/hexcomb/pkg/hex"
)

// Params describes one tiling request. All lengths are in millimeters.
type Params struct {
	// Columns and Rows count the cells along each axis on full lines.
	// Staggered lines carry one cell fewer. Non-positive values yield an
	// empty grid, not an error.
	Columns int
	Rows    int

	// Cell is the shape shared by every hexagon in the tiling.
	Cell hex.Cell

	// Variant selects the orientation and anchor convention. Empty selects
	// hex.VariantCenter.
	Variant hex.Variant

	// Distance is the minimum gap between neighboring cell outlines and the
	// margin between the tiling and the canvas border. Must be non-negative.
	Distance float64
}

// Grid is a computed tiling: the hexagons in layout order plus the derived
// dimensions a renderer or caller needs. All lengths are in millimeters.
type Grid struct {
	// Hexagons holds the vertex lists in layout order: row-major for
	// pointy-top variants, column-major for flat-top ones.
	Hexagons []hex.Hexagon

	// Width and Height span the smallest canvas that holds every vertex
	// plus a Distance margin on each border.
	Width  float64
	Height float64

	// CellWidth and CellHeight are the bounding-box extents of one cell.
	CellWidth  float64
	CellHeight float64

	// PitchX and PitchY are the spacings between neighboring cell bounding
	// boxes along each axis, gap included.
	PitchX float64
	PitchY float64
}

// Count returns the number of hexagons in the grid.
func (g Grid) Count() int { return len(g.Hexagons) }

// Build computes the tiling described by p. It validates the cell shape,
// the distance and the variant before any layout work and returns coded
// errors on failure.
//
// Build is pure: identical params produce identical grids, and every call
// allocates a fresh hexagon slice.
func Build(p Params) (Grid, error) {
	if err := p.Cell.Validate(); err != nil {
		return Grid{}, err
	}
	if p.Distance < 0 {
		return Grid{}, errors.New(errors.ErrCodeInvalidDistance, "distance must be non-negative, got %v", p.Distance)
	}
	name := string(p.Variant)
	if name == "" {
		name = string(hex.VariantCenter)
	}
	variant, err := hex.ParseVariant(name)
	if err != nil {
		return Grid{}, err
	}

	_, dy := p.Cell.Offsets()
	cellW, cellH := variant.Extents(p.Cell)
	anchorOff := variant.AnchorOffset(p.Cell)
	d := p.Distance

	// Along a line, cells sit one extent plus one gap apart. Across lines,
	// the interlocking pitch is 3/4 of the cross extent, clamped up to
	// Side+dy so the sloped sides of adjacent lines keep their gap once
	// Angle exceeds 120 degrees. At 120 the two terms coincide.
	var pitchX, pitchY float64
	if variant.Pointy() {
		pitchX = cellW + d
		pitchY = math.Max(0.75*cellH, p.Cell.Side+dy) + d
	} else {
		pitchX = math.Max(0.75*cellW, p.Cell.Side+dy) + d
		pitchY = cellH + d
	}

	g := Grid{
		CellWidth:  cellW,
		CellHeight: cellH,
		PitchX:     pitchX,
		PitchY:     pitchY,
	}

	if p.Columns <= 0 || p.Rows <= 0 {
		g.Hexagons = []hex.Hexagon{}
		g.Width = 2 * d
		g.Height = 2 * d
		return g, nil
	}

	total := p.Rows * p.Columns
	if variant.Pointy() {
		total -= p.Rows / 2
	} else {
		total -= p.Columns / 2
	}
	g.Hexagons = make([]hex.Hexagon, 0, total)

	// The first cell's bounding box starts one Distance in on both axes;
	// the canvas closes with the same margin after the last vertex.
	maxX, maxY := d, d
	place := func(bboxX, bboxY float64) {
		anchor := hex.Point{X: bboxX + anchorOff.X, Y: bboxY + anchorOff.Y}
		hexagon := variant.Vertices(anchor, p.Cell)
		g.Hexagons = append(g.Hexagons, hexagon)
		_, hi := hexagon.Bounds()
		maxX = math.Max(maxX, hi.X)
		maxY = math.Max(maxY, hi.Y)
	}

	if variant.Pointy() {
		for row := 0; row < p.Rows; row++ {
			cells, shift := lineLayout(row, p.Columns, pitchX)
			for col := 0; col < cells; col++ {
				place(d+float64(col)*pitchX+shift, d+float64(row)*pitchY)
			}
		}
	} else {
		for col := 0; col < p.Columns; col++ {
			cells, shift := lineLayout(col, p.Rows, pitchY)
			for row := 0; row < cells; row++ {
				place(d+float64(col)*pitchX, d+float64(row)*pitchY+shift)
			}
		}
	}

	g.Width = maxX + d
	g.Height = maxY + d
	return g, nil
}

// lineLayout returns the cell count and leading shift for line i. Odd lines
// shift by half the in-line pitch and drop their last cell so they stay
// inside the even lines' span.
func lineLayout(i, cells int, pitch float64) (int, float64) {
	if i%2 == 1 {
		return cells - 1, pitch / 2
	}
	return cells, 0
}
