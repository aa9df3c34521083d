// Package hex computes hexagon vertex geometry for honeycomb tilings.
//
// # Overview
//
// Every hexagon in a tiling shares one shape, described by a [Cell]: the
// side length in millimeters and the interior angle (in degrees) at the two
// pointed tips. From those two numbers the package derives the half-angle
// projections
//
//	alpha = (180 - Angle) / 2        (converted to radians once)
//	dx    = Side * cos(alpha)
//	dy    = Side * sin(alpha)
//
// and places six vertices so that every consecutive pair, including the
// closing last-to-first pair, is a side of length Side. At Angle = 120 the
// hexagon is regular with circumradius Side.
//
// # Variants
//
// Tilings differ in how a hexagon is oriented and which point of it serves
// as the anchor that grid layout positions. The closed set of supported
// conventions is modeled by [Variant]:
//
//   - [VariantCenter]: pointy-top, anchored at the geometric center
//   - [VariantTopPoint]: pointy-top, anchored at the top tip
//   - [VariantCorner]: flat-top, anchored at the top-left corner
//   - [VariantLeftPoint]: flat-top, anchored at the left tip
//
// Each variant is a pure vertex-derivation strategy; none depends on grid
// position. Pointy-top variants interlock by staggering rows, flat-top
// variants by staggering columns (see [Variant.Pointy]).
//
// # Usage
//
//	cell := hex.Cell{Side: 10, Angle: 120}
//	if err := cell.Validate(); err != nil {
//	    return err
//	}
//	h := hex.VariantCenter.Vertices(hex.Point{X: 20, Y: 20}, cell)
//	w, ht := hex.VariantCenter.Extents(cell)
//
// All functions are pure and allocation-light; coordinates follow the SVG
// convention (x right, y down) and vertices are emitted in clockwise screen
// order starting from the vertex nearest the anchor.
package hex
