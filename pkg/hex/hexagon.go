package hex

import "math"

// VertexCount is the number of vertices of a hexagon.
const VertexCount = 6

// Hexagon is the ordered vertex list of one tile, clockwise in screen
// coordinates. Hexagons are derived values; they carry no identity beyond
// their coordinates.
type Hexagon [VertexCount]Point

// Bounds returns the axis-aligned bounding box of the hexagon.
func (h Hexagon) Bounds() (min, max Point) {
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}
	for _, p := range h {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// SideLengths returns the six side lengths in vertex order, including the
// closing side from the last vertex back to the first.
func (h Hexagon) SideLengths() [VertexCount]float64 {
	var out [VertexCount]float64
	for i := range h {
		out[i] = h[i].Dist(h[(i+1)%VertexCount])
	}
	return out
}

// Points returns the vertex coordinates as parallel x and y slices, the
// shape polygon serializers consume.
func (h Hexagon) Points() (xs, ys []float64) {
	xs = make([]float64, VertexCount)
	ys = make([]float64, VertexCount)
	for i, p := range h {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}

// Vertices derives the six vertices of a hexagon from its anchor point.
// The cell must satisfy [Cell.Validate]; the bounds of (0, 180) for Angle
// keep the result convex and every side of length Side.
//
// Vertex order is clockwise in screen coordinates (y down), starting at the
// vertex the variant anchors to (the top tip for pointy variants, the
// anchor corner or left tip for flat variants; VariantCenter starts at the
// top tip).
func (v Variant) Vertices(anchor Point, c Cell) Hexagon {
	dx, dy := c.Offsets()
	side := c.Side

	switch v {
	case VariantTopPoint:
		return Hexagon{
			anchor,
			{anchor.X + dx, anchor.Y + dy},
			{anchor.X + dx, anchor.Y + dy + side},
			{anchor.X, anchor.Y + 2*dy + side},
			{anchor.X - dx, anchor.Y + dy + side},
			{anchor.X - dx, anchor.Y + dy},
		}
	case VariantCorner:
		return Hexagon{
			anchor,
			{anchor.X + side, anchor.Y},
			{anchor.X + side + dy, anchor.Y + dx},
			{anchor.X + side, anchor.Y + 2*dx},
			{anchor.X, anchor.Y + 2*dx},
			{anchor.X - dy, anchor.Y + dx},
		}
	case VariantLeftPoint:
		return Hexagon{
			anchor,
			{anchor.X + dy, anchor.Y - dx},
			{anchor.X + dy + side, anchor.Y - dx},
			{anchor.X + 2*dy + side, anchor.Y},
			{anchor.X + dy + side, anchor.Y + dx},
			{anchor.X + dy, anchor.Y + dx},
		}
	default: // VariantCenter
		half := side / 2
		return Hexagon{
			{anchor.X, anchor.Y - half - dy},
			{anchor.X + dx, anchor.Y - half},
			{anchor.X + dx, anchor.Y + half},
			{anchor.X, anchor.Y + half + dy},
			{anchor.X - dx, anchor.Y + half},
			{anchor.X - dx, anchor.Y - half},
		}
	}
}

// Extents returns the width and height of the hexagon's bounding box.
// The same trigonometry as [Variant.Vertices] backs both, so layout spacing
// and vertex positions always agree.
func (v Variant) Extents(c Cell) (w, h float64) {
	dx, dy := c.Offsets()
	if v.Pointy() {
		return 2 * dx, c.Side + 2*dy
	}
	return c.Side + 2*dy, 2 * dx
}

// AnchorOffset returns the position of the variant's anchor point relative
// to the top-left corner of the hexagon's bounding box. Grid layout places
// bounding boxes and derives anchors by adding this offset.
func (v Variant) AnchorOffset(c Cell) Point {
	dx, dy := c.Offsets()
	switch v {
	case VariantTopPoint:
		return Point{dx, 0}
	case VariantCorner:
		return Point{dy, 0}
	case VariantLeftPoint:
		return Point{0, dx}
	default: // VariantCenter
		return Point{dx, c.Side/2 + dy}
	}
}
