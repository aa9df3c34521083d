package hex

import (
	"fmt"
	"math"
	"testing"
)

const geomTolerance = 1e-9

func TestVerticesSideLengths(t *testing.T) {
	anchor := Point{X: 50, Y: 50}
	angles := []float64{30, 60, 90, 120, 150, 179}

	for _, v := range Variants() {
		for _, angle := range angles {
			t.Run(fmt.Sprintf("%s/angle%.0f", v, angle), func(t *testing.T) {
				c := Cell{Side: 10, Angle: angle}
				hex := v.Vertices(anchor, c)
				for i, length := range hex.SideLengths() {
					if math.Abs(length-c.Side) > geomTolerance {
						t.Errorf("side %d length = %v, want %v", i, length, c.Side)
					}
				}
			})
		}
	}
}

func TestVerticesRegularHexagon(t *testing.T) {
	c := Cell{Side: 10, Angle: 120}
	hex := VariantCenter.Vertices(Point{}, c)

	// At 120 degrees every vertex sits on the circumcircle of radius Side.
	for i, p := range hex {
		if r := p.Dist(Point{}); math.Abs(r-c.Side) > geomTolerance {
			t.Errorf("vertex %d radius = %v, want %v", i, r, c.Side)
		}
	}
}

func TestVerticesCenterAnchor(t *testing.T) {
	anchor := Point{X: 12.5, Y: -7.25}
	angles := []float64{60, 90, 120, 150}

	for _, angle := range angles {
		t.Run(fmt.Sprintf("angle%.0f", angle), func(t *testing.T) {
			hex := VariantCenter.Vertices(anchor, Cell{Side: 10, Angle: angle})
			var centroid Point
			for _, p := range hex {
				centroid = centroid.Add(p)
			}
			centroid = centroid.Scale(1.0 / VertexCount)
			if centroid.Dist(anchor) > geomTolerance {
				t.Errorf("centroid = %v, want anchor %v", centroid, anchor)
			}
		})
	}
}

func TestVerticesAnchorIsFirstVertex(t *testing.T) {
	anchor := Point{X: 3, Y: 4}
	c := Cell{Side: 10, Angle: 120}

	for _, v := range []Variant{VariantTopPoint, VariantCorner, VariantLeftPoint} {
		t.Run(string(v), func(t *testing.T) {
			hex := v.Vertices(anchor, c)
			if hex[0] != anchor {
				t.Errorf("Vertices()[0] = %v, want %v", hex[0], anchor)
			}
		})
	}
}

func TestVerticesTipAngle(t *testing.T) {
	anchor := Point{X: 50, Y: 50}
	angles := []float64{30, 60, 90, 120, 150, 179}

	// Index of a pointed tip per variant; angles are measured there.
	tips := map[Variant]int{
		VariantCenter:    0,
		VariantTopPoint:  0,
		VariantCorner:    5,
		VariantLeftPoint: 0,
	}

	for _, v := range Variants() {
		for _, angle := range angles {
			t.Run(fmt.Sprintf("%s/angle%.0f", v, angle), func(t *testing.T) {
				hex := v.Vertices(anchor, Cell{Side: 10, Angle: angle})
				tip := tips[v]
				a := hex[(tip+1)%VertexCount].Sub(hex[tip])
				b := hex[(tip+VertexCount-1)%VertexCount].Sub(hex[tip])
				cos := (a.X*b.X + a.Y*b.Y) / (math.Hypot(a.X, a.Y) * math.Hypot(b.X, b.Y))
				got := math.Acos(cos) * 180 / math.Pi
				if math.Abs(got-angle) > 1e-6 {
					t.Errorf("tip angle = %v, want %v", got, angle)
				}
			})
		}
	}
}

func TestExtentsMatchBounds(t *testing.T) {
	anchor := Point{X: 50, Y: 50}
	angles := []float64{30, 90, 120, 150}

	for _, v := range Variants() {
		for _, angle := range angles {
			t.Run(fmt.Sprintf("%s/angle%.0f", v, angle), func(t *testing.T) {
				c := Cell{Side: 10, Angle: angle}
				hex := v.Vertices(anchor, c)
				min, max := hex.Bounds()
				w, h := v.Extents(c)
				if math.Abs((max.X-min.X)-w) > geomTolerance {
					t.Errorf("bounds width = %v, Extents width = %v", max.X-min.X, w)
				}
				if math.Abs((max.Y-min.Y)-h) > geomTolerance {
					t.Errorf("bounds height = %v, Extents height = %v", max.Y-min.Y, h)
				}
			})
		}
	}
}

func TestAnchorOffset(t *testing.T) {
	anchor := Point{X: 50, Y: 50}
	angles := []float64{30, 90, 120, 150}

	for _, v := range Variants() {
		for _, angle := range angles {
			t.Run(fmt.Sprintf("%s/angle%.0f", v, angle), func(t *testing.T) {
				c := Cell{Side: 10, Angle: angle}
				hex := v.Vertices(anchor, c)
				min, _ := hex.Bounds()
				got := anchor.Sub(min)
				want := v.AnchorOffset(c)
				if got.Dist(want) > geomTolerance {
					t.Errorf("anchor - bounds min = %v, AnchorOffset() = %v", got, want)
				}
			})
		}
	}
}

func TestPoints(t *testing.T) {
	hex := VariantTopPoint.Vertices(Point{X: 1, Y: 2}, Cell{Side: 10, Angle: 120})
	xs, ys := hex.Points()

	if len(xs) != VertexCount || len(ys) != VertexCount {
		t.Fatalf("Points() lengths = %d, %d, want %d", len(xs), len(ys), VertexCount)
	}
	for i, p := range hex {
		if xs[i] != p.X || ys[i] != p.Y {
			t.Errorf("Points()[%d] = (%v, %v), want %v", i, xs[i], ys[i], p)
		}
	}
}

func ExampleVariant_Vertices() {
	cell := Cell{Side: 10, Angle: 120}
	hex := VariantCenter.Vertices(Point{X: 10, Y: 10}, cell)
	for _, p := range hex {
		fmt.Printf("%.2f,%.2f\n", p.X, p.Y)
	}
	// Output:
	// 10.00,0.00
	// 18.66,5.00
	// 18.66,15.00
	// 10.00,20.00
	// 1.34,15.00
	// 1.34,5.00
}
