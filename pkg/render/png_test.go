package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/hexcomb/hexcomb/pkg/errors"
	"github.com/hexcomb/hexcomb/pkg/grid"
	"github.com/hexcomb/hexcomb/pkg/hex"
)

func TestRenderPNG(t *testing.T) {
	g := testGrid(t)

	data, err := RenderPNG(g)
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}

	// 40.64mm x 41.00mm at the default 4 px/mm.
	if dx := img.Bounds().Dx(); dx != 163 {
		t.Errorf("width = %d px, want 163", dx)
	}
	if dy := img.Bounds().Dy(); dy != 164 {
		t.Errorf("height = %d px, want 164", dy)
	}

	// The margin corner stays white; the outlines put dark pixels somewhere.
	r, g8, b, _ := img.At(0, 0).RGBA()
	if r != 0xffff || g8 != 0xffff || b != 0xffff {
		t.Errorf("corner pixel = %v, want white", img.At(0, 0))
	}
	dark := false
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y && !dark; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if r, _, _, _ := img.At(x, y).RGBA(); r < 0x8000 {
				dark = true
				break
			}
		}
	}
	if !dark {
		t.Error("image has no dark pixels, outlines were not drawn")
	}
}

func TestRenderPNGScale(t *testing.T) {
	g := testGrid(t)

	data, err := RenderPNG(g, WithScale(2))
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if dx, dy := img.Bounds().Dx(), img.Bounds().Dy(); dx != 82 || dy != 82 {
		t.Errorf("dimensions = %dx%d px, want 82x82", dx, dy)
	}
}

func TestRenderPNGInvalidScale(t *testing.T) {
	g := testGrid(t)

	for _, scale := range []float64{0, -2} {
		if _, err := RenderPNG(g, WithScale(scale)); !errors.Is(err, errors.ErrCodeInvalidScale) {
			t.Errorf("RenderPNG(scale=%v) code = %v, want %v", scale, errors.GetCode(err), errors.ErrCodeInvalidScale)
		}
	}
}

func TestRenderPNGEmptyGrid(t *testing.T) {
	g, err := grid.Build(grid.Params{
		Columns:  0,
		Rows:     0,
		Cell:     hex.Cell{Side: 10, Angle: 120},
		Variant:  hex.VariantCenter,
		Distance: 0,
	})
	if err != nil {
		t.Fatalf("grid.Build() error = %v", err)
	}

	data, err := RenderPNG(g)
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}

	// A degenerate canvas still yields a decodable single-pixel image.
	if dx, dy := img.Bounds().Dx(), img.Bounds().Dy(); dx != 1 || dy != 1 {
		t.Errorf("dimensions = %dx%d px, want 1x1", dx, dy)
	}
}
