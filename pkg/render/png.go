package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/llgcode/draw2d/draw2dimg"

	"github.com/hexcomb/hexcomb/pkg/errors"
	"github.com/hexcomb/hexcomb/pkg/grid"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale       float64
	strokeWidth float64
}

// WithScale sets the raster resolution in pixels per millimeter (default 4).
func WithScale(s float64) PNGOption { return func(r *pngRenderer) { r.scale = s } }

// WithPNGStroke sets the outline stroke width in millimeters (default 1).
func WithPNGStroke(w float64) PNGOption { return func(r *pngRenderer) { r.strokeWidth = w } }

// RenderPNG rasterizes the grid as black outlines on a white background.
// The polygons are drawn in-process, so no external converter is needed.
func RenderPNG(g grid.Grid, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 4, strokeWidth: 1}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidScale, "scale must be positive, got %v", r.scale)
	}

	w := int(math.Ceil(g.Width * r.scale))
	h := int(math.Ceil(g.Height * r.scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	gc := draw2dimg.NewGraphicContext(img)
	gc.SetFillColor(color.White)
	gc.Clear()

	gc.SetStrokeColor(color.Black)
	gc.SetLineWidth(r.strokeWidth * r.scale)
	for _, hexagon := range g.Hexagons {
		gc.BeginPath()
		gc.MoveTo(hexagon[0].X*r.scale, hexagon[0].Y*r.scale)
		for _, p := range hexagon[1:] {
			gc.LineTo(p.X*r.scale, p.Y*r.scale)
		}
		gc.Close()
		gc.Stroke()
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encoding png")
	}
	return buf.Bytes(), nil
}
