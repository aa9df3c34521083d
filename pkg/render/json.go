package render

import (
	"encoding/json"

	"github.com/hexcomb/hexcomb/pkg/errors"
	"github.com/hexcomb/hexcomb/pkg/grid"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	params *grid.Params
}

// WithJSONParams records the generating parameters in the output, so the
// document alone suffices to rebuild the identical grid.
func WithJSONParams(p grid.Params) JSONOption {
	return func(r *jsonRenderer) { r.params = &p }
}

type jsonOutput struct {
	Params     *jsonParams `json:"params,omitempty"`
	Width      float64     `json:"width_mm"`
	Height     float64     `json:"height_mm"`
	CellWidth  float64     `json:"cell_width_mm"`
	CellHeight float64     `json:"cell_height_mm"`
	PitchX     float64     `json:"pitch_x_mm"`
	PitchY     float64     `json:"pitch_y_mm"`
	Count      int         `json:"count"`
	Hexagons   []jsonHex   `json:"hexagons"`
}

type jsonParams struct {
	Columns  int     `json:"columns"`
	Rows     int     `json:"rows"`
	Side     float64 `json:"side_mm"`
	Angle    float64 `json:"angle_deg"`
	Distance float64 `json:"distance_mm"`
	Variant  string  `json:"variant"`
}

type jsonHex struct {
	Points []jsonPoint `json:"points"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RenderJSON exports the grid as a pretty-printed JSON document: canvas and
// cell dimensions, pitches, and the vertex list of every hexagon in layout
// order. Key order is fixed by the document structs, so output is
// deterministic.
func RenderJSON(g grid.Grid, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:      g.Width,
		Height:     g.Height,
		CellWidth:  g.CellWidth,
		CellHeight: g.CellHeight,
		PitchX:     g.PitchX,
		PitchY:     g.PitchY,
		Count:      g.Count(),
		Hexagons:   buildJSONHexagons(g),
	}
	if r.params != nil {
		out.Params = &jsonParams{
			Columns:  r.params.Columns,
			Rows:     r.params.Rows,
			Side:     r.params.Cell.Side,
			Angle:    r.params.Cell.Angle,
			Distance: r.params.Distance,
			Variant:  string(r.params.Variant),
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encoding json")
	}
	return data, nil
}

func buildJSONHexagons(g grid.Grid) []jsonHex {
	hexagons := make([]jsonHex, 0, len(g.Hexagons))
	for _, h := range g.Hexagons {
		points := make([]jsonPoint, len(h))
		for i, p := range h {
			points[i] = jsonPoint{X: p.X, Y: p.Y}
		}
		hexagons = append(hexagons, jsonHex{Points: points})
	}
	return hexagons
}
