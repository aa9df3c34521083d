package honeycomb

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/hexcomb/hexcomb/pkg/errors"
	"github.com/hexcomb/hexcomb/pkg/grid"
	"github.com/hexcomb/hexcomb/pkg/hex"
)

// Default parameter values shared by the CLI and library callers.
const (
	// DefaultColumns is the number of cells per full row.
	DefaultColumns = 10

	// DefaultRows is the number of rows.
	DefaultRows = 8

	// DefaultSide is the hexagon side length in millimeters.
	DefaultSide = 50.0

	// DefaultAngle is the tip angle in degrees. 120 yields regular hexagons.
	DefaultAngle = 120.0

	// DefaultDistance is the gap between cells in millimeters.
	DefaultDistance = 2.0

	// DefaultScale is the PNG raster resolution in pixels per millimeter.
	DefaultScale = 4.0

	// DefaultStrokeWidth is the outline width in millimeters.
	DefaultStrokeWidth = 1.0
)

// DefaultVariant is the default orientation/anchor convention.
const DefaultVariant = hex.VariantCenter

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options contains all configuration for one generation run.
// The struct supports JSON serialization for host applications.
//
// Zero values for Columns, Rows and Distance are meaningful (an empty grid,
// a flush tessellation) and are never replaced by defaults; start from
// [DefaultOptions] to get the canonical parameter set.
type Options struct {
	// Grid parameters
	Columns  int     `json:"columns"`
	Rows     int     `json:"rows"`
	Side     float64 `json:"side,omitempty"`
	Angle    float64 `json:"angle,omitempty"`
	Distance float64 `json:"distance"`
	Variant  string  `json:"variant,omitempty"`

	// Render parameters
	Formats     []string `json:"formats,omitempty"`
	Scale       float64  `json:"scale,omitempty"`
	StrokeWidth float64  `json:"stroke_width,omitempty"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// DefaultOptions returns the canonical parameter set: a 10x8 grid of regular
// 50mm hexagons, 2mm apart, rendered as SVG.
func DefaultOptions() Options {
	return Options{
		Columns:     DefaultColumns,
		Rows:        DefaultRows,
		Side:        DefaultSide,
		Angle:       DefaultAngle,
		Distance:    DefaultDistance,
		Variant:     string(DefaultVariant),
		Formats:     []string{FormatSVG},
		Scale:       DefaultScale,
		StrokeWidth: DefaultStrokeWidth,
	}
}

// ValidateAndSetDefaults checks all fields and applies defaults where the
// zero value cannot be meant literally (Side, Angle, Variant, Formats,
// Scale, StrokeWidth, Logger). This method is idempotent - calling it
// multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Side == 0 {
		o.Side = DefaultSide
	}
	if o.Angle == 0 {
		o.Angle = DefaultAngle
	}
	if o.Variant == "" {
		o.Variant = string(DefaultVariant)
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.StrokeWidth == 0 {
		o.StrokeWidth = DefaultStrokeWidth
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	if err := (hex.Cell{Side: o.Side, Angle: o.Angle}).Validate(); err != nil {
		return err
	}
	if o.Distance < 0 {
		return errors.New(errors.ErrCodeInvalidDistance, "distance must be non-negative, got %v", o.Distance)
	}
	variant, err := hex.ParseVariant(o.Variant)
	if err != nil {
		return err
	}
	o.Variant = string(variant)
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidScale, "scale must be positive, got %v", o.Scale)
	}
	if o.StrokeWidth < 0 {
		return errors.New(errors.ErrCodeInvalidStroke, "stroke width must be positive, got %v", o.StrokeWidth)
	}

	o.validated = true
	return nil
}

// GridParams converts the options into layout parameters.
func (o Options) GridParams() grid.Params {
	return grid.Params{
		Columns:  o.Columns,
		Rows:     o.Rows,
		Cell:     hex.Cell{Side: o.Side, Angle: o.Angle},
		Variant:  hex.Variant(o.Variant),
		Distance: o.Distance,
	}
}
