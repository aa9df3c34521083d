package honeycomb

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/hexcomb/hexcomb/pkg/errors"
)

// Preset is a named parameter set loaded from a TOML file. Every field is
// optional; absent fields leave the target options untouched, which is why
// the scalar fields are pointers.
type Preset struct {
	Columns     *int     `toml:"columns"`
	Rows        *int     `toml:"rows"`
	Side        *float64 `toml:"side"`
	Angle       *float64 `toml:"angle"`
	Distance    *float64 `toml:"distance"`
	Variant     *string  `toml:"variant"`
	Formats     []string `toml:"formats"`
	Scale       *float64 `toml:"scale"`
	StrokeWidth *float64 `toml:"stroke_width"`
	Title       *string  `toml:"title"`
	Description *string  `toml:"description"`
}

// LoadPreset reads a TOML preset file. Unknown keys are rejected so typos
// surface as errors instead of silently falling back to defaults.
func LoadPreset(path string) (Preset, error) {
	var p Preset
	meta, err := toml.DecodeFile(path, &p)
	if err != nil {
		if os.IsNotExist(err) {
			return Preset{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "preset file %s", path)
		}
		return Preset{}, errors.Wrap(errors.ErrCodeInvalidPreset, err, "parsing preset %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Preset{}, errors.New(errors.ErrCodeInvalidPreset,
			"unknown keys in preset %s: %s", path, strings.Join(keys, ", "))
	}
	return p, nil
}

// Apply copies the preset's present fields onto opts. Values the preset does
// not set keep whatever opts already holds, so presets layer cleanly over
// [DefaultOptions] and under explicit flags.
func (p Preset) Apply(opts *Options) {
	if p.Columns != nil {
		opts.Columns = *p.Columns
	}
	if p.Rows != nil {
		opts.Rows = *p.Rows
	}
	if p.Side != nil {
		opts.Side = *p.Side
	}
	if p.Angle != nil {
		opts.Angle = *p.Angle
	}
	if p.Distance != nil {
		opts.Distance = *p.Distance
	}
	if p.Variant != nil {
		opts.Variant = *p.Variant
	}
	if len(p.Formats) > 0 {
		opts.Formats = p.Formats
	}
	if p.Scale != nil {
		opts.Scale = *p.Scale
	}
	if p.StrokeWidth != nil {
		opts.StrokeWidth = *p.StrokeWidth
	}
	if p.Title != nil {
		opts.Title = *p.Title
	}
	if p.Description != nil {
		opts.Description = *p.Description
	}
}
