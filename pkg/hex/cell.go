package hex

import (
	"math"

	"github.com/hexcomb/hexcomb/pkg/errors"
)

// Cell holds the shape parameters shared by every hexagon in a tiling.
// Only position varies across a grid; Side and Angle never do.
type Cell struct {
	// Side is the length of each of the six sides in millimeters. Must be
	// positive.
	Side float64

	// Angle is the interior angle in degrees at the two pointed tips of the
	// hexagon, i.e. between its two adjacent sloped sides. Must lie in the
	// open interval (0, 180); the bounds collapse the hexagon into a line.
	// 120 yields a regular hexagon.
	Angle float64
}

// Validate checks the geometric preconditions before any vertex computation.
// It returns a coded error naming the offending parameter and value.
func (c Cell) Validate() error {
	if c.Angle <= 0 || c.Angle >= 180 {
		return errors.New(errors.ErrCodeInvalidAngle, "side angle must be in (0, 180) degrees, got %v", c.Angle)
	}
	if c.Side <= 0 {
		return errors.New(errors.ErrCodeInvalidSide, "side length must be positive, got %v", c.Side)
	}
	return nil
}

// Offsets returns the two projection magnitudes of a sloped side:
// dx = Side*cos(alpha) and dy = Side*sin(alpha), where alpha is the
// half-angle (180-Angle)/2 in radians. All vertex placement and extent
// computation derives from these two values.
func (c Cell) Offsets() (dx, dy float64) {
	alpha := (180 - c.Angle) / 2 * math.Pi / 180
	return c.Side * math.Cos(alpha), c.Side * math.Sin(alpha)
}
