package hex

import (
	"strings"

	"github.com/hexcomb/hexcomb/pkg/errors"
)

// Variant selects one of the orientation/anchor conventions for deriving a
// hexagon from its anchor point. The set is closed; grid layout logic is
// shared across all variants.
type Variant string

// Supported orientation/anchor variants.
const (
	// VariantCenter is a pointy-top hexagon anchored at its geometric
	// center. This is the default convention.
	VariantCenter Variant = "center"

	// VariantTopPoint is a pointy-top hexagon anchored at its top tip.
	VariantTopPoint Variant = "top-point"

	// VariantCorner is a flat-top hexagon anchored at the left end of its
	// top side.
	VariantCorner Variant = "corner"

	// VariantLeftPoint is a flat-top hexagon anchored at its left tip.
	VariantLeftPoint Variant = "left-point"
)

// variantOrder fixes the enumeration order for help output and docs.
var variantOrder = []Variant{VariantCenter, VariantTopPoint, VariantCorner, VariantLeftPoint}

// validVariants is the set of recognized variant names.
var validVariants = map[Variant]bool{
	VariantCenter:    true,
	VariantTopPoint:  true,
	VariantCorner:    true,
	VariantLeftPoint: true,
}

// Variants returns all supported variants in a fixed order.
func Variants() []Variant {
	out := make([]Variant, len(variantOrder))
	copy(out, variantOrder)
	return out
}

// ParseVariant converts a user-supplied name into a Variant.
// It returns a coded error listing the valid names on failure.
func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	if !validVariants[v] {
		names := make([]string, len(variantOrder))
		for i, k := range variantOrder {
			names[i] = string(k)
		}
		return "", errors.New(errors.ErrCodeInvalidVariant,
			"unknown variant %q (must be one of: %s)", s, strings.Join(names, ", "))
	}
	return v, nil
}

// String returns the variant name.
func (v Variant) String() string { return string(v) }

// Pointy reports whether the variant is pointy-top. Pointy-top tilings
// stagger alternate rows; flat-top tilings stagger alternate columns.
func (v Variant) Pointy() bool {
	return v == VariantCenter || v == VariantTopPoint
}

// Description returns a one-line human description of the variant's
// orientation, anchor and stagger axis.
func (v Variant) Description() string {
	switch v {
	case VariantCenter:
		return "pointy-top, anchored at the geometric center; alternate rows shift and shorten"
	case VariantTopPoint:
		return "pointy-top, anchored at the top tip; alternate rows shift and shorten"
	case VariantCorner:
		return "flat-top, anchored at the top-left corner; alternate columns shift and shorten"
	case VariantLeftPoint:
		return "flat-top, anchored at the left tip; alternate columns shift and shorten"
	default:
		return "unknown variant"
	}
}
