package termco

import (
	"fmt"

	"github.com/apparebit/prettypretty/pkg/color"
)

// Rgb is a true color, i.e., a 24-bit terminal color with one byte per
// component.
type Rgb [3]uint8

// NewRgb creates a true color from its components.
func NewRgb(r, g, b uint8) Rgb {
	return Rgb{r, g, b}
}

// RgbFromColor converts a high-resolution color to a true color by
// converting to sRGB, gamut-mapping, and discretizing the coordinates.
func RgbFromColor(c color.Color) Rgb {
	return Rgb(c.To(color.SRGB).ToGamut().To24Bit())
}

// ToColor converts this true color to a high-resolution color.
func (c Rgb) ToColor() color.Color {
	return color.From24Bit(c[0], c[1], c[2])
}

// Coordinates returns the components of this true color.
func (c Rgb) Coordinates() [3]uint8 {
	return [3]uint8(c)
}

// WeightedDistance computes the red-mean weighted Euclidean distance
// between this and the other true color.
func (c Rgb) WeightedDistance(other Rgb) uint32 {
	r1, g1, b1 := int32(c[0]), int32(c[1]), int32(c[2])
	r2, g2, b2 := int32(other[0]), int32(other[1]), int32(other[2])

	rSum := r1 + r2
	rDelta := r1 - r2
	gDelta := g1 - g2
	bDelta := b1 - b2

	r := (2*512 + rSum) * rDelta * rDelta
	g := 4 * gDelta * gDelta * (1 << 8)
	b := (2*767 - rSum) * bDelta * bDelta

	return uint32(r + g + b)
}

// String formats this true color in hashed hexadecimal notation.
func (c Rgb) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}
