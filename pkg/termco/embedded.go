package termco

import "github.com/apparebit/prettypretty/pkg/color"

// embeddedRamp maps a component of the 6x6x6 RGB cube embedded in 8-bit
// terminal colors to its 24-bit value.
var embeddedRamp = [6]uint8{0, 95, 135, 175, 215, 255}

// EmbeddedRgb is a color of the 6x6x6 RGB cube embedded in 8-bit
// terminal colors, with component values ranging from 0 to 5 and 8-bit
// indexes ranging from 16 to 231.
type EmbeddedRgb [3]uint8

// NewEmbeddedRgb creates an embedded RGB color from its components,
// which must range from 0 to 5.
func NewEmbeddedRgb(r, g, b uint8) (EmbeddedRgb, error) {
	for _, c := range []uint8{r, g, b} {
		if 6 <= c {
			return EmbeddedRgb{}, outOfBounds(c, 0, 5)
		}
	}
	return EmbeddedRgb{r, g, b}, nil
}

// MustEmbeddedRgb is like [NewEmbeddedRgb] but panics on invalid
// components. It is intended for color literals known to be valid.
func MustEmbeddedRgb(r, g, b uint8) EmbeddedRgb {
	c, err := NewEmbeddedRgb(r, g, b)
	if err != nil {
		panic(err)
	}
	return c
}

// EmbeddedRgbFrom8Bit instantiates an embedded RGB color from its 8-bit
// index, which must range from 16 to 231.
func EmbeddedRgbFrom8Bit(value uint8) (EmbeddedRgb, error) {
	if value < 16 || 231 < value {
		return EmbeddedRgb{}, outOfBounds(value, 16, 231)
	}

	b := value - 16
	r := b / 36
	b -= r * 36
	g := b / 6
	b -= g * 6
	return EmbeddedRgb{r, g, b}, nil
}

// To8Bit returns the 8-bit index of this embedded RGB color.
func (c EmbeddedRgb) To8Bit() uint8 {
	return 16 + 36*c[0] + 6*c[1] + c[2]
}

// To24Bit converts this embedded RGB color to 24-bit components.
func (c EmbeddedRgb) To24Bit() [3]uint8 {
	return [3]uint8{embeddedRamp[c[0]], embeddedRamp[c[1]], embeddedRamp[c[2]]}
}

// ToRgb converts this embedded RGB color to a true color.
func (c EmbeddedRgb) ToRgb() Rgb {
	return Rgb(c.To24Bit())
}

// ToColor converts this embedded RGB color to a high-resolution color.
func (c EmbeddedRgb) ToColor() color.Color {
	components := c.To24Bit()
	return color.From24Bit(components[0], components[1], components[2])
}

// Coordinates returns the components of this embedded RGB color.
func (c EmbeddedRgb) Coordinates() [3]uint8 {
	return [3]uint8(c)
}
