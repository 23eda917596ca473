package termco

import "github.com/apparebit/prettypretty/pkg/color"

// GrayGradient is a color of the 24-step gray gradient embedded in
// 8-bit terminal colors, with levels ranging from 0 to 23 and 8-bit
// indexes ranging from 232 to 255.
type GrayGradient uint8

// NewGrayGradient creates a gray gradient color from its level, which
// must range from 0 to 23.
func NewGrayGradient(level uint8) (GrayGradient, error) {
	if 24 <= level {
		return 0, outOfBounds(level, 0, 23)
	}
	return GrayGradient(level), nil
}

// MustGrayGradient is like [NewGrayGradient] but panics on an invalid
// level. It is intended for color literals known to be valid.
func MustGrayGradient(level uint8) GrayGradient {
	c, err := NewGrayGradient(level)
	if err != nil {
		panic(err)
	}
	return c
}

// GrayGradientFrom8Bit instantiates a gray gradient color from its
// 8-bit index, which must range from 232 to 255.
func GrayGradientFrom8Bit(value uint8) (GrayGradient, error) {
	if value < 232 {
		return 0, outOfBounds(value, 232, 255)
	}
	return GrayGradient(value - 232), nil
}

// Level returns the gray level, which ranges from 0 to 23.
func (c GrayGradient) Level() uint8 {
	return uint8(c)
}

// To8Bit returns the 8-bit index of this gray gradient color.
func (c GrayGradient) To8Bit() uint8 {
	return 232 + uint8(c)
}

// To24Bit converts this gray gradient color to 24-bit components.
func (c GrayGradient) To24Bit() [3]uint8 {
	level := 8 + 10*uint8(c)
	return [3]uint8{level, level, level}
}

// ToRgb converts this gray gradient color to a true color.
func (c GrayGradient) ToRgb() Rgb {
	return Rgb(c.To24Bit())
}

// ToColor converts this gray gradient color to a high-resolution color.
func (c GrayGradient) ToColor() color.Color {
	components := c.To24Bit()
	return color.From24Bit(components[0], components[1], components[2])
}
