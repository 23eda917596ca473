package termco

import "github.com/apparebit/prettypretty/pkg/color"

// EightBitColor is one of the 256 8-bit terminal colors: an ANSI color,
// a color of the embedded 6x6x6 RGB cube, or a gray gradient color. The
// interface is sealed; only the three types just named implement it.
type EightBitColor interface {
	// To8Bit returns the 8-bit index of this color.
	To8Bit() uint8

	isEightBitColor()
}

func (AnsiColor) isEightBitColor()    {}
func (EmbeddedRgb) isEightBitColor()  {}
func (GrayGradient) isEightBitColor() {}

// EightBitFrom8Bit converts the byte into an 8-bit color. Unlike the
// bounds-checked constructors of the component types, this conversion
// is total.
func EightBitFrom8Bit(value uint8) EightBitColor {
	switch {
	case value < 16:
		return AnsiColor(value)
	case value < 232:
		c, _ := EmbeddedRgbFrom8Bit(value)
		return c
	default:
		return GrayGradient(value - 232)
	}
}

// Colorant combines all color representations: the default color, the
// low-resolution terminal colors, and high-resolution colors. The
// interface is sealed; its implementations are [Default], [AnsiColor],
// [EmbeddedRgb], [GrayGradient], [Rgb], and [HiRes].
type Colorant interface {
	isColorant()
}

// Default marks the terminal's default foreground or background color.
// Which of the two it denotes depends on the layer it is used with.
type Default struct{}

// HiRes wraps a high-resolution color as a colorant.
type HiRes struct {
	Color color.Color
}

func (Default) isColorant()      {}
func (AnsiColor) isColorant()    {}
func (EmbeddedRgb) isColorant()  {}
func (GrayGradient) isColorant() {}
func (Rgb) isColorant()          {}
func (HiRes) isColorant()        {}

// ColorantFrom8Bit wraps the 8-bit color denoted by the byte as a
// colorant.
func ColorantFrom8Bit(value uint8) Colorant {
	return EightBitFrom8Bit(value).(Colorant)
}

// ColorantTo8Bit unwraps the 8-bit index of an ANSI, embedded RGB, or
// gray gradient colorant. It returns false for all other colorants.
func ColorantTo8Bit(colorant Colorant) (uint8, bool) {
	if c, ok := colorant.(EightBitColor); ok {
		return c.To8Bit(), true
	}
	return 0, false
}

// ColorantTo24Bit unwraps the 24-bit components of an embedded RGB,
// gray gradient, or true color colorant. It returns false for all other
// colorants.
func ColorantTo24Bit(colorant Colorant) ([3]uint8, bool) {
	switch c := colorant.(type) {
	case EmbeddedRgb:
		return c.To24Bit(), true
	case GrayGradient:
		return c.To24Bit(), true
	case Rgb:
		return c.Coordinates(), true
	default:
		return [3]uint8{}, false
	}
}

// IsDefault determines whether the colorant is the default color.
func IsDefault(colorant Colorant) bool {
	_, ok := colorant.(Default)
	return ok
}
