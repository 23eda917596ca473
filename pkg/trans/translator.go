package trans

import (
	"math"

	"github.com/apparebit/prettypretty/pkg/color"
	"github.com/apparebit/prettypretty/pkg/style"
	"github.com/apparebit/prettypretty/pkg/termco"
	"github.com/apparebit/prettypretty/pkg/theme"
)

// Translator translates between high-resolution colors and the
// low-resolution terminal colors of a specific theme.
//
// A translator precomputes the candidate colors for downsampling when
// created and is immutable thereafter, which makes it safe for
// concurrent use. Since it incorporates the theme colors, an
// application should create a new translator when the theme changes.
type Translator struct {
	theme   theme.Theme
	hues    *hueLightnessTable
	version color.OkVersion
	// Candidate colors for matching, pre-converted to the Cartesian
	// Oklab variation of the version.
	ansi     color.Candidates
	eightBit color.Candidates
}

// New creates a translator for the given Oklab version and theme.
func New(version color.OkVersion, t theme.Theme) *Translator {
	ansi := make([]color.Color, 16)
	for _, c := range termco.AnsiColors() {
		ansi[c.To8Bit()] = t.Ansi(c)
	}

	eightBit := make([]color.Color, 256)
	copy(eightBit, ansi)
	for index := 16; index <= 231; index++ {
		embedded, _ := termco.EmbeddedRgbFrom8Bit(uint8(index))
		eightBit[index] = embedded.ToColor()
	}
	for index := 232; index <= 255; index++ {
		gray, _ := termco.GrayGradientFrom8Bit(uint8(index))
		eightBit[index] = gray.ToColor()
	}

	return &Translator{
		theme:    t,
		hues:     newHueLightnessTable(t),
		version:  version,
		ansi:     color.PrepareCandidates(ansi, version),
		eightBit: color.PrepareCandidates(eightBit, version),
	}
}

// Theme returns this translator's theme.
func (t *Translator) Theme() theme.Theme {
	return t.theme
}

// Version returns the Oklab version of this translator's comparison
// space.
func (t *Translator) Version() color.OkVersion {
	return t.version
}

// IsDarkTheme determines whether this translator's theme is a dark
// theme, i.e., whether the default foreground color has a larger
// luminance than the default background color. The Y coordinate of XYZ
// is that luminance.
func (t *Translator) IsDarkTheme() bool {
	yf := t.theme.Foreground().To(color.XYZ).Coordinates()[1]
	yb := t.theme.Background().To(color.XYZ).Coordinates()[1]
	return yb < yf
}

// Resolve resolves any colorant to a high-resolution color. The default
// colorant resolves to the default foreground color; use
// [Translator.ResolveLayer] to resolve it for a specific layer.
func (t *Translator) Resolve(colorant termco.Colorant) color.Color {
	return t.ResolveLayer(colorant, style.Foreground)
}

// ResolveLayer resolves any colorant to a high-resolution color,
// resolving the default colorant to the given layer's default color.
func (t *Translator) ResolveLayer(colorant termco.Colorant, layer style.Layer) color.Color {
	switch c := colorant.(type) {
	case termco.Default:
		return t.theme.ForLayer(layer)
	case termco.AnsiColor:
		return t.theme.Ansi(c)
	case termco.EmbeddedRgb:
		return c.ToColor()
	case termco.GrayGradient:
		return c.ToColor()
	case termco.Rgb:
		return c.ToColor()
	case termco.HiRes:
		return c.Color
	default:
		return color.Color{}
	}
}

// ToAnsi converts the high-resolution color to an ANSI color. If the
// theme meets the requirements for hue-lightness search, this method
// forwards to [Translator.ToAnsiHueLightness]; otherwise it falls back
// on [Translator.ToClosestAnsi].
func (t *Translator) ToAnsi(c color.Color) termco.AnsiColor {
	if ansi, ok := t.ToAnsiHueLightness(c); ok {
		return ansi
	}
	return t.ToClosestAnsi(c)
}

// SupportsHueLightness determines whether this translator supports
// color translation with the hue-lightness search algorithm.
func (t *Translator) SupportsHueLightness() bool {
	return t.hues != nil
}

// ToAnsiHueLightness converts the high-resolution color to an ANSI
// color based on hue and revised lightness in Oklrch. For grays, it
// finds the ANSI gray with the closest lightness. For colors, it first
// finds the pair of regular and bright ANSI colors with the closest hue
// and then selects the one with the closest lightness.
//
// The search requires that the theme colors loosely align with the
// abstract ANSI colors. If this translator's theme does not, the
// result is false; [Translator.ToAnsi] falls back on exhaustive search
// in that case.
func (t *Translator) ToAnsiHueLightness(c color.Color) (termco.AnsiColor, bool) {
	if t.hues == nil {
		return 0, false
	}
	return t.hues.findMatch(c), true
}

// ToClosestAnsi finds the ANSI color that is closest to the given color
// in the Cartesian Oklab variation of this translator's version.
//
// Exhaustive search may yield poor matches, since human color
// perception is more sensitive to changes in hue than lightness or
// chroma. Under the VGA theme, the light orange #ffa563 matches the
// gray ANSI white, even though the theme's yellow only differs
// meaningfully in lightness. Prefer [Translator.ToAnsi], which uses the
// hue-sensitive search whenever the theme supports it.
func (t *Translator) ToClosestAnsi(c color.Color) termco.AnsiColor {
	index, _ := t.ansi.FindClosest(c)
	return termco.AnsiColor(index)
}

// ToAnsiRgb converts the high-resolution color to an ANSI color solely
// based on linear RGB coordinates. Since the ANSI colors essentially
// are 3-bit RGB colors with an extra brightness bit, it clips the color
// to the linear sRGB gamut, rounds each coordinate to 0 or 1, and sets
// the brightness bit based on the sum of the rounded coordinates.
//
// The algorithm is an improved version of the approach taken by Chalk,
// one of the most popular terminal color libraries for JavaScript.
// Unlike Chalk it manipulates *linear* sRGB, since gamma-corrected
// coordinates skew component magnitudes. Even so, its results tend to
// be markedly worse than those of [Translator.ToAnsi].
func (t *Translator) ToAnsiRgb(c color.Color) termco.AnsiColor {
	coordinates := c.To(color.LinearSRGB).Clip().Coordinates()
	index := uint8(math.Round(coordinates[2]))<<2 |
		uint8(math.Round(coordinates[1]))<<1 |
		uint8(math.Round(coordinates[0]))
	// Brightening is the only option left at this threshold.
	if 3 <= index {
		index += 8
	}
	return termco.AnsiColor(index)
}

// ToClosest8Bit finds the 8-bit color closest to the given color,
// comparing only to the embedded RGB and gray gradient colors. The ANSI
// colors are excluded because their theme-dependent values can be
// visually disruptive amidst several graduated colors; prefer this
// method over [Translator.ToClosest8BitWithAnsi].
func (t *Translator) ToClosest8Bit(c color.Color) termco.EightBitColor {
	index, _ := t.eightBit.Slice(16, t.eightBit.Len()).FindClosest(c)
	return termco.EightBitFrom8Bit(uint8(index + 16))
}

// ToClosest8BitWithAnsi finds the 8-bit color closest to the given
// color, comparing to all 256 colors including the ANSI colors.
func (t *Translator) ToClosest8BitWithAnsi(c color.Color) termco.EightBitColor {
	index, _ := t.eightBit.FindClosest(c)
	return termco.EightBitFrom8Bit(uint8(index))
}

// CapColor caps the high-resolution color by the given fidelity. The
// result is false when the fidelity does not allow color at all.
func (t *Translator) CapColor(c color.Color, fidelity style.Fidelity) (termco.Colorant, bool) {
	switch fidelity {
	case style.Plain, style.NoColor:
		return nil, false
	case style.Ansi:
		return t.ToAnsi(c), true
	case style.EightBit:
		return t.ToClosest8Bit(c).(termco.Colorant), true
	case style.TwentyFourBit:
		return termco.RgbFromColor(c), true
	default:
		return termco.HiRes{Color: c}, true
	}
}

// Cap caps the colorant by the given fidelity, so that a terminal with
// that fidelity can render the result: colorants within the fidelity
// pass through unmodified, colorants beyond it are downsampled. The
// result is false when the fidelity does not allow color at all.
func (t *Translator) Cap(colorant termco.Colorant, fidelity style.Fidelity) (termco.Colorant, bool) {
	switch fidelity {
	case style.Plain, style.NoColor:
		return nil, false
	case style.Ansi:
		switch colorant.(type) {
		case termco.Default, termco.AnsiColor:
			return colorant, true
		}
		return t.ToAnsi(t.Resolve(colorant)), true
	case style.EightBit:
		switch c := colorant.(type) {
		case termco.Rgb:
			return t.ToClosest8Bit(c.ToColor()).(termco.Colorant), true
		case termco.HiRes:
			return t.ToClosest8Bit(c.Color).(termco.Colorant), true
		}
		return colorant, true
	case style.TwentyFourBit:
		if c, ok := colorant.(termco.HiRes); ok {
			return termco.RgbFromColor(c.Color), true
		}
		return colorant, true
	default:
		return colorant, true
	}
}
