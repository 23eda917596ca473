package termco

// AnsiColor identifies one of the sixteen extended ANSI colors. ANSI
// colors have no intrinsic color values; resolving one to a concrete
// color requires a theme.
type AnsiColor uint8

const (
	Black AnsiColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite

	ansiCount = 16
)

// AnsiColors returns all sixteen ANSI colors in index order.
func AnsiColors() []AnsiColor {
	colors := make([]AnsiColor, ansiCount)
	for index := range colors {
		colors[index] = AnsiColor(index)
	}
	return colors
}

// AnsiFrom8Bit instantiates an ANSI color from its 8-bit index.
func AnsiFrom8Bit(value uint8) (AnsiColor, error) {
	if 16 <= value {
		return 0, outOfBounds(value, 0, 15)
	}
	return AnsiColor(value), nil
}

// To8Bit returns the 8-bit index of this ANSI color.
func (c AnsiColor) To8Bit() uint8 {
	return uint8(c)
}

// IsAchromatic determines whether this ANSI color is gray, i.e., black
// or white in either brightness.
func (c AnsiColor) IsAchromatic() bool {
	return c == Black || c == White || c == BrightBlack || c == BrightWhite
}

// IsBright determines whether this ANSI color is bright.
func (c AnsiColor) IsBright() bool {
	return 8 <= c
}

// ToBase returns the nonbright version of this ANSI color.
func (c AnsiColor) ToBase() AnsiColor {
	if c.IsBright() {
		return c - 8
	}
	return c
}

// ToBright returns the bright version of this ANSI color.
func (c AnsiColor) ToBright() AnsiColor {
	if !c.IsBright() {
		return c + 8
	}
	return c
}

var ansiNames = [ansiCount]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright black", "bright red", "bright green", "bright yellow",
	"bright blue", "bright magenta", "bright cyan", "bright white",
}

// Name returns this ANSI color's human-readable name, e.g., "bright
// green" for [BrightGreen].
func (c AnsiColor) Name() string {
	if ansiCount <= c {
		return "invalid"
	}
	return ansiNames[c]
}

var ansiAbbreviations = [ansiCount]string{
	"bk", "rd", "gn", "yl", "bu", "mg", "cn", "wt",
	"BK", "RD", "GN", "YL", "BU", "MG", "CN", "WT",
}

// Abbr returns a two-letter abbreviation for this ANSI color. Bright
// colors use the upper case version of their base color's abbreviation.
func (c AnsiColor) Abbr() string {
	if ansiCount <= c {
		return "??"
	}
	return ansiAbbreviations[c]
}

func (c AnsiColor) String() string {
	return c.Name()
}
