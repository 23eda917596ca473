package theme

import (
	"fmt"

	"github.com/apparebit/prettypretty/pkg/color"
	"github.com/apparebit/prettypretty/pkg/style"
	"github.com/apparebit/prettypretty/pkg/termco"
)

// entryCount is the number of theme colors: the 16 ANSI colors plus the
// default foreground and background colors.
const entryCount = 18

// ThemeEntry identifies one of the 18 theme colors. Entries 0 through
// 15 are the ANSI colors in index order, followed by the default
// foreground and background colors.
type ThemeEntry int

const (
	// DefaultForeground identifies the default foreground color.
	DefaultForeground ThemeEntry = 16
	// DefaultBackground identifies the default background color.
	DefaultBackground ThemeEntry = 17
)

// AnsiEntry returns the theme entry for the given ANSI color.
func AnsiEntry(c termco.AnsiColor) ThemeEntry {
	return ThemeEntry(c.To8Bit())
}

// LayerEntry returns the theme entry for the default color of the given
// layer.
func LayerEntry(layer style.Layer) ThemeEntry {
	if layer.IsBackground() {
		return DefaultBackground
	}
	return DefaultForeground
}

// ThemeEntryFromIndex instantiates a theme entry from its index, which
// must range from 0 to 17.
func ThemeEntryFromIndex(index int) (ThemeEntry, error) {
	if index < 0 || entryCount <= index {
		return 0, fmt.Errorf("%d does not identify a theme entry", index)
	}
	return ThemeEntry(index), nil
}

// ThemeEntries returns all 18 theme entries in index order.
func ThemeEntries() []ThemeEntry {
	entries := make([]ThemeEntry, entryCount)
	for index := range entries {
		entries[index] = ThemeEntry(index)
	}
	return entries
}

// IsAnsi determines whether this entry identifies an ANSI color.
func (e ThemeEntry) IsAnsi() bool {
	return 0 <= e && e < 16
}

// Ansi returns the ANSI color identified by this entry. The result is
// false for the default foreground and background entries.
func (e ThemeEntry) Ansi() (termco.AnsiColor, bool) {
	if !e.IsAnsi() {
		return 0, false
	}
	return termco.AnsiColor(e), true
}

// Name returns this entry's human-readable name.
func (e ThemeEntry) Name() string {
	switch e {
	case DefaultForeground:
		return "default foreground"
	case DefaultBackground:
		return "default background"
	default:
		if c, ok := e.Ansi(); ok {
			return c.Name()
		}
		return "invalid"
	}
}

// Abbr returns a two-letter abbreviation for this entry.
func (e ThemeEntry) Abbr() string {
	switch e {
	case DefaultForeground:
		return "fg"
	case DefaultBackground:
		return "bg"
	default:
		if c, ok := e.Ansi(); ok {
			return c.Abbr()
		}
		return "??"
	}
}

// Query returns the OSC escape sequence that asks a terminal for this
// entry's current color.
func (e ThemeEntry) Query() string {
	switch e {
	case DefaultForeground:
		return "\x1b]10;?\x1b\\"
	case DefaultBackground:
		return "\x1b]11;?\x1b\\"
	default:
		return fmt.Sprintf("\x1b]4;%d;?\x1b\\", int(e))
	}
}

func (e ThemeEntry) String() string {
	return e.Name()
}

// Theme is a color theme with concrete color values for the 16 ANSI
// colors and the default foreground and background colors.
type Theme struct {
	colors [entryCount]color.Color
}

// New creates a theme from the 18 colors in theme entry order.
func New(colors [entryCount]color.Color) Theme {
	return Theme{colors: colors}
}

// Entry returns the color for the given theme entry.
func (t Theme) Entry(entry ThemeEntry) color.Color {
	if entry < 0 || entryCount <= entry {
		return color.Color{}
	}
	return t.colors[entry]
}

// Ansi returns the color for the given ANSI color.
func (t Theme) Ansi(c termco.AnsiColor) color.Color {
	return t.colors[c.To8Bit()]
}

// Foreground returns the default foreground color.
func (t Theme) Foreground() color.Color {
	return t.colors[DefaultForeground]
}

// Background returns the default background color.
func (t Theme) Background() color.Color {
	return t.colors[DefaultBackground]
}

// ForLayer returns the default color for the given layer.
func (t Theme) ForLayer(layer style.Layer) color.Color {
	return t.Entry(LayerEntry(layer))
}

// VGA is the standard VGA text mode theme with a white background. It
// serves as the built-in default theme.
var VGA = New([entryCount]color.Color{
	color.From24Bit(0, 0, 0),       // black
	color.From24Bit(170, 0, 0),     // red
	color.From24Bit(0, 170, 0),     // green
	color.From24Bit(170, 85, 0),    // yellow
	color.From24Bit(0, 0, 170),     // blue
	color.From24Bit(170, 0, 170),   // magenta
	color.From24Bit(0, 170, 170),   // cyan
	color.From24Bit(170, 170, 170), // white
	color.From24Bit(85, 85, 85),    // bright black
	color.From24Bit(255, 85, 85),   // bright red
	color.From24Bit(85, 255, 85),   // bright green
	color.From24Bit(255, 255, 85),  // bright yellow
	color.From24Bit(85, 85, 255),   // bright blue
	color.From24Bit(255, 85, 255),  // bright magenta
	color.From24Bit(85, 255, 255),  // bright cyan
	color.From24Bit(255, 255, 255), // bright white
	color.From24Bit(0, 0, 0),       // default foreground
	color.From24Bit(255, 255, 255), // default background
})
