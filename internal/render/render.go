// Package render draws color swatches, theme tables, and the 8-bit
// color grid for the command line interface. All colors pass through a
// translator so that output respects the active theme and fidelity.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/apparebit/prettypretty/pkg/color"
	"github.com/apparebit/prettypretty/pkg/style"
	"github.com/apparebit/prettypretty/pkg/termco"
	"github.com/apparebit/prettypretty/pkg/theme"
	"github.com/apparebit/prettypretty/pkg/trans"
)

// TerminalColor adapts a colorant for lipgloss. ANSI and 8-bit colors
// become index colors, RGB and high-resolution colors become hex
// colors, and the default colorant becomes no color at all.
func TerminalColor(colorant termco.Colorant) lipgloss.TerminalColor {
	switch c := colorant.(type) {
	case termco.AnsiColor:
		return lipgloss.Color(fmt.Sprintf("%d", c.To8Bit()))
	case termco.EmbeddedRgb:
		return lipgloss.Color(fmt.Sprintf("%d", c.To8Bit()))
	case termco.GrayGradient:
		return lipgloss.Color(fmt.Sprintf("%d", c.To8Bit()))
	case termco.Rgb:
		return lipgloss.Color(c.String())
	case termco.HiRes:
		return lipgloss.Color(termco.RgbFromColor(c.Color).String())
	default:
		return lipgloss.NoColor{}
	}
}

// Styler renders swatches capped to a fixed fidelity.
type Styler struct {
	translator *trans.Translator
	fidelity   style.Fidelity
}

// NewStyler creates a styler for the given translator and fidelity.
func NewStyler(translator *trans.Translator, fidelity style.Fidelity) *Styler {
	return &Styler{translator: translator, fidelity: fidelity}
}

// Swatch renders a colored block followed by the hex value of the
// color. Without color support, only the hex value remains.
func (s *Styler) Swatch(c color.Color) string {
	hex := c.HexString()
	colorant, ok := s.translator.CapColor(c, s.fidelity)
	if !ok {
		return hex
	}

	block := lipgloss.NewStyle().
		Background(TerminalColor(colorant)).
		Render("      ")
	return block + " " + hex
}

// SwatchColorant renders a colored block for an already low-resolution
// colorant, capping it to the styler's fidelity first.
func (s *Styler) SwatchColorant(colorant termco.Colorant) string {
	label := ColorantLabel(colorant)
	capped, ok := s.translator.Cap(colorant, s.fidelity)
	if !ok {
		return label
	}

	block := lipgloss.NewStyle().
		Background(TerminalColor(capped)).
		Render("      ")
	return block + " " + label
}

// ColorantLabel formats a colorant for display.
func ColorantLabel(colorant termco.Colorant) string {
	switch c := colorant.(type) {
	case termco.Default:
		return "default"
	case termco.AnsiColor:
		return fmt.Sprintf("ansi %d (%s)", c.To8Bit(), c.Name())
	case termco.EmbeddedRgb:
		return fmt.Sprintf("8-bit %d", c.To8Bit())
	case termco.GrayGradient:
		return fmt.Sprintf("8-bit %d", c.To8Bit())
	case termco.Rgb:
		return c.String()
	case termco.HiRes:
		return c.Color.String()
	default:
		return ""
	}
}

// cell renders one grid cell, labeled with the 8-bit index and colored
// with the downsampled version of the 8-bit color.
func cell(translator *trans.Translator, fidelity style.Fidelity, index uint8) string {
	eightBit := termco.EightBitFrom8Bit(index)
	label := fmt.Sprintf("%3d ", index)

	colorant, ok := translator.Cap(eightBit.(termco.Colorant), fidelity)
	if !ok {
		return label
	}

	foreground := lipgloss.Color("#ffffff")
	if translator.Resolve(colorant).UseBlackText() {
		foreground = lipgloss.Color("#000000")
	}
	return lipgloss.NewStyle().
		Background(TerminalColor(colorant)).
		Foreground(foreground).
		Render(label)
}

// Grid renders the 6x6x6 RGB cube and the 24-step gray gradient, with
// every cell downsampled through the translator to the given fidelity.
// At ANSI fidelity, the grid visualizes the quality of downsampling
// under the active theme.
func Grid(translator *trans.Translator, fidelity style.Fidelity) string {
	var b strings.Builder

	b.WriteString("6x6x6 RGB cube\n\n")
	for r := uint8(0); r < 6; r++ {
		for g := uint8(0); g < 6; g++ {
			for b2 := uint8(0); b2 < 6; b2++ {
				b.WriteString(cell(translator, fidelity, 16+36*r+6*g+b2))
			}
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n24-step gray gradient\n\n")
	for level := uint8(0); level < 24; level++ {
		b.WriteString(cell(translator, fidelity, 232+level))
		if level == 11 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	return b.String()
}

// ThemeTable renders all theme entries with their names, swatches, and
// hex values.
func ThemeTable(translator *trans.Translator, fidelity style.Fidelity) string {
	styler := NewStyler(translator, fidelity)
	th := translator.Theme()

	width := 0
	for _, entry := range theme.ThemeEntries() {
		if w := runewidth.StringWidth(entry.Name()); width < w {
			width = w
		}
	}

	var b strings.Builder
	for _, entry := range theme.ThemeEntries() {
		name := runewidth.FillRight(entry.Name(), width)
		b.WriteString(fmt.Sprintf("%s  %s\n", name, styler.Swatch(th.Entry(entry))))
	}
	return b.String()
}
