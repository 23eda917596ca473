package style

import (
	"strconv"
	"strings"

	"github.com/apparebit/prettypretty/pkg/termco"
)

// SGRParameters returns the SGR parameters that select the colorant for
// the given layer. It returns false for high-resolution colorants,
// which have no ANSI representation and must be capped to a terminal
// color first.
func SGRParameters(colorant termco.Colorant, layer Layer) ([]uint8, bool) {
	offset := layer.Offset()

	switch c := colorant.(type) {
	case termco.Default:
		return []uint8{39 + offset}, true
	case termco.AnsiColor:
		base := uint8(30)
		if c.IsBright() {
			base = 90
		}
		return []uint8{base + offset + c.ToBase().To8Bit()}, true
	case termco.EmbeddedRgb:
		return []uint8{38 + offset, 5, c.To8Bit()}, true
	case termco.GrayGradient:
		return []uint8{38 + offset, 5, c.To8Bit()}, true
	case termco.Rgb:
		return []uint8{38 + offset, 2, c[0], c[1], c[2]}, true
	default:
		return nil, false
	}
}

// SGR returns the ANSI escape sequence that selects the colorant for
// the given layer. It returns false for high-resolution colorants.
func SGR(colorant termco.Colorant, layer Layer) (string, bool) {
	parameters, ok := SGRParameters(colorant, layer)
	if !ok {
		return "", false
	}

	var b strings.Builder
	b.WriteString("\x1b[")
	for index, parameter := range parameters {
		if 0 < index {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(int(parameter)))
	}
	b.WriteByte('m')
	return b.String(), true
}
