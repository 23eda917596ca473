package trans

import (
	"math"
	"sort"

	"github.com/apparebit/prettypretty/pkg/color"
	"github.com/apparebit/prettypretty/pkg/termco"
	"github.com/apparebit/prettypretty/pkg/theme"
)

// achromaticThreshold is the maximum chroma of colors still considered
// gray by the hue-lightness search.
const achromaticThreshold = 0.05

func isAchromatic(chroma, hue float64) bool {
	return math.IsNaN(hue) || chroma <= achromaticThreshold
}

func remEuclid(x, y float64) float64 {
	r := math.Mod(x, y)
	if r < 0.0 {
		r += math.Abs(y)
	}
	return r
}

// grayEntry pairs a gray ANSI color with its concrete revised lightness.
type grayEntry struct {
	spec termco.AnsiColor
	lr   float64
}

func newGrayEntry(spec termco.AnsiColor, value color.Color) (grayEntry, bool) {
	coordinates := value.To(color.Oklrch).Coordinates()
	if !spec.IsAchromatic() || !isAchromatic(coordinates[1], coordinates[2]) {
		return grayEntry{}, false
	}
	return grayEntry{spec: spec, lr: coordinates[0]}, true
}

// colorEntry pairs a non-gray ANSI color with its concrete revised
// lightness and hue.
type colorEntry struct {
	spec termco.AnsiColor
	lr   float64
	h    float64
}

func newColorEntry(spec termco.AnsiColor, value color.Color) (colorEntry, bool) {
	coordinates := value.To(color.Oklrch).Coordinates()
	if spec.IsAchromatic() || isAchromatic(coordinates[1], coordinates[2]) {
		return colorEntry{}, false
	}
	// Entry hues must be in the 0..360 range for interval checks.
	return colorEntry{
		spec: spec,
		lr:   coordinates[0],
		h:    remEuclid(coordinates[2], 360.0),
	}, true
}

func (e colorEntry) base() termco.AnsiColor {
	return e.spec.ToBase()
}

// hueLightnessTable matches high-resolution colors to ANSI colors by
// hue and revised lightness.
//
// The table requires that the theme colors loosely align with the
// abstract ANSI colors: the gray entries must be gray and the color
// entries must not be, and traversing the hue circle counter-clockwise
// must visit the color pairs in order red, yellow, green, cyan, blue,
// magenta. Hues may be rotated out of their usual position, and the
// regular and bright versions of a pair may appear in either order.
type hueLightnessTable struct {
	grays  []grayEntry
	colors []colorEntry
}

// newHueLightnessTable builds the table for the theme. It returns nil
// if the theme colors violate the alignment invariants.
func newHueLightnessTable(t theme.Theme) *hueLightnessTable {
	grays := make([]grayEntry, 0, 4)
	for _, spec := range []termco.AnsiColor{
		termco.Black, termco.White, termco.BrightBlack, termco.BrightWhite,
	} {
		entry, ok := newGrayEntry(spec, t.Ansi(spec))
		if !ok {
			return nil
		}
		grays = append(grays, entry)
	}
	sort.Slice(grays, func(i, j int) bool { return grays[i].lr < grays[j].lr })

	// The non-grays in hue order: red, yellow, green, cyan, blue, magenta.
	colors := make([]colorEntry, 0, 12)
	for _, spec := range []termco.AnsiColor{
		termco.Red, termco.Yellow, termco.Green,
		termco.Cyan, termco.Blue, termco.Magenta,
	} {
		regular, ok := newColorEntry(spec, t.Ansi(spec))
		if !ok {
			return nil
		}
		bright, ok := newColorEntry(spec.ToBright(), t.Ansi(spec.ToBright()))
		if !ok {
			return nil
		}

		// Order each pair of color versions by hue.
		if regular.h <= bright.h {
			colors = append(colors, regular, bright)
		} else {
			colors = append(colors, bright, regular)
		}
	}

	// Rotate the entry with the smallest hue into first position.
	minIndex := 0
	for index, entry := range colors {
		if entry.h < colors[minIndex].h {
			minIndex = index
		}
	}
	colors = append(colors[minIndex:], colors[:minIndex]...)

	// Each pair was added smaller hue first, so if the pairs are in
	// standard order, all hues are sorted as well.
	minHue := -1.0
	for _, entry := range colors {
		if entry.h < minHue {
			return nil
		}
		minHue = entry.h
	}

	return &hueLightnessTable{grays: grays, colors: colors}
}

// findMatch returns the ANSI color matching the given color. For grays,
// it finds the ANSI gray with the closest revised lightness. For
// colors, it first finds the pair of regular and bright ANSI colors
// with the closest hue and then selects the one with the closest
// lightness.
func (t *hueLightnessTable) findMatch(c color.Color) termco.AnsiColor {
	coordinates := c.To(color.Oklrch).Coordinates()
	lr, chroma, h := coordinates[0], coordinates[1], coordinates[2]

	// Grays are selected by lightness only. There is nothing else to go by.
	if isAchromatic(chroma, h) {
		for index := 0; index < len(t.grays)-1; index++ {
			entry1 := t.grays[index]
			entry2 := t.grays[index+1]

			// The midpoint between grays serves as boundary.
			if lr < entry1.lr+(entry2.lr-entry1.lr)/2.0 {
				return entry1.spec
			}
		}
		return t.grays[len(t.grays)-1].spec
	}

	// Select the pair of color versions by hue, then pick one by
	// lightness. Humans are less sensitive to chroma, so ignoring it
	// seems reasonable.
	length := len(t.colors)
	for index := 0; index < length; index++ {
		// We are looking for the first entry with a larger hue.
		next := t.colors[index]
		if next.h < h && (index != 0 || h < t.colors[length-1].h) {
			// The first interval starts with the last color.
			continue
		}

		previous := t.colors[(index-1+length)%length]
		if previous.base() == next.base() {
			// The hue is bracketed by versions of the same color.
			return t.pickLightness(lr, previous, next)
		}

		// We need previousHue < h <= nextHue to determine the closer one.
		previousHue := previous.h
		nextHue := next.h
		if h < previousHue {
			previousHue -= 360.0
		}

		if h-previousHue <= nextHue-h {
			// The hue is closer to the previous color.
			twicePrevious := t.colors[(index-2+length)%length]
			return t.pickLightness(lr, twicePrevious, previous)
		}
		// The hue is closer to the next color.
		twiceNext := t.colors[(index+1)%length]
		return t.pickLightness(lr, next, twiceNext)
	}

	// The loop always selects an entry at index zero or earlier.
	return t.colors[0].spec
}

// pickLightness selects the entry with the closer revised lightness.
func (t *hueLightnessTable) pickLightness(lr float64, entry1, entry2 colorEntry) termco.AnsiColor {
	if math.Abs(entry1.lr-lr) <= math.Abs(entry2.lr-lr) {
		return entry1.spec
	}
	return entry2.spec
}
