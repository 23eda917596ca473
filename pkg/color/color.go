package color

import "math"

// Color is an immutable, high-resolution color: a color space tag and
// three floating point coordinates. Out-of-range coordinates represent
// out-of-gamut colors and are preserved; only the explicit gamut mapping
// and clipping operations force coordinates into range.
//
// The zero value is sRGB black.
type Color struct {
	space       Space
	coordinates [3]float64
}

// New creates a new color from its space and coordinates.
func New(space Space, c1, c2, c3 float64) Color {
	return Color{space, [3]float64{c1, c2, c3}}
}

// From24Bit creates a new sRGB color from 24-bit RGB components.
func From24Bit(r, g, b uint8) Color {
	return Color{SRGB, from24Bit(r, g, b)}
}

// Srgb creates a new sRGB color from unit-range coordinates.
func Srgb(r, g, b float64) Color {
	return New(SRGB, r, g, b)
}

// P3 creates a new Display P3 color from unit-range coordinates.
func P3(r, g, b float64) Color {
	return New(DisplayP3, r, g, b)
}

// Space returns this color's color space.
func (c Color) Space() Space {
	return c.space
}

// Coordinates returns this color's three coordinates.
func (c Color) Coordinates() [3]float64 {
	return c.coordinates
}

// To converts this color to the target color space.
func (c Color) To(target Space) Color {
	if c.space == target {
		return c
	}
	return Color{target, Convert(c.space, target, c.coordinates)}
}

// Normalize replaces not-a-number coordinates with zero and clamps the
// lightness and chroma of the Oklab variations to their valid ranges.
func (c Color) Normalize() Color {
	return Color{c.space, normalize(c.space, c.coordinates)}
}

// InGamut reports whether this color is in gamut for its color space.
func (c Color) InGamut() bool {
	return inGamut(c.space, c.coordinates)
}

// Clip forces this color's coordinates into gamut by clamping each
// coordinate to the unit range. Unlike ToGamut, it performs no search and
// may visibly distort the color.
func (c Color) Clip() Color {
	return Color{c.space, clip(c.space, c.coordinates)}
}

// ToGamut maps this color into the gamut of its color space while
// preserving its appearance as much as possible. In-gamut colors are
// returned unchanged.
func (c Color) ToGamut() Color {
	return Color{c.space, toGamut(c.space, c.coordinates)}
}

// IsAchromatic reports whether this color is gray, i.e., has a chroma of
// at most 0.01 in Oklch.
func (c Color) IsAchromatic() bool {
	p := c.To(Oklch).coordinates
	return isAchromaticChromaHue(p[1], p[2], 0.01)
}

// Distance computes the perceptual difference between this and the other
// color as the Euclidean distance in the Cartesian Oklab variation of the
// given version.
func (c Color) Distance(other Color, version OkVersion) float64 {
	space := version.CartesianSpace()
	return deltaEOk(
		Convert(c.space, space, c.coordinates),
		Convert(other.space, space, other.coordinates),
	)
}

// FindClosest returns the index of the candidate most similar to this
// color. Distances are measured as Euclidean distances in the Cartesian
// Oklab variation of the given version. If several candidates are
// equally close, the first one wins. The second result is false when
// candidates is empty.
func (c Color) FindClosest(candidates []Color, version OkVersion) (int, bool) {
	return PrepareCandidates(candidates, version).FindClosest(c)
}

// Candidates is an immutable list of candidate colors, pre-converted to
// the Cartesian Oklab variation of one version. Preparing candidates
// once pays off when searching repeatedly against the same list.
type Candidates struct {
	space       Space
	coordinates [][3]float64
}

// PrepareCandidates converts the candidate colors to the comparison
// space of the given version.
func PrepareCandidates(candidates []Color, version OkVersion) Candidates {
	space := version.CartesianSpace()
	coordinates := make([][3]float64, len(candidates))
	for i, candidate := range candidates {
		coordinates[i] = Convert(candidate.space, space, candidate.coordinates)
	}
	return Candidates{space, coordinates}
}

// Len returns the number of candidates.
func (t Candidates) Len() int {
	return len(t.coordinates)
}

// Slice returns the subrange [from, to) of these candidates, sharing
// the prepared coordinates.
func (t Candidates) Slice(from, to int) Candidates {
	return Candidates{t.space, t.coordinates[from:to]}
}

// FindClosest returns the index of the candidate most similar to the
// given color, with the same distance measure and tie-breaking as
// [Color.FindClosest]. Only the searched-for color is converted.
func (t Candidates) FindClosest(c Color) (int, bool) {
	return findClosest(Convert(c.space, t.space, c.coordinates), t.coordinates, deltaEOk)
}

// Lighten multiplies the revised lightness Lr of this color by the given
// factor and returns the result in this color's space.
func (c Color) Lighten(factor float64) Color {
	return Color{c.space, Convert(Oklrch, c.space, scaleLightness(c.space, c.coordinates, factor))}
}

// Darken divides the revised lightness Lr of this color by the given
// factor and returns the result in this color's space.
func (c Color) Darken(factor float64) Color {
	if factor == 0.0 {
		return c
	}
	return c.Lighten(1.0 / factor)
}

// ContrastAgainst computes the perceptual contrast of text in this color
// against the given background color, following the APCA contrast model.
// The result is positive for dark text on a light background and negative
// for light text on a dark background.
func (c Color) ContrastAgainst(background Color) float64 {
	fg := c.To(SRGB)
	bg := background.To(SRGB)
	if fg.InGamut() && bg.InGamut() {
		return toContrast(
			toContrastLuminanceSRGB(fg.coordinates),
			toContrastLuminanceSRGB(bg.coordinates),
		)
	}

	return toContrast(
		toContrastLuminanceP3(c.To(DisplayP3).coordinates),
		toContrastLuminanceP3(background.To(DisplayP3).coordinates),
	)
}

// UseBlackText determines whether black or white text maximizes contrast
// against this background color.
func (c Color) UseBlackText() bool {
	black := toContrast(0.0, c.contrastLuminance())
	white := toContrast(1.0, c.contrastLuminance())
	return math.Abs(white) <= math.Abs(black)
}

// UseBlackBackground determines whether a black or white background
// maximizes contrast for text in this color.
func (c Color) UseBlackBackground() bool {
	lum := c.contrastLuminance()
	return math.Abs(toContrast(lum, 1.0)) < math.Abs(toContrast(lum, 0.0))
}

func (c Color) contrastLuminance() float64 {
	srgb := c.To(SRGB)
	if srgb.InGamut() {
		return toContrastLuminanceSRGB(srgb.coordinates)
	}
	return toContrastLuminanceP3(c.To(DisplayP3).coordinates)
}

// To24Bit converts this color to 24-bit RGB components by converting to
// sRGB and discretizing the coordinates. The result is only meaningful
// for colors in the sRGB gamut; apply ToGamut first when in doubt.
func (c Color) To24Bit() [3]uint8 {
	return to24Bit(SRGB, Convert(c.space, SRGB, c.coordinates))
}

// Key is a comparable, hashable identity for a color. Coordinates are
// compared by normalized bit pattern, not perceptual similarity, which
// makes Key suitable for map keys and caches.
type Key struct {
	Space Space
	Bits  [3]uint64
}

// Key returns this color's comparable identity.
func (c Color) Key() Key {
	return Key{c.space, eqCoordinates(c.space, c.coordinates)}
}

// Equal reports whether the two colors have the same color space and the
// same coordinates after normalizing not-a-numbers, rotation, and
// negative zero and reducing precision to absorb conversion jitter.
func (c Color) Equal(other Color) bool {
	return c.Key() == other.Key()
}
