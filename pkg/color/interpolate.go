package color

import "math"

// HueInterpolation determines how the hues of two colors are adjusted
// before interpolating in a polar color space, following CSS Color 4.
type HueInterpolation int

const (
	// ShorterHue interpolates along the shorter arc between the hues.
	ShorterHue HueInterpolation = iota
	// LongerHue interpolates along the longer arc between the hues.
	LongerHue
	// IncreasingHue interpolates with increasing hue values.
	IncreasingHue
	// DecreasingHue interpolates with decreasing hue values.
	DecreasingHue
)

// Interpolator computes colors on the straight line between two colors in
// some interpolation color space. Create instances with
// [Color.Interpolate] and sample them with [Interpolator.At].
type Interpolator struct {
	space Space
	from  [3]float64
	to    [3]float64
}

// Interpolate prepares interpolation between this and the other color in
// the given color space. For polar spaces, the strategy picks the hue arc
// to traverse. Missing (not-a-number) coordinates are carried over from
// the other color before interpolating.
func (c Color) Interpolate(other Color, space Space, strategy HueInterpolation) Interpolator {
	from := Convert(c.space, space, c.coordinates)
	to := Convert(other.space, space, other.coordinates)

	// Convert zeroes powerless hues; recover them so that the carry-over
	// below can take effect.
	from = restorePowerlessHue(space, from)
	to = restorePowerlessHue(space, to)

	for index := range from {
		if math.IsNaN(from[index]) {
			from[index] = to[index]
		}
		if math.IsNaN(to[index]) {
			to[index] = from[index]
		}
	}

	if space.IsPolar() {
		from[2], to[2] = adjustHues(from[2], to[2], strategy)
	}

	return Interpolator{space, from, to}
}

// At returns the color at the given fraction of the way between the two
// colors, with 0 yielding the first and 1 the second color.
func (i Interpolator) At(fraction float64) Color {
	lerp := func(a, b float64) float64 {
		if math.IsNaN(a) {
			return b
		}
		if math.IsNaN(b) {
			return a
		}
		return a + fraction*(b-a)
	}
	return Color{i.space, [3]float64{
		lerp(i.from[0], i.to[0]),
		lerp(i.from[1], i.to[1]),
		lerp(i.from[2], i.to[2]),
	}}
}

func restorePowerlessHue(space Space, coordinates [3]float64) [3]float64 {
	if space.IsPolar() && coordinates[1] == 0.0 && coordinates[2] == 0.0 {
		coordinates[2] = math.NaN()
	}
	return coordinates
}

// adjustHues maps both hues into the unit circle and then adjusts them
// per the interpolation strategy.
func adjustHues(h1, h2 float64, strategy HueInterpolation) (float64, float64) {
	if math.IsNaN(h1) || math.IsNaN(h2) {
		return h1, h2
	}

	h1 = remEuclid(h1, 360.0)
	h2 = remEuclid(h2, 360.0)

	switch strategy {
	case ShorterHue:
		if 180.0 < h2-h1 {
			h1 += 360.0
		} else if 180.0 < h1-h2 {
			h2 += 360.0
		}
	case LongerHue:
		if 0.0 < h2-h1 && h2-h1 < 180.0 {
			h1 += 360.0
		} else if -180.0 < h2-h1 && h2-h1 <= 0.0 {
			h2 += 360.0
		}
	case IncreasingHue:
		if h2 < h1 {
			h2 += 360.0
		}
	case DecreasingHue:
		if h1 < h2 {
			h1 += 360.0
		}
	}

	return h1, h2
}
