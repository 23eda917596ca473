package color

// inGamut determines whether the coordinates are in gamut for their color
// space. Unbounded spaces contain every color.
func inGamut(space Space, coordinates [3]float64) bool {
	if !space.IsRGB() {
		return true
	}
	for _, c := range coordinates {
		if c < 0.0 || 1.0 < c {
			return false
		}
	}
	return true
}

// clip forces the coordinates into the gamut of their color space by
// clamping each coordinate to the unit range. It leaves unbounded spaces
// alone.
func clip(space Space, coordinates [3]float64) [3]float64 {
	if !space.IsRGB() {
		return coordinates
	}
	clamp := func(c float64) float64 {
		if c < 0.0 {
			return 0.0
		}
		if 1.0 < c {
			return 1.0
		}
		return c
	}
	return [3]float64{clamp(coordinates[0]), clamp(coordinates[1]), clamp(coordinates[2])}
}

// Tunable constants for gamut mapping. The just-noticeable-difference
// threshold and the chroma interval terminating the binary search default
// to the values used by CSS Color 4.
const (
	gamutJND     = 0.02
	gamutEpsilon = 0.0001
)

// toGamut maps the given coordinates into the gamut of their color space.
//
// This function implements the CSS Color 4 gamut mapping algorithm. It
// performs a binary search in Oklch over colors with less chroma than the
// original, keeping lightness and hue fixed, until the clipped version of
// the current color is within the just noticeable difference. Since, by
// definition, the clipped version is in gamut, it becomes the result of
// the search. In-gamut inputs are returned unchanged, which makes the
// mapping idempotent.
func toGamut(space Space, coordinates [3]float64) [3]float64 {
	coordinates = normalize(space, coordinates)

	// If the color space is unbounded, there is nothing to map to.
	if !space.IsBounded() {
		return coordinates
	}

	// Preliminary 1/2: clamp lightness.
	originAsOklch := Convert(space, Oklch, coordinates)
	l := originAsOklch[0]
	if 1.0 <= l {
		return Convert(Oklch, space, [3]float64{1.0, 0.0, 0.0})
	}
	if l <= 0.0 {
		return Convert(Oklch, space, [3]float64{0.0, 0.0, 0.0})
	}

	// Preliminary 2/2: check gamut.
	if inGamut(space, coordinates) {
		return coordinates
	}

	// Goal: minimize the difference between current and clipped colors.
	currentAsOklch := originAsOklch
	clippedAsTarget := clip(space, Convert(Oklch, space, currentAsOklch))

	difference := deltaEOk(
		Convert(space, Oklab, clippedAsTarget),
		okPolarToCartesian(currentAsOklch),
	)
	if difference < gamutJND {
		return clippedAsTarget
	}

	// Strategy: binary search by adjusting chroma in Oklch.
	min := 0.0
	max := originAsOklch[1]
	minInGamut := true

	for gamutEpsilon < max-min {
		chroma := (min + max) / 2.0
		currentAsOklch = [3]float64{currentAsOklch[0], chroma, currentAsOklch[2]}

		currentAsTarget := Convert(Oklch, space, currentAsOklch)

		if minInGamut && inGamut(space, currentAsTarget) {
			min = chroma
			continue
		}

		clippedAsTarget = clip(space, currentAsTarget)

		difference = deltaEOk(
			Convert(space, Oklab, clippedAsTarget),
			okPolarToCartesian(currentAsOklch),
		)

		if difference < gamutJND {
			if gamutJND-difference < gamutEpsilon {
				return clippedAsTarget
			}
			minInGamut = false
			min = chroma
		} else {
			max = chroma
		}
	}

	return clippedAsTarget
}
