package color

import "math"

// normalize ensures that coordinates are well-formed. It replaces
// not-a-number coordinates with zero. For the Oklab variations, it also
// clamps (revised) lightness to the unit range and chroma to non-negative
// values. If the hue of a polar space is not-a-number, the chroma becomes
// zero as well.
func normalize(space Space, coordinates [3]float64) [3]float64 {
	c1, c2, c3 := coordinates[0], coordinates[1], coordinates[2]

	if math.IsNaN(c1) {
		c1 = 0.0
	}
	if math.IsNaN(c2) {
		c2 = 0.0
	}
	if math.IsNaN(c3) {
		c3 = 0.0
		if space.IsPolar() {
			c2 = 0.0
		}
	}

	if space.IsOk() {
		c1 = math.Min(math.Max(c1, 0.0), 1.0)
		if space.IsPolar() {
			c2 = math.Max(c2, 0.0)
		}
	}

	return [3]float64{c1, c2, c3}
}

// roundingFactor reduces coordinates to 14 significant decimals before
// equality testing and hashing, absorbing the jitter of different but
// equivalent conversion paths.
const roundingFactor = 1e14

// eqBits normalizes a floating point number for hashing and equality
// testing. It zeroes out not-a-number, reduces precision, and drops the
// sign of negative zero.
func eqBits(f float64) uint64 {
	if math.IsNaN(f) {
		f = 0.0
	}
	f = math.Round(roundingFactor * f)
	if f == 0.0 {
		f = 0.0 // drops -0.0
	}
	return math.Float64bits(f)
}

// eqCoordinates normalizes coordinates for equality testing and hashing.
// Polar hues are reduced to a rotation-free unit range first.
func eqCoordinates(space Space, coordinates [3]float64) [3]uint64 {
	c := normalize(space, coordinates)

	if space.IsPolar() {
		c[2] = remEuclid(c[2], 360.0) / 360.0
	}

	return [3]uint64{eqBits(c[0]), eqBits(c[1]), eqBits(c[2])}
}

// remEuclid returns the least non-negative remainder of x modulo y.
func remEuclid(x, y float64) float64 {
	r := math.Mod(x, y)
	if r < 0.0 {
		r += math.Abs(y)
	}
	return r
}

// deltaEOk computes the color difference between two coordinate triples
// in Oklab or Oklrab, which simply is their Euclidean distance in that
// perceptually uniform space.
func deltaEOk(c1, c2 [3]float64) float64 {
	d1 := c1[0] - c2[0]
	d2 := c1[1] - c2[1]
	d3 := c1[2] - c2[2]
	return math.Sqrt(d1*d1 + d2*d2 + d3*d3)
}

// findClosest returns the index of the candidate with the smallest
// distance to the target. Ties go to the earliest candidate. It returns
// false only for an empty candidate slice.
func findClosest(target [3]float64, candidates [][3]float64, distance func(c1, c2 [3]float64) float64) (int, bool) {
	minIndex := -1
	minDistance := math.Inf(1)

	for index, candidate := range candidates {
		d := distance(target, candidate)
		if d < minDistance {
			minIndex = index
			minDistance = d
		}
	}

	if minIndex < 0 {
		return 0, false
	}
	return minIndex, true
}

// isAchromaticChromaHue reports whether the chroma and hue describe a
// gray tone, i.e., the hue is not-a-number or the chroma does not exceed
// the threshold.
func isAchromaticChromaHue(chroma, hue, threshold float64) bool {
	return math.IsNaN(hue) || chroma <= threshold
}
