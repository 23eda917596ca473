package color

// The converter turns the conversion tree's primitive to-base and
// from-base functions into composed coordinate transformations. Because
// the base relation forms a tree, the path between two spaces needs no
// general shortest-path search: walk both spaces toward the root, first
// equalizing their depths and then advancing in lockstep until they meet
// at their lowest common ancestor. The to-base hops from the source and
// the reversed from-base hops toward the target compose into the full
// conversion.
//
// With at most 12 spaces, all 144 composed conversions are precomputed at
// package initialization. That keeps Convert lock-free and safe for
// concurrent use.

type conversionFn func([3]float64) [3]float64

var conversionTable [spaceCount][spaceCount]conversionFn

func init() {
	for from := 0; from < spaceCount; from++ {
		for to := 0; to < spaceCount; to++ {
			conversionTable[from][to] = composeConversion(Space(from), Space(to))
		}
	}
}

// composeConversion synthesizes the conversion from one space to another
// by walking the conversion tree to the lowest common ancestor of the two
// spaces.
func composeConversion(from, to Space) conversionFn {
	if from == to {
		return func(c [3]float64) [3]float64 { return c }
	}

	var up, down []conversionFn

	// Equalize depths, always advancing the deeper node.
	source, target := from, to
	for source.Depth() > target.Depth() {
		up = append(up, spaceTable[source].toBase)
		source = spaceTable[source].base
	}
	for target.Depth() > source.Depth() {
		down = append(down, spaceTable[target].fromBase)
		target = spaceTable[target].base
	}

	// Advance both in lockstep until they meet at the common ancestor.
	for source != target {
		up = append(up, spaceTable[source].toBase)
		source = spaceTable[source].base
		down = append(down, spaceTable[target].fromBase)
		target = spaceTable[target].base
	}

	// The from-base hops run from the ancestor down to the target.
	steps := up
	for index := len(down) - 1; index >= 0; index-- {
		steps = append(steps, down[index])
	}

	if len(steps) == 1 {
		return steps[0]
	}
	return func(c [3]float64) [3]float64 {
		for _, step := range steps {
			c = step(c)
		}
		return c
	}
}

// Convert transforms the coordinates from one color space to another,
// which may be the same as the original space. It normalizes not-a-number
// coordinates to zero first. It does not check whether the result is in
// gamut for the target space.
func Convert(from, to Space, coordinates [3]float64) [3]float64 {
	return conversionTable[from][to](normalize(from, coordinates))
}
