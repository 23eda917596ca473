package color

// Space identifies a color space or format supported by this package.
//
// The zero value is sRGB. Every space other than XYZ D65 has exactly one
// base space, forming a conversion tree rooted at XYZ D65.
type Space int

const (
	// SRGB is the gamma-corrected sRGB color space.
	SRGB Space = iota
	// LinearSRGB is sRGB without gamma correction.
	LinearSRGB
	// DisplayP3 is the gamma-corrected Display P3 color space.
	DisplayP3
	// LinearDisplayP3 is Display P3 without gamma correction.
	LinearDisplayP3
	// Rec2020 is the gamma-corrected Rec. 2020 color space.
	Rec2020
	// LinearRec2020 is Rec. 2020 without gamma correction.
	LinearRec2020
	// Oklab is the perceptually uniform Oklab color space with Cartesian
	// a/b coordinates.
	Oklab
	// Oklch is Oklab with polar chroma/hue coordinates.
	Oklch
	// Oklrab is Oklab with the revised lightness estimate Lr.
	Oklrab
	// Oklrch is Oklch with the revised lightness estimate Lr.
	Oklrch
	// XYZ is CIE XYZ with the D65 standard illuminant. It is the root of
	// the conversion tree.
	XYZ
	// XYZD50 is CIE XYZ with the D50 standard illuminant.
	XYZD50

	spaceCount = int(XYZD50) + 1
)

// Spaces returns all supported color spaces.
func Spaces() []Space {
	all := make([]Space, spaceCount)
	for i := range all {
		all[i] = Space(i)
	}
	return all
}

// spaceMeta captures the static structure of the conversion tree. The base
// relation is acyclic; only XYZ has no base. Depth is the distance from
// the root and toBase/fromBase are the primitive conversions connecting a
// space to its base.
type spaceMeta struct {
	name     string
	base     Space
	depth    int
	rgb      bool
	polar    bool
	toBase   func([3]float64) [3]float64
	fromBase func([3]float64) [3]float64
}

var spaceTable = [spaceCount]spaceMeta{
	SRGB: {
		name: "sRGB", base: LinearSRGB, depth: 2, rgb: true,
		toBase: rgbToLinearRGB, fromBase: linearRGBToRGB,
	},
	LinearSRGB: {
		name: "linear sRGB", base: XYZ, depth: 1, rgb: true,
		toBase: linearSRGBToXYZ, fromBase: xyzToLinearSRGB,
	},
	DisplayP3: {
		name: "Display P3", base: LinearDisplayP3, depth: 2, rgb: true,
		toBase: rgbToLinearRGB, fromBase: linearRGBToRGB,
	},
	LinearDisplayP3: {
		name: "linear Display P3", base: XYZ, depth: 1, rgb: true,
		toBase: linearDisplayP3ToXYZ, fromBase: xyzToLinearDisplayP3,
	},
	Rec2020: {
		name: "Rec. 2020", base: LinearRec2020, depth: 2, rgb: true,
		toBase: rec2020ToLinearRec2020, fromBase: linearRec2020ToRec2020,
	},
	LinearRec2020: {
		name: "linear Rec. 2020", base: XYZ, depth: 1, rgb: true,
		toBase: linearRec2020ToXYZ, fromBase: xyzToLinearRec2020,
	},
	Oklab: {
		name: "Oklab", base: XYZ, depth: 1,
		toBase: oklabToXYZ, fromBase: xyzToOklab,
	},
	Oklch: {
		name: "Oklch", base: Oklab, depth: 2, polar: true,
		toBase: okPolarToCartesian, fromBase: okCartesianToPolar,
	},
	Oklrab: {
		name: "Oklrab", base: Oklab, depth: 2,
		toBase: okRevisedToOriginal, fromBase: okOriginalToRevised,
	},
	Oklrch: {
		name: "Oklrch", base: Oklch, depth: 3, polar: true,
		toBase: okRevisedToOriginal, fromBase: okOriginalToRevised,
	},
	XYZ: {
		name: "XYZ D65", base: XYZ, depth: 0,
	},
	XYZD50: {
		name: "XYZ D50", base: XYZ, depth: 1,
		toBase: d50ToD65, fromBase: d65ToD50,
	},
}

// String returns the human-readable name of this color space.
func (s Space) String() string {
	if s < 0 || int(s) >= spaceCount {
		return "invalid color space"
	}
	return spaceTable[s].name
}

// Base returns this space's base space in the conversion tree. The root
// space XYZ reports ok as false.
func (s Space) Base() (Space, bool) {
	if s == XYZ {
		return XYZ, false
	}
	return spaceTable[s].base, true
}

// Depth returns this space's distance from the root of the conversion
// tree.
func (s Space) Depth() int {
	return spaceTable[s].depth
}

// IsRGB indicates whether this space is RGB-like, with red, green, and
// blue coordinates and a gamut spanning the unit cube.
func (s Space) IsRGB() bool {
	return spaceTable[s].rgb
}

// IsPolar indicates whether this space uses polar chroma/hue coordinates.
func (s Space) IsPolar() bool {
	return spaceTable[s].polar
}

// IsOk indicates whether this space is one of the Oklab variations.
func (s Space) IsOk() bool {
	switch s {
	case Oklab, Oklch, Oklrab, Oklrch:
		return true
	}
	return false
}

// IsBounded indicates whether in-gamut coordinates are restricted to the
// unit range. Only the RGB-like spaces are bounded.
func (s Space) IsBounded() bool {
	return s.IsRGB()
}

// OkVersion selects between Oklab's original lightness L and the revised
// lightness estimate Lr for perceptual comparisons. The choice is fixed
// for the lifetime of a Translator.
type OkVersion int

const (
	// OkOriginal selects Oklab/Oklch with the original lightness.
	OkOriginal OkVersion = iota
	// OkRevised selects Oklrab/Oklrch with the revised lightness.
	OkRevised
)

// String returns "original" or "revised".
func (v OkVersion) String() string {
	if v == OkOriginal {
		return "original"
	}
	return "revised"
}

// CartesianSpace returns the Oklab variation with Cartesian coordinates
// for this version.
func (v OkVersion) CartesianSpace() Space {
	if v == OkOriginal {
		return Oklab
	}
	return Oklrab
}

// PolarSpace returns the Oklab variation with polar coordinates for this
// version.
func (v OkVersion) PolarSpace() Space {
	if v == OkOriginal {
		return Oklch
	}
	return Oklrch
}
