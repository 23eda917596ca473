package color

import "math"

// The matrices below are taken from the CSS Color 4 reference
// implementation, color.js, at full double precision.

var linearSRGBToXYZMatrix = [3][3]float64{
	{0.41239079926595934, 0.357584339383878, 0.1804807884018343},
	{0.21263900587151027, 0.715168678767756, 0.07219231536073371},
	{0.01933081871559182, 0.11919477979462598, 0.9505321522496607},
}

var xyzToLinearSRGBMatrix = [3][3]float64{
	{3.2409699419045226, -1.537383177570094, -0.4986107602930034},
	{-0.9692436362808796, 1.8759675015077202, 0.04155505740717559},
	{0.05563007969699366, -0.20397695888897652, 1.0569715142428786},
}

var linearDisplayP3ToXYZMatrix = [3][3]float64{
	{0.4865709486482162, 0.26566769316909306, 0.1982172852343625},
	{0.2289745640697488, 0.6917385218365064, 0.079286914093745},
	{0.0000000000000000, 0.04511338185890264, 1.043944368900976},
}

var xyzToLinearDisplayP3Matrix = [3][3]float64{
	{2.493496911941425, -0.9313836179191239, -0.40271078445071684},
	{-0.8294889695615747, 1.7626640603183463, 0.023624685841943577},
	{0.03584583024378447, -0.07617238926804182, 0.9568845240076872},
}

var linearRec2020ToXYZMatrix = [3][3]float64{
	{0.6369580483012914, 0.14461690358620832, 0.1688809751641721},
	{0.2627002120112671, 0.6779980715188708, 0.05930171646986196},
	{0.000000000000000, 0.028072693049087428, 1.060985057710791},
}

var xyzToLinearRec2020Matrix = [3][3]float64{
	{1.716651187971268, -0.355670783776392, -0.253366281373660},
	{-0.666684351832489, 1.616481236634939, 0.0157685458139111},
	{0.017639857445311, -0.042770613257809, 0.942103121235474},
}

var oklabToOklmsMatrix = [3][3]float64{
	{1.0000000000000000, 0.3963377773761749, 0.2158037573099136},
	{1.0000000000000000, -0.1055613458156586, -0.0638541728258133},
	{1.0000000000000000, -0.0894841775298119, -1.2914855480194092},
}

var oklmsToXYZMatrix = [3][3]float64{
	{1.2268798758459243, -0.5578149944602171, 0.2813910456659647},
	{-0.0405757452148008, 1.1122868032803170, -0.0717110580655164},
	{-0.0763729366746601, -0.4214933324022432, 1.5869240198367816},
}

var xyzToOklmsMatrix = [3][3]float64{
	{0.8190224379967030, 0.3619062600528904, -0.1288737815209879},
	{0.0329836539323885, 0.9292868615863434, 0.0361446663506424},
	{0.0481771893596242, 0.2642395317527308, 0.6335478284694309},
}

var oklmsToOklabMatrix = [3][3]float64{
	{0.2104542683093140, 0.7936177747023054, -0.0040720430116193},
	{1.9779985324311684, -2.4285922420485799, 0.4505937096174110},
	{0.0259040424655478, 0.7827717124575296, -0.8086757549230774},
}

// Chromatic adaptation between D65 and D50 uses the linear Bradford
// method.

var d65ToD50Matrix = [3][3]float64{
	{1.0479297925449969, 0.022946870601609652, -0.05019226628920524},
	{0.02962780877005599, 0.9904344267538799, -0.017073799063418826},
	{-0.009243040646204504, 0.015055191490298152, 0.7518742814281371},
}

var d50ToD65Matrix = [3][3]float64{
	{0.955473421488075, -0.02309845494876471, 0.06325924320057072},
	{-0.0283697093338637, 1.0099953980813041, 0.021041441191917323},
	{0.012314014864481998, -0.020507649298898964, 1.330365926242124},
}

// multiply computes the matrix-vector product with fused multiply-adds to
// preserve precision.
func multiply(m *[3][3]float64, v [3]float64) [3]float64 {
	return [3]float64{
		math.FMA(m[0][0], v[0], math.FMA(m[0][1], v[1], m[0][2]*v[2])),
		math.FMA(m[1][0], v[0], math.FMA(m[1][1], v[1], m[1][2]*v[2])),
		math.FMA(m[2][0], v[0], math.FMA(m[2][1], v[1], m[2][2]*v[2])),
	}
}

// rgbToLinearRGB undoes gamma correction. sRGB and Display P3 share the
// same transfer function.
func rgbToLinearRGB(v [3]float64) [3]float64 {
	convert := func(value float64) float64 {
		magnitude := math.Abs(value)
		if magnitude <= 0.04045 {
			return value / 12.92
		}
		return math.Copysign(math.Pow((magnitude+0.055)/1.055, 2.4), value)
	}
	return [3]float64{convert(v[0]), convert(v[1]), convert(v[2])}
}

// linearRGBToRGB applies gamma correction. sRGB and Display P3 share the
// same transfer function.
func linearRGBToRGB(v [3]float64) [3]float64 {
	convert := func(value float64) float64 {
		magnitude := math.Abs(value)
		if magnitude <= 0.00313098 {
			return value * 12.92
		}
		return math.Copysign(math.FMA(math.Pow(magnitude, 1.0/2.4), 1.055, -0.055), value)
	}
	return [3]float64{convert(v[0]), convert(v[1]), convert(v[2])}
}

func linearSRGBToXYZ(v [3]float64) [3]float64 {
	return multiply(&linearSRGBToXYZMatrix, v)
}

func xyzToLinearSRGB(v [3]float64) [3]float64 {
	return multiply(&xyzToLinearSRGBMatrix, v)
}

func linearDisplayP3ToXYZ(v [3]float64) [3]float64 {
	return multiply(&linearDisplayP3ToXYZMatrix, v)
}

func xyzToLinearDisplayP3(v [3]float64) [3]float64 {
	return multiply(&xyzToLinearDisplayP3Matrix, v)
}

const (
	rec2020Alpha = 1.09929682680944
	rec2020Beta  = 0.018053968510807
)

func rec2020ToLinearRec2020(v [3]float64) [3]float64 {
	convert := func(value float64) float64 {
		if value < rec2020Beta*4.5 {
			return value / 4.5
		}
		return math.Pow((value+rec2020Alpha-1.0)/rec2020Alpha, 1.0/0.45)
	}
	return [3]float64{convert(v[0]), convert(v[1]), convert(v[2])}
}

func linearRec2020ToRec2020(v [3]float64) [3]float64 {
	convert := func(value float64) float64 {
		if value < rec2020Beta {
			return value * 4.5
		}
		return rec2020Alpha*math.Pow(value, 0.45) - (rec2020Alpha - 1.0)
	}
	return [3]float64{convert(v[0]), convert(v[1]), convert(v[2])}
}

func linearRec2020ToXYZ(v [3]float64) [3]float64 {
	return multiply(&linearRec2020ToXYZMatrix, v)
}

func xyzToLinearRec2020(v [3]float64) [3]float64 {
	return multiply(&xyzToLinearRec2020Matrix, v)
}

// okPolarToCartesian converts Oklch to Oklab coordinates, and likewise
// Oklrch to Oklrab. A not-a-number hue denotes a powerless component and
// maps to the a/b origin.
func okPolarToCartesian(v [3]float64) [3]float64 {
	l, c, h := v[0], v[1], v[2]
	if math.IsNaN(h) {
		return [3]float64{l, 0.0, 0.0}
	}
	hueRadian := h * math.Pi / 180.0
	return [3]float64{l, c * math.Cos(hueRadian), c * math.Sin(hueRadian)}
}

// Chroma below this magnitude counts as achromatic when converting to
// polar coordinates.
const okEpsilon = 0.0002

// okCartesianToPolar converts Oklab to Oklch coordinates, and likewise
// Oklrab to Oklrch. Achromatic colors receive a not-a-number hue.
func okCartesianToPolar(v [3]float64) [3]float64 {
	l, a, b := v[0], v[1], v[2]

	if math.Abs(a) < okEpsilon && math.Abs(b) < okEpsilon {
		return [3]float64{l, 0.0, math.NaN()}
	}

	c := math.Hypot(a, b)
	h := math.Atan2(b, a) * 180.0 / math.Pi
	if math.Signbit(h) {
		h += 360.0
	}
	return [3]float64{l, c, h}
}

// Constants for the revised lightness estimate Lr.
const (
	okK1 = 0.206
	okK2 = 0.03
	okK3 = (1.0 + okK1) / (1.0 + okK2)
)

// okOriginalToRevised replaces Oklab's lightness L with the revised
// lightness estimate Lr. It applies to Cartesian and polar coordinates
// alike since only the first coordinate changes.
func okOriginalToRevised(v [3]float64) [3]float64 {
	l := v[0]
	k3lk1 := math.FMA(okK3, l, -okK1)
	return [3]float64{
		0.5 * (k3lk1 + math.Sqrt(math.FMA(k3lk1, k3lk1, 4.0*okK2*okK3*l))),
		v[1],
		v[2],
	}
}

// okRevisedToOriginal replaces the revised lightness estimate Lr with
// Oklab's original lightness L.
func okRevisedToOriginal(v [3]float64) [3]float64 {
	lr := v[0]
	return [3]float64{(lr * (lr + okK1)) / (okK3 * (lr + okK2)), v[1], v[2]}
}

// oklabToXYZ converts Oklab to XYZ with two matrix multiplications
// bracketing a coordinate-wise cube.
func oklabToXYZ(v [3]float64) [3]float64 {
	lms := multiply(&oklabToOklmsMatrix, v)
	return multiply(&oklmsToXYZMatrix, [3]float64{
		lms[0] * lms[0] * lms[0],
		lms[1] * lms[1] * lms[1],
		lms[2] * lms[2] * lms[2],
	})
}

// xyzToOklab converts XYZ to Oklab with two matrix multiplications
// bracketing a coordinate-wise cube root.
func xyzToOklab(v [3]float64) [3]float64 {
	lms := multiply(&xyzToOklmsMatrix, v)
	return multiply(&oklmsToOklabMatrix, [3]float64{
		math.Cbrt(lms[0]),
		math.Cbrt(lms[1]),
		math.Cbrt(lms[2]),
	})
}

func d65ToD50(v [3]float64) [3]float64 {
	return multiply(&d65ToD50Matrix, v)
}

func d50ToD65(v [3]float64) [3]float64 {
	return multiply(&d50ToD65Matrix, v)
}

// from24Bit converts 24-bit RGB components to unit-range coordinates.
func from24Bit(r, g, b uint8) [3]float64 {
	return [3]float64{float64(r) / 255.0, float64(g) / 255.0, float64(b) / 255.0}
}

// to24Bit converts coordinates to 24-bit components. It assumes an
// in-gamut RGB color but still clamps each coordinate to the unit range.
func to24Bit(space Space, coordinates [3]float64) [3]uint8 {
	c := normalize(space, coordinates)
	component := func(value float64) uint8 {
		return uint8(math.Round(math.Min(math.Max(value, 0.0), 1.0) * 255.0))
	}
	return [3]uint8{component(c[0]), component(c[1]), component(c[2])}
}
