package color

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// sameCoordinates compares two coordinate triples for equality after
// normalization, the same comparison Color.Equal uses.
func sameCoordinates(space Space, c1, c2 [3]float64) bool {
	return eqCoordinates(space, c1) == eqCoordinates(space, c2)
}

// closeEnough compares coordinates with an absolute tolerance, treating
// two NaN hues as equal.
func closeEnough(space Space, c1, c2 [3]float64) bool {
	for index := range c1 {
		v1, v2 := c1[index], c2[index]
		if space.IsPolar() && index == 2 && math.IsNaN(v1) && math.IsNaN(v2) {
			continue
		}
		if math.IsNaN(v1) || math.IsNaN(v2) {
			return false
		}
		if math.Abs(v1-v2) > 1e-9 {
			return false
		}
	}
	return true
}

type representations struct {
	spec       string
	srgb       [3]float64
	linearSrgb [3]float64
	p3         [3]float64
	linearP3   [3]float64
	oklch      [3]float64
	oklab      [3]float64
	xyz        [3]float64
}

var (
	testBlack = representations{
		spec:       "#000000",
		srgb:       [3]float64{0.0, 0.0, 0.0},
		linearSrgb: [3]float64{0.0, 0.0, 0.0},
		p3:         [3]float64{0.0, 0.0, 0.0},
		linearP3:   [3]float64{0.0, 0.0, 0.0},
		oklch:      [3]float64{0.0, 0.0, math.NaN()},
		oklab:      [3]float64{0.0, 0.0, 0.0},
		xyz:        [3]float64{0.0, 0.0, 0.0},
	}

	testYellow = representations{
		spec:       "#ffca00",
		srgb:       [3]float64{1.0, 0.792156862745098, 0.0},
		linearSrgb: [3]float64{1.0, 0.5906188409193369, 0.0},
		p3:         [3]float64{0.967346220711791, 0.8002244967941964, 0.27134084647161244},
		linearP3:   [3]float64{0.9273192749713864, 0.6042079205196976, 0.059841923211596565},
		oklch:      [3]float64{0.8613332073307732, 0.1760097742886813, 89.440876452466},
		oklab:      [3]float64{0.8613332073307732, 0.0017175723640959761, 0.17600139371700052},
		xyz:        [3]float64{0.6235868473237722, 0.635031101987136, 0.08972950140152941},
	}

	testBlue = representations{
		spec:       "#3178ea",
		srgb:       [3]float64{0.19215686274509805, 0.47058823529411764, 0.9176470588235294},
		linearSrgb: [3]float64{0.030713443732993635, 0.18782077230067787, 0.8227857543962835},
		p3:         [3]float64{0.26851535563550943, 0.4644576150842869, 0.8876966971452301},
		linearP3:   [3]float64{0.058605969547446124, 0.18260572039525869, 0.763285235993837},
		oklch:      [3]float64{0.5909012953108558, 0.18665606306724153, 259.66681920272595},
		oklab:      [3]float64{0.5909012953108558, -0.03348086515869664, -0.1836287492414715},
		xyz:        [3]float64{0.22832473003420622, 0.20025321836938534, 0.80506528557483},
	}

	testWhite = representations{
		spec:       "#ffffff",
		srgb:       [3]float64{1.0, 1.0, 1.0},
		linearSrgb: [3]float64{1.0, 1.0, 1.0},
		p3:         [3]float64{0.9999999999999999, 0.9999999999999997, 0.9999999999999999},
		linearP3:   [3]float64{1.0, 0.9999999999999998, 1.0},
		oklch:      [3]float64{1.0000000000000002, 0.0, math.NaN()},
		oklab:      [3]float64{1.0000000000000002, -4.996003610813204e-16, 0.0},
		xyz:        [3]float64{0.9504559270516717, 1.0, 1.0890577507598784},
	}
)

func TestSingleHopConversions(t *testing.T) {
	tests := []struct {
		name  string
		color representations
	}{
		{"black", testBlack},
		{"yellow", testYellow},
		{"blue", testBlue},
		{"white", testWhite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			linearSrgb := rgbToLinearRGB(tt.color.srgb)
			assert.True(t, sameCoordinates(LinearSRGB, linearSrgb, tt.color.linearSrgb))

			srgb := linearRGBToRGB(linearSrgb)
			assert.True(t, sameCoordinates(SRGB, srgb, tt.color.srgb))

			xyz := linearSRGBToXYZ(linearSrgb)
			assert.True(t, sameCoordinates(XYZ, xyz, tt.color.xyz))

			alsoLinearSrgb := xyzToLinearSRGB(xyz)
			assert.True(t, sameCoordinates(LinearSRGB, alsoLinearSrgb, linearSrgb))

			linearP3 := xyzToLinearDisplayP3(xyz)
			assert.True(t, sameCoordinates(LinearDisplayP3, linearP3, tt.color.linearP3))

			alsoXyz := linearDisplayP3ToXYZ(linearP3)
			assert.True(t, sameCoordinates(XYZ, alsoXyz, xyz))

			p3 := linearRGBToRGB(linearP3)
			assert.True(t, sameCoordinates(DisplayP3, p3, tt.color.p3))

			alsoLinearP3 := rgbToLinearRGB(p3)
			assert.True(t, sameCoordinates(LinearDisplayP3, alsoLinearP3, linearP3))

			oklab := xyzToOklab(xyz)
			assert.True(t, sameCoordinates(Oklab, oklab, tt.color.oklab))

			andAgainXyz := oklabToXYZ(oklab)
			assert.True(t, sameCoordinates(XYZ, andAgainXyz, xyz))

			oklch := okCartesianToPolar(oklab)
			assert.True(t, sameCoordinates(Oklch, oklch, tt.color.oklch))

			alsoOklab := okPolarToCartesian(oklch)
			assert.True(t, sameCoordinates(Oklab, alsoOklab, oklab))
		})
	}
}

func TestConvertIdentity(t *testing.T) {
	for _, space := range Spaces() {
		coordinates := Convert(SRGB, space, testYellow.srgb)
		assert.Equal(t, coordinates, Convert(space, space, coordinates))
	}
}

func TestConvertRoundTrips(t *testing.T) {
	// A lossless conversion graph converts between any two spaces and
	// back without accumulating more than floating point jitter.
	for _, from := range Spaces() {
		origin := Convert(SRGB, from, testBlue.srgb)
		for _, to := range Spaces() {
			there := Convert(from, to, origin)
			back := Convert(to, from, there)
			assert.True(
				t, closeEnough(from, back, origin),
				"round trip %s -> %s -> %s: got %v, want %v",
				from, to, from, back, origin,
			)
		}
	}
}

func TestConvertMultiHop(t *testing.T) {
	oklch := Convert(SRGB, Oklch, testYellow.srgb)
	assert.True(t, closeEnough(Oklch, oklch, testYellow.oklch))

	p3 := Convert(Oklab, DisplayP3, testBlue.oklab)
	assert.True(t, closeEnough(DisplayP3, p3, testBlue.p3))

	srgb := Convert(Oklch, SRGB, testBlue.oklch)
	assert.True(t, closeEnough(SRGB, srgb, testBlue.srgb))
}

func TestRevisedLightness(t *testing.T) {
	// Pure white keeps unit lightness in both Oklab variations, pure
	// black keeps zero.
	white := Convert(Oklab, Oklrab, [3]float64{1.0, 0.0, 0.0})
	assert.InDelta(t, 1.0, white[0], 1e-12)

	black := Convert(Oklab, Oklrab, [3]float64{0.0, 0.0, 0.0})
	assert.InDelta(t, 0.0, black[0], 1e-12)

	// Mid-tone revised lightness is noticeably lower than L.
	gray := Convert(Oklch, Oklrch, [3]float64{0.5, 0.0, math.NaN()})
	assert.Less(t, gray[0], 0.5)
	back := Convert(Oklrch, Oklch, gray)
	assert.InDelta(t, 0.5, back[0], 1e-12)
}

func Test24Bit(t *testing.T) {
	assert.Equal(t, [3]uint8{0xff, 0xca, 0x00}, From24Bit(0xff, 0xca, 0x00).To24Bit())
	assert.Equal(t, [3]uint8{0x00, 0x00, 0x00}, From24Bit(0, 0, 0).To24Bit())

	// Out-of-gamut coordinates are clamped before discretization.
	assert.Equal(t, [3]uint8{0x00, 0xff, 0x80}, Srgb(-0.25, 1.25, 0.50196).To24Bit())
}

func TestSameCoordinates(t *testing.T) {
	f00 := 0.0
	f01 := 1e-15
	f02 := 2e-15
	f03 := 3e-15
	f05 := 5e-15
	f07 := 7e-15
	f09 := 9e-15
	f10 := 1e-14
	f20 := 2e-14

	assert.True(t, sameCoordinates(SRGB, [3]float64{f01, f02, f03}, [3]float64{f00, f00, f00}))
	assert.True(t, sameCoordinates(SRGB, [3]float64{f05, f07, f09}, [3]float64{f10, f10, f10}))
	assert.False(t, sameCoordinates(SRGB, [3]float64{f10, f10, f10}, [3]float64{f20, f20, f20}))
}

func TestNormalize(t *testing.T) {
	// NaN hues of achromatic polar coordinates zero out the chroma.
	normalized := normalize(Oklch, [3]float64{0.5, 0.1, math.NaN()})
	assert.Equal(t, [3]float64{0.5, 0.0, 0.0}, normalized)

	// Ok lightness is clamped to the unit range.
	normalized = normalize(Oklab, [3]float64{1.1, 0.0, 0.0})
	assert.Equal(t, 1.0, normalized[0])

	normalized = normalize(Oklrch, [3]float64{-0.1, -0.2, 380.0})
	assert.Equal(t, 0.0, normalized[0])
	assert.Equal(t, 0.0, normalized[1])
}
