package color

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cross-check conversions against go-colorful, which implements the same
// sRGB linearization and a D65 XYZ transform with slightly different
// matrix precision.
func TestAgainstColorful(t *testing.T) {
	samples := [][3]float64{
		{1.0, 0.792156862745098, 0.0},
		{0.19215686274509805, 0.47058823529411764, 0.9176470588235294},
		{0.25, 0.5, 0.75},
		{0.01, 0.02, 0.03},
		{1.0, 1.0, 1.0},
	}

	for _, srgb := range samples {
		other := colorful.Color{R: srgb[0], G: srgb[1], B: srgb[2]}

		linear := Convert(SRGB, LinearSRGB, srgb)
		r, g, b := other.LinearRgb()
		assert.InDelta(t, r, linear[0], 1e-9)
		assert.InDelta(t, g, linear[1], 1e-9)
		assert.InDelta(t, b, linear[2], 1e-9)

		xyz := Convert(SRGB, XYZ, srgb)
		x, y, z := other.Xyz()
		assert.InDelta(t, x, xyz[0], 1e-3)
		assert.InDelta(t, y, xyz[1], 1e-3)
		assert.InDelta(t, z, xyz[2], 1e-3)
	}
}

func TestHexAgainstColorful(t *testing.T) {
	for _, hex := range []string{"#ffca00", "#3178ea", "#000000", "#ffffff"} {
		ours, err := Parse(hex)
		require.NoError(t, err)
		other, err := colorful.Hex(hex)
		require.NoError(t, err)

		coordinates := ours.Coordinates()
		assert.InDelta(t, other.R, coordinates[0], 1e-12)
		assert.InDelta(t, other.G, coordinates[1], 1e-12)
		assert.InDelta(t, other.B, coordinates[2], 1e-12)

		assert.Equal(t, hex, ours.HexString())
	}
}
