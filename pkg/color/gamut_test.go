package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInGamut(t *testing.T) {
	tests := []struct {
		name        string
		space       Space
		coordinates [3]float64
		expected    bool
	}{
		{"sRGB white", SRGB, [3]float64{1.0, 1.0, 1.0}, true},
		{"sRGB negative red", SRGB, [3]float64{-0.1, 0.5, 0.5}, false},
		{"P3 oversaturated blue", DisplayP3, [3]float64{0.0, 0.0, 1.1}, false},
		{"unbounded Oklab", Oklab, [3]float64{1.5, 2.0, -3.0}, true},
		{"unbounded XYZ", XYZ, [3]float64{1.2, 1.0, 1.1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, inGamut(tt.space, tt.coordinates))
		})
	}
}

func TestClip(t *testing.T) {
	assert.Equal(
		t,
		[3]float64{0.0, 1.0, 0.5},
		clip(SRGB, [3]float64{-0.5, 1.1, 0.5}),
	)

	// Unbounded spaces are left alone.
	assert.Equal(
		t,
		[3]float64{1.5, -0.5, 2.0},
		clip(Oklab, [3]float64{1.5, -0.5, 2.0}),
	)
}

func TestGamutMapping(t *testing.T) {
	// A very green green. Tolerance comparisons, since the fused
	// multiply-adds of the matrix kernels round differently than the
	// plain arithmetic that produced the fixtures.
	p3 := [3]float64{0.0, 1.0, 0.0}
	srgb := Convert(DisplayP3, SRGB, p3)
	assert.True(t, closeEnough(SRGB, srgb, [3]float64{
		-0.5116049825853448, 1.0182656579378029, -0.3106746212905826,
	}))

	srgbMapped := toGamut(SRGB, srgb)
	assert.True(t, closeEnough(SRGB, srgbMapped, [3]float64{
		0.0, 0.9857637107710327, 0.15974244397343723,
	}))

	// A very yellow yellow.
	p3 = [3]float64{1.0, 1.0, 0.0}
	srgb = Convert(DisplayP3, SRGB, p3)
	assert.True(t, closeEnough(SRGB, srgb, [3]float64{
		0.9999999999999999, 0.9999999999999999, -0.3462679629331063,
	}))

	linearSrgb := Convert(DisplayP3, LinearSRGB, p3)
	assert.True(t, closeEnough(LinearSRGB, linearSrgb, [3]float64{
		1.0, 1.0000000000000002, -0.09827360014096621,
	}))

	linearSrgbMapped := toGamut(LinearSRGB, linearSrgb)
	assert.True(t, closeEnough(LinearSRGB, linearSrgbMapped, [3]float64{
		0.9914525477996114, 0.9977581974546286, 0.0,
	}))
}

func TestGamutMappingIdempotent(t *testing.T) {
	// In-gamut colors pass through unchanged, so mapping twice is the
	// same as mapping once.
	inside := [3]float64{0.2, 0.5, 0.8}
	assert.Equal(t, inside, toGamut(SRGB, inside))

	outside := Convert(DisplayP3, SRGB, [3]float64{0.0, 1.0, 0.0})
	mapped := toGamut(SRGB, outside)
	assert.True(t, inGamut(SRGB, mapped))
	assert.Equal(t, mapped, toGamut(SRGB, mapped))
}

func TestColorGamutMethods(t *testing.T) {
	c := P3(0.0, 1.0, 0.0).To(SRGB)
	assert.False(t, c.InGamut())
	assert.True(t, c.Clip().InGamut())
	assert.True(t, c.ToGamut().InGamut())

	// Gamut mapping preserves far more chroma than clipping.
	assert.Greater(
		t,
		c.ToGamut().To(Oklch).Coordinates()[1],
		0.5*c.To(Oklch).Coordinates()[1],
	)
}
