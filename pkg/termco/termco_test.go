package termco

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnsiColor(t *testing.T) {
	assert.Len(t, AnsiColors(), 16)

	c, err := AnsiFrom8Bit(11)
	require.NoError(t, err)
	assert.Equal(t, BrightYellow, c)
	assert.Equal(t, uint8(11), c.To8Bit())

	_, err = AnsiFrom8Bit(16)
	require.Error(t, err)
	var oob *OutOfBoundsError
	assert.ErrorAs(t, err, &oob)
	assert.Equal(t, uint8(16), oob.Value)

	assert.True(t, BrightYellow.IsBright())
	assert.False(t, Yellow.IsBright())
	assert.Equal(t, Yellow, BrightYellow.ToBase())
	assert.Equal(t, BrightYellow, Yellow.ToBright())
	assert.Equal(t, Yellow, Yellow.ToBase())
	assert.Equal(t, BrightYellow, BrightYellow.ToBright())

	assert.True(t, Black.IsAchromatic())
	assert.True(t, BrightWhite.IsAchromatic())
	assert.False(t, Magenta.IsAchromatic())

	assert.Equal(t, "bright green", BrightGreen.Name())
	assert.Equal(t, "gn", Green.Abbr())
	assert.Equal(t, "GN", BrightGreen.Abbr())
}

func TestEmbeddedRgb(t *testing.T) {
	c, err := NewEmbeddedRgb(3, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, uint8(134), c.To8Bit())
	assert.Equal(t, [3]uint8{175, 95, 215}, c.To24Bit())
	assert.Equal(t, "#af5fd7", c.ToRgb().String())

	same, err := EmbeddedRgbFrom8Bit(134)
	require.NoError(t, err)
	assert.Equal(t, c, same)

	_, err = NewEmbeddedRgb(6, 0, 0)
	assert.Error(t, err)
	_, err = EmbeddedRgbFrom8Bit(15)
	assert.Error(t, err)
	_, err = EmbeddedRgbFrom8Bit(232)
	assert.Error(t, err)

	// The full ramp round trips through 8-bit indexes.
	for index := uint8(16); index <= 231; index++ {
		c, err := EmbeddedRgbFrom8Bit(index)
		require.NoError(t, err)
		assert.Equal(t, index, c.To8Bit())
	}
}

func TestGrayGradient(t *testing.T) {
	c, err := NewGrayGradient(4)
	require.NoError(t, err)
	assert.Equal(t, uint8(236), c.To8Bit())
	assert.Equal(t, [3]uint8{48, 48, 48}, c.To24Bit())

	mid, err := GrayGradientFrom8Bit(243)
	require.NoError(t, err)
	assert.Equal(t, uint8(11), mid.Level())

	light, err := NewGrayGradient(20)
	require.NoError(t, err)
	assert.Equal(t, uint8(252), light.To8Bit())
	assert.Equal(t, "#d0d0d0", light.ToRgb().String())

	_, err = NewGrayGradient(24)
	assert.Error(t, err)
	_, err = GrayGradientFrom8Bit(231)
	assert.Error(t, err)
}

func TestRgb(t *testing.T) {
	seaFoam := NewRgb(0xb6, 0xeb, 0xd4)
	assert.Equal(t, "#b6ebd4", seaFoam.String())
	assert.Equal(t, [3]uint8{0xb6, 0xeb, 0xd4}, seaFoam.Coordinates())

	// Round trip through a high-resolution color.
	assert.Equal(t, seaFoam, RgbFromColor(seaFoam.ToColor()))

	assert.Equal(t, uint32(0), seaFoam.WeightedDistance(seaFoam))
	assert.Greater(
		t,
		NewRgb(255, 0, 0).WeightedDistance(NewRgb(0, 0, 255)),
		NewRgb(255, 0, 0).WeightedDistance(NewRgb(255, 64, 0)),
	)
}

func TestEightBitColor(t *testing.T) {
	tests := []struct {
		name  string
		index uint8
	}{
		{"ansi", 7},
		{"embedded", 46},
		{"gray", 240},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := EightBitFrom8Bit(tt.index)
			assert.Equal(t, tt.index, c.To8Bit())
		})
	}

	assert.IsType(t, AnsiColor(0), EightBitFrom8Bit(15))
	assert.IsType(t, EmbeddedRgb{}, EightBitFrom8Bit(16))
	assert.IsType(t, EmbeddedRgb{}, EightBitFrom8Bit(231))
	assert.IsType(t, GrayGradient(0), EightBitFrom8Bit(232))
}

func TestColorant(t *testing.T) {
	assert.True(t, IsDefault(Default{}))
	assert.False(t, IsDefault(Red))

	index, ok := ColorantTo8Bit(BrightBlue)
	assert.True(t, ok)
	assert.Equal(t, uint8(12), index)

	_, ok = ColorantTo8Bit(Default{})
	assert.False(t, ok)
	_, ok = ColorantTo8Bit(NewRgb(1, 2, 3))
	assert.False(t, ok)

	components, ok := ColorantTo24Bit(NewRgb(1, 2, 3))
	assert.True(t, ok)
	assert.Equal(t, [3]uint8{1, 2, 3}, components)

	gray, _ := NewGrayGradient(0)
	components, ok = ColorantTo24Bit(gray)
	assert.True(t, ok)
	assert.Equal(t, [3]uint8{8, 8, 8}, components)

	_, ok = ColorantTo24Bit(Black)
	assert.False(t, ok)

	assert.Equal(t, Colorant(White), ColorantFrom8Bit(7))
}
