package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContrast(t *testing.T) {
	blue := toContrastLuminanceSRGB([3]float64{104.0 / 255.0, 114.0 / 255.0, 1.0})

	// Contrast of black and of white text against a medium blue tone.
	assert.InDelta(t, 0.38390416110716424, toContrast(0.0, blue), 1e-12)
	assert.InDelta(t, -0.7119199952225724, toContrast(1.0, blue), 1e-12)
}

func TestUseBlackText(t *testing.T) {
	tests := []struct {
		name       string
		background Color
		black      bool
	}{
		{"white", From24Bit(255, 255, 255), true},
		{"yellow", From24Bit(255, 202, 0), true},
		{"black", From24Bit(0, 0, 0), false},
		{"navy", From24Bit(0, 0, 128), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.black, tt.background.UseBlackText())
		})
	}
}

func TestUseBlackBackground(t *testing.T) {
	assert.False(t, From24Bit(0, 0, 0).UseBlackBackground())
	assert.True(t, From24Bit(255, 255, 255).UseBlackBackground())
}

func TestContrastAgainst(t *testing.T) {
	white := From24Bit(255, 255, 255)
	black := From24Bit(0, 0, 0)

	// Contrast is signed: dark text on light background is positive,
	// light text on dark background negative.
	assert.Greater(t, black.ContrastAgainst(white), 0.9)
	assert.Less(t, white.ContrastAgainst(black), -0.9)
	assert.InDelta(t, 0.0, white.ContrastAgainst(white), 1e-9)
}
