package color

import "math"

// scaleLightness scales the revised lightness of the given coordinates in
// Oklrch by the given factor.
func scaleLightness(space Space, coordinates [3]float64, factor float64) [3]float64 {
	c := Convert(space, Oklrch, coordinates)
	return [3]float64{factor * c[0], c[1], c[2]}
}

// Coefficients for computing the contrast luminance of sRGB coordinates.
var srgbContrast = [3]float64{0.2126729, 0.7151522, 0.0721750}

// Coefficients for computing the contrast luminance of Display P3
// coordinates.
var p3Contrast = [3]float64{0.2289829594805780, 0.6917492625852380, 0.0792677779341829}

func toContrastLuminance(coefficients, coordinates [3]float64) float64 {
	linearize := func(value float64) float64 {
		magnitude := math.Abs(value)
		return math.Copysign(math.Pow(magnitude, 2.4), value)
	}

	r, g, b := coordinates[0], coordinates[1], coordinates[2]
	return math.FMA(linearize(r), coefficients[0],
		math.FMA(linearize(g), coefficients[1], linearize(b)*coefficients[2]))
}

func toContrastLuminanceSRGB(coordinates [3]float64) float64 {
	return toContrastLuminance(srgbContrast, coordinates)
}

func toContrastLuminanceP3(coordinates [3]float64) float64 {
	return toContrastLuminance(p3Contrast, coordinates)
}

const (
	contrastBlackThreshold = 0.022
	contrastBlackExponent  = 1.414
	contrastInputClamp     = 0.0005
	contrastScale          = 1.14
	contrastOffset         = 0.027
	contrastOutputClamp    = 0.1
)

// toContrast computes the perceptual contrast between the contrast
// luminance of text and background, using an algorithm closely resembling
// the Accessible Perceptual Contrast Algorithm (APCA), version 0.0.98G-4g.
// The arguments are not interchangeable.
func toContrast(textLuminance, backgroundLuminance float64) float64 {
	// Make sure the luminance values are legit.
	if math.IsNaN(textLuminance) || textLuminance < 0.0 || 1.1 < textLuminance ||
		math.IsNaN(backgroundLuminance) || backgroundLuminance < 0.0 || 1.1 < backgroundLuminance {
		return 0.0
	}

	// Soft-clip black.
	if textLuminance < contrastBlackThreshold {
		textLuminance += math.Pow(contrastBlackThreshold-textLuminance, contrastBlackExponent)
	}
	if backgroundLuminance < contrastBlackThreshold {
		backgroundLuminance += math.Pow(contrastBlackThreshold-backgroundLuminance, contrastBlackExponent)
	}

	// Clamp small deltas to zero.
	if math.Abs(textLuminance-backgroundLuminance) < contrastInputClamp {
		return 0.0
	}

	if textLuminance < backgroundLuminance {
		// Dark text on light background.
		contrast := contrastScale * (math.Pow(backgroundLuminance, 0.56) - math.Pow(textLuminance, 0.57))
		if contrast < contrastOutputClamp {
			return 0.0
		}
		return contrast - contrastOffset
	}

	// Light text on dark background.
	contrast := contrastScale * (math.Pow(backgroundLuminance, 0.65) - math.Pow(textLuminance, 0.62))
	if -contrastOutputClamp < contrast {
		return 0.0
	}
	return contrast + contrastOffset
}
