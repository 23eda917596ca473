// Package color implements high-resolution colors and the conversions
// between their color spaces.
//
// # Color Spaces
//
// The package supports twelve color spaces: sRGB, Display P3, and
// Rec. 2020 in gamma-corrected and linear form, the four Oklab
// variations (Oklab, Oklch, Oklrab, Oklrch), and XYZ with the D65 and
// D50 standard illuminants. Every space other than XYZ D65 has exactly
// one base space, which arranges all spaces into a conversion tree
// rooted at XYZ D65.
//
// # Conversion
//
// [Convert] transforms coordinates between any two spaces. The composed
// conversion for each pair of spaces is synthesized from the tree's
// primitive to-base and from-base functions by walking both spaces to
// their lowest common ancestor, and is precomputed for all pairs at
// package initialization. Conversions are pure functions; the package
// has no mutable state after initialization and is safe for concurrent
// use.
//
// # Gamut
//
// The RGB spaces are bounded: in-gamut coordinates range from 0 to 1.
// Out-of-gamut coordinates are preserved by all conversions.
// [Color.ToGamut] maps a color into gamut with the CSS Color 4
// algorithm, which reduces chroma in Oklch until clipping becomes
// imperceptible. [Color.Clip] is the crude alternative without search.
//
// # Color Values
//
// [Color] is an immutable value pairing a [Space] with three floating
// point coordinates. All operations return new values. Equality and
// hashing via [Color.Key] compare normalized bit patterns, not
// perceptual similarity; use [Color.Distance] for the latter.
package color
