// Package termco implements the low-resolution terminal colors: the
// sixteen extended ANSI colors, the 8-bit colors with their embedded
// 6x6x6 RGB cube and 24-step gray gradient, and 24-bit true colors.
// [Colorant] combines all of them, the default color, and
// high-resolution colors into one closed union.
package termco
