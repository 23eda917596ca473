// Package trans translates between high-resolution colors and the
// terminal colors of a concrete theme. [Translator] resolves abstract
// terminal colors to concrete colors, downsamples high-resolution
// colors to ANSI and 8-bit colors, and caps colorants by the stylistic
// fidelity of a terminal.
package trans
