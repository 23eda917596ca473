// Package style captures the context for styled terminal output: the
// targeted display [Layer], the stylistic [Fidelity] of a terminal or
// runtime environment, and the SGR escape sequences selecting colorants
// for a layer.
package style
