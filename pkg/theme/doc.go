// Package theme maps the abstract terminal colors, i.e., the 16 ANSI
// colors and the default foreground and background colors, to concrete
// color values. Themes can be loaded from YAML files layered over the
// built-in [VGA] theme.
package theme
