package color

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError describes why a color string could not be parsed.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed color %q: %s", e.Input, e.Reason)
}

func parseError(input, reason string) error {
	return &ParseError{Input: input, Reason: reason}
}

// Parse parses a color string in one of the supported formats:
//
//   - the hashed hexadecimal format "#rgb" or "#rrggbb";
//   - the X Windows format "rgb:<hex>/<hex>/<hex>" with 1–4 hexadecimal
//     digits per coordinate;
//   - the CSS functions "oklab(...)", "oklch(...)", and "color(...)",
//     the latter with one of the color space identifiers srgb,
//     linear-srgb, display-p3, --linear-display-p3, rec2020,
//     --linear-rec2020, --oklrab, --oklrch, xyz, xyz-d65, or xyz-d50.
//     Coordinates must be plain numbers without units.
func Parse(s string) (Color, error) {
	t := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(t, "#"):
		coordinates, err := parseHashed(t)
		if err != nil {
			return Color{}, err
		}
		return Color{SRGB, coordinates}, nil
	case strings.HasPrefix(t, "rgb:"):
		coordinates, err := parseX(t)
		if err != nil {
			return Color{}, err
		}
		return Color{SRGB, coordinates}, nil
	default:
		return parseCSS(t)
	}
}

// parseHashed parses a 24-bit color in hashed hexadecimal format,
// transparently handling single-digit coordinates.
func parseHashed(s string) ([3]float64, error) {
	if len(s) != 4 && len(s) != 7 {
		return [3]float64{}, parseError(s, "hashed format requires 3 or 6 hexadecimal digits")
	}

	factor := (len(s) - 1) / 3
	var components [3]uint8
	for index := range components {
		digits := s[1+factor*index : 1+factor*(index+1)]
		n, err := strconv.ParseUint(digits, 16, 8)
		if err != nil {
			return [3]float64{}, parseError(s, "coordinates must be hexadecimal digits")
		}
		if factor == 1 {
			n = 16*n + n
		}
		components[index] = uint8(n)
	}

	return from24Bit(components[0], components[1], components[2]), nil
}

// parseX parses a color in X Windows format, scaling each coordinate by
// the maximum value of its digit count.
func parseX(s string) ([3]float64, error) {
	body := strings.TrimPrefix(s, "rgb:")
	parts := strings.Split(body, "/")
	if len(parts) != 3 {
		return [3]float64{}, parseError(s, "format requires exactly three coordinates")
	}

	var coordinates [3]float64
	for index, part := range parts {
		if part == "" {
			return [3]float64{}, parseError(s, "coordinate is missing")
		}
		if 4 < len(part) {
			return [3]float64{}, parseError(s, "coordinate has more than four digits")
		}
		n, err := strconv.ParseUint(part, 16, 16)
		if err != nil {
			return [3]float64{}, parseError(s, "coordinates must be hexadecimal digits")
		}
		max := uint32(1)<<(4*len(part)) - 1
		coordinates[index] = float64(n) / float64(max)
	}

	return coordinates, nil
}

// cssSpaceNames maps CSS color space identifiers to color spaces, in
// match order. Spaces without standard CSS names use the custom "--"
// prefix.
var cssSpaceNames = []struct {
	name  string
	space Space
}{
	{"srgb", SRGB},
	{"linear-srgb", LinearSRGB},
	{"display-p3", DisplayP3},
	{"--linear-display-p3", LinearDisplayP3},
	{"rec2020", Rec2020},
	{"--linear-rec2020", LinearRec2020},
	{"--oklrab", Oklrab},
	{"--oklrch", Oklrch},
	{"xyz-d65", XYZ},
	{"xyz-d50", XYZD50},
	{"xyz", XYZ},
}

// ParseSpace parses a color space identifier as used by the CSS color()
// function. It also accepts "oklab", "oklch", "oklrab", and "oklrch",
// the latter two with or without the custom "--" prefix.
func ParseSpace(s string) (Space, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	switch t {
	case "oklab":
		return Oklab, nil
	case "oklch":
		return Oklch, nil
	}
	for _, entry := range cssSpaceNames {
		if t == entry.name || t == strings.TrimPrefix(entry.name, "--") {
			return entry.space, nil
		}
	}
	return 0, parseError(s, "unknown color space")
}

// parseCSS parses the CSS color functions oklab(), oklch(), and color().
func parseCSS(s string) (Color, error) {
	var space Space
	var rest string
	hasSpace := true

	switch {
	case strings.HasPrefix(s, "oklab"):
		space, rest = Oklab, s[len("oklab"):]
	case strings.HasPrefix(s, "oklch"):
		space, rest = Oklch, s[len("oklch"):]
	case strings.HasPrefix(s, "color"):
		hasSpace, rest = false, s[len("color"):]
	default:
		return Color{}, parseError(s, "unknown color format")
	}

	rest = strings.TrimSpace(rest)
	rest, ok := strings.CutPrefix(rest, "(")
	if !ok {
		return Color{}, parseError(s, "missing opening parenthesis")
	}
	rest, ok = strings.CutSuffix(rest, ")")
	if !ok {
		return Color{}, parseError(s, "missing closing parenthesis")
	}

	if !hasSpace {
		rest = strings.TrimSpace(rest)
		found := false
		for _, entry := range cssSpaceNames {
			if body, ok := strings.CutPrefix(rest, entry.name); ok {
				space, rest, found = entry.space, body, true
				break
			}
		}
		if !found {
			return Color{}, parseError(s, "unknown color space")
		}
	}

	parts := strings.Fields(rest)
	if len(parts) < 3 {
		return Color{}, parseError(s, "coordinate is missing")
	}
	if 3 < len(parts) {
		return Color{}, parseError(s, "too many coordinates")
	}

	var coordinates [3]float64
	for index, part := range parts {
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return Color{}, parseError(s, "coordinates must be plain floating point numbers")
		}
		coordinates[index] = value
	}

	return Color{space, coordinates}, nil
}

// HexString formats this color in hashed hexadecimal format, converting
// to sRGB and discretizing to 24 bits first.
func (c Color) HexString() string {
	components := c.To24Bit()
	return fmt.Sprintf("#%02x%02x%02x", components[0], components[1], components[2])
}

// String formats this color as a CSS color function. The output parses
// back with Parse.
func (c Color) String() string {
	coordinates := fmt.Sprintf(
		"%s %s %s",
		formatCoordinate(c.coordinates[0]),
		formatCoordinate(c.coordinates[1]),
		formatCoordinate(c.coordinates[2]),
	)

	switch c.space {
	case Oklab:
		return fmt.Sprintf("oklab(%s)", coordinates)
	case Oklch:
		return fmt.Sprintf("oklch(%s)", coordinates)
	default:
		for _, entry := range cssSpaceNames {
			if entry.space == c.space {
				return fmt.Sprintf("color(%s %s)", entry.name, coordinates)
			}
		}
		// Unreachable: every space has a CSS name.
		return fmt.Sprintf("color(invalid %s)", coordinates)
	}
}

func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
