package style

import (
	"fmt"
	"strings"

	"github.com/apparebit/prettypretty/pkg/termco"
)

// Layer is the targeted display layer: foreground or background.
type Layer int

const (
	// Foreground is the foreground or text layer.
	Foreground Layer = iota
	// Background is the background layer.
	Background
)

// IsForeground determines whether this layer is the foreground.
func (l Layer) IsForeground() bool {
	return l == Foreground
}

// IsBackground determines whether this layer is the background.
func (l Layer) IsBackground() bool {
	return l == Background
}

// Offset returns the value added to the SGR parameters of foreground
// colors to target this layer, which is zero for the foreground itself.
func (l Layer) Offset() uint8 {
	if l == Background {
		return 10
	}
	return 0
}

func (l Layer) String() string {
	if l == Background {
		return "background"
	}
	return "foreground"
}

// Fidelity is the stylistic fidelity of terminal output, ordered from
// least to most capable. It captures the capabilities of a terminal or
// runtime environment as well as user preferences, notably [NoColor].
type Fidelity int

const (
	// Plain is plain text without ANSI escape codes.
	Plain Fidelity = iota
	// NoColor allows ANSI escape codes but no colors.
	NoColor
	// Ansi allows ANSI and default colors only.
	Ansi
	// EightBit allows 8-bit indexed colors, which include the ANSI and
	// default colors.
	EightBit
	// TwentyFourBit allows 24-bit RGB colors.
	TwentyFourBit
	// HiRes allows high-resolution colors in arbitrary color spaces,
	// which is beyond the reach of ANSI escape codes.
	HiRes
)

var fidelityNames = [...]string{
	"plain", "no-color", "ansi", "8-bit", "24-bit", "hi-res",
}

func (f Fidelity) String() string {
	if f < Plain || Fidelity(len(fidelityNames)) <= f {
		return "invalid"
	}
	return fidelityNames[f]
}

// ParseFidelity parses a fidelity name as produced by String.
func ParseFidelity(s string) (Fidelity, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	for index, name := range fidelityNames {
		if t == name {
			return Fidelity(index), nil
		}
	}
	return 0, fmt.Errorf("invalid fidelity %q", s)
}

// FromColorant determines the fidelity required for rendering the given
// colorant without conversion.
func FromColorant(colorant termco.Colorant) Fidelity {
	switch colorant.(type) {
	case termco.Default, termco.AnsiColor:
		return Ansi
	case termco.EmbeddedRgb, termco.GrayGradient:
		return EightBit
	case termco.Rgb:
		return TwentyFourBit
	default:
		return HiRes
	}
}

// Covers determines whether this fidelity level suffices for rendering
// the colorant as is, without conversion.
func (f Fidelity) Covers(colorant termco.Colorant) bool {
	return FromColorant(colorant) <= f
}

// FromEnvironment determines the fidelity level for terminal output
// based on heuristics over environment variables. Its primary sources
// are NO_COLOR and FORCE_COLOR; its secondary source is the
// supports-color package's variable matrix.
func FromEnvironment(env Environment, hasTTY bool) Fidelity {
	switch {
	case isNonEmpty(env, "NO_COLOR"):
		return NoColor
	case isNonEmpty(env, "FORCE_COLOR"):
		return Ansi
	case isDefined(env, "TF_BUILD") || isDefined(env, "AGENT_NAME"):
		// Azure Pipelines colors without a TTY, so this test must come
		// before the TTY test.
		return Ansi
	case !hasTTY:
		return Plain
	case hasValue(env, "TERM", "dumb"):
		return Plain
	case isDefined(env, "CI"):
		return ciFidelity(env)
	}

	if teamcity, ok := env.Lookup("TEAMCITY_VERSION"); ok {
		// Teamcity 9.x and later support ANSI colors.
		if isModernTeamcity(teamcity) {
			return Ansi
		}
		return Plain
	}

	switch {
	case hasValue(env, "COLORTERM", "truecolor") || hasValue(env, "TERM", "xterm-kitty"):
		return TwentyFourBit
	case hasValue(env, "TERM_PROGRAM", "Apple_Terminal"):
		return EightBit
	case hasValue(env, "TERM_PROGRAM", "iTerm.app"):
		if version, ok := env.Lookup("TERM_PROGRAM_VERSION"); ok &&
			strings.HasPrefix(version, "3.") {
			return TwentyFourBit
		}
		return EightBit
	}

	if term, ok := env.Lookup("TERM"); ok {
		term = strings.ToLower(term)
		switch {
		case strings.HasSuffix(term, "-256") || strings.HasSuffix(term, "-256color"):
			return EightBit
		case strings.HasPrefix(term, "screen"),
			strings.HasPrefix(term, "xterm"),
			strings.HasPrefix(term, "vt100"),
			strings.HasPrefix(term, "vt220"),
			strings.HasPrefix(term, "rxvt"),
			term == "color", term == "ansi", term == "cygwin", term == "linux":
			return Ansi
		}
	} else if isDefined(env, "COLORTERM") {
		return Ansi
	}

	return Plain
}

func ciFidelity(env Environment) Fidelity {
	if isDefined(env, "GITHUB_ACTIONS") || isDefined(env, "GITEA_ACTIONS") {
		return TwentyFourBit
	}

	for _, ci := range []string{
		"TRAVIS", "CIRCLECI", "APPVEYOR", "GITLAB_CI", "BUILDKITE", "DRONE",
	} {
		if isDefined(env, ci) {
			return Ansi
		}
	}

	if hasValue(env, "CI_NAME", "codeship") {
		return Ansi
	}

	return Plain
}

func isModernTeamcity(version string) bool {
	if strings.HasPrefix(version, "9.") {
		return true
	}
	if len(version) < 3 {
		return false
	}
	return version[0] >= '1' && version[0] <= '9' &&
		version[1] >= '0' && version[1] <= '9' &&
		version[2] == '.'
}
