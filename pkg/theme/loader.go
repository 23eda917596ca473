package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/apparebit/prettypretty/pkg/color"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

const (
	userConfigDir = ".config/prettypretty"
	themeFileName = "theme.yaml"
)

// themeFile is the on-disk YAML representation of a theme. Every color
// is optional; unset entries keep their value from the base theme.
type themeFile struct {
	Name   string            `yaml:"name,omitempty"`
	Colors map[string]string `yaml:"colors"`
}

// Load loads a theme from the YAML file at the given path, layering its
// colors over the VGA theme. Colors are keyed by theme entry name, with
// "default foreground" and "default background" also accepted as
// "foreground"/"fg" and "background"/"bg". Values use any color format
// accepted by [color.Parse].
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("error reading theme from %s: %w", path, err)
	}

	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Theme{}, fmt.Errorf("error parsing theme from %s: %w", path, err)
	}

	theme, err := mergeTheme(VGA, file)
	if err != nil {
		return Theme{}, fmt.Errorf("error in theme %s: %w", path, err)
	}
	return theme, nil
}

// LoadDefault loads the user's theme from the configuration directory.
// If no theme file exists, it returns the VGA theme.
func LoadDefault() (Theme, error) {
	path, err := getUserThemePath()
	if err != nil {
		return VGA, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return VGA, nil
	}
	return Load(path)
}

var getUserThemePath = func() (string, error) {
	homeDir, err := osUserHomeDir() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, themeFileName), nil
}

// mergeTheme overlays the colors of a theme file onto a base theme.
func mergeTheme(base Theme, file themeFile) (Theme, error) {
	theme := base

	for key, value := range file.Colors {
		entry, ok := entryByName(key)
		if !ok {
			return Theme{}, fmt.Errorf("unknown theme entry %q", key)
		}
		c, err := color.Parse(value)
		if err != nil {
			return Theme{}, fmt.Errorf("entry %q: %w", key, err)
		}
		theme.colors[entry] = c
	}

	return theme, nil
}

func entryByName(name string) (ThemeEntry, bool) {
	// Hand-written theme files drop the "default" prefix often enough.
	switch name {
	case "foreground":
		return DefaultForeground, true
	case "background":
		return DefaultBackground, true
	}
	for _, entry := range ThemeEntries() {
		if name == entry.Name() || name == entry.Abbr() {
			return entry, true
		}
	}
	return 0, false
}
