package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/apparebit/prettypretty/pkg/color"
	"github.com/apparebit/prettypretty/pkg/logging"
	"github.com/apparebit/prettypretty/pkg/style"
	"github.com/apparebit/prettypretty/pkg/theme"
	"github.com/apparebit/prettypretty/pkg/trans"
)

var (
	themePath     string
	fidelityName  string
	okVersionName string
	verbose       bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "prettypretty",
	Short: "Translate colors between color spaces and terminal colors",
	Long: `prettypretty converts colors between high-resolution color spaces,
maps them into RGB gamuts, and translates them to the low-resolution
colors of terminals, taking the active color theme into account.

Colors are written in hashed hexadecimal notation ("#ffa563"), the X
Windows rgb: notation ("rgb:ff/a5/63"), or the CSS color functions
("oklch(0.716 0.349 335)", "color(display-p3 0 1 0)").`,
	// SilenceUsage is set to true to prevent printing usage message on
	// errors handled by us (e.g. invalid arguments, unparsable colors)
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.LevelWarn
		if verbose {
			level = logging.LevelDebug
		}
		logging.Init(level, cmd.ErrOrStderr())
	},
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "prettypretty version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&themePath, "theme", "",
		"path of a theme file (default: the user theme layered over VGA)")
	rootCmd.PersistentFlags().StringVar(&fidelityName, "fidelity", "",
		"output fidelity: plain, no-color, ansi, 8-bit, 24-bit, hi-res (default: detected)")
	rootCmd.PersistentFlags().StringVar(&okVersionName, "ok-version", "revised",
		"Oklab lightness for perceptual comparisons: original or revised")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newDownsampleCmd())
	rootCmd.AddCommand(newGridCmd())
	rootCmd.AddCommand(newThemeCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// loadTheme loads the theme selected by the --theme flag, falling back
// on the user theme and then the built-in VGA theme.
func loadTheme() (theme.Theme, error) {
	if themePath != "" {
		return theme.Load(themePath)
	}
	return theme.LoadDefault()
}

// okVersion resolves the --ok-version flag.
func okVersion() (color.OkVersion, error) {
	switch okVersionName {
	case "original":
		return color.OkOriginal, nil
	case "revised":
		return color.OkRevised, nil
	default:
		return 0, fmt.Errorf("invalid Oklab version %q, must be original or revised", okVersionName)
	}
}

// newTranslator creates a translator for the selected theme and Oklab
// version.
func newTranslator() (*trans.Translator, error) {
	version, err := okVersion()
	if err != nil {
		return nil, err
	}
	th, err := loadTheme()
	if err != nil {
		return nil, err
	}
	translator := trans.New(version, th)
	logging.Debug("cmd", "using %s lightness, dark theme: %t", version, translator.IsDarkTheme())
	return translator, nil
}

// outputFidelity resolves the --fidelity flag, detecting the fidelity
// of the current terminal when the flag is unset.
func outputFidelity() (style.Fidelity, error) {
	if fidelityName != "" {
		return style.ParseFidelity(fidelityName)
	}
	hasTTY := isatty.IsTerminal(os.Stdout.Fd())
	fidelity := style.FromEnvironment(style.OSEnvironment{}, hasTTY)
	logging.Debug("cmd", "detected fidelity %s", fidelity)
	return fidelity, nil
}
