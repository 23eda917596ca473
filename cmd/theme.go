package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apparebit/prettypretty/internal/render"
)

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme",
		Short: "Show the active color theme",
		Long: `Shows all 18 entries of the active color theme, whether the theme is
dark or light, and whether it supports hue-lightness downsampling.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			translator, err := newTranslator()
			if err != nil {
				return err
			}

			fidelity, err := outputFidelity()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, render.ThemeTable(translator, fidelity))

			kind := "light"
			if translator.IsDarkTheme() {
				kind = "dark"
			}
			fmt.Fprintf(out, "\n%s theme, hue-lightness downsampling supported: %t\n",
				kind, translator.SupportsHueLightness())
			return nil
		},
	}
}
