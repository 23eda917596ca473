package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apparebit/prettypretty/internal/render"
	"github.com/apparebit/prettypretty/pkg/color"
)

func newDownsampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "downsample <color>",
		Short: "Downsample a color to a terminal color",
		Long: `Translates the given high-resolution color to a terminal color under
the active theme, capped to the output fidelity. At ANSI fidelity, the
translation uses the hue-lightness search when the theme supports it
and falls back on the perceptually closest color otherwise.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := color.Parse(args[0])
			if err != nil {
				return err
			}

			translator, err := newTranslator()
			if err != nil {
				return err
			}

			fidelity, err := outputFidelity()
			if err != nil {
				return err
			}

			colorant, ok := translator.CapColor(c, fidelity)
			if !ok {
				return fmt.Errorf("fidelity %s does not support color", fidelity)
			}

			styler := render.NewStyler(translator, fidelity)
			fmt.Fprintln(cmd.OutOrStdout(), styler.SwatchColorant(colorant))
			return nil
		},
	}
	return cmd
}
