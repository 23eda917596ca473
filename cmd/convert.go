package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apparebit/prettypretty/pkg/color"
)

func newConvertCmd() *cobra.Command {
	var toName string
	var gamutMap bool

	cmd := &cobra.Command{
		Use:   "convert <color>",
		Short: "Convert a color to another color space",
		Long: `Converts the given color to the target color space and prints the
result as a CSS color function and, for RGB spaces, in hashed
hexadecimal notation. With --gamut-map, out-of-gamut colors are first
reduced towards the target gamut with the CSS gamut mapping algorithm;
without it, the result keeps its out-of-gamut coordinates.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := color.Parse(args[0])
			if err != nil {
				return err
			}

			space, err := color.ParseSpace(toName)
			if err != nil {
				return err
			}

			result := c.To(space)
			if gamutMap {
				result = result.ToGamut()
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			if space.IsRGB() {
				fmt.Fprintln(cmd.OutOrStdout(), result.HexString())
				if !gamutMap && !result.InGamut() {
					fmt.Fprintln(cmd.ErrOrStderr(),
						"note: result is out of gamut, hex value is clipped; use --gamut-map")
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&toName, "to", "oklch", "target color space")
	cmd.Flags().BoolVar(&gamutMap, "gamut-map", false, "map the result into the target gamut")
	return cmd
}
