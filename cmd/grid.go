package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apparebit/prettypretty/internal/render"
)

func newGridCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grid",
		Short: "Show the 8-bit colors downsampled to the output fidelity",
		Long: `Renders the 6x6x6 RGB cube and the 24-step gray gradient of the
8-bit terminal colors, with every cell downsampled to the output
fidelity. Try --fidelity ansi to judge the quality of downsampling
under the active theme.`,
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

			fmt.Fprint(cmd.OutOrStdout(), render.Grid(translator, fidelity))
			return nil
		},
	}
}
