package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/flownorm/internal/domain"
)

// extrusionCmd represents the extrusion command.
var extrusionCmd = newExtrusionCmd()

func newExtrusionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extrusion [input.gcode] [nozzle-diameter] [cap]",
		Short: "Lower the feed rate of moves whose flow exceeds a cap",
		Long: `Tracks the extruder position (G90/G91, M82/M83, G92) and computes the flow
rate of every extruding move. Moves above the cap get a feed rate scaled
down to meet it; all other lines are copied unchanged. When no move
exceeds the cap no output file is written.`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, values, err := parsePositional(args, 2)
			if err != nil {
				return err
			}

			_, err = normalizer.Extrusion(domain.ExtrusionArgs{
				Options: options(cmd, input, values[0]),
				Cap:     values[1],
			})

			return err
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(extrusionCmd)
}
