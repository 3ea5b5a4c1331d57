package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/flownorm/internal/domain"
	m "github.com/mouse-blink/flownorm/internal/model"
)

var analyzeModelFlag string
var analyzeCapFlag float64
var analyzeFilamentFlag float64
var analyzeFilamentAreaFlag bool

// analyzeCmd represents the analyze command.
var analyzeCmd = newAnalyzeCmd()

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [input.gcode] [nozzle-diameter]",
		Short: "Print the flow rate extrema of a file without rewriting it",
		Long:  "Runs the analysis pass of the chosen model and prints the minimum and maximum flow rate.",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, values, err := parsePositional(args, 1)
			if err != nil {
				return err
			}

			model := m.Model(analyzeModelFlag)
			if model != m.ModelCrossSection && model != m.ModelExtrusion {
				return fmt.Errorf("unknown model %q, expected %s or %s", analyzeModelFlag, m.ModelCrossSection, m.ModelExtrusion)
			}

			filament := analyzeFilamentFlag
			if filament == 0 {
				filament = cfg.FilamentDiameter
			}

			_, err = normalizer.Analyze(domain.AnalyzeArgs{
				Options:          options(cmd, input, values[0]),
				Model:            model,
				FilamentDiameter: filament,
				UseFilamentArea:  analyzeFilamentAreaFlag,
				Cap:              analyzeCapFlag,
			})

			return err
		},
	}
	cmd.Flags().StringVarP(&analyzeModelFlag, "model", "m", string(m.ModelExtrusion), "flow model: cross-section or extrusion")
	cmd.Flags().Float64VarP(&analyzeCapFlag, "cap", "c", 0, "count extruding moves above this flow rate in mm³/s (extrusion model)")
	cmd.Flags().Float64Var(&analyzeFilamentFlag, "filament-diameter", 0, "filament diameter in mm (cross-section model with --filament-area)")
	cmd.Flags().BoolVar(&analyzeFilamentAreaFlag, "filament-area", false, "derive the cross-section area from the filament diameter")

	return cmd
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
