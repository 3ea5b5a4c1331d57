package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/flownorm/internal/domain"
	m "github.com/mouse-blink/flownorm/internal/model"
)

// crossSectionFlags are the flags of the cross-section model. The root
// command and the cross-section subcommand each bind their own set.
type crossSectionFlags struct {
	policy       string
	target       float64
	filamentArea bool
}

func (f *crossSectionFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.policy, "policy", "p", "", "flow extremum pinned to the target: max or min")
	cmd.Flags().Float64VarP(&f.target, "target", "t", 0, "target flow rate in mm³/s")
	cmd.Flags().BoolVar(&f.filamentArea, "filament-area", false, "derive the cross-section area from the filament diameter instead of the nozzle")
}

var crossSectionCmdFlags crossSectionFlags

// crossSectionCmd represents the cross-section command.
var crossSectionCmd = newCrossSectionCmd()

func newCrossSectionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cross-section [input.gcode] [nozzle-diameter] [filament-diameter]",
		Short: "Scale all feed rates so the MIN or MAX flow rate meets a target",
		Long: `Computes the flow rate of every move that sets a feed rate, picks the
minimum or maximum, and rescales every such feed rate by the one factor
that moves the picked extremum onto the target flow rate.`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCrossSection(cmd, args, crossSectionCmdFlags)
		},
	}
	crossSectionCmdFlags.bind(cmd)

	return cmd
}

func runCrossSection(cmd *cobra.Command, args []string, flags crossSectionFlags) error {
	input, values, err := parsePositional(args, 2)
	if err != nil {
		return err
	}

	filament := values[1]
	if filament == 0 {
		filament = cfg.FilamentDiameter
	}

	var policy m.Policy
	if flags.policy != "" {
		policy, err = domain.ParsePolicy(flags.policy)
		if err != nil {
			return err
		}
	}

	_, err = normalizer.CrossSection(domain.CrossSectionArgs{
		Options:          options(cmd, input, values[0]),
		FilamentDiameter: filament,
		UseFilamentArea:  flags.filamentArea,
		Policy:           policy,
		Target:           flags.target,
	})

	return err
}

func init() {
	rootCmd.AddCommand(crossSectionCmd)
}
