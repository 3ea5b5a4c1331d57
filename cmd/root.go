// Package cmd provides the root command and CLI setup for flownorm.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/flownorm/internal/adapter"
	"github.com/mouse-blink/flownorm/internal/config"
	"github.com/mouse-blink/flownorm/internal/controller"
	"github.com/mouse-blink/flownorm/internal/domain"
	"github.com/mouse-blink/flownorm/internal/logging"
	m "github.com/mouse-blink/flownorm/internal/model"
)

var fsAdapter adapter.GCodeFSAdapter
var reportStore adapter.ReportStore
var prompter adapter.Prompter
var ui controller.UI
var logger *log.Logger
var normalizer domain.Normalizer

var loadConfig = config.Load
var cfg = &config.Config{LogLevel: "info", Decimals: config.DefaultDecimals}

func init() {
	logger = logging.Default()
	ui = controller.NewUI(rootCmd, adapter.IsTTY(os.Stdout))
	prompter = adapter.NewPrompter(rootCmd, adapter.IsTTY(os.Stdin) && adapter.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalGCodeFSAdapter()
	reportStore = adapter.NewReportStore()
	normalizer = domain.NewNormalizer(
		fsAdapter,
		reportStore,
		prompter,
		ui,
		logger,
	)
}

var decimalsFlag int
var reportFlag string
var dryRunFlag bool
var logLevelFlag string

var rootFlags crossSectionFlags

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flownorm [input.gcode] [nozzle-diameter] [filament-diameter]",
		Short: "G-code flow rate normalizer",
		Long: `Flownorm rewrites the feed rates of a G-code file so that its flow rate
stays within bounds. Without a subcommand it runs the cross-section model.

Models:
  - cross-section  scale every feed rate by one factor so the MIN or MAX
                   flow rate lands on a target
  - extrusion      lower the feed rate of moves whose flow exceeds a cap

Missing values are asked for interactively. Defaults can be set with
FLOWNORM_NOZZLE_DIAMETER, FLOWNORM_FILAMENT_DIAMETER, FLOWNORM_DECIMALS
and FLOWNORM_LOG_LEVEL, in the environment or a .env file.`,
		Args:              cobra.MaximumNArgs(3),
		PersistentPreRunE: setup,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCrossSection(cmd, args, rootFlags)
		},
	}
	cmd.PersistentFlags().IntVarP(&decimalsFlag, "decimals", "d", config.DefaultDecimals, "fraction digits kept in rewritten feed rates (negative keeps full precision)")
	cmd.PersistentFlags().StringVarP(&reportFlag, "report", "r", "", "write a YAML report of the run to this file")
	cmd.PersistentFlags().BoolVar(&dryRunFlag, "dry-run", false, "run the whole pipeline without writing the output file")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "diagnostic log level (debug, info, warn, error)")
	rootFlags.bind(cmd)

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and applies the log level before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cfg = loaded

	level := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = logLevelFlag
	}

	parsed, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}

	logger.SetLevel(parsed)

	return nil
}

// options collects the persistent flags, falling back to configuration.
func options(cmd *cobra.Command, input m.Path, nozzle float64) domain.Options {
	decimals := cfg.Decimals
	if cmd.Flags().Changed("decimals") {
		decimals = decimalsFlag
	}

	if nozzle == 0 {
		nozzle = cfg.NozzleDiameter
	}

	return domain.Options{
		Input:          input,
		NozzleDiameter: nozzle,
		Decimals:       decimals,
		Report:         m.Path(reportFlag),
		DryRun:         dryRunFlag,
	}
}

// parsePositional splits args into the input path and the positive numbers
// that follow it. Missing numbers are returned as zero.
func parsePositional(args []string, numbers int) (m.Path, []float64, error) {
	values := make([]float64, numbers)

	if len(args) == 0 {
		return "", values, nil
	}

	for i, raw := range args[1:] {
		v, err := domain.ValidatePositive(raw)
		if err != nil {
			return "", nil, fmt.Errorf("argument %d: %w", i+2, err)
		}

		values[i] = v
	}

	return m.Path(args[0]), values, nil
}
