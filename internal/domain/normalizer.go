package domain

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/mouse-blink/flownorm/internal/adapter"
	"github.com/mouse-blink/flownorm/internal/controller"
	"github.com/mouse-blink/flownorm/internal/domain/gcode"
	m "github.com/mouse-blink/flownorm/internal/model"
)

// Options are the settings shared by every normalizer operation.
type Options struct {
	Input          m.Path  // empty asks the operator
	NozzleDiameter float64 // zero asks the operator
	Decimals       int
	Report         m.Path // empty disables the YAML report
	DryRun         bool
}

// CrossSectionArgs configures a cross-section model run.
type CrossSectionArgs struct {
	Options
	FilamentDiameter float64 // zero asks the operator
	UseFilamentArea  bool
	Policy           m.Policy // empty asks the operator
	Target           float64  // zero asks the operator
}

// ExtrusionArgs configures an extrusion model run.
type ExtrusionArgs struct {
	Options
	Cap float64 // zero asks the operator
}

// AnalyzeArgs configures a read-only analysis.
type AnalyzeArgs struct {
	Options
	Model            m.Model
	FilamentDiameter float64
	UseFilamentArea  bool
	Cap              float64 // extrusion model only, zero counts nothing
}

// Normalizer defines the flow-rate normalization workflows.
type Normalizer interface {
	Analyze(args AnalyzeArgs) (m.Analysis, error)
	CrossSection(args CrossSectionArgs) (m.Result, error)
	Extrusion(args ExtrusionArgs) (m.Result, error)
}

type normalizer struct {
	fsAdapter adapter.GCodeFSAdapter
	reports   adapter.ReportStore
	prompter  adapter.Prompter
	ui        controller.UI
	logger    *log.Logger
}

// NewNormalizer creates a Normalizer with the provided collaborators.
func NewNormalizer(
	fsAdapter adapter.GCodeFSAdapter,
	reports adapter.ReportStore,
	prompter adapter.Prompter,
	ui controller.UI,
	logger *log.Logger,
) Normalizer {
	return &normalizer{
		fsAdapter: fsAdapter,
		reports:   reports,
		prompter:  prompter,
		ui:        ui,
		logger:    logger,
	}
}

// Analyze loads a file and reports its flow extrema without rewriting it.
func (n *normalizer) Analyze(args AnalyzeArgs) (m.Analysis, error) {
	input, err := n.acquireInput(args.Input)
	if err != nil {
		return m.Analysis{}, err
	}

	args.Input = input

	nozzle, err := n.acquire(args.NozzleDiameter, "Enter the nozzle diameter in mm", "nozzle diameter")
	if err != nil {
		return m.Analysis{}, err
	}

	analysis := m.Analysis{Model: args.Model, Input: args.Input, Cap: args.Cap}

	switch args.Model {
	case m.ModelCrossSection:
		filament := args.FilamentDiameter
		if args.UseFilamentArea {
			filament, err = n.acquire(filament, "Enter the filament diameter in mm (probably 1.75 or 3)", "filament diameter")
			if err != nil {
				return m.Analysis{}, err
			}
		}

		analysis.Area = n.crossSectionArea(nozzle, filament, args.UseFilamentArea)
	case m.ModelExtrusion:
		analysis.Area = CircleArea(nozzle)
	default:
		return m.Analysis{}, fmt.Errorf("unknown model %q", args.Model)
	}

	commands, err := n.load(args.Input)
	if err != nil {
		return m.Analysis{}, err
	}

	analysis.Lines = len(commands)

	if args.Model == m.ModelCrossSection {
		analysis.Extrema, err = AnalyzeCrossSection(commands, analysis.Area)
	} else {
		analysis.Extrema, analysis.OverCap, err = n.scanExtrusion(commands, analysis.Area, args.Cap)
	}

	if err != nil {
		return m.Analysis{}, err
	}

	return analysis, n.ui.DisplayAnalysis(analysis)
}

// CrossSection pins the minimum or maximum flow rate of a file to a target.
func (n *normalizer) CrossSection(args CrossSectionArgs) (m.Result, error) {
	input, err := n.acquireInput(args.Input)
	if err != nil {
		return m.Result{}, err
	}

	args.Input = input

	nozzle, err := n.acquire(args.NozzleDiameter, "Enter the nozzle diameter in mm", "nozzle diameter")
	if err != nil {
		return m.Result{}, err
	}

	filament, err := n.acquire(args.FilamentDiameter, "Enter the filament diameter in mm (probably 1.75 or 3)", "filament diameter")
	if err != nil {
		return m.Result{}, err
	}

	n.logger.Info("Using diameters", "nozzle_mm", nozzle, "filament_mm", filament)

	area := n.crossSectionArea(nozzle, filament, args.UseFilamentArea)

	commands, err := n.load(args.Input)
	if err != nil {
		return m.Result{}, err
	}

	before, err := AnalyzeCrossSection(commands, area)
	if err != nil {
		return m.Result{}, err
	}

	if err := n.ui.DisplayAnalysis(m.Analysis{
		Model:   m.ModelCrossSection,
		Input:   args.Input,
		Lines:   len(commands),
		Area:    area,
		Extrema: before,
	}); err != nil {
		return m.Result{}, err
	}

	if before.Empty() {
		return m.Result{}, fmt.Errorf("%w: no motion command in %s carries a feed rate", ErrDegenerateExtrema, args.Input)
	}

	policy, err := n.acquirePolicy(args.Policy)
	if err != nil {
		return m.Result{}, err
	}

	target, err := n.acquire(args.Target, fmt.Sprintf("Enter new %s flow rate in mm³/s", policyLabel(policy)), "flow rate")
	if err != nil {
		return m.Result{}, err
	}

	factor, err := ResolveFactor(policy, target, before)
	if err != nil {
		return m.Result{}, err
	}

	n.ui.DisplayScaling(policy, target, factor)

	rewritten, rewrites, err := RewriteCrossSection(commands, area, factor, gcode.Formatter{Decimals: args.Decimals})
	if err != nil {
		return m.Result{}, err
	}

	after, err := AnalyzeCrossSection(rewritten, area)
	if err != nil {
		return m.Result{}, err
	}

	result := m.Result{
		Model: m.ModelCrossSection,
		Input: args.Input,
		Params: m.Params{
			NozzleDiameter:   nozzle,
			FilamentDiameter: filament,
			UseFilamentArea:  args.UseFilamentArea,
			Policy:           policy,
			Target:           target,
			Decimals:         args.Decimals,
		},
		Area:     area,
		Factor:   factor,
		Before:   before,
		After:    after,
		Rewrites: rewrites,
		Commands: rewritten,
	}

	return n.finish(args.Options, result)
}

// Extrusion lowers the feed rate of every move whose flow exceeds a cap.
func (n *normalizer) Extrusion(args ExtrusionArgs) (m.Result, error) {
	input, err := n.acquireInput(args.Input)
	if err != nil {
		return m.Result{}, err
	}

	args.Input = input

	nozzle, err := n.acquire(args.NozzleDiameter, "Enter the nozzle diameter in mm", "nozzle diameter")
	if err != nil {
		return m.Result{}, err
	}

	limit, err := n.acquire(args.Cap, "Enter the flow rate cap in mm³/s", "flow rate cap")
	if err != nil {
		return m.Result{}, err
	}

	area := CircleArea(nozzle)
	n.logger.Info("Using nozzle", "diameter_mm", nozzle, "area_mm2", area)

	commands, err := n.load(args.Input)
	if err != nil {
		return m.Result{}, err
	}

	scan, err := ExtrusionPass{Area: area, Cap: limit, Format: gcode.Formatter{Decimals: args.Decimals}}.Run(commands)
	if err != nil {
		return m.Result{}, err
	}

	if err := n.ui.DisplayAnalysis(m.Analysis{
		Model:   m.ModelExtrusion,
		Input:   args.Input,
		Lines:   len(commands),
		Area:    area,
		Extrema: scan.Extrema,
		Cap:     limit,
		OverCap: scan.OverCap,
	}); err != nil {
		return m.Result{}, err
	}

	result := m.Result{
		Model: m.ModelExtrusion,
		Input: args.Input,
		Params: m.Params{
			NozzleDiameter: nozzle,
			Target:         limit,
			Decimals:       args.Decimals,
		},
		Area:     area,
		Before:   scan.Extrema,
		Rewrites: scan.Rewrites,
		Commands: scan.Commands,
	}

	if scan.OverCap == 0 {
		n.logger.Info("Flow rate already within cap", "max_mm3s", scan.Extrema.Max, "cap_mm3s", limit)

		result.After = scan.Extrema
		result.NoActionNeeded = true

		return result, n.report(args.Options, result, n.ui.DisplayResult(result))
	}

	result.After, _, err = n.scanExtrusion(scan.Commands, area, math.Inf(1))
	if err != nil {
		return m.Result{}, err
	}

	return n.finish(args.Options, result)
}

// finish picks the output path, writes the rewritten file and reports.
func (n *normalizer) finish(opts Options, result m.Result) (m.Result, error) {
	output, err := n.fsAdapter.OutputPath(opts.Input, result.Params.Target)
	if err != nil {
		return m.Result{}, fmt.Errorf("output path: %w", err)
	}

	result.Output = output

	if opts.DryRun {
		n.logger.Info("Dry run, skipping write", "output", output)
	} else {
		if err := n.fsAdapter.WriteCommands(output, result.Commands); err != nil {
			return m.Result{}, fmt.Errorf("write %s: %w", output, err)
		}

		result.Written = true
		n.logger.Info("Wrote normalized G-code", "output", output, "rewrites", len(result.Rewrites))
	}

	return result, n.report(opts, result, n.ui.DisplayResult(result))
}

// report saves the YAML report when one was requested. displayErr is
// returned unless saving fails.
func (n *normalizer) report(opts Options, result m.Result, displayErr error) error {
	if opts.Report == "" {
		return displayErr
	}

	if err := n.reports.SaveReport(opts.Report, result); err != nil {
		return errors.Join(displayErr, fmt.Errorf("save report: %w", err))
	}

	n.logger.Debug("Saved report", "path", opts.Report)

	return displayErr
}

func (n *normalizer) load(path m.Path) ([]m.Command, error) {
	commands, err := n.fsAdapter.ReadCommands(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	n.logger.Debug("Loaded G-code", "path", path, "lines", len(commands))

	return commands, nil
}

func (n *normalizer) scanExtrusion(commands []m.Command, area, limit float64) (m.FlowExtrema, int, error) {
	if limit <= 0 {
		limit = math.Inf(1)
	}

	scan, err := ExtrusionPass{Area: area, Cap: limit, Format: gcode.Formatter{Decimals: -1}}.Run(commands)
	if err != nil {
		return m.FlowExtrema{}, 0, err
	}

	return scan.Extrema, scan.OverCap, nil
}

// crossSectionArea keeps the nozzle-derived area unless the filament area
// was asked for, and says which one is in use.
func (n *normalizer) crossSectionArea(nozzle, filament float64, useFilament bool) float64 {
	if useFilament {
		n.logger.Info("Cross-section area from filament diameter", "diameter_mm", filament)
		return CircleArea(filament)
	}

	n.logger.Warn("Cross-section area from nozzle diameter; pass --filament-area to use the filament diameter", "diameter_mm", nozzle)

	return CircleArea(nozzle)
}

func policyLabel(p m.Policy) string {
	if p == m.PolicyMin {
		return "MIN"
	}

	return "MAX"
}
