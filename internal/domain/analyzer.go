package domain

import (
	"github.com/mouse-blink/flownorm/internal/domain/gcode"
	m "github.com/mouse-blink/flownorm/internal/model"
)

// AnalyzeCrossSection is the cross-section model's analysis pass. Only moves
// carrying their own feed token are considered; feed rates are not carried
// across lines.
func AnalyzeCrossSection(commands []m.Command, area float64) (m.FlowExtrema, error) {
	extrema := m.NewFlowExtrema()

	for _, cmd := range commands {
		if !gcode.IsMotion(cmd.Text) {
			continue
		}

		tok, ok, err := gcode.FindFeed(cmd.Number, cmd.Text)
		if err != nil {
			return extrema, err
		}

		if !ok {
			continue
		}

		extrema.Observe(CrossSectionFlow(area, tok.Value))
	}

	return extrema, nil
}

// ExtrusionState is the state threaded through one extrusion-model pass.
type ExtrusionState struct {
	Mode        m.CoordinateMode
	Accumulated float64 // absolute extruder position
	Feed        float64 // last feed rate set by the file, mm/min
	EmittedFeed float64 // feed rate in effect once rewrites are applied
	Extrema     m.FlowExtrema
}

// NewExtrusionState returns the state at the start of a file.
func NewExtrusionState() *ExtrusionState {
	return &ExtrusionState{
		Mode:    m.ModeAbsolute,
		Extrema: m.NewFlowExtrema(),
	}
}

// resolve turns an extrusion value into a delta and advances the accumulator.
func (s *ExtrusionState) resolve(value float64) float64 {
	if s.Mode == m.ModeRelative {
		s.Accumulated += value

		return value
	}

	delta := value - s.Accumulated
	s.Accumulated = value

	return delta
}

// ExtrusionPass analyzes and, where the cap is exceeded, rewrites commands in
// a single forward pass.
type ExtrusionPass struct {
	Area   float64
	Cap    float64
	Format gcode.Formatter
}

// ExtrusionScan is the outcome of an ExtrusionPass.
type ExtrusionScan struct {
	Commands []m.Command
	Rewrites []m.Rewrite
	Extrema  m.FlowExtrema
	OverCap  int
}

// Run walks commands once. The input slice is left untouched.
func (p ExtrusionPass) Run(commands []m.Command) (ExtrusionScan, error) {
	state := NewExtrusionState()
	scan := ExtrusionScan{Commands: make([]m.Command, 0, len(commands))}

	for _, cmd := range commands {
		out, rewrite, over, err := p.Step(state, cmd)
		if err != nil {
			return ExtrusionScan{}, err
		}

		if over {
			scan.OverCap++
		}

		if rewrite != nil {
			scan.Rewrites = append(scan.Rewrites, *rewrite)
		}

		scan.Commands = append(scan.Commands, out)
	}

	scan.Extrema = state.Extrema

	return scan, nil
}

// Step processes one command against state. It returns the command to emit,
// the rewrite applied to it if any, and whether its flow exceeded the cap.
func (p ExtrusionPass) Step(state *ExtrusionState, cmd m.Command) (m.Command, *m.Rewrite, bool, error) {
	if mode, ok := gcode.DetectMode(cmd.Text); ok {
		state.Mode = mode
	}

	if gcode.IsSetPosition(cmd.Text) {
		tok, ok, err := gcode.FindExtrusion(cmd.Number, cmd.Text)
		if err != nil {
			return cmd, nil, false, err
		}

		switch {
		case ok:
			state.Accumulated = tok.Value
		case !gcode.HasAxis(cmd.Text):
			state.Accumulated = 0
		}

		return cmd, nil, false, nil
	}

	if !gcode.IsMotion(cmd.Text) {
		return cmd, nil, false, nil
	}

	feedTok, hasFeed, err := gcode.FindFeed(cmd.Number, cmd.Text)
	if err != nil {
		return cmd, nil, false, err
	}

	if hasFeed {
		state.Feed = feedTok.Value
		state.EmittedFeed = feedTok.Value
	}

	extTok, hasExt, err := gcode.FindExtrusion(cmd.Number, cmd.Text)
	if err != nil {
		return cmd, nil, false, err
	}

	if !hasExt {
		return cmd, nil, false, nil
	}

	delta := state.resolve(extTok.Value)
	if delta <= 0 || state.Feed <= 0 {
		return cmd, nil, false, nil
	}

	flow := ExtrusionFlow(p.Area, delta, state.Feed)
	state.Extrema.Observe(flow)

	factor, exceeds := LocalFactor(p.Cap, flow)
	if !exceeds {
		return cmd, nil, false, nil
	}

	out, rewrite, err := p.limit(state, cmd, feedTok, hasFeed, delta, flow, factor)
	if err != nil {
		return cmd, nil, false, err
	}

	return out, rewrite, true, nil
}
