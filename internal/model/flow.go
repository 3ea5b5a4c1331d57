package model

import "math"

// FlowExtrema tracks the smallest and largest flow rate (mm³/s) seen in a pass.
type FlowExtrema struct {
	Min   float64
	Max   float64
	Count int // number of flow rates observed
}

// NewFlowExtrema returns extrema at their sentinels (+Inf, -Inf).
func NewFlowExtrema() FlowExtrema {
	return FlowExtrema{Min: math.Inf(1), Max: math.Inf(-1)}
}

// Observe tightens the extrema with flow.
func (e *FlowExtrema) Observe(flow float64) {
	e.Min = math.Min(e.Min, flow)
	e.Max = math.Max(e.Max, flow)
	e.Count++
}

// Empty reports whether no flow rate has been observed yet.
func (e FlowExtrema) Empty() bool {
	return e.Count == 0
}

// Params holds the operator-supplied values of a run.
type Params struct {
	NozzleDiameter   float64 // mm
	FilamentDiameter float64 // mm, cross-section model only
	UseFilamentArea  bool    // area from the filament diameter instead of the nozzle
	Policy           Policy  // cross-section model only
	Target           float64 // mm³/s; pinned extremum or extrusion cap
	Decimals         int     // feed numeral precision, negative for shortest
}
