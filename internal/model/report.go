package model

// Rewrite describes one line whose feed rate was changed.
type Rewrite struct {
	Line     int
	OldFeed  float64 // mm/min
	NewFeed  float64 // mm/min
	Flow     float64 // mm³/s before the rewrite
	NewFlow  float64 // mm³/s after the rewrite
	Inserted bool    // feed token added to a line that carried none
}

// Analysis is the outcome of a read-only pass over a file.
type Analysis struct {
	Model   Model
	Input   Path
	Lines   int
	Area    float64 // mm²
	Extrema FlowExtrema
	Cap     float64 // extrusion model only, zero when not given
	OverCap int     // extruding moves whose flow exceeds Cap
}

// Result is the outcome of a normalization run.
type Result struct {
	Model    Model
	Input    Path
	Output   Path // empty when nothing was written
	Params   Params
	Area     float64
	Factor   float64 // global scaling factor, cross-section model only
	Before   FlowExtrema
	After    FlowExtrema
	Rewrites []Rewrite
	Commands []Command
	// NoActionNeeded is set when every flow rate already respects the cap.
	NoActionNeeded bool
	Written        bool
}
