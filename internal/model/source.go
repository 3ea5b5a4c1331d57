// Package model defines the data structures for flow-rate normalization.
package model

// Path represents a file system path.
type Path string

// Command is one line of a G-code file. Text keeps the line terminator so
// that writing the commands back reproduces the file byte for byte.
type Command struct {
	Number int // 1-based line number
	Text   string
}

// Model selects how flow rate is derived from a motion command.
type Model string

const (
	// ModelCrossSection derives flow from the feed rate and a fixed cross-section area.
	ModelCrossSection Model = "cross-section"
	// ModelExtrusion derives flow from the extrusion delta over the move time.
	ModelExtrusion Model = "extrusion"
)

// Policy selects which flow extremum the cross-section model pins to the target.
type Policy string

const (
	// PolicyMin scales so that the minimum flow rate becomes the target.
	PolicyMin Policy = "min"
	// PolicyMax scales so that the maximum flow rate becomes the target.
	PolicyMax Policy = "max"
)

// Policies lists the accepted normalization policies in prompt order.
func Policies() []Policy {
	return []Policy{PolicyMax, PolicyMin}
}

// CoordinateMode says whether extrusion values are absolute positions or increments.
type CoordinateMode int

// Available CoordinateMode values.
const (
	ModeAbsolute CoordinateMode = iota
	ModeRelative
)

func (c CoordinateMode) String() string {
	if c == ModeRelative {
		return "relative"
	}

	return "absolute"
}
