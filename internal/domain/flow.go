package domain

import "math"

const secondsPerMinute = 60.0

// CircleArea returns the area in mm² of a circle with diameter d in mm.
func CircleArea(d float64) float64 {
	return math.Pi * math.Pow(d/2, 2)
}

// CrossSectionFlow is the cross-section model's flow rate in mm³/s for a feed
// rate in mm/min. It is inversely proportional to the feed rate.
func CrossSectionFlow(area, feed float64) float64 {
	return area / (feed / secondsPerMinute)
}

// CrossSectionFeed inverts CrossSectionFlow.
func CrossSectionFeed(area, flow float64) float64 {
	return secondsPerMinute * area / flow
}

// ExtrusionFlow is the extrusion model's flow rate in mm³/s for an extrusion
// delta in mm moved at feed mm/min. The delta cancels out: the result equals
// area·feed/60.
func ExtrusionFlow(area, delta, feed float64) float64 {
	seconds := (delta / feed) * secondsPerMinute

	return area * delta / seconds
}
