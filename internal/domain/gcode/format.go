package gcode

import (
	"math"
	"strconv"
)

// Formatter renders replacement numerals.
type Formatter struct {
	// Decimals is the number of fraction digits kept. A negative value keeps
	// the shortest representation that round-trips.
	Decimals int
}

// Format rounds v to the configured precision and renders it without
// trailing zeros.
func (f Formatter) Format(v float64) string {
	return render(f.round(v, math.Round))
}

// FormatFloor is Format rounding towards negative infinity, so the rendered
// value never exceeds v.
func (f Formatter) FormatFloor(v float64) string {
	return render(f.round(v, math.Floor))
}

func (f Formatter) round(v float64, fn func(float64) float64) float64 {
	if f.Decimals < 0 {
		return v
	}

	scale := math.Pow(10, float64(f.Decimals))

	return fn(v*scale) / scale
}

func render(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
