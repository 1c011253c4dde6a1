// Package mathutil holds the small numeric helpers shared by the simulation
// and the input adapter.
package mathutil

import "math"

// Clamp restricts value to [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// MapRange clamps value to the input range and rescales it linearly into the
// output range. An empty input range (inMin == inMax) maps everything to outMin.
func MapRange(value, inMin, inMax, outMin, outMax float64) float64 {
	if inMin == inMax {
		return outMin
	}

	lo, hi := inMin, inMax
	if lo > hi {
		lo, hi = hi, lo
	}
	value = Clamp(value, lo, hi)

	t := (value - inMin) / (inMax - inMin)
	return outMin + t*(outMax-outMin)
}

// Smooth blends previous toward current by factor.
// factor 0 keeps previous, factor 1 snaps to current.
func Smooth(current, previous, factor float64) float64 {
	factor = Clamp(factor, 0, 1)
	return previous + factor*(current-previous)
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
