package ropemath

import "math"

// Step moves value by step in direction dir (-1, 0 or 1) and clamps it to [min, max].
// The result is rounded to the step's precision so repeated presses do not drift.
func Step(value, step float64, dir int, min, max float64) float64 {
	v := value + float64(dir)*step
	if step > 0 {
		v = math.Round(v/step) * step
	}
	return Clamp(v, min, max)
}

// Clamp clamps value to [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Stretch returns how far a link is from its rest length as a fraction of it.
// Positive is stretched, negative is compressed. A zero rest length reports 0.
func Stretch(current, rest float64) float64 {
	if rest == 0 {
		return 0
	}
	return (current - rest) / rest
}
