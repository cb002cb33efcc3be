package colour

import "math"

// LerpAngle interpolates between two hue angles measured in turns
// (1.0 turn = 360 degrees), taking the shorter of the two paths around the
// wheel. Progress is expected in [0,1]; the result is folded into [0,1).
//
// A plain linear lerp is wrong near the wraparound boundary: interpolating
// from 0.95 to 0.05 must pass through 0.0, not travel backwards through 0.5.
func LerpAngle(from, to, progress float64) float64 {
	delta := math.Mod(to-from, 1.0)
	if delta > 0.5 {
		delta -= 1.0
	} else if delta < -0.5 {
		delta += 1.0
	}

	result := from + delta*progress
	return result - math.Floor(result)
}
