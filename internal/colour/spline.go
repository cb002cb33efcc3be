package colour

import "math"

// goldenConjugate is the fractional part of the golden ratio. Successive
// multiples of it, folded into [0,1), form a low-discrepancy sequence that
// never clusters; the palette builder uses it to decorrelate the lightness
// peaks of adjacent hues. This must not be replaced with a seeded PRNG: the
// generated palettes depend on this exact sequence.
const goldenConjugate = 0.6180339887498949

// turningPoint returns the k-th element of the golden-ratio low-discrepancy
// sequence: the fractional part of k times the golden-ratio conjugate.
func turningPoint(k int) float64 {
	v := float64(k) * goldenConjugate
	return v - math.Floor(v)
}

// BiasSpline is a generalised S-curve easing function. All arguments and the
// result are in [0,1]. Below turning it behaves as a bias curve pulling
// values toward 0 or 1 depending on shape; above turning the curve is
// mirrored. Shape 0.5 is the identity; shapes above 0.5 pull the low segment
// upward, shapes below pull it down.
//
// BiasSpline(0, s, t) == 0 and BiasSpline(1, s, t) == 1 for any valid shape
// and turning point, and the curve is monotonic non-decreasing in x.
func BiasSpline(x, shape, turning float64) float64 {
	if turning <= 0 {
		return biasCurve(x, 1-shape)
	}
	if turning >= 1 {
		return biasCurve(x, shape)
	}
	if x < turning {
		return turning * biasCurve(x/turning, shape)
	}
	return turning + (1-turning)*biasCurve((x-turning)/(1-turning), 1-shape)
}

// biasCurve is Schlick's rational bias approximation: identity at shape 0.5,
// bending toward 1 as shape approaches 1 and toward 0 as it approaches 0.
func biasCurve(x, shape float64) float64 {
	return x / ((1/shape-2)*(1-x) + 1)
}
