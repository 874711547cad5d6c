package norm

import "math"

// epsilon guards the reciprocal scaling against a zero scale factor.
const epsilon = 1e-10

// Func maps a single value between a physical range and the signed unit range.
type Func func(x float64) float64

// MinMax returns the linear scaling pair mapping [min, max] onto [-1, 1].
// Neither direction clips; callers clip downstream.
func MinMax(min, max float64) (forward, inverse Func) {
	forward = func(x float64) float64 {
		return 2*(x-min)/(max-min) - 1
	}
	inverse = func(y float64) float64 {
		return (y+1)*(max-min)/2 + min
	}
	return forward, inverse
}

// Log returns the logarithmic scaling pair mapping [exp(logMin), exp(logMax)]
// onto [-1, 1]. The forward domain is strictly positive; callers replace
// non-positive sentinels before normalizing.
func Log(logMin, logMax float64) (forward, inverse Func) {
	forward = func(x float64) float64 {
		return 2*(math.Log(x)-logMin)/(logMax-logMin) - 1
	}
	inverse = func(y float64) float64 {
		return math.Exp((y+1)*(logMax-logMin)/2 + logMin)
	}
	return forward, inverse
}

// Reciprocal returns the soft-bounded scaling pair for quantities unbounded in
// both directions, such as radii of curvature. The forward form compresses by
// 1/(1+|x|/scale) before the final 2x-1 shift. The inverse branches on the
// sign of the normalized deviation so the negative branch never divides by a
// denominator that can reach the saturation boundary.
func Reciprocal(scale float64) (forward, inverse Func) {
	alpha := scale + epsilon
	forward = func(x float64) float64 {
		compressed := x / (1 + math.Abs(x)/alpha)
		return 2*compressed - 1
	}
	inverse = func(y float64) float64 {
		compressed := y/2 + 0.5
		if y >= 0 {
			return compressed / (1 - compressed/alpha)
		}
		return compressed / (1 + compressed/alpha)
	}
	return forward, inverse
}
